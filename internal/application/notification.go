package application

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/projetvet/projetvet-go/internal/domain/notification"
	"github.com/projetvet/projetvet-go/internal/domain/user"
	"github.com/projetvet/projetvet-go/internal/repository"
	"github.com/projetvet/projetvet-go/pkg/i18n"
)

// Mailer is the delivery collaborator. The core only enqueues and drains
// tasks; actually reaching the user is someone else's problem.
type Mailer interface {
	Send(to user.User, subject, body string) error
}

// ConsoleMailer logs instead of sending, for development setups.
type ConsoleMailer struct{}

func (ConsoleMailer) Send(to user.User, subject, body string) error {
	log.Printf("notify %s: %s: %s", to.Username, subject, body)
	return nil
}

type NotificationService struct {
	Repos  *repository.Repos
	Mailer Mailer
}

func NewNotificationService(repos *repository.Repos, mailer Mailer) *NotificationService {
	if mailer == nil {
		mailer = ConsoleMailer{}
	}
	return &NotificationService{Repos: repos, Mailer: mailer}
}

// DispatchPending drains queued status-change tasks. Student tasks go to
// the entry's owner; tutor tasks fan out to every tutor of the project.
func (s *NotificationService) DispatchPending(limit int) error {
	tasks, err := s.Repos.Notification.ListPending(limit)
	if err != nil {
		return err
	}

	for _, task := range tasks {
		if err := s.dispatch(task); err != nil {
			log.Printf("notification %s failed: %v", task.TaskID, err)
			if err := s.Repos.Notification.MarkFailed(task.ID); err != nil {
				return err
			}
			continue
		}
		if err := s.Repos.Notification.MarkSent(task.ID); err != nil {
			return err
		}
	}
	return nil
}

func (s *NotificationService) dispatch(task notification.Task) error {
	var payload notification.Payload
	if err := json.Unmarshal(task.Payload, &payload); err != nil {
		return fmt.Errorf("bad payload: %w", err)
	}

	var recipients []user.User
	switch task.RecipientRole {
	case notification.RecipientStudent:
		usr, err := s.Repos.User.GetUserByID(payload.StudentID)
		if err != nil {
			return err
		}
		recipients = []user.User{usr}
	case notification.RecipientTutor:
		tutors, err := s.Repos.User.ListUsersByRole(task.ProjectID, user.RoleTutor)
		if err != nil {
			return err
		}
		recipients = tutors
	default:
		return fmt.Errorf("unknown recipient role %q", task.RecipientRole)
	}

	loc := i18n.Get(i18n.DefaultCode)
	subject := loc.T("notify_subject")
	body := fmt.Sprintf("Entry %d (%s) moved from stage %d to stage %d.",
		payload.EntryID, payload.FormSet, task.OldStatus, task.NewStatus)

	for _, to := range recipients {
		if err := s.Mailer.Send(to, subject, body); err != nil {
			return err
		}
	}
	return nil
}
