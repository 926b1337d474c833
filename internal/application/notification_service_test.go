package application

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"

	"github.com/projetvet/projetvet-go/internal/domain/notification"
	"github.com/projetvet/projetvet-go/internal/domain/user"
	"github.com/projetvet/projetvet-go/internal/repository"
	"github.com/projetvet/projetvet-go/internal/repository/mock"
)

// --------------------- Setup ---------------------

type sentMail struct {
	to      string
	subject string
	body    string
}

type captureMailer struct {
	sent []sentMail
}

func (m *captureMailer) Send(to user.User, subject, body string) error {
	m.sent = append(m.sent, sentMail{to: to.Username, subject: subject, body: body})
	return nil
}

func setupNotificationServiceMocks(t *testing.T) (*NotificationService, *mock.MockNotificationRepo, *mock.MockUserRepo, *captureMailer) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockNotif := mock.NewMockNotificationRepo(ctrl)
	mockUser := mock.NewMockUserRepo(ctrl)
	repos := &repository.Repos{Notification: mockNotif, User: mockUser}
	mailer := &captureMailer{}
	return NewNotificationService(repos, mailer), mockNotif, mockUser, mailer
}

func taskFixture(id uint, role string) notification.Task {
	return notification.Task{
		ID:            id,
		TaskID:        "00000000-0000-0000-0000-000000000001",
		EntryID:       42,
		ProjectID:     3,
		RecipientRole: role,
		OldStatus:     0,
		NewStatus:     1,
		Payload:       datatypes.JSON(`{"entryid":42,"studentid":7,"formset":"activities"}`),
		Status:        notification.StatusPending,
	}
}

// --------------------- DispatchPending ---------------------

func TestDispatchPending_StudentTask(t *testing.T) {
	svc, mockNotif, mockUser, mailer := setupNotificationServiceMocks(t)

	mockNotif.EXPECT().ListPending(10).Return([]notification.Task{taskFixture(1, notification.RecipientStudent)}, nil)
	mockUser.EXPECT().GetUserByID(uint(7)).Return(user.User{ID: 7, Username: "jdupont"}, nil)
	mockNotif.EXPECT().MarkSent(uint(1)).Return(nil)

	assert.NoError(t, svc.DispatchPending(10))
	assert.Len(t, mailer.sent, 1)
	assert.Equal(t, "jdupont", mailer.sent[0].to)
	assert.Equal(t, "Action required on a training log entry", mailer.sent[0].subject)
	assert.Contains(t, mailer.sent[0].body, "Entry 42")
}

func TestDispatchPending_TutorTaskFansOut(t *testing.T) {
	svc, mockNotif, mockUser, mailer := setupNotificationServiceMocks(t)

	mockNotif.EXPECT().ListPending(10).Return([]notification.Task{taskFixture(1, notification.RecipientTutor)}, nil)
	mockUser.EXPECT().ListUsersByRole(uint(3), user.RoleTutor).Return([]user.User{
		{ID: 20, Username: "tutor_a"},
		{ID: 21, Username: "tutor_b"},
	}, nil)
	mockNotif.EXPECT().MarkSent(uint(1)).Return(nil)

	assert.NoError(t, svc.DispatchPending(10))
	assert.Len(t, mailer.sent, 2)
	assert.Equal(t, "tutor_a", mailer.sent[0].to)
	assert.Equal(t, "tutor_b", mailer.sent[1].to)
}

func TestDispatchPending_FailureMarksAndContinues(t *testing.T) {
	svc, mockNotif, mockUser, mailer := setupNotificationServiceMocks(t)

	broken := taskFixture(1, notification.RecipientStudent)
	healthy := taskFixture(2, notification.RecipientStudent)

	mockNotif.EXPECT().ListPending(10).Return([]notification.Task{broken, healthy}, nil)
	mockUser.EXPECT().GetUserByID(uint(7)).Return(user.User{}, errors.New("user service down"))
	mockNotif.EXPECT().MarkFailed(uint(1)).Return(nil)
	mockUser.EXPECT().GetUserByID(uint(7)).Return(user.User{ID: 7, Username: "jdupont"}, nil)
	mockNotif.EXPECT().MarkSent(uint(2)).Return(nil)

	assert.NoError(t, svc.DispatchPending(10))
	assert.Len(t, mailer.sent, 1)
}

func TestDispatchPending_BadPayloadMarksFailed(t *testing.T) {
	svc, mockNotif, _, mailer := setupNotificationServiceMocks(t)

	broken := taskFixture(1, notification.RecipientStudent)
	broken.Payload = datatypes.JSON(`not json`)

	mockNotif.EXPECT().ListPending(10).Return([]notification.Task{broken}, nil)
	mockNotif.EXPECT().MarkFailed(uint(1)).Return(nil)

	assert.NoError(t, svc.DispatchPending(10))
	assert.Empty(t, mailer.sent)
}
