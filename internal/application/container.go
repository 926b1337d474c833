package application

import (
	"github.com/projetvet/projetvet-go/internal/repository"
)

type Services struct {
	Schema       *SchemaService
	Entry        *EntryService
	Report       *ReportService
	User         *UserService
	Notification *NotificationService
	Authz        Authorizer
}

// Deps are the external collaborators services may need; zero values get
// safe defaults (console mailer, no file store, no event stream).
type Deps struct {
	Mailer Mailer
	Files  FileLister
	Events Broadcaster
}

func New(repos *repository.Repos, deps Deps) *Services {
	schemaSvc := NewSchemaService(repos)
	authz := NewRoleAuthorizer(repos)

	entrySvc := NewEntryService(repos, schemaSvc, authz)
	entrySvc.Files = deps.Files
	entrySvc.Events = deps.Events

	reportSvc := NewReportService(repos, schemaSvc)
	reportSvc.Files = deps.Files

	return &Services{
		Schema:       schemaSvc,
		Entry:        entrySvc,
		Report:       reportSvc,
		User:         NewUserService(repos),
		Notification: NewNotificationService(repos, deps.Mailer),
		Authz:        authz,
	}
}
