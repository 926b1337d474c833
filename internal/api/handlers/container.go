package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/projetvet/projetvet-go/internal/application"
	"github.com/projetvet/projetvet-go/pkg/apperrors"
)

type Handlers struct {
	User   *UserHandler
	Schema *SchemaHandler
	Entry  *EntryHandler
	Report *ReportHandler
	Events *EntryEventHub
	Router *gin.Engine
}

func New(svc *application.Services, router *gin.Engine) *Handlers {
	hub := NewEntryEventHub()
	return &Handlers{
		User:   NewUserHandler(svc.User),
		Schema: NewSchemaHandler(svc.Schema),
		Entry:  NewEntryHandler(svc.Entry, svc.Report),
		Report: NewReportHandler(svc.Report),
		Events: hub,
		Router: router,
	}
}

// statusFromError maps error kinds onto HTTP statuses.
func statusFromError(err error) int {
	switch apperrors.KindOf(err) {
	case apperrors.KindNotFound:
		return http.StatusNotFound
	case apperrors.KindPermissionDenied:
		return http.StatusForbidden
	case apperrors.KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
