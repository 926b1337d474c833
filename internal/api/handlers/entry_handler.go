package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/projetvet/projetvet-go/internal/application"
	"github.com/projetvet/projetvet-go/internal/domain/entry"
	"github.com/projetvet/projetvet-go/pkg/response"
	"github.com/projetvet/projetvet-go/pkg/utils"
)

type EntryHandler struct {
	svc    *application.EntryService
	report *application.ReportService
}

func NewEntryHandler(svc *application.EntryService, report *application.ReportService) *EntryHandler {
	return &EntryHandler{svc: svc, report: report}
}

// Create godoc
// @Summary Create a form entry
// @Tags entries
// @Accept json
// @Produce json
// @Param input body entry.CreateEntryDTO true "Entry payload"
// @Success 201 {object} response.CreatedResponse
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 404 {object} response.ErrorResponse "Form set not found"
// @Failure 500 {object} response.ErrorResponse "Failed to create entry"
// @Security BearerAuth
// @Router /entries [post]
func (h *EntryHandler) Create(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input entry.CreateEntryDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
		return
	}

	id, err := h.svc.CreateEntry(uid, input)
	if err != nil {
		c.JSON(statusFromError(err), response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.CreatedResponse{Message: "Entry created", ID: id})
}

// Get godoc
// @Summary Get one entry with rendered values
// @Tags entries
// @Produce json
// @Param id path int true "Entry id"
// @Param lang query string false "Locale code"
// @Success 200 {object} entry.EntryDetail
// @Failure 404 {object} response.ErrorResponse "Entry not found"
// @Failure 500 {object} response.ErrorResponse "Failed to load entry"
// @Security BearerAuth
// @Router /entries/{id} [get]
func (h *EntryHandler) Get(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	detail, err := h.svc.GetEntry(uid, id, localeFromQuery(c))
	if err != nil {
		c.JSON(statusFromError(err), response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, detail)
}

// Update godoc
// @Summary Update entry values and advance the workflow
// @Tags entries
// @Accept json
// @Produce json
// @Param id path int true "Entry id"
// @Param input body entry.UpdateEntryDTO true "Update payload"
// @Success 200 {object} entry.Entry
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 403 {object} response.ErrorResponse "Field not editable"
// @Failure 404 {object} response.ErrorResponse "Entry not found"
// @Failure 500 {object} response.ErrorResponse "Failed to update entry"
// @Security BearerAuth
// @Router /entries/{id} [put]
func (h *EntryHandler) Update(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	var input entry.UpdateEntryDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
		return
	}

	updated, err := h.svc.UpdateEntry(uid, id, input)
	if err != nil {
		c.JSON(statusFromError(err), response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete an entry and its values
// @Tags entries
// @Produce json
// @Param id path int true "Entry id"
// @Success 200 {object} response.MessageResponse
// @Failure 403 {object} response.ErrorResponse "Not allowed"
// @Failure 404 {object} response.ErrorResponse "Entry not found"
// @Failure 500 {object} response.ErrorResponse "Failed to delete entry"
// @Security BearerAuth
// @Router /entries/{id} [delete]
func (h *EntryHandler) Delete(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.svc.DeleteEntry(uid, id); err != nil {
		c.JSON(statusFromError(err), response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Entry deleted"})
}

// List godoc
// @Summary List entries as a projected table
// @Tags entries
// @Produce json
// @Param formset query string true "Form set idnumber"
// @Param projectid query int true "Project id"
// @Param studentid query int false "Filter on student"
// @Param parentid query int false "Filter on parent entry"
// @Param lang query string false "Locale code"
// @Success 200 {object} entry.EntryList
// @Failure 400 {object} response.ErrorResponse "Missing formset"
// @Failure 500 {object} response.ErrorResponse "Failed to list entries"
// @Security BearerAuth
// @Router /entries [get]
func (h *EntryHandler) List(c *gin.Context) {
	formset := c.Query("formset")
	if formset == "" {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "formset parameter is required"})
		return
	}

	list, err := h.report.GetEntryList(
		utils.ParseUintQuery(c, "projectid"),
		utils.ParseUintQuery(c, "studentid"),
		formset,
		utils.ParseUintQuery(c, "parentid"),
		localeFromQuery(c),
	)
	if err != nil {
		c.JSON(statusFromError(err), response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}
