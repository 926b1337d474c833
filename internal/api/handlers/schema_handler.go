package handlers

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v2"

	"github.com/projetvet/projetvet-go/internal/application"
	"github.com/projetvet/projetvet-go/internal/config"
	"github.com/projetvet/projetvet-go/internal/domain/schema"
	"github.com/projetvet/projetvet-go/pkg/response"
)

type SchemaHandler struct {
	svc *application.SchemaService
}

func NewSchemaHandler(svc *application.SchemaService) *SchemaHandler {
	return &SchemaHandler{svc: svc}
}

func localeFromQuery(c *gin.Context) string {
	if lang := c.Query("lang"); lang != "" {
		return lang
	}
	return config.DefaultLocale
}

// ListFormSets godoc
// @Summary List known form sets
// @Tags schema
// @Produce json
// @Success 200 {array} schema.FormSet
// @Failure 500 {object} response.ErrorResponse "Failed to list form sets"
// @Security BearerAuth
// @Router /formsets [get]
func (h *SchemaHandler) ListFormSets(c *gin.Context) {
	sets, err := h.svc.ListFormSets()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, sets)
}

// GetStructure godoc
// @Summary Get the category/field tree of a form set
// @Tags schema
// @Produce json
// @Param formset path string true "Form set idnumber"
// @Param lang query string false "Locale code"
// @Success 200 {array} schema.Category
// @Failure 500 {object} response.ErrorResponse "Failed to load structure"
// @Security BearerAuth
// @Router /structure/{formset} [get]
func (h *SchemaHandler) GetStructure(c *gin.Context) {
	cats, err := h.svc.GetStructure(c.Param("formset"), localeFromQuery(c))
	if err != nil {
		c.JSON(statusFromError(err), response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, cats)
}

// Import godoc
// @Summary Import or update a form set definition
// @Description Accepts the import document as JSON, or as YAML when the
// @Description Content-Type says so. The whole document commits atomically.
// @Tags schema
// @Accept json
// @Produce json
// @Param formset path string true "Form set idnumber"
// @Param document body schema.ImportDocument true "Import document"
// @Success 200 {object} response.ImportResponse
// @Failure 400 {object} response.ErrorResponse "Invalid document"
// @Failure 500 {object} response.ErrorResponse "Import failed"
// @Security BearerAuth
// @Router /admin/structure/{formset}/import [post]
func (h *SchemaHandler) Import(c *gin.Context) {
	var doc schema.ImportDocument

	contentType := c.ContentType()
	if strings.Contains(contentType, "yaml") || strings.Contains(contentType, "yml") {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "failed to read body"})
			return
		}
		if err := yaml.Unmarshal(body, &doc); err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid YAML: " + err.Error()})
			return
		}
	} else {
		if err := c.ShouldBindJSON(&doc); err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid JSON: " + err.Error()})
			return
		}
	}

	catCount, fieldCount, err := h.svc.Import(c.Param("formset"), doc)
	if err != nil {
		c.JSON(statusFromError(err), response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.ImportResponse{
		Message:    "Form set imported",
		Categories: catCount,
		Fields:     fieldCount,
	})
}
