package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/projetvet/projetvet-go/internal/application"
	"github.com/projetvet/projetvet-go/pkg/response"
	"github.com/projetvet/projetvet-go/pkg/utils"
)

type ReportHandler struct {
	svc *application.ReportService
}

func NewReportHandler(svc *application.ReportService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// parseRanks reads a comma-separated ranks filter, e.g. "1,2".
func parseRanks(raw string) []int64 {
	if raw == "" {
		return nil
	}
	var ranks []int64
	for _, part := range strings.Split(raw, ",") {
		n, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			continue
		}
		ranks = append(ranks, n)
	}
	return ranks
}

// Credits godoc
// @Summary Sum earned credits for a student
// @Tags reports
// @Produce json
// @Param projectid query int true "Project id"
// @Param studentid query int true "Student id"
// @Param ranks query string false "Comma-separated rank filter"
// @Success 200 {object} map[string]int64
// @Failure 404 {object} response.ErrorResponse "Rollup field not found"
// @Failure 500 {object} response.ErrorResponse "Failed to compute credits"
// @Security BearerAuth
// @Router /reports/credits [get]
func (h *ReportHandler) Credits(c *gin.Context) {
	projectID := utils.ParseUintQuery(c, "projectid")
	studentID := utils.ParseUintQuery(c, "studentid")

	total, err := h.svc.CreditsByRank(projectID, studentID, parseRanks(c.Query("ranks"))...)
	if err != nil {
		c.JSON(statusFromError(err), response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"credits": total})
}

// Interviews godoc
// @Summary Count a student's face-to-face interviews
// @Tags reports
// @Produce json
// @Param projectid query int true "Project id"
// @Param studentid query int true "Student id"
// @Success 200 {object} map[string]int64
// @Failure 404 {object} response.ErrorResponse "Interview form set not found"
// @Failure 500 {object} response.ErrorResponse "Failed to count interviews"
// @Security BearerAuth
// @Router /reports/interviews [get]
func (h *ReportHandler) Interviews(c *gin.Context) {
	projectID := utils.ParseUintQuery(c, "projectid")
	studentID := utils.ParseUintQuery(c, "studentid")

	count, err := h.svc.InterviewCount(projectID, studentID)
	if err != nil {
		c.JSON(statusFromError(err), response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"interviews": count})
}
