package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kidanta/kidanta-center/internal/models"
	"github.com/kidanta/kidanta-center/internal/service"
)

// ReportHandler serves the chart picker page.
type ReportHandler struct {
	students *service.StudentService
}

// NewReportHandler constructs ReportHandler.
func NewReportHandler(students *service.StudentService) *ReportHandler {
	return &ReportHandler{students: students}
}

// Show renders the full roster as a picker for per-student charts.
func (h *ReportHandler) Show(c *gin.Context) {
	students, err := h.students.List(c.Request.Context(), models.StudentFilter{})
	if err != nil {
		renderError(c, err)
		return
	}
	render(c, http.StatusOK, "reports.html", gin.H{"Students": students})
}
