package handler

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kidanta/kidanta-center/internal/models"
	"github.com/kidanta/kidanta-center/internal/service"
)

// dateLayout is the wire format of the date inputs on the log forms.
const dateLayout = "2006-01-02"

// LogbookHandler serves the behavior and activity log submissions. Both
// redirect back to the student's detail page.
type LogbookHandler struct {
	logbook *service.LogbookService
}

// NewLogbookHandler constructs LogbookHandler.
func NewLogbookHandler(logbook *service.LogbookService) *LogbookHandler {
	return &LogbookHandler{logbook: logbook}
}

// CreateBehavior appends one behavior observation.
func (h *LogbookHandler) CreateBehavior(c *gin.Context) {
	studentID := c.PostForm("student_id")
	req := service.BehaviorLogRequest{
		StudentID: studentID,
		LogDate:   parseDateField(c, "log_date"),
		Mood:      intFormValue(c, "mood", models.ScoreDefault),
		Focus:     intFormValue(c, "focus", models.ScoreDefault),
		Social:    intFormValue(c, "social", models.ScoreDefault),
		Notes:     c.PostForm("notes"),
	}
	if _, err := h.logbook.RecordBehavior(c.Request.Context(), req, currentUserID(c)); err != nil {
		if isValidationErr(err) {
			redirectWithFlash(c, "/students/"+studentID, models.FlashDanger, flashMessage(err))
			return
		}
		renderError(c, err)
		return
	}
	redirectWithFlash(c, "/students/"+studentID, models.FlashSuccess, "behavior log saved")
}

// CreateActivity appends one activity-completion record.
func (h *LogbookHandler) CreateActivity(c *gin.Context) {
	studentID := c.PostForm("student_id")
	req := service.ActivityLogRequest{
		StudentID:  studentID,
		ActivityID: c.PostForm("activity_id"),
		DoneAt:     parseDateField(c, "done_at"),
		Remark:     c.PostForm("remark"),
	}
	if _, err := h.logbook.RecordActivity(c.Request.Context(), req, currentUserID(c)); err != nil {
		if isValidationErr(err) {
			redirectWithFlash(c, "/students/"+studentID, models.FlashDanger, flashMessage(err))
			return
		}
		renderError(c, err)
		return
	}
	redirectWithFlash(c, "/students/"+studentID, models.FlashSuccess, "activity log saved")
}

// parseDateField reads a YYYY-MM-DD field; nil means "today" downstream.
func parseDateField(c *gin.Context, field string) *time.Time {
	raw := strings.TrimSpace(c.PostForm(field))
	if raw == "" {
		return nil
	}
	d, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil
	}
	return &d
}
