package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kidanta/kidanta-center/internal/models"
	"github.com/kidanta/kidanta-center/internal/service"
)

// ActivityHandler serves the catalog pages.
type ActivityHandler struct {
	activities *service.ActivityService
}

// NewActivityHandler constructs ActivityHandler.
func NewActivityHandler(activities *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activities: activities}
}

// List renders the catalog, optionally narrowed to activities applicable to
// an age.
func (h *ActivityHandler) List(c *gin.Context) {
	filter := models.ActivityFilter{}
	rawAge := strings.TrimSpace(c.Query("age"))
	if age, err := strconv.Atoi(rawAge); err == nil {
		filter.Age = &age
	}
	activities, err := h.activities.List(c.Request.Context(), filter)
	if err != nil {
		renderError(c, err)
		return
	}
	render(c, http.StatusOK, "activities.html", gin.H{"Activities": activities, "Age": rawAge})
}

// ShowNew renders an empty activity form.
func (h *ActivityHandler) ShowNew(c *gin.Context) {
	render(c, http.StatusOK, "activity_form.html", gin.H{"Activity": nil})
}

// Create handles the new-activity form submission.
func (h *ActivityHandler) Create(c *gin.Context) {
	req := parseActivityForm(c)
	if _, err := h.activities.Create(c.Request.Context(), req, currentUserID(c)); err != nil {
		if isValidationErr(err) {
			redirectWithFlash(c, "/activities/new", models.FlashDanger, flashMessage(err))
			return
		}
		renderError(c, err)
		return
	}
	redirectWithFlash(c, "/activities", models.FlashSuccess, "activity added")
}

// ShowEdit renders the edit form for one activity.
func (h *ActivityHandler) ShowEdit(c *gin.Context) {
	activity, err := h.activities.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderError(c, err)
		return
	}
	render(c, http.StatusOK, "activity_form.html", gin.H{"Activity": activity})
}

// Update handles the edit form submission.
func (h *ActivityHandler) Update(c *gin.Context) {
	id := c.Param("id")
	req := parseActivityForm(c)
	if _, err := h.activities.Update(c.Request.Context(), id, req); err != nil {
		if isValidationErr(err) {
			redirectWithFlash(c, "/activities/"+id+"/edit", models.FlashDanger, flashMessage(err))
			return
		}
		renderError(c, err)
		return
	}
	redirectWithFlash(c, "/activities", models.FlashSuccess, "activity updated")
}

// Delete removes an activity. Admin-only; wired behind RequireRoles.
func (h *ActivityHandler) Delete(c *gin.Context) {
	if err := h.activities.Delete(c.Request.Context(), c.Param("id")); err != nil {
		renderError(c, err)
		return
	}
	redirectWithFlash(c, "/activities", models.FlashInfo, "activity deleted")
}

func parseActivityForm(c *gin.Context) service.ActivityRequest {
	return service.ActivityRequest{
		Title:       strings.TrimSpace(c.PostForm("title")),
		Description: c.PostForm("description"),
		Category:    c.PostForm("category"),
		AgeMin:      intFormValue(c, "age_min", models.ActivityDefaultAgeMin),
		AgeMax:      intFormValue(c, "age_max", models.ActivityDefaultAgeMax),
	}
}

// intFormValue parses an integer field, falling back to a default when the
// field is blank or malformed.
func intFormValue(c *gin.Context, field string, fallback int) int {
	raw := strings.TrimSpace(c.PostForm(field))
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
