package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kidanta/kidanta-center/internal/middleware"
	appErrors "github.com/kidanta/kidanta-center/pkg/errors"
)

// render draws an HTML page with the shared chrome: current user and any
// queued flash messages.
func render(c *gin.Context, status int, template string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if session := middleware.SessionFromContext(c); session != nil {
		data["User"] = session
	}
	data["Flashes"] = TakeFlashes(c)
	c.HTML(status, template, data)
}

// renderError maps a service error onto the error page: 404 for not-found,
// 500 otherwise.
func renderError(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	message := appErr.Message
	if appErr.Status >= http.StatusInternalServerError {
		message = "something went wrong"
	}
	render(c, appErr.Status, "error.html", gin.H{"Status": appErr.Status, "Message": message})
}

// redirectWithFlash queues a message and issues a see-other redirect, the
// pattern every form submission follows.
func redirectWithFlash(c *gin.Context, location, level, message string) {
	Flash(c, level, message)
	c.Redirect(http.StatusSeeOther, location)
}

// flashMessage extracts the user-facing message from a service error.
func flashMessage(err error) string {
	return appErrors.FromError(err).Message
}

// isValidationErr tells redirect-back-to-form failures apart from hard errors.
func isValidationErr(err error) bool {
	appErr := appErrors.FromError(err)
	return appErr.Code == appErrors.ErrValidation.Code || appErr.Code == appErrors.ErrConflict.Code
}

func currentUserID(c *gin.Context) string {
	if session := middleware.SessionFromContext(c); session != nil {
		return session.UserID
	}
	return ""
}
