package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kidanta/kidanta-center/internal/models"
	"github.com/kidanta/kidanta-center/internal/service"
	"github.com/kidanta/kidanta-center/pkg/config"
)

// AuthHandler serves the register, login and logout routes.
type AuthHandler struct {
	auth    *service.AuthService
	session config.SessionConfig
}

// NewAuthHandler constructs AuthHandler.
func NewAuthHandler(auth *service.AuthService, session config.SessionConfig) *AuthHandler {
	return &AuthHandler{auth: auth, session: session}
}

// ShowRegister renders the sign-up form.
func (h *AuthHandler) ShowRegister(c *gin.Context) {
	render(c, http.StatusOK, "register.html", nil)
}

// Register handles the sign-up form submission.
func (h *AuthHandler) Register(c *gin.Context) {
	req := service.RegisterRequest{
		FullName: c.PostForm("name"),
		Email:    c.PostForm("email"),
		Password: c.PostForm("password"),
	}
	if _, err := h.auth.Register(c.Request.Context(), req); err != nil {
		if isValidationErr(err) {
			redirectWithFlash(c, "/register", models.FlashWarning, flashMessage(err))
			return
		}
		renderError(c, err)
		return
	}
	redirectWithFlash(c, "/login", models.FlashSuccess, "account created, please sign in")
}

// ShowLogin renders the login form.
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	render(c, http.StatusOK, "login.html", nil)
}

// Login verifies credentials and sets the session cookie. Failures flash the
// same generic message whether the email exists or not.
func (h *AuthHandler) Login(c *gin.Context) {
	req := service.LoginRequest{
		Email:    c.PostForm("email"),
		Password: c.PostForm("password"),
	}
	session, err := h.auth.Login(c.Request.Context(), req)
	if err != nil {
		redirectWithFlash(c, "/login", models.FlashDanger, "invalid email or password")
		return
	}

	c.SetCookie(h.session.CookieName, session.Token, int(h.session.TTL.Seconds()), "/", "", h.session.CookieSecure, true)
	c.Redirect(http.StatusSeeOther, "/")
}

// Logout revokes the session and clears its cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(h.session.CookieName); err == nil {
		_ = h.auth.Logout(c.Request.Context(), token)
	}
	c.SetCookie(h.session.CookieName, "", -1, "/", "", h.session.CookieSecure, true)
	c.Redirect(http.StatusSeeOther, "/login")
}
