package models

import "time"

// Session is the server-side login state referenced by the session cookie.
// The token itself is opaque; everything needed per request is denormalised
// here so protected routes avoid a user lookup.
type Session struct {
	Token     string    `json:"-"`
	UserID    string    `json:"user_id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Role      UserRole  `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Flash is a one-shot message queued for the next rendered page.
type Flash struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// Flash levels, mirroring the bootstrap-style alert classes the templates use.
const (
	FlashSuccess = "success"
	FlashInfo    = "info"
	FlashWarning = "warning"
	FlashDanger  = "danger"
)
