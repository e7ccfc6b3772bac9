package handler

import (
	"encoding/base64"
	"encoding/json"

	"github.com/gin-gonic/gin"

	"github.com/kidanta/kidanta-center/internal/models"
)

// flashCookie carries one-shot messages across the redirect that follows
// every form submission. A cookie (not server state) so that pre-login pages
// can flash too.
const flashCookie = "kidanta_flash"

// Flash queues a message for the next rendered page.
func Flash(c *gin.Context, level, message string) {
	flashes := readFlashes(c)
	flashes = append(flashes, models.Flash{Level: level, Message: message})
	payload, err := json.Marshal(flashes)
	if err != nil {
		return
	}
	c.SetCookie(flashCookie, base64.RawURLEncoding.EncodeToString(payload), 300, "/", "", false, true)
}

// TakeFlashes returns queued messages and clears the cookie.
func TakeFlashes(c *gin.Context) []models.Flash {
	flashes := readFlashes(c)
	if len(flashes) > 0 {
		c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	}
	return flashes
}

func readFlashes(c *gin.Context) []models.Flash {
	raw, err := c.Cookie(flashCookie)
	if err != nil || raw == "" {
		return nil
	}
	decoded, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return nil
	}
	var flashes []models.Flash
	if err := json.Unmarshal(decoded, &flashes); err != nil {
		return nil
	}
	return flashes
}
