package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kidanta/kidanta-center/internal/models"
)

func TestFlashRoundTrip(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/set", func(c *gin.Context) {
		Flash(c, models.FlashSuccess, "student saved")
		c.Status(http.StatusOK)
	})
	var got []models.Flash
	r.GET("/read", func(c *gin.Context) {
		got = TakeFlashes(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/set", nil))
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	req := httptest.NewRequest(http.MethodGet, "/read", nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Len(t, got, 1)
	assert.Equal(t, models.FlashSuccess, got[0].Level)
	assert.Equal(t, "student saved", got[0].Message)

	// reading clears the cookie
	var cleared bool
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == flashCookie && cookie.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared)
}

func TestTakeFlashesIgnoresGarbageCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	var got []models.Flash
	r.GET("/read", func(c *gin.Context) {
		got = TakeFlashes(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/read", nil)
	req.AddCookie(&http.Cookie{Name: flashCookie, Value: "not-base64!!"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Empty(t, got)
}
