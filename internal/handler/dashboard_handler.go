package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kidanta/kidanta-center/internal/service"
)

// DashboardHandler serves the landing page.
type DashboardHandler struct {
	dashboard *service.DashboardService
}

// NewDashboardHandler constructs DashboardHandler.
func NewDashboardHandler(dashboard *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// Show renders the dashboard counters.
func (h *DashboardHandler) Show(c *gin.Context) {
	summary, err := h.dashboard.Summary(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	render(c, http.StatusOK, "dashboard.html", gin.H{"Summary": summary})
}
