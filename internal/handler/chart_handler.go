package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kidanta/kidanta-center/internal/models"
	"github.com/kidanta/kidanta-center/internal/service"
)

// ChartHandler serves the behavior chart JSON consumed by the report pages.
type ChartHandler struct {
	charts *service.ChartService
}

// NewChartHandler constructs ChartHandler.
func NewChartHandler(charts *service.ChartService) *ChartHandler {
	return &ChartHandler{charts: charts}
}

// Behavior returns `{labels, mood, focus, social}` for one student. The
// payload shape is consumed as-is by the charting client, so no envelope.
func (h *ChartHandler) Behavior(c *gin.Context) {
	period := models.ChartPeriod(c.DefaultQuery("period", string(models.PeriodDaily)))
	chart, err := h.charts.Aggregate(c.Request.Context(), c.Param("id"), period)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, chart)
}
