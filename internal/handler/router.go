package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kidanta/kidanta-center/internal/middleware"
	"github.com/kidanta/kidanta-center/internal/models"
	"github.com/kidanta/kidanta-center/internal/service"
	"github.com/kidanta/kidanta-center/pkg/config"
	"github.com/kidanta/kidanta-center/pkg/logger"
	reqidmiddleware "github.com/kidanta/kidanta-center/pkg/middleware/requestid"
)

// Handlers groups every handler mounted by the router.
type Handlers struct {
	Auth      *AuthHandler
	Dashboard *DashboardHandler
	Student   *StudentHandler
	Activity  *ActivityHandler
	Logbook   *LogbookHandler
	Chart     *ChartHandler
	Report    *ReportHandler
}

// NewRouter builds the gin engine with middleware, templates and all routes.
func NewRouter(cfg *config.Config, logr *zap.Logger, metrics *service.MetricsService, auth *service.AuthService, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(middleware.Metrics(metrics))

	r.LoadHTMLGlob(cfg.TemplatesGlob)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	r.GET("/register", h.Auth.ShowRegister)
	r.POST("/register", h.Auth.Register)
	r.GET("/login", h.Auth.ShowLogin)
	r.POST("/login", h.Auth.Login)

	authed := r.Group("")
	authed.Use(middleware.RequireSession(auth, cfg.Session.CookieName))
	{
		authed.GET("/", h.Dashboard.Show)
		authed.GET("/logout", h.Auth.Logout)

		authed.GET("/students", h.Student.List)
		authed.GET("/students/new", h.Student.ShowNew)
		authed.POST("/students/new", h.Student.Create)
		authed.GET("/students/:id", h.Student.Detail)
		authed.GET("/students/:id/edit", h.Student.ShowEdit)
		authed.POST("/students/:id/edit", h.Student.Update)
		authed.GET("/print/student/:id", h.Student.Print)

		authed.GET("/activities", h.Activity.List)
		authed.GET("/activities/new", h.Activity.ShowNew)
		authed.POST("/activities/new", h.Activity.Create)
		authed.GET("/activities/:id/edit", h.Activity.ShowEdit)
		authed.POST("/activities/:id/edit", h.Activity.Update)

		authed.POST("/logs/behavior/new", h.Logbook.CreateBehavior)
		authed.POST("/logs/activity/new", h.Logbook.CreateActivity)

		authed.GET("/reports", h.Report.Show)
		authed.GET("/api/charts/behavior/:id", h.Chart.Behavior)

		admin := authed.Group("")
		admin.Use(middleware.RequireRoles(models.RoleAdmin))
		{
			admin.POST("/students/:id/delete", h.Student.Delete)
			admin.POST("/activities/:id/delete", h.Activity.Delete)
		}
	}

	return r
}
