package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/kidanta/kidanta-center/internal/database"
	"github.com/kidanta/kidanta-center/internal/handler"
	"github.com/kidanta/kidanta-center/internal/repository"
	"github.com/kidanta/kidanta-center/internal/service"
	"github.com/kidanta/kidanta-center/pkg/cache"
	"github.com/kidanta/kidanta-center/pkg/config"
	pkgdatabase "github.com/kidanta/kidanta-center/pkg/database"
	"github.com/kidanta/kidanta-center/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := pkgdatabase.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect database", "error", err)
	}
	defer db.Close()

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect redis", "error", err)
	}
	defer redisClient.Close()

	bootCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := database.Migrate(bootCtx, db); err != nil {
		logr.Sugar().Fatalw("failed to migrate database", "error", err)
	}
	if err := database.Seed(bootCtx, db, cfg.BcryptCost); err != nil {
		logr.Sugar().Fatalw("failed to seed database", "error", err)
	}

	location, err := time.LoadLocation(cfg.ReportingTimezone)
	if err != nil {
		logr.Sugar().Fatalw("failed to load reporting timezone", "timezone", cfg.ReportingTimezone, "error", err)
	}

	validate := validator.New()

	userRepo := repository.NewUserRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	logbookRepo := repository.NewLogbookRepository(db)
	sessionRepo := repository.NewSessionRepository(redisClient, cfg.Session.TTL)

	authSvc := service.NewAuthService(userRepo, sessionRepo, validate, logr, cfg.BcryptCost)
	studentSvc := service.NewStudentService(studentRepo, logbookRepo, activityRepo, validate, logr)
	activitySvc := service.NewActivityService(activityRepo, validate, logr)
	logbookSvc := service.NewLogbookService(logbookRepo, studentRepo, validate, logr, location)
	chartSvc := service.NewChartService(logbookRepo, logr)
	dashboardSvc := service.NewDashboardService(studentRepo, activityRepo, logbookRepo, logr, location)
	metricsSvc := service.NewMetricsService()

	handlers := handler.Handlers{
		Auth:      handler.NewAuthHandler(authSvc, cfg.Session),
		Dashboard: handler.NewDashboardHandler(dashboardSvc),
		Student:   handler.NewStudentHandler(studentSvc),
		Activity:  handler.NewActivityHandler(activitySvc),
		Logbook:   handler.NewLogbookHandler(logbookSvc),
		Chart:     handler.NewChartHandler(chartSvc),
		Report:    handler.NewReportHandler(studentSvc),
	}

	r := handler.NewRouter(cfg, logr, metricsSvc, authSvc, handlers)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
