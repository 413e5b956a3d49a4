package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/academy-api/internal/handler"
	"github.com/noah-isme/academy-api/internal/middleware"
	"github.com/noah-isme/academy-api/internal/service"
	"github.com/noah-isme/academy-api/internal/store"
	"github.com/noah-isme/academy-api/pkg/config"
	"github.com/noah-isme/academy-api/pkg/format"
	"github.com/noah-isme/academy-api/pkg/logger"
	"github.com/noah-isme/academy-api/pkg/metrics"
	"github.com/noah-isme/academy-api/pkg/middleware/bodylimit"
	corsmiddleware "github.com/noah-isme/academy-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/academy-api/pkg/middleware/requestid"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr := logger.New(logger.FromConfig(cfg))
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	courseStore := store.NewCourseStore()
	userStore := store.NewUserStore()
	if cfg.Store.Seed {
		store.SeedCourses(courseStore)
		store.SeedUsers(userStore)
	}

	validate := service.NewValidator()
	courseSvc := service.NewCourseService(courseStore, validate, logr)
	userSvc := service.NewUserService(userStore, validate, logr)

	var collector *metrics.Collector
	if cfg.Metrics.Enabled {
		collector = metrics.NewCollector()
	}

	r := gin.New()
	r.Use(middleware.Recovery(logr, cfg.IsDevelopment()))
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(metrics.Middleware(collector))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(bodylimit.New(cfg.Server.MaxBodyBytes))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, format.Stamp(gin.H{"status": "ok"}))
	})
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, format.Stamp(gin.H{"status": "ready"}))
	})
	if collector != nil {
		r.GET("/metrics", collector.Handler)
	}

	api := r.Group(cfg.APIPrefix)
	handler.NewCourseHandler(courseSvc).Register(api)
	handler.NewUserHandler(userSvc).Register(api)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Info("server starting")
	logr.Success(fmt.Sprintf("listening on %s (%s)", addr, cfg.Env))
	if err := r.Run(addr); err != nil {
		logr.Failure("server failed", err)
	}
}
