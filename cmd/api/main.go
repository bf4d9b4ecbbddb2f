package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/bilimly/bilimly-api/api/swagger"
	"github.com/bilimly/bilimly-api/internal/handler"
	"github.com/bilimly/bilimly-api/internal/migrations"
	"github.com/bilimly/bilimly-api/internal/repository"
	"github.com/bilimly/bilimly-api/internal/router"
	"github.com/bilimly/bilimly-api/internal/security"
	"github.com/bilimly/bilimly-api/internal/service"
	"github.com/bilimly/bilimly-api/pkg/cache"
	"github.com/bilimly/bilimly-api/pkg/config"
	"github.com/bilimly/bilimly-api/pkg/database"
	"github.com/bilimly/bilimly-api/pkg/logger"
)

// @title Bilimly API
// @version 1.0.0
// @description REST backend for the Bilimly tutoring platform
// @BasePath /api
// @schemes http

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

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to database", "error", err)
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := migrations.Run(ctx, db.DB); err != nil {
			cancel()
			logr.Sugar().Fatalw("failed to run migrations", "error", err)
		}
		cancel()
	}

	tokens := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.Expiration)
	metrics := service.NewMetricsService()

	var cacheRepo service.CacheRepository
	if cfg.Courses.CacheEnabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, course cache disabled", zap.Error(err))
		} else {
			repo := repository.NewCacheRepository(redisClient, logr)
			defer repo.Close() //nolint:errcheck
			cacheRepo = repo
		}
	}
	cacheSvc := service.NewCacheService(cacheRepo, metrics, cfg.Courses.CacheTTL, logr, cfg.Courses.CacheEnabled)

	userRepo := repository.NewUserRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	statusRepo := repository.NewStatusRepository(db)

	authSvc := service.NewAuthService(userRepo, tokens, nil, logr)
	courseSvc := service.NewCourseService(courseRepo, cacheSvc, logr)
	userSvc := service.NewUserService(userRepo, logr)

	r := router.New(router.Deps{
		Config:         cfg,
		Logger:         logr,
		Tokens:         tokens,
		Metrics:        metrics,
		Auth:           handler.NewAuthHandler(authSvc),
		Courses:        handler.NewCourseHandler(courseSvc),
		Profile:        handler.NewProfileHandler(userSvc),
		Admin:          handler.NewAdminHandler(userSvc),
		Health:         handler.NewHealthHandler(statusRepo),
		MetricsHandler: handler.NewMetricsHandler(metrics),
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
