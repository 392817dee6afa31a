package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/smashpoint/academy-api/api/swagger"
	"github.com/smashpoint/academy-api/internal/handler"
	"github.com/smashpoint/academy-api/internal/middleware"
	"github.com/smashpoint/academy-api/internal/repository"
	"github.com/smashpoint/academy-api/internal/service"
	"github.com/smashpoint/academy-api/pkg/cache"
	"github.com/smashpoint/academy-api/pkg/config"
	"github.com/smashpoint/academy-api/pkg/database"
	"github.com/smashpoint/academy-api/pkg/export"
	"github.com/smashpoint/academy-api/pkg/logger"
	corsmiddleware "github.com/smashpoint/academy-api/pkg/middleware/cors"
	reqidmiddleware "github.com/smashpoint/academy-api/pkg/middleware/requestid"
)

// @title Smashpoint Academy API
// @version 0.1.0
// @description Session scheduling and facility blackout management
// @BasePath /
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

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	validate := validator.New()
	metrics := service.NewMetricsService()

	// Redis is optional: without it list reads go straight to the store.
	var listCache *repository.CacheRepository
	if redisClient, err := cache.NewRedis(cfg.Redis); err != nil {
		logr.Warn("redis unavailable, session list cache disabled")
	} else {
		defer redisClient.Close()
		listCache = repository.NewCacheRepository(redisClient, logr)
	}

	sessionRepo := repository.NewSessionRepository(db)
	blackoutRepo := repository.NewBlackoutRepository(db)
	participantRepo := repository.NewParticipantRepository(db)
	classRepo := repository.NewClassRepository(db)
	locationRepo := repository.NewLocationRepository(db)
	coachRepo := repository.NewCoachRepository(db)
	playerRepo := repository.NewPlayerRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	userRepo := repository.NewUserRepository(db)

	authSvc := service.NewAuthService(userRepo, cfg.JWT, validate, logr)
	sessionSvc := service.NewSessionService(sessionRepo, blackoutRepo, classRepo, participantRepo, playerRepo, listCache, validate, logr, cfg.Scheduling)
	sessionSvc.SetMetrics(metrics)
	blackoutSvc := service.NewBlackoutService(blackoutRepo, sessionRepo, db, listCache, validate, logr)
	generatorSvc := service.NewGeneratorService(sessionRepo, blackoutRepo, classRepo, db, listCache, validate, logr, cfg.Scheduling)
	generatorSvc.SetMetrics(metrics)
	classSvc := service.NewClassService(classRepo, validate)
	locationSvc := service.NewLocationService(locationRepo, validate)
	coachSvc := service.NewCoachService(coachRepo, validate)
	playerSvc := service.NewPlayerService(playerRepo, validate)
	attendanceSvc := service.NewAttendanceService(attendanceRepo, db, logr)
	exportSvc := service.NewExportService(sessionRepo, export.NewCSVExporter(), export.NewPDFExporter(), logr)

	authHandler := handler.NewAuthHandler(authSvc)
	sessionHandler := handler.NewSessionHandler(sessionSvc)
	generatorHandler := handler.NewSessionGeneratorHandler(generatorSvc)
	blackoutHandler := handler.NewBlackoutHandler(blackoutSvc)
	classHandler := handler.NewClassHandler(classSvc)
	locationHandler := handler.NewLocationHandler(locationSvc)
	coachHandler := handler.NewCoachHandler(coachSvc)
	playerHandler := handler.NewPlayerHandler(playerSvc)
	attendanceHandler := handler.NewAttendanceHandler(attendanceSvc)
	exportHandler := handler.NewExportHandler(exportSvc)
	metricsHandler := handler.NewMetricsHandler(metrics)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	registerRoutes(r, authSvc, handlerSet{
		auth:       authHandler,
		sessions:   sessionHandler,
		generator:  generatorHandler,
		blackouts:  blackoutHandler,
		classes:    classHandler,
		locations:  locationHandler,
		coaches:    coachHandler,
		players:    playerHandler,
		attendance: attendanceHandler,
		exports:    exportHandler,
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
