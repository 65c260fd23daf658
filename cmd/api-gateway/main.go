package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/futuraise-gif/FuturaAIse-Academy-sub001/api/swagger"
	"github.com/futuraise-gif/FuturaAIse-Academy-sub001/internal/handler"
	"github.com/futuraise-gif/FuturaAIse-Academy-sub001/internal/middleware"
	"github.com/futuraise-gif/FuturaAIse-Academy-sub001/internal/repository"
	"github.com/futuraise-gif/FuturaAIse-Academy-sub001/internal/service"
	"github.com/futuraise-gif/FuturaAIse-Academy-sub001/pkg/cache"
	"github.com/futuraise-gif/FuturaAIse-Academy-sub001/pkg/config"
	"github.com/futuraise-gif/FuturaAIse-Academy-sub001/pkg/database"
	"github.com/futuraise-gif/FuturaAIse-Academy-sub001/pkg/jobs"
	"github.com/futuraise-gif/FuturaAIse-Academy-sub001/pkg/logger"
	corsmiddleware "github.com/futuraise-gif/FuturaAIse-Academy-sub001/pkg/middleware/cors"
	reqidmiddleware "github.com/futuraise-gif/FuturaAIse-Academy-sub001/pkg/middleware/requestid"
	"github.com/futuraise-gif/FuturaAIse-Academy-sub001/pkg/storage"
)

// @title FuturaAIse Academy Metrics API
// @version 1.0.0
// @description Derived academic metrics for course delivery
// @BasePath /api/v1
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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect database", "error", err)
	}
	defer db.Close() //nolint:errcheck

	metricsSvc := service.NewMetricsService()

	var cacheSvc *service.CacheService
	if cfg.Cache.Enabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, caching disabled", "error", err)
			cacheSvc = service.NewCacheService(nil, metricsSvc, cfg.Cache.DefaultTTL, logr, false)
		} else {
			cacheRepo := repository.NewCacheRepository(redisClient, logr)
			defer cacheRepo.Close() //nolint:errcheck
			cacheSvc = service.NewCacheService(cacheRepo, metricsSvc, cfg.Cache.DefaultTTL, logr, true)
		}
	} else {
		cacheSvc = service.NewCacheService(nil, metricsSvc, cfg.Cache.DefaultTTL, logr, false)
	}

	enrollmentRepo := repository.NewEnrollmentRepository(db)
	moduleProgressRepo := repository.NewModuleProgressRepository(db)
	submissionRepo := repository.NewSubmissionRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)

	progressSvc := service.NewProgressService(enrollmentRepo, moduleProgressRepo, submissionRepo, attendanceRepo, catalogRepo, cacheSvc, metricsSvc, logr, cfg.Progress.CacheTTL, cfg.Progress.Workers)
	analyticsSvc := service.NewAnalyticsService(enrollmentRepo, moduleProgressRepo, submissionRepo, attendanceRepo, catalogRepo, cacheSvc, metricsSvc, logr, cfg.Analytics.CacheTTL, time.Now)
	attendanceSvc := service.NewAttendanceService(attendanceRepo, cacheSvc, metricsSvc, logr, cfg.Analytics.CacheTTL)
	timelineSvc := service.NewTimelineService(enrollmentRepo, submissionRepo, attendanceRepo, catalogRepo, cacheSvc, metricsSvc, logr, cfg.Progress.CacheTTL)
	gradingSvc := service.NewGradingService(submissionRepo, catalogRepo, []service.CourseInvalidator{progressSvc, analyticsSvc, attendanceSvc, timelineSvc}, validator.New(), metricsSvc, logr, time.Now)

	analyticsHandler := handler.NewAnalyticsHandler(analyticsSvc)
	progressHandler := handler.NewProgressHandler(progressSvc)
	attendanceHandler := handler.NewAttendanceHandler(attendanceSvc)
	timelineHandler := handler.NewTimelineHandler(timelineSvc)
	gradingHandler := handler.NewGradingHandler(gradingSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	var reportHandler *handler.ReportHandler
	if cfg.Reports.Enabled {
		store, err := storage.NewLocalStorage(cfg.Reports.StorageDir)
		if err != nil {
			logr.Sugar().Fatalw("failed to init report storage", "error", err)
		}
		signer := storage.NewSignedURLSigner(cfg.Reports.SignedURLSecret, cfg.Reports.SignedURLTTL)
		exportSvc := service.NewExportService(analyticsSvc, progressSvc, attendanceSvc, store, signer, service.ExportConfig{
			APIPrefix: cfg.APIPrefix,
			ResultTTL: cfg.Reports.SignedURLTTL,
		}, logr, nil, nil)

		reportRepo := repository.NewReportRepository(db)
		worker := service.NewReportWorker(reportRepo, exportSvc, cfg.Reports.WorkerRetries, logr)
		queue := jobs.NewQueue("reports", worker.Handle, jobs.QueueConfig{
			Workers:    cfg.Reports.WorkerConcurrency,
			MaxRetries: cfg.Reports.WorkerRetries,
			Logger:     logr,
		})
		queue.Start(ctx)
		defer queue.Stop()

		reportSvc := service.NewReportService(reportRepo, queue, exportSvc, logr, service.ReportServiceConfig{
			ResultTTL:       cfg.Reports.SignedURLTTL,
			CleanupInterval: cfg.Reports.CleanupInterval,
			MaxRetries:      cfg.Reports.WorkerRetries,
		})
		reportSvc.RecoverPendingJobs(ctx)
		reportSvc.StartCleanup(ctx)
		reportHandler = handler.NewReportHandler(reportSvc)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))
	r.Use(middleware.WithResponseMeta())

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		courses := api.Group("/courses/:courseId")
		{
			courses.GET("/analytics", analyticsHandler.Course)
			courses.GET("/progress", progressHandler.Course)
			courses.GET("/attendance", attendanceHandler.Course)
			courses.GET("/students/:studentId/progress", progressHandler.Student)
			courses.GET("/students/:studentId/attendance", attendanceHandler.Student)
			courses.GET("/students/:studentId/timeline", timelineHandler.Student)
			courses.POST("/assignments/:assignmentId/grade", gradingHandler.Grade)
		}
		api.GET("/system/metrics", analyticsHandler.System)
		if reportHandler != nil {
			api.POST("/reports/generate", reportHandler.GenerateReport)
			api.GET("/reports/status/:id", reportHandler.ReportStatus)
			api.GET("/export/:token", reportHandler.DownloadReport)
		}
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{Addr: addr, Handler: r}

	go func() {
		logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Sugar().Warnw("graceful shutdown failed", "error", err)
	}
	logr.Sugar().Infow("server stopped")
}
