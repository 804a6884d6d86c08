package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dayplanner/internal/adapter/db"
	httpadapter "dayplanner/internal/adapter/http"
	"dayplanner/internal/adapter/http/handlers"
	httpmiddleware "dayplanner/internal/adapter/http/middleware"
	"dayplanner/internal/app/service"
	"dayplanner/internal/config"
	"dayplanner/internal/core/domain"
	"dayplanner/pkg/translator"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	connectTimeout  = 10 * time.Second
	shutdownTimeout = 5 * time.Second
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	cfg := config.LoadConfig()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationFolder,
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageZh, translator.LanguageFr},
	})

	calendar, err := domain.LoadCalendar(cfg.Timezone)
	if err != nil {
		logger.Fatal("failed to load timezone", zap.String("timezone", cfg.Timezone), zap.Error(err))
	}

	connectCtx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	conn, err := db.ConnectDB(connectCtx, cfg)
	cancel()
	if err != nil {
		logger.Fatal("failed to connect to database", zap.String("driver", cfg.DbDriver), zap.Error(err))
	}
	defer func() {
		if err := conn.Close(); err != nil {
			logger.Warn("failed to close database connection", zap.Error(err))
		}
	}()

	taskRepository := db.NewTaskRepository(conn, calendar)
	timeBlockRepository := db.NewTimeBlockRepository(conn, calendar)

	taskService := service.NewTaskService(calendar, taskRepository, timeBlockRepository)
	timeBlockService := service.NewTimeBlockService(calendar, timeBlockRepository)
	statsService := service.NewStatsService(calendar, taskRepository, timeBlockRepository)

	if cfg.AppEnv != config.EnvDevelopment {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Strings("proxies", cfg.TrustedProxies), zap.Error(err))
	}

	httpadapter.RegisterRoutes(r, httpadapter.Handlers{
		Health:    handlers.NewHealthHandler(conn, calendar),
		Task:      handlers.NewTaskHandler(taskService, calendar),
		TimeBlock: handlers.NewTimeBlockHandler(timeBlockService, calendar),
		Stats:     handlers.NewStatsHandler(statsService, calendar),
	})

	server := &http.Server{
		Addr:              net.JoinHostPort("", cfg.AppPort),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("starting server",
			zap.String("addr", server.Addr),
			zap.String("driver", cfg.DbDriver),
			zap.String("timezone", calendar.Location().String()),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("could not start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("failed to shut down server", zap.Error(err))
		return
	}
	logger.Info("server stopped")
}
