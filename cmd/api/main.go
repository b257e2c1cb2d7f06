package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"memberdesk/pkg/translator"

	dbadapter "memberdesk/internal/adapter/db"
	httpadapter "memberdesk/internal/adapter/http"
	"memberdesk/internal/adapter/http/handlers"
	httpmiddleware "memberdesk/internal/adapter/http/middleware"
	appservice "memberdesk/internal/app/service"
	"memberdesk/internal/config"
)

const shutdownTimeout = 10 * time.Second

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

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg := config.LoadConfig()
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	database, err := dbadapter.Connect(context.Background(), cfg)
	if err != nil {
		logger.Fatal("failed to connect to mongodb", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := database.Client().Disconnect(ctx); err != nil {
			logger.Warn("failed to disconnect from mongodb", zap.Error(err))
		}
	}()

	r := gin.New()
	r.Use(
		gin.Recovery(),
		httpmiddleware.RequestID(),
		httpmiddleware.GinZapMiddleware(logger),
		cors.New(corsConfig(cfg)),
	)

	healthHandler := handlers.NewHealthHandler(database, cfg)
	memberHandler := handlers.NewMemberHandler(
		appservice.NewMemberService(dbadapter.NewMemberRepository(database)),
		!cfg.IsProduction(),
	)
	taskHandler := handlers.NewTaskHandler(
		appservice.NewTaskService(dbadapter.NewTaskRepository(database)),
		!cfg.IsProduction(),
	)
	httpadapter.RegisterRoutes(r, healthHandler, memberHandler, taskHandler, cfg.StaticDir)

	server := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: r,
	}

	go func() {
		logger.Info("starting server",
			zap.String("addr", server.Addr),
			zap.String("env", cfg.Env),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("could not start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}
}

func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Accept-Language", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	if len(cfg.ClientOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.ClientOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	return corsCfg
}
