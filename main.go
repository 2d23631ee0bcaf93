package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "navmind/internal/config"
	router "navmind/internal/http"
	"navmind/internal/llm"
	"navmind/internal/repositories"
	"navmind/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	logger, err := utils.NewLogger(env.LogLevel)
	if err != nil {
		panic(err)
	}
	utils.SetLogger(logger)
	defer func() { _ = logger.Sync() }()

	if err := env.Validate(); err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	client, err := llm.NewGroqClient(llm.Config{
		APIKey:      env.GroqAPIKey,
		Model:       env.LLMModel,
		BaseURL:     env.LLMBaseURL,
		Temperature: env.LLMTemperature,
	})
	if err != nil {
		logger.Fatal("failed to create llm client", zap.Error(err))
	}
	if env.GroqAPIKey == "" {
		logger.Warn("GROQ_API_KEY is not set; trip planning requests will fail")
	}

	deps := router.Deps{LLM: client}
	if env.AccountsEnabled() {
		db, err := intconfig.ConnectDB(env.DBDSN)
		if err != nil {
			logger.Fatal("failed to connect account database", zap.Error(err))
		}
		defer intconfig.CloseDB()

		users := repositories.UserRepository{DB: db}
		if err := users.EnsureSchema(); err != nil {
			logger.Fatal("failed to prepare users table", zap.Error(err))
		}
		deps.Users = users
		logger.Info("accounts enabled; /api/plans requires a bearer token")
	}

	r, err := router.NewRouter(env, deps)
	if err != nil {
		logger.Fatal("failed to build router", zap.Error(err))
	}

	// Plan generation runs four sequential LLM calls, hence the long write timeout.
	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      env.WriteTimeout,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("addr", env.AppAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server shutdown failed", zap.Error(err))
	}

	logger.Info("server stopped")
}
