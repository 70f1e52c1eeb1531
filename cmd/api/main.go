package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/todoapp/todo-api/docs"
	"github.com/todoapp/todo-api/internal/api"
	"github.com/todoapp/todo-api/internal/auth"
	"github.com/todoapp/todo-api/internal/infrastructure/config"
	"github.com/todoapp/todo-api/internal/infrastructure/db/sqlite"
	"github.com/todoapp/todo-api/pkg/logger"
)

// @title           ToDoApp REST API
// @version         1.0
// @description     Multi-user to-do list API with JWT authentication and per-user ownership.
// @BasePath        /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	db, err := sqlite.Connect(sqlite.Config{Path: cfg.SQLite.Path})
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}

	tokens := auth.NewTokenManager(auth.TokenConfig{
		SecretKey:  cfg.JWT.Secret,
		AccessTTL:  cfg.JWT.AccessTTL,
		RefreshTTL: cfg.JWT.RefreshTTL,
		Issuer:     cfg.JWT.Issuer,
	})

	e := api.NewRouter(db, tokens, log)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server start failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}
