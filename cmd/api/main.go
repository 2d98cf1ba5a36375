package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/deskops-tools/shift-planner/backend/internal/config"
	"github.com/deskops-tools/shift-planner/backend/internal/handler"
	"github.com/deskops-tools/shift-planner/backend/internal/roster"
	"github.com/deskops-tools/shift-planner/backend/internal/session"
)

func main() {
	/**********************************************
	 * set up the logger
	 **********************************************/
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	/**********************************************
	 * load configuration
	 **********************************************/
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		return
	}

	/**********************************************
	 * build the shift catalog
	 **********************************************/
	registry, err := roster.Builtin()
	if err != nil {
		logger.Error("invalid shift catalog", "error", err)
		return
	}

	/**********************************************
	 * choose the session store
	 **********************************************/
	sessionTTL := time.Duration(cfg.Session.TTL) * time.Second

	var store session.Store
	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       0,
		})

		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Redis.ConnectTimeout)*time.Second)
		defer cancel()

		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Error("failed to connect to redis", "error", err)
			return
		}

		store = session.NewRedisStore(rdb, sessionTTL)
		logger.Info("using redis session store", "host", cfg.Redis.Host)
	} else {
		store = session.NewMemoryStore(sessionTTL)
	}

	/**********************************************
	 * create the handler
	 **********************************************/
	h, err := handler.NewHandler(cfg, registry, store)
	if err != nil {
		logger.Error("failed to create handler", "error", err)
		return
	}
	h.RegisterRoutes()

	/**********************************************
	 * start the HTTP server
	 **********************************************/
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      h.Mux,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("starting server...", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("failed to start server", slog.String("error", err.Error()))
			return
		}
	}()

	<-quit
	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("failed to shut down server", slog.String("error", err.Error()))
	}
	logger.Info("server stopped")
}
