package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"chillout-web/internal/backend"
	"chillout-web/internal/cart"
	"chillout-web/internal/checkout"
	"chillout-web/internal/config"
	"chillout-web/internal/httpserver"
	"chillout-web/internal/kvstore"
	"chillout-web/internal/menu"
	"chillout-web/internal/session"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[web] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()

	var kv kvstore.Store
	if cfg.RedisAddr != "" {
		rds, err := kvstore.ConnectRedis(ctx, cfg.RedisAddr)
		if err != nil {
			logger.Fatalf("connect to redis: %v", err)
		}
		defer rds.Close()
		kv = rds
		logger.Printf("using redis session store at %s", cfg.RedisAddr)
	} else {
		kv = kvstore.NewMemory()
	}

	backendClient := backend.New(cfg.BackendBaseURL, logger)
	sessions := session.NewStore(kv, cfg.SessionTTL)
	carts := cart.NewStore(backendClient, kv, cfg.SessionTTL, logger)
	menuService := menu.New(backendClient, kv, cfg.MenuCacheTTL, logger)
	dispatcher := checkout.NewDispatcher(backendClient, carts, sessions, logger)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, httpserver.Deps{
		Menu:       menuService,
		Carts:      carts,
		Dispatcher: dispatcher,
		Sessions:   sessions,
		Admin:      backendClient,
		Bank:       cfg.Bank,
		Origins:    cfg.AllowedOrigins,
		SessionTTL: cfg.SessionTTL,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s (backend %s)", cfg.HTTPAddr, cfg.BackendBaseURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
