package main

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/crickmart/backend/internal/config"
	"github.com/crickmart/backend/internal/db"
	"github.com/crickmart/backend/internal/events"
	"github.com/crickmart/backend/internal/httpserver"
	"github.com/crickmart/backend/internal/logging"
	"github.com/crickmart/backend/internal/middleware"
	"github.com/crickmart/backend/internal/repo"
	"github.com/crickmart/backend/internal/search"
	"github.com/crickmart/backend/internal/service"
	"github.com/crickmart/backend/internal/teams"
)

func main() {
	cfg := config.Load()
	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")
	config.MustNonEmptyBytes(cfg.JWTSecret, "JWT_SECRET")

	logger := logging.New(cfg.LogLevel)

	ctx := context.Background()

	gdb, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("startup_error", "reason", "database", "error", err)
		os.Exit(1)
	}
	if err := db.AutoMigrate(gdb); err != nil {
		logger.Error("startup_error", "reason", "migrate", "error", err)
		os.Exit(1)
	}

	producer := events.NewProducer(cfg.KafkaBrokers)
	defer producer.Close()
	if len(cfg.KafkaBrokers) == 0 {
		logger.Warn("kafka disabled, no brokers configured")
	}

	var searchClient *search.Client
	if cfg.ESURL != "" {
		searchClient, err = search.NewClient(cfg.ESURL, cfg.ESUser, cfg.ESPassword, cfg.ESIndex)
		if err != nil {
			logger.Error("startup_error", "reason", "elasticsearch", "error", err)
			os.Exit(1)
		}
	} else {
		logger.Warn("search disabled, ES_URL not configured")
	}

	store := &repo.GormRepo{DB: gdb}
	picker := teams.NewPicker(rand.NewSource(time.Now().UnixNano()))

	authSvc := &service.AuthService{Repo: store, Teams: picker, JWTSecret: cfg.JWTSecret}
	catalogSvc := &service.CatalogService{Repo: store}
	cartSvc := &service.CartService{Repo: store}

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = 15 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	e.Server.IdleTimeout = 60 * time.Second

	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	e.Use(middleware.RequestLogger(logger))

	httpserver.Register(e, &httpserver.Deps{
		AuthHandler:    &httpserver.AuthHTTP{Svc: authSvc, Producer: producer},
		ProductHandler: &httpserver.ProductHTTP{Svc: catalogSvc, Producer: producer, Search: searchClient},
		CartHandler:    &httpserver.CartHTTP{Svc: cartSvc, Producer: producer},
		JWTSecret:      cfg.JWTSecret,
	})

	go func() {
		addr := fmt.Sprintf(":%d", cfg.ServerPort)
		logger.Info("server starting", "addr", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("server_error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown_error", "error", err)
	}

	if sqlDB, err := gdb.DB(); err == nil {
		sqlDB.Close()
	}
}
