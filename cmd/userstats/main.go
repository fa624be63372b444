package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/davydav/userstats/internal/config"
	"github.com/davydav/userstats/internal/database"
	"github.com/davydav/userstats/internal/logging"
	"github.com/davydav/userstats/internal/server"
	"github.com/davydav/userstats/internal/session"
	"github.com/davydav/userstats/internal/statsapi"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	// Flags override the environment.
	pflag.StringVar(&cfg.Port, "port", cfg.Port, "HTTP listen port")
	pflag.StringVar(&cfg.DBPath, "db", cfg.DBPath, "path to the SQLite database file")
	pflag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	pflag.Parse()

	logger := logging.Setup(cfg.LogLevel)

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		logger.Error("open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	api := statsapi.NewClient(statsapi.Config{
		APIKey:  cfg.StatsAPIKey,
		BaseURL: cfg.StatsAPIURL,
	})

	srv := server.New(db, api, session.NewMemoryManager(), logger)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv.Router(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("listening", "addr", "http://localhost:"+cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
		os.Exit(1)
	}
}
