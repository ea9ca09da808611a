package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"gigbook/internal/amqp"
	"gigbook/internal/config"
	apphttp "gigbook/internal/http"
	applog "gigbook/internal/log"
	"gigbook/internal/services"
	"gigbook/internal/storage"
	"gigbook/internal/store"
	"gigbook/internal/suggest"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	logger := applog.New(applog.DefaultConfig())
	applog.SetDefault(logger)

	logger.Info("Starting gigbook server")

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	st := store.New()
	st.Seed()

	// The mirror is the source of truth across restarts; the seed only
	// covers collections it has never written.
	mirror, err := storage.NewMirrorStore(cfg.SQLiteDBPath)
	if err != nil {
		logger.Error("Failed to initialize mirror store", "error", err, "path", cfg.SQLiteDBPath)
		os.Exit(1)
	}
	defer mirror.Close()
	mirror.RestoreAll(context.Background(), st)
	logger.Info("Collections restored from mirror", "path", cfg.SQLiteDBPath)

	// AMQP is optional: without it the periodic flush below is the only
	// mirror path.
	var amqpClient *amqp.Client
	if cfg.AMQPURL != "" {
		amqpClient, err = amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Warn("AMQP unavailable, mirroring synchronously only", "error", err)
		} else {
			defer amqpClient.Close()
			logger.Info("AMQP client initialized", "exchange", cfg.AMQPExchange, "queue", cfg.AMQPQueue)
		}
	}

	svc := services.NewBookingService(st, amqpClient)

	var suggester apphttp.Suggester
	if cfg.GeminiAPIKey != "" {
		client, err := suggest.New(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel, cfg.SuggestTimeout)
		if err != nil {
			logger.Error("Failed to initialize suggestion client", "error", err)
			os.Exit(1)
		}
		suggester = client
		logger.Info("Suggestion client initialized", "model", cfg.GeminiModel)
	} else {
		logger.Info("Schedule suggestions disabled - no GEMINI_API_KEY provided")
	}

	srv := apphttp.NewServer(":"+cfg.Port, svc, suggester)

	// Configure server timeouts and limits
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 30 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Periodic full flush backstops lost or unpublished sync messages.
	go func() {
		ticker := time.NewTicker(cfg.MirrorInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := mirror.FlushAll(ctx, st); err != nil {
					slog.ErrorContext(ctx, "Periodic mirror flush failed", "error", err)
				}
			}
		}
	}()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
		// Final flush so nothing written since the last sweep is lost.
		if err := mirror.FlushAll(shutdownCtx, st); err != nil {
			logger.Error("Final mirror flush failed", "error", err)
		}
		cancel()
	}()

	logger.Info("Starting gigbook server", "port", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err, "port", cfg.Port)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
}
