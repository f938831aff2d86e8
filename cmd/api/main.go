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

	"github.com/zenith-digital/dashboard-api/internal/assistant"
	"github.com/zenith-digital/dashboard-api/internal/config"
	"github.com/zenith-digital/dashboard-api/internal/handler"
	"github.com/zenith-digital/dashboard-api/internal/ledger"
	"github.com/zenith-digital/dashboard-api/internal/logging"
	"github.com/zenith-digital/dashboard-api/internal/middleware"
	"github.com/zenith-digital/dashboard-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logging.Init("zenith-api", cfg.LogLevel, cfg.AppEnv)

	store := ledger.NewStore(ledger.SeedAccounts())
	reads := service.NewReadService(store)
	transactions := service.NewTransactionService(store)

	assistantClient := assistant.NewClient(
		cfg.AssistantBaseURL,
		cfg.AssistantAPIKey,
		cfg.AssistantModel,
		time.Duration(cfg.AssistantTimeoutS)*time.Second,
	)
	if !assistantClient.Configured() {
		slog.Warn("ASSISTANT_API_KEY not set, assistant replies will degrade to a fallback message")
	}
	sessions := assistant.NewSessions(assistantClient)

	ledgerHandler := handler.NewLedgerHandler(reads, transactions)
	assistantHandler := handler.NewAssistantHandler(sessions, reads)
	healthHandler := handler.NewHealthHandler(assistantClient)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health/live", healthHandler.Liveness)
	mux.HandleFunc("GET /health/ready", healthHandler.Readiness)
	mux.HandleFunc("GET /api/v1/dashboard", ledgerHandler.Dashboard)
	mux.HandleFunc("GET /api/v1/accounts", ledgerHandler.ListAccounts)
	mux.HandleFunc("GET /api/v1/transactions", ledgerHandler.ListTransactions)
	mux.HandleFunc("POST /api/v1/transactions", ledgerHandler.Submit)
	mux.HandleFunc("POST /api/v1/assistant/messages", assistantHandler.Ask)

	var root http.Handler = mux
	root = middleware.Latency(time.Duration(cfg.SimulatedLatencyMs) * time.Millisecond)(root)
	root = middleware.Recovery(root)
	root = middleware.Logging(root)
	root = middleware.Tracing(root)

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           root,
		ReadTimeout:       15 * time.Second,
		// Assistant calls can take as long as the configured model timeout.
		WriteTimeout: time.Duration(cfg.AssistantTimeoutS+15) * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server started", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
