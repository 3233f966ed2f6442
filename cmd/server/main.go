package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/tipcalc/internal/auth"
	"github.com/mmynk/tipcalc/internal/config"
	"github.com/mmynk/tipcalc/internal/middleware"
	"github.com/mmynk/tipcalc/internal/service"
	"github.com/mmynk/tipcalc/internal/storage"
	"github.com/mmynk/tipcalc/internal/storage/memory"
	"github.com/mmynk/tipcalc/internal/storage/sqlite"
	"github.com/mmynk/tipcalc/pkg/logging"
	"github.com/mmynk/tipcalc/pkg/tipapi"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Setup()
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	logging.SetupWithLevel(cfg.LogLevel)

	store, err := openStore(cfg)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	tokens := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)

	// Logging is outermost so rejected tokens are logged and counted too.
	interceptors := connect.WithInterceptors(
		middleware.LoggingInterceptor(),
		middleware.MetricsInterceptor(),
		middleware.RequireSession(tokens, tipapi.PublicProcedures...),
	)

	mux := http.NewServeMux()
	tipPath, tipHandler := tipapi.NewTipServiceHandler(service.NewTipService(store, tokens), interceptors)
	mux.Handle(tipPath, tipHandler)
	mux.Handle(cfg.MetricsPath, promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	// Wrap with h2c for HTTP/2 without TLS
	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           h2c.NewHandler(loggingMiddleware(corsMiddleware(mux)), &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("Connect server starting", "address", cfg.Addr(), "metrics", cfg.MetricsPath)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Shutdown failed", "error", err)
	}
}

// openStore picks SQLite when DB_PATH is set, otherwise process memory.
func openStore(cfg *config.Config) (storage.Store, error) {
	if cfg.InMemory() {
		slog.Info("Storage initialized", "backend", "memory")
		return memory.New(), nil
	}

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	slog.Info("Storage initialized", "backend", "sqlite", "database", cfg.DBPath)
	return store, nil
}

// loggingMiddleware logs all incoming HTTP requests at debug level.
// RPC outcomes are logged by middleware.LoggingInterceptor.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		next.ServeHTTP(w, r)

		slog.Debug("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
