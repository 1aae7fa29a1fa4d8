package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/data-blitz-demos/digikey-AgenticAI-demo/internal/config"
	dbRedis "github.com/data-blitz-demos/digikey-AgenticAI-demo/internal/db/redis"
	logpkg "github.com/data-blitz-demos/digikey-AgenticAI-demo/internal/logger"
	"github.com/data-blitz-demos/digikey-AgenticAI-demo/internal/metrics"
	catalogrepo "github.com/data-blitz-demos/digikey-AgenticAI-demo/internal/repository/catalog"
	chiTransport "github.com/data-blitz-demos/digikey-AgenticAI-demo/internal/transport/chi"
	openaiExt "github.com/data-blitz-demos/digikey-AgenticAI-demo/internal/transport/openai"
	advisoruc "github.com/data-blitz-demos/digikey-AgenticAI-demo/internal/usecase/advisor"
	healthuc "github.com/data-blitz-demos/digikey-AgenticAI-demo/internal/usecase/health"
	intentuc "github.com/data-blitz-demos/digikey-AgenticAI-demo/internal/usecase/intent"
	"github.com/data-blitz-demos/digikey-AgenticAI-demo/internal/version"
)

func main() {
	// .env is optional, real environments set variables directly
	_ = godotenv.Load()

	env := config.GetEnv()
	cfg := config.MustLoad(env)

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting advisor API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Strings("db_addrs", cfg.Database.Addrs),
		zap.Bool("assistant_enabled", cfg.Assistant.Enabled),
	)

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Database.Addrs,
		Password: cfg.Database.Password,
	})
	if err != nil {
		logger.Fatal("Failed to create database store", zap.Error(err))
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}
	logger.Info("Connected to database")

	// Register assistant metrics explicitly (no init())
	metrics.RegisterAssistantMetrics()

	catalogRepo := catalogrepo.New(store, cfg.Catalog.KeyPrefix,
		time.Duration(cfg.Catalog.QueryTimeoutSec)*time.Second)

	if err := catalogRepo.EnsureIndex(ctx); err != nil {
		logger.Fatal("Failed to ensure catalog index", zap.Error(err))
	}
	if cfg.Catalog.SeedOnStart {
		seeded, err := catalogRepo.SeedIfEmpty(ctx)
		if err != nil {
			logger.Fatal("Failed to seed catalog", zap.Error(err))
		}
		if seeded > 0 {
			logger.Info("Seeded demo catalog", zap.Int("parts", seeded))
		}
	}

	// Assistant extractor is optional: a nil extractor makes the resolver
	// run every request through rule-based parsing.
	var extractor intentuc.Extractor
	var assistantChecker healthuc.AssistantChecker
	if cfg.Assistant.Enabled {
		ext := openaiExt.NewExtractor(&openaiExt.Config{
			APIKey:  cfg.Assistant.APIKey,
			BaseURL: cfg.Assistant.BaseURL,
			Model:   cfg.Assistant.Model,
			Timeout: time.Duration(cfg.Assistant.TimeoutSec) * time.Second,
			Logger:  logger,
		})
		extractor = ext
		assistantChecker = ext
		logger.Info("Assistant extractor created", zap.String("model", cfg.Assistant.Model))
	}

	resolver := intentuc.NewResolver(extractor)
	advisorSvc := advisoruc.New(resolver, catalogRepo, cfg.Catalog.ResultLimit, cfg.Catalog.MaxLimit)
	healthSvc := healthuc.New(store, assistantChecker)

	server := chiTransport.NewServer(advisorSvc, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Register(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line, one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
