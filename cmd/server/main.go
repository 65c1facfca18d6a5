package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/fgclab/arena-api/internal/config"
	"github.com/fgclab/arena-api/internal/handlers"
	"github.com/fgclab/arena-api/internal/logic"
	"github.com/fgclab/arena-api/internal/store"
	"github.com/fgclab/arena-api/internal/worker"
)

func main() {
	cfg := config.Load()

	var logger *zap.Logger
	var err error
	if cfg.Env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Redis is optional. Without it the leaderboard is recomputed per request.
	var rdb *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			sugar.Fatalw("Invalid REDIS_URL", "error", err)
		}
		rdb = redis.NewClient(opts)

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			sugar.Warnw("Redis unreachable at startup, continuing", "error", err)
		}
		cancel()
	}

	st := store.New()

	battle := logic.NewBattleService()
	scouting := logic.NewScoutingService(st, st)

	var cache logic.RedisClient
	if rdb != nil {
		cache = rdb
	}
	leaderboard := logic.NewLeaderboardService(st, cache, cfg.CacheTTL, logger)

	coach, err := logic.NewCoachService(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, battle, logger)
	if err != nil {
		sugar.Fatalw("Failed to initialize coach service", "error", err)
	}
	if cfg.GeminiAPIKey == "" {
		sugar.Infow("Coach assistant disabled, no GEMINI_API_KEY set")
	}

	pool := worker.NewPool(worker.PoolConfig{
		WorkerCount:   cfg.WorkerCount,
		QueueSize:     cfg.QueueSize,
		BatchSize:     cfg.BatchSize,
		FlushInterval: cfg.FlushInterval,
		Recorder:      st,
		Invalidator:   leaderboard,
		Logger:        logger,
	})
	pool.Start()

	h := handlers.New(handlers.Config{
		Store:       st,
		Queue:       pool,
		Redis:       rdb,
		Logger:      logger,
		Battle:      battle,
		Scouting:    scouting,
		Leaderboard: leaderboard,
		Coach:       coach,
	})

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Handle("/metrics", promhttp.Handler())
	r.Mount("/", h.Routes())

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		sugar.Infow("Server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		sugar.Info("Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			sugar.Errorw("Server shutdown failed", "error", err)
		}
		if err := pool.Shutdown(shutdownCtx); err != nil {
			sugar.Errorw("Ingest pool shutdown failed", "error", err)
		}
		if rdb != nil {
			rdb.Close()
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		sugar.Fatalw("Server error", "error", err)
	}
	sugar.Info("Server stopped")
}
