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

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sobriety-backend/internal/cache"
	"sobriety-backend/internal/db"
	"sobriety-backend/internal/logging"
	"sobriety-backend/internal/logic"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadConfig()
			if err != nil {
				return err
			}
			log, err := logging.New(cfg.Log)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			defer func() { _ = log.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, log)
		},
	}
}

func serve(ctx context.Context, cfg *Config, log *zap.Logger) error {
	if cfg.MySQLDSN == "" {
		return errors.New("MYSQL_DSN is required")
	}
	cfg.Print(log)

	gdb, err := db.Open(db.Config{MySQLDSN: cfg.MySQLDSN, LogLevel: cfg.Log.Level}, log)
	if err != nil {
		return err
	}
	if sqlDB, err := gdb.DB(); err == nil {
		defer sqlDB.Close()
	}

	var analysisCache *cache.AnalysisCache
	if cfg.RedisAddr != "" {
		rdb := cache.NewClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warn("redis unreachable, analysis cache will miss until it recovers", zap.Error(err))
		}
		analysisCache = cache.New(rdb, cfg.AnalysisCacheTTL, log)
	}

	coach, err := logic.NewCoach(cfg.Coach)
	switch {
	case errors.Is(err, logic.ErrCoachDisabled):
		log.Info("coach disabled, set COACH_PROVIDER to enable /api/coach")
	case err != nil:
		return err
	}

	loc, err := time.LoadLocation(cfg.InsightTimezone)
	if err != nil {
		return err
	}

	gin.SetMode(cfg.GinMode)
	h := logic.NewHandler(logic.Options{
		Store:           db.NewStore(gdb),
		Cache:           analysisCache,
		Coach:           coach,
		Logger:          log,
		TrendDays:       cfg.TrendWindowDays,
		InsightLocation: loc,
		RetroactiveDays: cfg.RetroactiveDays,
		MaxChatPerDay:   cfg.MaxChatPerDay,
	})
	router := logic.SetupRouter(h, logic.RouterConfig{
		AllowedOrigins:     cfg.AllowedOrigins,
		RateLimitPerMinute: cfg.RateLimitPerMinute,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
