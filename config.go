package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"sobriety-backend/internal/analysis"
	"sobriety-backend/internal/common"
	"sobriety-backend/internal/logging"
	"sobriety-backend/internal/logic"
)

type Config struct {
	Port     string
	GinMode  string
	MySQLDSN string

	RedisAddr        string // empty disables the analysis cache
	RedisPassword    string
	RedisDB          int
	AnalysisCacheTTL time.Duration

	AllowedOrigins     []string
	RateLimitPerMinute int

	RetroactiveDays int
	TrendWindowDays int
	InsightTimezone string
	MaxChatPerDay   int

	Coach logic.CoachConfig
	Log   logging.Config
}

// LoadConfig reads .env (if present) and then the process environment.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	e := &envReader{}
	cfg := &Config{
		Port:     getenv("PORT", "8080"),
		GinMode:  getenv("GIN_MODE", "release"),
		MySQLDSN: os.Getenv("MYSQL_DSN"),

		RedisAddr:        os.Getenv("REDIS_ADDR"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		RedisDB:          e.int("REDIS_DB", 0),
		AnalysisCacheTTL: time.Duration(e.int("ANALYSIS_CACHE_TTL_SECONDS", 3600)) * time.Second,

		AllowedOrigins:     splitList(getenv("ALLOWED_ORIGINS", "*")),
		RateLimitPerMinute: e.int("RATE_LIMIT_PER_MINUTE", 60),

		RetroactiveDays: e.int("RETROACTIVE_DAYS", common.RetroactiveDays),
		TrendWindowDays: e.int("TREND_WINDOW_DAYS", analysis.DefaultTrendDays),
		InsightTimezone: getenv("INSIGHT_TIMEZONE", "UTC"),
		MaxChatPerDay:   e.int("MAX_CHAT_PER_DAY", common.MaxChatPerDay),

		Coach: logic.CoachConfig{
			Provider:  os.Getenv("COACH_PROVIDER"),
			Token:     os.Getenv("HUNYUAN_TOKEN"),
			Model:     os.Getenv("HUNYUAN_MODEL"),
			BaseURL:   os.Getenv("HUNYUAN_BASE_URL"),
			SecretID:  os.Getenv("TENCENTCLOUD_SECRETID"),
			SecretKey: os.Getenv("TENCENTCLOUD_SECRETKEY"),
		},
		Log: logging.Config{
			Level:      getenv("LOG_LEVEL", "info"),
			Path:       os.Getenv("LOG_FILE"),
			MaxSizeMB:  e.int("LOG_MAX_SIZE_MB", 100),
			MaxBackups: e.int("LOG_MAX_BACKUPS", 3),
			MaxAgeDays: e.int("LOG_MAX_AGE_DAYS", 7),
			Compress:   e.bool("LOG_COMPRESS", false),
		},
	}
	if e.err != nil {
		return nil, e.err
	}
	if cfg.TrendWindowDays <= 0 {
		return nil, fmt.Errorf("TREND_WINDOW_DAYS must be positive, got %d", cfg.TrendWindowDays)
	}
	if _, err := time.LoadLocation(cfg.InsightTimezone); err != nil {
		return nil, fmt.Errorf("INSIGHT_TIMEZONE: %w", err)
	}
	return cfg, nil
}

func (c *Config) Print(log *zap.Logger) {
	log.Info("config",
		zap.String("port", c.Port),
		zap.String("gin_mode", c.GinMode),
		zap.String("redis_addr", c.RedisAddr),
		zap.Duration("analysis_cache_ttl", c.AnalysisCacheTTL),
		zap.Strings("allowed_origins", c.AllowedOrigins),
		zap.Int("rate_limit_per_minute", c.RateLimitPerMinute),
		zap.Int("retroactive_days", c.RetroactiveDays),
		zap.Int("trend_window_days", c.TrendWindowDays),
		zap.String("insight_timezone", c.InsightTimezone),
		zap.String("coach_provider", c.Coach.Provider),
	)
}

func getenv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// envReader keeps the first parse error so LoadConfig can report it once.
type envReader struct {
	err error
}

func (e *envReader) int(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		if e.err == nil {
			e.err = fmt.Errorf("%s: %w", key, err)
		}
		return def
	}
	return n
}

func (e *envReader) bool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		if e.err == nil {
			e.err = fmt.Errorf("%s: %w", key, err)
		}
		return def
	}
	return b
}
