package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "MYSQL_DSN", "REDIS_ADDR", "REDIS_DB", "ALLOWED_ORIGINS",
		"RATE_LIMIT_PER_MINUTE", "RETROACTIVE_DAYS", "TREND_WINDOW_DAYS", "INSIGHT_TIMEZONE",
		"MAX_CHAT_PER_DAY", "COACH_PROVIDER", "LOG_LEVEL", "LOG_COMPRESS", "ANALYSIS_CACHE_TTL_SECONDS"} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Empty(t, cfg.MySQLDSN)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, time.Hour, cfg.AnalysisCacheTTL)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, 60, cfg.RateLimitPerMinute)
	assert.Equal(t, 5, cfg.RetroactiveDays)
	assert.Equal(t, 90, cfg.TrendWindowDays)
	assert.Equal(t, "UTC", cfg.InsightTimezone)
	assert.Equal(t, 10, cfg.MaxChatPerDay)
	assert.Empty(t, cfg.Coach.Provider)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("ANALYSIS_CACHE_TTL_SECONDS", "60")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("TREND_WINDOW_DAYS", "28")
	t.Setenv("INSIGHT_TIMEZONE", "Asia/Shanghai")
	t.Setenv("COACH_PROVIDER", "tencent")
	t.Setenv("LOG_COMPRESS", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, time.Minute, cfg.AnalysisCacheTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, 28, cfg.TrendWindowDays)
	assert.Equal(t, "Asia/Shanghai", cfg.InsightTimezone)
	assert.Equal(t, "tencent", cfg.Coach.Provider)
	assert.True(t, cfg.Log.Compress)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := map[string]string{
		"RATE_LIMIT_PER_MINUTE": "lots",
		"LOG_COMPRESS":          "maybe",
		"TREND_WINDOW_DAYS":     "0",
		"INSIGHT_TIMEZONE":      "Mars/Olympus",
	}
	for key, val := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, val)
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}
