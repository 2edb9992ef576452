package db

import (
	"time"

	"github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
)

type Config struct {
	MySQLDSN        string
	LogLevel        string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

// RedactedDSN returns the DSN with the password masked.
func (c *Config) RedactedDSN() string {
	parsed, err := mysql.ParseDSN(c.MySQLDSN)
	if err != nil {
		return "<unparseable dsn>"
	}
	if parsed.Passwd != "" {
		parsed.Passwd = "***"
	}
	return parsed.FormatDSN()
}

func (c *Config) Print(log *zap.Logger) {
	log.Info("mysql config",
		zap.String("dsn", c.RedactedDSN()),
		zap.Int("max_idle", c.MaxIdleConns),
		zap.Int("max_open", c.MaxOpenConns),
		zap.Duration("conn_max_lifetime", c.ConnMaxLifetime),
	)
}
