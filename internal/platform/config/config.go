package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config captures everything the registry needs to reach its sheets and
// optional backing services.
type Config struct {
	SpreadsheetID     string        `env:"CLIMBREG_SPREADSHEET_ID,required,notEmpty"`
	CredentialsFile   string        `env:"CLIMBREG_CREDENTIALS_FILE"`
	ExamsSheet        string        `env:"CLIMBREG_EXAMS_SHEET" envDefault:"Andmebaas"`
	CardsSheet        string        `env:"CLIMBREG_CARDS_SHEET" envDefault:"Füüsilised kaardid"`
	CacheTTL          time.Duration `env:"CLIMBREG_CACHE_TTL" envDefault:"5m"`
	DatabaseURL       string        `env:"CLIMBREG_DATABASE_URL"`
	LogLevel          string        `env:"CLIMBREG_LOG_LEVEL" envDefault:"info"`
	PositionCacheSize int           `env:"CLIMBREG_POSITION_CACHE_SIZE" envDefault:"4096"`
	AuditBufferSize   int           `env:"CLIMBREG_AUDIT_BUFFER" envDefault:"0"`
	Redis             RedisConfig
}

// RedisConfig configures the optional certificate cache. An empty URL leaves
// caching in process memory.
type RedisConfig struct {
	URL          string        `env:"CLIMBREG_REDIS_URL"`
	PoolSize     int           `env:"CLIMBREG_REDIS_POOL_SIZE" envDefault:"10"`
	MinIdleConns int           `env:"CLIMBREG_REDIS_MIN_IDLE_CONNS" envDefault:"2"`
	DialTimeout  time.Duration `env:"CLIMBREG_REDIS_DIAL_TIMEOUT" envDefault:"5s"`
	ReadTimeout  time.Duration `env:"CLIMBREG_REDIS_READ_TIMEOUT" envDefault:"3s"`
	WriteTimeout time.Duration `env:"CLIMBREG_REDIS_WRITE_TIMEOUT" envDefault:"3s"`
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values env parsing accepts but the registry cannot use.
func (c Config) Validate() error {
	if strings.TrimSpace(c.ExamsSheet) == "" || strings.TrimSpace(c.CardsSheet) == "" {
		return fmt.Errorf("sheet names must not be empty")
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("cache ttl must not be negative")
	}
	if c.PositionCacheSize <= 0 {
		return fmt.Errorf("position cache size must be positive")
	}
	if c.AuditBufferSize < 0 {
		return fmt.Errorf("audit buffer must not be negative")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel into a slog level.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
