package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/spf13/viper"
	"golang.org/x/text/currency"
)

type Config struct {
	HTTPPort        string        `mapstructure:"HTTP_PORT"`
	DatabaseURL     string        `mapstructure:"DATABASE_URL"`
	TxIsolation     string        `mapstructure:"TX_ISOLATION"`
	RedisAddr       string        `mapstructure:"REDIS_ADDR"`
	CartCacheTTL    time.Duration `mapstructure:"CART_CACHE_TTL"`
	JWTSecret       string        `mapstructure:"JWT_SECRET"`
	StoreCurrency   string        `mapstructure:"STORE_CURRENCY"`
	RequestTimeout  time.Duration `mapstructure:"REQUEST_TIMEOUT"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
	LogLevel        string        `mapstructure:"LOG_LEVEL"`
	LogDevelopment  bool          `mapstructure:"LOG_DEVELOPMENT"`
}

var defaults = map[string]any{
	"HTTP_PORT":        "8080",
	"DATABASE_URL":     "",
	"TX_ISOLATION":     string(pgx.ReadCommitted),
	"REDIS_ADDR":       "",
	"CART_CACHE_TTL":   "5m",
	"JWT_SECRET":       "",
	"STORE_CURRENCY":   "USD",
	"REQUEST_TIMEOUT":  "10s",
	"SHUTDOWN_TIMEOUT": "15s",
	"LOG_LEVEL":        "info",
	"LOG_DEVELOPMENT":  false,
}

// Load reads the optional env file at path, then lets environment
// variables override it.
func Load(path string) (Config, error) {
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("env")

		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("v.ReadInConfig: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("v.Unmarshal: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("cfg.Validate: %w", err)
	}

	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error

	if c.DatabaseURL == "" {
		errs = append(errs, errors.New("DATABASE_URL is empty"))
	}

	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is empty"))
	}

	if _, err := c.IsoLevel(); err != nil {
		errs = append(errs, err)
	}

	if _, err := c.Currency(); err != nil {
		errs = append(errs, err)
	}

	if c.RequestTimeout <= 0 {
		errs = append(errs, fmt.Errorf("REQUEST_TIMEOUT[%s] must be positive", c.RequestTimeout))
	}

	return errors.Join(errs...)
}

func (c Config) IsoLevel() (pgx.TxIsoLevel, error) {
	normalized := strings.NewReplacer("_", " ", "-", " ").Replace(strings.ToLower(strings.TrimSpace(c.TxIsolation)))

	switch pgx.TxIsoLevel(normalized) {
	case pgx.ReadCommitted, pgx.RepeatableRead, pgx.Serializable:
		return pgx.TxIsoLevel(normalized), nil
	default:
		return "", fmt.Errorf("TX_ISOLATION[%s] is not valid", c.TxIsolation)
	}
}

func (c Config) Currency() (currency.Unit, error) {
	unit, err := currency.ParseISO(c.StoreCurrency)
	if err != nil {
		return currency.Unit{}, fmt.Errorf("STORE_CURRENCY[%s] is not valid: %w", c.StoreCurrency, err)
	}

	return unit, nil
}
