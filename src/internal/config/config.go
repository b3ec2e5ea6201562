package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	HTTPAddr        string          `env:"HTTP_ADDR" envDefault:":8080"`
	LogLevel        string          `env:"LOG_LEVEL" envDefault:"info"`
	OverdraftLimit  decimal.Decimal `env:"OVERDRAFT_LIMIT" envDefault:"500"`
	MaxWithdrawals  int             `env:"MAX_WITHDRAWALS_PER_PERIOD" envDefault:"3"`
	ShutdownTimeout time.Duration   `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	MetricsEnabled  bool            `env:"METRICS_ENABLED" envDefault:"true"`
}

var decimalParsers = map[reflect.Type]env.ParserFunc{
	reflect.TypeOf(decimal.Decimal{}): func(v string) (interface{}, error) {
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return nil, fmt.Errorf("invalid decimal %q: %w", v, err)
		}
		return d, nil
	},
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return parse(env.Options{})
}

// LoadFrom parses the given variables only. Used by tests.
func LoadFrom(environment map[string]string) (Config, error) {
	return parse(env.Options{Environment: environment})
}

func parse(opts env.Options) (Config, error) {
	opts.FuncMap = decimalParsers

	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	var errs []string

	if strings.TrimSpace(c.HTTPAddr) == "" {
		errs = append(errs, "HTTP_ADDR cannot be empty")
	}

	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Sprintf("invalid LOG_LEVEL '%s': must be one of debug, info, warn, error", c.LogLevel))
	}

	if c.OverdraftLimit.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, "OVERDRAFT_LIMIT must be greater than zero")
	}

	if c.MaxWithdrawals <= 0 {
		errs = append(errs, "MAX_WITHDRAWALS_PER_PERIOD must be greater than zero")
	}

	if c.ShutdownTimeout <= 0 {
		errs = append(errs, "SHUTDOWN_TIMEOUT must be positive")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}
