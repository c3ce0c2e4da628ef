// Package backoffice parses back-office service flags and launches the service.
package backoffice

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/tppb-bridge/backoffice/internal/platform/authtoken"
	entrypoint "github.com/tppb-bridge/backoffice/internal/platform/cmd"
	"github.com/tppb-bridge/backoffice/internal/platform/i18n"
	"github.com/tppb-bridge/backoffice/internal/platform/logging"
	"github.com/tppb-bridge/backoffice/internal/platform/money"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/app"
)

// Config holds back-office command configuration.
type Config struct {
	HTTPAddr      string  `env:"HTTP_ADDR" envDefault:":8090"`
	DBPath        string  `env:"DB_PATH" envDefault:"data/backoffice.db"`
	SessionSecret string  `env:"SESSION_SECRET"`
	SessionIssuer string  `env:"SESSION_ISSUER" envDefault:"tppb-backoffice"`
	LogLevel      string  `env:"LOG_LEVEL" envDefault:"info"`
	TaxRate       float64 `env:"DEFAULT_TAX_RATE" envDefault:"11"`
	Locale        string  `env:"LOCALE" envDefault:"id-ID"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	fs.StringVar(&cfg.HTTPAddr, "http-addr", ":8090", "HTTP listen address (env TPPB_HTTP_ADDR)")
	fs.StringVar(&cfg.DBPath, "db-path", "data/backoffice.db", "SQLite database path (env TPPB_DB_PATH)")
	fs.StringVar(&cfg.LogLevel, "log-level", "info", "log level: debug, info, warn, error (env TPPB_LOG_LEVEL)")
	if err := entrypoint.ParseConfigFromArgs(&cfg, fs, args); err != nil {
		return Config{}, err
	}
	if cfg.TaxRate < 0 || cfg.TaxRate > 100 {
		return Config{}, fmt.Errorf("default tax rate %v must be between 0 and 100", cfg.TaxRate)
	}
	return cfg, nil
}

// AuthConfig returns the session token settings of cfg.
func (c Config) AuthConfig() authtoken.Config {
	return authtoken.Config{Secret: []byte(c.SessionSecret), Issuer: c.SessionIssuer, Now: time.Now}
}

// Run starts the back-office HTTP service.
func Run(ctx context.Context, cfg Config) error {
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	i18n.SetDefault(cfg.Locale)
	if cfg.SessionSecret == "" {
		logger.Warn("TPPB_SESSION_SECRET is empty; requests run without authentication")
	}
	taxRate := money.FromFloat(cfg.TaxRate)

	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceBackoffice, entrypoint.RunOptions{Logger: logger}, func(ctx context.Context) error {
		srv, err := app.New(ctx, app.Config{
			HTTPAddr: cfg.HTTPAddr,
			DBPath:   cfg.DBPath,
			Auth:     cfg.AuthConfig(),
			TaxRate:  &taxRate,
			Logger:   logger,
		})
		if err != nil {
			return err
		}
		return srv.Serve(ctx)
	})
}
