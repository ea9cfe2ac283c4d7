// Package web parses web command flags and launches the site server.
package web

import (
	"context"
	"flag"
	"fmt"
	"os"

	entrypoint "github.com/SethChishakwe/cyntas-wealth-tech/internal/platform/cmd"
	"github.com/SethChishakwe/cyntas-wealth-tech/internal/platform/logging"
	"github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr            string `env:"CYNTAS_WEB_HTTP_ADDR" envDefault:"localhost:5000"`
	DBPath              string `env:"CYNTAS_WEB_DB_PATH" envDefault:"cyntas.db"`
	SecretKey           string `env:"CYNTAS_WEB_SECRET_KEY"`
	TrustForwardedProto bool   `env:"CYNTAS_WEB_TRUST_FORWARDED_PROTO" envDefault:"false"`
	LogLevel            string `env:"CYNTAS_LOG_LEVEL" envDefault:"info"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "Registration SQLite database path")
	fs.StringVar(&cfg.SecretKey, "secret-key", cfg.SecretKey, "Flash cookie signing key (random when empty)")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "Trust X-Forwarded-Proto and X-Forwarded-Host from a reverse proxy")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the web server and blocks until ctx is canceled.
func Run(ctx context.Context, cfg Config) error {
	logger, err := logging.New(os.Stderr, entrypoint.ServiceWeb, cfg.LogLevel)
	if err != nil {
		return err
	}
	ctx = logger.WithContext(ctx)

	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		server, err := web.NewServer(ctx, web.Config{
			HTTPAddr:            cfg.HTTPAddr,
			DBPath:              cfg.DBPath,
			SecretKey:           cfg.SecretKey,
			TrustForwardedProto: cfg.TrustForwardedProto,
			Logger:              logger,
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}
