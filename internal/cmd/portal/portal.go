// Package portal wires configuration and dependencies for the portal
// process.
package portal

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/brandgate/brandgate/internal/auth"
	"github.com/brandgate/brandgate/internal/platform/branding"
	"github.com/brandgate/brandgate/internal/platform/config"
	"github.com/brandgate/brandgate/internal/platform/otel"
	"github.com/brandgate/brandgate/internal/services/portal"
	"github.com/brandgate/brandgate/internal/session"
	"github.com/brandgate/brandgate/internal/tenant/catalog"
	catalogsqlite "github.com/brandgate/brandgate/internal/tenant/catalog/sqlite"
)

// Config holds the portal command configuration. A catalog database path
// takes precedence over a catalog URL; with neither set the process runs
// on the built-in demo catalog.
type Config struct {
	HTTPAddr      string        `env:"BRANDGATE_HTTP_ADDR" envDefault:"localhost:8080"`
	AppName       string        `env:"BRANDGATE_APP_NAME"`
	SessionDBPath string        `env:"BRANDGATE_SESSION_DB"`
	CatalogDBPath string        `env:"BRANDGATE_CATALOG_DB"`
	CatalogURL    string        `env:"BRANDGATE_CATALOG_URL"`
	TokenSecret   string        `env:"BRANDGATE_TOKEN_SECRET" envDefault:"local-dev-secret"`
	AuthLatency   time.Duration `env:"BRANDGATE_AUTH_LATENCY" envDefault:"500ms"`
	SeedDemo      bool          `env:"BRANDGATE_SEED_DEMO"`
}

// ParseConfig loads configuration from the environment, then lets flags
// override it.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.AppName == "" {
		cfg.AppName = branding.AppName
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.SessionDBPath, "session-db", cfg.SessionDBPath, "bbolt session database path (empty for in-memory)")
	fs.StringVar(&cfg.CatalogDBPath, "catalog-db", cfg.CatalogDBPath, "SQLite tenant catalog path")
	fs.StringVar(&cfg.CatalogURL, "catalog-url", cfg.CatalogURL, "remote tenant catalog base URL")
	fs.BoolVar(&cfg.SeedDemo, "seed-demo", cfg.SeedDemo, "seed the catalog database with demo tenants")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Run starts the portal server and blocks until the context ends.
func Run(ctx context.Context, cfg Config) error {
	shutdown, err := otel.Setup(ctx, "portal")
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("otel shutdown: %v", err)
		}
	}()

	sessions, err := openSessions(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := sessions.Close(); err != nil {
			log.Printf("close session store: %v", err)
		}
	}()

	source, closeSource, err := openCatalogSource(ctx, cfg)
	if err != nil {
		return err
	}
	if closeSource != nil {
		defer closeSource()
	}

	authenticator := &auth.Mock{
		Users:   catalog.DemoUsers(),
		Tokens:  auth.NewTokenIssuer([]byte(cfg.TokenSecret), branding.AppName),
		Latency: cfg.AuthLatency,
	}

	server, err := portal.NewServer(portal.Config{
		HTTPAddr: cfg.HTTPAddr,
		AppName:  cfg.AppName,
	}, authenticator, sessions, source)
	if err != nil {
		return fmt.Errorf("init portal server: %w", err)
	}

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve portal: %w", err)
	}
	return nil
}

func openSessions(cfg Config) (*session.Store, error) {
	path := strings.TrimSpace(cfg.SessionDBPath)
	if path == "" {
		return session.NewMemory(), nil
	}
	sessions, err := session.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}
	return sessions, nil
}

func openCatalogSource(ctx context.Context, cfg Config) (catalog.Source, func(), error) {
	if path := strings.TrimSpace(cfg.CatalogDBPath); path != "" {
		store, err := catalogsqlite.Open(path)
		if err != nil {
			return nil, nil, fmt.Errorf("open catalog database: %w", err)
		}
		if cfg.SeedDemo {
			if err := store.Seed(ctx, catalog.DemoTenants()); err != nil {
				_ = store.Close()
				return nil, nil, fmt.Errorf("seed catalog database: %w", err)
			}
		}
		return store, func() {
			if err := store.Close(); err != nil {
				log.Printf("close catalog database: %v", err)
			}
		}, nil
	}

	if baseURL := strings.TrimSpace(cfg.CatalogURL); baseURL != "" {
		return catalog.NewClient(baseURL), nil, nil
	}

	return &catalog.Fixture{Tenants: catalog.DemoTenants()}, nil, nil
}
