// Package catalogseed loads tenant catalog data into the portal's SQLite
// database.
package catalogseed

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/brandgate/brandgate/internal/platform/config"
	"github.com/brandgate/brandgate/internal/tenant"
	"github.com/brandgate/brandgate/internal/tenant/catalog"
	catalogsqlite "github.com/brandgate/brandgate/internal/tenant/catalog/sqlite"
)

// Config holds the seeding command configuration. Without an input file
// the built-in demo catalog is written.
type Config struct {
	DBPath    string `env:"BRANDGATE_CATALOG_DB"`
	InputPath string
}

// ParseConfig loads configuration from the environment, then lets flags
// override it.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "SQLite tenant catalog path")
	fs.StringVar(&cfg.InputPath, "input", cfg.InputPath, "JSON tenant catalog file (empty for demo data)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if strings.TrimSpace(cfg.DBPath) == "" {
		return Config{}, errors.New("db path is required")
	}
	return cfg, nil
}

// Run replaces the catalog in the configured database.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	tenants, err := loadTenants(cfg.InputPath)
	if err != nil {
		return err
	}

	store, err := catalogsqlite.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open catalog database: %w", err)
	}
	defer func() { _ = store.Close() }()

	if err := store.Seed(ctx, tenants); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}

	labels := 0
	for _, t := range tenants {
		labels += len(t.Labels)
	}
	fmt.Fprintf(out, "seeded %d tenants, %d labels into %s\n", len(tenants), labels, cfg.DBPath)
	return nil
}

func loadTenants(path string) ([]tenant.Tenant, error) {
	if strings.TrimSpace(path) == "" {
		return catalog.DemoTenants(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	var tenants []tenant.Tenant
	if err := json.Unmarshal(data, &tenants); err != nil {
		return nil, fmt.Errorf("parse input: %w", err)
	}
	if len(tenants) == 0 {
		return nil, errors.New("input contains no tenants")
	}
	return tenants, nil
}
