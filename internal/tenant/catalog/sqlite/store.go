// Package sqlite provides a SQLite-backed tenant catalog source.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/brandgate/brandgate/internal/tenant"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS tenants (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	theme_json TEXT NOT NULL DEFAULT '{}',
	position   INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS labels (
	tenant_id   TEXT NOT NULL REFERENCES tenants(id) ON DELETE CASCADE,
	id          TEXT NOT NULL,
	name        TEXT NOT NULL,
	config_json TEXT NOT NULL DEFAULT '{}',
	position    INTEGER NOT NULL,
	PRIMARY KEY (tenant_id, id)
);
`

// Store implements catalog.Source over a SQLite file.
//
// A single file holds the full catalog so tenant and label rows share the
// same transaction and visibility boundaries.
type Store struct {
	db *sql.DB
}

// Open opens a catalog store at the provided path and ensures the schema.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("catalog db path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open catalog db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping catalog db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure catalog schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// FetchTenantCatalog loads the full catalog ordered by stored position.
func (s *Store) FetchTenantCatalog(ctx context.Context) ([]tenant.Tenant, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, theme_json FROM tenants ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query tenants: %w", err)
	}
	defer rows.Close()

	var tenants []tenant.Tenant
	for rows.Next() {
		var t tenant.Tenant
		var themeJSON string
		if err := rows.Scan(&t.ID, &t.Name, &themeJSON); err != nil {
			return nil, fmt.Errorf("scan tenant: %w", err)
		}
		if err := json.Unmarshal([]byte(themeJSON), &t.Theme); err != nil {
			return nil, fmt.Errorf("decode theme for tenant %s: %w", t.ID, err)
		}
		tenants = append(tenants, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tenants: %w", err)
	}

	for i := range tenants {
		labels, err := s.labelsFor(ctx, tenants[i].ID)
		if err != nil {
			return nil, err
		}
		tenants[i].Labels = labels
	}
	return tenants, nil
}

func (s *Store) labelsFor(ctx context.Context, tenantID string) ([]tenant.Label, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, config_json FROM labels WHERE tenant_id = ? ORDER BY position`, tenantID)
	if err != nil {
		return nil, fmt.Errorf("query labels for tenant %s: %w", tenantID, err)
	}
	defer rows.Close()

	var labels []tenant.Label
	for rows.Next() {
		var label tenant.Label
		var configJSON string
		if err := rows.Scan(&label.ID, &label.Name, &configJSON); err != nil {
			return nil, fmt.Errorf("scan label: %w", err)
		}
		if configJSON != "" && configJSON != "{}" {
			if err := json.Unmarshal([]byte(configJSON), &label.Config); err != nil {
				return nil, fmt.Errorf("decode config for label %s: %w", label.ID, err)
			}
		}
		labels = append(labels, label)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate labels: %w", err)
	}
	return labels, nil
}

// Seed replaces the stored catalog with the provided tenants in one
// transaction, preserving their order.
func (s *Store) Seed(ctx context.Context, tenants []tenant.Tenant) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM labels`); err != nil {
		return fmt.Errorf("clear labels: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM tenants`); err != nil {
		return fmt.Errorf("clear tenants: %w", err)
	}

	for i, t := range tenants {
		themeJSON, err := json.Marshal(t.Theme)
		if err != nil {
			return fmt.Errorf("encode theme for tenant %s: %w", t.ID, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO tenants (id, name, theme_json, position) VALUES (?, ?, ?, ?)`,
			t.ID, t.Name, string(themeJSON), i); err != nil {
			return fmt.Errorf("insert tenant %s: %w", t.ID, err)
		}
		for j, label := range t.Labels {
			configJSON := "{}"
			if len(label.Config) > 0 {
				encoded, err := json.Marshal(label.Config)
				if err != nil {
					return fmt.Errorf("encode config for label %s: %w", label.ID, err)
				}
				configJSON = string(encoded)
			}
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO labels (tenant_id, id, name, config_json, position) VALUES (?, ?, ?, ?, ?)`,
				t.ID, label.ID, label.Name, configJSON, j); err != nil {
				return fmt.Errorf("insert label %s/%s: %w", t.ID, label.ID, err)
			}
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}
	return nil
}
