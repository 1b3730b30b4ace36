// Package tenantctx holds the authoritative tenant/label operating context
// for one user session: the cached tenant catalog, the current selection,
// and the theme derived from it.
package tenantctx

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/brandgate/brandgate/internal/tenant"
	"github.com/brandgate/brandgate/internal/tenant/catalog"
	"github.com/brandgate/brandgate/internal/theme"
)

// Context is the resolved (tenant, label, theme) triple. It is either fully
// unset (zero ids, base theme), degraded (tenant resolved, label missing),
// or fully set. The theme is always derived from the other fields, never
// set independently.
type Context struct {
	TenantID string
	LabelID  string
	Tenant   *tenant.Tenant
	Label    *tenant.Label
	Theme    theme.Theme
}

// Ready reports whether the context is fully set: both ids resolved to an
// existing label within an existing tenant. A degraded tenant-only context
// is not ready.
func (c Context) Ready() bool {
	return c.TenantID != "" && c.LabelID != ""
}

// Store owns the catalog cache and current context for one session. All
// context transitions commit as a single snapshot replace under the lock;
// readers never observe a theme computed from a different tenant than the
// one reported as current.
type Store struct {
	source catalog.Source

	loadMu sync.Mutex // serializes catalog loads

	mu      sync.RWMutex
	catalog []tenant.Tenant
	loaded  bool
	current Context
}

// NewStore creates a context store backed by the given catalog source.
func NewStore(source catalog.Source) *Store {
	return &Store{
		source:  source,
		current: Context{Theme: theme.Base()},
	}
}

// LoadCatalog populates the tenant catalog from the source. It is
// idempotent: once a load succeeds, later calls return immediately without
// refetching. Concurrent calls share one fetch.
func (s *Store) LoadCatalog(ctx context.Context) error {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	s.mu.RLock()
	loaded := s.loaded
	s.mu.RUnlock()
	if loaded {
		return nil
	}

	tenants, err := s.source.FetchTenantCatalog(ctx)
	if err != nil {
		return fmt.Errorf("load tenant catalog: %w", err)
	}

	s.mu.Lock()
	s.catalog = tenants
	s.loaded = true
	s.mu.Unlock()
	return nil
}

// CatalogLoaded reports whether a catalog load has completed.
func (s *Store) CatalogLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Catalog returns the cached tenant catalog. Callers must treat the slice
// as read-only.
func (s *Store) Catalog() []tenant.Tenant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog
}

// SetContext resolves tenantID/labelID against the catalog and commits the
// result as one atomic snapshot.
//
// Unknown tenant clears the context to base theme. Unknown label commits a
// degraded tenant-only context (tenant details and tenant-level theme, no
// label); consumers must treat that state as not yet ready. Neither case is
// an error: both are recoverable, observable states.
func (s *Store) SetContext(tenantID, labelID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	found, ok := tenant.FindTenant(s.catalog, tenantID)
	if !ok {
		log.Printf("tenantctx: tenant %q not found in catalog, clearing context", tenantID)
		s.current = Context{Theme: theme.Base()}
		return
	}

	label, ok := found.LabelByID(labelID)
	if !ok {
		log.Printf("tenantctx: label %q not found in tenant %q, committing degraded context", labelID, tenantID)
		s.current = Context{
			TenantID: tenantID,
			Tenant:   &found,
			Theme:    theme.Resolve(theme.Base(), found.Theme, nil),
		}
		return
	}

	s.current = Context{
		TenantID: tenantID,
		LabelID:  labelID,
		Tenant:   &found,
		Label:    &label,
		Theme:    theme.Resolve(theme.Base(), found.Theme, label.Config),
	}
}

// ClearContext resets the selection to unset/base theme. The catalog cache
// is left intact.
func (s *Store) ClearContext() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = Context{Theme: theme.Base()}
}

// Snapshot returns one consistent view of the current context.
func (s *Store) Snapshot() Context {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}
