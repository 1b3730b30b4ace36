package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/brandgate/brandgate/internal/tenant/catalog"
	"github.com/brandgate/brandgate/internal/theme"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})
	return store
}

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := Open(" "); err == nil {
		t.Fatal("Open(blank) error = nil, want error")
	}
}

func TestSeedAndFetchRoundTrip(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()

	if err := store.Seed(ctx, catalog.DemoTenants()); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}

	tenants, err := store.FetchTenantCatalog(ctx)
	if err != nil {
		t.Fatalf("FetchTenantCatalog() error = %v", err)
	}
	if len(tenants) != 3 {
		t.Fatalf("len = %d, want 3", len(tenants))
	}
	if tenants[0].ID != "tenant-a" || tenants[1].ID != "tenant-b" || tenants[2].ID != "tenant-c" {
		t.Fatalf("tenant order = [%s, %s, %s], want seed order", tenants[0].ID, tenants[1].ID, tenants[2].ID)
	}
	if tenants[0].Theme.Colors.Primary != "#0056b3" {
		t.Fatalf("tenant-a primary = %q, want %q", tenants[0].Theme.Colors.Primary, "#0056b3")
	}

	labelW, ok := tenants[1].LabelByID("label-w")
	if !ok {
		t.Fatal("label-w missing after round trip")
	}
	if squares, _ := labelW.Config[theme.ConfigKeySquareCorners].(bool); !squares {
		t.Fatalf("label-w config = %+v, want squareCorners=true", labelW.Config)
	}
	// JSON round-trips numeric config values as float64.
	if gap, _ := labelW.Config[theme.ConfigKeyDashboardGap].(float64); gap != 20 {
		t.Fatalf("label-w dashboardGap = %v, want 20", labelW.Config[theme.ConfigKeyDashboardGap])
	}
}

func TestSeedReplacesExistingCatalog(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()

	if err := store.Seed(ctx, catalog.DemoTenants()); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
	if err := store.Seed(ctx, catalog.DemoTenants()[:1]); err != nil {
		t.Fatalf("Seed() second error = %v", err)
	}

	tenants, err := store.FetchTenantCatalog(ctx)
	if err != nil {
		t.Fatalf("FetchTenantCatalog() error = %v", err)
	}
	if len(tenants) != 1 || tenants[0].ID != "tenant-a" {
		t.Fatalf("tenants = %+v, want only tenant-a", tenants)
	}
}

func TestFetchEmptyCatalog(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	tenants, err := store.FetchTenantCatalog(context.Background())
	if err != nil {
		t.Fatalf("FetchTenantCatalog() error = %v", err)
	}
	if len(tenants) != 0 {
		t.Fatalf("tenants = %+v, want empty", tenants)
	}
}
