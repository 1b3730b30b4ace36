package catalogseed

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	catalogsqlite "github.com/brandgate/brandgate/internal/tenant/catalog/sqlite"
)

func TestParseConfigRequiresDBPath(t *testing.T) {
	fs := flag.NewFlagSet("catalog-seed", flag.ContinueOnError)
	if _, err := ParseConfig(fs, nil); err == nil {
		t.Fatal("ParseConfig() error = nil, want db path error")
	}
}

func TestRunSeedsDemoCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")
	var out bytes.Buffer

	if err := Run(context.Background(), Config{DBPath: path}, &out); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(out.String(), "seeded 3 tenants") {
		t.Fatalf("output = %q, want seeded summary", out.String())
	}

	store, err := catalogsqlite.Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()
	tenants, err := store.FetchTenantCatalog(context.Background())
	if err != nil {
		t.Fatalf("FetchTenantCatalog() error = %v", err)
	}
	if len(tenants) != 3 {
		t.Fatalf("len(tenants) = %d, want 3", len(tenants))
	}
}

func TestRunSeedsFromJSONFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "tenants.json")
	data := `[{"id":"tenant-j","name":"JSON Tenant","theme":{},"labels":[{"id":"label-j","name":"Label J"}]}]`
	if err := os.WriteFile(input, []byte(data), 0o600); err != nil {
		t.Fatalf("write input: %v", err)
	}

	path := filepath.Join(dir, "catalog.db")
	var out bytes.Buffer
	if err := Run(context.Background(), Config{DBPath: path, InputPath: input}, &out); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	store, err := catalogsqlite.Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()
	tenants, err := store.FetchTenantCatalog(context.Background())
	if err != nil {
		t.Fatalf("FetchTenantCatalog() error = %v", err)
	}
	if len(tenants) != 1 || tenants[0].ID != "tenant-j" {
		t.Fatalf("tenants = %+v, want tenant-j only", tenants)
	}
}

func TestRunRejectsEmptyInput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "tenants.json")
	if err := os.WriteFile(input, []byte("[]"), 0o600); err != nil {
		t.Fatalf("write input: %v", err)
	}
	err := Run(context.Background(), Config{DBPath: filepath.Join(dir, "c.db"), InputPath: input}, &bytes.Buffer{})
	if err == nil {
		t.Fatal("Run() error = nil, want empty input error")
	}
}
