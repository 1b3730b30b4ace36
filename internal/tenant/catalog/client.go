package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/brandgate/brandgate/internal/platform/timeouts"
	"github.com/brandgate/brandgate/internal/tenant"
)

// maxCatalogBody caps the accepted catalog response size.
const maxCatalogBody = 4 << 20

// Client fetches the tenant catalog from an HTTP JSON endpoint
// (GET {BaseURL}/api/tenants).
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a catalog client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: &http.Client{Timeout: timeouts.CatalogFetch},
	}
}

// FetchTenantCatalog retrieves and decodes the full ordered tenant catalog.
func (c *Client) FetchTenantCatalog(ctx context.Context) ([]tenant.Tenant, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("catalog base URL is required")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/tenants", nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch tenant catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch tenant catalog: unexpected status %d", resp.StatusCode)
	}

	var tenants []tenant.Tenant
	decoder := json.NewDecoder(io.LimitReader(resp.Body, maxCatalogBody))
	if err := decoder.Decode(&tenants); err != nil {
		return nil, fmt.Errorf("decode tenant catalog: %w", err)
	}
	return tenants, nil
}
