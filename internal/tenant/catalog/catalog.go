// Package catalog provides sources for the tenant catalog: the external
// collaborator that returns the full ordered set of tenants.
package catalog

import (
	"context"

	"github.com/brandgate/brandgate/internal/tenant"
)

// Source returns the full tenant catalog. Implementations must preserve
// tenant and label order between calls.
type Source interface {
	FetchTenantCatalog(ctx context.Context) ([]tenant.Tenant, error)
}
