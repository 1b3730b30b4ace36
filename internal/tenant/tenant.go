// Package tenant defines the tenant/label/user data model and the access
// resolver that computes which tenants a user may operate in.
package tenant

import (
	"github.com/brandgate/brandgate/internal/theme"
)

// Label is a sub-brand within a tenant. Label identifiers are unique only
// within their owning tenant.
type Label struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Config map[string]any `json:"config,omitempty"`
}

// Tenant is a top-level customer organization with a partial theme override
// and an ordered sequence of labels. A tenant with zero labels is not
// selectable.
type Tenant struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Theme  theme.Override `json:"theme"`
	Labels []Label        `json:"labels"`
}

// LabelByID returns the label with the given identifier, if present.
func (t Tenant) LabelByID(id string) (Label, bool) {
	for _, label := range t.Labels {
		if label.ID == id {
			return label, true
		}
	}
	return Label{}, false
}

// User is an authenticated identity with a set of accessible tenant
// identifiers. Immutable once loaded for a session.
type User struct {
	ID                  string   `json:"id"`
	Username            string   `json:"username"`
	AccessibleTenantIDs []string `json:"accessibleTenantIds"`
}

// CanAccess reports whether the user's accessible set contains tenantID.
func (u User) CanAccess(tenantID string) bool {
	for _, id := range u.AccessibleTenantIDs {
		if id == tenantID {
			return true
		}
	}
	return false
}

// FindTenant returns the tenant with the given identifier from an ordered
// catalog, if present.
func FindTenant(catalog []Tenant, id string) (Tenant, bool) {
	for _, t := range catalog {
		if t.ID == id {
			return t, true
		}
	}
	return Tenant{}, false
}
