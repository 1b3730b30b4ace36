package tenant

// AccessibleTenants filters a catalog to the tenants the user may select:
// those whose id is in the user's accessible set and which carry at least
// one label. Catalog order is preserved.
//
// The empty result is a distinct state ("no accessible tenants"), not an
// error; callers surface it as a terminal message rather than a fault.
func AccessibleTenants(user User, catalog []Tenant) []Tenant {
	accessible := make([]Tenant, 0, len(catalog))
	for _, t := range catalog {
		if !user.CanAccess(t.ID) {
			continue
		}
		if len(t.Labels) == 0 {
			continue
		}
		accessible = append(accessible, t)
	}
	return accessible
}

// LabelsFor returns the tenant's ordered labels. The indirection makes
// empty-label tenants explicit at the call site.
func LabelsFor(t Tenant) []Label {
	return t.Labels
}
