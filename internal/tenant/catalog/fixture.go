package catalog

import (
	"context"
	"time"

	"github.com/brandgate/brandgate/internal/tenant"
	"github.com/brandgate/brandgate/internal/theme"
)

// Fixture serves a fixed in-memory catalog, optionally after a simulated
// network delay. It backs local development and tests.
type Fixture struct {
	Tenants []tenant.Tenant
	Delay   time.Duration
}

// FetchTenantCatalog returns a copy of the fixture tenants after the
// configured delay, honoring context cancellation while waiting.
func (f *Fixture) FetchTenantCatalog(ctx context.Context) ([]tenant.Tenant, error) {
	if f.Delay > 0 {
		timer := time.NewTimer(f.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
	out := make([]tenant.Tenant, len(f.Tenants))
	copy(out, f.Tenants)
	return out, nil
}

// DemoTenants returns the demo catalog: three tenants exercising every
// override layer (full palette override, label-level visual flags, and a
// tenant with no customization at all).
func DemoTenants() []tenant.Tenant {
	return []tenant.Tenant{
		{
			ID:   "tenant-a",
			Name: "Alpha Bank",
			Theme: theme.Override{
				Colors: theme.ColorsOverride{
					Primary:          "#0056b3",
					HeaderBackground: "#004085",
					HeaderText:       "#ffffff",
					Secondary:        "#0000FF",
					Background:       "#FAFAFA",
					Text:             "#353E43",
				},
				LogoURL: "alpha-bank-logo.png",
			},
			Labels: []tenant.Label{
				{ID: "label-x", Name: "Retail Division X", Config: map[string]any{"featureA": true}},
				{ID: "label-y", Name: "Corporate Banking Y", Config: map[string]any{"featureB": true}},
			},
		},
		{
			ID:   "tenant-b",
			Name: "Beta Financial",
			Theme: theme.Override{
				Colors: theme.ColorsOverride{
					Primary:          "#1e7e34",
					HeaderBackground: "#155724",
					HeaderText:       "#ffffff",
					Secondary:        "#7F00FF",
					Background:       "#FFFAFA",
					Text:             "#353839",
				},
				LogoURL: "beta-financial-logo.png",
			},
			Labels: []tenant.Label{
				{
					ID:   "label-z",
					Name: "Wealth Management Z",
					Config: map[string]any{
						"dropdownsInsteadOfRadioButtons": true,
					},
				},
				{
					ID:   "label-w",
					Name: "Regional Branch West",
					Config: map[string]any{
						"specificLegalText":          demoLegalText,
						theme.ConfigKeySquareCorners: true,
						theme.ConfigKeyDashboardGap:  float64(20),
					},
				},
			},
		},
		{
			ID:     "tenant-c",
			Name:   "Gamma Capital",
			Labels: []tenant.Label{{ID: "label-p", Name: "Private Equity P"}},
		},
	}
}

// DemoUsers returns the demo user directory paired with DemoTenants.
func DemoUsers() []tenant.User {
	return []tenant.User{
		{ID: "user-1", Username: "user1", AccessibleTenantIDs: []string{"tenant-a", "tenant-b"}},
		{ID: "user-2", Username: "user2", AccessibleTenantIDs: []string{"tenant-b"}},
	}
}

const demoLegalText = "Lorem Ipsum is simply dummy text of the printing and " +
	"typesetting industry. Lorem Ipsum has been the industry's standard dummy " +
	"text ever since the 1500s, when an unknown printer took a galley of type " +
	"and scrambled it to make a type specimen book."
