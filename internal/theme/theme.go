// Package theme defines the closed visual theme field set and the layered
// resolver that combines base defaults, tenant overrides, and label
// configuration into one fully-resolved theme.
package theme

import (
	"encoding/json"
	"strconv"
)

// Colors is the theme color palette.
type Colors struct {
	Primary          string `json:"primary"`
	Secondary        string `json:"secondary"`
	Background       string `json:"background"`
	Text             string `json:"text"`
	HeaderBackground string `json:"headerBackground"`
	HeaderText       string `json:"headerText"`
	Error            string `json:"error"`
	Success          string `json:"success"`
	Warning          string `json:"warning"`
}

// Typography describes the theme font settings.
type Typography struct {
	FontFamily string `json:"fontFamily"`
	FontSize   string `json:"fontSize"`
}

// Spacing defines the theme spacing scale.
type Spacing struct {
	Small  string `json:"small"`
	Medium string `json:"medium"`
	Large  string `json:"large"`
}

// Dashboard holds dashboard layout parameters.
type Dashboard struct {
	Gap string `json:"gap"`
}

// Theme is the fully-resolved visual theme. Every field has a base-level
// default; resolved themes never carry empty fields.
type Theme struct {
	Colors       Colors     `json:"colors"`
	Typography   Typography `json:"typography"`
	Spacing      Spacing    `json:"spacing"`
	BorderRadius string     `json:"borderRadius"`
	LogoURL      string     `json:"logoUrl"`
	Dashboard    Dashboard  `json:"dashboard"`
}

// Override is a partial theme: empty fields fall through to the layer below.
type Override struct {
	Colors       ColorsOverride     `json:"colors"`
	Typography   TypographyOverride `json:"typography"`
	Spacing      SpacingOverride    `json:"spacing"`
	BorderRadius string             `json:"borderRadius"`
	LogoURL      string             `json:"logoUrl"`
	Dashboard    DashboardOverride  `json:"dashboard"`
}

// ColorsOverride is a partial color palette.
type ColorsOverride struct {
	Primary          string `json:"primary"`
	Secondary        string `json:"secondary"`
	Background       string `json:"background"`
	Text             string `json:"text"`
	HeaderBackground string `json:"headerBackground"`
	HeaderText       string `json:"headerText"`
	Error            string `json:"error"`
	Success          string `json:"success"`
	Warning          string `json:"warning"`
}

// TypographyOverride is a partial typography block.
type TypographyOverride struct {
	FontFamily string `json:"fontFamily"`
	FontSize   string `json:"fontSize"`
}

// SpacingOverride is a partial spacing scale.
type SpacingOverride struct {
	Small  string `json:"small"`
	Medium string `json:"medium"`
	Large  string `json:"large"`
}

// DashboardOverride is a partial dashboard layout block.
type DashboardOverride struct {
	Gap string `json:"gap"`
}

// Label configuration keys recognized by the resolver. The set is finite
// and enumerated here; unrecognized keys never touch the theme.
const (
	// ConfigKeySquareCorners forces a zero corner radius when truthy.
	ConfigKeySquareCorners = "squareCorners"
	// ConfigKeyDashboardGap overrides the dashboard grid gap, in pixels.
	ConfigKeyDashboardGap = "dashboardGap"
)

// Base returns the system-wide default theme used absent any override.
func Base() Theme {
	return Theme{
		Colors: Colors{
			Primary:          "#007bff",
			Secondary:        "#6c757d",
			Background:       "#f8f9fa",
			Text:             "#212529",
			HeaderBackground: "#343a40",
			HeaderText:       "#ffffff",
			Error:            "#dc3545",
			Success:          "#28a745",
			Warning:          "#ffc107",
		},
		Typography: Typography{
			FontFamily: "Arial, sans-serif",
			FontSize:   "16px",
		},
		Spacing: Spacing{
			Small:  "8px",
			Medium: "16px",
			Large:  "24px",
		},
		BorderRadius: "4px",
		LogoURL:      "default-logo.png",
		Dashboard: Dashboard{
			Gap: "5px",
		},
	}
}

// Resolve layers a tenant override and label configuration onto a base
// theme. Resolution order is fixed: base < tenant override < label config;
// later layers win per-field and unspecified fields fall through.
//
// The label layer is applied by named key, not raw merge: only the
// enumerated Config* keys affect the theme. Resolve never mutates its
// inputs and is deterministic for identical inputs.
func Resolve(base Theme, tenantOverride Override, labelConfig map[string]any) Theme {
	resolved := base

	resolved.Colors.Primary = pick(base.Colors.Primary, tenantOverride.Colors.Primary)
	resolved.Colors.Secondary = pick(base.Colors.Secondary, tenantOverride.Colors.Secondary)
	resolved.Colors.Background = pick(base.Colors.Background, tenantOverride.Colors.Background)
	resolved.Colors.Text = pick(base.Colors.Text, tenantOverride.Colors.Text)
	resolved.Colors.HeaderBackground = pick(base.Colors.HeaderBackground, tenantOverride.Colors.HeaderBackground)
	resolved.Colors.HeaderText = pick(base.Colors.HeaderText, tenantOverride.Colors.HeaderText)
	resolved.Colors.Error = pick(base.Colors.Error, tenantOverride.Colors.Error)
	resolved.Colors.Success = pick(base.Colors.Success, tenantOverride.Colors.Success)
	resolved.Colors.Warning = pick(base.Colors.Warning, tenantOverride.Colors.Warning)

	resolved.Typography.FontFamily = pick(base.Typography.FontFamily, tenantOverride.Typography.FontFamily)
	resolved.Typography.FontSize = pick(base.Typography.FontSize, tenantOverride.Typography.FontSize)

	resolved.Spacing.Small = pick(base.Spacing.Small, tenantOverride.Spacing.Small)
	resolved.Spacing.Medium = pick(base.Spacing.Medium, tenantOverride.Spacing.Medium)
	resolved.Spacing.Large = pick(base.Spacing.Large, tenantOverride.Spacing.Large)

	resolved.BorderRadius = pick(base.BorderRadius, tenantOverride.BorderRadius)
	resolved.LogoURL = pick(base.LogoURL, tenantOverride.LogoURL)
	resolved.Dashboard.Gap = pick(base.Dashboard.Gap, tenantOverride.Dashboard.Gap)

	if truthy(labelConfig[ConfigKeySquareCorners]) {
		resolved.BorderRadius = "0"
	}
	if gap, ok := pixelValue(labelConfig[ConfigKeyDashboardGap]); ok {
		resolved.Dashboard.Gap = gap
	}

	return resolved
}

// pick returns the override when set, the base value otherwise.
func pick(base, override string) string {
	if override != "" {
		return override
	}
	return base
}

// truthy reports whether a label config value should be treated as an
// enabled flag.
func truthy(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		return v == "true"
	default:
		return false
	}
}

// pixelValue formats a numeric label config value as a pixel-valued string.
// Catalog sources decode config through encoding/json, so numbers arrive as
// float64 or json.Number depending on the decoder.
func pixelValue(value any) (string, bool) {
	switch v := value.(type) {
	case int:
		return strconv.Itoa(v) + "px", true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64) + "px", true
	case json.Number:
		return v.String() + "px", true
	default:
		return "", false
	}
}
