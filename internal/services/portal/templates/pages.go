package templates

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/a-h/templ"
)

// DashboardPage renders the dashboard for the current context. The card
// grid spacing comes from the theme's dashboard gap, so label-level
// overrides are visible here.
func DashboardPage(page PageContext) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		pw := &pageWriter{w: w}
		pw.raw("<h2>")
		pw.text(T(page.Loc, "dashboard.heading"))
		pw.raw("</h2>\n<p>")
		pw.text(T(page.Loc, "dashboard.welcome", page.TenantName, page.LabelName))
		pw.raw("</p>\n<div class=\"dashboard-grid\">\n")
		for i := 1; i <= 4; i++ {
			pw.rawf("<div class=\"card\">Widget %d</div>\n", i)
		}
		pw.raw("</div>\n")
		return pw.err
	})
}

// SettingsParams provides data for the settings page.
type SettingsParams struct {
	Page PageContext
	// Config is the raw label configuration mapping, shown as-is.
	Config map[string]any
}

// SettingsPage renders tenant/label settings, listing the label's
// configuration keys in stable order.
func SettingsPage(params SettingsParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		pw := &pageWriter{w: w}
		pw.raw("<h2>")
		pw.text(T(params.Page.Loc, "settings.heading"))
		pw.raw("</h2>\n<p>")
		pw.text(T(params.Page.Loc, "settings.tenant", params.Page.TenantName))
		pw.raw("</p>\n<p>")
		pw.text(T(params.Page.Loc, "settings.label", params.Page.LabelName))
		pw.raw("</p>\n<h3>")
		pw.text(T(params.Page.Loc, "settings.config_heading"))
		pw.raw("</h3>\n")

		if len(params.Config) == 0 {
			pw.raw("<p>")
			pw.text(T(params.Page.Loc, "settings.config_empty"))
			pw.raw("</p>\n")
			return pw.err
		}

		keys := make([]string, 0, len(params.Config))
		for key := range params.Config {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		pw.raw("<dl>\n")
		for _, key := range keys {
			pw.raw("<dt>")
			pw.text(key)
			pw.raw("</dt><dd>")
			pw.text(fmt.Sprintf("%v", params.Config[key]))
			pw.raw("</dd>\n")
		}
		pw.raw("</dl>\n")
		return pw.err
	})
}
