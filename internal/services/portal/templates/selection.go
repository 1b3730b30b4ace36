package templates

import (
	"context"
	"html"
	"io"

	"github.com/a-h/templ"

	"github.com/brandgate/brandgate/internal/routepath"
)

// SelectionLabel is one selectable label option.
type SelectionLabel struct {
	ID   string
	Name string
}

// SelectionTenant is one selectable tenant with its labels.
type SelectionTenant struct {
	ID       string
	Name     string
	Selected bool
	Labels   []SelectionLabel
}

// SelectionParams provides data for the context selection page.
type SelectionParams struct {
	Tenants []SelectionTenant
	// Error is the localized reason banner, empty when none.
	Error string
	Loc   Localizer
}

// SelectionPage renders the two-step tenant/label picker: choosing an
// organization reloads the page with that tenant's divisions, confirming
// posts the pair.
func SelectionPage(params SelectionParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		pw := &pageWriter{w: w}
		pw.raw("<h1>")
		pw.text(T(params.Loc, "select.heading"))
		pw.raw("</h1>\n")

		if params.Error != "" {
			pw.raw(`<p class="error-banner" role="alert">`)
			pw.text(params.Error)
			pw.raw("</p>\n")
		}

		pw.rawf(`<form method="get" action="%s">`, routepath.SelectContext)
		pw.raw("\n<label>")
		pw.text(T(params.Loc, "select.tenant"))
		pw.raw(` <select name="tenant">`)
		var selected *SelectionTenant
		for i := range params.Tenants {
			t := &params.Tenants[i]
			if t.Selected && selected == nil {
				selected = t
			}
			pw.rawf(`<option value="%s"`, html.EscapeString(t.ID))
			if t.Selected {
				pw.raw(" selected")
			}
			pw.raw(">")
			pw.text(t.Name)
			pw.raw("</option>")
		}
		pw.raw("</select></label>\n<button type=\"submit\">")
		pw.text(T(params.Loc, "select.show_labels"))
		pw.raw("</button>\n</form>\n")

		if selected != nil {
			pw.rawf(`<form method="post" action="%s">`, routepath.SelectContext)
			pw.rawf("\n<input type=\"hidden\" name=\"tenant\" value=\"%s\">\n", html.EscapeString(selected.ID))
			pw.raw("<label>")
			pw.text(T(params.Loc, "select.label"))
			pw.raw(` <select name="label">`)
			for _, label := range selected.Labels {
				pw.rawf(`<option value="%s">`, html.EscapeString(label.ID))
				pw.text(label.Name)
				pw.raw("</option>")
			}
			pw.raw("</select></label>\n<button type=\"submit\">")
			pw.text(T(params.Loc, "select.continue"))
			pw.raw("</button>\n</form>\n")
		}
		return pw.err
	})
}

// EmptyAccessPage renders the terminal state for users with no accessible
// tenants. It is not auto-recoverable; the user must contact support.
func EmptyAccessPage(loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		pw := &pageWriter{w: w}
		pw.raw("<h1>")
		pw.text(T(loc, "select.empty_access.heading"))
		pw.raw("</h1>\n<p>")
		pw.text(T(loc, "select.empty_access.message"))
		pw.raw("</p>\n")
		return pw.err
	})
}
