package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/brandgate/brandgate/internal/routepath"
)

// NotFoundPage renders the themed 404 body for unknown pages inside an
// active context.
func NotFoundPage(page PageContext) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		pw := &pageWriter{w: w}
		pw.raw("<h2>")
		pw.text(T(page.Loc, "error.not_found.heading"))
		pw.raw("</h2>\n<p>")
		pw.text(T(page.Loc, "error.not_found.message"))
		pw.raw("</p>\n")
		return pw.err
	})
}

// UnavailablePage renders the catalog failure body with a link back to
// workspace selection so the user can retry.
func UnavailablePage(page PageContext) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		pw := &pageWriter{w: w}
		pw.raw("<h2>")
		pw.text(T(page.Loc, "error.unavailable.heading"))
		pw.raw("</h2>\n<p>")
		pw.text(T(page.Loc, "error.unavailable.message"))
		pw.raw("</p>\n")
		pw.rawf(`<p><a href="%s">`, routepath.SelectContext)
		pw.text(T(page.Loc, "error.back_to_selection"))
		pw.raw("</a></p>\n")
		return pw.err
	})
}
