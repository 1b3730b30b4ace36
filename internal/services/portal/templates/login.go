package templates

import (
	"context"
	"html"
	"io"

	"github.com/a-h/templ"

	"github.com/brandgate/brandgate/internal/routepath"
)

// LoginParams provides data for the login page.
type LoginParams struct {
	AppName string
	// Error is the localized inline failure message, empty when none.
	Error string
	// Username re-fills the form after a failed attempt.
	Username string
	// ReturnTo is the originally requested location, carried through login.
	ReturnTo string
	Loc      Localizer
}

// LoginPage renders the credential form. Submission disables the button
// and swaps its caption so the pending ~500ms credential check cannot be
// resubmitted.
func LoginPage(params LoginParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		pw := &pageWriter{w: w}
		pw.raw("<h1>")
		pw.text(T(params.Loc, "login.heading", params.AppName))
		pw.raw("</h1>\n")

		if params.Error != "" {
			pw.raw(`<p class="error-banner" role="alert">`)
			pw.text(params.Error)
			pw.raw("</p>\n")
		}

		pw.rawf(`<form method="post" action="%s" onsubmit="var b=this.querySelector('button');b.disabled=true;b.textContent=%q;">`,
			routepath.Login, T(params.Loc, "login.submitting"))
		pw.raw("\n")
		if params.ReturnTo != "" {
			pw.rawf(`<input type="hidden" name="%s" value="%s">`,
				routepath.ReturnToParam, html.EscapeString(params.ReturnTo))
			pw.raw("\n")
		}
		pw.raw("<label>")
		pw.text(T(params.Loc, "login.username"))
		pw.rawf(` <input type="text" name="username" value="%s" autofocus required></label>`,
			html.EscapeString(params.Username))
		pw.raw("\n<label>")
		pw.text(T(params.Loc, "login.password"))
		pw.raw(` <input type="password" name="password" required></label>`)
		pw.raw("\n<button type=\"submit\">")
		pw.text(T(params.Loc, "login.submit"))
		pw.raw("</button>\n</form>\n")
		return pw.err
	})
}
