// Package templates renders the portal pages as templ components. The
// resolved theme is emitted as CSS custom properties so every page picks up
// the tenant/label branding without per-page styling.
package templates

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"
	"golang.org/x/text/message"

	"github.com/brandgate/brandgate/internal/routepath"
	"github.com/brandgate/brandgate/internal/theme"
)

// Localizer resolves message keys to localized strings.
type Localizer interface {
	Sprintf(key message.Reference, args ...interface{}) string
}

// T localizes a message key, falling back to the key itself when no
// localizer is available.
func T(loc Localizer, key string, args ...any) string {
	if loc == nil {
		return key
	}
	return loc.Sprintf(key, args...)
}

// PageContext provides shared layout context for pages.
type PageContext struct {
	Lang     string
	Loc      Localizer
	AppName  string
	Theme    theme.Theme
	UserName string

	// Context chrome; empty outside a resolved tenant/label context.
	TenantID   string
	TenantName string
	LabelID    string
	LabelName  string
	Page       string
}

// pageWriter accumulates the first write error so components read linearly.
type pageWriter struct {
	w   io.Writer
	err error
}

func (p *pageWriter) raw(s string) {
	if p.err == nil {
		_, p.err = io.WriteString(p.w, s)
	}
}

func (p *pageWriter) rawf(format string, args ...any) {
	if p.err == nil {
		_, p.err = fmt.Fprintf(p.w, format, args...)
	}
}

func (p *pageWriter) text(s string) {
	p.raw(html.EscapeString(s))
}

// themeCSS renders the resolved theme as CSS custom properties plus the
// base page styles that consume them.
func themeCSS(t theme.Theme) string {
	return fmt.Sprintf(`:root{
--color-primary:%s;
--color-secondary:%s;
--color-background:%s;
--color-text:%s;
--color-header-background:%s;
--color-header-text:%s;
--color-error:%s;
--color-success:%s;
--color-warning:%s;
--font-family:%s;
--font-size:%s;
--spacing-small:%s;
--spacing-medium:%s;
--spacing-large:%s;
--border-radius:%s;
--dashboard-gap:%s;
}
body{margin:0;font-family:var(--font-family);font-size:var(--font-size);background:var(--color-background);color:var(--color-text);}
header.portal{display:flex;align-items:center;gap:var(--spacing-medium);padding:var(--spacing-medium);background:var(--color-header-background);color:var(--color-header-text);}
header.portal a{color:var(--color-header-text);text-decoration:none;margin-right:var(--spacing-small);}
main{padding:var(--spacing-large);}
button,input,select{border-radius:var(--border-radius);font-size:var(--font-size);padding:var(--spacing-small);}
button{background:var(--color-primary);color:#fff;border:0;cursor:pointer;}
.error-banner{background:var(--color-error);color:#fff;padding:var(--spacing-small);border-radius:var(--border-radius);margin-bottom:var(--spacing-medium);}
.dashboard-grid{display:grid;grid-template-columns:repeat(auto-fill,minmax(240px,1fr));gap:var(--dashboard-gap);}
.card{background:#fff;border-radius:var(--border-radius);padding:var(--spacing-medium);box-shadow:0 1px 3px rgba(0,0,0,.12);}
`,
		cssValue(t.Colors.Primary), cssValue(t.Colors.Secondary), cssValue(t.Colors.Background),
		cssValue(t.Colors.Text), cssValue(t.Colors.HeaderBackground), cssValue(t.Colors.HeaderText),
		cssValue(t.Colors.Error), cssValue(t.Colors.Success), cssValue(t.Colors.Warning),
		cssValue(t.Typography.FontFamily), cssValue(t.Typography.FontSize),
		cssValue(t.Spacing.Small), cssValue(t.Spacing.Medium), cssValue(t.Spacing.Large),
		cssValue(t.BorderRadius), cssValue(t.Dashboard.Gap))
}

// cssValue strips characters that could break out of a CSS declaration.
func cssValue(v string) string {
	out := make([]rune, 0, len(v))
	for _, r := range v {
		switch r {
		case '<', '>', '{', '}', ';':
			continue
		default:
			out = append(out, r)
		}
	}
	return string(out)
}

// Layout wraps a body component in the portal chrome: themed head, header
// with tenant branding and navigation, and the main content region.
func Layout(page PageContext, title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		pw := &pageWriter{w: w}
		pw.raw("<!DOCTYPE html>\n")
		pw.rawf("<html lang=\"%s\">\n<head>\n<meta charset=\"utf-8\">\n", html.EscapeString(page.Lang))
		pw.raw("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n<title>")
		pw.text(title)
		pw.raw("</title>\n<style>")
		pw.raw(themeCSS(page.Theme))
		pw.raw("</style>\n</head>\n<body>\n")

		pw.raw(`<header class="portal">`)
		brand := page.TenantName
		if brand == "" {
			brand = page.AppName
		}
		pw.rawf(`<img src="/static/logos/%s" alt="%s" height="32">`,
			html.EscapeString(page.Theme.LogoURL), html.EscapeString(brand))
		pw.raw("<strong>")
		pw.text(brand)
		if page.LabelName != "" {
			pw.raw(" / ")
			pw.text(page.LabelName)
		}
		pw.raw("</strong>")

		if page.TenantID != "" && page.LabelID != "" {
			pw.raw(`<nav>`)
			pw.rawf(`<a href="%s">`, routepath.AppPage(page.TenantID, page.LabelID, "dashboard"))
			pw.text(T(page.Loc, "nav.dashboard"))
			pw.raw("</a>")
			pw.rawf(`<a href="%s">`, routepath.AppPage(page.TenantID, page.LabelID, "settings"))
			pw.text(T(page.Loc, "nav.settings"))
			pw.raw("</a>")
			pw.rawf(`<a href="%s">`, routepath.SelectContext)
			pw.text(T(page.Loc, "nav.switch_context"))
			pw.raw("</a></nav>")
		}

		if page.UserName != "" {
			pw.raw(`<form method="post" action="`)
			pw.raw(routepath.Logout)
			pw.raw(`" style="margin-left:auto"><button type="submit">`)
			pw.text(T(page.Loc, "nav.sign_out"))
			pw.raw("</button></form>")
		}
		pw.raw("</header>\n<main>\n")
		if pw.err != nil {
			return pw.err
		}

		if err := body.Render(ctx, w); err != nil {
			return err
		}

		pw.raw("\n</main>\n</body>\n</html>\n")
		return pw.err
	})
}
