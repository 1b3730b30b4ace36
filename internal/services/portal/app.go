package portal

import (
	"log"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/brandgate/brandgate/internal/platform/requestctx"
	"github.com/brandgate/brandgate/internal/reconcile"
	"github.com/brandgate/brandgate/internal/routepath"
	"github.com/brandgate/brandgate/internal/services/portal/templates"
)

// parseAppPath splits an /app request path into its context request. The
// page keeps any sub-path segments so a label fallback redirect can
// preserve them.
func parseAppPath(path string) reconcile.Request {
	trimmed := strings.Trim(strings.TrimPrefix(path, routepath.AppRoot), "/")
	req := reconcile.Request{Path: path}
	if trimmed == "" {
		return req
	}
	segments := strings.SplitN(trimmed, "/", 3)
	req.TenantID = segments[0]
	if len(segments) > 1 {
		req.LabelID = segments[1]
	}
	if len(segments) > 2 {
		req.Page = segments[2]
	}
	return req
}

// handleApp is the navigation boundary for tenant/label-scoped pages.
// Every request reconciles the requested context before anything renders.
func (h *handler) handleApp(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	req := parseAppPath(r.URL.Path)

	sess, ok := h.sessionFromRequest(r)
	if !ok || !sess.Authenticated() {
		http.Redirect(w, r, routepath.LoginWithReturn(req.Path), http.StatusFound)
		return
	}

	// A context path without a page lands on the dashboard.
	if req.TenantID != "" && req.LabelID != "" && req.Page == "" {
		http.Redirect(w, r, routepath.AppPage(req.TenantID, req.LabelID, routepath.DefaultPage), http.StatusFound)
		return
	}

	ctx := requestctx.WithSessionID(requestctx.WithUserID(r.Context(), sess.User.ID), sess.ID)
	ctx, span := otel.Tracer("portal").Start(ctx, "reconcile",
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String("tenant.id", req.TenantID),
			attribute.String("label.id", req.LabelID),
		))
	defer span.End()
	r = r.WithContext(ctx)

	principal := h.principals.get(sess.ID)
	gen := principal.ctrl.Begin()
	decision := principal.ctrl.Reconcile(ctx, sess, req, gen)
	span.SetAttributes(attribute.Int("decision.kind", int(decision.Kind)))

	printer, lang := localizer(w, r)

	switch decision.Kind {
	case reconcile.KindRedirect:
		http.Redirect(w, r, decision.Target, http.StatusFound)
	case reconcile.KindAwaitingCatalog:
		log.Printf("catalog load failed for session %s: %v", sess.ID, decision.Err)
		page := h.basePage(printer, lang)
		page.UserName = sess.User.Username
		title := templates.T(printer, "title.unavailable", h.appName)
		templ.Handler(
			templates.Layout(page, title, templates.UnavailablePage(page)),
			templ.WithStatus(http.StatusServiceUnavailable),
		).ServeHTTP(w, r)
	case reconcile.KindSuperseded:
		w.WriteHeader(http.StatusNoContent)
	case reconcile.KindActive:
		h.renderAppPage(w, r, principal, sess.User.Username, req.Page, printer, lang)
	}
}

func (h *handler) renderAppPage(w http.ResponseWriter, r *http.Request, principal *principal, userName, pageName string, printer templates.Localizer, lang string) {
	snapshot := principal.contexts.Snapshot()

	page := templates.PageContext{
		Lang:       lang,
		Loc:        printer,
		AppName:    h.appName,
		Theme:      snapshot.Theme,
		UserName:   userName,
		TenantID:   snapshot.TenantID,
		TenantName: snapshot.Tenant.Name,
		LabelID:    snapshot.LabelID,
		LabelName:  snapshot.Label.Name,
		Page:       pageName,
	}

	switch pageName {
	case "dashboard":
		title := templates.T(printer, "title.dashboard", h.appName)
		templ.Handler(templates.Layout(page, title, templates.DashboardPage(page))).ServeHTTP(w, r)
	case "settings":
		title := templates.T(printer, "title.settings", h.appName)
		body := templates.SettingsPage(templates.SettingsParams{Page: page, Config: snapshot.Label.Config})
		templ.Handler(templates.Layout(page, title, body)).ServeHTTP(w, r)
	default:
		title := templates.T(printer, "title.not_found", h.appName)
		templ.Handler(
			templates.Layout(page, title, templates.NotFoundPage(page)),
			templ.WithStatus(http.StatusNotFound),
		).ServeHTTP(w, r)
	}
}
