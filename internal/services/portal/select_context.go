package portal

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"

	"github.com/brandgate/brandgate/internal/reconcile"
	"github.com/brandgate/brandgate/internal/routepath"
	"github.com/brandgate/brandgate/internal/services/portal/templates"
	"github.com/brandgate/brandgate/internal/tenant"
)

// reasonMessageKey maps a redirect reason code to its banner message key.
// Unknown codes render no banner.
func reasonMessageKey(reason string) string {
	switch reconcile.Reason(reason) {
	case reconcile.ReasonInvalidTenant:
		return "select.error.invalid_tenant"
	case reconcile.ReasonInvalidLabel:
		return "select.error.invalid_label"
	}
	return ""
}

func (h *handler) handleSelectContext(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.sessionFromRequest(r)
	if !ok || !sess.Authenticated() {
		http.Redirect(w, r, routepath.LoginWithReturn(routepath.SelectContext), http.StatusFound)
		return
	}

	printer, lang := localizer(w, r)
	page := h.basePage(printer, lang)
	page.UserName = sess.User.Username

	principal := h.principals.get(sess.ID)
	if err := principal.contexts.LoadCatalog(r.Context()); err != nil {
		title := templates.T(printer, "title.unavailable", h.appName)
		templ.Handler(
			templates.Layout(page, title, templates.UnavailablePage(page)),
			templ.WithStatus(http.StatusServiceUnavailable),
		).ServeHTTP(w, r)
		return
	}

	accessible := tenant.AccessibleTenants(sess.User, principal.contexts.Catalog())
	if len(accessible) == 0 {
		title := templates.T(printer, "title.select", h.appName)
		templ.Handler(templates.Layout(page, title, templates.EmptyAccessPage(printer))).ServeHTTP(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.selectContextPage(w, r, page, printer, accessible)
	case http.MethodPost:
		h.selectContextSubmit(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *handler) selectContextPage(w http.ResponseWriter, r *http.Request, page templates.PageContext, printer templates.Localizer, accessible []tenant.Tenant) {
	selectedID := strings.TrimSpace(r.URL.Query().Get("tenant"))
	if selectedID == "" {
		selectedID = accessible[0].ID
	}

	options := make([]templates.SelectionTenant, 0, len(accessible))
	for _, t := range accessible {
		option := templates.SelectionTenant{
			ID:       t.ID,
			Name:     t.Name,
			Selected: t.ID == selectedID,
		}
		if option.Selected {
			for _, label := range tenant.LabelsFor(t) {
				option.Labels = append(option.Labels, templates.SelectionLabel{ID: label.ID, Name: label.Name})
			}
		}
		options = append(options, option)
	}

	var banner string
	if key := reasonMessageKey(r.URL.Query().Get(routepath.ErrorParam)); key != "" {
		banner = templates.T(printer, key)
	}

	title := templates.T(printer, "title.select", h.appName)
	body := templates.SelectionPage(templates.SelectionParams{
		Tenants: options,
		Error:   banner,
		Loc:     printer,
	})
	templ.Handler(templates.Layout(page, title, body)).ServeHTTP(w, r)
}

// selectContextSubmit redirects into the app route for the picked pair.
// Validation happens at the navigation boundary, so a pair that turned
// invalid between render and submit resolves the same way as a stale
// bookmark would.
func (h *handler) selectContextSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	tenantID := strings.TrimSpace(r.PostFormValue("tenant"))
	labelID := strings.TrimSpace(r.PostFormValue("label"))
	if tenantID == "" || labelID == "" {
		http.Redirect(w, r, routepath.SelectContext, http.StatusFound)
		return
	}
	http.Redirect(w, r, routepath.AppPage(tenantID, labelID, routepath.DefaultPage), http.StatusFound)
}
