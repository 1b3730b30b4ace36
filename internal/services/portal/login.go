package portal

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/a-h/templ"

	"github.com/brandgate/brandgate/internal/auth"
	"github.com/brandgate/brandgate/internal/routepath"
	"github.com/brandgate/brandgate/internal/services/portal/templates"
)

// safeReturnTo accepts only same-site paths, rejecting absolute URLs and
// protocol-relative forms that would make login an open redirect.
func safeReturnTo(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") {
		return ""
	}
	return raw
}

func (h *handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.loginPage(w, r)
	case http.MethodPost:
		h.loginSubmit(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *handler) loginPage(w http.ResponseWriter, r *http.Request) {
	returnTo := safeReturnTo(r.URL.Query().Get(routepath.ReturnToParam))

	if sess, ok := h.sessionFromRequest(r); ok && sess.Authenticated() {
		target := returnTo
		if target == "" {
			target = routepath.SelectContext
		}
		http.Redirect(w, r, target, http.StatusFound)
		return
	}

	printer, lang := localizer(w, r)
	h.renderLogin(w, r, templates.LoginParams{
		AppName:  h.appName,
		ReturnTo: returnTo,
		Loc:      printer,
	}, lang, http.StatusOK)
}

func (h *handler) loginSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	username := strings.TrimSpace(r.PostFormValue("username"))
	password := r.PostFormValue("password")
	returnTo := safeReturnTo(r.PostFormValue(routepath.ReturnToParam))

	printer, lang := localizer(w, r)

	user, token, err := h.auth.SubmitCredentials(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			h.renderLogin(w, r, templates.LoginParams{
				AppName:  h.appName,
				Error:    templates.T(printer, "login.invalid_credentials"),
				Username: username,
				ReturnTo: returnTo,
				Loc:      printer,
			}, lang, http.StatusUnauthorized)
			return
		}
		log.Printf("credential check failed: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	sess, err := h.sessions.Create(user, token)
	if err != nil {
		log.Printf("create session: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	setSessionCookie(w, sess.ID)

	target := returnTo
	if target == "" {
		target = routepath.SelectContext
	}
	http.Redirect(w, r, target, http.StatusFound)
}

func (h *handler) renderLogin(w http.ResponseWriter, r *http.Request, params templates.LoginParams, lang string, status int) {
	page := h.basePage(params.Loc, lang)
	title := templates.T(params.Loc, "title.login", h.appName)
	templ.Handler(
		templates.Layout(page, title, templates.LoginPage(params)),
		templ.WithStatus(status),
	).ServeHTTP(w, r)
}

func (h *handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		if err := h.sessions.Delete(cookie.Value); err != nil {
			log.Printf("delete session %s: %v", cookie.Value, err)
		}
		h.principals.drop(cookie.Value)
	}
	clearSessionCookie(w)
	http.Redirect(w, r, routepath.Login, http.StatusFound)
}
