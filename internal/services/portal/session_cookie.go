package portal

import (
	"net/http"

	"github.com/brandgate/brandgate/internal/session"
)

const sessionCookieName = "bg_session"

// sessionFromRequest resolves the request's session cookie against the
// session store. The second return is false when the cookie is absent or
// the session expired.
func (h *handler) sessionFromRequest(r *http.Request) (session.Session, bool) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil || cookie.Value == "" {
		return session.Session{}, false
	}
	return h.sessions.Get(cookie.Value)
}

// setSessionCookie installs the session cookie on the response.
func setSessionCookie(w http.ResponseWriter, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie expires the session cookie.
func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
