// Package routepath centralizes portal route constants and URL builders.
package routepath

import "net/url"

const (
	// Root is the public landing route.
	Root = "/"
	// Login is the credential form route.
	Login = "/login"
	// Logout destroys the session.
	Logout = "/logout"
	// AppRoot prefixes all tenant/label-scoped routes.
	AppRoot = "/app"
	// SelectContext is the tenant/label selection entry point.
	SelectContext = "/app/select-context"
	// DefaultPage is the page served when a context path omits one.
	DefaultPage = "dashboard"

	// ErrorParam carries a redirect reason to the selection page.
	ErrorParam = "error"
	// ReturnToParam preserves the originally requested location across login.
	ReturnToParam = "return_to"
)

// AppPage builds the route for a page within a tenant/label context.
func AppPage(tenantID, labelID, page string) string {
	if page == "" {
		page = DefaultPage
	}
	return AppRoot + "/" + url.PathEscape(tenantID) + "/" + url.PathEscape(labelID) + "/" + page
}

// LoginWithReturn builds the login route preserving the requested location.
func LoginWithReturn(returnTo string) string {
	if returnTo == "" {
		return Login
	}
	return Login + "?" + ReturnToParam + "=" + url.QueryEscape(returnTo)
}

// SelectContextWithError builds the selection route tagged with a reason
// code so the UI can surface a message.
func SelectContextWithError(reason string) string {
	if reason == "" {
		return SelectContext
	}
	return SelectContext + "?" + ErrorParam + "=" + url.QueryEscape(reason)
}
