package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.AmericanEnglish

	// Login page
	message.SetString(lang, "title.login", "%s | Sign In")
	message.SetString(lang, "login.heading", "Sign in to %s")
	message.SetString(lang, "login.username", "Username")
	message.SetString(lang, "login.password", "Password")
	message.SetString(lang, "login.submit", "Sign In")
	message.SetString(lang, "login.submitting", "Signing in…")
	message.SetString(lang, "login.invalid_credentials", "Invalid username or password.")

	// Context selection page
	message.SetString(lang, "title.select", "%s | Choose Workspace")
	message.SetString(lang, "select.heading", "Choose your workspace")
	message.SetString(lang, "select.tenant", "Organization")
	message.SetString(lang, "select.label", "Division")
	message.SetString(lang, "select.continue", "Continue")
	message.SetString(lang, "select.show_labels", "Show divisions")
	message.SetString(lang, "select.error.invalid_tenant", "That organization is unavailable or you do not have access to it.")
	message.SetString(lang, "select.error.invalid_label", "That division is unavailable. Pick another one.")
	message.SetString(lang, "select.empty_access.heading", "No workspaces available")
	message.SetString(lang, "select.empty_access.message", "Your account has no accessible organizations. Contact support to request access.")

	// App chrome
	message.SetString(lang, "nav.dashboard", "Dashboard")
	message.SetString(lang, "nav.settings", "Settings")
	message.SetString(lang, "nav.switch_context", "Switch workspace")
	message.SetString(lang, "nav.sign_out", "Sign out")

	// Dashboard page
	message.SetString(lang, "title.dashboard", "%s | Dashboard")
	message.SetString(lang, "dashboard.heading", "Dashboard")
	message.SetString(lang, "dashboard.welcome", "Welcome to the %s dashboard for %s.")

	// Settings page
	message.SetString(lang, "title.settings", "%s | Settings")
	message.SetString(lang, "settings.heading", "Settings")
	message.SetString(lang, "settings.tenant", "Settings for organization: %s")
	message.SetString(lang, "settings.label", "Current division: %s")
	message.SetString(lang, "settings.config_heading", "Division configuration")
	message.SetString(lang, "settings.config_empty", "This division has no configuration overrides.")

	// Error pages
	message.SetString(lang, "title.not_found", "%s | Not Found")
	message.SetString(lang, "error.not_found.heading", "Page not found")
	message.SetString(lang, "error.not_found.message", "The page you requested does not exist.")
	message.SetString(lang, "title.unavailable", "%s | Unavailable")
	message.SetString(lang, "error.unavailable.heading", "Catalog unavailable")
	message.SetString(lang, "error.unavailable.message", "We could not load your organizations. Please try again in a moment.")
	message.SetString(lang, "error.back_to_selection", "Back to workspace selection")
}
