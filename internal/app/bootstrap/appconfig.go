// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like HTTP/HTTPS
// ports, TLS, logging, and CORS. AppConfig is where everything specific
// to this console lives: the upstream API, session cookies, and
// notification behavior.
type AppConfig struct {
	// Upstream API configuration
	APIBaseURL string        // Base URL of the driver API (e.g., https://api.example.com/api/v1)
	APITimeout time.Duration // Per-request timeout for API calls

	// Session management configuration
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionName   string // Cookie name for sessions (default: dashboard-session)
	SessionDomain string // Cookie domain (blank means current host)

	// Notification behavior
	NoticeTTL time.Duration // How long a queued notification stays visible
}
