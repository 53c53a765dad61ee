// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	errorsfeature "github.com/alqabasi/driver-dashboard-mini/internal/app/features/errors"
	healthfeature "github.com/alqabasi/driver-dashboard-mini/internal/app/features/health"
	homefeature "github.com/alqabasi/driver-dashboard-mini/internal/app/features/home"
	loginfeature "github.com/alqabasi/driver-dashboard-mini/internal/app/features/login"
	logoutfeature "github.com/alqabasi/driver-dashboard-mini/internal/app/features/logout"
	noticesfeature "github.com/alqabasi/driver-dashboard-mini/internal/app/features/notices"
	usersfeature "github.com/alqabasi/driver-dashboard-mini/internal/app/features/users"
	"github.com/alqabasi/driver-dashboard-mini/internal/app/session"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, back-end wiring, and Startup
// hooks have completed. The dashboard:
//  1. Creates the session manager and hands it to the gateway as its
//     token source
//  2. Boots the template engine (dev mode enables reloading)
//  3. Applies session-loading and CSRF middleware to every route
//  4. Mounts feature routers: home, login, logout, users, notices,
//     health, and the error pages
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) (http.Handler, error) {
	// Create the session manager using app config.
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := session.NewManager(
		appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure,
		deps.Gateway, deps.Bus, logger,
	)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// The gateway reads the bearer token per-request through the session
	// manager, and evicts the session when the API rejects it.
	deps.Gateway.SetTokens(sessionMgr)

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	// Create error logger for handlers.
	errLog := errorsfeature.NewErrorLogger(logger)

	r := chi.NewRouter()

	// Session middleware: resolves the cookie into request context so
	// every handler (and the gateway) sees the same session state.
	r.Use(sessionMgr.LoadSession)

	// CSRF protection for all state-changing form posts.
	r.Use(csrf.Protect(
		[]byte(appCfg.SessionKey),
		csrf.Secure(secure),
		csrf.Path("/"),
	))

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.Gateway, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Entry point
	homeHandler := homefeature.NewHandler(logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	// Authentication
	loginHandler := loginfeature.NewHandler(sessionMgr, deps.Bus, errLog, logger)
	r.Mount("/login", loginfeature.Routes(loginHandler))

	logoutHandler := logoutfeature.NewHandler(sessionMgr, logger)
	r.Mount("/logout", logoutfeature.Routes(logoutHandler, sessionMgr))

	// Error pages
	errorsHandler := errorsfeature.NewHandler(deps.Bus)
	r.Get("/forbidden", errorsHandler.Forbidden)
	r.Get("/unauthorized", errorsHandler.Unauthorized)
	r.NotFound(errorsHandler.NotFound)

	// User management
	usersHandler := usersfeature.NewHandler(deps.Directory, deps.Bus, errLog, logger)
	r.Mount("/users", usersfeature.Routes(usersHandler, sessionMgr))

	// Notification dismissal
	noticesHandler := noticesfeature.NewHandler(deps.Bus, logger)
	r.Mount("/notices", noticesfeature.Routes(noticesHandler))

	return r, nil
}
