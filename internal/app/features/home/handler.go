package home

import (
	"net/http"

	"github.com/alqabasi/driver-dashboard-mini/internal/app/session"
	"go.uber.org/zap"
)

// Handler serves the root path. The console has no landing page of its
// own; it forwards to the user list or the login form.
type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET / – entry point                                                         |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	if session.IsAuthenticated(r) {
		http.Redirect(w, r, "/users", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
