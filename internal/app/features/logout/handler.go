// internal/app/features/logout/handler.go
package logout

import (
	"net/http"

	"github.com/alqabasi/driver-dashboard-mini/internal/app/session"
	"go.uber.org/zap"
)

type Handler struct {
	Log        *zap.Logger
	SessionMgr *session.Manager
}

func NewHandler(sessionMgr *session.Manager, logger *zap.Logger) *Handler {
	return &Handler{
		Log:        logger,
		SessionMgr: sessionMgr,
	}
}

// ServeLogout handles GET /logout.
func (h *Handler) ServeLogout(w http.ResponseWriter, r *http.Request) {
	h.SessionMgr.Logout(w, r)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
