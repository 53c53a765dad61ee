// internal/app/features/users/handler.go
package users

import (
	"net/http"

	"github.com/alqabasi/driver-dashboard-mini/internal/app/directory"
	uierrors "github.com/alqabasi/driver-dashboard-mini/internal/app/features/errors"
	"github.com/alqabasi/driver-dashboard-mini/internal/app/gateway"
	"github.com/alqabasi/driver-dashboard-mini/internal/app/notify"
	"go.uber.org/zap"
)

type Handler struct {
	Directory *directory.Directory
	Bus       *notify.Bus
	ErrLog    *uierrors.ErrorLogger
	Log       *zap.Logger
}

// NewHandler constructs the user management feature handler bound to
// the shared directory, notification bus, and logger.
func NewHandler(dir *directory.Directory, bus *notify.Bus, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Directory: dir,
		Bus:       bus,
		ErrLog:    errLog,
		Log:       logger,
	}
}

// redirectAfterError routes a failed API call. A rejected token goes back
// to the login form; anything else returns to the list, where the queued
// notification explains what happened.
func (h *Handler) redirectAfterError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case gateway.IsUnauthorized(err):
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	case gateway.IsForbidden(err):
		http.Redirect(w, r, "/forbidden", http.StatusSeeOther)
	default:
		http.Redirect(w, r, "/users", http.StatusSeeOther)
	}
}
