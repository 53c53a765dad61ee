// internal/app/features/notices/handler.go
package notices

import (
	"net/http"

	"github.com/alqabasi/driver-dashboard-mini/internal/app/notify"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler serves the dismiss buttons on the notification banners.
type Handler struct {
	Bus *notify.Bus
	Log *zap.Logger
}

func NewHandler(bus *notify.Bus, logger *zap.Logger) *Handler {
	return &Handler{Bus: bus, Log: logger}
}

// HandleDismiss handles POST /notices/{id}/dismiss.
//
// Dismissing an already-expired notification is a no-op, not an error;
// it lands back on the page the admin was looking at either way.
func (h *Handler) HandleDismiss(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	h.Bus.Dismiss(id)

	dest := urlutil.SafeReturn(r.FormValue("return"), "", "/users")
	http.Redirect(w, r, dest, http.StatusSeeOther)
}
