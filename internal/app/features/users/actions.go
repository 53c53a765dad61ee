// internal/app/features/users/actions.go
package users

import (
	"context"
	"net/http"

	"github.com/alqabasi/driver-dashboard-mini/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
)

// HandleToggle handles POST /users/{id}/toggle.
//
// The form names the state the admin saw on the rendered row, so the
// request describes intent ("make this user active") rather than asking
// for a blind flip.
func (h *Handler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/users")
		return
	}

	id := chi.URLParam(r, "id")
	target := r.FormValue("active") == "1"

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	if err := h.Directory.SetActive(ctx, id, target); err != nil {
		h.redirectAfterError(w, r, err)
		return
	}

	http.Redirect(w, r, "/users", http.StatusSeeOther)
}

// HandleDelete handles POST /users/{id}/delete.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	if err := h.Directory.Remove(ctx, id); err != nil {
		h.redirectAfterError(w, r, err)
		return
	}

	http.Redirect(w, r, "/users", http.StatusSeeOther)
}
