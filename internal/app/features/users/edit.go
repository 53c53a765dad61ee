// internal/app/features/users/edit.go
package users

import (
	"context"
	"net/http"

	uierrors "github.com/alqabasi/driver-dashboard-mini/internal/app/features/errors"
	"github.com/alqabasi/driver-dashboard-mini/internal/app/gateway"
	"github.com/alqabasi/driver-dashboard-mini/internal/app/system/normalize"
	"github.com/alqabasi/driver-dashboard-mini/internal/app/system/timeouts"
	"github.com/alqabasi/driver-dashboard-mini/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
)

// ServeEdit handles GET /users/{id}/edit.
//
// The form is seeded from the working copy; a cold start (direct link
// before any list visit) loads the list first.
func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	u, ok := h.Directory.Get(id)
	if !ok {
		ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
		defer cancel()

		if err := h.Directory.Load(ctx); err != nil {
			h.redirectAfterError(w, r, err)
			return
		}
		if u, ok = h.Directory.Get(id); !ok {
			uierrors.RenderNotFound(w, r, "That user doesn't exist.", "/users")
			return
		}
	}

	templates.Render(w, r, "user_edit", editData{
		BaseVM:      viewdata.NewBaseVM(r, h.Bus, "Edit User", "/users"),
		UserID:      u.ID,
		FullName:    u.FullName,
		MobilePhone: u.MobilePhone,
	})
}

// HandleEdit handles POST /users/{id}/edit.
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/users")
		return
	}

	id := chi.URLParam(r, "id")
	fullName := normalize.Name(r.FormValue("full_name"))
	mobilePhone := normalize.Phone(r.FormValue("mobile_phone"))

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	err := h.Directory.Update(ctx, id, fullName, mobilePhone)
	if err == nil {
		http.Redirect(w, r, "/users", http.StatusSeeOther)
		return
	}

	if gateway.IsUnauthorized(err) {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	templates.Render(w, r, "user_edit", editData{
		BaseVM:      viewdata.NewBaseVM(r, h.Bus, "Edit User", "/users"),
		UserID:      id,
		FullName:    fullName,
		MobilePhone: mobilePhone,
	})
}
