// internal/app/features/users/new.go
package users

import (
	"context"
	"errors"
	"net/http"

	"github.com/alqabasi/driver-dashboard-mini/internal/app/directory"
	"github.com/alqabasi/driver-dashboard-mini/internal/app/gateway"
	"github.com/alqabasi/driver-dashboard-mini/internal/app/system/normalize"
	"github.com/alqabasi/driver-dashboard-mini/internal/app/system/timeouts"
	"github.com/alqabasi/driver-dashboard-mini/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
)

// ServeNew handles GET /users/new.
func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, r, "user_new", formData{
		BaseVM: viewdata.NewBaseVM(r, h.Bus, "Add New User", "/users"),
	})
}

// HandleCreate handles POST /users.
//
// Validation failures and API rejections re-render the form with the
// typed values intact; only a successful create leaves the page.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/users")
		return
	}

	fullName := normalize.Name(r.FormValue("full_name"))
	mobilePhone := normalize.Phone(r.FormValue("mobile_phone"))
	password := r.FormValue("password")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	err := h.Directory.Create(ctx, fullName, mobilePhone, password)
	if err == nil {
		http.Redirect(w, r, "/users", http.StatusSeeOther)
		return
	}

	if gateway.IsUnauthorized(err) {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	msg := ""
	if errors.Is(err, directory.ErrValidation) {
		msg = "Please fill in all fields"
	}

	templates.Render(w, r, "user_new", formData{
		BaseVM:      viewdata.NewBaseVM(r, h.Bus, "Add New User", "/users"),
		Error:       msg,
		FullName:    fullName,
		MobilePhone: mobilePhone,
	})
}
