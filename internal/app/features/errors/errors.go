// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/alqabasi/driver-dashboard-mini/internal/app/notify"
	"github.com/alqabasi/driver-dashboard-mini/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
)

// pageData is the view model for error pages.
type pageData struct {
	viewdata.BaseVM
	Message string
}

// Handler is the errors feature handler.
// It just renders templates; no API access needed.
type Handler struct {
	Bus *notify.Bus
}

// NewHandler constructs an errors Handler.
func NewHandler(bus *notify.Bus) *Handler {
	return &Handler{Bus: bus}
}

// Forbidden renders a friendly "access denied" page.
// GET /forbidden
func (h *Handler) Forbidden(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, h.Bus, "Access denied", "/"),
		Message: "You don't have permission to view this page.",
	}

	w.WriteHeader(http.StatusForbidden)
	templates.Render(w, r, "error_page", data)
}

// Unauthorized renders a friendly "sign in required" page.
// GET /unauthorized
func (h *Handler) Unauthorized(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, h.Bus, "Sign in required", "/login"),
		Message: "Please sign in to continue.",
	}

	w.WriteHeader(http.StatusUnauthorized)
	templates.Render(w, r, "error_page", data)
}

// NotFound renders a friendly "not found" page for unmatched routes.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, h.Bus, "Page not found", "/"),
		Message: "The page you're looking for doesn't exist.",
	}

	w.WriteHeader(http.StatusNotFound)
	templates.Render(w, r, "error_page", data)
}
