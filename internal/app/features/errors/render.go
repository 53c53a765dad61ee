// internal/app/features/errors/render.go
package errors

import (
	"net/http"

	"github.com/alqabasi/driver-dashboard-mini/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/dalemusser/waffle/pantry/urlutil"
)

// RenderUnauthorized shows a friendly "sign in required" page.
// If backURL is empty, it defaults to /login.
func RenderUnauthorized(w http.ResponseWriter, r *http.Request, backURL string) {
	if backURL == "" {
		backURL = "/login"
	}

	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, nil, "Sign in required", backURL),
		Message: "Please sign in to continue.",
	}

	w.WriteHeader(http.StatusUnauthorized)
	templates.Render(w, r, "error_page", data)
}

// RenderForbidden shows a friendly access error page with a message.
// If backURL is empty, it falls back to the home page.
func RenderForbidden(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	backURL = urlutil.SafeReturn(backURL, "", "/")

	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, nil, "Access denied", backURL),
		Message: msg,
	}

	w.WriteHeader(http.StatusForbidden)
	templates.Render(w, r, "error_page", data)
}

// RenderNotFound shows a friendly "not found" page with a message.
func RenderNotFound(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	backURL = urlutil.SafeReturn(backURL, "", "/")
	if msg == "" {
		msg = "The page you're looking for doesn't exist."
	}

	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, nil, "Not found", backURL),
		Message: msg,
	}

	w.WriteHeader(http.StatusNotFound)
	templates.Render(w, r, "error_page", data)
}
