// internal/app/features/notices/routes.go
package notices

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/{id}/dismiss", h.HandleDismiss)
	return r
}
