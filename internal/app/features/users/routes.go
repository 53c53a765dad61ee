// internal/app/features/users/routes.go
package users

import (
	"github.com/alqabasi/driver-dashboard-mini/internal/app/session"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler, sm *session.Manager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)

		pr.Get("/", h.ServeList)
		pr.Get("/new", h.ServeNew)
		pr.Post("/", h.HandleCreate)

		pr.Route("/{id}", func(ur chi.Router) {
			ur.Get("/edit", h.ServeEdit)
			ur.Post("/edit", h.HandleEdit)
			ur.Post("/toggle", h.HandleToggle)
			ur.Post("/delete", h.HandleDelete)
		})
	})

	return r
}
