// internal/app/features/users/list.go
package users

import (
	"context"
	"net/http"

	"github.com/alqabasi/driver-dashboard-mini/internal/app/directory"
	"github.com/alqabasi/driver-dashboard-mini/internal/app/gateway"
	"github.com/alqabasi/driver-dashboard-mini/internal/app/system/normalize"
	"github.com/alqabasi/driver-dashboard-mini/internal/app/system/timeouts"
	"github.com/alqabasi/driver-dashboard-mini/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// ServeList handles GET /users.
//
// Every visit refetches the list so the table reflects server truth,
// then narrows it with the search box value. A fetch failure still
// renders the page: the queued notification explains the empty table.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Directory.Load(ctx); err != nil {
		if gateway.IsUnauthorized(err) {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		h.Log.Warn("list load failed, rendering cached copy", zap.Error(err))
	}

	searchQ := normalize.Search(query.Get(r, "q"))
	all := h.Directory.Users()
	rows := directory.Filter(all, searchQ)

	templates.Render(w, r, "users_list", listData{
		BaseVM:      viewdata.NewBaseVM(r, h.Bus, "User Management", "/"),
		SearchQuery: searchQ,
		Shown:       len(rows),
		Total:       len(all),
		Rows:        rows,
	})
}
