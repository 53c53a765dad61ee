// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"net/http"

	"github.com/alqabasi/driver-dashboard-mini/internal/app/notify"
	"github.com/alqabasi/driver-dashboard-mini/internal/app/session"
	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/gorilla/csrf"
)

// SiteName is the console's display name, shown in the header and titles.
const SiteName = "Driver Dashboard"

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := myPageData{
//	    BaseVM: viewdata.NewBaseVM(r, bus, "Page Title", "/default-back"),
//	    // page-specific fields...
//	}
type BaseVM struct {
	SiteName string

	// User context (from session middleware)
	IsLoggedIn bool

	// Page context
	Title       string
	BackURL     string
	CurrentPath string

	// CSRF protection
	CSRFToken string // Token for form submission

	// Queued notifications, already pruned of expired entries
	Notices []notify.Notification
}

// NewBaseVM creates a fully populated BaseVM for a page.
//
// Parameters:
//   - r: the HTTP request
//   - bus: notification queue drained into the banner area (can be nil)
//   - title: the page title
//   - backDefault: default URL for the back button if none in request
func NewBaseVM(r *http.Request, bus *notify.Bus, title, backDefault string) BaseVM {
	vm := BaseVM{
		SiteName:    SiteName,
		IsLoggedIn:  session.IsAuthenticated(r),
		Title:       title,
		BackURL:     httpnav.ResolveBackURL(r, backDefault),
		CurrentPath: httpnav.CurrentPath(r),
		CSRFToken:   csrf.Token(r),
	}

	if bus != nil {
		vm.Notices = bus.Active()
	}

	return vm
}
