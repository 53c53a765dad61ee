// internal/app/bootstrap/deps.go
package bootstrap

import (
	"github.com/alqabasi/driver-dashboard-mini/internal/app/directory"
	"github.com/alqabasi/driver-dashboard-mini/internal/app/gateway"
	"github.com/alqabasi/driver-dashboard-mini/internal/app/notify"
)

// Deps holds the back-end dependencies for the app. The dashboard has no
// database of its own; everything flows through the API gateway.
type Deps struct {
	Gateway   *gateway.Client
	Bus       *notify.Bus
	Directory *directory.Directory
}
