// internal/app/directory/directory.go

// Package directory holds the admin console's working copy of the user
// list and drives every mutation through the API. Each mutation follows
// the same shape: call the API, push exactly one notification for the
// outcome, then refetch the whole list so the copy never drifts from the
// server. Partial local patching is deliberately avoided.
package directory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/alqabasi/driver-dashboard-mini/internal/app/gateway"
	"github.com/alqabasi/driver-dashboard-mini/internal/app/notify"
	"github.com/alqabasi/driver-dashboard-mini/internal/domain/models"
	"go.uber.org/zap"
)

// ErrValidation marks a create request rejected locally, before any
// network call. Callers re-render the form instead of navigating away.
var ErrValidation = errors.New("missing required fields")

// API is the slice of the gateway the directory drives.
type API interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	Register(ctx context.Context, req gateway.RegisterRequest) (models.User, error)
	UpdateUser(ctx context.Context, id string, patch gateway.UserPatch) (models.User, error)
	ActivateUser(ctx context.Context, id string) (models.User, error)
	DeactivateUser(ctx context.Context, id string) (models.User, error)
	DeleteUser(ctx context.Context, id string) error
}

// Directory is the view-model behind the user management screens.
type Directory struct {
	api API
	bus *notify.Bus
	log *zap.Logger

	mu    sync.Mutex
	users []models.User
}

func New(api API, bus *notify.Bus, logger *zap.Logger) *Directory {
	return &Directory{api: api, bus: bus, log: logger}
}

// Users returns a copy of the current working list, in server order.
func (d *Directory) Users() []models.User {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]models.User, len(d.users))
	copy(out, d.users)
	return out
}

// Get looks a user up by id in the working copy.
func (d *Directory) Get(id string) (models.User, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, u := range d.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

// Load refetches the full list from the API and replaces the working
// copy wholesale. Concurrent loads race benignly: whichever response
// lands last wins, and both were server truth when fetched.
func (d *Directory) Load(ctx context.Context) error {
	users, err := d.api.ListUsers(ctx)
	if err != nil {
		d.bus.Error("Failed to fetch users")
		d.log.Warn("list users failed", zap.Error(err))
		return err
	}

	d.mu.Lock()
	d.users = users
	d.mu.Unlock()
	return nil
}

// Create validates locally, registers the user, then reloads. All three
// fields are required; a local reject pushes the error notification and
// returns ErrValidation without touching the network.
func (d *Directory) Create(ctx context.Context, fullName, mobilePhone, password string) error {
	if fullName == "" || mobilePhone == "" || password == "" {
		d.bus.Error("Please fill in all fields")
		return ErrValidation
	}

	_, err := d.api.Register(ctx, gateway.RegisterRequest{
		FullName:    fullName,
		MobilePhone: mobilePhone,
		Password:    password,
	})
	if err != nil {
		d.bus.Error("Failed to create user")
		d.log.Warn("create user failed", zap.Error(err))
		return err
	}

	d.bus.Success("User created successfully")

	// Reload failures report through their own notification; the create
	// itself already succeeded.
	d.reload(ctx)
	return nil
}

// Update sends the edited fields for one user, then reloads.
func (d *Directory) Update(ctx context.Context, id, fullName, mobilePhone string) error {
	patch := gateway.UserPatch{}
	if fullName != "" {
		patch.FullName = &fullName
	}
	if mobilePhone != "" {
		patch.MobilePhone = &mobilePhone
	}

	if _, err := d.api.UpdateUser(ctx, id, patch); err != nil {
		d.bus.Error("Failed to update user")
		d.log.Warn("update user failed", zap.String("id", id), zap.Error(err))
		return err
	}

	d.bus.Success("User updated successfully")
	d.reload(ctx)
	return nil
}

// SetActive moves a user to the requested state. The caller names the
// target state it saw on screen rather than asking for a flip, so a
// stale row cannot silently invert the intent.
func (d *Directory) SetActive(ctx context.Context, id string, active bool) error {
	name := ""
	if u, ok := d.Get(id); ok {
		name = u.FullName
	}

	var updated models.User
	var err error
	if active {
		updated, err = d.api.ActivateUser(ctx, id)
	} else {
		updated, err = d.api.DeactivateUser(ctx, id)
	}
	if err != nil {
		d.bus.Error("Status update failed")
		d.log.Warn("set active failed",
			zap.String("id", id), zap.Bool("active", active), zap.Error(err))
		return err
	}

	// A cold working copy (no list visit yet this process) has no name for
	// the id; the mutation response carries it.
	if name == "" {
		name = updated.FullName
	}
	if name == "" {
		name = id
	}

	if active {
		d.bus.Success(fmt.Sprintf("%s activated", name))
	} else {
		d.bus.Info(fmt.Sprintf("%s deactivated", name))
	}

	d.reload(ctx)
	return nil
}

// Remove soft-deletes a user, then reloads.
func (d *Directory) Remove(ctx context.Context, id string) error {
	if err := d.api.DeleteUser(ctx, id); err != nil {
		d.bus.Error("Failed to delete user")
		d.log.Warn("delete user failed", zap.String("id", id), zap.Error(err))
		return err
	}

	d.bus.Success("User deleted")
	d.reload(ctx)
	return nil
}

// reload runs the post-mutation refetch. Its failure is surfaced through
// Load's own notification and does not change the mutation's outcome.
func (d *Directory) reload(ctx context.Context) {
	if err := d.Load(ctx); err != nil {
		d.log.Warn("reload after mutation failed", zap.Error(err))
	}
}

// Filter narrows a user list by query: case-insensitive substring match
// on the full name, or raw substring match on the phone. An empty query
// keeps everything. Pure function, exported for the list handler.
func Filter(users []models.User, query string) []models.User {
	if query == "" {
		return users
	}
	nameQ := strings.ToLower(query)

	out := make([]models.User, 0, len(users))
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.FullName), nameQ) ||
			strings.Contains(u.MobilePhone, query) {
			out = append(out, u)
		}
	}
	return out
}
