// internal/app/gateway/users.go
package gateway

import (
	"context"
	"net/http"
	"net/url"

	"github.com/alqabasi/driver-dashboard-mini/internal/domain/models"
)

// UserPatch carries a partial update. Nil fields are omitted from the
// request body and left unchanged server-side.
type UserPatch struct {
	FullName    *string `json:"fullName,omitempty"`
	MobilePhone *string `json:"mobilePhone,omitempty"`
}

// ListUsers fetches the full directory. Soft-deleted accounts are
// filtered out by the API and never appear here.
func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.Do(ctx, http.MethodGet, "/admin/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateUser applies a partial update to one account.
func (c *Client) UpdateUser(ctx context.Context, id string, patch UserPatch) (models.User, error) {
	var u models.User
	if err := c.Do(ctx, http.MethodPut, "/admin/users/"+url.PathEscape(id), patch, &u); err != nil {
		return models.User{}, err
	}
	return u, nil
}

// ActivateUser enables an account.
func (c *Client) ActivateUser(ctx context.Context, id string) (models.User, error) {
	var u models.User
	if err := c.Do(ctx, http.MethodPatch, "/admin/users/"+url.PathEscape(id)+"/activate", nil, &u); err != nil {
		return models.User{}, err
	}
	return u, nil
}

// DeactivateUser disables an account.
func (c *Client) DeactivateUser(ctx context.Context, id string) (models.User, error) {
	var u models.User
	if err := c.Do(ctx, http.MethodPatch, "/admin/users/"+url.PathEscape(id)+"/deactivate", nil, &u); err != nil {
		return models.User{}, err
	}
	return u, nil
}

// DeleteUser soft-deletes an account. The record survives server-side
// but drops out of subsequent ListUsers results.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.Do(ctx, http.MethodDelete, "/admin/users/"+url.PathEscape(id), nil, nil)
}
