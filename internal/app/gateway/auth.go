// internal/app/gateway/auth.go
package gateway

import (
	"context"
	"net/http"

	"github.com/alqabasi/driver-dashboard-mini/internal/domain/models"
)

type loginRequest struct {
	MobilePhone string `json:"mobilePhone"`
	Password    string `json:"password"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user,omitempty"`
}

// Login exchanges credentials for a bearer token. The token is returned
// to the caller (the session store) rather than kept here; the gateway
// never owns credential state.
func (c *Client) Login(ctx context.Context, mobilePhone, password string) (string, error) {
	var resp loginResponse
	err := c.Do(ctx, http.MethodPost, "/auth/login", loginRequest{
		MobilePhone: mobilePhone,
		Password:    password,
	}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

// RegisterRequest is the payload for creating a driver account.
type RegisterRequest struct {
	FullName    string `json:"fullName"`
	MobilePhone string `json:"mobilePhone"`
	Password    string `json:"password"`
}

// Register creates a new account. Creation goes through the auth surface
// of the API rather than /admin/users.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (models.User, error) {
	var u models.User
	if err := c.Do(ctx, http.MethodPost, "/auth/register", req, &u); err != nil {
		return models.User{}, err
	}
	return u, nil
}
