package api

import (
	"context"
	"net/http"
)

// User is the backend account record. Role is carried as a raw string here;
// normalization against the configured vocabulary happens in the session
// layer, on the way into session state.
type User struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	Firstname string `json:"firstname"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Avatar    string `json:"avatar,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// AuthResponse is the payload of successful login and register calls. Some
// backend revisions also return a refreshed token from the profile endpoint.
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// LoginRequest is the credentials payload for [Client.Login].
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the account-creation payload for [Client.Register].
// Role and Avatar are optional; the backend applies its own default role.
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Firstname string `json:"firstname"`
	Name      string `json:"name"`
	Role      string `json:"role,omitempty"`
	Avatar    string `json:"avatar,omitempty"`
}

// Login exchanges credentials for a user and bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	var out AuthResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", false, LoginRequest{Email: email, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates an account and returns the same payload as [Client.Login].
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", false, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Profile fetches the account behind the current bearer token. It is the
// sole liveness check for a stored token: a non-2xx answer means the token
// is no longer honored.
func (c *Client) Profile(ctx context.Context) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.do(ctx, http.MethodGet, "/auth/profile", true, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
