package marketplace

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-MarketplaceClient/internal/domain"
)

// Login POST /login
func (c *Client) Login(ctx context.Context, req *LoginRequest) (*domain.AuthPayload, error) {
	var payload domain.AuthPayload
	if err := c.call(ctx, Request{Method: http.MethodPost, Path: "/login", Body: req, Public: true}, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Register POST /register
func (c *Client) Register(ctx context.Context, req *RegisterRequest) (*domain.AuthPayload, error) {
	var payload domain.AuthPayload
	if err := c.call(ctx, Request{Method: http.MethodPost, Path: "/register", Body: req, Public: true}, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Logout POST /logout
func (c *Client) Logout(ctx context.Context) error {
	return c.Do(ctx, Request{Method: http.MethodPost, Path: "/logout"}, nil)
}

// Me GET /me
func (c *Client) Me(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := c.call(ctx, Request{Method: http.MethodGet, Path: "/me"}, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
