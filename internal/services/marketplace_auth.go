package services

import (
	"context"
	"net/http"

	"wrapads/internal/models"
)

func (c *MarketplaceClient) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	var out models.AuthResponse
	if err := c.do(ctx, call{op: "auth.login", method: http.MethodPost, path: "/auth/login", body: req}, &out); err != nil {
		return nil, err
	}
	if out.Token == "" {
		return nil, shapeError("auth.login", "missing token")
	}
	return &out, nil
}

func (c *MarketplaceClient) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	var out models.AuthResponse
	if err := c.do(ctx, call{op: "auth.register", method: http.MethodPost, path: "/auth/register", body: req}, &out); err != nil {
		return nil, err
	}
	if out.Token == "" {
		return nil, shapeError("auth.register", "missing token")
	}
	return &out, nil
}

func (c *MarketplaceClient) Logout(ctx context.Context) error {
	return c.do(ctx, call{op: "auth.logout", method: http.MethodPost, path: "/auth/logout"}, nil)
}

func (c *MarketplaceClient) CurrentUser(ctx context.Context) (*models.User, error) {
	var out models.User
	if err := c.do(ctx, call{op: "auth.me", method: http.MethodGet, path: "/auth/me"}, &out); err != nil {
		return nil, err
	}
	if out.UserID == "" {
		return nil, shapeError("auth.me", "missing userId")
	}
	return &out, nil
}
