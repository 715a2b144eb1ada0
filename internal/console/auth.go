package console

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"wrapads/internal/models"
	"wrapads/internal/services"
	"wrapads/internal/session"
	"wrapads/internal/validation"
)

// AuthAPI is the part of the marketplace API used to open and close
// sessions.
type AuthAPI interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, error)
}

type Auth struct {
	core
	api    AuthAPI
	secret string
}

// NewAuth builds the auth console. secret verifies the marketplace's token
// signature; empty leaves verification to the marketplace.
func NewAuth(api AuthAPI, secret string, deps Deps) *Auth {
	return &Auth{core: newCore(deps), api: api, secret: secret}
}

func (a *Auth) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	resp, err := a.api.Login(ctx, req)
	if err != nil {
		return nil, err
	}
	return a.open(resp)
}

func (a *Auth) Register(ctx context.Context, req *models.RegisterRequest) (*models.LoginResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	resp, err := a.api.Register(ctx, req)
	if err != nil {
		return nil, err
	}
	return a.open(resp)
}

// open turns the marketplace's token into a session and hands it back to
// the caller. Nothing is stored on this side.
func (a *Auth) open(resp *models.AuthResponse) (*models.LoginResponse, error) {
	s, err := session.FromToken(resp.Token, a.secret)
	if err != nil {
		return nil, fmt.Errorf("%w: token: %v", services.ErrUnexpectedResponse, err)
	}
	user := resp.User
	if user.UserID == "" {
		user = s.User
	}
	a.logger.Info("session opened", zap.String("user_id", user.UserID), zap.String("user_type", string(user.UserType)))
	return &models.LoginResponse{Token: s.Token, User: user, ExpiresAt: s.ExpiresAt}, nil
}

// Logout closes the session upstream. The caller drops its token whatever
// the outcome.
func (a *Auth) Logout(ctx context.Context) (*ActionResult, error) {
	return a.run(ctx, mutation{
		name:         "auth.logout",
		resourceType: "session",
		resourceID:   actorID(ctx),
		key:          "logout:" + session.Token(ctx),
		success:      "Logged out",
		failure:      "Failed to log out",
		mutate:       a.api.Logout,
	})
}

func (a *Auth) Me(ctx context.Context) (*models.User, error) {
	return a.api.CurrentUser(ctx)
}
