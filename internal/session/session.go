// Package session carries the caller's marketplace token and identity
// through a request. A Session is created at login, travels in the request
// context and is dropped at logout; nothing is kept in ambient storage.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"wrapads/internal/models"
)

var (
	ErrNoSession    = errors.New("no session")
	ErrInvalidToken = errors.New("invalid token")
	ErrExpired      = errors.New("session expired")
)

type Session struct {
	Token     string
	User      models.AuthUser
	ExpiresAt time.Time
}

// FromToken builds a session from a marketplace bearer token. With a
// secret the HS256 signature is verified; without one the claims are read
// as-is and the marketplace API stays the authority on the token.
func FromToken(token, secret string) (*Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrInvalidToken
	}

	claims := jwt.MapClaims{}
	if secret != "" {
		parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithLeeway(30*time.Second))
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return nil, ErrExpired
			}
			return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
		}
		if !parsed.Valid {
			return nil, ErrInvalidToken
		}
	} else {
		if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
		}
	}

	s := &Session{Token: token, User: userFromClaims(claims)}
	if s.User.UserID == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		s.ExpiresAt = exp.Time
	}
	return s, nil
}

func userFromClaims(claims jwt.MapClaims) models.AuthUser {
	str := func(keys ...string) string {
		for _, k := range keys {
			if v, ok := claims[k].(string); ok && v != "" {
				return v
			}
		}
		return ""
	}
	return models.AuthUser{
		UserID:   str("userId", "sub", "id"),
		Email:    str("email"),
		UserType: models.UserType(str("userType", "role")),
	}
}

// Expired reports whether the token's expiry has passed. Tokens without
// an expiry never expire on this side.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

func (s *Session) HasRole(roles ...models.UserType) bool {
	for _, r := range roles {
		if s.User.UserType == r {
			return true
		}
	}
	return false
}

type ctxKey struct{}

func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext is the single access point for the current session.
func FromContext(ctx context.Context) (*Session, error) {
	s, ok := ctx.Value(ctxKey{}).(*Session)
	if !ok || s == nil {
		return nil, ErrNoSession
	}
	return s, nil
}

// Token returns the bearer token of the session in ctx, or "".
func Token(ctx context.Context) string {
	s, err := FromContext(ctx)
	if err != nil {
		return ""
	}
	return s.Token
}
