package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"wrapads/internal/models"
	"wrapads/internal/session"
)

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(models.APIResponse{
		Status:  models.ResponseStatusError,
		Code:    code,
		Message: message,
	})
}

// SessionAuth turns the bearer token into a session carried by the request
// context. With an empty secret the token is only decoded; the marketplace
// API rejects it later if it is not genuine.
func SessionAuth(secret string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeError(w, http.StatusUnauthorized, "unauthorized", "Missing Authorization header")
				return
			}
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				writeError(w, http.StatusUnauthorized, "unauthorized", "Invalid Authorization header")
				return
			}

			s, err := session.FromToken(parts[1], secret)
			if err != nil {
				if errors.Is(err, session.ErrExpired) {
					writeError(w, http.StatusUnauthorized, "session_expired", "Session expired")
					return
				}
				logger.Debug("rejected token", zap.Error(err))
				writeError(w, http.StatusUnauthorized, "invalid_token", "Invalid token")
				return
			}
			if s.Expired(time.Now()) {
				writeError(w, http.StatusUnauthorized, "session_expired", "Session expired")
				return
			}

			next.ServeHTTP(w, r.WithContext(session.WithSession(r.Context(), s)))
		})
	}
}

// RequireRole lets through sessions whose user type is one of roles.
func RequireRole(roles ...models.UserType) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, err := session.FromContext(r.Context())
			if err != nil {
				writeError(w, http.StatusUnauthorized, "unauthorized", "Not signed in")
				return
			}
			if !s.HasRole(roles...) {
				writeError(w, http.StatusForbidden, "forbidden", "Access denied for "+string(s.User.UserType))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
