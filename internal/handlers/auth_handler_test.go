package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"wrapads/internal/console"
	"wrapads/internal/models"
	"wrapads/internal/services"
)

func authRouter(client *services.MarketplaceClient) http.Handler {
	h := NewAuthHandler(console.NewAuth(client, "", testDeps()), zap.NewNop())
	r := chi.NewRouter()
	r.Post("/auth/login", h.Login)
	r.Post("/auth/register", h.Register)
	return r
}

func upstreamToken(t *testing.T) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId":   "u1",
		"email":    "ana@example.com",
		"userType": "driver",
		"exp":      time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("backend-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return signed
}

func TestLoginOpensSession(t *testing.T) {
	token := upstreamToken(t)
	client := marketplace(t, map[string]http.HandlerFunc{
		"POST /auth/login": envelope(http.StatusOK, models.AuthResponse{
			Token: token,
			User:  models.AuthUser{UserID: "u1", Email: "ana@example.com", UserType: models.UserTypeDriver},
		}),
	})

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"ana@example.com","password":"secret123"}`))
	w := httptest.NewRecorder()
	authRouter(client).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d (%s)", w.Code, w.Body.String())
	}
	var resp struct {
		Data models.LoginResponse `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Data.Token != token || resp.Data.User.UserType != models.UserTypeDriver {
		t.Fatalf("unexpected login response %+v", resp.Data)
	}
	if resp.Data.ExpiresAt.IsZero() {
		t.Fatal("expected expiry from the token")
	}
}

func TestLoginBadCredentials(t *testing.T) {
	client := marketplace(t, map[string]http.HandlerFunc{
		"POST /auth/login": envelope(http.StatusUnauthorized, "Invalid email or password"),
	})

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"ana@example.com","password":"nope"}`))
	w := httptest.NewRecorder()
	authRouter(client).ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d (%s)", w.Code, w.Body.String())
	}
	if resp := decodeResponse(t, w); resp["message"] != "Invalid email or password" {
		t.Fatalf("expected marketplace message, got %v", resp)
	}
}

func TestLoginValidation(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{name: "malformed", body: `{`, wantStatus: http.StatusBadRequest},
		{name: "bad email", body: `{"email":"ana","password":"x"}`, wantStatus: http.StatusUnprocessableEntity},
		{name: "missing password", body: `{"email":"ana@example.com"}`, wantStatus: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			authRouter(marketplace(t, nil)).ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected %d got %d (%s)", tt.wantStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestRegisterDriverNeedsNames(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/auth/register",
		strings.NewReader(`{"email":"ana@example.com","password":"secret123","userType":"driver"}`))
	w := httptest.NewRecorder()
	authRouter(marketplace(t, nil)).ServeHTTP(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 got %d (%s)", w.Code, w.Body.String())
	}
}
