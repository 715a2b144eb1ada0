package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"wrapads/internal/console"
	"wrapads/internal/models"
)

type AuthHandler struct {
	auth   *console.Auth
	logger *zap.Logger
}

func NewAuthHandler(auth *console.Auth, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, logger: logger}
}

// Login handles POST /api/v1/auth/login
// @Tags Auth
// @Summary Sign in through the marketplace and open a session
// @Accept json
// @Produce json
// @Param body body models.LoginRequest true "Credentials"
// @Success 200 {object} models.APIResponse{data=models.LoginResponse}
// @Failure 400 {object} models.APIResponse
// @Failure 401 {object} models.APIResponse
// @Failure 422 {object} models.APIResponse
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	resp, err := h.auth.Login(r.Context(), &req)
	if err != nil {
		writeError(w, h.logger, err, "Login failed")
		return
	}
	writeData(w, http.StatusOK, resp)
}

// Register handles POST /api/v1/auth/register
// @Tags Auth
// @Summary Register a driver or advertiser account
// @Accept json
// @Produce json
// @Param body body models.RegisterRequest true "Account"
// @Success 201 {object} models.APIResponse{data=models.LoginResponse}
// @Failure 400 {object} models.APIResponse
// @Failure 422 {object} models.APIResponse
// @Router /api/v1/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	resp, err := h.auth.Register(r.Context(), &req)
	if err != nil {
		writeError(w, h.logger, err, "Registration failed")
		return
	}
	writeData(w, http.StatusCreated, resp)
}

// Logout handles POST /api/v1/auth/logout
// @Tags Auth
// @Summary Close the session upstream
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.APIResponse
// @Failure 401 {object} models.APIResponse
// @Router /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	res, err := h.auth.Logout(r.Context())
	if err != nil {
		writeError(w, h.logger, err, "Failed to log out")
		return
	}
	writeAction(w, http.StatusOK, res)
}

// Me handles GET /api/v1/auth/me
// @Tags Auth
// @Summary Current user as the marketplace sees it
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.User}
// @Failure 401 {object} models.APIResponse
// @Router /api/v1/auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.auth.Me(r.Context())
	if err != nil {
		writeError(w, h.logger, err, "Failed to load user")
		return
	}
	writeData(w, http.StatusOK, user)
}
