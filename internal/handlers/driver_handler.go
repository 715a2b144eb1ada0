package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"wrapads/internal/console"
	"wrapads/internal/models"
)

type DriverHandler struct {
	console *console.Driver
	logger  *zap.Logger
}

func NewDriverHandler(c *console.Driver, logger *zap.Logger) *DriverHandler {
	return &DriverHandler{console: c, logger: logger}
}

// GetProfile handles GET /api/v1/driver/profile
// @Tags Driver
// @Summary Driver profile, or create mode when none exists
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.APIResponse{data=console.DriverProfileView}
// @Router /api/v1/driver/profile [get]
func (h *DriverHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	view, err := h.console.Profile(r.Context())
	if err != nil {
		writeError(w, h.logger, err, "Failed to load profile")
		return
	}
	writeData(w, http.StatusOK, view)
}

// CreateProfile handles POST /api/v1/driver/profile
// @Tags Driver
// @Summary Create the driver profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body models.DriverProfileRequest true "Profile"
// @Success 201 {object} models.APIResponse{data=console.DriverProfileView}
// @Failure 422 {object} models.APIResponse
// @Router /api/v1/driver/profile [post]
func (h *DriverHandler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	var req models.DriverProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	res, err := h.console.CreateProfile(r.Context(), &req)
	if err != nil {
		writeError(w, h.logger, err, "Failed to create profile")
		return
	}
	writeAction(w, http.StatusCreated, res)
}

// UpdateProfile handles PUT /api/v1/driver/profile
// @Tags Driver
// @Summary Update the driver profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body models.DriverProfileRequest true "Profile"
// @Success 200 {object} models.APIResponse{data=console.DriverProfileView}
// @Router /api/v1/driver/profile [put]
func (h *DriverHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req models.DriverProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	res, err := h.console.UpdateProfile(r.Context(), &req)
	if err != nil {
		writeError(w, h.logger, err, "Failed to update profile")
		return
	}
	writeAction(w, http.StatusOK, res)
}

// ListVehicles handles GET /api/v1/driver/vehicles
// @Tags Driver
// @Summary The driver's vehicles
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]models.Vehicle}
// @Router /api/v1/driver/vehicles [get]
func (h *DriverHandler) ListVehicles(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.console.Vehicles(r.Context())
	if err != nil {
		writeError(w, h.logger, err, "Failed to load vehicles")
		return
	}
	writeData(w, http.StatusOK, vehicles)
}

// AddVehicle handles POST /api/v1/driver/vehicles
// @Tags Driver
// @Summary Register a vehicle
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body models.VehicleRequest true "Vehicle"
// @Success 201 {object} models.APIResponse{data=[]models.Vehicle}
// @Failure 422 {object} models.APIResponse
// @Router /api/v1/driver/vehicles [post]
func (h *DriverHandler) AddVehicle(w http.ResponseWriter, r *http.Request) {
	var req models.VehicleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	res, err := h.console.AddVehicle(r.Context(), &req)
	if err != nil {
		writeError(w, h.logger, err, "Failed to add vehicle")
		return
	}
	writeAction(w, http.StatusCreated, res)
}

// UpdateVehicle handles PUT /api/v1/driver/vehicles/{id}
// @Tags Driver
// @Summary Update a vehicle
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Vehicle ID"
// @Param body body models.VehicleRequest true "Vehicle"
// @Success 200 {object} models.APIResponse{data=[]models.Vehicle}
// @Router /api/v1/driver/vehicles/{id} [put]
func (h *DriverHandler) UpdateVehicle(w http.ResponseWriter, r *http.Request) {
	var req models.VehicleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	res, err := h.console.UpdateVehicle(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		writeError(w, h.logger, err, "Failed to update vehicle")
		return
	}
	writeAction(w, http.StatusOK, res)
}

// DeleteVehicle handles DELETE /api/v1/driver/vehicles/{id}
// @Tags Driver
// @Summary Remove a vehicle
// @Security BearerAuth
// @Produce json
// @Param id path string true "Vehicle ID"
// @Success 200 {object} models.APIResponse{data=[]models.Vehicle}
// @Router /api/v1/driver/vehicles/{id} [delete]
func (h *DriverHandler) DeleteVehicle(w http.ResponseWriter, r *http.Request) {
	res, err := h.console.DeleteVehicle(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, err, "Failed to delete vehicle")
		return
	}
	writeAction(w, http.StatusOK, res)
}

// BrowseCampaigns handles GET /api/v1/driver/campaigns
// @Tags Driver
// @Summary Active campaigns, optionally filtered by a search query
// @Security BearerAuth
// @Produce json
// @Param q query string false "Matches name, description or company"
// @Success 200 {object} models.APIResponse{data=console.BrowseView}
// @Router /api/v1/driver/campaigns [get]
func (h *DriverHandler) BrowseCampaigns(w http.ResponseWriter, r *http.Request) {
	view, err := h.console.Browse(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, h.logger, err, "Failed to load campaigns")
		return
	}
	writeData(w, http.StatusOK, view)
}

// Apply handles POST /api/v1/driver/campaigns/{id}/apply
// @Tags Driver
// @Summary Apply to an active campaign with spots left
// @Security BearerAuth
// @Produce json
// @Param id path string true "Campaign ID"
// @Success 200 {object} models.APIResponse{data=console.BrowseView}
// @Failure 409 {object} models.APIResponse
// @Router /api/v1/driver/campaigns/{id}/apply [post]
func (h *DriverHandler) Apply(w http.ResponseWriter, r *http.Request) {
	res, err := h.console.Apply(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, err, "Failed to submit application")
		return
	}
	writeAction(w, http.StatusOK, res)
}

// CancelApplication handles DELETE /api/v1/driver/campaigns/{id}/apply
// @Tags Driver
// @Summary Withdraw a pending application
// @Security BearerAuth
// @Produce json
// @Param id path string true "Campaign ID"
// @Success 200 {object} models.APIResponse{data=console.MyApplicationsView}
// @Failure 409 {object} models.APIResponse
// @Router /api/v1/driver/campaigns/{id}/apply [delete]
func (h *DriverHandler) CancelApplication(w http.ResponseWriter, r *http.Request) {
	res, err := h.console.CancelApplication(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, err, "Failed to cancel application")
		return
	}
	writeAction(w, http.StatusOK, res)
}

// ListApplications handles GET /api/v1/driver/applications
// @Tags Driver
// @Summary The driver's applications with earnings and statistics
// @Security BearerAuth
// @Produce json
// @Param status query string false "pending|approved|rejected|active|completed|all"
// @Success 200 {object} models.APIResponse{data=console.MyApplicationsView}
// @Router /api/v1/driver/applications [get]
func (h *DriverHandler) ListApplications(w http.ResponseWriter, r *http.Request) {
	view, err := h.console.Applications(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		writeError(w, h.logger, err, "Failed to load applications")
		return
	}
	writeData(w, http.StatusOK, view)
}
