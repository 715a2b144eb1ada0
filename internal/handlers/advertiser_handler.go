package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"wrapads/internal/console"
	"wrapads/internal/models"
)

type AdvertiserHandler struct {
	console *console.Advertiser
	logger  *zap.Logger
}

func NewAdvertiserHandler(c *console.Advertiser, logger *zap.Logger) *AdvertiserHandler {
	return &AdvertiserHandler{console: c, logger: logger}
}

// GetProfile handles GET /api/v1/advertiser/profile
// @Tags Advertiser
// @Summary Advertiser profile, or create mode when none exists
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.APIResponse{data=console.AdvertiserProfileView}
// @Router /api/v1/advertiser/profile [get]
func (h *AdvertiserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	view, err := h.console.Profile(r.Context())
	if err != nil {
		writeError(w, h.logger, err, "Failed to load profile")
		return
	}
	writeData(w, http.StatusOK, view)
}

// CreateProfile handles POST /api/v1/advertiser/profile
// @Tags Advertiser
// @Summary Create the advertiser profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body models.AdvertiserProfileRequest true "Profile"
// @Success 201 {object} models.APIResponse{data=console.AdvertiserProfileView}
// @Failure 422 {object} models.APIResponse
// @Router /api/v1/advertiser/profile [post]
func (h *AdvertiserHandler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	var req models.AdvertiserProfileRequest
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

// UpdateProfile handles PUT /api/v1/advertiser/profile
// @Tags Advertiser
// @Summary Update the advertiser profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body models.AdvertiserProfileRequest true "Profile"
// @Success 200 {object} models.APIResponse{data=console.AdvertiserProfileView}
// @Router /api/v1/advertiser/profile [put]
func (h *AdvertiserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req models.AdvertiserProfileRequest
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

// ListCampaigns handles GET /api/v1/advertiser/campaigns
// @Tags Advertiser
// @Summary The advertiser's campaigns with offered actions and costs
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]console.CampaignView}
// @Router /api/v1/advertiser/campaigns [get]
func (h *AdvertiserHandler) ListCampaigns(w http.ResponseWriter, r *http.Request) {
	views, err := h.console.Campaigns(r.Context())
	if err != nil {
		writeError(w, h.logger, err, "Failed to load campaigns")
		return
	}
	writeData(w, http.StatusOK, views)
}

// CreateCampaign handles POST /api/v1/advertiser/campaigns
// @Tags Advertiser
// @Summary Create a campaign; the form is validated before it is sent
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body models.CreateCampaignRequest true "Campaign"
// @Success 201 {object} models.APIResponse{data=console.CampaignView}
// @Failure 422 {object} models.APIResponse
// @Router /api/v1/advertiser/campaigns [post]
func (h *AdvertiserHandler) CreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCampaignRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	res, err := h.console.CreateCampaign(r.Context(), &req)
	if err != nil {
		writeError(w, h.logger, err, "Failed to create campaign")
		return
	}
	writeAction(w, http.StatusCreated, res)
}

// GetCampaign handles GET /api/v1/advertiser/campaigns/{id}
// @Tags Advertiser
// @Summary Campaign detail with counts and spots left
// @Security BearerAuth
// @Produce json
// @Param id path string true "Campaign ID"
// @Success 200 {object} models.APIResponse{data=console.CampaignDetailView}
// @Failure 404 {object} models.APIResponse
// @Router /api/v1/advertiser/campaigns/{id} [get]
func (h *AdvertiserHandler) GetCampaign(w http.ResponseWriter, r *http.Request) {
	view, err := h.console.Campaign(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, err, "Failed to load campaign details")
		return
	}
	writeData(w, http.StatusOK, view)
}

// UpdateCampaign handles PUT /api/v1/advertiser/campaigns/{id}
// @Tags Advertiser
// @Summary Update campaign fields
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Campaign ID"
// @Param body body models.UpdateCampaignRequest true "Changed fields"
// @Success 200 {object} models.APIResponse{data=console.CampaignDetailView}
// @Failure 422 {object} models.APIResponse
// @Router /api/v1/advertiser/campaigns/{id} [put]
func (h *AdvertiserHandler) UpdateCampaign(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateCampaignRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	res, err := h.console.UpdateCampaign(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		writeError(w, h.logger, err, "Failed to update campaign")
		return
	}
	writeAction(w, http.StatusOK, res)
}

// DeleteCampaign handles DELETE /api/v1/advertiser/campaigns/{id}
// @Tags Advertiser
// @Summary Delete a draft campaign
// @Security BearerAuth
// @Produce json
// @Param id path string true "Campaign ID"
// @Success 200 {object} models.APIResponse
// @Failure 409 {object} models.APIResponse
// @Router /api/v1/advertiser/campaigns/{id} [delete]
func (h *AdvertiserHandler) DeleteCampaign(w http.ResponseWriter, r *http.Request) {
	res, err := h.console.DeleteCampaign(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, err, "Failed to delete campaign")
		return
	}
	writeAction(w, http.StatusOK, res)
}

// ChangeStatus handles PATCH /api/v1/advertiser/campaigns/{id}/status
// @Tags Advertiser
// @Summary Apply an offered action (or target status) to a campaign
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Campaign ID"
// @Param body body models.CampaignStatusRequest true "Action or status"
// @Success 200 {object} models.APIResponse{data=console.CampaignDetailView}
// @Failure 409 {object} models.APIResponse
// @Failure 422 {object} models.APIResponse
// @Router /api/v1/advertiser/campaigns/{id}/status [patch]
func (h *AdvertiserHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	var req models.CampaignStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	campaignID := chi.URLParam(r, "id")
	res, err := h.console.ChangeStatus(r.Context(), campaignID, &req)
	if err != nil {
		h.logger.Debug("campaign status change refused", zap.String("campaign_id", campaignID), zap.Error(err))
		writeError(w, h.logger, err, "Failed to update campaign status")
		return
	}
	writeAction(w, http.StatusOK, res)
}

// ListApplications handles GET /api/v1/advertiser/campaigns/{id}/applications
// @Tags Advertiser
// @Summary Applications for a campaign with statistics
// @Security BearerAuth
// @Produce json
// @Param id path string true "Campaign ID"
// @Param status query string false "pending|approved|rejected|active|completed|all"
// @Success 200 {object} models.APIResponse{data=console.ApplicationsView}
// @Router /api/v1/advertiser/campaigns/{id}/applications [get]
func (h *AdvertiserHandler) ListApplications(w http.ResponseWriter, r *http.Request) {
	view, err := h.console.Applications(r.Context(), chi.URLParam(r, "id"), r.URL.Query().Get("status"))
	if err != nil {
		writeError(w, h.logger, err, "Failed to load applications")
		return
	}
	writeData(w, http.StatusOK, view)
}

// ApproveApplication handles POST /api/v1/advertiser/campaigns/{id}/applications/{driverId}/approve
// @Tags Advertiser
// @Summary Approve a pending application
// @Security BearerAuth
// @Produce json
// @Param id path string true "Campaign ID"
// @Param driverId path string true "Driver ID"
// @Success 200 {object} models.APIResponse{data=console.ApplicationsView}
// @Failure 409 {object} models.APIResponse
// @Router /api/v1/advertiser/campaigns/{id}/applications/{driverId}/approve [post]
func (h *AdvertiserHandler) ApproveApplication(w http.ResponseWriter, r *http.Request) {
	res, err := h.console.Approve(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "driverId"))
	if err != nil {
		writeError(w, h.logger, err, "Failed to approve application")
		return
	}
	writeAction(w, http.StatusOK, res)
}

// RejectApplication handles POST /api/v1/advertiser/campaigns/{id}/applications/{driverId}/reject
// @Tags Advertiser
// @Summary Reject a pending application with an optional reason
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Campaign ID"
// @Param driverId path string true "Driver ID"
// @Param body body models.RejectApplicationRequest false "Reason (10-500 characters)"
// @Success 200 {object} models.APIResponse{data=console.ApplicationsView}
// @Failure 409 {object} models.APIResponse
// @Failure 422 {object} models.APIResponse
// @Router /api/v1/advertiser/campaigns/{id}/applications/{driverId}/reject [post]
func (h *AdvertiserHandler) RejectApplication(w http.ResponseWriter, r *http.Request) {
	var req models.RejectApplicationRequest
	if err := decodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	res, err := h.console.Reject(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "driverId"), req.Reason)
	if err != nil {
		writeError(w, h.logger, err, "Failed to reject application")
		return
	}
	writeAction(w, http.StatusOK, res)
}
