package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"wrapads/internal/console"
	"wrapads/internal/interfaces"
)

type AdminHandler struct {
	console *console.Admin
	logger  *zap.Logger
}

func NewAdminHandler(c *console.Admin, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{console: c, logger: logger}
}

// ListVehicles handles GET /api/v1/admin/vehicles
// @Tags Admin
// @Summary Every vehicle, filtered by verification state
// @Security BearerAuth
// @Produce json
// @Param filter query string false "all|pending|verified"
// @Success 200 {object} models.APIResponse{data=console.VehiclesView}
// @Failure 422 {object} models.APIResponse
// @Router /api/v1/admin/vehicles [get]
func (h *AdminHandler) ListVehicles(w http.ResponseWriter, r *http.Request) {
	view, err := h.console.Vehicles(r.Context(), r.URL.Query().Get("filter"))
	if err != nil {
		writeError(w, h.logger, err, "Failed to load vehicles")
		return
	}
	writeData(w, http.StatusOK, view)
}

// VerifyVehicle handles PATCH /api/v1/admin/vehicles/{id}/verify
// @Tags Admin
// @Summary Mark a vehicle verified
// @Security BearerAuth
// @Produce json
// @Param id path string true "Vehicle ID"
// @Success 200 {object} models.APIResponse{data=console.VehiclesView}
// @Failure 404 {object} models.APIResponse
// @Failure 409 {object} models.APIResponse
// @Router /api/v1/admin/vehicles/{id}/verify [patch]
func (h *AdminHandler) VerifyVehicle(w http.ResponseWriter, r *http.Request) {
	res, err := h.console.VerifyVehicle(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, err, "Failed to verify vehicle")
		return
	}
	writeAction(w, http.StatusOK, res)
}

// ListDrivers handles GET /api/v1/admin/drivers
// @Tags Admin
// @Summary Driver profiles matching a search, with totals
// @Security BearerAuth
// @Produce json
// @Param search query string false "Name, email or city"
// @Success 200 {object} models.APIResponse{data=console.DriversView}
// @Router /api/v1/admin/drivers [get]
func (h *AdminHandler) ListDrivers(w http.ResponseWriter, r *http.Request) {
	drivers, err := h.console.Drivers(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		writeError(w, h.logger, err, "Failed to load drivers")
		return
	}
	writeData(w, http.StatusOK, drivers)
}

// GetDriver handles GET /api/v1/admin/drivers/{id}
// @Tags Admin
// @Summary One driver with vehicles and history
// @Security BearerAuth
// @Produce json
// @Param id path string true "Driver ID"
// @Success 200 {object} models.APIResponse{data=models.Driver}
// @Failure 404 {object} models.APIResponse
// @Router /api/v1/admin/drivers/{id} [get]
func (h *AdminHandler) GetDriver(w http.ResponseWriter, r *http.Request) {
	driver, err := h.console.Driver(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, err, "Failed to load driver")
		return
	}
	writeData(w, http.StatusOK, driver)
}

// VerifyDriver handles PATCH /api/v1/admin/drivers/{id}/verify
// @Tags Admin
// @Summary Mark a driver verified
// @Security BearerAuth
// @Produce json
// @Param id path string true "Driver ID"
// @Success 200 {object} models.APIResponse{data=models.Driver}
// @Failure 409 {object} models.APIResponse
// @Router /api/v1/admin/drivers/{id}/verify [patch]
func (h *AdminHandler) VerifyDriver(w http.ResponseWriter, r *http.Request) {
	res, err := h.console.VerifyDriver(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, err, "Failed to verify driver")
		return
	}
	writeAction(w, http.StatusOK, res)
}

// ListAdvertisers handles GET /api/v1/admin/advertisers
// @Tags Admin
// @Summary Advertiser profiles matching a search, with totals
// @Security BearerAuth
// @Produce json
// @Param search query string false "Company, contact, email, industry or city"
// @Success 200 {object} models.APIResponse{data=console.AdvertisersView}
// @Router /api/v1/admin/advertisers [get]
func (h *AdminHandler) ListAdvertisers(w http.ResponseWriter, r *http.Request) {
	advertisers, err := h.console.Advertisers(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		writeError(w, h.logger, err, "Failed to load advertisers")
		return
	}
	writeData(w, http.StatusOK, advertisers)
}

// VerifyAdvertiser handles PATCH /api/v1/admin/advertisers/{id}/verify
// @Tags Admin
// @Summary Mark an advertiser verified
// @Security BearerAuth
// @Produce json
// @Param id path string true "Advertiser ID"
// @Success 200 {object} models.APIResponse{data=console.AdvertisersView}
// @Failure 409 {object} models.APIResponse
// @Router /api/v1/admin/advertisers/{id}/verify [patch]
func (h *AdminHandler) VerifyAdvertiser(w http.ResponseWriter, r *http.Request) {
	res, err := h.console.VerifyAdvertiser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, err, "Failed to verify advertiser")
		return
	}
	writeAction(w, http.StatusOK, res)
}

// ListCampaigns handles GET /api/v1/admin/campaigns
// @Tags Admin
// @Summary Campaigns on the marketplace, by status and search
// @Security BearerAuth
// @Produce json
// @Param status query string false "all|draft|active|paused|completed|cancelled"
// @Param search query string false "Name, description or company"
// @Success 200 {object} models.APIResponse{data=console.CampaignsView}
// @Failure 422 {object} models.APIResponse
// @Router /api/v1/admin/campaigns [get]
func (h *AdminHandler) ListCampaigns(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	views, err := h.console.Campaigns(r.Context(), q.Get("status"), q.Get("search"))
	if err != nil {
		writeError(w, h.logger, err, "Failed to load campaigns")
		return
	}
	writeData(w, http.StatusOK, views)
}

// ListAudit handles GET /api/v1/admin/audit
// @Tags Admin
// @Summary Console audit log, newest first
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Page size (default 50, max 500)"
// @Param offset query int false "Offset"
// @Param actorId query string false "Actor user ID"
// @Param action query string false "Action name, e.g. campaign.status"
// @Param resourceType query string false "Resource type"
// @Param resourceId query string false "Resource ID"
// @Success 200 {object} models.APIResponse{data=console.AuditPage}
// @Failure 400 {object} models.APIResponse
// @Router /api/v1/admin/audit [get]
func (h *AdminHandler) ListAudit(w http.ResponseWriter, r *http.Request) {
	p, err := parsePaginationParams(r, 50, 500)
	if err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	q := r.URL.Query()
	page, err := h.console.Audit(r.Context(), interfaces.AuditFilter{
		ActorID:      q.Get("actorId"),
		Action:       q.Get("action"),
		ResourceType: q.Get("resourceType"),
		ResourceID:   q.Get("resourceId"),
		Limit:        p.Limit,
		Offset:       p.Offset,
	})
	if err != nil {
		writeError(w, h.logger, err, "Failed to load audit log")
		return
	}
	writeData(w, http.StatusOK, page)
}
