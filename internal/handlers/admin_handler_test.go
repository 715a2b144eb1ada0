package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"wrapads/internal/console"
	"wrapads/internal/interfaces"
	"wrapads/internal/models"
	"wrapads/internal/services"
)

type mockAuditRepo struct {
	lastFilter interfaces.AuditFilter
	entries    []models.AuditEntry
}

var _ interfaces.AuditRepository = (*mockAuditRepo)(nil)

func (m *mockAuditRepo) Record(ctx context.Context, entry *models.AuditEntry) error {
	m.entries = append(m.entries, *entry)
	return nil
}

func (m *mockAuditRepo) List(ctx context.Context, filter interfaces.AuditFilter) ([]models.AuditEntry, error) {
	m.lastFilter = filter
	return m.entries, nil
}

func (m *mockAuditRepo) Count(ctx context.Context, filter interfaces.AuditFilter) (int, error) {
	return len(m.entries), nil
}

func adminRouter(client *services.MarketplaceClient, audit interfaces.AuditRepository) http.Handler {
	deps := testDeps()
	deps.Audit = audit
	h := NewAdminHandler(console.NewAdmin(client, deps), zap.NewNop())
	r := chi.NewRouter()
	r.Use(withSession(models.UserTypeAdmin))
	r.Get("/vehicles", h.ListVehicles)
	r.Patch("/vehicles/{id}/verify", h.VerifyVehicle)
	r.Get("/drivers", h.ListDrivers)
	r.Get("/advertisers", h.ListAdvertisers)
	r.Get("/campaigns", h.ListCampaigns)
	r.Get("/audit", h.ListAudit)
	return r
}

func vehiclesFixture() []models.Vehicle {
	return []models.Vehicle{
		{VehicleID: "v1", DriverID: "d1", Make: "Toyota", Model: "Prius", Year: 2020, RegistrationNumber: "AB12CDE"},
		{VehicleID: "v2", DriverID: "d2", Make: "Ford", Model: "Transit", Year: 2019, RegistrationNumber: "XY34ZZZ", IsVerified: true},
	}
}

func TestListVehiclesFilter(t *testing.T) {
	client := marketplace(t, map[string]http.HandlerFunc{
		"GET /vehicles/all": envelope(http.StatusOK, vehiclesFixture()),
	})

	req := httptest.NewRequest(http.MethodGet, "/vehicles?filter=pending", nil)
	w := httptest.NewRecorder()
	adminRouter(client, nil).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d (%s)", w.Code, w.Body.String())
	}
	var resp struct {
		Data console.VehiclesView `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Data.Vehicles) != 1 || resp.Data.Vehicles[0].VehicleID != "v1" {
		t.Fatalf("unexpected vehicles %+v", resp.Data.Vehicles)
	}
	if resp.Data.Counts != (console.VehicleCounts{All: 2, Pending: 1, Verified: 1}) {
		t.Fatalf("unexpected counts %+v", resp.Data.Counts)
	}
}

func TestListVehiclesUnknownFilter(t *testing.T) {
	client := marketplace(t, nil)
	req := httptest.NewRequest(http.MethodGet, "/vehicles?filter=stolen", nil)
	w := httptest.NewRecorder()
	adminRouter(client, nil).ServeHTTP(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 got %d (%s)", w.Code, w.Body.String())
	}
}

func TestVerifyVehicle(t *testing.T) {
	tests := []struct {
		name       string
		vehicleID  string
		wantStatus int
		wantCode   string
	}{
		{name: "pending vehicle", vehicleID: "v1", wantStatus: http.StatusOK},
		{name: "already verified", vehicleID: "v2", wantStatus: http.StatusConflict, wantCode: "already_verified"},
		{name: "unknown vehicle", vehicleID: "v9", wantStatus: http.StatusNotFound, wantCode: "not_found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			audit := &mockAuditRepo{}
			client := marketplace(t, map[string]http.HandlerFunc{
				"GET /vehicles/all":           envelope(http.StatusOK, vehiclesFixture()),
				"PATCH /vehicles/{id}/verify": envelope(http.StatusOK, map[string]any{}),
			})

			req := httptest.NewRequest(http.MethodPatch, "/vehicles/"+tt.vehicleID+"/verify", nil)
			w := httptest.NewRecorder()
			adminRouter(client, audit).ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected %d got %d (%s)", tt.wantStatus, w.Code, w.Body.String())
			}
			resp := decodeResponse(t, w)
			if tt.wantCode != "" && resp["error"] != tt.wantCode {
				t.Fatalf("expected %s, got %v", tt.wantCode, resp)
			}
			if tt.wantStatus == http.StatusOK {
				if resp["message"] != "Vehicle verified successfully!" {
					t.Fatalf("unexpected message %v", resp["message"])
				}
				if len(audit.entries) != 1 || audit.entries[0].Action != "vehicle.verify" {
					t.Fatalf("expected one audit entry, got %+v", audit.entries)
				}
			}
		})
	}
}

func TestListAuditPassesFilter(t *testing.T) {
	audit := &mockAuditRepo{entries: []models.AuditEntry{{ID: "e1", Action: "campaign.status"}}}
	client := marketplace(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/audit?limit=10&offset=5&actorId=u7&action=campaign.status", nil)
	w := httptest.NewRecorder()
	adminRouter(client, audit).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d (%s)", w.Code, w.Body.String())
	}
	want := interfaces.AuditFilter{ActorID: "u7", Action: "campaign.status", Limit: 10, Offset: 5}
	if audit.lastFilter != want {
		t.Fatalf("expected filter %+v got %+v", want, audit.lastFilter)
	}
	var resp struct {
		Data console.AuditPage `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Data.Total != 1 || len(resp.Data.Entries) != 1 {
		t.Fatalf("unexpected page %+v", resp.Data)
	}
}

func TestListAuditInvalidLimit(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/audit?limit=abc", nil)
	w := httptest.NewRecorder()
	adminRouter(marketplace(t, nil), &mockAuditRepo{}).ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d (%s)", w.Code, w.Body.String())
	}
}

func TestListDriversSearch(t *testing.T) {
	client := marketplace(t, map[string]http.HandlerFunc{
		"GET /drivers": envelope(http.StatusOK, []models.Driver{
			{DriverID: "d1", FirstName: "Ana", LastName: "Silva", City: "Accra", IsVerified: true},
			{DriverID: "d2", FirstName: "Kofi", LastName: "Mensah", City: "Kumasi", Count: &models.DriverCount{Vehicles: 2}},
		}),
	})

	req := httptest.NewRequest(http.MethodGet, "/drivers?search=kumasi", nil)
	w := httptest.NewRecorder()
	adminRouter(client, nil).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d (%s)", w.Code, w.Body.String())
	}
	var resp struct {
		Data console.DriversView `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Data.Drivers) != 1 || resp.Data.Drivers[0].DriverID != "d2" {
		t.Fatalf("unexpected drivers %+v", resp.Data.Drivers)
	}
	if resp.Data.Counts != (console.DriverCounts{All: 2, Verified: 1, Pending: 1, WithVehicles: 1}) {
		t.Fatalf("unexpected counts %+v", resp.Data.Counts)
	}
}

func TestListAdvertisersSearch(t *testing.T) {
	client := marketplace(t, map[string]http.HandlerFunc{
		"GET /advertisers": envelope(http.StatusOK, []models.Advertiser{
			{AdvertiserID: "a1", CompanyName: "Kola Drinks", Industry: "Beverages", IsVerified: true},
			{AdvertiserID: "a2", CompanyName: "Bean Co", Count: &models.AdvertiserCount{Campaigns: 4}},
		}),
	})

	req := httptest.NewRequest(http.MethodGet, "/advertisers?search=beverages", nil)
	w := httptest.NewRecorder()
	adminRouter(client, nil).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d (%s)", w.Code, w.Body.String())
	}
	var resp struct {
		Data console.AdvertisersView `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Data.Advertisers) != 1 || resp.Data.Advertisers[0].AdvertiserID != "a1" {
		t.Fatalf("unexpected advertisers %+v", resp.Data.Advertisers)
	}
	if resp.Data.Counts != (console.AdvertiserCounts{All: 2, Verified: 1, Campaigns: 4}) {
		t.Fatalf("unexpected counts %+v", resp.Data.Counts)
	}
}

func TestListCampaignsStatusAndSearch(t *testing.T) {
	draft := campaignFixture("c2", models.CampaignStatusDraft, 2)
	draft.CampaignName = "Coffee Week"
	client := marketplace(t, map[string]http.HandlerFunc{
		"GET /campaigns": envelope(http.StatusOK, campaignsPayload(
			campaignFixture("c1", models.CampaignStatusActive, 4),
			draft,
		)),
	})

	req := httptest.NewRequest(http.MethodGet, "/campaigns?status=active&search=acme", nil)
	w := httptest.NewRecorder()
	adminRouter(client, nil).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d (%s)", w.Code, w.Body.String())
	}
	var resp struct {
		Data console.CampaignsView `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Data.Campaigns) != 1 || resp.Data.Campaigns[0].CampaignID != "c1" {
		t.Fatalf("unexpected campaigns %+v", resp.Data.Campaigns)
	}
	if resp.Data.Counts.All != 2 || resp.Data.Counts.Draft != 1 || resp.Data.Counts.Active != 1 {
		t.Fatalf("unexpected counts %+v", resp.Data.Counts)
	}
}

func TestListCampaignsRejectsUnknownStatus(t *testing.T) {
	client := marketplace(t, map[string]http.HandlerFunc{})

	req := httptest.NewRequest(http.MethodGet, "/campaigns?status=archived", nil)
	w := httptest.NewRecorder()
	adminRouter(client, nil).ServeHTTP(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 got %d (%s)", w.Code, w.Body.String())
	}
}
