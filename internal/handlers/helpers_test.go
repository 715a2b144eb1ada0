package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"wrapads/internal/console"
	"wrapads/internal/models"
	"wrapads/internal/services"
	"wrapads/internal/session"
	"wrapads/internal/workflow"
)

// marketplace starts a fake marketplace API serving routes and returns a
// client pointed at it.
func marketplace(t *testing.T, routes map[string]http.HandlerFunc) *services.MarketplaceClient {
	t.Helper()
	mux := http.NewServeMux()
	for pattern, h := range routes {
		mux.HandleFunc(pattern, h)
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return services.NewMarketplaceClient(srv.URL)
}

func envelope(status int, data any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		resp := models.APIResponse{Status: models.ResponseStatusSuccess, Data: data}
		if status >= 400 {
			resp = models.APIResponse{Status: models.ResponseStatusError, Message: data.(string)}
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func testDeps() console.Deps {
	return console.Deps{Tracker: workflow.NewTracker(), Logger: zap.NewNop()}
}

// withSession stands in for SessionAuth in handler tests.
func withSession(role models.UserType) func(http.Handler) http.Handler {
	s := &session.Session{
		Token: "tok",
		User:  models.AuthUser{UserID: "u1", Email: "u1@example.com", UserType: role},
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(session.WithSession(r.Context(), s)))
		})
	}
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected application/json got %q", ct)
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return resp
}

func campaignFixture(id string, status models.CampaignStatus, required int) models.Campaign {
	return models.Campaign{
		CampaignID:      id,
		AdvertiserID:    "a1",
		CampaignName:    "Spring Launch",
		Description:     "City centre wraps",
		Status:          status,
		StartDate:       models.MustParseDate("2025-03-01"),
		EndDate:         models.MustParseDate("2025-03-11"),
		PaymentPerDay:   models.AmountFromInt(40),
		RequiredDrivers: required,
		Advertiser:      &models.AdvertiserSummary{AdvertiserID: "a1", CompanyName: "Acme Bikes"},
	}
}

func detailFixture(c models.Campaign, applications int) models.CampaignDetail {
	return models.CampaignDetail{Campaign: &c, ApplicationsCount: applications}
}

func campaignsPayload(campaigns ...models.Campaign) map[string]any {
	return map[string]any{"campaigns": campaigns}
}

func createdPayload(c models.Campaign) map[string]any {
	return map[string]any{"campaign": c}
}
