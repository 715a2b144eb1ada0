package console

import (
	"context"
	"sync"

	"wrapads/internal/interfaces"
	"wrapads/internal/models"
)

// fakeMarketplace records calls and serves canned data for every console.
type fakeMarketplace struct {
	mu    sync.Mutex
	calls []string

	advertiser    *models.Advertiser
	driver        *models.Driver
	campaigns     []models.Campaign
	detail        *models.CampaignDetail
	applications  []models.Application
	vehicles      []models.Vehicle
	drivers       []models.Driver
	advertisers   []models.Advertiser
	authResponse  *models.AuthResponse
	err           error
	mutationErr   error
	lastStatus    models.CampaignStatus
	lastReason    string
	lastCreate    *models.CreateCampaignRequest
	onStatusWrite func()
	onApply       func(ctx context.Context)
}

var (
	_ AdvertiserAPI = (*fakeMarketplace)(nil)
	_ DriverAPI     = (*fakeMarketplace)(nil)
	_ AdminAPI      = (*fakeMarketplace)(nil)
	_ AuthAPI       = (*fakeMarketplace)(nil)
)

func (f *fakeMarketplace) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeMarketplace) called(call string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.calls {
		if c == call {
			return true
		}
	}
	return false
}

func (f *fakeMarketplace) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	f.record("Login")
	return f.authResponse, f.err
}

func (f *fakeMarketplace) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	f.record("Register")
	return f.authResponse, f.err
}

func (f *fakeMarketplace) Logout(ctx context.Context) error {
	f.record("Logout")
	return f.mutationErr
}

func (f *fakeMarketplace) CurrentUser(ctx context.Context) (*models.User, error) {
	f.record("CurrentUser")
	return &models.User{UserID: "u1"}, f.err
}

func (f *fakeMarketplace) GetAdvertiserProfile(ctx context.Context) (*models.Advertiser, error) {
	f.record("GetAdvertiserProfile")
	return f.advertiser, f.err
}

func (f *fakeMarketplace) CreateAdvertiserProfile(ctx context.Context, req *models.AdvertiserProfileRequest) (*models.Advertiser, error) {
	f.record("CreateAdvertiserProfile")
	return &models.Advertiser{AdvertiserID: "a1", CompanyName: req.CompanyName}, f.mutationErr
}

func (f *fakeMarketplace) UpdateAdvertiserProfile(ctx context.Context, req *models.AdvertiserProfileRequest) (*models.Advertiser, error) {
	f.record("UpdateAdvertiserProfile")
	return &models.Advertiser{AdvertiserID: "a1", CompanyName: req.CompanyName}, f.mutationErr
}

func (f *fakeMarketplace) ListMyCampaigns(ctx context.Context) ([]models.Campaign, error) {
	f.record("ListMyCampaigns")
	return f.campaigns, f.err
}

func (f *fakeMarketplace) ListCampaigns(ctx context.Context) ([]models.Campaign, error) {
	f.record("ListCampaigns")
	return f.campaigns, f.err
}

func (f *fakeMarketplace) GetCampaign(ctx context.Context, campaignID string) (*models.CampaignDetail, error) {
	f.record("GetCampaign")
	if f.err != nil {
		return nil, f.err
	}
	return f.detail, nil
}

func (f *fakeMarketplace) CreateCampaign(ctx context.Context, req *models.CreateCampaignRequest) (*models.Campaign, error) {
	f.record("CreateCampaign")
	f.lastCreate = req
	if f.mutationErr != nil {
		return nil, f.mutationErr
	}
	return &models.Campaign{
		CampaignID:      "new",
		CampaignName:    req.CampaignName,
		Status:          models.CampaignStatusDraft,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		PaymentPerDay:   req.PaymentPerDay,
		RequiredDrivers: req.RequiredDrivers,
	}, nil
}

func (f *fakeMarketplace) UpdateCampaign(ctx context.Context, campaignID string, req *models.UpdateCampaignRequest) (*models.Campaign, error) {
	f.record("UpdateCampaign")
	return f.detail.Campaign, f.mutationErr
}

func (f *fakeMarketplace) UpdateCampaignStatus(ctx context.Context, campaignID string, status models.CampaignStatus) error {
	f.record("UpdateCampaignStatus")
	f.lastStatus = status
	if f.onStatusWrite != nil {
		f.onStatusWrite()
	}
	if f.mutationErr == nil {
		f.detail.Campaign.Status = status
	}
	return f.mutationErr
}

func (f *fakeMarketplace) DeleteCampaign(ctx context.Context, campaignID string) error {
	f.record("DeleteCampaign")
	return f.mutationErr
}

func (f *fakeMarketplace) ListCampaignApplications(ctx context.Context, campaignID, status string) (*models.CampaignApplications, error) {
	f.record("ListCampaignApplications")
	if f.err != nil {
		return nil, f.err
	}
	return &models.CampaignApplications{Data: f.applications}, nil
}

func (f *fakeMarketplace) ApproveApplication(ctx context.Context, campaignID, driverID string) error {
	f.record("ApproveApplication")
	return f.mutationErr
}

func (f *fakeMarketplace) RejectApplication(ctx context.Context, campaignID, driverID, reason string) error {
	f.record("RejectApplication")
	f.lastReason = reason
	return f.mutationErr
}

func (f *fakeMarketplace) GetDriverProfile(ctx context.Context) (*models.Driver, error) {
	f.record("GetDriverProfile")
	return f.driver, f.err
}

func (f *fakeMarketplace) CreateDriverProfile(ctx context.Context, req *models.DriverProfileRequest) (*models.Driver, error) {
	f.record("CreateDriverProfile")
	return &models.Driver{DriverID: "d1", FirstName: req.FirstName, LastName: req.LastName}, f.mutationErr
}

func (f *fakeMarketplace) UpdateDriverProfile(ctx context.Context, req *models.DriverProfileRequest) (*models.Driver, error) {
	f.record("UpdateDriverProfile")
	return &models.Driver{DriverID: "d1", FirstName: req.FirstName, LastName: req.LastName}, f.mutationErr
}

func (f *fakeMarketplace) ListMyVehicles(ctx context.Context) ([]models.Vehicle, error) {
	f.record("ListMyVehicles")
	return f.vehicles, f.err
}

func (f *fakeMarketplace) AddVehicle(ctx context.Context, req *models.VehicleRequest) (*models.Vehicle, error) {
	f.record("AddVehicle")
	return &models.Vehicle{VehicleID: "v-new"}, f.mutationErr
}

func (f *fakeMarketplace) UpdateVehicle(ctx context.Context, vehicleID string, req *models.VehicleRequest) (*models.Vehicle, error) {
	f.record("UpdateVehicle")
	return &models.Vehicle{VehicleID: vehicleID}, f.mutationErr
}

func (f *fakeMarketplace) DeleteVehicle(ctx context.Context, vehicleID string) error {
	f.record("DeleteVehicle")
	return f.mutationErr
}

func (f *fakeMarketplace) ApplyToCampaign(ctx context.Context, campaignID string) error {
	f.record("ApplyToCampaign")
	if f.onApply != nil {
		f.onApply(ctx)
	}
	return f.mutationErr
}

func (f *fakeMarketplace) CancelApplication(ctx context.Context, campaignID string) error {
	f.record("CancelApplication")
	return f.mutationErr
}

func (f *fakeMarketplace) ListMyApplications(ctx context.Context, status string) ([]models.Application, error) {
	f.record("ListMyApplications")
	return f.applications, f.err
}

func (f *fakeMarketplace) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	f.record("ListVehicles")
	return f.vehicles, f.err
}

func (f *fakeMarketplace) VerifyVehicle(ctx context.Context, vehicleID string) error {
	f.record("VerifyVehicle")
	return f.mutationErr
}

func (f *fakeMarketplace) ListDrivers(ctx context.Context) ([]models.Driver, error) {
	f.record("ListDrivers")
	return f.drivers, f.err
}

func (f *fakeMarketplace) GetDriver(ctx context.Context, driverID string) (*models.Driver, error) {
	f.record("GetDriver")
	if f.err != nil {
		return nil, f.err
	}
	return f.driver, nil
}

func (f *fakeMarketplace) VerifyDriver(ctx context.Context, driverID string) error {
	f.record("VerifyDriver")
	return f.mutationErr
}

func (f *fakeMarketplace) ListAdvertisers(ctx context.Context) ([]models.Advertiser, error) {
	f.record("ListAdvertisers")
	return f.advertisers, f.err
}

func (f *fakeMarketplace) VerifyAdvertiser(ctx context.Context, advertiserID string) error {
	f.record("VerifyAdvertiser")
	return f.mutationErr
}

type fakeAudit struct {
	mu      sync.Mutex
	entries []models.AuditEntry
	err     error
}

var _ interfaces.AuditRepository = (*fakeAudit)(nil)

func (f *fakeAudit) Record(ctx context.Context, entry *models.AuditEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeAudit) List(ctx context.Context, filter interfaces.AuditFilter) ([]models.AuditEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.AuditEntry(nil), f.entries...), f.err
}

func (f *fakeAudit) Count(ctx context.Context, filter interfaces.AuditFilter) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.entries), f.err
}
