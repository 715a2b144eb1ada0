package console

import (
	"context"
	"fmt"

	"wrapads/internal/interfaces"
	"wrapads/internal/models"
	"wrapads/internal/validation"
)

// AdminAPI is the part of the marketplace API the admin console calls.
type AdminAPI interface {
	ListVehicles(ctx context.Context) ([]models.Vehicle, error)
	VerifyVehicle(ctx context.Context, vehicleID string) error
	ListDrivers(ctx context.Context) ([]models.Driver, error)
	GetDriver(ctx context.Context, driverID string) (*models.Driver, error)
	VerifyDriver(ctx context.Context, driverID string) error
	ListAdvertisers(ctx context.Context) ([]models.Advertiser, error)
	VerifyAdvertiser(ctx context.Context, advertiserID string) error
	ListCampaigns(ctx context.Context) ([]models.Campaign, error)
}

type Admin struct {
	core
	api AdminAPI
}

func NewAdmin(api AdminAPI, deps Deps) *Admin {
	return &Admin{core: newCore(deps), api: api}
}

// Vehicles lists every vehicle, filtered by all, pending or verified.
// Counts always cover the full list.
func (a *Admin) Vehicles(ctx context.Context, filter string) (*VehiclesView, error) {
	if filter == "" {
		filter = VehicleFilterAll
	}
	switch filter {
	case VehicleFilterAll, VehicleFilterPending, VehicleFilterVerified:
	default:
		return nil, &validation.Error{Field: "filter", Message: "filter must be one of: all pending verified"}
	}

	vehicles, err := a.api.ListVehicles(ctx)
	if err != nil {
		return nil, err
	}

	view := &VehiclesView{Filter: filter, Vehicles: make([]models.Vehicle, 0, len(vehicles))}
	for _, v := range vehicles {
		view.Counts.All++
		if v.IsVerified {
			view.Counts.Verified++
		} else {
			view.Counts.Pending++
		}
		if (filter == VehicleFilterPending && v.IsVerified) || (filter == VehicleFilterVerified && !v.IsVerified) {
			continue
		}
		view.Vehicles = append(view.Vehicles, v)
	}
	return view, nil
}

func (a *Admin) VerifyVehicle(ctx context.Context, vehicleID string) (*ActionResult, error) {
	vehicles, err := a.api.ListVehicles(ctx)
	if err != nil {
		return nil, err
	}
	var found *models.Vehicle
	for i := range vehicles {
		if vehicles[i].VehicleID == vehicleID {
			found = &vehicles[i]
			break
		}
	}
	if found == nil {
		return nil, fmt.Errorf("%w: vehicle %s", ErrNotFound, vehicleID)
	}
	if found.IsVerified {
		return nil, fmt.Errorf("%w: vehicle %s", ErrAlreadyVerified, vehicleID)
	}
	return a.run(ctx, mutation{
		name:         "vehicle.verify",
		resourceType: "vehicle",
		resourceID:   vehicleID,
		key:          "vehicle:" + vehicleID,
		success:      "Vehicle verified successfully!",
		failure:      "Failed to verify vehicle",
		mutate: func(ctx context.Context) error {
			return a.api.VerifyVehicle(ctx, vehicleID)
		},
		refetch: func(ctx context.Context) (any, error) {
			return a.Vehicles(ctx, VehicleFilterAll)
		},
	})
}

// Drivers lists drivers matching search. Counts cover the full list.
func (a *Admin) Drivers(ctx context.Context, search string) (*DriversView, error) {
	drivers, err := a.api.ListDrivers(ctx)
	if err != nil {
		return nil, err
	}
	view := &DriversView{Search: search, Drivers: make([]models.Driver, 0, len(drivers))}
	for _, d := range drivers {
		view.Counts.All++
		if d.IsVerified {
			view.Counts.Verified++
		} else {
			view.Counts.Pending++
		}
		if d.VehicleCount() > 0 {
			view.Counts.WithVehicles++
		}
		if matchesDriver(d, search) {
			view.Drivers = append(view.Drivers, d)
		}
	}
	return view, nil
}

func (a *Admin) Driver(ctx context.Context, driverID string) (*models.Driver, error) {
	return a.api.GetDriver(ctx, driverID)
}

func (a *Admin) VerifyDriver(ctx context.Context, driverID string) (*ActionResult, error) {
	drv, err := a.api.GetDriver(ctx, driverID)
	if err != nil {
		return nil, err
	}
	if drv.IsVerified {
		return nil, fmt.Errorf("%w: driver %s", ErrAlreadyVerified, driverID)
	}
	return a.run(ctx, mutation{
		name:         "driver.verify",
		resourceType: "driver",
		resourceID:   driverID,
		key:          "driver:" + driverID,
		success:      "Driver verified successfully!",
		failure:      "Failed to verify driver",
		mutate: func(ctx context.Context) error {
			return a.api.VerifyDriver(ctx, driverID)
		},
		refetch: func(ctx context.Context) (any, error) {
			return a.api.GetDriver(ctx, driverID)
		},
	})
}

func (a *Admin) Advertisers(ctx context.Context, search string) (*AdvertisersView, error) {
	advertisers, err := a.api.ListAdvertisers(ctx)
	if err != nil {
		return nil, err
	}
	view := &AdvertisersView{Search: search, Advertisers: make([]models.Advertiser, 0, len(advertisers))}
	for _, adv := range advertisers {
		view.Counts.All++
		if adv.IsVerified {
			view.Counts.Verified++
		}
		if adv.Count != nil {
			view.Counts.Campaigns += adv.Count.Campaigns
		}
		if matchesAdvertiser(adv, search) {
			view.Advertisers = append(view.Advertisers, adv)
		}
	}
	return view, nil
}

func (a *Admin) VerifyAdvertiser(ctx context.Context, advertiserID string) (*ActionResult, error) {
	advertisers, err := a.api.ListAdvertisers(ctx)
	if err != nil {
		return nil, err
	}
	var found *models.Advertiser
	for i := range advertisers {
		if advertisers[i].AdvertiserID == advertiserID {
			found = &advertisers[i]
			break
		}
	}
	if found == nil {
		return nil, fmt.Errorf("%w: advertiser %s", ErrNotFound, advertiserID)
	}
	if found.IsVerified {
		return nil, fmt.Errorf("%w: advertiser %s", ErrAlreadyVerified, advertiserID)
	}
	return a.run(ctx, mutation{
		name:         "advertiser.verify",
		resourceType: "advertiser",
		resourceID:   advertiserID,
		key:          "advertiser:" + advertiserID,
		success:      "Advertiser verified successfully!",
		failure:      "Failed to verify advertiser",
		mutate: func(ctx context.Context) error {
			return a.api.VerifyAdvertiser(ctx, advertiserID)
		},
		refetch: func(ctx context.Context) (any, error) {
			return a.Advertisers(ctx, "")
		},
	})
}

// Campaigns lists every campaign, narrowed by status ("" or "all" for
// any) and a text search over name, description and company.
func (a *Admin) Campaigns(ctx context.Context, status, search string) (*CampaignsView, error) {
	if status == "all" {
		status = ""
	}
	if status != "" && !models.CampaignStatus(status).Valid() {
		return nil, &validation.Error{Field: "status", Message: "status must be one of: all draft active paused completed cancelled"}
	}
	campaigns, err := a.api.ListCampaigns(ctx)
	if err != nil {
		return nil, err
	}
	view := &CampaignsView{Status: status, Search: search, Campaigns: make([]CampaignView, 0, len(campaigns))}
	for _, c := range campaigns {
		view.Counts.add(c.Status)
		if status != "" && string(c.Status) != status {
			continue
		}
		if !matchesQuery(c, search) {
			continue
		}
		view.Campaigns = append(view.Campaigns, NewCampaignView(c))
	}
	return view, nil
}

// Audit pages through the console's audit log, newest first.
func (a *Admin) Audit(ctx context.Context, filter interfaces.AuditFilter) (*AuditPage, error) {
	page := &AuditPage{Entries: []models.AuditEntry{}, Limit: filter.Limit, Offset: filter.Offset}
	if a.audit == nil {
		return page, nil
	}
	entries, err := a.audit.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := a.audit.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	page.Entries = entries
	page.Total = total
	return page, nil
}
