package console

import (
	"context"
	"fmt"

	"wrapads/internal/lifecycle"
	"wrapads/internal/models"
	"wrapads/internal/pricing"
	"wrapads/internal/services"
	"wrapads/internal/validation"
)

// DriverAPI is the part of the marketplace API the driver console calls.
type DriverAPI interface {
	GetDriverProfile(ctx context.Context) (*models.Driver, error)
	CreateDriverProfile(ctx context.Context, req *models.DriverProfileRequest) (*models.Driver, error)
	UpdateDriverProfile(ctx context.Context, req *models.DriverProfileRequest) (*models.Driver, error)
	ListMyVehicles(ctx context.Context) ([]models.Vehicle, error)
	AddVehicle(ctx context.Context, req *models.VehicleRequest) (*models.Vehicle, error)
	UpdateVehicle(ctx context.Context, vehicleID string, req *models.VehicleRequest) (*models.Vehicle, error)
	DeleteVehicle(ctx context.Context, vehicleID string) error
	ListCampaigns(ctx context.Context) ([]models.Campaign, error)
	GetCampaign(ctx context.Context, campaignID string) (*models.CampaignDetail, error)
	ApplyToCampaign(ctx context.Context, campaignID string) error
	CancelApplication(ctx context.Context, campaignID string) error
	ListMyApplications(ctx context.Context, status string) ([]models.Application, error)
}

type Driver struct {
	core
	api DriverAPI
}

func NewDriver(api DriverAPI, deps Deps) *Driver {
	return &Driver{core: newCore(deps), api: api}
}

func (d *Driver) Profile(ctx context.Context) (*DriverProfileView, error) {
	drv, err := d.api.GetDriverProfile(ctx)
	if err != nil {
		if services.IsNotFound(err) {
			return &DriverProfileView{Mode: ProfileModeCreate}, nil
		}
		return nil, err
	}
	return &DriverProfileView{Mode: ProfileModeView, Driver: drv}, nil
}

func (d *Driver) CreateProfile(ctx context.Context, req *models.DriverProfileRequest) (*ActionResult, error) {
	return d.saveProfile(ctx, req, "driver.profile.create", "Profile created successfully!", "Failed to create profile",
		d.api.CreateDriverProfile)
}

func (d *Driver) UpdateProfile(ctx context.Context, req *models.DriverProfileRequest) (*ActionResult, error) {
	return d.saveProfile(ctx, req, "driver.profile.update", "Profile updated successfully!", "Failed to update profile",
		d.api.UpdateDriverProfile)
}

func (d *Driver) saveProfile(
	ctx context.Context,
	req *models.DriverProfileRequest,
	name, success, failure string,
	save func(context.Context, *models.DriverProfileRequest) (*models.Driver, error),
) (*ActionResult, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	key, err := actorKey(ctx, "driver-profile", "")
	if err != nil {
		return nil, err
	}
	var saved *models.Driver
	res, err := d.run(ctx, mutation{
		name:         name,
		resourceType: "driver",
		resourceID:   actorID(ctx),
		key:          key,
		success:      success,
		failure:      failure,
		mutate: func(ctx context.Context) error {
			var err error
			saved, err = save(ctx, req)
			return err
		},
	})
	if err != nil {
		return nil, err
	}
	res.Data = &DriverProfileView{Mode: ProfileModeView, Driver: saved}
	return res, nil
}

func (d *Driver) Vehicles(ctx context.Context) ([]models.Vehicle, error) {
	vehicles, err := d.api.ListMyVehicles(ctx)
	if err != nil {
		return nil, err
	}
	if vehicles == nil {
		vehicles = []models.Vehicle{}
	}
	return vehicles, nil
}

func (d *Driver) AddVehicle(ctx context.Context, req *models.VehicleRequest) (*ActionResult, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	key, err := actorKey(ctx, "vehicle-create", "")
	if err != nil {
		return nil, err
	}
	var created *models.Vehicle
	return d.run(ctx, mutation{
		name:         "vehicle.create",
		resourceType: "vehicle",
		key:          key,
		success:      "Vehicle information saved!",
		failure:      "Failed to add vehicle",
		mutate: func(ctx context.Context) error {
			var err error
			created, err = d.api.AddVehicle(ctx, req)
			return err
		},
		refetch: d.refetchVehicles,
		createdID: func() string {
			if created == nil {
				return ""
			}
			return created.VehicleID
		},
	})
}

func (d *Driver) UpdateVehicle(ctx context.Context, vehicleID string, req *models.VehicleRequest) (*ActionResult, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	return d.run(ctx, mutation{
		name:         "vehicle.update",
		resourceType: "vehicle",
		resourceID:   vehicleID,
		key:          "vehicle:" + vehicleID,
		success:      "Vehicle information saved!",
		failure:      "Failed to update vehicle",
		mutate: func(ctx context.Context) error {
			_, err := d.api.UpdateVehicle(ctx, vehicleID, req)
			return err
		},
		refetch: d.refetchVehicles,
	})
}

func (d *Driver) DeleteVehicle(ctx context.Context, vehicleID string) (*ActionResult, error) {
	return d.run(ctx, mutation{
		name:         "vehicle.delete",
		resourceType: "vehicle",
		resourceID:   vehicleID,
		key:          "vehicle:" + vehicleID,
		success:      "Vehicle removed",
		failure:      "Failed to delete vehicle",
		mutate: func(ctx context.Context) error {
			return d.api.DeleteVehicle(ctx, vehicleID)
		},
		refetch: d.refetchVehicles,
	})
}

// Browse lists active campaigns matching query.
func (d *Driver) Browse(ctx context.Context, query string) (*BrowseView, error) {
	campaigns, err := d.api.ListCampaigns(ctx)
	if err != nil {
		return nil, err
	}
	view := &BrowseView{Query: query, Campaigns: make([]BrowseItem, 0, len(campaigns))}
	for _, c := range campaigns {
		if c.Status != models.CampaignStatusActive || !matchesQuery(c, query) {
			continue
		}
		view.Campaigns = append(view.Campaigns, newBrowseItem(c))
	}
	view.Total = len(view.Campaigns)
	return view, nil
}

// Apply refuses campaigns that are not active or have no spots left
// before anything is sent.
func (d *Driver) Apply(ctx context.Context, campaignID string) (*ActionResult, error) {
	key, err := actorKey(ctx, "apply", campaignID)
	if err != nil {
		return nil, err
	}
	detail, err := d.api.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if detail.Campaign.Status != models.CampaignStatusActive {
		return nil, fmt.Errorf("%w: campaign is %s", ErrCampaignNotActive, detail.Campaign.Status)
	}
	if pricing.SpotsLeft(detail.Campaign.RequiredDrivers, detail.ApplicationsCount) <= 0 {
		return nil, ErrCampaignFull
	}
	return d.run(ctx, mutation{
		name:         "application.apply",
		resourceType: "campaign",
		resourceID:   campaignID,
		key:          key,
		success:      "Application submitted successfully!",
		failure:      "Failed to submit application",
		mutate: func(ctx context.Context) error {
			return d.api.ApplyToCampaign(ctx, campaignID)
		},
		refetch: d.refetchBrowse,
	})
}

func (d *Driver) CancelApplication(ctx context.Context, campaignID string) (*ActionResult, error) {
	key, err := actorKey(ctx, "apply", campaignID)
	if err != nil {
		return nil, err
	}
	apps, err := d.api.ListMyApplications(ctx, "")
	if err != nil {
		return nil, err
	}
	app, ok := lifecycle.FindByCampaign(apps, campaignID)
	if !ok {
		return nil, fmt.Errorf("%w: no application for campaign %s", ErrNotFound, campaignID)
	}
	if err := lifecycle.CheckCancellable(app.Status); err != nil {
		return nil, err
	}
	return d.run(ctx, mutation{
		name:         "application.cancel",
		resourceType: "campaign",
		resourceID:   campaignID,
		key:          key,
		success:      "Application cancelled successfully",
		failure:      "Failed to cancel application",
		mutate: func(ctx context.Context) error {
			return d.api.CancelApplication(ctx, campaignID)
		},
		refetch: func(ctx context.Context) (any, error) {
			return d.Applications(ctx, "")
		},
	})
}

// Applications lists the caller's applications. As with the advertiser
// list, statistics cover every status.
func (d *Driver) Applications(ctx context.Context, filter string) (*MyApplicationsView, error) {
	status, err := applicationFilter(filter)
	if err != nil {
		return nil, err
	}
	apps, err := d.api.ListMyApplications(ctx, "")
	if err != nil {
		return nil, err
	}

	view := &MyApplicationsView{
		Filter:       string(status),
		Applications: make([]MyApplicationRow, 0, len(apps)),
		Statistics:   lifecycle.Tally(apps),
	}
	for _, app := range apps {
		if status != "" && app.Status != status {
			continue
		}
		row := MyApplicationRow{Application: app, Actions: lifecycle.DriverActions(app.Status)}
		if c := app.Campaign; c != nil {
			row.Earnings = pricing.Money(pricing.DriverEarnings(c.PaymentPerDay, c.StartDate.Time, c.EndDate.Time))
		}
		view.Applications = append(view.Applications, row)
	}
	return view, nil
}

func (d *Driver) refetchVehicles(ctx context.Context) (any, error) {
	return d.Vehicles(ctx)
}

func (d *Driver) refetchBrowse(ctx context.Context) (any, error) {
	return d.Browse(ctx, "")
}
