package services

import (
	"context"
	"net/http"

	"wrapads/internal/models"
)

func (c *MarketplaceClient) advertiser(ctx context.Context, rc call) (*models.Advertiser, error) {
	var out models.Advertiser
	if err := c.do(ctx, rc, &out); err != nil {
		return nil, err
	}
	if out.AdvertiserID == "" {
		return nil, shapeError(rc.op, "missing advertiserId")
	}
	return &out, nil
}

func (c *MarketplaceClient) driver(ctx context.Context, rc call) (*models.Driver, error) {
	var out models.Driver
	if err := c.do(ctx, rc, &out); err != nil {
		return nil, err
	}
	if out.DriverID == "" {
		return nil, shapeError(rc.op, "missing driverId")
	}
	return &out, nil
}

func (c *MarketplaceClient) vehicle(ctx context.Context, rc call) (*models.Vehicle, error) {
	var out models.Vehicle
	if err := c.do(ctx, rc, &out); err != nil {
		return nil, err
	}
	if out.VehicleID == "" {
		return nil, shapeError(rc.op, "missing vehicleId")
	}
	return &out, nil
}

func (c *MarketplaceClient) GetAdvertiserProfile(ctx context.Context) (*models.Advertiser, error) {
	return c.advertiser(ctx, call{op: "advertisers.me", method: http.MethodGet, path: "/advertisers/me"})
}

func (c *MarketplaceClient) CreateAdvertiserProfile(ctx context.Context, req *models.AdvertiserProfileRequest) (*models.Advertiser, error) {
	return c.advertiser(ctx, call{op: "advertisers.create", method: http.MethodPost, path: "/advertisers", body: req})
}

func (c *MarketplaceClient) UpdateAdvertiserProfile(ctx context.Context, req *models.AdvertiserProfileRequest) (*models.Advertiser, error) {
	return c.advertiser(ctx, call{op: "advertisers.update", method: http.MethodPut, path: "/advertisers/me", body: req})
}

func (c *MarketplaceClient) GetDriverProfile(ctx context.Context) (*models.Driver, error) {
	return c.driver(ctx, call{op: "drivers.me", method: http.MethodGet, path: "/drivers/me"})
}

func (c *MarketplaceClient) CreateDriverProfile(ctx context.Context, req *models.DriverProfileRequest) (*models.Driver, error) {
	return c.driver(ctx, call{op: "drivers.create", method: http.MethodPost, path: "/drivers", body: req})
}

func (c *MarketplaceClient) UpdateDriverProfile(ctx context.Context, req *models.DriverProfileRequest) (*models.Driver, error) {
	return c.driver(ctx, call{op: "drivers.update", method: http.MethodPut, path: "/drivers/me", body: req})
}

func (c *MarketplaceClient) ListMyVehicles(ctx context.Context) ([]models.Vehicle, error) {
	var out []models.Vehicle
	if err := c.do(ctx, call{op: "vehicles.my", method: http.MethodGet, path: "/vehicles/my"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *MarketplaceClient) AddVehicle(ctx context.Context, req *models.VehicleRequest) (*models.Vehicle, error) {
	return c.vehicle(ctx, call{op: "vehicles.create", method: http.MethodPost, path: "/vehicles", body: req})
}

func (c *MarketplaceClient) UpdateVehicle(ctx context.Context, vehicleID string, req *models.VehicleRequest) (*models.Vehicle, error) {
	return c.vehicle(ctx, call{op: "vehicles.update", method: http.MethodPut, path: "/vehicles/" + pathID(vehicleID), body: req})
}

func (c *MarketplaceClient) DeleteVehicle(ctx context.Context, vehicleID string) error {
	return c.do(ctx, call{op: "vehicles.delete", method: http.MethodDelete, path: "/vehicles/" + pathID(vehicleID)}, nil)
}
