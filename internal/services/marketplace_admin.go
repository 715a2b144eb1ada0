package services

import (
	"context"
	"net/http"

	"wrapads/internal/models"
)

// ListVehicles handles GET /vehicles/all (admin only).
func (c *MarketplaceClient) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	var out []models.Vehicle
	if err := c.do(ctx, call{op: "vehicles.all", method: http.MethodGet, path: "/vehicles/all"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *MarketplaceClient) VerifyVehicle(ctx context.Context, vehicleID string) error {
	return c.do(ctx, call{op: "vehicles.verify", method: http.MethodPatch, path: "/vehicles/" + pathID(vehicleID) + "/verify"}, nil)
}

func (c *MarketplaceClient) ListDrivers(ctx context.Context) ([]models.Driver, error) {
	var out []models.Driver
	if err := c.do(ctx, call{op: "drivers.list", method: http.MethodGet, path: "/drivers"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *MarketplaceClient) GetDriver(ctx context.Context, driverID string) (*models.Driver, error) {
	return c.driver(ctx, call{op: "drivers.get", method: http.MethodGet, path: "/drivers/" + pathID(driverID)})
}

func (c *MarketplaceClient) VerifyDriver(ctx context.Context, driverID string) error {
	return c.do(ctx, call{op: "drivers.verify", method: http.MethodPatch, path: "/drivers/" + pathID(driverID) + "/verify"}, nil)
}

func (c *MarketplaceClient) ListAdvertisers(ctx context.Context) ([]models.Advertiser, error) {
	var out []models.Advertiser
	if err := c.do(ctx, call{op: "advertisers.list", method: http.MethodGet, path: "/advertisers"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *MarketplaceClient) VerifyAdvertiser(ctx context.Context, advertiserID string) error {
	return c.do(ctx, call{op: "advertisers.verify", method: http.MethodPatch, path: "/advertisers/" + pathID(advertiserID) + "/verify"}, nil)
}
