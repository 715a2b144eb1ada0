package services

import (
	"context"
	"net/http"

	"wrapads/internal/models"
)

// campaign decodes the {campaign: {...}} payload create and update answer with.
func (c *MarketplaceClient) campaign(ctx context.Context, rc call) (*models.Campaign, error) {
	var out struct {
		Campaign *models.Campaign `json:"campaign"`
	}
	if err := c.do(ctx, rc, &out); err != nil {
		return nil, err
	}
	if out.Campaign == nil || out.Campaign.CampaignID == "" {
		return nil, shapeError(rc.op, "missing campaign")
	}
	return out.Campaign, nil
}

// campaigns decodes the {campaigns: [...]} list payload.
func (c *MarketplaceClient) campaigns(ctx context.Context, rc call) ([]models.Campaign, error) {
	var out struct {
		Campaigns *[]models.Campaign `json:"campaigns"`
	}
	if err := c.do(ctx, rc, &out); err != nil {
		return nil, err
	}
	if out.Campaigns == nil {
		return nil, shapeError(rc.op, "missing campaign list")
	}
	return *out.Campaigns, nil
}

// ListMyCampaigns handles GET /campaigns/my.
func (c *MarketplaceClient) ListMyCampaigns(ctx context.Context) ([]models.Campaign, error) {
	return c.campaigns(ctx, call{op: "campaigns.my", method: http.MethodGet, path: "/campaigns/my"})
}

// ListCampaigns handles GET /campaigns. Drivers browse it; admins see every
// campaign through it.
func (c *MarketplaceClient) ListCampaigns(ctx context.Context) ([]models.Campaign, error) {
	return c.campaigns(ctx, call{op: "campaigns.list", method: http.MethodGet, path: "/campaigns"})
}

func (c *MarketplaceClient) GetCampaign(ctx context.Context, campaignID string) (*models.CampaignDetail, error) {
	var out models.CampaignDetail
	rc := call{op: "campaigns.get", method: http.MethodGet, path: "/campaigns/" + pathID(campaignID)}
	if err := c.do(ctx, rc, &out); err != nil {
		return nil, err
	}
	if out.Campaign == nil || out.Campaign.CampaignID == "" {
		return nil, shapeError(rc.op, "missing campaign")
	}
	return &out, nil
}

func (c *MarketplaceClient) CreateCampaign(ctx context.Context, req *models.CreateCampaignRequest) (*models.Campaign, error) {
	return c.campaign(ctx, call{op: "campaigns.create", method: http.MethodPost, path: "/campaigns", body: req})
}

func (c *MarketplaceClient) UpdateCampaign(ctx context.Context, campaignID string, req *models.UpdateCampaignRequest) (*models.Campaign, error) {
	return c.campaign(ctx, call{op: "campaigns.update", method: http.MethodPut, path: "/campaigns/" + pathID(campaignID), body: req})
}

// UpdateCampaignStatus handles PATCH /campaigns/{id}/status. The body only
// ever carries the target status; the marketplace decides.
func (c *MarketplaceClient) UpdateCampaignStatus(ctx context.Context, campaignID string, status models.CampaignStatus) error {
	body := map[string]string{"status": string(status)}
	return c.do(ctx, call{op: "campaigns.status", method: http.MethodPatch, path: "/campaigns/" + pathID(campaignID) + "/status", body: body}, nil)
}

func (c *MarketplaceClient) DeleteCampaign(ctx context.Context, campaignID string) error {
	return c.do(ctx, call{op: "campaigns.delete", method: http.MethodDelete, path: "/campaigns/" + pathID(campaignID)}, nil)
}

// ListCampaignApplications handles GET /campaigns/{id}/applications. An
// empty status lists every application.
func (c *MarketplaceClient) ListCampaignApplications(ctx context.Context, campaignID, status string) (*models.CampaignApplications, error) {
	var out struct {
		Data       *[]models.Application         `json:"data"`
		Statistics *models.ApplicationStatistics `json:"statistics"`
	}
	rc := call{
		op:     "applications.list",
		method: http.MethodGet,
		path:   "/campaigns/" + pathID(campaignID) + "/applications",
		query:  statusQuery(status),
	}
	if err := c.do(ctx, rc, &out); err != nil {
		return nil, err
	}
	if out.Data == nil {
		return nil, shapeError(rc.op, "missing application list")
	}
	return &models.CampaignApplications{Data: *out.Data, Statistics: out.Statistics}, nil
}

func (c *MarketplaceClient) ApproveApplication(ctx context.Context, campaignID, driverID string) error {
	path := "/campaigns/" + pathID(campaignID) + "/applications/" + pathID(driverID) + "/approve"
	return c.do(ctx, call{op: "applications.approve", method: http.MethodPatch, path: path}, nil)
}

// RejectApplication sends the optional reason; an empty reason is omitted.
func (c *MarketplaceClient) RejectApplication(ctx context.Context, campaignID, driverID, reason string) error {
	path := "/campaigns/" + pathID(campaignID) + "/applications/" + pathID(driverID) + "/reject"
	return c.do(ctx, call{
		op:     "applications.reject",
		method: http.MethodPatch,
		path:   path,
		body:   models.RejectApplicationRequest{Reason: reason},
	}, nil)
}

func (c *MarketplaceClient) ApplyToCampaign(ctx context.Context, campaignID string) error {
	return c.do(ctx, call{op: "applications.apply", method: http.MethodPost, path: "/campaigns/" + pathID(campaignID) + "/apply"}, nil)
}

// CancelApplication withdraws the caller's pending application.
func (c *MarketplaceClient) CancelApplication(ctx context.Context, campaignID string) error {
	return c.do(ctx, call{op: "applications.cancel", method: http.MethodDelete, path: "/campaigns/" + pathID(campaignID) + "/apply"}, nil)
}

func (c *MarketplaceClient) ListMyApplications(ctx context.Context, status string) ([]models.Application, error) {
	var out []models.Application
	rc := call{op: "applications.my", method: http.MethodGet, path: "/campaigns/applications/my", query: statusQuery(status)}
	if err := c.do(ctx, rc, &out); err != nil {
		return nil, err
	}
	return out, nil
}
