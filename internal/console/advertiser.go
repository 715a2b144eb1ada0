package console

import (
	"context"
	"fmt"

	"wrapads/internal/lifecycle"
	"wrapads/internal/models"
	"wrapads/internal/services"
	"wrapads/internal/validation"
)

// AdvertiserAPI is the part of the marketplace API the advertiser console
// calls.
type AdvertiserAPI interface {
	GetAdvertiserProfile(ctx context.Context) (*models.Advertiser, error)
	CreateAdvertiserProfile(ctx context.Context, req *models.AdvertiserProfileRequest) (*models.Advertiser, error)
	UpdateAdvertiserProfile(ctx context.Context, req *models.AdvertiserProfileRequest) (*models.Advertiser, error)
	ListMyCampaigns(ctx context.Context) ([]models.Campaign, error)
	GetCampaign(ctx context.Context, campaignID string) (*models.CampaignDetail, error)
	CreateCampaign(ctx context.Context, req *models.CreateCampaignRequest) (*models.Campaign, error)
	UpdateCampaign(ctx context.Context, campaignID string, req *models.UpdateCampaignRequest) (*models.Campaign, error)
	UpdateCampaignStatus(ctx context.Context, campaignID string, status models.CampaignStatus) error
	DeleteCampaign(ctx context.Context, campaignID string) error
	ListCampaignApplications(ctx context.Context, campaignID, status string) (*models.CampaignApplications, error)
	ApproveApplication(ctx context.Context, campaignID, driverID string) error
	RejectApplication(ctx context.Context, campaignID, driverID, reason string) error
}

type Advertiser struct {
	core
	api AdvertiserAPI
}

func NewAdvertiser(api AdvertiserAPI, deps Deps) *Advertiser {
	return &Advertiser{core: newCore(deps), api: api}
}

// Profile returns the caller's advertiser profile, or create mode when the
// marketplace has none yet.
func (a *Advertiser) Profile(ctx context.Context) (*AdvertiserProfileView, error) {
	adv, err := a.api.GetAdvertiserProfile(ctx)
	if err != nil {
		if services.IsNotFound(err) {
			return &AdvertiserProfileView{Mode: ProfileModeCreate}, nil
		}
		return nil, err
	}
	return &AdvertiserProfileView{Mode: ProfileModeView, Advertiser: adv}, nil
}

func (a *Advertiser) CreateProfile(ctx context.Context, req *models.AdvertiserProfileRequest) (*ActionResult, error) {
	return a.saveProfile(ctx, req, "advertiser.profile.create", "Profile created successfully!", "Failed to create profile",
		a.api.CreateAdvertiserProfile)
}

func (a *Advertiser) UpdateProfile(ctx context.Context, req *models.AdvertiserProfileRequest) (*ActionResult, error) {
	return a.saveProfile(ctx, req, "advertiser.profile.update", "Profile updated successfully!", "Failed to update profile",
		a.api.UpdateAdvertiserProfile)
}

func (a *Advertiser) saveProfile(
	ctx context.Context,
	req *models.AdvertiserProfileRequest,
	name, success, failure string,
	save func(context.Context, *models.AdvertiserProfileRequest) (*models.Advertiser, error),
) (*ActionResult, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	key, err := actorKey(ctx, "advertiser-profile", "")
	if err != nil {
		return nil, err
	}
	var saved *models.Advertiser
	res, err := a.run(ctx, mutation{
		name:         name,
		resourceType: "advertiser",
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
	res.Data = &AdvertiserProfileView{Mode: ProfileModeView, Advertiser: saved}
	return res, nil
}

func (a *Advertiser) Campaigns(ctx context.Context) ([]CampaignView, error) {
	campaigns, err := a.api.ListMyCampaigns(ctx)
	if err != nil {
		return nil, err
	}
	return campaignViews(campaigns), nil
}

func (a *Advertiser) Campaign(ctx context.Context, campaignID string) (*CampaignDetailView, error) {
	detail, err := a.api.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	return newCampaignDetailView(detail), nil
}

// CreateCampaign validates the form before anything is sent; an invalid
// form never reaches the marketplace.
func (a *Advertiser) CreateCampaign(ctx context.Context, req *models.CreateCampaignRequest) (*ActionResult, error) {
	if err := validation.CampaignCreate(req); err != nil {
		return nil, err
	}
	key, err := actorKey(ctx, "campaign-create", "")
	if err != nil {
		return nil, err
	}
	var created *models.Campaign
	res, err := a.run(ctx, mutation{
		name:         "campaign.create",
		resourceType: "campaign",
		key:          key,
		success:      "Campaign created successfully!",
		failure:      "Failed to create campaign",
		mutate: func(ctx context.Context) error {
			var err error
			created, err = a.api.CreateCampaign(ctx, req)
			return err
		},
		createdID: func() string { return created.CampaignID },
	})
	if err != nil {
		return nil, err
	}
	view := NewCampaignView(*created)
	res.Data = &view
	return res, nil
}

func (a *Advertiser) UpdateCampaign(ctx context.Context, campaignID string, req *models.UpdateCampaignRequest) (*ActionResult, error) {
	current, err := a.api.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if err := validation.CampaignUpdate(req, current.Campaign); err != nil {
		return nil, err
	}
	return a.run(ctx, mutation{
		name:         "campaign.update",
		resourceType: "campaign",
		resourceID:   campaignID,
		key:          "campaign:" + campaignID,
		success:      "Campaign updated successfully!",
		failure:      "Failed to update campaign",
		mutate: func(ctx context.Context) error {
			_, err := a.api.UpdateCampaign(ctx, campaignID, req)
			return err
		},
		refetch: a.refetchCampaign(campaignID),
	})
}

// ChangeStatus resolves the request against the campaign's current status
// and only sends transitions the status table offers.
func (a *Advertiser) ChangeStatus(ctx context.Context, campaignID string, req *models.CampaignStatusRequest) (*ActionResult, error) {
	if req.Action == "" && req.Status == "" {
		return nil, &validation.Error{Field: "action", Message: "action or status is required"}
	}
	current, err := a.api.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	from := current.Campaign.Status

	var to models.CampaignStatus
	if req.Action != "" {
		action, err := lifecycle.ActionFor(from, lifecycle.ActionName(req.Action))
		if err != nil {
			return nil, err
		}
		to = action.To
	} else {
		to = models.CampaignStatus(req.Status)
		if err := lifecycle.CheckTransition(from, to); err != nil {
			return nil, err
		}
	}

	return a.run(ctx, mutation{
		name:         "campaign.status",
		resourceType: "campaign",
		resourceID:   campaignID,
		key:          "campaign:" + campaignID,
		success:      fmt.Sprintf("Campaign status updated to %s", to),
		failure:      "Failed to update campaign status",
		mutate: func(ctx context.Context) error {
			return a.api.UpdateCampaignStatus(ctx, campaignID, to)
		},
		refetch: a.refetchCampaign(campaignID),
	})
}

func (a *Advertiser) DeleteCampaign(ctx context.Context, campaignID string) (*ActionResult, error) {
	current, err := a.api.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if current.Campaign.Status != models.CampaignStatusDraft {
		return nil, fmt.Errorf("%w: campaign is %s", ErrNotDeletable, current.Campaign.Status)
	}
	return a.run(ctx, mutation{
		name:         "campaign.delete",
		resourceType: "campaign",
		resourceID:   campaignID,
		key:          "campaign:" + campaignID,
		success:      "Campaign deleted",
		failure:      "Failed to delete campaign",
		mutate: func(ctx context.Context) error {
			return a.api.DeleteCampaign(ctx, campaignID)
		},
	})
}

// Applications lists a campaign's applications, optionally filtered by
// status. The full list is always fetched so the statistics stay complete.
func (a *Advertiser) Applications(ctx context.Context, campaignID, filter string) (*ApplicationsView, error) {
	status, err := applicationFilter(filter)
	if err != nil {
		return nil, err
	}
	list, err := a.api.ListCampaignApplications(ctx, campaignID, "")
	if err != nil {
		return nil, err
	}

	view := &ApplicationsView{
		CampaignID:   campaignID,
		Filter:       string(status),
		Applications: make([]ApplicationRow, 0, len(list.Data)),
		Statistics:   lifecycle.Tally(list.Data),
	}
	for _, app := range list.Data {
		if status != "" && app.Status != status {
			continue
		}
		row := ApplicationRow{Application: app, Actions: lifecycle.AdvertiserActions(app.Status)}
		if app.Driver != nil {
			row.DriverName = app.Driver.FullName()
		}
		view.Applications = append(view.Applications, row)
	}
	return view, nil
}

func (a *Advertiser) Approve(ctx context.Context, campaignID, driverID string) (*ActionResult, error) {
	if err := a.checkDecidable(ctx, campaignID, driverID); err != nil {
		return nil, err
	}
	return a.run(ctx, mutation{
		name:         "application.approve",
		resourceType: "application",
		resourceID:   campaignID + "/" + driverID,
		key:          "application:" + campaignID + ":" + driverID,
		success:      "Application approved successfully",
		failure:      "Failed to approve application",
		mutate: func(ctx context.Context) error {
			return a.api.ApproveApplication(ctx, campaignID, driverID)
		},
		refetch: a.refetchApplications(campaignID),
	})
}

// Reject checks the optional reason before the application itself.
func (a *Advertiser) Reject(ctx context.Context, campaignID, driverID, reason string) (*ActionResult, error) {
	if err := validation.RejectionReason(reason); err != nil {
		return nil, err
	}
	if err := a.checkDecidable(ctx, campaignID, driverID); err != nil {
		return nil, err
	}
	return a.run(ctx, mutation{
		name:         "application.reject",
		resourceType: "application",
		resourceID:   campaignID + "/" + driverID,
		key:          "application:" + campaignID + ":" + driverID,
		success:      "Application rejected",
		failure:      "Failed to reject application",
		mutate: func(ctx context.Context) error {
			return a.api.RejectApplication(ctx, campaignID, driverID, reason)
		},
		refetch: a.refetchApplications(campaignID),
	})
}

func (a *Advertiser) checkDecidable(ctx context.Context, campaignID, driverID string) error {
	list, err := a.api.ListCampaignApplications(ctx, campaignID, "")
	if err != nil {
		return err
	}
	app, ok := lifecycle.FindByDriver(list.Data, driverID)
	if !ok {
		return fmt.Errorf("%w: no application from driver %s", ErrNotFound, driverID)
	}
	return lifecycle.CheckDecidable(app.Status)
}

func (a *Advertiser) refetchCampaign(campaignID string) func(context.Context) (any, error) {
	return func(ctx context.Context) (any, error) {
		return a.Campaign(ctx, campaignID)
	}
}

func (a *Advertiser) refetchApplications(campaignID string) func(context.Context) (any, error) {
	return func(ctx context.Context) (any, error) {
		return a.Applications(ctx, campaignID, "")
	}
}

func applicationFilter(filter string) (models.ApplicationStatus, error) {
	if filter == "" || filter == "all" {
		return "", nil
	}
	status, err := models.ParseApplicationStatus(filter)
	if err != nil {
		return "", &validation.Error{Field: "status", Message: err.Error()}
	}
	return status, nil
}
