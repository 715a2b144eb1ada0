// internal/models/campaign.go
package models

import (
	"fmt"
	"time"
)

type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "draft"
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusPaused    CampaignStatus = "paused"
	CampaignStatusCompleted CampaignStatus = "completed"
	CampaignStatusCancelled CampaignStatus = "cancelled"
)

var CampaignStatuses = []CampaignStatus{
	CampaignStatusDraft,
	CampaignStatusActive,
	CampaignStatusPaused,
	CampaignStatusCompleted,
	CampaignStatusCancelled,
}

func (s CampaignStatus) Valid() bool {
	switch s {
	case CampaignStatusDraft, CampaignStatusActive, CampaignStatusPaused, CampaignStatusCompleted, CampaignStatusCancelled:
		return true
	}
	return false
}

func ParseCampaignStatus(s string) (CampaignStatus, error) {
	status := CampaignStatus(s)
	if !status.Valid() {
		return "", fmt.Errorf("unknown campaign status: %q", s)
	}
	return status, nil
}

type AdvertiserSummary struct {
	AdvertiserID string `json:"advertiserId"`
	CompanyName  string `json:"companyName"`
}

// CampaignCount carries the relation counts the backend attaches to
// listings. Admin listings count driverCampaigns instead of applications.
type CampaignCount struct {
	Applications    int `json:"applications,omitempty"`
	DriverCampaigns int `json:"driverCampaigns,omitempty"`
}

type Campaign struct {
	CampaignID      string             `json:"campaignId"`
	AdvertiserID    string             `json:"advertiserId"`
	CampaignName    string             `json:"campaignName"`
	Description     string             `json:"description,omitempty"`
	Status          CampaignStatus     `json:"status"`
	StartDate       Date               `json:"startDate"`
	EndDate         Date               `json:"endDate"`
	PaymentPerDay   Amount             `json:"paymentPerDay"`
	RequiredDrivers int                `json:"requiredDrivers"`
	WrapDesignURL   string             `json:"wrapDesignUrl,omitempty"`
	Advertiser      *AdvertiserSummary `json:"advertiser,omitempty"`
	Count           *CampaignCount     `json:"_count,omitempty"`
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`
}

// ApplicationCount is the number of applications the backend reported for
// the campaign, zero when the listing carried no counts.
func (c *Campaign) ApplicationCount() int {
	if c.Count == nil {
		return 0
	}
	if c.Count.Applications == 0 {
		return c.Count.DriverCampaigns
	}
	return c.Count.Applications
}

// CampaignDetail is the payload of GET /campaigns/{id}.
type CampaignDetail struct {
	Campaign             *Campaign `json:"campaign"`
	ApplicationsCount    int       `json:"applicationsCount"`
	ApprovedDriversCount int       `json:"approvedDriversCount"`
}

type CreateCampaignRequest struct {
	CampaignName    string `json:"campaignName"`
	Description     string `json:"description,omitempty"`
	StartDate       Date   `json:"startDate"`
	EndDate         Date   `json:"endDate"`
	PaymentPerDay   Amount `json:"paymentPerDay"`
	RequiredDrivers int    `json:"requiredDrivers"`
	WrapDesignURL   string `json:"wrapDesignUrl,omitempty"`
}

type UpdateCampaignRequest struct {
	CampaignName    *string `json:"campaignName,omitempty"`
	Description     *string `json:"description,omitempty"`
	StartDate       *Date   `json:"startDate,omitempty"`
	EndDate         *Date   `json:"endDate,omitempty"`
	PaymentPerDay   *Amount `json:"paymentPerDay,omitempty"`
	RequiredDrivers *int    `json:"requiredDrivers,omitempty"`
	WrapDesignURL   *string `json:"wrapDesignUrl,omitempty"`
}

// CampaignStatusRequest is accepted by the console status endpoint: either
// the action name offered for the current status or the raw target status.
type CampaignStatusRequest struct {
	Action string `json:"action,omitempty"`
	Status string `json:"status,omitempty"`
}
