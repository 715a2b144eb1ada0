package console

import (
	"strings"

	"wrapads/internal/lifecycle"
	"wrapads/internal/models"
	"wrapads/internal/pricing"
)

const (
	ProfileModeView   = "view"
	ProfileModeCreate = "create"
)

// CampaignView is a campaign with the derived fields its page shows.
type CampaignView struct {
	models.Campaign
	StatusLabel string             `json:"statusLabel"`
	Actions     []lifecycle.Action `json:"actions"`
	Days        int                `json:"days"`
	Duration    string             `json:"duration"`
	TotalCost   string             `json:"totalCost"`
	Deletable   bool               `json:"deletable"`
}

func NewCampaignView(c models.Campaign) CampaignView {
	days := pricing.Days(c.StartDate.Time, c.EndDate.Time)
	return CampaignView{
		Campaign:    c,
		StatusLabel: statusLabel(string(c.Status)),
		Actions:     lifecycle.OfferedActions(c.Status),
		Days:        days,
		Duration:    pricing.FormatDuration(days),
		TotalCost:   pricing.Money(pricing.TotalCost(c.PaymentPerDay, c.StartDate.Time, c.EndDate.Time, c.RequiredDrivers)),
		Deletable:   c.Status == models.CampaignStatusDraft,
	}
}

func campaignViews(campaigns []models.Campaign) []CampaignView {
	out := make([]CampaignView, 0, len(campaigns))
	for _, c := range campaigns {
		out = append(out, NewCampaignView(c))
	}
	return out
}

type CampaignDetailView struct {
	Campaign             CampaignView `json:"campaign"`
	ApplicationsCount    int          `json:"applicationsCount"`
	ApprovedDriversCount int          `json:"approvedDriversCount"`
	SpotsLeft            int          `json:"spotsLeft"`
}

func newCampaignDetailView(d *models.CampaignDetail) *CampaignDetailView {
	return &CampaignDetailView{
		Campaign:             NewCampaignView(*d.Campaign),
		ApplicationsCount:    d.ApplicationsCount,
		ApprovedDriversCount: d.ApprovedDriversCount,
		SpotsLeft:            pricing.SpotsLeft(d.Campaign.RequiredDrivers, d.ApplicationsCount),
	}
}

type ApplicationRow struct {
	models.Application
	DriverName string                        `json:"driverName,omitempty"`
	Actions    []lifecycle.ApplicationAction `json:"actions"`
}

// ApplicationsView is a campaign's application list. Statistics always
// cover every application, whatever the filter.
type ApplicationsView struct {
	CampaignID   string                       `json:"campaignId"`
	Filter       string                       `json:"filter,omitempty"`
	Applications []ApplicationRow             `json:"applications"`
	Statistics   models.ApplicationStatistics `json:"statistics"`
}

type MyApplicationRow struct {
	models.Application
	Earnings string                        `json:"earnings,omitempty"`
	Actions  []lifecycle.ApplicationAction `json:"actions"`
}

type MyApplicationsView struct {
	Filter       string                       `json:"filter,omitempty"`
	Applications []MyApplicationRow           `json:"applications"`
	Statistics   models.ApplicationStatistics `json:"statistics"`
}

// BrowseItem is an active campaign as a driver sees it.
type BrowseItem struct {
	models.Campaign
	Days         int                  `json:"days"`
	Duration     string               `json:"duration"`
	Earnings     string               `json:"earnings"`
	Availability pricing.Availability `json:"availability"`
}

func newBrowseItem(c models.Campaign) BrowseItem {
	days := pricing.Days(c.StartDate.Time, c.EndDate.Time)
	return BrowseItem{
		Campaign:     c,
		Days:         days,
		Duration:     pricing.FormatDuration(days),
		Earnings:     pricing.Money(pricing.DriverEarnings(c.PaymentPerDay, c.StartDate.Time, c.EndDate.Time)),
		Availability: pricing.AvailabilityFor(pricing.SpotsLeft(c.RequiredDrivers, c.ApplicationCount())),
	}
}

type BrowseView struct {
	Query     string       `json:"query,omitempty"`
	Total     int          `json:"total"`
	Campaigns []BrowseItem `json:"campaigns"`
}

// matchesQuery is a case-insensitive substring match over the campaign
// name, description and advertiser company.
func matchesQuery(c models.Campaign, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(c.CampaignName), q) ||
		strings.Contains(strings.ToLower(c.Description), q) {
		return true
	}
	return c.Advertiser != nil && strings.Contains(strings.ToLower(c.Advertiser.CompanyName), q)
}

type AdvertiserProfileView struct {
	Mode       string             `json:"mode"`
	Advertiser *models.Advertiser `json:"advertiser,omitempty"`
}

type DriverProfileView struct {
	Mode   string         `json:"mode"`
	Driver *models.Driver `json:"driver,omitempty"`
}

const (
	VehicleFilterAll      = "all"
	VehicleFilterPending  = "pending"
	VehicleFilterVerified = "verified"
)

type VehicleCounts struct {
	All      int `json:"all"`
	Pending  int `json:"pending"`
	Verified int `json:"verified"`
}

type VehiclesView struct {
	Filter   string           `json:"filter"`
	Counts   VehicleCounts    `json:"counts"`
	Vehicles []models.Vehicle `json:"vehicles"`
}

// containsFold reports whether any of fields contains the lower-cased query.
func containsFold(q string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

func userEmail(u *models.UserSummary) string {
	if u == nil {
		return ""
	}
	return u.Email
}

// matchesDriver searches first name, last name, email and city.
func matchesDriver(d models.Driver, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	return q == "" || containsFold(q, d.FirstName, d.LastName, userEmail(d.User), d.City)
}

// matchesAdvertiser searches company, contact person, email, industry and
// city.
func matchesAdvertiser(a models.Advertiser, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	return q == "" || containsFold(q, a.CompanyName, a.ContactPerson, userEmail(a.User), a.Industry, a.City)
}

type DriverCounts struct {
	All          int `json:"all"`
	Verified     int `json:"verified"`
	Pending      int `json:"pending"`
	WithVehicles int `json:"withVehicles"`
}

// DriversView is the admin driver list. Counts cover every driver, not
// only the matches.
type DriversView struct {
	Search  string          `json:"search,omitempty"`
	Counts  DriverCounts    `json:"counts"`
	Drivers []models.Driver `json:"drivers"`
}

type AdvertiserCounts struct {
	All       int `json:"all"`
	Verified  int `json:"verified"`
	Campaigns int `json:"campaigns"`
}

type AdvertisersView struct {
	Search      string              `json:"search,omitempty"`
	Counts      AdvertiserCounts    `json:"counts"`
	Advertisers []models.Advertiser `json:"advertisers"`
}

type CampaignCounts struct {
	All       int `json:"all"`
	Draft     int `json:"draft"`
	Active    int `json:"active"`
	Paused    int `json:"paused"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
}

func (c *CampaignCounts) add(status models.CampaignStatus) {
	c.All++
	switch status {
	case models.CampaignStatusDraft:
		c.Draft++
	case models.CampaignStatusActive:
		c.Active++
	case models.CampaignStatusPaused:
		c.Paused++
	case models.CampaignStatusCompleted:
		c.Completed++
	case models.CampaignStatusCancelled:
		c.Cancelled++
	}
}

// CampaignsView is the admin campaign list. An empty Status means all.
type CampaignsView struct {
	Status    string         `json:"status"`
	Search    string         `json:"search,omitempty"`
	Counts    CampaignCounts `json:"counts"`
	Campaigns []CampaignView `json:"campaigns"`
}

type AuditPage struct {
	Entries []models.AuditEntry `json:"entries"`
	Total   int                 `json:"total"`
	Limit   int                 `json:"limit"`
	Offset  int                 `json:"offset"`
}
