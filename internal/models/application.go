package models

import (
	"fmt"
	"time"
)

type ApplicationStatus string

const (
	ApplicationStatusPending   ApplicationStatus = "pending"
	ApplicationStatusApproved  ApplicationStatus = "approved"
	ApplicationStatusRejected  ApplicationStatus = "rejected"
	ApplicationStatusActive    ApplicationStatus = "active"
	ApplicationStatusCompleted ApplicationStatus = "completed"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusApproved, ApplicationStatusRejected,
		ApplicationStatusActive, ApplicationStatusCompleted:
		return true
	}
	return false
}

func ParseApplicationStatus(s string) (ApplicationStatus, error) {
	status := ApplicationStatus(s)
	if !status.Valid() {
		return "", fmt.Errorf("unknown application status: %q", s)
	}
	return status, nil
}

// Application is the driver-campaign association, with the nested campaign
// and driver the backend embeds in listings.
type Application struct {
	DriverCampaignID string               `json:"driverCampaignId"`
	DriverID         string               `json:"driverId"`
	CampaignID       string               `json:"campaignId"`
	Status           ApplicationStatus    `json:"status"`
	MatchScore       Amount               `json:"matchScore"`
	AppliedAt        time.Time            `json:"appliedAt"`
	ApprovedAt       *time.Time           `json:"approvedAt,omitempty"`
	RejectionReason  string               `json:"rejectionReason,omitempty"`
	Campaign         *ApplicationCampaign `json:"campaign,omitempty"`
	Driver           *ApplicationDriver   `json:"driver,omitempty"`
}

type ApplicationCampaign struct {
	CampaignID    string             `json:"campaignId"`
	CampaignName  string             `json:"campaignName"`
	Description   string             `json:"description,omitempty"`
	Status        CampaignStatus     `json:"status"`
	StartDate     Date               `json:"startDate"`
	EndDate       Date               `json:"endDate"`
	PaymentPerDay Amount             `json:"paymentPerDay"`
	Advertiser    *AdvertiserSummary `json:"advertiser,omitempty"`
}

type ApplicationDriver struct {
	DriverID                string           `json:"driverId"`
	FirstName               string           `json:"firstName"`
	LastName                string           `json:"lastName"`
	PhoneNumber             string           `json:"phoneNumber,omitempty"`
	City                    string           `json:"city,omitempty"`
	AverageRating           Amount           `json:"averageRating"`
	TotalCampaignsCompleted int              `json:"totalCampaignsCompleted,omitempty"`
	IsVerified              bool             `json:"isVerified"`
	Vehicles                []VehicleSummary `json:"vehicles,omitempty"`
	User                    *UserSummary     `json:"user,omitempty"`
}

func (d *ApplicationDriver) FullName() string {
	return d.FirstName + " " + d.LastName
}

// ApplicationStatistics counts applications by status.
type ApplicationStatistics struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Approved  int `json:"approved"`
	Rejected  int `json:"rejected"`
	Active    int `json:"active"`
	Completed int `json:"completed"`
}

// CampaignApplications is the payload of GET /campaigns/{id}/applications.
type CampaignApplications struct {
	Data       []Application          `json:"data"`
	Statistics *ApplicationStatistics `json:"statistics,omitempty"`
}

type RejectApplicationRequest struct {
	Reason string `json:"reason,omitempty"`
}
