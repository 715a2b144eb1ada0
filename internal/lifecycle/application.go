package lifecycle

import (
	"errors"
	"fmt"

	"wrapads/internal/models"
)

var ErrNotPending = errors.New("application is not pending")

const (
	ApplicationActionApprove = "approve"
	ApplicationActionReject  = "reject"
	ApplicationActionCancel  = "cancel"
)

type ApplicationAction struct {
	Name  string `json:"action"`
	Label string `json:"label"`
}

// CanDecide reports whether an advertiser may approve or reject.
func CanDecide(status models.ApplicationStatus) bool {
	return status == models.ApplicationStatusPending
}

// CanCancel reports whether the applying driver may withdraw.
func CanCancel(status models.ApplicationStatus) bool {
	return status == models.ApplicationStatusPending
}

func CheckDecidable(status models.ApplicationStatus) error {
	if !CanDecide(status) {
		return fmt.Errorf("%w: status is %s", ErrNotPending, status)
	}
	return nil
}

func CheckCancellable(status models.ApplicationStatus) error {
	if !CanCancel(status) {
		return fmt.Errorf("%w: status is %s", ErrNotPending, status)
	}
	return nil
}

// AdvertiserActions are the row actions on a campaign's application list.
func AdvertiserActions(status models.ApplicationStatus) []ApplicationAction {
	if !CanDecide(status) {
		return []ApplicationAction{}
	}
	return []ApplicationAction{
		{Name: ApplicationActionApprove, Label: "Approve"},
		{Name: ApplicationActionReject, Label: "Reject"},
	}
}

// DriverActions are the row actions on a driver's own application list.
func DriverActions(status models.ApplicationStatus) []ApplicationAction {
	if !CanCancel(status) {
		return []ApplicationAction{}
	}
	return []ApplicationAction{{Name: ApplicationActionCancel, Label: "Cancel Application"}}
}

// Tally counts applications by status. Unknown statuses only count toward
// the total.
func Tally(apps []models.Application) models.ApplicationStatistics {
	var stats models.ApplicationStatistics
	for _, a := range apps {
		stats.Total++
		switch a.Status {
		case models.ApplicationStatusPending:
			stats.Pending++
		case models.ApplicationStatusApproved:
			stats.Approved++
		case models.ApplicationStatusRejected:
			stats.Rejected++
		case models.ApplicationStatusActive:
			stats.Active++
		case models.ApplicationStatusCompleted:
			stats.Completed++
		}
	}
	return stats
}

// FindByDriver returns the application of driverID in apps.
func FindByDriver(apps []models.Application, driverID string) (models.Application, bool) {
	for _, a := range apps {
		if a.DriverID == driverID {
			return a, true
		}
	}
	return models.Application{}, false
}

// FindByCampaign returns the application for campaignID in apps.
func FindByCampaign(apps []models.Application, campaignID string) (models.Application, bool) {
	for _, a := range apps {
		if a.CampaignID == campaignID {
			return a, true
		}
	}
	return models.Application{}, false
}
