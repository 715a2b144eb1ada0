package models

import "time"

type VehicleType string

const (
	VehicleTypeSedan     VehicleType = "sedan"
	VehicleTypeSUV       VehicleType = "suv"
	VehicleTypeVan       VehicleType = "van"
	VehicleTypeTruck     VehicleType = "truck"
	VehicleTypeHatchback VehicleType = "hatchback"
)

type SizeCategory string

const (
	SizeSmall  SizeCategory = "small"
	SizeMedium SizeCategory = "medium"
	SizeLarge  SizeCategory = "large"
)

type Driver struct {
	DriverID                string       `json:"driverId"`
	UserID                  string       `json:"userId"`
	FirstName               string       `json:"firstName"`
	LastName                string       `json:"lastName"`
	PhoneNumber             string       `json:"phoneNumber,omitempty"`
	DateOfBirth             *Date        `json:"dateOfBirth,omitempty"`
	DriversLicenseNumber    string       `json:"driversLicenseNumber,omitempty"`
	City                    string       `json:"city,omitempty"`
	Region                  string       `json:"region,omitempty"`
	AverageRating           Amount       `json:"averageRating"`
	TotalCampaignsCompleted int          `json:"totalCampaignsCompleted"`
	IsVerified              bool         `json:"isVerified"`
	Vehicles                []Vehicle    `json:"vehicles,omitempty"`
	User                    *UserSummary `json:"user,omitempty"`
	Count                   *DriverCount `json:"_count,omitempty"`
	CreatedAt               time.Time    `json:"createdAt"`
	UpdatedAt               time.Time    `json:"updatedAt"`
}

// DriverCount is attached to admin listings.
type DriverCount struct {
	Vehicles        int `json:"vehicles,omitempty"`
	DriverCampaigns int `json:"driverCampaigns,omitempty"`
}

// VehicleCount prefers the listing count and falls back to the embedded
// vehicles.
func (d Driver) VehicleCount() int {
	if d.Count != nil {
		return d.Count.Vehicles
	}
	return len(d.Vehicles)
}

type DriverProfileRequest struct {
	FirstName            string `json:"firstName" validate:"required,max=100"`
	LastName             string `json:"lastName" validate:"required,max=100"`
	PhoneNumber          string `json:"phoneNumber,omitempty" validate:"omitempty,max=30"`
	DateOfBirth          *Date  `json:"dateOfBirth,omitempty"`
	DriversLicenseNumber string `json:"driversLicenseNumber,omitempty" validate:"omitempty,max=50"`
	City                 string `json:"city,omitempty" validate:"omitempty,max=100"`
	Region               string `json:"region,omitempty" validate:"omitempty,max=100"`
}

type Vehicle struct {
	VehicleID          string        `json:"vehicleId"`
	DriverID           string        `json:"driverId"`
	Make               string        `json:"make"`
	Model              string        `json:"model"`
	Year               int           `json:"year"`
	Color              string        `json:"color,omitempty"`
	RegistrationNumber string        `json:"registrationNumber"`
	VehicleType        VehicleType   `json:"vehicleType,omitempty"`
	SizeCategory       SizeCategory  `json:"sizeCategory,omitempty"`
	PhotoURL           string        `json:"photoUrl,omitempty"`
	IsVerified         bool          `json:"isVerified"`
	Driver             *VehicleOwner `json:"driver,omitempty"`
	CreatedAt          time.Time     `json:"createdAt"`
}

type VehicleOwner struct {
	DriverID  string       `json:"driverId"`
	FirstName string       `json:"firstName"`
	LastName  string       `json:"lastName"`
	User      *UserSummary `json:"user,omitempty"`
}

type VehicleSummary struct {
	VehicleID   string `json:"vehicleId"`
	Make        string `json:"make"`
	Model       string `json:"model"`
	Year        int    `json:"year"`
	VehicleType string `json:"vehicleType,omitempty"`
	IsVerified  bool   `json:"isVerified"`
}

type VehicleRequest struct {
	Make               string       `json:"make" validate:"required,max=50"`
	Model              string       `json:"model" validate:"required,max=50"`
	Year               int          `json:"year" validate:"required,min=1950,max=2100"`
	Color              string       `json:"color,omitempty" validate:"omitempty,max=30"`
	RegistrationNumber string       `json:"registrationNumber" validate:"required,max=20"`
	VehicleType        VehicleType  `json:"vehicleType,omitempty" validate:"omitempty,oneof=sedan suv van truck hatchback"`
	SizeCategory       SizeCategory `json:"sizeCategory,omitempty" validate:"omitempty,oneof=small medium large"`
}
