package models

import (
	"time"
)

type Advertiser struct {
	AdvertiserID    string           `json:"advertiserId"`
	UserID          string           `json:"userId"`
	CompanyName     string           `json:"companyName"`
	ContactPerson   string           `json:"contactPerson,omitempty"`
	PhoneNumber     string           `json:"phoneNumber,omitempty"`
	BusinessAddress string           `json:"businessAddress,omitempty"`
	City            string           `json:"city,omitempty"`
	Industry        string           `json:"industry,omitempty"`
	IsVerified      bool             `json:"isVerified"`
	User            *UserSummary     `json:"user,omitempty"`
	Count           *AdvertiserCount `json:"_count,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

type AdvertiserCount struct {
	Campaigns int `json:"campaigns,omitempty"`
}

type AdvertiserProfileRequest struct {
	CompanyName     string `json:"companyName" validate:"required,min=2,max=255"`
	ContactPerson   string `json:"contactPerson,omitempty" validate:"omitempty,max=255"`
	PhoneNumber     string `json:"phoneNumber,omitempty" validate:"omitempty,max=30"`
	BusinessAddress string `json:"businessAddress,omitempty" validate:"omitempty,max=500"`
	City            string `json:"city,omitempty" validate:"omitempty,max=100"`
	Industry        string `json:"industry,omitempty" validate:"omitempty,max=100"`
}
