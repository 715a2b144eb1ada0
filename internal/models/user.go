package models

import "time"

type UserType string

const (
	UserTypeDriver     UserType = "driver"
	UserTypeAdvertiser UserType = "advertiser"
	UserTypeAdmin      UserType = "admin"
)

type User struct {
	UserID     string    `json:"userId"`
	Email      string    `json:"email"`
	UserType   UserType  `json:"userType"`
	IsActive   bool      `json:"isActive"`
	IsVerified bool      `json:"isVerified"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type UserSummary struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Email       string   `json:"email" validate:"required,email"`
	Password    string   `json:"password" validate:"required,min=8"`
	UserType    UserType `json:"userType" validate:"required,oneof=driver advertiser"`
	FirstName   string   `json:"firstName,omitempty" validate:"required_if=UserType driver"`
	LastName    string   `json:"lastName,omitempty" validate:"required_if=UserType driver"`
	CompanyName string   `json:"companyName,omitempty" validate:"required_if=UserType advertiser"`
}

type AuthUser struct {
	UserID   string   `json:"userId"`
	Email    string   `json:"email"`
	UserType UserType `json:"userType"`
}

type AuthResponse struct {
	Token string   `json:"token"`
	User  AuthUser `json:"user"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	User      AuthUser  `json:"user"`
	ExpiresAt time.Time `json:"expiresAt,omitempty"`
}
