package handler

import (
	"github.com/levitica/hr-system/internal/core/domain"
	"github.com/levitica/hr-system/internal/core/ports"
)

// createAdminRequest is the payload for POST /v1/superadmin/admins.
type createAdminRequest struct {
	Name            string `json:"name" validate:"required,max=255"`
	Email           string `json:"email" validate:"required,email"`
	AccountURL      string `json:"account_url" validate:"omitempty,max=255"`
	PhoneNumber     string `json:"phone_number" validate:"required"`
	Website         string `json:"website" validate:"omitempty,max=255"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
	Address         string `json:"address" validate:"omitempty,max=500"`
	PlanName        string `json:"plan_name" validate:"required"`
	PlanType        string `json:"plan_type" validate:"required"`
	Currency        string `json:"currency"`
	Language        string `json:"language"`
	Status          string `json:"status" validate:"omitempty,oneof=active inactive suspended"`
	ProfileImage    string `json:"profile_image"`
}

// updateAdminRequest is the payload for PUT /v1/superadmin/admins/:id.
// Password is optional: empty keeps the current one.
type updateAdminRequest struct {
	Name         string `json:"name" validate:"required,max=255"`
	Email        string `json:"email" validate:"required,email"`
	AccountURL   string `json:"account_url" validate:"omitempty,max=255"`
	PhoneNumber  string `json:"phone_number" validate:"required"`
	Website      string `json:"website" validate:"omitempty,max=255"`
	Password     string `json:"password" validate:"omitempty,min=8"`
	Address      string `json:"address" validate:"omitempty,max=500"`
	PlanName     string `json:"plan_name" validate:"required"`
	PlanType     string `json:"plan_type" validate:"required"`
	Currency     string `json:"currency"`
	Language     string `json:"language"`
	Status       string `json:"status" validate:"required,oneof=active inactive suspended"`
	ProfileImage string `json:"profile_image"`
}

func (r createAdminRequest) toInput() ports.CreateAdminInput {
	currency := r.Currency
	if currency == "" {
		currency = "USD"
	}
	language := r.Language
	if language == "" {
		language = "English"
	}
	return ports.CreateAdminInput{
		Name:         r.Name,
		Email:        r.Email,
		Password:     r.Password,
		AccountURL:   r.AccountURL,
		PhoneNumber:  r.PhoneNumber,
		Website:      r.Website,
		Address:      r.Address,
		PlanName:     r.PlanName,
		PlanType:     r.PlanType,
		Currency:     currency,
		Language:     language,
		Status:       domain.Status(r.Status),
		ProfileImage: r.ProfileImage,
	}
}

func (r updateAdminRequest) toInput() ports.UpdateAdminInput {
	return ports.UpdateAdminInput{
		Name:         r.Name,
		Email:        r.Email,
		Password:     r.Password,
		AccountURL:   r.AccountURL,
		PhoneNumber:  r.PhoneNumber,
		Website:      r.Website,
		Address:      r.Address,
		PlanName:     r.PlanName,
		PlanType:     r.PlanType,
		Currency:     r.Currency,
		Language:     r.Language,
		Status:       domain.Status(r.Status),
		ProfileImage: r.ProfileImage,
	}
}
