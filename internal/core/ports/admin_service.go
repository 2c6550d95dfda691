package ports

import (
	"context"

	"github.com/levitica/hr-system/internal/core/domain"
)

// CreateAdminInput carries the fields accepted when creating an admin
// account. Role is not part of the input: created accounts are always
// admin-role.
type CreateAdminInput struct {
	Name         string
	Email        string
	Password     string
	AccountURL   string
	PhoneNumber  string
	Website      string
	Address      string
	PlanName     string
	PlanType     string
	Currency     string
	Language     string
	Status       domain.Status
	ProfileImage string
}

// UpdateAdminInput carries the fields accepted when updating an admin
// account. An empty Password keeps the current one.
type UpdateAdminInput struct {
	Name         string
	Email        string
	Password     string
	AccountURL   string
	PhoneNumber  string
	Website      string
	Address      string
	PlanName     string
	PlanType     string
	Currency     string
	Language     string
	Status       domain.Status
	ProfileImage string
}

type AdminService interface {
	Create(ctx context.Context, in CreateAdminInput, createdBy int64) (*domain.Account, error)
	List(ctx context.Context, skip, limit int64) ([]*domain.Account, error)
	GetByID(ctx context.Context, id int64) (*domain.Account, error)
	Update(ctx context.Context, id int64, in UpdateAdminInput) (*domain.Account, error)
	Delete(ctx context.Context, id int64) error
}
