package service

import (
	"context"
	"time"

	"github.com/levitica/hr-system/internal/core/domain"
	"github.com/levitica/hr-system/internal/core/ports"
	"github.com/levitica/hr-system/internal/pkg/password"
)

const defaultListLimit = 100

// AdminService implements superadmin-managed CRUD over admin accounts.
type AdminService struct {
	repo   ports.AccountRepository
	hasher *password.Hasher
}

func NewAdminService(repo ports.AccountRepository, hasher *password.Hasher) *AdminService {
	return &AdminService{repo: repo, hasher: hasher}
}

// Create registers a new admin-role account. The email must not be owned by
// any existing account.
func (s *AdminService) Create(ctx context.Context, in ports.CreateAdminInput, createdBy int64) (*domain.Account, error) {
	taken, err := s.repo.ExistsByEmail(ctx, in.Email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrEmailTaken
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	status := in.Status
	if !status.Valid() {
		status = domain.StatusActive
	}

	now := time.Now().UTC()
	account := &domain.Account{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		Status:       status,
		AccountURL:   in.AccountURL,
		PhoneNumber:  in.PhoneNumber,
		Website:      in.Website,
		Address:      in.Address,
		PlanName:     in.PlanName,
		PlanType:     in.PlanType,
		Currency:     in.Currency,
		Language:     in.Language,
		ProfileImage: in.ProfileImage,
		CreatedAt:    now,
		UpdatedAt:    now,
		CreatedBy:    createdBy,
	}

	return s.repo.Create(ctx, account)
}

// List returns admin-role accounts ordered by id.
func (s *AdminService) List(ctx context.Context, skip, limit int64) ([]*domain.Account, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 || limit > defaultListLimit {
		limit = defaultListLimit
	}
	return s.repo.ListByRole(ctx, domain.RoleAdmin, skip, limit)
}

// GetByID returns the admin with the given id. Accounts with any other role
// are reported as not found rather than disclosed.
func (s *AdminService) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	account, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == domain.ErrAccountNotFound {
			return nil, domain.ErrAdminNotFound
		}
		return nil, err
	}
	if account.Role != domain.RoleAdmin {
		return nil, domain.ErrAdminNotFound
	}
	return account, nil
}

// Update modifies an admin account. Changing the email to one owned by a
// different account fails with domain.ErrEmailTaken; keeping the current
// email is always allowed. An empty password keeps the stored hash.
func (s *AdminService) Update(ctx context.Context, id int64, in ports.UpdateAdminInput) (*domain.Account, error) {
	account, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Email != account.Email {
		taken, err := s.repo.ExistsByEmail(ctx, in.Email, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, domain.ErrEmailTaken
		}
	}

	account.Name = in.Name
	account.Email = in.Email
	account.AccountURL = in.AccountURL
	account.PhoneNumber = in.PhoneNumber
	account.Website = in.Website
	account.Address = in.Address
	account.PlanName = in.PlanName
	account.PlanType = in.PlanType
	account.Currency = in.Currency
	account.Language = in.Language
	account.ProfileImage = in.ProfileImage
	if in.Status.Valid() {
		account.Status = in.Status
	}
	if in.Password != "" {
		hash, err := s.hasher.Hash(in.Password)
		if err != nil {
			return nil, err
		}
		account.PasswordHash = hash
	}
	account.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, account)
}

// Delete removes an admin account.
func (s *AdminService) Delete(ctx context.Context, id int64) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
