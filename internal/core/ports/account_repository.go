package ports

import (
	"context"

	"github.com/levitica/hr-system/internal/core/domain"
)

// AccountRepository defines the interface for account persistence. Email
// uniqueness is enforced by the store; violations surface as
// domain.ErrEmailTaken.
type AccountRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	FindByID(ctx context.Context, id int64) (*domain.Account, error)
	// ExistsByEmail reports whether an account other than excludeID owns the
	// email. Pass 0 to check against all accounts.
	ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error)
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	Update(ctx context.Context, account *domain.Account) (*domain.Account, error)
	Delete(ctx context.Context, id int64) error
	ListByRole(ctx context.Context, role domain.Role, skip, limit int64) ([]*domain.Account, error)
}
