package ports

import (
	"context"

	"github.com/levitica/hr-system/internal/core/domain"
)

type AuthService interface {
	// Authenticate verifies email+password against the store. Unknown email
	// and wrong password both return domain.ErrInvalidCredentials; status is
	// deliberately not checked here.
	Authenticate(ctx context.Context, email, password string) (*domain.Account, error)
	// Login authenticates, rejects non-active accounts, and issues a token.
	Login(ctx context.Context, email, password string) (string, *domain.Account, error)
	// Refresh issues a fresh token for an already-authorized account without
	// re-verifying the password.
	Refresh(account *domain.Account) (string, error)
}
