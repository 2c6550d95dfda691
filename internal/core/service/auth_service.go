package service

import (
	"context"

	"github.com/levitica/hr-system/internal/core/domain"
	"github.com/levitica/hr-system/internal/core/ports"
	"github.com/levitica/hr-system/internal/pkg/password"
	"github.com/levitica/hr-system/internal/pkg/token"
)

// AuthService implements credential verification and the token lifecycle.
type AuthService struct {
	repo   ports.AccountRepository
	hasher *password.Hasher
	codec  *token.Codec
}

func NewAuthService(repo ports.AccountRepository, hasher *password.Hasher, codec *token.Codec) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, codec: codec}
}

// Authenticate verifies email+password and returns the full account on
// success. A missing account and a wrong password are indistinguishable to
// the caller. Status is not checked here: the gate and the login flow own
// that decision.
func (s *AuthService) Authenticate(ctx context.Context, email, pass string) (*domain.Account, error) {
	if email == "" || pass == "" {
		return nil, domain.ErrInvalidCredentials
	}

	account, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrAccountNotFound {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Verify(pass, account.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	return account, nil
}

// Login authenticates and issues a bearer token. Non-active accounts are
// rejected with their status disclosed; this is the one place that leaks
// status on a failed login, kept asymmetric with Authenticate on purpose.
func (s *AuthService) Login(ctx context.Context, email, pass string) (string, *domain.Account, error) {
	account, err := s.Authenticate(ctx, email, pass)
	if err != nil {
		return "", nil, err
	}

	if account.Status != domain.StatusActive {
		return "", nil, &domain.AccountStatusError{Status: account.Status}
	}

	tok, err := s.codec.Issue(account.Email, string(account.Role))
	if err != nil {
		return "", nil, err
	}
	return tok, account, nil
}

// Refresh issues a new token with the same subject and role and a fresh
// expiry. The caller has already been authorized; the password is not
// re-verified.
func (s *AuthService) Refresh(account *domain.Account) (string, error) {
	return s.codec.Issue(account.Email, string(account.Role))
}
