package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/levitica/hr-system/internal/core/domain"
	"github.com/levitica/hr-system/internal/pkg/password"
	"github.com/levitica/hr-system/internal/pkg/token"
)

type stubAccountRepo struct {
	accounts map[int64]*domain.Account
	nextID   int64
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{accounts: make(map[int64]*domain.Account)}
}

func cloneAccount(a *domain.Account) *domain.Account {
	if a == nil {
		return nil
	}
	clone := *a
	return &clone
}

func (r *stubAccountRepo) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	for _, a := range r.accounts {
		if a.Email == email {
			return cloneAccount(a), nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (r *stubAccountRepo) FindByID(_ context.Context, id int64) (*domain.Account, error) {
	if a, ok := r.accounts[id]; ok {
		return cloneAccount(a), nil
	}
	return nil, domain.ErrAccountNotFound
}

func (r *stubAccountRepo) ExistsByEmail(_ context.Context, email string, excludeID int64) (bool, error) {
	for _, a := range r.accounts {
		if a.Email == email && a.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubAccountRepo) Create(_ context.Context, account *domain.Account) (*domain.Account, error) {
	for _, a := range r.accounts {
		if a.Email == account.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	r.nextID++
	copy := cloneAccount(account)
	copy.ID = r.nextID
	r.accounts[copy.ID] = cloneAccount(copy)
	return copy, nil
}

func (r *stubAccountRepo) Update(_ context.Context, account *domain.Account) (*domain.Account, error) {
	if _, ok := r.accounts[account.ID]; !ok {
		return nil, domain.ErrAccountNotFound
	}
	for _, a := range r.accounts {
		if a.Email == account.Email && a.ID != account.ID {
			return nil, domain.ErrEmailTaken
		}
	}
	r.accounts[account.ID] = cloneAccount(account)
	return cloneAccount(account), nil
}

func (r *stubAccountRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.accounts[id]; !ok {
		return domain.ErrAccountNotFound
	}
	delete(r.accounts, id)
	return nil
}

func (r *stubAccountRepo) ListByRole(_ context.Context, role domain.Role, skip, limit int64) ([]*domain.Account, error) {
	var out []*domain.Account
	for id := int64(1); id <= r.nextID; id++ {
		a, ok := r.accounts[id]
		if !ok || a.Role != role {
			continue
		}
		out = append(out, cloneAccount(a))
	}
	if skip > int64(len(out)) {
		skip = int64(len(out))
	}
	out = out[skip:]
	if limit < int64(len(out)) {
		out = out[:limit]
	}
	return out, nil
}

func testHasher() *password.Hasher {
	return password.NewHasher(bcrypt.MinCost, zerolog.Nop())
}

func seedAccount(t *testing.T, repo *stubAccountRepo, email, pass string, role domain.Role, status domain.Status) *domain.Account {
	t.Helper()
	hash, err := testHasher().Hash(pass)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	account, err := repo.Create(context.Background(), &domain.Account{
		Name:         "Test Account",
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Status:       status,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("seed account: %v", err)
	}
	return account
}

func newAuthService(repo *stubAccountRepo) (*AuthService, *token.Codec) {
	codec := token.NewCodec("secret", time.Hour)
	return NewAuthService(repo, testHasher(), codec), codec
}

func TestAuthService_Authenticate_Success(t *testing.T) {
	repo := newStubAccountRepo()
	seedAccount(t, repo, "carol@example.com", "s3cret99", domain.RoleAdmin, domain.StatusActive)
	svc, _ := newAuthService(repo)

	account, err := svc.Authenticate(context.Background(), "carol@example.com", "s3cret99")
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}
	if account.Email != "carol@example.com" {
		t.Fatalf("unexpected account: %+v", account)
	}
}

func TestAuthService_Authenticate_WrongPassword(t *testing.T) {
	repo := newStubAccountRepo()
	seedAccount(t, repo, "dave@example.com", "goodpass", domain.RoleAdmin, domain.StatusActive)
	svc, _ := newAuthService(repo)

	if _, err := svc.Authenticate(context.Background(), "dave@example.com", "badpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Authenticate_UnknownEmail(t *testing.T) {
	repo := newStubAccountRepo()
	svc, _ := newAuthService(repo)

	// Unknown email must be indistinguishable from a wrong password.
	if _, err := svc.Authenticate(context.Background(), "ghost@example.com", "secret123"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Authenticate_EmptyInput(t *testing.T) {
	repo := newStubAccountRepo()
	svc, _ := newAuthService(repo)

	if _, err := svc.Authenticate(context.Background(), "", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubAccountRepo()
	seedAccount(t, repo, "carol@example.com", "s3cret99", domain.RoleSuperadmin, domain.StatusActive)
	svc, codec := newAuthService(repo)

	tok, account, err := svc.Login(context.Background(), "carol@example.com", "s3cret99")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if account == nil || account.Email != "carol@example.com" {
		t.Fatalf("unexpected account: %+v", account)
	}

	claims, err := codec.Decode(tok)
	if err != nil {
		t.Fatalf("issued token invalid: %v", err)
	}
	if claims.Subject != "carol@example.com" {
		t.Fatalf("unexpected token subject: %s", claims.Subject)
	}
	if claims.Role != string(domain.RoleSuperadmin) {
		t.Fatalf("unexpected token role: %s", claims.Role)
	}
}

func TestAuthService_Login_NonActiveAccount(t *testing.T) {
	repo := newStubAccountRepo()
	seedAccount(t, repo, "erin@example.com", "s3cret99", domain.RoleAdmin, domain.StatusSuspended)
	svc, _ := newAuthService(repo)

	_, _, err := svc.Login(context.Background(), "erin@example.com", "s3cret99")
	var statusErr *domain.AccountStatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected AccountStatusError, got %v", err)
	}
	if statusErr.Status != domain.StatusSuspended {
		t.Fatalf("expected suspended status, got %s", statusErr.Status)
	}
}

func TestAuthService_Refresh(t *testing.T) {
	repo := newStubAccountRepo()
	account := seedAccount(t, repo, "carol@example.com", "s3cret99", domain.RoleAdmin, domain.StatusActive)
	svc, codec := newAuthService(repo)

	tok, err := svc.Refresh(account)
	if err != nil {
		t.Fatalf("Refresh returned error: %v", err)
	}

	claims, err := codec.Decode(tok)
	if err != nil {
		t.Fatalf("refreshed token invalid: %v", err)
	}
	if claims.Subject != account.Email || claims.Role != string(account.Role) {
		t.Fatalf("refreshed token carries wrong identity: %+v", claims)
	}
}
