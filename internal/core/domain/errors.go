package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials covers unknown email and wrong password alike, so
	// callers can never tell whether an account exists.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAccountNotFound is returned by the account store for a missing id or email.
	ErrAccountNotFound = errors.New("account not found")

	// ErrAdminNotFound is returned when an admin-management operation targets
	// an id that is absent or not an admin-role account.
	ErrAdminNotFound = errors.New("admin not found")

	// ErrEmailTaken is returned when an email is already owned by a different account.
	ErrEmailTaken = errors.New("email already registered")
)

// AccountStatusError reports a resolved account whose status blocks access.
// Unlike token failures, this deliberately discloses the current status.
type AccountStatusError struct {
	Status Status
}

func (e *AccountStatusError) Error() string {
	return fmt.Sprintf("account is %s", e.Status)
}
