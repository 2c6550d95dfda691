package domain

import "time"

// Role is the closed set of account roles.
type Role string

const (
	RoleSuperadmin Role = "superadmin"
	RoleAdmin      Role = "admin"
	RoleUser       Role = "user"
)

// Valid reports whether r is one of the enumerated roles.
func (r Role) Valid() bool {
	switch r {
	case RoleSuperadmin, RoleAdmin, RoleUser:
		return true
	}
	return false
}

// Status is the closed set of account statuses.
type Status string

const (
	StatusActive    Status = "active"
	StatusInactive  Status = "inactive"
	StatusSuspended Status = "suspended"
)

// Valid reports whether s is one of the enumerated statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusSuspended:
		return true
	}
	return false
}

// Account models an identity record. The password hash never leaves the
// process: it is excluded from every JSON projection.
type Account struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Status       Status    `json:"status"`
	AccountURL   string    `json:"account_url,omitempty"`
	PhoneNumber  string    `json:"phone_number,omitempty"`
	Website      string    `json:"website,omitempty"`
	Address      string    `json:"address,omitempty"`
	PlanName     string    `json:"plan_name,omitempty"`
	PlanType     string    `json:"plan_type,omitempty"`
	Currency     string    `json:"currency,omitempty"`
	Language     string    `json:"language,omitempty"`
	ProfileImage string    `json:"profile_image,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	CreatedBy    int64     `json:"created_by,omitempty"`
}
