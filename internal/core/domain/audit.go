package domain

import "time"

// Audit action names.
const (
	AuditActionLogin       = "login"
	AuditActionLogout      = "logout"
	AuditActionRefresh     = "refresh"
	AuditActionAdminCreate = "admin_create"
	AuditActionAdminUpdate = "admin_update"
	AuditActionAdminDelete = "admin_delete"
)

// Audit outcomes.
const (
	AuditOutcomeGranted = "granted"
	AuditOutcomeDenied  = "denied"
)

// AuthEvent is one append-only entry in the authentication audit trail.
type AuthEvent struct {
	Actor      string    `json:"actor"`
	Action     string    `json:"action"`
	Outcome    string    `json:"outcome"`
	Detail     string    `json:"detail,omitempty"`
	RemoteIP   string    `json:"remote_ip,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
