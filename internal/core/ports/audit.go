package ports

import (
	"context"

	"github.com/levitica/hr-system/internal/core/domain"
)

// AuditRepository persists audit trail entries.
type AuditRepository interface {
	Insert(ctx context.Context, event domain.AuthEvent) error
}

// AuditRecorder accepts audit events for asynchronous persistence. Record
// must never block the calling request.
type AuditRecorder interface {
	Record(event domain.AuthEvent)
}
