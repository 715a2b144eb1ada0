package interfaces

import (
	"context"

	"wrapads/internal/models"
)

// AuditFilter narrows an audit listing. Empty fields match everything.
type AuditFilter struct {
	ActorID      string
	Action       string
	ResourceType string
	ResourceID   string
	Limit        int
	Offset       int
}

// AuditRepository stores the console's record of mutating actions
type AuditRepository interface {
	Record(ctx context.Context, entry *models.AuditEntry) error
	List(ctx context.Context, filter AuditFilter) ([]models.AuditEntry, error)
	Count(ctx context.Context, filter AuditFilter) (int, error)
}
