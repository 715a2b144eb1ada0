package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"wrapads/internal/interfaces"
	"wrapads/internal/models"
)

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 500
)

type auditRepository struct {
	db  *sql.DB
	now func() time.Time
}

func NewAuditRepository(db *sql.DB) interfaces.AuditRepository {
	return &auditRepository{db: db, now: time.Now}
}

func (r *auditRepository) Record(ctx context.Context, entry *models.AuditEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = r.now().UTC()
	}

	query := `
		INSERT INTO audit_log (id, actor_id, actor_role, action, resource_type, resource_id, outcome, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.ExecContext(ctx, query,
		entry.ID,
		entry.ActorID,
		string(entry.ActorRole),
		entry.Action,
		entry.ResourceType,
		entry.ResourceID,
		string(entry.Outcome),
		entry.Message,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record audit entry: %w", err)
	}
	return nil
}

func (r *auditRepository) List(ctx context.Context, filter interfaces.AuditFilter) ([]models.AuditEntry, error) {
	where, args := auditWhere(filter)
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultAuditLimit
	}
	if limit > maxAuditLimit {
		limit = maxAuditLimit
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(`
		SELECT id, actor_id, actor_role, action, resource_type, resource_id, outcome, message, created_at
		FROM audit_log
		%s
		ORDER BY created_at DESC, id
		LIMIT $%d OFFSET $%d
	`, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	defer rows.Close()

	entries := make([]models.AuditEntry, 0)
	for rows.Next() {
		var e models.AuditEntry
		var role, outcome string
		if err := rows.Scan(
			&e.ID,
			&e.ActorID,
			&role,
			&e.Action,
			&e.ResourceType,
			&e.ResourceID,
			&outcome,
			&e.Message,
			&e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan audit entry: %w", err)
		}
		e.ActorRole = models.UserType(role)
		e.Outcome = models.AuditOutcome(outcome)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating audit entries: %w", err)
	}

	return entries, nil
}

func (r *auditRepository) Count(ctx context.Context, filter interfaces.AuditFilter) (int, error) {
	where, args := auditWhere(filter)
	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM audit_log "+where, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count audit entries: %w", err)
	}
	return total, nil
}

func auditWhere(filter interfaces.AuditFilter) (string, []interface{}) {
	conditions := []string{}
	args := []interface{}{}

	add := func(column, value string) {
		if value == "" {
			return
		}
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	add("actor_id", filter.ActorID)
	add("action", filter.Action)
	add("resource_type", filter.ResourceType)
	add("resource_id", filter.ResourceID)

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}
