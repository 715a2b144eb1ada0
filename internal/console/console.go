// Package console composes the marketplace client with the status rules,
// form validation and the mutation workflow. Each role gets its own
// console; handlers only translate HTTP to and from these calls.
package console

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"wrapads/internal/interfaces"
	"wrapads/internal/metrics"
	"wrapads/internal/models"
	"wrapads/internal/services"
	"wrapads/internal/session"
	"wrapads/internal/workflow"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrCampaignFull      = errors.New("campaign is fully booked")
	ErrCampaignNotActive = errors.New("campaign is not accepting applications")
	ErrNotDeletable      = errors.New("only draft campaigns can be deleted")
	ErrAlreadyVerified   = errors.New("already verified")
)

// ActionError is a mutation the marketplace refused or that failed in
// transit. Message is the text shown to the user.
type ActionError struct {
	Message string
	Err     error
}

func (e *ActionError) Error() string { return e.Message }

func (e *ActionError) Unwrap() error { return e.Err }

// ActionResult is a settled, successful mutation: the notice to show and
// the re-fetched resource, nil when re-fetching failed.
type ActionResult struct {
	Notice workflow.Notice `json:"notice"`
	Data   any             `json:"data,omitempty"`
}

// Deps are shared by every console.
type Deps struct {
	Audit   interfaces.AuditRepository
	Tracker *workflow.Tracker
	Logger  *zap.Logger
}

type core struct {
	audit  interfaces.AuditRepository
	runner *workflow.Runner
	logger *zap.Logger
}

func newCore(d Deps) core {
	tracker := d.Tracker
	if tracker == nil {
		tracker = workflow.NewTracker()
	}
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return core{
		audit:  d.Audit,
		runner: workflow.NewRunner(tracker, services.ErrorMessage),
		logger: logger,
	}
}

type mutation struct {
	name         string
	resourceType string
	resourceID   string
	key          string
	success      string
	failure      string
	mutate       func(ctx context.Context) error
	refetch      func(ctx context.Context) (any, error)
	// createdID names the resource a successful create produced.
	createdID func() string
}

func (c core) run(ctx context.Context, m mutation) (*ActionResult, error) {
	actor, err := session.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	var data any
	step := workflow.Step{Key: m.key, Success: m.success, Failure: m.failure, Mutate: m.mutate}
	if m.refetch != nil {
		step.Refetch = func(ctx context.Context) error {
			v, err := m.refetch(ctx)
			if err != nil {
				return err
			}
			data = v
			return nil
		}
	}

	res, err := c.runner.Run(ctx, step)
	if err != nil {
		metrics.RecordAction(m.name, "in_flight")
		return nil, err
	}

	outcome := models.AuditOutcomeSuccess
	if res.Err != nil {
		outcome = models.AuditOutcomeFailure
	}
	metrics.RecordAction(m.name, string(outcome))
	if res.Err == nil && m.createdID != nil {
		m.resourceID = m.createdID()
	}
	c.record(ctx, actor, m, outcome, res.Notice.Message)

	if res.Err != nil {
		c.logger.Warn("console action failed",
			zap.String("action", m.name),
			zap.String("resource_id", m.resourceID),
			zap.Error(res.Err),
		)
		return nil, &ActionError{Message: res.Notice.Message, Err: res.Err}
	}
	if res.RefetchErr != nil {
		c.logger.Warn("refetch after action failed",
			zap.String("action", m.name),
			zap.String("resource_id", m.resourceID),
			zap.Error(res.RefetchErr),
		)
	}
	return &ActionResult{Notice: res.Notice, Data: data}, nil
}

// record appends to the audit log. Failures are logged and dropped.
func (c core) record(ctx context.Context, actor *session.Session, m mutation, outcome models.AuditOutcome, message string) {
	if c.audit == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
	defer cancel()

	entry := &models.AuditEntry{
		ActorID:      actor.User.UserID,
		ActorRole:    actor.User.UserType,
		Action:       m.name,
		ResourceType: m.resourceType,
		ResourceID:   m.resourceID,
		Outcome:      outcome,
		Message:      message,
	}
	if err := c.audit.Record(ctx, entry); err != nil {
		c.logger.Error("failed to record audit entry",
			zap.String("action", m.name),
			zap.String("resource_id", m.resourceID),
			zap.Error(err),
		)
	}
}

// actorKey scopes an in-flight key to the signed-in user so two users
// acting on the same resource never block each other.
func actorKey(ctx context.Context, prefix, resourceID string) (string, error) {
	s, err := session.FromContext(ctx)
	if err != nil {
		return "", err
	}
	if s.User.UserID == "" {
		return "", session.ErrNoSession
	}
	return prefix + ":" + s.User.UserID + ":" + resourceID, nil
}

func actorID(ctx context.Context) string {
	s, err := session.FromContext(ctx)
	if err != nil {
		return ""
	}
	return s.User.UserID
}

func statusLabel(s string) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
