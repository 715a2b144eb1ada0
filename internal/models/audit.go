package models

import "time"

type AuditOutcome string

const (
	AuditOutcomeSuccess AuditOutcome = "success"
	AuditOutcomeFailure AuditOutcome = "failure"
)

// AuditEntry records one mutating action performed through the console.
type AuditEntry struct {
	ID           string       `json:"id"`
	ActorID      string       `json:"actorId"`
	ActorRole    UserType     `json:"actorRole"`
	Action       string       `json:"action"`
	ResourceType string       `json:"resourceType"`
	ResourceID   string       `json:"resourceId"`
	Outcome      AuditOutcome `json:"outcome"`
	Message      string       `json:"message,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
}
