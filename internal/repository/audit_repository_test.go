package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"wrapads/internal/interfaces"
	"wrapads/internal/models"
)

func newAuditRepo(t *testing.T) (*auditRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	repo := &auditRepository{db: db, now: func() time.Time {
		return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	}}
	return repo, mock
}

func TestAuditRepository_Record(t *testing.T) {
	repo, mock := newAuditRepo(t)

	entry := &models.AuditEntry{
		ActorID:      "u1",
		ActorRole:    models.UserTypeAdvertiser,
		Action:       "campaign.pause",
		ResourceType: "campaign",
		ResourceID:   "c1",
		Outcome:      models.AuditOutcomeSuccess,
		Message:      "Campaign paused",
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO audit_log")).
		WithArgs(sqlmock.AnyArg(), "u1", "advertiser", "campaign.pause", "campaign", "c1", "success", "Campaign paused",
			time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Record(context.Background(), entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.ID == "" {
		t.Fatal("expected generated id")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAuditRepository_RecordError(t *testing.T) {
	repo, mock := newAuditRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO audit_log")).WillReturnError(errors.New("db down"))

	err := repo.Record(context.Background(), &models.AuditEntry{ID: "a1", Outcome: models.AuditOutcomeFailure})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestAuditRepository_List(t *testing.T) {
	repo, mock := newAuditRepo(t)
	created := time.Date(2025, 2, 1, 9, 30, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "actor_id", "actor_role", "action", "resource_type", "resource_id", "outcome", "message", "created_at"}).
		AddRow("a2", "u1", "admin", "vehicle.verify", "vehicle", "v1", "success", "Vehicle verified", created).
		AddRow("a1", "u1", "admin", "driver.verify", "driver", "d1", "failure", "Driver not found", created.Add(-time.Hour))

	mock.ExpectQuery(regexp.QuoteMeta("FROM audit_log")).
		WithArgs("u1", 50, 0).
		WillReturnRows(rows)

	got, err := repo.List(context.Background(), interfaces.AuditFilter{ActorID: "u1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0].ActorRole != models.UserTypeAdmin || got[1].Outcome != models.AuditOutcomeFailure {
		t.Fatalf("unexpected entries: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAuditRepository_ListClampsLimit(t *testing.T) {
	repo, mock := newAuditRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("LIMIT $1 OFFSET $2")).
		WithArgs(maxAuditLimit, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	got, err := repo.List(context.Background(), interfaces.AuditFilter{Limit: 10000, Offset: -4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestAuditRepository_Count(t *testing.T) {
	repo, mock := newAuditRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM audit_log WHERE action = $1 AND resource_type = $2")).
		WithArgs("campaign.delete", "campaign").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	total, err := repo.Count(context.Background(), interfaces.AuditFilter{Action: "campaign.delete", ResourceType: "campaign"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 7 {
		t.Fatalf("expected 7, got %d", total)
	}
}
