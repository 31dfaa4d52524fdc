package moderationRepo

import (
	"context"

	"wetopinie/models"
)

// Repository performs the write side of moderation decisions. The approval
// writes are all-or-nothing: partial application must never be observable.
// Writes are keyed by id so a retry after a crash between commit and pending
// deletion re-applies cleanly.
type Repository interface {
	// UpsertClinic writes an approved new clinic at its pending id.
	UpsertClinic(ctx context.Context, clinic *models.Clinic) error
	// MergeClinic patches an existing clinic with the approved edit fields.
	MergeClinic(ctx context.Context, clinicID string, fields map[string]any) error
	// UpsertReview writes one approved review to both the clinic-scoped and
	// the flat location under the same id, in a single transaction.
	UpsertReview(ctx context.Context, review *models.Review) error

	// AppendLog appends one audit entry. Entries are never mutated.
	AppendLog(ctx context.Context, entry *models.AuditEntry) error
	// ListLog returns the audit log, newest first.
	ListLog(ctx context.Context) ([]models.AuditEntry, error)
}
