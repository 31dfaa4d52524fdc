package pendingRepo

import (
	"context"
	"errors"

	"wetopinie/models"
)

// ErrNoPendingItem marks a lookup or delete that matched no queued item.
// Store failures are never wrapped in it, so callers can tell an
// already-decided item from an unreachable store.
var ErrNoPendingItem = errors.New("pending item not found")

// PendingRepository defines access to the three moderation queues. Pending
// items are created by public submissions and removed by exactly one
// moderation decision; they are never mutated in place.
type PendingRepository interface {
	ListClinics(ctx context.Context) ([]models.PendingClinic, error)
	ListEdits(ctx context.Context) ([]models.PendingEdit, error)
	ListReviews(ctx context.Context) ([]models.PendingReview, error)

	GetClinic(ctx context.Context, id string) (*models.PendingClinic, error)
	GetEdit(ctx context.Context, id string) (*models.PendingEdit, error)
	GetReview(ctx context.Context, id string) (*models.PendingReview, error)

	CreateClinic(ctx context.Context, item *models.PendingClinic) error
	CreateEdit(ctx context.Context, item *models.PendingEdit) error
	CreateReview(ctx context.Context, item *models.PendingReview) error

	// Delete removes a pending item from the named queue.
	Delete(ctx context.Context, kind models.SubmissionKind, id string) error
}
