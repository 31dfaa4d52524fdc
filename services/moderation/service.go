package moderation

import (
	"context"

	moderationRepo "wetopinie/database/repository/moderation"
	pendingRepo "wetopinie/database/repository/pending"
	"wetopinie/models"
)

// Queues bundles the three pending lists for the moderation dashboard.
type Queues struct {
	Clinics []models.PendingClinic `json:"clinics"`
	Edits   []models.PendingEdit   `json:"edits"`
	Reviews []models.PendingReview `json:"reviews"`
}

// ModerationService drives the pending → approved/rejected state machine.
// Each pending item receives exactly one terminal decision; the item's
// deletion is what gates re-processing, there is no lock. Callers must have
// already verified the reviewer's privileged claim.
type ModerationService interface {
	Queues(ctx context.Context) (Queues, error)
	Approve(ctx context.Context, kind models.SubmissionKind, id, reviewer string) error
	Reject(ctx context.Context, kind models.SubmissionKind, id, reviewer string) error
	Log(ctx context.Context) ([]models.AuditEntry, error)
}

// DefaultModerationService is our implementation.
type DefaultModerationService struct {
	Pending pendingRepo.PendingRepository
	Store   moderationRepo.Repository
}

func (s *DefaultModerationService) Queues(ctx context.Context) (Queues, error) {
	clinics, err := s.Pending.ListClinics(ctx)
	if err != nil {
		return Queues{}, err
	}
	edits, err := s.Pending.ListEdits(ctx)
	if err != nil {
		return Queues{}, err
	}
	reviews, err := s.Pending.ListReviews(ctx)
	if err != nil {
		return Queues{}, err
	}
	return Queues{Clinics: clinics, Edits: edits, Reviews: reviews}, nil
}

func (s *DefaultModerationService) Log(ctx context.Context) ([]models.AuditEntry, error) {
	return s.Store.ListLog(ctx)
}
