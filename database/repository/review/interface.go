package reviewRepo

import (
	"context"

	"wetopinie/models"
)

// ReviewRepository reads the two physical locations an approved review is
// fanned out to. Writes happen only through the moderation repository's
// transactional path.
type ReviewRepository interface {
	// ListByClinic reads the clinic-scoped copy for one clinic.
	ListByClinic(ctx context.Context, clinicID string) ([]models.Review, error)
	// ListGlobalByClinic reads the flat top-level copy filtered by clinic id.
	ListGlobalByClinic(ctx context.Context, clinicID string) ([]models.Review, error)
	// CountByClinic tallies approved reviews per clinic from the flat copy,
	// used by the review-count reconciliation worker.
	CountByClinic(ctx context.Context) (map[string]int, error)
}
