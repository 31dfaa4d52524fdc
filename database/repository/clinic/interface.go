package clinicRepo

import (
	"context"

	"wetopinie/models"
)

// ClinicRepository defines methods for clinic data access. All reads pass
// through the normalization adapter, so callers only ever see the canonical
// Clinic shape regardless of the stored document's vintage.
type ClinicRepository interface {
	// GetAll retrieves all clinics.
	GetAll(ctx context.Context) ([]models.Clinic, error)
	// GetByID retrieves a clinic by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Clinic, error)
	// Create inserts a new clinic record.
	Create(ctx context.Context, clinic *models.Clinic) error
	// Merge patches the clinic with the given fields, leaving others intact.
	Merge(ctx context.Context, id string, fields map[string]any) error
	// Delete removes a clinic record by its ID.
	Delete(ctx context.Context, id string) error
	// SetReviewsCount writes the denormalized review counter.
	SetReviewsCount(ctx context.Context, id string, count int) error
}
