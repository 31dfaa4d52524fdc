package submissions

import (
	"context"
	"fmt"
	"time"

	clinicRepo "wetopinie/database/repository/clinic"
	pendingRepo "wetopinie/database/repository/pending"
	"wetopinie/models"

	"github.com/google/uuid"
)

// SubmissionService accepts public new-clinic and edit proposals into the
// moderation queues. Review submissions go through the review service, which
// also maintains the optimistic overlay.
type SubmissionService interface {
	SubmitClinic(ctx context.Context, item models.PendingClinic) (models.PendingClinic, error)
	SubmitEdit(ctx context.Context, item models.PendingEdit) (models.PendingEdit, error)
}

// DefaultSubmissionService is our implementation.
type DefaultSubmissionService struct {
	Pending pendingRepo.PendingRepository
	Clinics clinicRepo.ClinicRepository
}

func (s *DefaultSubmissionService) SubmitClinic(ctx context.Context, item models.PendingClinic) (models.PendingClinic, error) {
	if item.Name == "" || item.City == "" {
		return models.PendingClinic{}, fmt.Errorf("clinic submission requires a name and a city")
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	item.SubmittedAt = time.Now()
	if err := s.Pending.CreateClinic(ctx, &item); err != nil {
		return models.PendingClinic{}, fmt.Errorf("failed to submit clinic: %w", err)
	}
	return item, nil
}

// SubmitEdit snapshots the prior values of every proposed field so moderators
// see a before/after diff even if the clinic changes again meanwhile.
func (s *DefaultSubmissionService) SubmitEdit(ctx context.Context, item models.PendingEdit) (models.PendingEdit, error) {
	if item.ClinicID == "" {
		return models.PendingEdit{}, fmt.Errorf("edit submission requires a clinic id")
	}
	if len(item.Fields) == 0 {
		return models.PendingEdit{}, fmt.Errorf("edit submission proposes no changes")
	}

	// Only whitelisted clinic fields may be proposed; identity and derived
	// fields silently dropped here can never reach the approval merge.
	fields := make(map[string]any, len(item.Fields))
	for k, v := range item.Fields {
		if models.EditableClinicFields[k] {
			fields[k] = v
		}
	}
	if len(fields) == 0 {
		return models.PendingEdit{}, fmt.Errorf("edit submission proposes no editable fields")
	}
	item.Fields = fields

	current, err := s.Clinics.GetByID(ctx, item.ClinicID)
	if err != nil {
		return models.PendingEdit{}, fmt.Errorf("failed to load clinic %s for edit snapshot: %w", item.ClinicID, err)
	}

	item.OldData = snapshotFields(current, item.Fields)
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	item.SubmittedAt = time.Now()
	if err := s.Pending.CreateEdit(ctx, &item); err != nil {
		return models.PendingEdit{}, fmt.Errorf("failed to submit edit: %w", err)
	}
	return item, nil
}

func snapshotFields(c *models.Clinic, proposed map[string]any) map[string]any {
	prior := map[string]any{
		"name":            c.Name,
		"city":            c.City,
		"address":         c.Address,
		"phone":           c.Phone,
		"email":           c.Email,
		"www":             c.WWW,
		"facebook":        c.Facebook,
		"instagram":       c.Instagram,
		"linkedin":        c.LinkedIn,
		"youtube":         c.YouTube,
		"cennik":          c.Pricing,
		"dodatkowe":       c.Notes,
		"specializations": c.Specializations,
		"openingHours":    c.OpeningHours,
	}
	snapshot := make(map[string]any, len(proposed))
	for field := range proposed {
		if v, ok := prior[field]; ok {
			snapshot[field] = v
		}
	}
	return snapshot
}
