package moderation

import (
	"context"
	"fmt"
	"time"

	"wetopinie/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Approve applies one terminal approval decision. The destination writes run
// first (transactionally where more than one document is touched); only after
// they succeed is the pending item deleted and the audit entry appended. On
// any write failure nothing is deleted and nothing is logged, so the item
// stays queued for a retry. A crash between commit and deletion makes the
// retry re-apply the same id-keyed writes, which is harmless.
func (s *DefaultModerationService) Approve(ctx context.Context, kind models.SubmissionKind, id, reviewer string) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	var err error
	switch kind {
	case models.KindNewClinic:
		err = s.approveNewClinic(ctx, id)
	case models.KindEdit:
		err = s.approveEdit(ctx, id)
	case models.KindReview:
		err = s.approveReview(ctx, id)
	}
	if err != nil {
		return err
	}

	if err := s.Pending.Delete(ctx, kind, id); err != nil {
		return fmt.Errorf("approved writes committed but pending delete failed: %w", err)
	}
	if err := s.appendAudit(ctx, models.ActionApproved, kind, id, reviewer); err != nil {
		return err
	}

	zap.L().Info("submission approved",
		zap.String("kind", kind.Collection()),
		zap.String("itemId", id),
		zap.String("reviewer", reviewer))
	return nil
}

func (s *DefaultModerationService) approveNewClinic(ctx context.Context, id string) error {
	item, err := s.Pending.GetClinic(ctx, id)
	if err != nil {
		return queueError(err)
	}

	clinic := item.Clinic
	clinic.ID = item.ID
	clinic.ApprovedAt = time.Now()
	// Coordinates pass through unchanged, nil included.
	return s.Store.UpsertClinic(ctx, &clinic)
}

func (s *DefaultModerationService) approveEdit(ctx context.Context, id string) error {
	item, err := s.Pending.GetEdit(ctx, id)
	if err != nil {
		return queueError(err)
	}
	if item.ClinicID == "" {
		return fmt.Errorf("%w: edit %s has no target clinic", ErrMissingReference, id)
	}

	// The submission path already whitelists, but pending docs can predate
	// it; never let an edit rewrite identity or derived fields.
	fields := make(map[string]any, len(item.Fields)+1)
	for k, v := range item.Fields {
		if !models.EditableClinicFields[k] {
			continue
		}
		fields[k] = v
	}
	if len(fields) == 0 {
		return fmt.Errorf("edit %s proposes no editable fields", id)
	}
	fields["updatedAt"] = time.Now()
	return s.Store.MergeClinic(ctx, item.ClinicID, fields)
}

func (s *DefaultModerationService) approveReview(ctx context.Context, id string) error {
	item, err := s.Pending.GetReview(ctx, id)
	if err != nil {
		return queueError(err)
	}
	if item.ClinicID == "" {
		// There is no clinic to attach the review to; abort before any write.
		return fmt.Errorf("%w: review %s has no target clinic", ErrMissingReference, id)
	}

	reviewID := item.ID
	if reviewID == "" {
		reviewID = uuid.NewString()
	}
	createdAt := item.SubmittedAt.Format(time.RFC3339)
	if item.SubmittedAt.IsZero() {
		createdAt = item.VisitDate
	}

	review := models.Review{
		ID:         reviewID,
		ClinicID:   item.ClinicID,
		Author:     item.Author,
		Rating:     item.Rating,
		Title:      item.Title,
		Text:       item.Text,
		CreatedAt:  createdAt,
		ApprovedAt: time.Now().Format(time.RFC3339),
	}
	return s.Store.UpsertReview(ctx, &review)
}

func (s *DefaultModerationService) appendAudit(ctx context.Context, action string, kind models.SubmissionKind, itemID, reviewer string) error {
	entry := models.AuditEntry{
		ID:         uuid.NewString(),
		Action:     action,
		Collection: kind.Collection(),
		ItemID:     itemID,
		Admin:      reviewer,
		Timestamp:  time.Now(),
	}
	if err := s.Store.AppendLog(ctx, &entry); err != nil {
		return fmt.Errorf("decision applied but audit append failed: %w", err)
	}
	return nil
}
