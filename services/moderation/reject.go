package moderation

import (
	"context"
	"fmt"

	"wetopinie/models"

	"go.uber.org/zap"
)

// Reject discards one pending item and records the decision. No other state
// is touched.
func (s *DefaultModerationService) Reject(ctx context.Context, kind models.SubmissionKind, id, reviewer string) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	if err := s.Pending.Delete(ctx, kind, id); err != nil {
		return queueError(err)
	}
	if err := s.appendAudit(ctx, models.ActionRejected, kind, id, reviewer); err != nil {
		return err
	}

	zap.L().Info("submission rejected",
		zap.String("kind", kind.Collection()),
		zap.String("itemId", id),
		zap.String("reviewer", reviewer))
	return nil
}
