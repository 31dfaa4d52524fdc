package reviews

import (
	"context"
	"fmt"
	"time"

	pendingRepo "wetopinie/database/repository/pending"
	reviewRepo "wetopinie/database/repository/review"
	"wetopinie/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Feed is what a clinic page renders: the merged approved list plus the
// session's own submissions still awaiting moderation.
type Feed struct {
	Approved []models.Review        `json:"approved"`
	Pending  []models.PendingReview `json:"pending,omitempty"`
}

// ReviewService merges the two approved-review sources and handles new
// submissions with an optimistic per-session overlay.
type ReviewService interface {
	FeedForClinic(ctx context.Context, clinicID, sessionID string) (Feed, error)
	Submit(ctx context.Context, sessionID string, review models.PendingReview) (models.PendingReview, error)
}

// DefaultReviewService is our implementation.
type DefaultReviewService struct {
	Reviews reviewRepo.ReviewRepository
	Pending pendingRepo.PendingRepository
	Overlay OverlayStore
}

// FeedForClinic re-merges both sources on every call; the two feeds update
// independently and no ordering between them is assumed.
func (s *DefaultReviewService) FeedForClinic(ctx context.Context, clinicID, sessionID string) (Feed, error) {
	scoped, err := s.Reviews.ListByClinic(ctx, clinicID)
	if err != nil {
		return Feed{}, fmt.Errorf("failed to read clinic-scoped reviews: %w", err)
	}
	flat, err := s.Reviews.ListGlobalByClinic(ctx, clinicID)
	if err != nil {
		return Feed{}, fmt.Errorf("failed to read flat reviews: %w", err)
	}

	feed := Feed{Approved: Merge(scoped, flat)}

	if s.Overlay != nil && sessionID != "" {
		pending, err := s.Overlay.List(ctx, sessionID)
		if err != nil {
			// The overlay is cosmetic; losing it must not break the feed.
			zap.L().Warn("failed to read pending overlay",
				zap.String("sessionID", sessionID), zap.Error(err))
		} else {
			for _, p := range pending {
				if p.ClinicID == clinicID {
					feed.Pending = append(feed.Pending, p)
				}
			}
		}
	}
	return feed, nil
}

// Submit places the review in the pending queue. The overlay entry is added
// first (optimistic) and rolled back only if the store write fails; it is not
// reconciled against the eventual moderation decision.
func (s *DefaultReviewService) Submit(ctx context.Context, sessionID string, review models.PendingReview) (models.PendingReview, error) {
	if review.ClinicID == "" {
		return models.PendingReview{}, fmt.Errorf("review submission requires a clinic id")
	}
	if review.Rating < 1 || review.Rating > 5 {
		return models.PendingReview{}, fmt.Errorf("rating must be between 1 and 5, got %d", review.Rating)
	}
	if review.ID == "" {
		review.ID = uuid.NewString()
	}
	if review.Title == "" {
		review.Title = "Opinia"
	}
	review.Flagged = Flagged(review.Text)
	review.SubmittedAt = time.Now()

	if s.Overlay != nil && sessionID != "" {
		if err := s.Overlay.Add(ctx, sessionID, review); err != nil {
			zap.L().Warn("failed to add review to overlay",
				zap.String("sessionID", sessionID), zap.Error(err))
		}
	}

	if err := s.Pending.CreateReview(ctx, &review); err != nil {
		if s.Overlay != nil && sessionID != "" {
			if rbErr := s.Overlay.Rollback(ctx, sessionID, review.ID); rbErr != nil {
				zap.L().Warn("failed to roll back overlay entry",
					zap.String("reviewID", review.ID), zap.Error(rbErr))
			}
		}
		return models.PendingReview{}, fmt.Errorf("failed to submit review: %w", err)
	}
	return review, nil
}
