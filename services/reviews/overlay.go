package reviews

import (
	"context"
	"encoding/json"
	"time"

	"wetopinie/models"

	"github.com/go-redis/redis/v8"
)

const overlayPrefix = "overlay:reviews:"

// OverlayStore is the per-session pending-review store the feed consults.
// An entry is removed only by an explicit rollback after a failed
// submission, or by expiry; moderation outcomes never touch it.
type OverlayStore interface {
	Add(ctx context.Context, sessionID string, review models.PendingReview) error
	Rollback(ctx context.Context, sessionID, reviewID string) error
	List(ctx context.Context, sessionID string) ([]models.PendingReview, error)
	Clear(ctx context.Context, sessionID string) error
}

// Overlay holds each session's just-submitted reviews so the submitter sees
// them immediately in an "awaiting moderation" section. The overlay is never
// merged into the approved list and is not reconciled with the eventual
// moderation decision; an entry is removed only when its submission fails.
type Overlay struct {
	client *redis.Client
	ttl    time.Duration
}

func NewOverlay(client *redis.Client, ttl time.Duration) *Overlay {
	return &Overlay{client: client, ttl: ttl}
}

func (o *Overlay) Add(ctx context.Context, sessionID string, review models.PendingReview) error {
	b, err := json.Marshal(review)
	if err != nil {
		return err
	}
	key := overlayPrefix + sessionID
	pipe := o.client.TxPipeline()
	pipe.LPush(ctx, key, b)
	pipe.Expire(ctx, key, o.ttl)
	_, err = pipe.Exec(ctx)
	return err
}

// Rollback removes one review after a failed submission.
func (o *Overlay) Rollback(ctx context.Context, sessionID string, reviewID string) error {
	items, err := o.List(ctx, sessionID)
	if err != nil {
		return err
	}
	key := overlayPrefix + sessionID
	for _, item := range items {
		if item.ID == reviewID {
			b, err := json.Marshal(item)
			if err != nil {
				return err
			}
			return o.client.LRem(ctx, key, 1, b).Err()
		}
	}
	return nil
}

func (o *Overlay) List(ctx context.Context, sessionID string) ([]models.PendingReview, error) {
	data, err := o.client.LRange(ctx, overlayPrefix+sessionID, 0, -1).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var items []models.PendingReview
	for _, raw := range data {
		var item models.PendingReview
		if err := json.Unmarshal([]byte(raw), &item); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// Clear drops the session's overlay, e.g. when the session ends.
func (o *Overlay) Clear(ctx context.Context, sessionID string) error {
	return o.client.Del(ctx, overlayPrefix+sessionID).Err()
}
