package directory

import (
	"context"
	"encoding/json"
	"time"

	"wetopinie/models"

	"github.com/go-redis/redis/v8"
)

const filterStatePrefix = "filterstate:"

// FilterStateStore persists each session's filter configuration. The state is
// an explicit versioned object: loaded once at session start, written back on
// every change. A missing key or a version mismatch yields the default.
type FilterStateStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewFilterStateStore(client *redis.Client, ttl time.Duration) *FilterStateStore {
	return &FilterStateStore{client: client, ttl: ttl}
}

func (s *FilterStateStore) Load(ctx context.Context, sessionID string) (models.SavedFilterState, error) {
	data, err := s.client.Get(ctx, filterStatePrefix+sessionID).Result()
	if err == redis.Nil {
		return models.DefaultFilterState(), nil
	}
	if err != nil {
		return models.SavedFilterState{}, err
	}
	var state models.SavedFilterState
	if err := json.Unmarshal([]byte(data), &state); err != nil || state.Version != models.FilterStateVersion {
		return models.DefaultFilterState(), nil
	}
	return state, nil
}

func (s *FilterStateStore) Save(ctx context.Context, sessionID string, state models.SavedFilterState) error {
	state.Version = models.FilterStateVersion
	b, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, filterStatePrefix+sessionID, b, s.ttl).Err()
}

func (s *FilterStateStore) Clear(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, filterStatePrefix+sessionID).Err()
}
