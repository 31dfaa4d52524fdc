package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	clinicRepo "wetopinie/database/repository/clinic"
	"wetopinie/models"

	"github.com/go-redis/redis/v8"
)

const searchCacheTTL = 5 * time.Minute

// resultCacheable reports whether a result for the criteria can be reused
// across wall-clock time. Default-mode ranking puts currently-open clinics
// first even when the open-now predicate is off, so only radius-mode results
// without the open-now predicate are time-stable: radius ordering is by
// distance alone.
func resultCacheable(criteria models.FilterCriteria) bool {
	return criteria.Nearby && !criteria.OpenNow
}

// DirectoryService exposes the read side of the clinic directory.
type DirectoryService interface {
	Search(ctx context.Context, criteria models.FilterCriteria, user *models.Coordinates) (SearchResult, error)
	Clinic(ctx context.Context, id string) (*models.Clinic, error)
	// Cities returns the city choice list; with a user coordinate the list is
	// ordered by centroid proximity so the nearest city sits on top.
	Cities(ctx context.Context, user *models.Coordinates) ([]string, error)
	Specializations(ctx context.Context) ([]string, error)
}

// DefaultDirectoryService is our implementation over the clinic snapshot.
type DefaultDirectoryService struct {
	Repo        clinicRepo.ClinicRepository
	CacheClient *redis.Client
}

// Search runs the filter/rank pipeline over the current snapshot. Results
// are cached briefly keyed by the criteria, but only when the ordering is
// stable over time; see resultCacheable.
func (s *DefaultDirectoryService) Search(ctx context.Context, criteria models.FilterCriteria, user *models.Coordinates) (SearchResult, error) {
	cacheable := s.CacheClient != nil && resultCacheable(criteria)

	var cacheKey string
	if cacheable {
		keyBytes, err := json.Marshal(struct {
			Criteria models.FilterCriteria `json:"criteria"`
			User     *models.Coordinates   `json:"user,omitempty"`
		}{criteria, user})
		if err != nil {
			return SearchResult{}, fmt.Errorf("failed to marshal search criteria: %w", err)
		}
		cacheKey = fmt.Sprintf("search:%x", keyBytes)

		if cached, err := s.CacheClient.Get(ctx, cacheKey).Result(); err == nil && cached != "" {
			var result SearchResult
			if err := json.Unmarshal([]byte(cached), &result); err == nil {
				return result, nil
			}
			// If unmarshal fails, fall through to re-computation.
		}
	}

	clinics, err := s.Repo.GetAll(ctx)
	if err != nil {
		return SearchResult{}, fmt.Errorf("failed to load clinic snapshot: %w", err)
	}

	result, err := Search(clinics, criteria, user, time.Now())
	if err != nil {
		return SearchResult{}, err
	}

	if cacheable {
		if b, err := json.Marshal(result); err == nil {
			s.CacheClient.Set(ctx, cacheKey, b, searchCacheTTL)
		}
	}
	return result, nil
}

func (s *DefaultDirectoryService) Clinic(ctx context.Context, id string) (*models.Clinic, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultDirectoryService) Cities(ctx context.Context, user *models.Coordinates) ([]string, error) {
	clinics, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load clinic snapshot: %w", err)
	}
	if user == nil {
		return UniqueCities(clinics), nil
	}
	nearest := NearestCities(*user, clinics)
	// Cities without coordinates still belong on the list, after the ranked ones.
	seen := make(map[string]bool, len(nearest))
	for _, city := range nearest {
		seen[city] = true
	}
	for _, city := range UniqueCities(clinics) {
		if !seen[city] {
			nearest = append(nearest, city)
		}
	}
	return nearest, nil
}

func (s *DefaultDirectoryService) Specializations(ctx context.Context) ([]string, error) {
	clinics, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load clinic snapshot: %w", err)
	}
	return UniqueSpecializations(clinics), nil
}
