package directory

import (
	"fmt"
	"sort"
	"time"

	"wetopinie/models"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SearchResult is the outcome of one pipeline run. NoActiveFilter is set when
// no predicate was active and radius mode was off; callers must distinguish
// this idle state from a filtered empty result.
type SearchResult struct {
	NoActiveFilter bool                 `json:"noActiveFilter,omitempty"`
	Clinics        []models.Clinic      `json:"clinics"`
	Distances      map[string]float64   `json:"distances,omitempty"` // clinic id → km, radius mode only
}

// Search filters and ranks the clinic snapshot. All active predicates must
// pass. In radius mode results are ordered by ascending distance from the
// user (stable); otherwise open-now clinics come first, then review count
// descending, then name under Polish collation.
func Search(clinics []models.Clinic, criteria models.FilterCriteria, user *models.Coordinates, now time.Time) (SearchResult, error) {
	if criteria.RadiusKm < 0 {
		return SearchResult{}, fmt.Errorf("radius must be non-negative, got %v", criteria.RadiusKm)
	}
	radiusMode := criteria.Nearby
	if radiusMode && user == nil {
		return SearchResult{}, fmt.Errorf("radius mode requires a user coordinate")
	}
	if !criteria.Active() {
		return SearchResult{NoActiveFilter: true}, nil
	}

	var (
		matched   []models.Clinic
		distances map[string]float64
		openNow   = make(map[string]bool)
	)
	if radiusMode {
		distances = make(map[string]float64)
	}

	for _, c := range clinics {
		if criteria.Name != "" && !containsFold(c.Name, criteria.Name) {
			continue
		}
		if criteria.City != "" && !containsFold(c.City, criteria.City) {
			continue
		}
		if criteria.Specialization != "" && !anyTagMatches(c.Specializations, criteria.Specialization) {
			continue
		}
		if criteria.Open24h && !Is24Hours(c.OpeningHours) {
			continue
		}
		open := IsOpenNow(c.OpeningHours, now)
		if criteria.OpenNow && !open {
			continue
		}
		if radiusMode {
			// Missing coordinates exclude the clinic, they never default to pass.
			if !c.HasCoordinates() {
				continue
			}
			d := DistanceKm(user.Lat, user.Lng, *c.Lat, *c.Lng)
			if d > criteria.RadiusKm {
				continue
			}
			distances[c.ID] = d
		}
		openNow[c.ID] = open
		matched = append(matched, c)
	}

	if radiusMode {
		sort.SliceStable(matched, func(i, j int) bool {
			return distances[matched[i].ID] < distances[matched[j].ID]
		})
		return SearchResult{Clinics: matched, Distances: distances}, nil
	}

	collator := collate.New(language.Polish, collate.Loose)
	sort.SliceStable(matched, func(i, j int) bool {
		a, b := &matched[i], &matched[j]
		if openNow[a.ID] != openNow[b.ID] {
			return openNow[a.ID]
		}
		if a.ReviewsCount != b.ReviewsCount {
			return a.ReviewsCount > b.ReviewsCount
		}
		return collator.CompareString(a.Name, b.Name) < 0
	})
	return SearchResult{Clinics: matched}, nil
}

func anyTagMatches(tags []string, fragment string) bool {
	for _, tag := range tags {
		if containsFold(tag, fragment) {
			return true
		}
	}
	return false
}
