package reviews

import (
	"fmt"
	"sort"

	"wetopinie/models"
)

// Merge combines the clinic-scoped and flat review copies into one
// deduplicated list ordered newest first. The two copies of a review share an
// id; on collision, the clinic-scoped record wins. Records missing an id fall
// back to an author|timestamp composite key.
func Merge(scoped, flat []models.Review) []models.Review {
	merged := make(map[string]models.Review)
	var order []string

	put := func(r models.Review) {
		key := dedupKey(r)
		existing, ok := merged[key]
		if !ok {
			merged[key] = r
			order = append(order, key)
			return
		}
		if existing.Source != models.ReviewSourceClinic {
			merged[key] = r
		}
	}
	for _, r := range scoped {
		put(r)
	}
	for _, r := range flat {
		put(r)
	}

	out := make([]models.Review, 0, len(merged))
	for _, key := range order {
		out = append(out, merged[key])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return sortTimestamp(out[i]) > sortTimestamp(out[j])
	})
	return out
}

func dedupKey(r models.Review) string {
	if r.ID != "" {
		return r.ID
	}
	ts := ParseTimestamp(r.CreatedAt)
	if ts == 0 {
		ts = ParseTimestamp(r.ApprovedAt)
	}
	return fmt.Sprintf("%s|%d", r.Author, ts)
}

// sortTimestamp prefers the creation timestamp and falls back to approval
// time, matching the dedup key derivation.
func sortTimestamp(r models.Review) int64 {
	if ts := ParseTimestamp(r.CreatedAt); ts != 0 {
		return ts
	}
	return ParseTimestamp(r.ApprovedAt)
}
