package reviews

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"wetopinie/models"
)

func TestMergeDeduplicatesByID(t *testing.T) {
	scoped := []models.Review{
		{ID: "r1", ClinicID: "c1", Author: "Anna", Text: "scoped copy",
			Source: models.ReviewSourceClinic, CreatedAt: "2024-06-01T10:00:00Z"},
	}
	flat := []models.Review{
		{ID: "r1", ClinicID: "c1", Author: "Anna", Text: "flat copy",
			Source: models.ReviewSourceGlobal, CreatedAt: "2024-06-01T10:00:00Z"},
		{ID: "r2", ClinicID: "c1", Author: "Piotr", Text: "only flat",
			Source: models.ReviewSourceGlobal, CreatedAt: "2024-05-01T10:00:00Z"},
	}

	merged := Merge(scoped, flat)
	assert.Len(t, merged, 2)
	assert.Equal(t, "scoped copy", merged[0].Text, "clinic-scoped copy wins the collision")
	assert.Equal(t, "r2", merged[1].ID)
}

func TestMergeClinicCopyWinsRegardlessOfOrder(t *testing.T) {
	// Same review seen flat-first: the scoped record still replaces it.
	scoped := []models.Review{
		{ID: "r1", Text: "scoped", Source: models.ReviewSourceClinic},
	}
	flat := []models.Review{
		{ID: "r1", Text: "flat", Source: models.ReviewSourceGlobal},
	}

	merged := Merge(nil, append(flat, scoped...))
	assert.Equal(t, "scoped", merged[0].Text)

	merged = Merge(scoped, flat)
	assert.Equal(t, "scoped", merged[0].Text)
}

func TestMergeOrdersNewestFirstAcrossEncodings(t *testing.T) {
	newest := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	middle := newest.AddDate(0, -1, 0)
	oldest := newest.AddDate(0, -2, 0)

	flat := []models.Review{
		{ID: "old", CreatedAt: oldest.Unix(), Source: models.ReviewSourceGlobal},
		{ID: "new", CreatedAt: newest.Format(time.RFC3339), Source: models.ReviewSourceGlobal},
		{ID: "mid", CreatedAt: map[string]any{"seconds": middle.Unix()}, Source: models.ReviewSourceGlobal},
	}

	merged := Merge(nil, flat)
	assert.Equal(t, []string{"new", "mid", "old"},
		[]string{merged[0].ID, merged[1].ID, merged[2].ID})
}

func TestMergeFallsBackToApprovedAt(t *testing.T) {
	flat := []models.Review{
		{ID: "a", ApprovedAt: "2024-06-01T00:00:00Z", Source: models.ReviewSourceGlobal},
		{ID: "b", CreatedAt: "2024-07-01T00:00:00Z", Source: models.ReviewSourceGlobal},
	}
	merged := Merge(nil, flat)
	assert.Equal(t, "b", merged[0].ID)
	assert.Equal(t, "a", merged[1].ID)
}

func TestMergeMissingIDUsesCompositeKey(t *testing.T) {
	scoped := []models.Review{
		{Author: "Anna", CreatedAt: "2024-06-01T10:00:00Z", Text: "x", Source: models.ReviewSourceClinic},
	}
	flat := []models.Review{
		{Author: "Anna", CreatedAt: "2024-06-01T10:00:00Z", Text: "x", Source: models.ReviewSourceGlobal},
		{Author: "Anna", CreatedAt: "2024-06-02T10:00:00Z", Text: "y", Source: models.ReviewSourceGlobal},
	}

	merged := Merge(scoped, flat)
	assert.Len(t, merged, 2, "same author+timestamp collapses, different timestamp stays")
}

func TestFlagged(t *testing.T) {
	assert.True(t, Flagged("co za KURWA obsługa"))
	assert.True(t, Flagged("pierdoły opowiadają"))
	assert.False(t, Flagged("bardzo miła obsługa, polecam"))
	assert.False(t, Flagged(""))
}
