package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wetopinie/models"
)

func testClinics() []models.Clinic {
	return []models.Clinic{
		{
			ID: "a", Name: "Ala-Wet", City: "Kraków",
			Specializations: []string{"chirurgia", "dermatologia"},
			OpeningHours:    models.WeeklySchedule{"pn": "09:00-17:00"},
			Lat:             ptr(50.06), Lng: ptr(19.94),
			ReviewsCount: 10,
		},
		{
			ID: "b", Name: "Borek", City: "Kraków",
			Specializations: []string{"stomatologia"},
			OpeningHours:    models.WeeklySchedule{"pn": "00:00-24:00"},
			Lat:             ptr(50.09), Lng: ptr(19.99),
			ReviewsCount: 3,
		},
		{
			ID: "c", Name: "Centrum Zdrowia Zwierząt", City: "Warszawa",
			Specializations: []string{"chirurgia"},
			OpeningHours:    models.WeeklySchedule{"pn": "zamknięte"},
			ReviewsCount:    7,
		},
	}
}

func ids(clinics []models.Clinic) []string {
	out := make([]string, len(clinics))
	for i, c := range clinics {
		out[i] = c.ID
	}
	return out
}

func TestSearchNoActiveFilter(t *testing.T) {
	result, err := Search(testClinics(), models.FilterCriteria{}, nil, monday(t, "12:00"))
	require.NoError(t, err)
	assert.True(t, result.NoActiveFilter)
	assert.Empty(t, result.Clinics)

	// An active filter with zero matches is a different outcome.
	result, err = Search(testClinics(), models.FilterCriteria{City: "Szczecin"}, nil, monday(t, "12:00"))
	require.NoError(t, err)
	assert.False(t, result.NoActiveFilter)
	assert.Empty(t, result.Clinics)
}

func TestSearchCityFragmentDiacriticInsensitive(t *testing.T) {
	result, err := Search(testClinics(), models.FilterCriteria{City: "krakow"}, nil, monday(t, "12:00"))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b"}, ids(result.Clinics))

	// Substring match, not equality.
	result, err = Search(testClinics(), models.FilterCriteria{City: "rak"}, nil, monday(t, "12:00"))
	require.NoError(t, err)
	assert.Len(t, result.Clinics, 2)
}

func TestSearchSpecializationFragment(t *testing.T) {
	result, err := Search(testClinics(), models.FilterCriteria{Specialization: "chirurg"}, nil, monday(t, "12:00"))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "c"}, ids(result.Clinics))
}

func TestSearchOpen24h(t *testing.T) {
	result, err := Search(testClinics(), models.FilterCriteria{Open24h: true}, nil, monday(t, "12:00"))
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, ids(result.Clinics))
}

func TestSearchOpenNow(t *testing.T) {
	result, err := Search(testClinics(), models.FilterCriteria{OpenNow: true}, nil, monday(t, "12:00"))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b"}, ids(result.Clinics))

	// After hours only the round-the-clock clinic remains.
	result, err = Search(testClinics(), models.FilterCriteria{OpenNow: true}, nil, monday(t, "22:00"))
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, ids(result.Clinics))
}

func TestSearchDefaultOrderOpenFirst(t *testing.T) {
	// City filter matches a and b at 22:00: a (10 reviews) is closed, b (3
	// reviews) is open. Open-now status outranks review count.
	result, err := Search(testClinics(), models.FilterCriteria{City: "Kraków"}, nil, monday(t, "22:00"))
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, ids(result.Clinics))

	// At noon both are open, so review count decides.
	result, err = Search(testClinics(), models.FilterCriteria{City: "Kraków"}, nil, monday(t, "12:00"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids(result.Clinics))
}

func TestSearchRadiusMode(t *testing.T) {
	user := &models.Coordinates{Lat: 50.09, Lng: 19.99}
	result, err := Search(testClinics(), models.FilterCriteria{Nearby: true, RadiusKm: 10}, user, monday(t, "12:00"))
	require.NoError(t, err)

	// Clinic c has no coordinates and is excluded, never defaulted in.
	assert.Equal(t, []string{"b", "a"}, ids(result.Clinics), "ascending distance")
	assert.Contains(t, result.Distances, "a")
	assert.Contains(t, result.Distances, "b")
	assert.NotContains(t, result.Distances, "c")
	assert.Less(t, result.Distances["b"], result.Distances["a"])
}

func TestResultCacheable(t *testing.T) {
	// Default-mode results rank open clinics first, so they shift at every
	// open/close boundary and must never be served from cache.
	assert.False(t, resultCacheable(models.FilterCriteria{}))
	assert.False(t, resultCacheable(models.FilterCriteria{City: "Kraków"}))
	assert.False(t, resultCacheable(models.FilterCriteria{OpenNow: true}))
	assert.False(t, resultCacheable(models.FilterCriteria{Nearby: true, OpenNow: true}))

	// Radius ordering is by distance alone, stable over time.
	assert.True(t, resultCacheable(models.FilterCriteria{Nearby: true, RadiusKm: 5}))
	assert.True(t, resultCacheable(models.FilterCriteria{Nearby: true, City: "Kraków"}))
}

func TestSearchRadiusModeErrors(t *testing.T) {
	_, err := Search(testClinics(), models.FilterCriteria{Nearby: true, RadiusKm: 5}, nil, monday(t, "12:00"))
	assert.Error(t, err, "radius mode without a user coordinate")

	_, err = Search(testClinics(), models.FilterCriteria{RadiusKm: -1}, &models.Coordinates{}, monday(t, "12:00"))
	assert.Error(t, err)
}
