package directory

import (
	"math"
	"sort"

	"wetopinie/models"
)

// DistanceKm calculates the haversine great-circle distance (in km) between
// two lat/lon points. NaN inputs propagate NaN; callers must guard.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	const R = 6371
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return R * c
}

// NearestCities returns city labels ordered by ascending distance from the
// user to each city's centroid (arithmetic mean of its clinics' coordinates).
// Clinics without coordinates or without a city contribute nothing.
func NearestCities(user models.Coordinates, clinics []models.Clinic) []string {
	type acc struct {
		lat, lng float64
		n        int
	}
	groups := make(map[string]*acc)
	var order []string
	for i := range clinics {
		c := &clinics[i]
		if c.City == "" || !c.HasCoordinates() {
			continue
		}
		g, ok := groups[c.City]
		if !ok {
			g = &acc{}
			groups[c.City] = g
			order = append(order, c.City)
		}
		g.lat += *c.Lat
		g.lng += *c.Lng
		g.n++
	}

	sort.SliceStable(order, func(i, j int) bool {
		gi, gj := groups[order[i]], groups[order[j]]
		di := DistanceKm(user.Lat, user.Lng, gi.lat/float64(gi.n), gi.lng/float64(gi.n))
		dj := DistanceKm(user.Lat, user.Lng, gj.lat/float64(gj.n), gj.lng/float64(gj.n))
		return di < dj
	})
	return order
}
