package court

import (
	"math"
	"slices"
)

const earthRadiusKm = 6371.0

// Distance is the great-circle distance between a and b in kilometres.
func Distance(a, b Coordinates) float64 {
	lat1 := radians(a.Latitude)
	lat2 := radians(b.Latitude)
	dLat := lat2 - lat1
	dLng := radians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Asin(math.Min(1, math.Sqrt(h)))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Nearest orders courts by distance from origin. A limit <= 0 returns all.
func Nearest(courts []Court, origin Coordinates, limit int) []Nearby {
	out := make([]Nearby, 0, len(courts))
	for _, c := range courts {
		out = append(out, Nearby{Court: c, DistanceKm: Distance(origin, c.Location())})
	}
	slices.SortStableFunc(out, func(a, b Nearby) int {
		switch {
		case a.DistanceKm < b.DistanceKm:
			return -1
		case a.DistanceKm > b.DistanceKm:
			return 1
		}
		return 0
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
