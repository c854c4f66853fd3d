// Package matching implements the pure matching core: great-circle distance,
// the three compatibility sub-scores, the weighted match scorer, and the
// candidate selector. Everything in this package is side-effect free and
// operates only on the entities passed in.
package matching

import "math"

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371.0

// Distance returns the great-circle distance in kilometers between two
// coordinates given in degrees, using the haversine formula. Callers must
// ensure both coordinates are present; the both-or-neither invariant on
// profiles and requests is enforced upstream.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := radians(lat2 - lat1)
	dLon := radians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
