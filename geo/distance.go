// Package geo computes great-circle distances and ranks located issues
// around a query point.
package geo

import "math"

// EarthRadiusKM is the mean Earth radius used by the Haversine formula.
const EarthRadiusKM = 6371.0

// DistanceKM returns the Haversine distance in kilometers between two points
// given in decimal degrees. Inputs are not range-checked.
//
//	a = sin²(Δφ/2) + cos φ1 ⋅ cos φ2 ⋅ sin²(Δλ/2)
//	c = 2 ⋅ atan2(√a, √(1−a))
//	d = R ⋅ c
func DistanceKM(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := degreesToRadians(lat1)
	lat2Rad := degreesToRadians(lat2)
	deltaLat := lat2Rad - lat1Rad
	deltaLon := degreesToRadians(lon2) - degreesToRadians(lon1)

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)

	// rounding can push a a hair outside [0, 1] near antipodes
	a = math.Min(math.Max(a, 0), 1)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusKM * c
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
