package geo

import "math"

// Box is a latitude/longitude rectangle in decimal degrees, edges included.
type Box struct {
	MinLat float64
	MaxLat float64
	MinLon float64
	MaxLon float64
}

// Contains reports whether the point lies inside b.
func (b Box) Contains(lat, lon float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat && lon >= b.MinLon && lon <= b.MaxLon
}

// boxMarginDeg widens every edge so points on the radius survive rounding.
const boxMarginDeg = 1e-9

// BoundingBox returns the smallest box holding every point within radiusKM of
// the origin on the DistanceKM sphere. When the circle reaches a pole or
// crosses the antimeridian the box spans all longitudes.
func BoundingBox(lat, lon, radiusKM float64) Box {
	angular := radiusKM / EarthRadiusKM
	deltaLat := angular * 180 / math.Pi

	box := Box{
		MinLat: math.Max(lat-deltaLat-boxMarginDeg, -90),
		MaxLat: math.Min(lat+deltaLat+boxMarginDeg, 90),
		MinLon: -180,
		MaxLon: 180,
	}
	if lat+deltaLat >= 90 || lat-deltaLat <= -90 {
		return box
	}

	ratio := math.Sin(angular) / math.Cos(degreesToRadians(lat))
	if angular >= math.Pi/2 || ratio >= 1 {
		return box
	}
	deltaLon := math.Asin(ratio) * 180 / math.Pi
	if lon-deltaLon < -180 || lon+deltaLon > 180 {
		return box
	}
	box.MinLon = lon - deltaLon - boxMarginDeg
	box.MaxLon = lon + deltaLon + boxMarginDeg
	return box
}
