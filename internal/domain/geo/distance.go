package geo

import "math"

// EarthRadiusKm is the mean Earth radius used by DistanceKm.
const EarthRadiusKm = 6371.0

// DistanceKm returns the great-circle distance between a and b using the
// haversine formula. Coordinates are not validated; out-of-range values are
// fed to the formula as-is.
func DistanceKm(a, b Point) float64 {
	dLat := toRad(b.Lat - a.Lat)
	dLng := toRad(b.Lng - a.Lng)

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)
	h := sinLat*sinLat + math.Cos(toRad(a.Lat))*math.Cos(toRad(b.Lat))*sinLng*sinLng
	// Rounding can push h slightly past 1 for antipodal points.
	h = math.Min(1, math.Max(0, h))

	return EarthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// DistanceBetween is DistanceKm for optional points. ok is false when either
// side has no location.
func DistanceBetween(a, b *Point) (km float64, ok bool) {
	if a == nil || b == nil {
		return 0, false
	}
	return DistanceKm(*a, *b), true
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
