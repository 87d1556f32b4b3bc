package geoutil

import (
	"math"

	"github.com/paulmach/orb"
)

// earthRadiusM is the mean Earth radius used by the Haversine formula.
const earthRadiusM = 6371000.0

// Distance returns the great-circle distance in meters between two
// latitude/longitude pairs using the Haversine formula.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180.0
	dLon := (lon2 - lon1) * math.Pi / 180.0

	lat1Rad := lat1 * math.Pi / 180.0
	lat2Rad := lat2 * math.Pi / 180.0

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusM * c
}

// PointDistance returns the distance in meters between two lon/lat points.
func PointDistance(a, b orb.Point) float64 {
	return Distance(a.Lat(), a.Lon(), b.Lat(), b.Lon())
}

// ValidCoordinates reports whether a latitude/longitude pair is in range.
func ValidCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
