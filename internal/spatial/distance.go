package spatial

import (
	"github.com/golang/geo/s2"

	"github.com/pdatalab/tripmatch-backend-go/internal/interval"
)

// Earth radius constants used for great-circle distances.
const (
	EarthRadiusMeters = 6371000.0
	EarthRadiusKm     = 6371.0
)

// DefaultBirdeyeCoefficient inflates the straight-line distance between
// a session's endpoints into a rough road-distance estimate.
const DefaultBirdeyeCoefficient = 1.5

// HaversineDistance returns the great-circle distance between two points
// in meters.
func HaversineDistance(lat1, lng1, lat2, lng2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lng1)
	p2 := s2.LatLngFromDegrees(lat2, lng2)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}

// DistanceKm returns the great-circle distance between two coordinates
// in kilometers.
func DistanceKm(a, b interval.LatLng) float64 {
	return HaversineDistance(a.Lat, a.Lng, b.Lat, b.Lng) / 1000
}

// BirdeyeKm estimates the distance covered between two recorded
// endpoints: the geodesic distance scaled by coefficient. A coefficient
// of zero or less falls back to DefaultBirdeyeCoefficient.
func BirdeyeKm(a, b interval.LatLng, coefficient float64) float64 {
	if coefficient <= 0 {
		coefficient = DefaultBirdeyeCoefficient
	}
	return coefficient * DistanceKm(a, b)
}
