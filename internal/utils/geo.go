package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
)

// GeohashPrecision is the cell size used for workshop locations. Precision 9
// is roughly a 5m cell, fine enough that two workshops never share a hash by
// accident.
const GeohashPrecision = 9

// GeoPoint represents a geographical point with latitude and longitude
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// EncodeGeoPoint converts a point to its geohash string
func EncodeGeoPoint(point GeoPoint) string {
	return geohash.EncodeWithPrecision(point.Latitude, point.Longitude, GeohashPrecision)
}

// DecodeGeohash converts a geohash string back to a point
func DecodeGeohash(hash string) GeoPoint {
	lat, lng := geohash.Decode(hash)
	return GeoPoint{Latitude: lat, Longitude: lng}
}

// CalculateDistance calculates the distance between two points in kilometers
// using the Haversine formula
func CalculateDistance(point1, point2 GeoPoint) float64 {
	// Earth's radius in kilometers
	const earthRadius = 6371.0

	lat1 := point1.Latitude * math.Pi / 180.0
	lon1 := point1.Longitude * math.Pi / 180.0
	lat2 := point2.Latitude * math.Pi / 180.0
	lon2 := point2.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}

// ProximityPrefixes returns the geohash prefixes that cover a circle of the
// given radius around a center point: the center cell plus its eight
// neighbors, at a precision coarse enough that the circle fits inside the
// 3x3 block.
func ProximityPrefixes(center GeoPoint, radiusKm float64) []string {
	precision := precisionForRadius(radiusKm)
	hash := geohash.EncodeWithPrecision(center.Latitude, center.Longitude, precision)
	return append([]string{hash}, geohash.Neighbors(hash)...)
}

// precisionForRadius picks the coarsest geohash precision whose cell edge is
// at least the radius, so that center cell + neighbors cover the circle.
// Approximate cell heights: p4 ~39km, p5 ~4.9km, p6 ~1.2km.
func precisionForRadius(radiusKm float64) uint {
	switch {
	case radiusKm > 4.9:
		return 4
	case radiusKm > 1.2:
		return 5
	default:
		return 6
	}
}
