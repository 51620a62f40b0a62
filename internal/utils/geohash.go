package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
	"github.com/piresc/ojekdriver/internal/pkg/models"
)

// DefaultGeohashPrecision is used when the configured precision is out of range
const DefaultGeohashPrecision uint = 7

// EncodeLocation converts a location to a geohash string
func EncodeLocation(location models.Location, precision uint) string {
	if precision == 0 || precision > 12 {
		precision = DefaultGeohashPrecision
	}
	return geohash.EncodeWithPrecision(location.Latitude, location.Longitude, precision)
}

// DecodeGeohash converts a geohash string to the center of its cell
func DecodeGeohash(hash string) (latitude, longitude float64, err error) {
	if err := geohash.Validate(hash); err != nil {
		return 0, 0, err
	}
	latitude, longitude = geohash.DecodeCenter(hash)
	return latitude, longitude, nil
}

// CalculateDistance returns the Haversine distance between two locations in kilometers
func CalculateDistance(a, b models.Location) float64 {
	const earthRadius = 6371.0

	lat1 := a.Latitude * math.Pi / 180.0
	lon1 := a.Longitude * math.Pi / 180.0
	lat2 := b.Latitude * math.Pi / 180.0
	lon2 := b.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	h := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadius * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// GetNeighbors returns the neighboring geohashes of a given geohash
func GetNeighbors(hash string) []string {
	return geohash.Neighbors(hash)
}
