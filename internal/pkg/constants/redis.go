package constants

import "time"

// Redis key formats
const (
	KeyAvailableDrivers = "drivers:available"     // Set of online driver IDs
	KeyDriverActiveTrip = "driver:active_trip:%s" // Format: driver:active_trip:{driver_id}
	DriverLocationKey   = "drivers:locations"     // GEO set of last shared driver locations
	KeyDriverGeohash    = "driver:geohash:%s"     // Format: driver:geohash:{driver_id}
)

// ActiveTripTTL bounds how long an active trip marker survives a crashed session
const ActiveTripTTL = 6 * time.Hour
