// Package dispatch feeds trip offers to drivers: a static seed for new
// sessions and an optional simulator that fabricates offers on NATS.
package dispatch

import (
	"github.com/piresc/ojekdriver/internal/pkg/models"
	"github.com/piresc/ojekdriver/services/driver/session"
)

var seedTrips = []models.TripRequest{
	{
		ID:                "TR-1001",
		Passenger:         models.Passenger{Name: "Ahmad Rizki", Rating: 4.8},
		Pickup:            "Jl. Sudirman No. 1",
		Destination:       "Grand Indonesia",
		EstimatedDistance: "3.2 km",
		EstimatedDuration: "12 menit",
		ProposedFare:      "Rp 25.000",
	},
	{
		ID:                "TR-1002",
		Passenger:         models.Passenger{Name: "Siti Nurhaliza", Rating: 4.6},
		Pickup:            "Stasiun Gambir",
		Destination:       "Bandara Soekarno-Hatta T3",
		EstimatedDistance: "28.5 km",
		EstimatedDuration: "45 menit",
		ProposedFare:      "Rp 150.000",
	},
}

// SeedTrips returns a fresh copy of the static offers every new session starts with
func SeedTrips(string) []models.TripRequest {
	trips := make([]models.TripRequest, len(seedTrips))
	copy(trips, seedTrips)
	return trips
}

// Seed returns the seed function for the registry, or nil when seeding is off
func Seed(cfg models.DispatchConfig) session.SeedFunc {
	if !cfg.SeedEnabled {
		return nil
	}
	return SeedTrips
}
