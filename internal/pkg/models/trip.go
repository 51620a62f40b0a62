package models

import "time"

// TripStatus represents the current status of a trip request
type TripStatus string

const (
	TripStatusPending   TripStatus = "pending"
	TripStatusAccepted  TripStatus = "accepted"
	TripStatusCompleted TripStatus = "completed"
	TripStatusCancelled TripStatus = "cancelled"
)

// Passenger is the rider attached to a trip offer
type Passenger struct {
	Name   string  `json:"name" validate:"required"`
	Rating float64 `json:"rating" validate:"gte=0,lte=5"`
}

// TripRequest is a trip offer delivered by the dispatch feed.
// Distance, duration and fare are display strings and are never parsed.
type TripRequest struct {
	ID                string     `json:"id" validate:"required"`
	Passenger         Passenger  `json:"passenger" validate:"required"`
	Pickup            string     `json:"pickup" validate:"required"`
	Destination       string     `json:"destination" validate:"required"`
	EstimatedDistance string     `json:"estimated_distance"`
	EstimatedDuration string     `json:"estimated_duration"`
	ProposedFare      string     `json:"proposed_fare"`
	Status            TripStatus `json:"status"`
	OfferedAt         time.Time  `json:"offered_at"`
	AcceptedAt        *time.Time `json:"accepted_at,omitempty"`
}

// PassengerRating is the driver's rating of a passenger after a trip
type PassengerRating struct {
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment" validate:"max=500"`
}

// CompletedTrip is a trip in the driver's history
type CompletedTrip struct {
	Trip        TripRequest      `json:"trip"`
	FeeCharged  int64            `json:"fee_charged"`
	CompletedAt time.Time        `json:"completed_at"`
	Rating      *PassengerRating `json:"rating,omitempty"`
}

// AwaitingRating reports whether the passenger has not been rated yet
func (c CompletedTrip) AwaitingRating() bool {
	return c.Rating == nil
}

// TripCompletion is the result of completing the active trip
type TripCompletion struct {
	Trip       TripRequest `json:"trip"`
	FeeCharged int64       `json:"fee_charged"`
	Balance    int64       `json:"balance"`
	RatingStep string      `json:"rating_step"`
}

// TripOffer is the dispatch message that routes a trip request to a driver
type TripOffer struct {
	DriverID string      `json:"driver_id"`
	Trip     TripRequest `json:"trip"`
}
