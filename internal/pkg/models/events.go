package models

import "time"

// DriverStatusEvent is published when a driver goes online or offline
type DriverStatusEvent struct {
	DriverID    string      `json:"driver_id"`
	Online      bool        `json:"online"`
	VehicleType VehicleType `json:"vehicle_type"`
	Timestamp   time.Time   `json:"timestamp"`
}

// TripEvent is published on trip transitions
type TripEvent struct {
	DriverID   string      `json:"driver_id"`
	Trip       TripRequest `json:"trip"`
	FeeCharged int64       `json:"fee_charged,omitempty"`
	Balance    int64       `json:"balance"`
	Timestamp  time.Time   `json:"timestamp"`
}

// RatingEvent is published when a driver rates a passenger
type RatingEvent struct {
	DriverID      string    `json:"driver_id"`
	TripID        string    `json:"trip_id"`
	PassengerName string    `json:"passenger_name"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

// DepositEvent is published when a deposit settles
type DepositEvent struct {
	DriverID      string             `json:"driver_id"`
	TransactionID string             `json:"transaction_id"`
	Amount        int64              `json:"amount"`
	Status        NotificationStatus `json:"status"`
	Balance       int64              `json:"balance"`
	Timestamp     time.Time          `json:"timestamp"`
}

// LocationEvent is published when an online driver shares their location
type LocationEvent struct {
	DriverID string   `json:"driver_id"`
	Location Location `json:"location"`
	Geohash  string   `json:"geohash"`
}
