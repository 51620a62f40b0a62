package models

import "time"

// VehicleType is the kind of vehicle a driver operates
type VehicleType string

const (
	VehicleUnset      VehicleType = ""
	VehicleMotorcycle VehicleType = "motorcycle"
	VehicleCar        VehicleType = "car"
)

// Valid reports whether v names a drivable vehicle
func (v VehicleType) Valid() bool {
	return v == VehicleMotorcycle || v == VehicleCar
}

// DocumentKind identifies one of the verification documents
type DocumentKind string

const (
	DocumentIDCard              DocumentKind = "id_card"
	DocumentDrivingLicense      DocumentKind = "driving_license"
	DocumentVehicleRegistration DocumentKind = "vehicle_registration"
)

// RequiredDocuments lists the documents needed for verification, in review order
var RequiredDocuments = []DocumentKind{
	DocumentIDCard,
	DocumentDrivingLicense,
	DocumentVehicleRegistration,
}

// VerificationState represents where a driver is in onboarding
type VerificationState string

const (
	VerificationUnverified VerificationState = "unverified"
	VerificationPending    VerificationState = "pending"
	VerificationVerified   VerificationState = "verified"
)

// DriverProfile holds the identity and vehicle data used by the verification gate
type DriverProfile struct {
	DriverID          string                `json:"driver_id"`
	VehicleType       VehicleType           `json:"vehicle_type"`
	VehicleBrand      string                `json:"vehicle_brand,omitempty"`
	VehicleModel      string                `json:"vehicle_model,omitempty"`
	Documents         map[DocumentKind]bool `json:"documents"`
	PlateNumber       string                `json:"plate_number"`
	VerificationState VerificationState     `json:"verification_state"`
	VerifiedAt        *time.Time            `json:"verified_at,omitempty"`
}

// DocumentUpload is an uploaded verification file.
// Content is not inspected; any non-empty upload is accepted.
type DocumentUpload struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	Content     []byte `json:"-"`
}

// OnlineStatus is returned when a driver toggles availability
type OnlineStatus struct {
	DriverID    string      `json:"driver_id"`
	Online      bool        `json:"online"`
	VehicleType VehicleType `json:"vehicle_type"`
	LowBalance  bool        `json:"low_balance"`
	Balance     int64       `json:"balance"`
}

// DriverState is a point-in-time snapshot of a driver session
type DriverState struct {
	Profile      DriverProfile `json:"profile"`
	Balance      int64         `json:"balance"`
	Online       bool          `json:"online"`
	ActiveTrip   *TripRequest  `json:"active_trip,omitempty"`
	PendingTrips int           `json:"pending_trips"`
	LastLocation *Location     `json:"last_location,omitempty"`
	Warnings     []string      `json:"warnings,omitempty"`
}

// VehicleRequest selects the driver's vehicle
type VehicleRequest struct {
	VehicleType VehicleType `json:"vehicle_type" validate:"required,oneof=motorcycle car"`
	Brand       string      `json:"brand" validate:"max=50"`
	Model       string      `json:"model" validate:"max=50"`
}

// PlateRequest sets the vehicle plate number
type PlateRequest struct {
	PlateNumber string `json:"plate_number" validate:"required,max=12"`
}
