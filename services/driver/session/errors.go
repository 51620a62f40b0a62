package session

import (
	"errors"
	"strings"
)

var (
	ErrNotVerified            = errors.New("driver is not verified")
	ErrMissingField           = errors.New("missing required field")
	ErrAlreadyHasActiveTrip   = errors.New("driver already has an active trip")
	ErrInsufficientBalance    = errors.New("insufficient balance")
	ErrPersistenceUnavailable = errors.New("persistence unavailable")

	ErrTripNotFound             = errors.New("trip not found")
	ErrTripNotAccepted          = errors.New("trip is not the accepted trip")
	ErrTripNotPending           = errors.New("trip is not pending")
	ErrDuplicateTrip            = errors.New("trip already offered")
	ErrBelowMinimumDeposit      = errors.New("amount is below the minimum deposit")
	ErrInvalidAmount            = errors.New("amount must be positive")
	ErrAmountTooLarge           = errors.New("amount would overflow the balance")
	ErrDriverOffline            = errors.New("driver is offline")
	ErrEmptyDocument            = errors.New("document upload is empty")
	ErrUnknownDocument          = errors.New("unknown document kind")
	ErrInvalidVehicleType       = errors.New("invalid vehicle type")
	ErrProfileLocked            = errors.New("profile is locked while verified or under review")
	ErrInvalidRating            = errors.New("rating must be between 1 and 5")
	ErrAlreadyRated             = errors.New("passenger already rated")
	ErrDepositNotFound          = errors.New("deposit not found")
	ErrDepositSettled           = errors.New("deposit already settled")
	ErrUnsupportedPaymentMethod = errors.New("unsupported payment method")
	ErrSessionClosed            = errors.New("session closed")
)

// Onboarding field names, in the order they are reported
const (
	FieldVehicleType         = "vehicleType"
	FieldIDCard              = "idCard"
	FieldDrivingLicense      = "drivingLicense"
	FieldVehicleRegistration = "vehicleRegistration"
	FieldPlateNumber         = "plateNumber"
)

// MissingFieldsError lists every field that blocks onboarding
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// Is lets callers match with errors.Is(err, ErrMissingField)
func (e *MissingFieldsError) Is(target error) bool {
	return target == ErrMissingField
}
