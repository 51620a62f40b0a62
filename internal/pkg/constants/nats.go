package constants

// NATS Subjects
const (
	// Dispatch feed
	SubjectTripOffered = "dispatch.trip.offered"

	// Driver service
	SubjectDriverStatus       = "driver.status"
	SubjectTripAccepted       = "trip.accepted"
	SubjectTripCompleted      = "trip.completed"
	SubjectTripPassengerRated = "trip.passenger_rated"
	SubjectDepositCredited    = "deposit.credited"
	SubjectLocationUpdate     = "location.update"
)

// QueueDriverService is the queue group shared by driver service replicas
const QueueDriverService = "driver-service"
