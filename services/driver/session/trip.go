package session

import (
	"fmt"

	"github.com/piresc/ojekdriver/internal/pkg/models"
)

// tripEvent is a driver action on a trip
type tripEvent int

const (
	eventAccept tripEvent = iota
	eventDecline
	eventComplete
)

func (e tripEvent) String() string {
	switch e {
	case eventAccept:
		return "accept"
	case eventDecline:
		return "decline"
	case eventComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// transition is the only place a trip status changes.
// A declined trip ends as cancelled and is then removed from the queue.
func transition(status models.TripStatus, ev tripEvent) (models.TripStatus, error) {
	switch status {
	case models.TripStatusPending:
		switch ev {
		case eventAccept:
			return models.TripStatusAccepted, nil
		case eventDecline:
			return models.TripStatusCancelled, nil
		case eventComplete:
			return status, ErrTripNotAccepted
		}
	case models.TripStatusAccepted:
		switch ev {
		case eventAccept, eventDecline:
			return status, ErrTripNotPending
		case eventComplete:
			return models.TripStatusCompleted, nil
		}
	case models.TripStatusCompleted, models.TripStatusCancelled:
		switch ev {
		case eventAccept, eventDecline:
			return status, ErrTripNotPending
		case eventComplete:
			return status, ErrTripNotAccepted
		}
	}
	return status, fmt.Errorf("no transition from %q on %s", status, ev)
}
