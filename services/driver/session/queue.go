package session

import "github.com/piresc/ojekdriver/internal/pkg/models"

// Queue holds pending trip offers in arrival order
type Queue struct {
	order []string
	trips map[string]*models.TripRequest
}

// NewQueue creates an empty queue
func NewQueue() *Queue {
	return &Queue{trips: make(map[string]*models.TripRequest)}
}

// Enqueue appends a pending offer
func (q *Queue) Enqueue(trip models.TripRequest) error {
	if _, ok := q.trips[trip.ID]; ok {
		return ErrDuplicateTrip
	}
	trip.Status = models.TripStatusPending
	q.trips[trip.ID] = &trip
	q.order = append(q.order, trip.ID)
	return nil
}

// Get returns the offer with the given id
func (q *Queue) Get(tripID string) (*models.TripRequest, bool) {
	t, ok := q.trips[tripID]
	return t, ok
}

// ListPending returns a fresh snapshot of pending offers
func (q *Queue) ListPending() []models.TripRequest {
	out := make([]models.TripRequest, 0, len(q.order))
	for _, id := range q.order {
		if t := q.trips[id]; t.Status == models.TripStatusPending {
			out = append(out, *t)
		}
	}
	return out
}

// Len returns the number of pending offers
func (q *Queue) Len() int {
	return len(q.ListPending())
}

// Remove drops a trip from the queue entirely
func (q *Queue) Remove(tripID string) {
	if _, ok := q.trips[tripID]; !ok {
		return
	}
	delete(q.trips, tripID)
	for i, id := range q.order {
		if id == tripID {
			q.order = append(q.order[:i], q.order[i+1:]...)
			break
		}
	}
}
