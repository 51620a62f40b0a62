package session

import (
	"context"
	"sort"
	"sync"

	"github.com/piresc/ojekdriver/internal/pkg/logger"
	"github.com/piresc/ojekdriver/internal/pkg/models"
)

// SeedFunc returns the offers a new session starts with
type SeedFunc func(driverID string) []models.TripRequest

// Registry maps driver ids to their live sessions
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	opts     Options
	listener Listener
	seed     SeedFunc
}

// NewRegistry creates a registry. seed may be nil.
func NewRegistry(opts Options, listener Listener, seed SeedFunc) *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		opts:     opts,
		listener: listener,
		seed:     seed,
	}
}

// Get returns the driver's session if one exists
func (r *Registry) Get(driverID string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[driverID]
	return s, ok
}

// GetOrCreate returns the driver's session, starting a new one on first use
func (r *Registry) GetOrCreate(driverID string) *Session {
	if s, ok := r.Get(driverID); ok {
		return s
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sessions[driverID]; ok {
		return s
	}

	s := New(driverID, r.opts, r.listener)
	if r.seed != nil {
		for _, trip := range r.seed(driverID) {
			if err := s.OfferTrip(trip); err != nil {
				logger.Warn("Failed to seed trip",
					logger.DriverID(driverID),
					logger.TripID(trip.ID),
					logger.Err(err))
			}
		}
	}
	r.sessions[driverID] = s
	logger.Debug("Driver session started", logger.DriverID(driverID))
	return s
}

// Remove closes and drops the driver's session
func (r *Registry) Remove(driverID string) bool {
	r.mu.Lock()
	s, ok := r.sessions[driverID]
	delete(r.sessions, driverID)
	r.mu.Unlock()

	if ok {
		s.Close()
	}
	return ok
}

// DriverIDs returns the ids of live sessions, sorted
func (r *Registry) DriverIDs() []string {
	r.mu.RLock()
	ids := make([]string, 0, len(r.sessions))
	for id := range r.sessions {
		ids = append(ids, id)
	}
	r.mu.RUnlock()

	sort.Strings(ids)
	return ids
}

// Len returns the number of live sessions
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// OnlineCount returns how many live sessions are online
func (r *Registry) OnlineCount() int {
	return len(r.onlineIDs())
}

// OnlineDrivers lists the ids of online sessions, sorted. It lets the
// registry stand in for the presence store when Redis is disabled.
func (r *Registry) OnlineDrivers(context.Context) ([]string, error) {
	return r.onlineIDs(), nil
}

func (r *Registry) onlineIDs() []string {
	r.mu.RLock()
	sessions := make([]*Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		sessions = append(sessions, s)
	}
	r.mu.RUnlock()

	ids := make([]string, 0, len(sessions))
	for _, s := range sessions {
		if s.Online() {
			ids = append(ids, s.DriverID())
		}
	}
	sort.Strings(ids)
	return ids
}

// Close closes every session
func (r *Registry) Close() {
	r.mu.Lock()
	sessions := r.sessions
	r.sessions = make(map[string]*Session)
	r.mu.Unlock()

	for _, s := range sessions {
		s.Close()
	}
}
