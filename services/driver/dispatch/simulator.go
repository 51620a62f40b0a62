package dispatch

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jaswdr/faker"
	"github.com/piresc/ojekdriver/internal/pkg/logger"
	"github.com/piresc/ojekdriver/internal/pkg/models"
)

// DriverSource lists the drivers that can receive offers
type DriverSource interface {
	OnlineDrivers(ctx context.Context) ([]string, error)
}

// OfferPublisher delivers a fabricated offer
type OfferPublisher interface {
	PublishTripOffer(ctx context.Context, offer *models.TripOffer) error
}

// OfferPublisherFunc adapts a function to OfferPublisher
type OfferPublisherFunc func(ctx context.Context, offer *models.TripOffer) error

func (f OfferPublisherFunc) PublishTripOffer(ctx context.Context, offer *models.TripOffer) error {
	return f(ctx, offer)
}

var places = []string{
	"Blok M Plaza",
	"Monas",
	"Kota Tua",
	"Stasiun Manggarai",
	"Senayan City",
	"Kemang Village",
	"Pasar Baru",
	"Ancol",
	"Kuningan City",
	"Terminal Kampung Rambutan",
}

// Simulator fabricates trip offers for online drivers on a fixed interval
type Simulator struct {
	drivers   DriverSource
	publisher OfferPublisher
	interval  time.Duration
	fake      faker.Faker
	now       func() time.Time

	mu  sync.Mutex
	seq int
}

// NewSimulator creates a simulator; it does nothing until Run
func NewSimulator(drivers DriverSource, publisher OfferPublisher, interval time.Duration) *Simulator {
	return &Simulator{
		drivers:   drivers,
		publisher: publisher,
		interval:  interval,
		fake:      faker.New(),
		now:       time.Now,
	}
}

// Run ticks until ctx is cancelled. A non-positive interval returns immediately.
func (s *Simulator) Run(ctx context.Context) {
	if s.interval <= 0 {
		return
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	logger.Info("Dispatch simulator started", logger.Duration("interval", s.interval))
	for {
		select {
		case <-ctx.Done():
			logger.Info("Dispatch simulator stopped")
			return
		case <-ticker.C:
			if n, err := s.Tick(ctx); err != nil {
				logger.Warn("Dispatch simulation failed", logger.Err(err))
			} else if n > 0 {
				logger.Debug("Simulated trip offers published", logger.Int("count", n))
			}
		}
	}
}

// Tick publishes one offer per online driver and returns how many went out
func (s *Simulator) Tick(ctx context.Context) (int, error) {
	drivers, err := s.drivers.OnlineDrivers(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list online drivers: %w", err)
	}

	published := 0
	for _, driverID := range drivers {
		offer := &models.TripOffer{DriverID: driverID, Trip: s.fabricate()}
		if err := s.publisher.PublishTripOffer(ctx, offer); err != nil {
			logger.Warn("Failed to publish simulated offer",
				logger.DriverID(driverID),
				logger.TripID(offer.Trip.ID),
				logger.Err(err))
			continue
		}
		published++
	}
	return published, nil
}

func (s *Simulator) fabricate() models.TripRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++

	pickup := places[s.fake.IntBetween(0, len(places)-1)]
	destination := pickup
	for destination == pickup {
		destination = places[s.fake.IntBetween(0, len(places)-1)]
	}

	distance := s.fake.Float64(1, 1, 30)
	minutes := int(distance*3) + s.fake.IntBetween(3, 10)
	// Rp 5.000 flag fall plus Rp 3.500 per km, rounded to the nearest 500
	fare := (5000 + int(distance*3500)) / 500 * 500

	return models.TripRequest{
		ID:                fmt.Sprintf("SIM-%d-%d", s.now().Unix(), s.seq),
		Passenger:         models.Passenger{Name: s.fake.Person().Name(), Rating: s.fake.Float64(1, 3, 5)},
		Pickup:            pickup,
		Destination:       destination,
		EstimatedDistance: fmt.Sprintf("%.1f km", distance),
		EstimatedDuration: fmt.Sprintf("%d menit", minutes),
		ProposedFare:      formatRupiah(fare),
	}
}

// formatRupiah renders 25000 as "Rp 25.000"
func formatRupiah(amount int) string {
	digits := fmt.Sprintf("%d", amount)
	out := make([]byte, 0, len(digits)+len(digits)/3)
	for i := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, digits[i])
	}
	return "Rp " + string(out)
}
