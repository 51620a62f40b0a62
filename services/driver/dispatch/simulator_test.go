package dispatch

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/piresc/ojekdriver/internal/pkg/models"
	"github.com/piresc/ojekdriver/internal/pkg/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticDrivers struct {
	ids []string
	err error
}

func (s staticDrivers) OnlineDrivers(context.Context) ([]string, error) {
	return s.ids, s.err
}

type recorder struct {
	mu     sync.Mutex
	offers []*models.TripOffer
	failOn string
}

func (r *recorder) PublishTripOffer(_ context.Context, offer *models.TripOffer) error {
	if offer.DriverID == r.failOn {
		return errors.New("nats: connection closed")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.offers = append(r.offers, offer)
	return nil
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.offers)
}

func TestSimulator_Tick(t *testing.T) {
	rec := &recorder{}
	sim := NewSimulator(staticDrivers{ids: []string{"driver-1", "driver-2"}}, rec, time.Second)

	n, err := sim.Tick(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	require.Len(t, rec.offers, 2)

	v := validation.New()
	ids := map[string]bool{}
	for _, offer := range rec.offers {
		trip := offer.Trip
		assert.NoError(t, v.Validate(&trip))
		assert.NotEqual(t, trip.Pickup, trip.Destination)
		assert.Regexp(t, `^Rp \d{1,3}(\.\d{3})*$`, trip.ProposedFare)
		assert.Regexp(t, ` km$`, trip.EstimatedDistance)
		ids[trip.ID] = true
	}
	assert.Len(t, ids, 2, "trip ids must be unique")
}

func TestSimulator_TickSkipsFailedPublish(t *testing.T) {
	rec := &recorder{failOn: "driver-1"}
	sim := NewSimulator(staticDrivers{ids: []string{"driver-1", "driver-2"}}, rec, time.Second)

	n, err := sim.Tick(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "driver-2", rec.offers[0].DriverID)
}

func TestSimulator_TickSourceError(t *testing.T) {
	sim := NewSimulator(staticDrivers{err: errors.New("redis down")}, &recorder{}, time.Second)

	_, err := sim.Tick(context.Background())
	assert.ErrorContains(t, err, "redis down")
}

func TestSimulator_Run(t *testing.T) {
	rec := &recorder{}
	sim := NewSimulator(staticDrivers{ids: []string{"driver-1"}}, rec, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sim.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return rec.count() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("simulator did not stop")
	}
}

func TestSimulator_RunDisabled(t *testing.T) {
	sim := NewSimulator(staticDrivers{ids: []string{"driver-1"}}, &recorder{}, 0)
	// returns immediately without a cancelled context
	sim.Run(context.Background())
}

func TestOfferPublisherFunc(t *testing.T) {
	var got string
	pub := OfferPublisherFunc(func(_ context.Context, offer *models.TripOffer) error {
		got = offer.DriverID
		return nil
	})
	require.NoError(t, pub.PublishTripOffer(context.Background(), &models.TripOffer{DriverID: "driver-9"}))
	assert.Equal(t, "driver-9", got)
}

func TestFormatRupiah(t *testing.T) {
	tests := map[int]string{
		500:     "Rp 500",
		5000:    "Rp 5.000",
		25000:   "Rp 25.000",
		150000:  "Rp 150.000",
		1250000: "Rp 1.250.000",
	}
	for in, want := range tests {
		assert.Equal(t, want, formatRupiah(in))
	}
}
