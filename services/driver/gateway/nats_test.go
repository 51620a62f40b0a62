package gateway

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/nats-io/nats-server/v2/server"
	natsserver "github.com/nats-io/nats-server/v2/test"
	"github.com/nats-io/nats.go"
	"github.com/piresc/ojekdriver/internal/pkg/constants"
	"github.com/piresc/ojekdriver/internal/pkg/models"
	natspkg "github.com/piresc/ojekdriver/internal/pkg/nats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPort = 8371

var testServer *server.Server

func TestMain(m *testing.M) {
	opts := natsserver.DefaultTestOptions
	opts.Port = testPort
	testServer = natsserver.RunServer(&opts)

	code := m.Run()

	testServer.Shutdown()
	os.Exit(code)
}

func setup(t *testing.T) (*NATSGateway, *nats.Conn) {
	t.Helper()
	client, err := natspkg.NewClient(testServer.ClientURL(), "gateway-test")
	require.NoError(t, err)
	t.Cleanup(client.Close)

	sub, err := nats.Connect(testServer.ClientURL())
	require.NoError(t, err)
	t.Cleanup(sub.Close)

	return NewNATSGateway(client), sub
}

func receive(t *testing.T, conn *nats.Conn, subject string) <-chan *nats.Msg {
	t.Helper()
	ch := make(chan *nats.Msg, 1)
	s, err := conn.ChanSubscribe(subject, ch)
	require.NoError(t, err)
	t.Cleanup(func() { s.Unsubscribe() })
	require.NoError(t, conn.Flush())
	return ch
}

func await(t *testing.T, ch <-chan *nats.Msg) *nats.Msg {
	t.Helper()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("message not received")
		return nil
	}
}

func TestPublishTripCompleted(t *testing.T) {
	gw, conn := setup(t)
	ch := receive(t, conn, constants.SubjectTripCompleted)

	event := &models.TripEvent{
		DriverID:   "driver-1",
		Trip:       models.TripRequest{ID: "TR-1001", Status: models.TripStatusCompleted},
		FeeCharged: 1000,
		Balance:    149000,
	}
	require.NoError(t, gw.PublishTripCompleted(context.Background(), event))

	var got models.TripEvent
	require.NoError(t, json.Unmarshal(await(t, ch).Data, &got))
	assert.Equal(t, "TR-1001", got.Trip.ID)
	assert.Equal(t, int64(1000), got.FeeCharged)
	assert.Equal(t, int64(149000), got.Balance)
}

func TestPublish_Subjects(t *testing.T) {
	gw, conn := setup(t)
	ctx := context.Background()

	tests := []struct {
		subject string
		publish func() error
	}{
		{constants.SubjectDriverStatus, func() error {
			return gw.PublishDriverStatus(ctx, &models.DriverStatusEvent{DriverID: "driver-1", Online: true})
		}},
		{constants.SubjectTripAccepted, func() error {
			return gw.PublishTripAccepted(ctx, &models.TripEvent{DriverID: "driver-1"})
		}},
		{constants.SubjectTripPassengerRated, func() error {
			return gw.PublishPassengerRated(ctx, &models.RatingEvent{DriverID: "driver-1", Rating: 5})
		}},
		{constants.SubjectDepositCredited, func() error {
			return gw.PublishDepositCredited(ctx, &models.DepositEvent{DriverID: "driver-1", Amount: 50000})
		}},
		{constants.SubjectLocationUpdate, func() error {
			return gw.PublishLocationUpdate(ctx, &models.LocationEvent{DriverID: "driver-1", Geohash: "qqguygv"})
		}},
		{constants.SubjectTripOffered, func() error {
			return gw.PublishTripOffer(ctx, &models.TripOffer{DriverID: "driver-1"})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.subject, func(t *testing.T) {
			ch := receive(t, conn, tt.subject)
			require.NoError(t, tt.publish())

			msg := await(t, ch)
			assert.Equal(t, tt.subject, msg.Subject)
			assert.Contains(t, string(msg.Data), `"driver_id":"driver-1"`)
		})
	}
}

func TestPublish_CancelledContext(t *testing.T) {
	gw, _ := setup(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, gw.PublishDriverStatus(ctx, &models.DriverStatusEvent{}), context.Canceled)
}

func TestNoopGateway(t *testing.T) {
	var gw NoopGateway
	assert.NoError(t, gw.PublishTripCompleted(context.Background(), &models.TripEvent{}))
	assert.NoError(t, gw.PublishLocationUpdate(context.Background(), &models.LocationEvent{}))
}
