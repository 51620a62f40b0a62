package nats

import (
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/nats-io/nats-server/v2/server"
	natsserver "github.com/nats-io/nats-server/v2/test"
	"github.com/piresc/ojekdriver/internal/pkg/constants"
	"github.com/piresc/ojekdriver/internal/pkg/models"
	natspkg "github.com/piresc/ojekdriver/internal/pkg/nats"
	"github.com/piresc/ojekdriver/services/driver/mocks"
	"github.com/piresc/ojekdriver/services/driver/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPort = 8372

var testServer *server.Server

func TestMain(m *testing.M) {
	opts := natsserver.DefaultTestOptions
	opts.Port = testPort
	testServer = natsserver.RunServer(&opts)

	code := m.Run()

	testServer.Shutdown()
	os.Exit(code)
}

func validOffer(driverID string) []byte {
	data, _ := json.Marshal(models.TripOffer{
		DriverID: driverID,
		Trip: models.TripRequest{
			ID:          "TR-3001",
			Passenger:   models.Passenger{Name: "Dewi", Rating: 4.9},
			Pickup:      "Monas",
			Destination: "Ancol",
		},
	})
	return data
}

func TestHandleTripOffered(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		ucErr   error
		callsUC bool
		wantErr bool
	}{
		{name: "offered", data: validOffer("driver-1"), callsUC: true},
		{name: "duplicate is not an error", data: validOffer("driver-1"), ucErr: session.ErrDuplicateTrip, callsUC: true},
		{name: "use case failure", data: validOffer("driver-1"), ucErr: errors.New("session closed"), callsUC: true, wantErr: true},
		{name: "malformed json", data: []byte("{"), wantErr: true},
		{name: "missing driver", data: validOffer(""), wantErr: true},
		{name: "invalid trip", data: []byte(`{"driver_id":"driver-1","trip":{"id":"TR-1"}}`), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockUC := mocks.NewMockDriverUC(ctrl)
			if tt.callsUC {
				mockUC.EXPECT().OfferTrip(gomock.Any(), "driver-1", gomock.Any()).Return(tt.ucErr)
			}

			h := NewDispatchHandler(mockUC, nil, nil)
			err := h.handleTripOffered(tt.data)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestInitNATSConsumers_DeliversOffers(t *testing.T) {
	client, err := natspkg.NewClient(testServer.ClientURL(), "dispatch-test")
	require.NoError(t, err)
	defer client.Close()

	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockDriverUC(ctrl)

	received := make(chan *models.TripRequest, 1)
	mockUC.EXPECT().OfferTrip(gomock.Any(), "driver-7", gomock.Any()).
		DoAndReturn(func(_ interface{}, _ string, trip *models.TripRequest) error {
			received <- trip
			return nil
		})

	h := NewDispatchHandler(mockUC, client, nil)
	require.NoError(t, h.InitNATSConsumers())
	defer h.Stop()

	require.NoError(t, client.Publish(constants.SubjectTripOffered, validOffer("driver-7")))

	select {
	case trip := <-received:
		assert.Equal(t, "TR-3001", trip.ID)
	case <-time.After(2 * time.Second):
		t.Fatal("offer not delivered")
	}
}

func TestInitNATSConsumers_NilClient(t *testing.T) {
	h := NewDispatchHandler(nil, nil, nil)
	assert.Error(t, h.InitNATSConsumers())
}
