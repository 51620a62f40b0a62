package gateway

import (
	"context"

	"github.com/piresc/ojekdriver/internal/pkg/constants"
	"github.com/piresc/ojekdriver/internal/pkg/models"
	natspkg "github.com/piresc/ojekdriver/internal/pkg/nats"
	nrpkg "github.com/piresc/ojekdriver/internal/pkg/newrelic"
	"github.com/piresc/ojekdriver/services/driver"
)

// publisher is the part of the NATS client the gateway needs
type publisher interface {
	PublishJSON(subject string, v interface{}) error
}

// NATSGateway publishes driver events on NATS
type NATSGateway struct {
	client publisher
}

var _ driver.DriverGW = (*NATSGateway)(nil)

// NewNATSGateway creates a gateway on the shared client
func NewNATSGateway(client *natspkg.Client) *NATSGateway {
	return &NATSGateway{client: client}
}

func (g *NATSGateway) publish(ctx context.Context, subject string, v interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return nrpkg.WithPublishSegment(ctx, subject, func() error {
		return g.client.PublishJSON(subject, v)
	})
}

// PublishDriverStatus publishes an online/offline change
func (g *NATSGateway) PublishDriverStatus(ctx context.Context, event *models.DriverStatusEvent) error {
	return g.publish(ctx, constants.SubjectDriverStatus, event)
}

// PublishTripAccepted publishes an accepted trip
func (g *NATSGateway) PublishTripAccepted(ctx context.Context, event *models.TripEvent) error {
	return g.publish(ctx, constants.SubjectTripAccepted, event)
}

// PublishTripCompleted publishes a completed trip with the fee charged
func (g *NATSGateway) PublishTripCompleted(ctx context.Context, event *models.TripEvent) error {
	return g.publish(ctx, constants.SubjectTripCompleted, event)
}

// PublishPassengerRated publishes the driver's rating of a passenger
func (g *NATSGateway) PublishPassengerRated(ctx context.Context, event *models.RatingEvent) error {
	return g.publish(ctx, constants.SubjectTripPassengerRated, event)
}

// PublishDepositCredited publishes a settled deposit
func (g *NATSGateway) PublishDepositCredited(ctx context.Context, event *models.DepositEvent) error {
	return g.publish(ctx, constants.SubjectDepositCredited, event)
}

// PublishLocationUpdate publishes a shared location
func (g *NATSGateway) PublishLocationUpdate(ctx context.Context, event *models.LocationEvent) error {
	return g.publish(ctx, constants.SubjectLocationUpdate, event)
}

// PublishTripOffer publishes a dispatch offer, used by the simulator
func (g *NATSGateway) PublishTripOffer(ctx context.Context, offer *models.TripOffer) error {
	return g.publish(ctx, constants.SubjectTripOffered, offer)
}

// NoopGateway drops events when NATS is disabled
type NoopGateway struct{}

var _ driver.DriverGW = NoopGateway{}

func (NoopGateway) PublishDriverStatus(context.Context, *models.DriverStatusEvent) error { return nil }
func (NoopGateway) PublishTripAccepted(context.Context, *models.TripEvent) error { return nil }
func (NoopGateway) PublishTripCompleted(context.Context, *models.TripEvent) error { return nil }
func (NoopGateway) PublishPassengerRated(context.Context, *models.RatingEvent) error { return nil }
func (NoopGateway) PublishDepositCredited(context.Context, *models.DepositEvent) error { return nil }
func (NoopGateway) PublishLocationUpdate(context.Context, *models.LocationEvent) error { return nil }
