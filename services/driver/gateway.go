package driver

import (
	"context"

	"github.com/piresc/ojekdriver/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/ojekdriver/services/driver DriverGW

// DriverGW publishes driver events
type DriverGW interface {
	PublishDriverStatus(ctx context.Context, event *models.DriverStatusEvent) error
	PublishTripAccepted(ctx context.Context, event *models.TripEvent) error
	PublishTripCompleted(ctx context.Context, event *models.TripEvent) error
	PublishPassengerRated(ctx context.Context, event *models.RatingEvent) error
	PublishDepositCredited(ctx context.Context, event *models.DepositEvent) error
	PublishLocationUpdate(ctx context.Context, event *models.LocationEvent) error
}
