package repository

import (
	"context"

	"github.com/piresc/ojekdriver/internal/pkg/models"
)

// NoopNotificationRepo is used when Postgres is disabled
type NoopNotificationRepo struct{}

func (NoopNotificationRepo) CreatePaymentNotification(context.Context, *models.PaymentNotification) error {
	return nil
}

func (NoopNotificationRepo) VerifyDeposit(context.Context, string, bool) error { return nil }

func (NoopNotificationRepo) ListByUser(context.Context, string) ([]models.PaymentNotification, error) {
	return nil, nil
}

// NoopPresenceRepo is used when Redis is disabled
type NoopPresenceRepo struct{}

func (NoopPresenceRepo) SetOnline(context.Context, string) error { return nil }
func (NoopPresenceRepo) SetOffline(context.Context, string) error { return nil }
func (NoopPresenceRepo) SetActiveTrip(context.Context, string, string) error { return nil }
func (NoopPresenceRepo) ClearActiveTrip(context.Context, string) error { return nil }
func (NoopPresenceRepo) OnlineDrivers(context.Context) ([]string, error) { return nil, nil }
func (NoopPresenceRepo) UpdateLocation(context.Context, string, *models.Location, string) error {
	return nil
}

// DiscardDocumentStore accepts uploads without keeping their content
type DiscardDocumentStore struct{}

func (DiscardDocumentStore) Put(_ context.Context, driverID string, kind models.DocumentKind, _ *models.DocumentUpload) (string, error) {
	return driverID + "/" + string(kind), nil
}
