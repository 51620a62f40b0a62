package driver

import (
	"context"

	"github.com/piresc/ojekdriver/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/ojekdriver/services/driver NotificationRepo,PresenceRepo,DocumentStore

// NotificationRepo persists deposit notifications
type NotificationRepo interface {
	CreatePaymentNotification(ctx context.Context, n *models.PaymentNotification) error
	VerifyDeposit(ctx context.Context, transactionID string, verified bool) error
	ListByUser(ctx context.Context, userID string) ([]models.PaymentNotification, error)
}

// PresenceRepo mirrors driver availability into shared storage
type PresenceRepo interface {
	SetOnline(ctx context.Context, driverID string) error
	SetOffline(ctx context.Context, driverID string) error
	SetActiveTrip(ctx context.Context, driverID, tripID string) error
	ClearActiveTrip(ctx context.Context, driverID string) error
	UpdateLocation(ctx context.Context, driverID string, loc *models.Location, geohash string) error
	OnlineDrivers(ctx context.Context) ([]string, error)
}

// DocumentStore keeps uploaded verification documents
type DocumentStore interface {
	Put(ctx context.Context, driverID string, kind models.DocumentKind, upload *models.DocumentUpload) (string, error)
}
