package driver

import (
	"context"

	"github.com/piresc/ojekdriver/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/ojekdriver/services/driver DriverUC

// DriverUC is the driver trip and balance use case. Methods that touch
// best-effort infrastructure return the resulting warnings alongside the result.
type DriverUC interface {
	// driver state
	GetState(ctx context.Context, driverID string) (*models.DriverState, error)
	EndSession(ctx context.Context, driverID string) error

	// verification gate
	SelectVehicle(ctx context.Context, driverID string, req *models.VehicleRequest) (*models.DriverProfile, []string, error)
	SubmitDocument(ctx context.Context, driverID string, kind models.DocumentKind, upload *models.DocumentUpload) (*models.DriverProfile, []string, error)
	SetPlateNumber(ctx context.Context, driverID string, plate string) (*models.DriverProfile, error)
	CompleteOnboarding(ctx context.Context, driverID string) (*models.DriverProfile, error)

	// availability
	GoOnline(ctx context.Context, driverID string) (*models.OnlineStatus, []string, error)
	GoOffline(ctx context.Context, driverID string) (*models.OnlineStatus, []string, error)

	// balance
	GetBalance(ctx context.Context, driverID string) (*models.Balance, error)
	RequestDeposit(ctx context.Context, driverID string, req *models.DepositRequest) (*models.Deposit, []string, error)
	VerifyDeposit(ctx context.Context, driverID, transactionID string, verified bool) (*models.Deposit, []string, error)
	PaymentMethods(ctx context.Context) []models.PaymentMethodInfo

	// trips
	OfferTrip(ctx context.Context, driverID string, trip *models.TripRequest) error
	ListPendingTrips(ctx context.Context, driverID string) ([]models.TripRequest, error)
	GetActiveTrip(ctx context.Context, driverID string) (*models.TripRequest, error)
	AcceptTrip(ctx context.Context, driverID, tripID string) (*models.TripRequest, []string, error)
	DeclineTrip(ctx context.Context, driverID, tripID string) error
	CompleteTrip(ctx context.Context, driverID, tripID string) (*models.TripCompletion, []string, error)
	RatePassenger(ctx context.Context, driverID, tripID string, rating *models.PassengerRating) (*models.CompletedTrip, []string, error)
	TripHistory(ctx context.Context, driverID string) ([]models.CompletedTrip, error)

	// location
	UpdateLocation(ctx context.Context, driverID string, loc *models.Location) (*models.LocationEvent, []string, error)
}
