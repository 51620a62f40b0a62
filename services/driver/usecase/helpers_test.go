package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/ojekdriver/internal/pkg/logger"
	"github.com/piresc/ojekdriver/internal/pkg/metrics"
	"github.com/piresc/ojekdriver/internal/pkg/models"
	"github.com/piresc/ojekdriver/services/driver/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var fixedNow = time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

type testDeps struct {
	notifications *mocks.MockNotificationRepo
	presence      *mocks.MockPresenceRepo
	documents     *mocks.MockDocumentStore
	gw            *mocks.MockDriverGW
	logs          *observer.ObservedLogs
}

func testConfig() *models.Config {
	return &models.Config{
		Driver: models.DriverConfig{
			MinDeposit:  50000,
			PlatformFee: 1000,
		},
		Payment: models.PaymentConfig{
			Methods:         []string{"bank", "credit_card", "crypto", "pi"},
			CryptoAddresses: map[string]string{"USDT": "TQ7yWallet"},
			CryptoMinimums:  map[string]string{"USDT": "5"},
			PiAPIKey:        "pi-secret-key",
			PiSandbox:       true,
		},
		Location: models.LocationConfig{GeohashPrecision: 7},
	}
}

func seedTrips(string) []models.TripRequest {
	return []models.TripRequest{
		{
			ID:          "TR-1001",
			Passenger:   models.Passenger{Name: "Ahmad Rizki", Rating: 4.8},
			Pickup:      "Jl. Sudirman No. 123, Jakarta Pusat",
			Destination: "Mall Grand Indonesia, Jakarta",
		},
		{
			ID:          "TR-1002",
			Passenger:   models.Passenger{Name: "Siti Nurhaliza", Rating: 4.9},
			Pickup:      "Stasiun Gambir, Jakarta",
			Destination: "Bandara Soekarno-Hatta Terminal 3",
		},
	}
}

func newTestUC(t *testing.T, cfg *models.Config) (*DriverUC, *testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	core, logs := observer.New(zapcore.DebugLevel)
	logger.SetGlobalLogger(logger.NewFromCore(core))

	deps := &testDeps{
		notifications: mocks.NewMockNotificationRepo(ctrl),
		presence:      mocks.NewMockPresenceRepo(ctrl),
		documents:     mocks.NewMockDocumentStore(ctrl),
		gw:            mocks.NewMockDriverGW(ctrl),
		logs:          logs,
	}

	uc := NewDriverUC(cfg, deps.notifications, deps.presence, deps.documents, deps.gw, seedTrips, metrics.New())
	uc.now = func() time.Time { return fixedNow }
	seq := 0
	uc.newTxID = func() string {
		seq++
		return "tx-" + string(rune('0'+seq))
	}
	t.Cleanup(uc.Close)
	return uc, deps
}

// onboard verifies the driver, expecting the document uploads
func onboard(t *testing.T, uc *DriverUC, deps *testDeps, driverID string) {
	t.Helper()
	ctx := context.Background()

	deps.documents.EXPECT().Put(gomock.Any(), driverID, gomock.Any(), gomock.Any()).
		Return("driver-documents/key", nil).Times(len(models.RequiredDocuments))

	_, _, err := uc.SelectVehicle(ctx, driverID, &models.VehicleRequest{VehicleType: models.VehicleMotorcycle, Brand: "Honda", Model: "Vario"})
	require.NoError(t, err)
	for _, kind := range models.RequiredDocuments {
		_, warnings, err := uc.SubmitDocument(ctx, driverID, kind, &models.DocumentUpload{FileName: "doc.jpg", Size: 3, Content: []byte("img")})
		require.NoError(t, err)
		require.Empty(t, warnings)
	}
	_, err = uc.SetPlateNumber(ctx, driverID, "B 1234 XYZ")
	require.NoError(t, err)
	profile, err := uc.CompleteOnboarding(ctx, driverID)
	require.NoError(t, err)
	require.Equal(t, models.VerificationVerified, profile.VerificationState)
}

// fund credits the driver through a synchronous deposit
func fund(t *testing.T, uc *DriverUC, deps *testDeps, driverID string, amount int64) {
	t.Helper()
	deps.notifications.EXPECT().CreatePaymentNotification(gomock.Any(), gomock.Any()).Return(nil)
	deps.gw.EXPECT().PublishDepositCredited(gomock.Any(), gomock.Any()).Return(nil)

	dep, _, err := uc.RequestDeposit(context.Background(), driverID, &models.DepositRequest{Amount: amount, PaymentMethod: models.PaymentBank})
	require.NoError(t, err)
	require.Equal(t, models.NotificationVerified, dep.Status)
}

func goOnline(t *testing.T, uc *DriverUC, deps *testDeps, driverID string) {
	t.Helper()
	deps.presence.EXPECT().SetOnline(gomock.Any(), driverID).Return(nil)
	deps.gw.EXPECT().PublishDriverStatus(gomock.Any(), gomock.Any()).Return(nil)

	status, _, err := uc.GoOnline(context.Background(), driverID)
	require.NoError(t, err)
	require.True(t, status.Online)
}
