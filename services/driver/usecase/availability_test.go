package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/ojekdriver/internal/pkg/models"
	"github.com/piresc/ojekdriver/services/driver/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoOnline_RequiresVerification(t *testing.T) {
	uc, _ := newTestUC(t, testConfig())

	_, _, err := uc.GoOnline(context.Background(), "driver-1")
	assert.ErrorIs(t, err, session.ErrNotVerified)
}

func TestGoOnline_ZeroBalanceWarns(t *testing.T) {
	uc, deps := newTestUC(t, testConfig())
	onboard(t, uc, deps, "driver-1")

	deps.presence.EXPECT().SetOnline(gomock.Any(), "driver-1").Return(nil)
	deps.gw.EXPECT().PublishDriverStatus(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *models.DriverStatusEvent) error {
			assert.True(t, e.Online)
			assert.Equal(t, models.VehicleMotorcycle, e.VehicleType)
			assert.Equal(t, fixedNow, e.Timestamp)
			return nil
		})

	status, warnings, err := uc.GoOnline(context.Background(), "driver-1")
	require.NoError(t, err)
	assert.True(t, status.Online)
	assert.True(t, status.LowBalance)
	assert.Equal(t, []string{session.WarningLowBalance}, warnings)
	assert.Equal(t, 1, uc.Sessions().OnlineCount())
}

func TestGoOffline_PresenceDown(t *testing.T) {
	uc, deps := newTestUC(t, testConfig())
	onboard(t, uc, deps, "driver-1")
	fund(t, uc, deps, "driver-1", 50000)
	goOnline(t, uc, deps, "driver-1")

	deps.presence.EXPECT().SetOffline(gomock.Any(), "driver-1").Return(errors.New("redis: client is closed"))
	deps.gw.EXPECT().PublishDriverStatus(gomock.Any(), gomock.Any()).Return(nil)

	status, warnings, err := uc.GoOffline(context.Background(), "driver-1")
	require.NoError(t, err)
	assert.False(t, status.Online)
	assert.Equal(t, []string{"mark offline: redis persistence unavailable"}, warnings)
}

func TestSelectVehicle_ChangeTakesDriverOffline(t *testing.T) {
	uc, deps := newTestUC(t, testConfig())
	ctx := context.Background()
	onboard(t, uc, deps, "driver-1")
	fund(t, uc, deps, "driver-1", 50000)
	goOnline(t, uc, deps, "driver-1")

	deps.presence.EXPECT().SetOffline(gomock.Any(), "driver-1").Return(nil)
	deps.gw.EXPECT().PublishDriverStatus(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *models.DriverStatusEvent) error {
			assert.False(t, e.Online)
			assert.Equal(t, models.VehicleCar, e.VehicleType)
			return nil
		})

	profile, warnings, err := uc.SelectVehicle(ctx, "driver-1", &models.VehicleRequest{VehicleType: models.VehicleCar})
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, models.VerificationUnverified, profile.VerificationState)
	assert.Equal(t, "Honda", profile.VehicleBrand)

	state, err := uc.GetState(ctx, "driver-1")
	require.NoError(t, err)
	assert.False(t, state.Online)

	_, _, err = uc.GoOnline(ctx, "driver-1")
	assert.ErrorIs(t, err, session.ErrNotVerified)
}

func TestSubmitDocument_StorageDown(t *testing.T) {
	uc, deps := newTestUC(t, testConfig())

	deps.documents.EXPECT().Put(gomock.Any(), "driver-1", models.DocumentIDCard, gomock.Any()).
		Return("", errors.New("operation error S3: PutObject, https response error StatusCode: 503"))

	profile, warnings, err := uc.SubmitDocument(context.Background(), "driver-1", models.DocumentIDCard,
		&models.DocumentUpload{FileName: "ktp.jpg", Size: 10})
	require.NoError(t, err)
	assert.True(t, profile.Documents[models.DocumentIDCard])
	assert.Equal(t, []string{"store document: storage persistence unavailable"}, warnings)

	_, _, err = uc.SubmitDocument(context.Background(), "driver-1", models.DocumentDrivingLicense, &models.DocumentUpload{})
	assert.ErrorIs(t, err, session.ErrEmptyDocument)
}

func TestCompleteOnboarding_ListsMissingFields(t *testing.T) {
	uc, _ := newTestUC(t, testConfig())

	_, err := uc.CompleteOnboarding(context.Background(), "driver-1")
	var missing *session.MissingFieldsError
	require.ErrorAs(t, err, &missing)
	assert.ErrorIs(t, err, session.ErrMissingField)
	assert.Equal(t, []string{
		session.FieldVehicleType,
		session.FieldIDCard,
		session.FieldDrivingLicense,
		session.FieldVehicleRegistration,
		session.FieldPlateNumber,
	}, missing.Fields)
}

func TestCompleteOnboarding_AsyncReview(t *testing.T) {
	cfg := testConfig()
	cfg.Driver.ReviewDelay = 10 * time.Millisecond
	uc, deps := newTestUC(t, cfg)
	ctx := context.Background()

	deps.documents.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("k", nil).Times(3)
	_, _, err := uc.SelectVehicle(ctx, "driver-1", &models.VehicleRequest{VehicleType: models.VehicleCar})
	require.NoError(t, err)
	for _, kind := range models.RequiredDocuments {
		_, _, err = uc.SubmitDocument(ctx, "driver-1", kind, &models.DocumentUpload{Size: 1})
		require.NoError(t, err)
	}
	_, err = uc.SetPlateNumber(ctx, "driver-1", "d 4321 abc")
	require.NoError(t, err)

	profile, err := uc.CompleteOnboarding(ctx, "driver-1")
	require.NoError(t, err)
	assert.Equal(t, models.VerificationPending, profile.VerificationState)
	assert.Equal(t, "D 4321 ABC", profile.PlateNumber)

	require.Eventually(t, func() bool {
		state, err := uc.GetState(ctx, "driver-1")
		return err == nil && state.Profile.VerificationState == models.VerificationVerified
	}, 2*time.Second, 5*time.Millisecond)
	assert.Equal(t, 1, deps.logs.FilterMessage("Driver verified after review").Len())
}

func TestEndSession(t *testing.T) {
	uc, deps := newTestUC(t, testConfig())
	ctx := context.Background()
	onboard(t, uc, deps, "driver-1")
	fund(t, uc, deps, "driver-1", 50000)
	goOnline(t, uc, deps, "driver-1")

	deps.presence.EXPECT().ClearActiveTrip(gomock.Any(), "driver-1").Return(nil)
	deps.presence.EXPECT().SetOffline(gomock.Any(), "driver-1").Return(nil)
	deps.gw.EXPECT().PublishDriverStatus(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, uc.EndSession(ctx, "driver-1"))
	assert.Equal(t, 0, uc.Sessions().OnlineCount())

	require.NoError(t, uc.EndSession(ctx, "driver-1"))

	state, err := uc.GetState(ctx, "driver-1")
	require.NoError(t, err)
	assert.Equal(t, models.VerificationUnverified, state.Profile.VerificationState)
	assert.Equal(t, int64(0), state.Balance)
	assert.Equal(t, 2, state.PendingTrips)
}

func TestBestEffort_OpenBreakerSkipsTarget(t *testing.T) {
	cfg := testConfig()
	cfg.Retry.BreakerThreshold = 1
	cfg.Retry.BreakerCooldown = time.Minute
	uc, deps := newTestUC(t, cfg)
	onboard(t, uc, deps, "driver-1")
	fund(t, uc, deps, "driver-1", 50000)

	deps.presence.EXPECT().SetOnline(gomock.Any(), "driver-1").Return(errors.New("dial tcp: connection refused"))
	deps.gw.EXPECT().PublishDriverStatus(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	_, warnings, err := uc.GoOnline(context.Background(), "driver-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"mark online: redis persistence unavailable"}, warnings)
	assert.Equal(t, "OPEN", uc.BreakerStates()["redis"])

	// SetOffline is not expected: the open breaker short-circuits it
	_, warnings, err = uc.GoOffline(context.Background(), "driver-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"mark offline: redis persistence unavailable"}, warnings)
}
