package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/ojekdriver/internal/pkg/models"
	"github.com/piresc/ojekdriver/services/driver/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestDeposit_Synchronous(t *testing.T) {
	uc, deps := newTestUC(t, testConfig())

	deps.notifications.EXPECT().CreatePaymentNotification(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n *models.PaymentNotification) error {
			assert.Equal(t, "tx-1", n.TransactionID)
			assert.Equal(t, "driver-1", n.UserID)
			assert.Equal(t, "crypto", n.PaymentType)
			assert.Equal(t, models.NotificationVerified, n.Status)
			assert.NotNil(t, n.VerifiedAt)
			assert.JSONEq(t, `{"crypto_type":"USDT"}`, string(n.Details))
			return nil
		})
	deps.gw.EXPECT().PublishDepositCredited(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *models.DepositEvent) error {
			assert.Equal(t, int64(75000), e.Balance)
			return nil
		})

	dep, warnings, err := uc.RequestDeposit(context.Background(), "driver-1", &models.DepositRequest{
		Amount:        75000,
		PaymentMethod: models.PaymentCrypto,
		CryptoType:    "usdt",
	})
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, "tx-1", dep.TransactionID)
	assert.Equal(t, int64(75000), dep.Balance)
}

func TestRequestDeposit_PersistenceDown(t *testing.T) {
	uc, deps := newTestUC(t, testConfig())

	deps.notifications.EXPECT().CreatePaymentNotification(gomock.Any(), gomock.Any()).
		Return(errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"))
	deps.gw.EXPECT().PublishDepositCredited(gomock.Any(), gomock.Any()).Return(nil)

	dep, warnings, err := uc.RequestDeposit(context.Background(), "driver-1", &models.DepositRequest{
		Amount:        150000,
		PaymentMethod: models.PaymentBank,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(150000), dep.Balance)
	assert.Equal(t, []string{"record deposit: postgres persistence unavailable"}, warnings)

	entries := deps.logs.FilterMessage("Best-effort write failed").All()
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].ContextMap()["error"], "connection refused")

	balance, err := uc.GetBalance(context.Background(), "driver-1")
	require.NoError(t, err)
	assert.Equal(t, int64(150000), balance.Amount)
}

func TestRequestDeposit_Rejections(t *testing.T) {
	uc, _ := newTestUC(t, testConfig())
	ctx := context.Background()

	_, _, err := uc.RequestDeposit(ctx, "driver-1", &models.DepositRequest{Amount: 10000, PaymentMethod: models.PaymentBank})
	assert.ErrorIs(t, err, session.ErrBelowMinimumDeposit)

	_, _, err = uc.RequestDeposit(ctx, "driver-1", &models.DepositRequest{Amount: 60000, PaymentMethod: "cash"})
	assert.ErrorIs(t, err, session.ErrUnsupportedPaymentMethod)

	_, _, err = uc.RequestDeposit(ctx, "driver-1", &models.DepositRequest{Amount: 60000, PaymentMethod: models.PaymentCrypto, CryptoType: "DOGE"})
	assert.ErrorIs(t, err, session.ErrUnsupportedPaymentMethod)
}

func TestVerifyDeposit_Manual(t *testing.T) {
	cfg := testConfig()
	cfg.Driver.DepositConfirmDelay = time.Hour
	uc, deps := newTestUC(t, cfg)
	ctx := context.Background()

	deps.notifications.EXPECT().CreatePaymentNotification(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n *models.PaymentNotification) error {
			assert.Equal(t, models.NotificationPending, n.Status)
			assert.Nil(t, n.VerifiedAt)
			return nil
		}).Times(2)

	pending, warnings, err := uc.RequestDeposit(ctx, "driver-1", &models.DepositRequest{Amount: 50000, PaymentMethod: models.PaymentPi})
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, models.NotificationPending, pending.Status)
	assert.Equal(t, int64(0), pending.Balance)

	deps.notifications.EXPECT().VerifyDeposit(gomock.Any(), pending.TransactionID, true).Return(nil)
	deps.gw.EXPECT().PublishDepositCredited(gomock.Any(), gomock.Any()).Return(nil)

	dep, _, err := uc.VerifyDeposit(ctx, "driver-1", pending.TransactionID, true)
	require.NoError(t, err)
	assert.Equal(t, models.NotificationVerified, dep.Status)
	assert.Equal(t, int64(50000), dep.Balance)

	_, _, err = uc.VerifyDeposit(ctx, "driver-1", pending.TransactionID, true)
	assert.ErrorIs(t, err, session.ErrDepositSettled)

	rejected, _, err := uc.RequestDeposit(ctx, "driver-1", &models.DepositRequest{Amount: 50000, PaymentMethod: models.PaymentBank})
	require.NoError(t, err)
	deps.notifications.EXPECT().VerifyDeposit(gomock.Any(), rejected.TransactionID, false).Return(nil)

	dep, _, err = uc.VerifyDeposit(ctx, "driver-1", rejected.TransactionID, false)
	require.NoError(t, err)
	assert.Equal(t, models.NotificationRejected, dep.Status)
	assert.Equal(t, int64(50000), dep.Balance)

	_, _, err = uc.VerifyDeposit(ctx, "driver-9", "tx-1", true)
	assert.ErrorIs(t, err, session.ErrDepositNotFound)
}

func TestDepositSettled_Background(t *testing.T) {
	cfg := testConfig()
	cfg.Driver.DepositConfirmDelay = 10 * time.Millisecond
	uc, deps := newTestUC(t, cfg)

	settled := make(chan *models.DepositEvent, 1)
	deps.notifications.EXPECT().CreatePaymentNotification(gomock.Any(), gomock.Any()).Return(nil)
	deps.notifications.EXPECT().VerifyDeposit(gomock.Any(), "tx-1", true).Return(nil)
	deps.gw.EXPECT().PublishDepositCredited(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *models.DepositEvent) error {
			settled <- e
			return nil
		})

	_, _, err := uc.RequestDeposit(context.Background(), "driver-1", &models.DepositRequest{Amount: 80000, PaymentMethod: models.PaymentCreditCard})
	require.NoError(t, err)

	select {
	case e := <-settled:
		assert.Equal(t, "tx-1", e.TransactionID)
		assert.Equal(t, int64(80000), e.Balance)
	case <-time.After(2 * time.Second):
		t.Fatal("deposit was not confirmed")
	}
}

func TestDepositSettled_WaitsForSlowInsert(t *testing.T) {
	cfg := testConfig()
	cfg.Driver.DepositConfirmDelay = time.Millisecond
	uc, deps := newTestUC(t, cfg)

	var inserted atomic.Bool
	settled := make(chan struct{}, 1)
	deps.notifications.EXPECT().CreatePaymentNotification(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, *models.PaymentNotification) error {
			time.Sleep(50 * time.Millisecond)
			inserted.Store(true)
			return nil
		})
	deps.notifications.EXPECT().VerifyDeposit(gomock.Any(), "tx-1", true).
		DoAndReturn(func(context.Context, string, bool) error {
			assert.True(t, inserted.Load(), "settled before the notification was stored")
			return nil
		})
	deps.gw.EXPECT().PublishDepositCredited(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, *models.DepositEvent) error {
			settled <- struct{}{}
			return nil
		})

	dep, warnings, err := uc.RequestDeposit(context.Background(), "driver-1", &models.DepositRequest{Amount: 60000, PaymentMethod: models.PaymentBank})
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, models.NotificationPending, dep.Status)

	select {
	case <-settled:
	case <-time.After(2 * time.Second):
		t.Fatal("deposit was not confirmed")
	}
}

func TestPaymentMethods_HidesSecrets(t *testing.T) {
	uc, _ := newTestUC(t, testConfig())

	methods := uc.PaymentMethods(context.Background())
	require.Len(t, methods, 4)
	assert.Equal(t, models.PaymentBank, methods[0].Method)
	assert.Equal(t, int64(50000), methods[0].MinDeposit)

	crypto := methods[2]
	assert.Equal(t, models.PaymentCrypto, crypto.Method)
	assert.Equal(t, "TQ7yWallet", crypto.Addresses["USDT"])
	assert.Equal(t, "5", crypto.Minimums["USDT"])

	pi := methods[3]
	assert.True(t, pi.Sandbox)
	assert.NotContains(t, pi.Addresses, "pi-secret-key")
	assert.Nil(t, pi.Addresses)
}
