package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/ojekdriver/internal/pkg/models"
	"github.com/piresc/ojekdriver/internal/pkg/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

func setupNotificationRepoTest(t *testing.T) (*NotificationRepo, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db := sqlx.NewDb(mockDB, "sqlmock")
	t.Cleanup(func() { db.Close() })

	repo := NewNotificationRepo(db)
	repo.now = func() time.Time { return testNow }
	return repo, mock
}

func TestCreatePaymentNotification(t *testing.T) {
	repo, mock := setupNotificationRepoTest(t)

	n := &models.PaymentNotification{
		PaymentType:   "bank",
		Amount:        150000,
		Status:        models.NotificationPending,
		TransactionID: "tx-1",
		UserID:        "driver-1",
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO payment_notifications")).
		WithArgs("bank", int64(150000), models.NotificationPending, "tx-1", "driver-1", []byte("{}"), testNow, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

	require.NoError(t, repo.CreatePaymentNotification(context.Background(), n))
	assert.Equal(t, int64(42), n.ID)
	assert.Equal(t, testNow, n.Timestamp)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePaymentNotification_DuplicateTransaction(t *testing.T) {
	repo, mock := setupNotificationRepoTest(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO payment_notifications")).
		WillReturnError(errors.New(`duplicate key value violates unique constraint "payment_notifications_transaction_id_key"`))

	err := repo.CreatePaymentNotification(context.Background(), &models.PaymentNotification{
		PaymentType:   "pi",
		Amount:        50000,
		TransactionID: "tx-1",
		UserID:        "driver-1",
		Details:       []byte(`{"crypto_type":""}`),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create payment notification")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVerifyDeposit(t *testing.T) {
	tests := []struct {
		name     string
		verified bool
		status   models.NotificationStatus
		affected int64
		wantErr  error
	}{
		{name: "verified", verified: true, status: models.NotificationVerified, affected: 1},
		{name: "rejected", verified: false, status: models.NotificationRejected, affected: 1},
		{name: "already settled", verified: true, status: models.NotificationVerified, affected: 0, wantErr: ErrNotificationNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := setupNotificationRepoTest(t)

			mock.ExpectExec(regexp.QuoteMeta("UPDATE payment_notifications")).
				WithArgs(tt.status, testNow, "tx-7").
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			err := repo.VerifyDeposit(context.Background(), "tx-7", tt.verified)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.True(t, retry.IsPermanent(err))
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestVerifyDeposit_DatabaseDown(t *testing.T) {
	repo, mock := setupNotificationRepoTest(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE payment_notifications")).
		WillReturnError(errors.New("driver: bad connection"))

	err := repo.VerifyDeposit(context.Background(), "tx-7", true)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotificationNotFound)
	assert.False(t, retry.IsPermanent(err))
}

func TestListByUser(t *testing.T) {
	repo, mock := setupNotificationRepoTest(t)

	verifiedAt := testNow.Add(2 * time.Second)
	rows := sqlmock.NewRows([]string{"id", "payment_type", "amount", "status", "transaction_id", "user_id", "details", "timestamp", "verified_at"}).
		AddRow(2, "crypto", 75000, "verified", "tx-2", "driver-1", []byte(`{"crypto_type":"USDT"}`), testNow, verifiedAt).
		AddRow(1, "bank", 50000, "pending", "tx-1", "driver-1", []byte(`{}`), testNow.Add(-time.Hour), nil)

	mock.ExpectQuery(regexp.QuoteMeta("FROM payment_notifications")).
		WithArgs("driver-1").
		WillReturnRows(rows)

	out, err := repo.ListByUser(context.Background(), "driver-1")
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "tx-2", out[0].TransactionID)
	assert.Equal(t, models.NotificationVerified, out[0].Status)
	require.NotNil(t, out[0].VerifiedAt)
	assert.Nil(t, out[1].VerifiedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}
