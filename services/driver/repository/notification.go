package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/ojekdriver/internal/pkg/models"
	nrpkg "github.com/piresc/ojekdriver/internal/pkg/newrelic"
	"github.com/piresc/ojekdriver/internal/pkg/retry"
	"github.com/piresc/ojekdriver/services/driver"
)

const notificationsTable = "payment_notifications"

// ErrNotificationNotFound is returned when no pending notification matches
var ErrNotificationNotFound = errors.New("payment notification not found")

// NotificationRepo stores deposit notifications in Postgres
type NotificationRepo struct {
	db  *sqlx.DB
	now func() time.Time
}

// NewNotificationRepo creates a new notification repository
func NewNotificationRepo(db *sqlx.DB) *NotificationRepo {
	return &NotificationRepo{db: db, now: time.Now}
}

var _ driver.NotificationRepo = (*NotificationRepo)(nil)

// CreatePaymentNotification inserts a notification and sets its id
func (r *NotificationRepo) CreatePaymentNotification(ctx context.Context, n *models.PaymentNotification) error {
	if n.Timestamp.IsZero() {
		n.Timestamp = r.now()
	}
	details := n.Details
	if len(details) == 0 {
		details = []byte("{}")
	}

	query := `
		INSERT INTO payment_notifications
			(payment_type, amount, status, transaction_id, user_id, details, timestamp, verified_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	err := nrpkg.WithDatastoreSegment(ctx, newrelic.DatastorePostgres, notificationsTable, "INSERT", func() error {
		return r.db.QueryRowxContext(ctx, query,
			n.PaymentType,
			n.Amount,
			n.Status,
			n.TransactionID,
			n.UserID,
			details,
			n.Timestamp,
			n.VerifiedAt,
		).Scan(&n.ID)
	})
	if err != nil {
		return fmt.Errorf("failed to create payment notification: %w", err)
	}
	return nil
}

// VerifyDeposit settles a pending notification
func (r *NotificationRepo) VerifyDeposit(ctx context.Context, transactionID string, verified bool) error {
	status := models.NotificationRejected
	if verified {
		status = models.NotificationVerified
	}

	query := `
		UPDATE payment_notifications
		SET status = $1, verified_at = $2
		WHERE transaction_id = $3 AND status = 'pending'
	`
	var rows int64
	err := nrpkg.WithDatastoreSegment(ctx, newrelic.DatastorePostgres, notificationsTable, "UPDATE", func() error {
		res, err := r.db.ExecContext(ctx, query, status, r.now(), transactionID)
		if err != nil {
			return err
		}
		rows, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to verify deposit: %w", err)
	}
	if rows == 0 {
		return retry.Permanent(fmt.Errorf("%w: %s", ErrNotificationNotFound, transactionID))
	}
	return nil
}

// ListByUser returns a driver's notifications, newest first
func (r *NotificationRepo) ListByUser(ctx context.Context, userID string) ([]models.PaymentNotification, error) {
	query := `
		SELECT id, payment_type, amount, status, transaction_id, user_id, details, timestamp, verified_at
		FROM payment_notifications
		WHERE user_id = $1
		ORDER BY timestamp DESC, id DESC
	`
	var out []models.PaymentNotification
	err := nrpkg.WithDatastoreSegment(ctx, newrelic.DatastorePostgres, notificationsTable, "SELECT", func() error {
		return r.db.SelectContext(ctx, &out, query, userID)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list payment notifications: %w", err)
	}
	return out, nil
}
