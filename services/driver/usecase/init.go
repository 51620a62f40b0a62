package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/ojekdriver/internal/pkg/circuitbreaker"
	"github.com/piresc/ojekdriver/internal/pkg/logger"
	"github.com/piresc/ojekdriver/internal/pkg/metrics"
	"github.com/piresc/ojekdriver/internal/pkg/models"
	"github.com/piresc/ojekdriver/internal/pkg/retry"
	"github.com/piresc/ojekdriver/services/driver"
	"github.com/piresc/ojekdriver/services/driver/session"
)

// Best-effort targets, used in warnings and metrics
const (
	targetPostgres = "postgres"
	targetRedis    = "redis"
	targetNATS     = "nats"
	targetStorage  = "storage"
)

var (
	_ driver.DriverUC  = (*DriverUC)(nil)
	_ session.Listener = (*DriverUC)(nil)
)

// DriverUC implements driver.DriverUC on top of per-driver sessions.
// Session state is authoritative; repositories and the gateway are mirrors
// whose failures degrade to warnings.
type DriverUC struct {
	cfg              *models.Config
	sessions         *session.Registry
	notificationRepo driver.NotificationRepo
	presenceRepo     driver.PresenceRepo
	documents        driver.DocumentStore
	driverGW         driver.DriverGW
	retrier          *retry.Retrier
	breakers         *circuitbreaker.Set
	metrics          *metrics.Metrics
	now              func() time.Time
	newTxID          func() string
}

// NewDriverUC creates the use case and its session registry. seed may be nil.
func NewDriverUC(
	cfg *models.Config,
	notificationRepo driver.NotificationRepo,
	presenceRepo driver.PresenceRepo,
	documents driver.DocumentStore,
	driverGW driver.DriverGW,
	seed session.SeedFunc,
	m *metrics.Metrics,
) *DriverUC {
	uc := &DriverUC{
		cfg:              cfg,
		notificationRepo: notificationRepo,
		presenceRepo:     presenceRepo,
		documents:        documents,
		driverGW:         driverGW,
		retrier: retry.New(
			retry.FromSettings(cfg.Retry.MaxRetries, cfg.Retry.BaseDelay, cfg.Retry.MaxDelay),
			logger.GetGlobalLogger(),
		),
		breakers: circuitbreaker.NewSet(circuitbreaker.Config{
			FailureThreshold: cfg.Retry.BreakerThreshold,
			Cooldown:         cfg.Retry.BreakerCooldown,
			Ignore:           retry.IsPermanent,
		}),
		metrics: m,
		now:     time.Now,
		newTxID: uuid.NewString,
	}
	uc.sessions = session.NewRegistry(SessionOptions(cfg), uc, seed)
	return uc
}

// SessionOptions derives the per-driver rules from configuration
func SessionOptions(cfg *models.Config) session.Options {
	methods := make([]models.PaymentMethod, 0, len(cfg.Payment.Methods))
	for _, m := range cfg.Payment.Methods {
		methods = append(methods, models.PaymentMethod(m))
	}
	return session.Options{
		MinDeposit:          cfg.Driver.MinDeposit,
		PlatformFee:         cfg.Driver.PlatformFee,
		ReviewDelay:         cfg.Driver.ReviewDelay,
		DepositConfirmDelay: cfg.Driver.DepositConfirmDelay,
		PaymentMethods:      methods,
	}
}

// BreakerStates reports the circuit breaker state per best-effort target
func (uc *DriverUC) BreakerStates() map[string]string {
	return uc.breakers.States()
}

// Sessions exposes the registry for readiness checks
func (uc *DriverUC) Sessions() *session.Registry {
	return uc.sessions
}

// Close ends every driver session
func (uc *DriverUC) Close() {
	uc.sessions.Close()
	uc.metrics.SetOnlineDrivers(0)
}

func (uc *DriverUC) session(driverID string) *session.Session {
	return uc.sessions.GetOrCreate(driverID)
}

// bestEffort runs fn with retries behind the target's circuit breaker. A
// final failure is logged, counted and returned as a client-facing warning;
// it never fails the caller.
func (uc *DriverUC) bestEffort(ctx context.Context, target, op string, fn retry.RetryableFunc) []string {
	err := uc.breakers.For(target).Execute(ctx, func(ctx context.Context) error {
		return uc.retrier.Execute(ctx, fn)
	})
	if err == nil {
		return nil
	}

	wrapped := fmt.Errorf("%s: %w: %v", op, session.ErrPersistenceUnavailable, err)
	uc.metrics.DegradedWrite(target)
	logger.WarnCtx(ctx, "Best-effort write failed",
		logger.String("target", target),
		logger.String("operation", op),
		logger.Err(wrapped))

	return []string{fmt.Sprintf("%s: %s %s", op, target, session.ErrPersistenceUnavailable)}
}

func (uc *DriverUC) refreshOnlineGauge() {
	uc.metrics.SetOnlineDrivers(uc.sessions.OnlineCount())
}
