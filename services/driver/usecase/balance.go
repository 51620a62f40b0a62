package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/piresc/ojekdriver/internal/pkg/logger"
	"github.com/piresc/ojekdriver/internal/pkg/models"
	"github.com/piresc/ojekdriver/services/driver/session"
)

// GetBalance returns the driver's balance and fee rules
func (uc *DriverUC) GetBalance(ctx context.Context, driverID string) (*models.Balance, error) {
	balance, err := uc.session(driverID).Balance()
	if err != nil {
		return nil, err
	}
	return &balance, nil
}

// RequestDeposit registers a top-up. It is credited immediately or after the
// configured confirmation delay, counted from when the deposit is recorded.
func (uc *DriverUC) RequestDeposit(ctx context.Context, driverID string, req *models.DepositRequest) (*models.Deposit, []string, error) {
	if req.PaymentMethod == models.PaymentCrypto {
		asset := strings.ToUpper(req.CryptoType)
		if _, ok := uc.cfg.Payment.CryptoAddresses[asset]; !ok {
			return nil, nil, fmt.Errorf("%w: crypto asset %q", session.ErrUnsupportedPaymentMethod, req.CryptoType)
		}
	}

	s := uc.session(driverID)
	dep, err := s.RegisterDeposit(uc.newTxID(), *req)
	if err != nil {
		return nil, nil, err
	}
	uc.metrics.Deposit(string(dep.PaymentMethod), string(dep.Status))

	details, err := json.Marshal(map[string]string{"crypto_type": dep.CryptoType})
	if err != nil {
		return nil, nil, fmt.Errorf("encode deposit details: %w", err)
	}
	notification := &models.PaymentNotification{
		PaymentType:   string(dep.PaymentMethod),
		Amount:        dep.Amount,
		Status:        dep.Status,
		TransactionID: dep.TransactionID,
		UserID:        driverID,
		Details:       details,
		Timestamp:     dep.CreatedAt,
		VerifiedAt:    dep.SettledAt,
	}
	warnings := uc.bestEffort(ctx, targetPostgres, "record deposit", func(ctx context.Context) error {
		return uc.notificationRepo.CreatePaymentNotification(ctx, notification)
	})

	switch dep.Status {
	case models.NotificationPending:
		// the confirmation settles the stored row, so it starts only once the insert is done.
		// A manual verify may already have settled it.
		err := s.ScheduleConfirmation(dep.TransactionID)
		if err != nil && !errors.Is(err, session.ErrDepositSettled) {
			return nil, warnings, err
		}
	case models.NotificationVerified:
		warnings = append(warnings, uc.publishDeposit(ctx, dep)...)
	}

	logger.InfoCtx(ctx, "Deposit requested",
		logger.DriverID(driverID),
		logger.TransactionID(dep.TransactionID),
		logger.String("payment_method", string(dep.PaymentMethod)),
		logger.Rupiah("amount", dep.Amount),
		logger.String("status", string(dep.Status)))
	return &dep, warnings, nil
}

// VerifyDeposit settles a pending deposit on behalf of the payment service
func (uc *DriverUC) VerifyDeposit(ctx context.Context, driverID, transactionID string, verified bool) (*models.Deposit, []string, error) {
	s, ok := uc.sessions.Get(driverID)
	if !ok {
		return nil, nil, session.ErrDepositNotFound
	}
	dep, err := s.VerifyDeposit(transactionID, verified)
	if err != nil {
		return nil, nil, err
	}
	return &dep, uc.recordSettlement(ctx, dep), nil
}

// DepositSettled is called when a background confirmation credits a deposit
func (uc *DriverUC) DepositSettled(dep models.Deposit) {
	uc.recordSettlement(context.Background(), dep)
}

func (uc *DriverUC) recordSettlement(ctx context.Context, dep models.Deposit) []string {
	verified := dep.Status == models.NotificationVerified
	uc.metrics.Deposit(string(dep.PaymentMethod), string(dep.Status))

	warnings := uc.bestEffort(ctx, targetPostgres, "settle deposit", func(ctx context.Context) error {
		return uc.notificationRepo.VerifyDeposit(ctx, dep.TransactionID, verified)
	})
	if verified {
		warnings = append(warnings, uc.publishDeposit(ctx, dep)...)
	}

	logger.InfoCtx(ctx, "Deposit settled",
		logger.DriverID(dep.DriverID),
		logger.TransactionID(dep.TransactionID),
		logger.String("status", string(dep.Status)),
		logger.Rupiah("balance", dep.Balance))
	return warnings
}

func (uc *DriverUC) publishDeposit(ctx context.Context, dep models.Deposit) []string {
	event := &models.DepositEvent{
		DriverID:      dep.DriverID,
		TransactionID: dep.TransactionID,
		Amount:        dep.Amount,
		Status:        dep.Status,
		Balance:       dep.Balance,
		Timestamp:     uc.now(),
	}
	return uc.bestEffort(ctx, targetNATS, "publish deposit", func(ctx context.Context) error {
		return uc.driverGW.PublishDepositCredited(ctx, event)
	})
}

// PaymentMethods lists the enabled deposit channels in configured order.
// Secrets are never included.
func (uc *DriverUC) PaymentMethods(ctx context.Context) []models.PaymentMethodInfo {
	methods := make([]models.PaymentMethodInfo, 0, len(uc.cfg.Payment.Methods))
	for _, m := range uc.cfg.Payment.Methods {
		info := models.PaymentMethodInfo{
			Method:     models.PaymentMethod(m),
			MinDeposit: uc.cfg.Driver.MinDeposit,
		}
		switch info.Method {
		case models.PaymentCrypto:
			info.Addresses = copyMap(uc.cfg.Payment.CryptoAddresses)
			info.Minimums = copyMap(uc.cfg.Payment.CryptoMinimums)
		case models.PaymentPi:
			info.Sandbox = uc.cfg.Payment.PiSandbox
		}
		methods = append(methods, info)
	}
	return methods
}

func copyMap(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
