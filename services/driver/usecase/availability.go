package usecase

import (
	"context"

	"github.com/piresc/ojekdriver/internal/pkg/logger"
	"github.com/piresc/ojekdriver/internal/pkg/models"
	"github.com/piresc/ojekdriver/services/driver/session"
)

// GetState returns the driver's current snapshot
func (uc *DriverUC) GetState(ctx context.Context, driverID string) (*models.DriverState, error) {
	state, err := uc.session(driverID).Snapshot()
	if err != nil {
		return nil, err
	}
	return &state, nil
}

// GoOnline makes a verified driver available for dispatch
func (uc *DriverUC) GoOnline(ctx context.Context, driverID string) (*models.OnlineStatus, []string, error) {
	status, err := uc.session(driverID).GoOnline()
	if err != nil {
		return nil, nil, err
	}
	uc.refreshOnlineGauge()

	var warnings []string
	if status.LowBalance {
		warnings = append(warnings, session.WarningLowBalance)
	}
	warnings = append(warnings, uc.bestEffort(ctx, targetRedis, "mark online", func(ctx context.Context) error {
		return uc.presenceRepo.SetOnline(ctx, driverID)
	})...)
	warnings = append(warnings, uc.publishStatus(ctx, driverID, true, status.VehicleType)...)

	logger.InfoCtx(ctx, "Driver online",
		logger.DriverID(driverID),
		logger.Rupiah("balance", status.Balance),
		logger.Bool("low_balance", status.LowBalance))
	return &status, warnings, nil
}

// GoOffline removes the driver from dispatch
func (uc *DriverUC) GoOffline(ctx context.Context, driverID string) (*models.OnlineStatus, []string, error) {
	status, err := uc.session(driverID).GoOffline()
	if err != nil {
		return nil, nil, err
	}
	uc.refreshOnlineGauge()

	warnings := uc.markOffline(ctx, driverID, status.VehicleType)
	logger.InfoCtx(ctx, "Driver offline", logger.DriverID(driverID))
	return &status, warnings, nil
}

// EndSession closes the driver's session, cancelling pending background work.
// Ending a session that does not exist is a no-op.
func (uc *DriverUC) EndSession(ctx context.Context, driverID string) error {
	s, ok := uc.sessions.Get(driverID)
	if !ok {
		return nil
	}
	wasOnline := s.Online()
	var vehicle models.VehicleType
	if state, err := s.Snapshot(); err == nil {
		vehicle = state.Profile.VehicleType
	}

	uc.sessions.Remove(driverID)
	uc.refreshOnlineGauge()

	uc.bestEffort(ctx, targetRedis, "clear active trip", func(ctx context.Context) error {
		return uc.presenceRepo.ClearActiveTrip(ctx, driverID)
	})
	if wasOnline {
		uc.markOffline(ctx, driverID, vehicle)
	}

	logger.InfoCtx(ctx, "Driver session ended", logger.DriverID(driverID))
	return nil
}

func (uc *DriverUC) markOffline(ctx context.Context, driverID string, vehicle models.VehicleType) []string {
	warnings := uc.bestEffort(ctx, targetRedis, "mark offline", func(ctx context.Context) error {
		return uc.presenceRepo.SetOffline(ctx, driverID)
	})
	return append(warnings, uc.publishStatus(ctx, driverID, false, vehicle)...)
}

func (uc *DriverUC) publishStatus(ctx context.Context, driverID string, online bool, vehicle models.VehicleType) []string {
	event := &models.DriverStatusEvent{
		DriverID:    driverID,
		Online:      online,
		VehicleType: vehicle,
		Timestamp:   uc.now(),
	}
	return uc.bestEffort(ctx, targetNATS, "publish driver status", func(ctx context.Context) error {
		return uc.driverGW.PublishDriverStatus(ctx, event)
	})
}
