package usecase

import (
	"context"
	"fmt"

	"github.com/piresc/ojekdriver/internal/pkg/logger"
	"github.com/piresc/ojekdriver/internal/pkg/models"
)

// SelectVehicle sets the vehicle. Changing the type of a verified profile
// re-opens verification and takes the driver offline.
func (uc *DriverUC) SelectVehicle(ctx context.Context, driverID string, req *models.VehicleRequest) (*models.DriverProfile, []string, error) {
	profile, wentOffline, err := uc.session(driverID).SelectVehicle(req.VehicleType, req.Brand, req.Model)
	if err != nil {
		return nil, nil, err
	}

	var warnings []string
	if wentOffline {
		logger.InfoCtx(ctx, "Vehicle change took driver offline",
			logger.DriverID(driverID),
			logger.String("vehicle_type", string(req.VehicleType)))
		warnings = uc.markOffline(ctx, driverID, profile.VehicleType)
		uc.refreshOnlineGauge()
	}
	return &profile, warnings, nil
}

// SubmitDocument records a verification document and stores its content
func (uc *DriverUC) SubmitDocument(ctx context.Context, driverID string, kind models.DocumentKind, upload *models.DocumentUpload) (*models.DriverProfile, []string, error) {
	profile, err := uc.session(driverID).SubmitDocument(kind, *upload)
	if err != nil {
		return nil, nil, err
	}

	warnings := uc.bestEffort(ctx, targetStorage, "store document", func(ctx context.Context) error {
		key, err := uc.documents.Put(ctx, driverID, kind, upload)
		if err != nil {
			return err
		}
		logger.DebugCtx(ctx, "Document stored",
			logger.DriverID(driverID),
			logger.String("kind", string(kind)),
			logger.String("key", key))
		return nil
	})
	return &profile, warnings, nil
}

// SetPlateNumber stores the vehicle plate
func (uc *DriverUC) SetPlateNumber(ctx context.Context, driverID string, plate string) (*models.DriverProfile, error) {
	profile, err := uc.session(driverID).SetPlateNumber(plate)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// CompleteOnboarding submits the profile for verification
func (uc *DriverUC) CompleteOnboarding(ctx context.Context, driverID string) (*models.DriverProfile, error) {
	profile, err := uc.session(driverID).CompleteOnboarding()
	if err != nil {
		return nil, fmt.Errorf("complete onboarding: %w", err)
	}

	logger.InfoCtx(ctx, "Driver onboarding submitted",
		logger.DriverID(driverID),
		logger.String("verification_state", string(profile.VerificationState)))
	return &profile, nil
}

// ReviewApproved is called when a background document review verifies a driver
func (uc *DriverUC) ReviewApproved(driverID string, profile models.DriverProfile) {
	logger.Info("Driver verified after review",
		logger.DriverID(driverID),
		logger.String("vehicle_type", string(profile.VehicleType)))
}
