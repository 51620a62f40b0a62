package usecase

import (
	"context"

	"github.com/piresc/ojekdriver/internal/pkg/models"
	"github.com/piresc/ojekdriver/internal/utils"
)

// UpdateLocation records an online driver's position and shares it
func (uc *DriverUC) UpdateLocation(ctx context.Context, driverID string, loc *models.Location) (*models.LocationEvent, []string, error) {
	stored, err := uc.session(driverID).UpdateLocation(*loc)
	if err != nil {
		return nil, nil, err
	}

	event := &models.LocationEvent{
		DriverID: driverID,
		Location: stored,
		Geohash:  utils.EncodeLocation(stored, uc.cfg.Location.GeohashPrecision),
	}

	warnings := uc.bestEffort(ctx, targetRedis, "store location", func(ctx context.Context) error {
		return uc.presenceRepo.UpdateLocation(ctx, driverID, &stored, event.Geohash)
	})
	warnings = append(warnings, uc.bestEffort(ctx, targetNATS, "publish location", func(ctx context.Context) error {
		return uc.driverGW.PublishLocationUpdate(ctx, event)
	})...)
	return event, warnings, nil
}
