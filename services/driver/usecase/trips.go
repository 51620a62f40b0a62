package usecase

import (
	"context"

	"github.com/piresc/ojekdriver/internal/pkg/logger"
	"github.com/piresc/ojekdriver/internal/pkg/models"
)

// OfferTrip queues a dispatch offer for the driver
func (uc *DriverUC) OfferTrip(ctx context.Context, driverID string, trip *models.TripRequest) error {
	if err := uc.session(driverID).OfferTrip(*trip); err != nil {
		return err
	}
	uc.metrics.TripTransition(string(models.TripStatusPending))
	logger.DebugCtx(ctx, "Trip offered",
		logger.DriverID(driverID),
		logger.TripID(trip.ID))
	return nil
}

// ListPendingTrips returns pending offers in arrival order
func (uc *DriverUC) ListPendingTrips(ctx context.Context, driverID string) ([]models.TripRequest, error) {
	return uc.session(driverID).PendingTrips()
}

// GetActiveTrip returns the accepted trip, or nil
func (uc *DriverUC) GetActiveTrip(ctx context.Context, driverID string) (*models.TripRequest, error) {
	return uc.session(driverID).ActiveTrip()
}

// AcceptTrip makes a pending offer the driver's active trip
func (uc *DriverUC) AcceptTrip(ctx context.Context, driverID, tripID string) (*models.TripRequest, []string, error) {
	s := uc.session(driverID)
	trip, err := s.AcceptTrip(tripID)
	if err != nil {
		return nil, nil, err
	}
	uc.metrics.TripTransition(string(trip.Status))

	warnings := uc.bestEffort(ctx, targetRedis, "mark active trip", func(ctx context.Context) error {
		return uc.presenceRepo.SetActiveTrip(ctx, driverID, tripID)
	})

	event := &models.TripEvent{DriverID: driverID, Trip: trip, Timestamp: uc.now()}
	if balance, err := s.Balance(); err == nil {
		event.Balance = balance.Amount
	}
	warnings = append(warnings, uc.bestEffort(ctx, targetNATS, "publish trip accepted", func(ctx context.Context) error {
		return uc.driverGW.PublishTripAccepted(ctx, event)
	})...)

	logger.InfoCtx(ctx, "Trip accepted",
		logger.DriverID(driverID),
		logger.TripID(tripID))
	return &trip, warnings, nil
}

// DeclineTrip drops a pending offer
func (uc *DriverUC) DeclineTrip(ctx context.Context, driverID, tripID string) error {
	if err := uc.session(driverID).DeclineTrip(tripID); err != nil {
		return err
	}
	uc.metrics.TripTransition("declined")
	logger.InfoCtx(ctx, "Trip declined",
		logger.DriverID(driverID),
		logger.TripID(tripID))
	return nil
}

// CompleteTrip finishes the active trip and debits the platform fee
func (uc *DriverUC) CompleteTrip(ctx context.Context, driverID, tripID string) (*models.TripCompletion, []string, error) {
	completion, err := uc.session(driverID).CompleteTrip(tripID)
	if err != nil {
		return nil, nil, err
	}
	uc.metrics.TripTransition(string(completion.Trip.Status))
	uc.metrics.FeeCharged(completion.FeeCharged)

	warnings := uc.bestEffort(ctx, targetRedis, "clear active trip", func(ctx context.Context) error {
		return uc.presenceRepo.ClearActiveTrip(ctx, driverID)
	})

	event := &models.TripEvent{
		DriverID:   driverID,
		Trip:       completion.Trip,
		FeeCharged: completion.FeeCharged,
		Balance:    completion.Balance,
		Timestamp:  uc.now(),
	}
	warnings = append(warnings, uc.bestEffort(ctx, targetNATS, "publish trip completed", func(ctx context.Context) error {
		return uc.driverGW.PublishTripCompleted(ctx, event)
	})...)

	logger.InfoCtx(ctx, "Trip completed",
		logger.DriverID(driverID),
		logger.TripID(tripID),
		logger.Rupiah("fee_charged", completion.FeeCharged),
		logger.Rupiah("balance", completion.Balance))
	return &completion, warnings, nil
}

// RatePassenger records the driver's rating of a completed trip's passenger
func (uc *DriverUC) RatePassenger(ctx context.Context, driverID, tripID string, rating *models.PassengerRating) (*models.CompletedTrip, []string, error) {
	done, err := uc.session(driverID).RatePassenger(tripID, *rating)
	if err != nil {
		return nil, nil, err
	}

	event := &models.RatingEvent{
		DriverID:      driverID,
		TripID:        tripID,
		PassengerName: done.Trip.Passenger.Name,
		Rating:        done.Rating.Rating,
		Comment:       done.Rating.Comment,
		Timestamp:     uc.now(),
	}
	warnings := uc.bestEffort(ctx, targetNATS, "publish passenger rating", func(ctx context.Context) error {
		return uc.driverGW.PublishPassengerRated(ctx, event)
	})
	return &done, warnings, nil
}

// TripHistory lists completed trips in completion order
func (uc *DriverUC) TripHistory(ctx context.Context, driverID string) ([]models.CompletedTrip, error) {
	return uc.session(driverID).History()
}
