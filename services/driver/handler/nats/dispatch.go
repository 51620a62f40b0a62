package nats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/ojekdriver/internal/pkg/constants"
	"github.com/piresc/ojekdriver/internal/pkg/logger"
	"github.com/piresc/ojekdriver/internal/pkg/models"
	natspkg "github.com/piresc/ojekdriver/internal/pkg/nats"
	"github.com/piresc/ojekdriver/internal/pkg/validation"
	"github.com/piresc/ojekdriver/services/driver"
	"github.com/piresc/ojekdriver/services/driver/session"
)

const handleTimeout = 5 * time.Second

// DispatchHandler consumes dispatch offers from NATS
type DispatchHandler struct {
	driverUC   driver.DriverUC
	natsClient *natspkg.Client
	validator  *validation.Validator
	nrApp      *newrelic.Application
	consumers  []*natspkg.Consumer
}

// NewDispatchHandler creates a new dispatch NATS handler
func NewDispatchHandler(
	driverUC driver.DriverUC,
	client *natspkg.Client,
	nrApp *newrelic.Application,
) *DispatchHandler {
	return &DispatchHandler{
		driverUC:   driverUC,
		natsClient: client,
		validator:  validation.New(),
		nrApp:      nrApp,
	}
}

// InitNATSConsumers subscribes to trip offers in the driver service queue group
func (h *DispatchHandler) InitNATSConsumers() error {
	consumer, err := natspkg.NewConsumer(h.natsClient, constants.SubjectTripOffered, constants.QueueDriverService, h.handleTripOffered)
	if err != nil {
		return fmt.Errorf("failed to create trip offered consumer: %w", err)
	}
	h.consumers = append(h.consumers, consumer)

	logger.Info("NATS consumers initialized",
		logger.String("subject", constants.SubjectTripOffered),
		logger.String("queue_group", constants.QueueDriverService))
	return nil
}

// Stop unsubscribes every consumer
func (h *DispatchHandler) Stop() {
	for _, c := range h.consumers {
		c.Stop()
	}
	h.consumers = nil
}

func (h *DispatchHandler) handleTripOffered(data []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), handleTimeout)
	defer cancel()

	if h.nrApp != nil {
		txn := h.nrApp.StartTransaction("NATS/" + constants.SubjectTripOffered)
		defer txn.End()
		ctx = newrelic.NewContext(ctx, txn)
	}

	var offer models.TripOffer
	if err := json.Unmarshal(data, &offer); err != nil {
		return fmt.Errorf("failed to unmarshal trip offer: %w", err)
	}
	if offer.DriverID == "" {
		return errors.New("trip offer has no driver id")
	}
	if err := h.validator.Validate(&offer.Trip); err != nil {
		return fmt.Errorf("invalid trip offer %s: %w", offer.Trip.ID, err)
	}

	err := h.driverUC.OfferTrip(ctx, offer.DriverID, &offer.Trip)
	if errors.Is(err, session.ErrDuplicateTrip) {
		// redelivery of an offer we already hold
		logger.DebugCtx(ctx, "Duplicate trip offer ignored",
			logger.DriverID(offer.DriverID),
			logger.TripID(offer.Trip.ID))
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to offer trip %s: %w", offer.Trip.ID, err)
	}
	return nil
}
