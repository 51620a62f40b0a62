package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/piresc/ojekdriver/internal/pkg/logger"
	"github.com/piresc/ojekdriver/internal/pkg/models"
	"github.com/piresc/ojekdriver/internal/pkg/task"
)

// WarningLowBalance is attached to snapshots and online toggles at zero balance
const WarningLowBalance = "low_balance"

// Options holds the per-driver trip and balance rules
type Options struct {
	MinDeposit          int64
	PlatformFee         int64
	ReviewDelay         time.Duration
	DepositConfirmDelay time.Duration
	PaymentMethods      []models.PaymentMethod
	Now                 func() time.Time
}

// Listener receives results of background work. Calls happen outside the
// session lock and never after the session is closed.
type Listener interface {
	ReviewApproved(driverID string, profile models.DriverProfile)
	DepositSettled(deposit models.Deposit)
}

// Session owns one driver's state. Every method takes the session lock, so
// operations on a driver apply in invocation order.
type Session struct {
	mu sync.Mutex

	driverID string
	opts     Options
	listener Listener
	tasks    *task.Scheduler

	gate    *Gate
	ledger  *Ledger
	queue   *Queue
	active  *models.TripRequest
	history []models.CompletedTrip
	online  bool
	loc     *models.Location

	deposits     map[string]*models.Deposit
	depositTasks map[string]*task.Task
	reviewTask   *task.Task

	closed bool
}

// New creates a session for the driver
func New(driverID string, opts Options, listener Listener) *Session {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Session{
		driverID:     driverID,
		opts:         opts,
		listener:     listener,
		tasks:        task.NewScheduler(),
		gate:         NewGate(driverID),
		ledger:       NewLedger(opts.MinDeposit),
		queue:        NewQueue(),
		deposits:     make(map[string]*models.Deposit),
		depositTasks: make(map[string]*task.Task),
	}
}

// DriverID returns the driver that owns the session
func (s *Session) DriverID() string {
	return s.driverID
}

func (s *Session) lock() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrSessionClosed
	}
	return nil
}

// Snapshot returns the current driver state
func (s *Session) Snapshot() (models.DriverState, error) {
	if err := s.lock(); err != nil {
		return models.DriverState{}, err
	}
	defer s.mu.Unlock()

	state := models.DriverState{
		Profile:      s.gate.Profile(),
		Balance:      s.ledger.Amount(),
		Online:       s.online,
		PendingTrips: s.queue.Len(),
	}
	if s.active != nil {
		t := *s.active
		state.ActiveTrip = &t
	}
	if s.loc != nil {
		l := *s.loc
		state.LastLocation = &l
	}
	if !s.ledger.CanGoOnline() {
		state.Warnings = append(state.Warnings, WarningLowBalance)
	}
	return state, nil
}

// SelectVehicle sets the vehicle type. A change after verification re-opens
// the gate and forces the driver offline; wentOffline reports that.
func (s *Session) SelectVehicle(v models.VehicleType, brand, model string) (profile models.DriverProfile, wentOffline bool, err error) {
	if err := s.lock(); err != nil {
		return models.DriverProfile{}, false, err
	}
	defer s.mu.Unlock()

	reopened, err := s.gate.SelectVehicle(v, brand, model)
	if err != nil {
		return models.DriverProfile{}, false, err
	}
	if reopened {
		if s.reviewTask != nil {
			s.reviewTask.Cancel()
			s.reviewTask = nil
		}
		wentOffline = s.online
		s.online = false
	}
	return s.gate.Profile(), wentOffline, nil
}

// SubmitDocument records an uploaded verification document
func (s *Session) SubmitDocument(kind models.DocumentKind, upload models.DocumentUpload) (models.DriverProfile, error) {
	if err := s.lock(); err != nil {
		return models.DriverProfile{}, err
	}
	defer s.mu.Unlock()

	if err := s.gate.SubmitDocument(kind, upload); err != nil {
		return models.DriverProfile{}, err
	}
	return s.gate.Profile(), nil
}

// SetPlateNumber stores the vehicle plate
func (s *Session) SetPlateNumber(plate string) (models.DriverProfile, error) {
	if err := s.lock(); err != nil {
		return models.DriverProfile{}, err
	}
	defer s.mu.Unlock()

	if err := s.gate.SetPlateNumber(plate); err != nil {
		return models.DriverProfile{}, err
	}
	return s.gate.Profile(), nil
}

// CompleteOnboarding verifies the driver, or with a review delay moves the
// profile to pending and approves it in the background.
func (s *Session) CompleteOnboarding() (models.DriverProfile, error) {
	if err := s.lock(); err != nil {
		return models.DriverProfile{}, err
	}
	defer s.mu.Unlock()

	if s.opts.ReviewDelay <= 0 {
		if err := s.gate.CompleteOnboarding(s.opts.Now()); err != nil {
			return models.DriverProfile{}, err
		}
		return s.gate.Profile(), nil
	}

	wasUnverified := !s.gate.locked()
	if err := s.gate.SubmitForReview(); err != nil {
		return models.DriverProfile{}, err
	}
	if wasUnverified {
		s.reviewTask = s.tasks.After("review:"+s.driverID, s.opts.ReviewDelay, s.approveReview)
	}
	return s.gate.Profile(), nil
}

func (s *Session) approveReview(context.Context) {
	s.mu.Lock()
	if s.closed || !s.gate.Approve(s.opts.Now()) {
		s.mu.Unlock()
		return
	}
	s.reviewTask = nil
	profile := s.gate.Profile()
	s.mu.Unlock()

	if s.listener != nil {
		s.listener.ReviewApproved(s.driverID, profile)
	}
}

// GoOnline makes the driver available. A zero balance is allowed but flagged.
func (s *Session) GoOnline() (models.OnlineStatus, error) {
	if err := s.lock(); err != nil {
		return models.OnlineStatus{}, err
	}
	defer s.mu.Unlock()

	if !s.gate.Verified() {
		return models.OnlineStatus{}, ErrNotVerified
	}
	s.online = true
	return s.onlineStatus(), nil
}

// GoOffline makes the driver unavailable
func (s *Session) GoOffline() (models.OnlineStatus, error) {
	if err := s.lock(); err != nil {
		return models.OnlineStatus{}, err
	}
	defer s.mu.Unlock()

	s.online = false
	return s.onlineStatus(), nil
}

func (s *Session) onlineStatus() models.OnlineStatus {
	return models.OnlineStatus{
		DriverID:    s.driverID,
		Online:      s.online,
		VehicleType: s.gate.profile.VehicleType,
		LowBalance:  !s.ledger.CanGoOnline(),
		Balance:     s.ledger.Amount(),
	}
}

// Balance returns the driver's balance with the fee rules
func (s *Session) Balance() (models.Balance, error) {
	if err := s.lock(); err != nil {
		return models.Balance{}, err
	}
	defer s.mu.Unlock()

	return models.Balance{
		DriverID:    s.driverID,
		Amount:      s.ledger.Amount(),
		LowBalance:  !s.ledger.CanGoOnline(),
		PlatformFee: s.opts.PlatformFee,
		MinDeposit:  s.opts.MinDeposit,
	}, nil
}

func (s *Session) methodAllowed(m models.PaymentMethod) bool {
	for _, allowed := range s.opts.PaymentMethods {
		if allowed == m {
			return true
		}
	}
	return false
}

// RequestDeposit registers a pending deposit under txID. Without a confirm
// delay the deposit is credited before returning; otherwise a background
// task confirms it.
func (s *Session) RequestDeposit(txID string, req models.DepositRequest) (models.Deposit, error) {
	dep, err := s.RegisterDeposit(txID, req)
	if err != nil || dep.Status != models.NotificationPending {
		return dep, err
	}
	if err := s.ScheduleConfirmation(txID); err != nil {
		return models.Deposit{}, err
	}
	return dep, nil
}

// RegisterDeposit is RequestDeposit without the confirmation task. Callers
// that record the deposit elsewhere first schedule it with ScheduleConfirmation.
func (s *Session) RegisterDeposit(txID string, req models.DepositRequest) (models.Deposit, error) {
	if err := s.lock(); err != nil {
		return models.Deposit{}, err
	}
	defer s.mu.Unlock()

	if err := s.ledger.ValidateCredit(req.Amount); err != nil {
		return models.Deposit{}, err
	}
	if !s.methodAllowed(req.PaymentMethod) {
		return models.Deposit{}, ErrUnsupportedPaymentMethod
	}

	dep := &models.Deposit{
		TransactionID: txID,
		DriverID:      s.driverID,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		CryptoType:    strings.ToUpper(req.CryptoType),
		Status:        models.NotificationPending,
		Balance:       s.ledger.Amount(),
		CreatedAt:     s.opts.Now(),
	}
	s.deposits[txID] = dep

	if s.opts.DepositConfirmDelay <= 0 {
		s.settle(dep, true)
	}
	return *dep, nil
}

// ScheduleConfirmation starts the background confirmation of a pending deposit
func (s *Session) ScheduleConfirmation(txID string) error {
	if err := s.lock(); err != nil {
		return err
	}
	defer s.mu.Unlock()

	dep, ok := s.deposits[txID]
	if !ok {
		return ErrDepositNotFound
	}
	if dep.Status != models.NotificationPending {
		return ErrDepositSettled
	}
	if _, ok := s.depositTasks[txID]; ok {
		return nil
	}
	s.depositTasks[txID] = s.tasks.After("deposit:"+txID, s.opts.DepositConfirmDelay, func(context.Context) {
		s.confirmDeposit(txID)
	})
	return nil
}

func (s *Session) confirmDeposit(txID string) {
	s.mu.Lock()
	dep, ok := s.deposits[txID]
	if s.closed || !ok || dep.Status != models.NotificationPending {
		s.mu.Unlock()
		return
	}
	delete(s.depositTasks, txID)
	s.settle(dep, true)
	out := *dep
	s.mu.Unlock()

	if s.listener != nil {
		s.listener.DepositSettled(out)
	}
}

// settle must be called with the lock held
func (s *Session) settle(dep *models.Deposit, verified bool) {
	now := s.opts.Now()
	dep.SettledAt = &now
	if !verified {
		dep.Status = models.NotificationRejected
		dep.Balance = s.ledger.Amount()
		return
	}
	balance, err := s.ledger.Credit(dep.Amount)
	if err != nil {
		// amounts are validated on request; an earlier pending deposit can still push this one past the limit
		logger.Warn("Deposit credit rejected",
			logger.TransactionID(dep.TransactionID),
			logger.Err(err))
		dep.Status = models.NotificationRejected
		dep.Balance = balance
		return
	}
	dep.Status = models.NotificationVerified
	dep.Balance = balance
}

// VerifyDeposit settles a pending deposit by hand, cancelling its confirmation task
func (s *Session) VerifyDeposit(txID string, verified bool) (models.Deposit, error) {
	if err := s.lock(); err != nil {
		return models.Deposit{}, err
	}
	defer s.mu.Unlock()

	dep, ok := s.deposits[txID]
	if !ok {
		return models.Deposit{}, ErrDepositNotFound
	}
	if dep.Status != models.NotificationPending {
		return models.Deposit{}, ErrDepositSettled
	}
	if t, ok := s.depositTasks[txID]; ok {
		t.Cancel()
		delete(s.depositTasks, txID)
	}
	s.settle(dep, verified)
	return *dep, nil
}

// Deposit returns a deposit by transaction id
func (s *Session) Deposit(txID string) (models.Deposit, error) {
	if err := s.lock(); err != nil {
		return models.Deposit{}, err
	}
	defer s.mu.Unlock()

	dep, ok := s.deposits[txID]
	if !ok {
		return models.Deposit{}, ErrDepositNotFound
	}
	return *dep, nil
}

// OfferTrip adds a dispatch offer to the pending queue
func (s *Session) OfferTrip(trip models.TripRequest) error {
	if err := s.lock(); err != nil {
		return err
	}
	defer s.mu.Unlock()

	if s.active != nil && s.active.ID == trip.ID {
		return ErrDuplicateTrip
	}
	for _, done := range s.history {
		if done.Trip.ID == trip.ID {
			return ErrDuplicateTrip
		}
	}
	if trip.OfferedAt.IsZero() {
		trip.OfferedAt = s.opts.Now()
	}
	return s.queue.Enqueue(trip)
}

// PendingTrips lists pending offers in arrival order
func (s *Session) PendingTrips() ([]models.TripRequest, error) {
	if err := s.lock(); err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	return s.queue.ListPending(), nil
}

// ActiveTrip returns the accepted trip, if any
func (s *Session) ActiveTrip() (*models.TripRequest, error) {
	if err := s.lock(); err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	if s.active == nil {
		return nil, nil
	}
	t := *s.active
	return &t, nil
}

// AcceptTrip makes a pending offer the sole active trip
func (s *Session) AcceptTrip(tripID string) (models.TripRequest, error) {
	if err := s.lock(); err != nil {
		return models.TripRequest{}, err
	}
	defer s.mu.Unlock()

	if s.active != nil {
		return models.TripRequest{}, ErrAlreadyHasActiveTrip
	}
	trip, ok := s.queue.Get(tripID)
	if !ok {
		return models.TripRequest{}, ErrTripNotFound
	}
	if !s.gate.Verified() {
		return models.TripRequest{}, ErrNotVerified
	}
	if !s.online {
		return models.TripRequest{}, ErrDriverOffline
	}
	if !s.ledger.Covers(s.opts.PlatformFee) {
		return models.TripRequest{}, ErrInsufficientBalance
	}

	next, err := transition(trip.Status, eventAccept)
	if err != nil {
		return models.TripRequest{}, err
	}
	now := s.opts.Now()
	trip.Status = next
	trip.AcceptedAt = &now

	s.queue.Remove(tripID)
	s.active = trip
	return *trip, nil
}

// DeclineTrip removes a pending offer without keeping a record
func (s *Session) DeclineTrip(tripID string) error {
	if err := s.lock(); err != nil {
		return err
	}
	defer s.mu.Unlock()

	trip, ok := s.queue.Get(tripID)
	if !ok {
		if s.active != nil && s.active.ID == tripID {
			return ErrTripNotPending
		}
		return ErrTripNotFound
	}
	if _, err := transition(trip.Status, eventDecline); err != nil {
		return err
	}
	s.queue.Remove(tripID)
	return nil
}

// CompleteTrip finishes the active trip: it debits the platform fee, clears
// the active trip and hands the trip to the rating step.
func (s *Session) CompleteTrip(tripID string) (models.TripCompletion, error) {
	if err := s.lock(); err != nil {
		return models.TripCompletion{}, err
	}
	defer s.mu.Unlock()

	if s.active == nil || s.active.ID != tripID {
		return models.TripCompletion{}, ErrTripNotAccepted
	}
	next, err := transition(s.active.Status, eventComplete)
	if err != nil {
		return models.TripCompletion{}, err
	}

	var fee int64
	if s.opts.PlatformFee > 0 {
		fee, err = s.ledger.Debit(s.opts.PlatformFee)
		if err != nil {
			return models.TripCompletion{}, err
		}
	}

	trip := *s.active
	trip.Status = next
	s.active = nil

	s.history = append(s.history, models.CompletedTrip{
		Trip:        trip,
		FeeCharged:  fee,
		CompletedAt: s.opts.Now(),
	})

	return models.TripCompletion{
		Trip:       trip,
		FeeCharged: fee,
		Balance:    s.ledger.Amount(),
		RatingStep: "/api/v1/drivers/me/trips/" + trip.ID + "/rating",
	}, nil
}

// RatePassenger records the driver's rating for a completed trip, once
func (s *Session) RatePassenger(tripID string, rating models.PassengerRating) (models.CompletedTrip, error) {
	if err := s.lock(); err != nil {
		return models.CompletedTrip{}, err
	}
	defer s.mu.Unlock()

	if rating.Rating < 1 || rating.Rating > 5 {
		return models.CompletedTrip{}, ErrInvalidRating
	}
	for i := range s.history {
		done := &s.history[i]
		if done.Trip.ID != tripID {
			continue
		}
		if !done.AwaitingRating() {
			return models.CompletedTrip{}, ErrAlreadyRated
		}
		r := rating
		r.Comment = strings.TrimSpace(r.Comment)
		done.Rating = &r
		return *done, nil
	}
	if s.active != nil && s.active.ID == tripID {
		return models.CompletedTrip{}, ErrTripNotAccepted
	}
	return models.CompletedTrip{}, ErrTripNotFound
}

// History lists completed trips in completion order
func (s *Session) History() ([]models.CompletedTrip, error) {
	if err := s.lock(); err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	out := make([]models.CompletedTrip, len(s.history))
	copy(out, s.history)
	return out, nil
}

// UpdateLocation stores the driver's last shared position. Only online drivers share.
func (s *Session) UpdateLocation(loc models.Location) (models.Location, error) {
	if err := s.lock(); err != nil {
		return models.Location{}, err
	}
	defer s.mu.Unlock()

	if !s.online {
		return models.Location{}, ErrDriverOffline
	}
	if loc.Timestamp.IsZero() {
		loc.Timestamp = s.opts.Now()
	}
	s.loc = &loc
	return loc, nil
}

// Online reports whether the driver is online
func (s *Session) Online() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.closed && s.online
}

// Close takes the driver offline, cancels background work and rejects
// further calls. Callbacks already running see the closed flag and do nothing.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.online = false
	s.mu.Unlock()

	s.tasks.Stop()
}

// Closed reports whether Close was called
func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}
