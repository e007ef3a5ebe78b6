package booking

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"go.uber.org/zap"

	"cinenyc-booking/internal/data/catalog"
	"cinenyc-booking/internal/data/entity"
	"cinenyc-booking/internal/payment"
	"cinenyc-booking/pkg/utils"
)

var (
	ErrNoSeatsSelected = errors.New("cannot confirm booking without selected seats")
	ErrSeatOccupied    = errors.New("cannot toggle an occupied seat")
	ErrInvalidSeat     = errors.New("invalid seat identifier")
	ErrNoDetailOpen    = errors.New("cannot select showtime without an open movie detail")
	ErrNoAttempt       = errors.New("no active payment attempt")
)

// Flow is the booking state machine for one session. It is the sole owner of
// the booking draft; every other component reads the draft through snapshots
// or mutates it through the flow's operations. A per-flow mutex serializes
// events so they apply in the order received.
type Flow struct {
	mu  sync.Mutex
	log *zap.Logger

	catalog  *catalog.Catalog
	adapters map[string]payment.Adapter

	stage  Stage
	draft  Draft
	detail *entity.Movie
	grid   *SeatGrid

	attempt        *payment.Attempt
	attemptAdapter payment.Adapter
	orderID        string
}

// NewFlow creates a fresh flow in the browse stage. The seat grid occupancy
// is rolled once here, at session start, from the injected source and stays
// stable for the session's lifetime.
func NewFlow(cat *catalog.Catalog, adapters map[string]payment.Adapter, rng *rand.Rand, log *zap.Logger) *Flow {
	return &Flow{
		log:      log.With(zap.String("component", "booking_flow")),
		catalog:  cat,
		adapters: adapters,
		stage:    StageBrowse,
		draft:    newDraft(),
		grid:     NewSeatGrid(rng),
	}
}

// Snapshot is a read-only view of the flow for rendering responses.
type Snapshot struct {
	Stage       Stage
	DetailMovie *entity.Movie

	Movie    *entity.Movie
	Theater  *entity.Theater
	Showtime *entity.Showtime
	Seats    []string
	Total    float64
	Occupied []string

	Provider      string
	PaymentAmount float64
	PaymentEmail  string
	Reference     string
	ClientSecret  string

	OrderID string
}

func (f *Flow) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	snap := Snapshot{
		Stage:       f.stage,
		DetailMovie: f.detail,
		Movie:       f.draft.Movie(),
		Theater:     f.draft.Theater(),
		Showtime:    f.draft.Showtime(),
		Seats:       f.draft.Seats(),
		Total:       f.draft.Total(),
		Occupied:    f.grid.Occupied(),
		OrderID:     f.orderID,
	}

	if f.attempt != nil {
		snap.Provider = f.attempt.Provider()
		snap.PaymentAmount = f.attempt.Amount()
		snap.PaymentEmail = f.attempt.Email()
		// Reference and client secret become visible once initialization
		// resolved; a non-blocking check keeps snapshots cheap.
		select {
		case <-f.attempt.Ready():
			if f.attempt.Err() == nil {
				snap.Reference = f.attempt.Reference()
				snap.ClientSecret = f.attempt.ClientSecret()
			}
		default:
		}
	}

	return snap
}

func (f *Flow) Stage() Stage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stage
}

// OpenDetail sets the browse sub-state to a movie's detail view. Not a stage
// change.
func (f *Flow) OpenDetail(movieID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.stage != StageBrowse {
		return fmt.Errorf("cannot open movie detail in stage %s", f.stage)
	}

	movie, ok := f.catalog.MovieByID(movieID)
	if !ok {
		return fmt.Errorf("movie %s not found", movieID)
	}

	f.detail = movie
	return nil
}

// CloseDetail dismisses the detail view without leaving browse.
func (f *Flow) CloseDetail() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.detail = nil
}

// SelectShowtime populates the draft from the catalog and moves the flow to
// seat selection. Any previously selected seats are cleared before the stage
// transition is observable, so no stale seats leak into the new draft.
func (f *Flow) SelectShowtime(showtimeID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	to, ok := transitionFor(f.stage, EventShowtimeSelected)
	if !ok {
		return fmt.Errorf("cannot select showtime in stage %s", f.stage)
	}
	if f.detail == nil {
		return ErrNoDetailOpen
	}

	showtime, ok := f.catalog.ShowtimeByID(showtimeID)
	if !ok {
		return fmt.Errorf("showtime %s not found", showtimeID)
	}
	if showtime.MovieID != f.detail.ID {
		return fmt.Errorf("showtime %s does not belong to movie %s", showtimeID, f.detail.ID)
	}

	theater, ok := f.catalog.TheaterByID(showtime.TheaterID)
	if !ok {
		return fmt.Errorf("theater %s not found", showtime.TheaterID)
	}

	f.draft.movie = f.detail
	f.draft.theater = theater
	f.draft.showtime = showtime
	f.draft.clearSeats()
	f.detail = nil
	f.setStage(to)

	return nil
}

// ToggleSeat applies symmetric-difference semantics to the selection.
// Occupied seats are rejected without any state change.
func (f *Flow) ToggleSeat(seatID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.stage != StageSeats {
		return fmt.Errorf("cannot toggle seats in stage %s", f.stage)
	}
	if !ValidSeatID(seatID) {
		return fmt.Errorf("%w: %s", ErrInvalidSeat, seatID)
	}
	if f.grid.IsOccupied(seatID) {
		return fmt.Errorf("%w: %s", ErrSeatOccupied, seatID)
	}

	f.draft.toggleSeat(seatID)
	return nil
}

// Confirm moves seats -> payment, guarded on at least one selected seat.
func (f *Flow) Confirm() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	to, ok := transitionFor(f.stage, EventConfirmed)
	if !ok {
		return fmt.Errorf("cannot confirm booking in stage %s", f.stage)
	}
	if f.draft.SeatCount() == 0 {
		return ErrNoSeatsSelected
	}

	f.setStage(to)
	return nil
}

// Back moves seats -> browse (reopening the draft movie's detail view) or
// payment -> seats (revoking any in-flight attempt).
func (f *Flow) Back() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	to, ok := transitionFor(f.stage, EventWentBack)
	if !ok {
		return fmt.Errorf("cannot go back in stage %s", f.stage)
	}

	switch f.stage {
	case StageSeats:
		f.detail = f.draft.Movie()
	case StagePayment:
		f.revokeAttemptLocked()
	}

	f.setStage(to)
	return nil
}

// BeginPayment starts a payment attempt with the chosen provider. A previous
// attempt for the session is revoked first, so its callbacks can never fire
// against the new one.
func (f *Flow) BeginPayment(ctx context.Context, provider, email string) (*payment.Attempt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.stage != StagePayment {
		return nil, fmt.Errorf("cannot begin payment in stage %s", f.stage)
	}

	adapter, ok := f.adapters[provider]
	if !ok {
		return nil, fmt.Errorf("payment provider %s not found", provider)
	}

	f.revokeAttemptLocked()

	// Attempt callbacks fire synchronously from flow operations that already
	// hold the mutex, hence the locked variants.
	attempt, err := adapter.Begin(ctx, payment.BeginRequest{
		Amount: f.draft.Total(),
		Email:  email,
	}, payment.Callbacks{
		OnSuccess: f.advanceToCheckoutLocked,
		OnCancel:  f.returnToSeatsLocked,
	})
	if err != nil {
		return nil, fmt.Errorf("begin payment: %w", err)
	}

	f.attempt = attempt
	f.attemptAdapter = adapter

	f.log.Info("Payment attempt started",
		zap.String("provider", provider),
		zap.Float64("amount", f.draft.Total()),
		zap.Int("seats", f.draft.SeatCount()),
	)
	return attempt, nil
}

// CompletePayment resolves a client-reported provider result. On success the
// flow is already in checkout when this returns; on error the flow stays on
// payment with the draft unchanged.
func (f *Flow) CompletePayment(ctx context.Context, reference string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.stage != StagePayment {
		return fmt.Errorf("cannot complete payment in stage %s", f.stage)
	}
	if f.attempt == nil {
		return ErrNoAttempt
	}

	return f.attemptAdapter.Complete(ctx, f.attempt, reference)
}

// CancelPayment handles a user-initiated cancel from the provider UI.
func (f *Flow) CancelPayment() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.stage != StagePayment {
		return fmt.Errorf("cannot cancel payment in stage %s", f.stage)
	}

	if f.attempt != nil {
		f.attempt.Cancel()
		return nil
	}

	// No attempt was started; apply the stage transition directly.
	if to, ok := transitionFor(f.stage, EventPaymentCancelled); ok {
		f.setStage(to)
	}
	return nil
}

// Reset restores the initial empty draft and the browse stage from anywhere.
// Repeated resets are no-ops. The session's seat grid occupancy is kept.
func (f *Flow) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.revokeAttemptLocked()
	f.draft.clear()
	f.detail = nil
	f.orderID = ""

	if to, ok := transitionFor(f.stage, EventResetRequested); ok {
		f.setStage(to)
	}
}

// ---- internal, called with f.mu held ----

func (f *Flow) setStage(to Stage) {
	if f.stage != to {
		f.log.Debug("Stage transition",
			zap.String("from", string(f.stage)),
			zap.String("to", string(to)),
		)
	}
	f.stage = to
}

func (f *Flow) advanceToCheckoutLocked() {
	if to, ok := transitionFor(f.stage, EventPaymentSucceeded); ok {
		f.setStage(to)
		f.orderID = utils.GenerateOrderID()
		f.log.Info("Booking confirmed",
			zap.String("order_id", f.orderID),
			zap.Float64("total", f.draft.Total()),
			zap.Int("seats", f.draft.SeatCount()),
		)
	}
}

func (f *Flow) returnToSeatsLocked() {
	if to, ok := transitionFor(f.stage, EventPaymentCancelled); ok {
		f.setStage(to)
	}
}

func (f *Flow) revokeAttemptLocked() {
	if f.attempt != nil {
		f.attempt.Revoke()
		f.attempt = nil
		f.attemptAdapter = nil
	}
}
