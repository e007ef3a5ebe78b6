package payment

import (
	"context"
	"errors"
)

var (
	// ErrAttemptSettled means success or cancel was already delivered, or the
	// attempt was revoked at teardown.
	ErrAttemptSettled = errors.New("payment attempt already settled")

	// ErrVerificationFailed means the provider reported a non-successful
	// transaction during server-side verification.
	ErrVerificationFailed = errors.New("verification failed")
)

// Callbacks carries the booking flow's continuations for one attempt.
// They fire at most once in total across success and cancel.
type Callbacks struct {
	OnSuccess func()
	OnCancel  func()
}

type BeginRequest struct {
	Amount float64
	Email  string
}

// Adapter is the uniform contract between the booking flow and a payment
// provider integration. Implementations receive their configured provider
// clients at construction.
type Adapter interface {
	Name() string

	// Begin starts a payment attempt. Initialization may be asynchronous; the
	// returned attempt's Ready channel closes once the provider handshake has
	// finished, successfully or not. Cancelling ctx aborts initialization.
	Begin(ctx context.Context, req BeginRequest, cb Callbacks) (*Attempt, error)

	// Complete resolves a client-reported provider result for the attempt.
	// A nil return means the success callback fired; an error keeps the
	// attempt open so the flow stays on the payment stage.
	Complete(ctx context.Context, attempt *Attempt, reference string) error
}
