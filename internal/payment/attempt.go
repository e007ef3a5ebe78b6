package payment

import (
	"context"
	"sync"
)

// Attempt is a single in-flight payment. It guarantees the success/cancel
// callbacks fire at most once in total, and that a revoked attempt never
// invokes either again, no matter how late a provider result arrives.
type Attempt struct {
	provider string
	amount   float64
	email    string

	mu      sync.Mutex
	cb      Callbacks
	settled bool
	revoked bool

	cancel context.CancelFunc
	ready  chan struct{}

	initErr      error
	reference    string
	clientSecret string
}

func newAttempt(provider string, req BeginRequest, cb Callbacks, cancel context.CancelFunc) *Attempt {
	return &Attempt{
		provider: provider,
		amount:   req.Amount,
		email:    req.Email,
		cb:       cb,
		cancel:   cancel,
		ready:    make(chan struct{}),
	}
}

// finishInit resolves the readiness future. Called exactly once by the
// adapter that created the attempt.
func (a *Attempt) finishInit(clientSecret, reference string, err error) {
	a.mu.Lock()
	a.clientSecret = clientSecret
	a.reference = reference
	a.initErr = err
	a.mu.Unlock()
	close(a.ready)
}

// Ready closes once provider initialization finished. Check Err afterwards.
func (a *Attempt) Ready() <-chan struct{} { return a.ready }

func (a *Attempt) Err() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.initErr
}

func (a *Attempt) Provider() string { return a.provider }
func (a *Attempt) Amount() float64  { return a.amount }
func (a *Attempt) Email() string    { return a.email }

func (a *Attempt) Reference() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.reference
}

func (a *Attempt) ClientSecret() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.clientSecret
}

// Succeed fires the success callback. Returns false when the attempt was
// already settled or revoked.
func (a *Attempt) Succeed() bool {
	a.mu.Lock()
	if a.settled || a.revoked {
		a.mu.Unlock()
		return false
	}
	a.settled = true
	cb := a.cb.OnSuccess
	a.mu.Unlock()

	if cb != nil {
		cb()
	}
	return true
}

// Cancel fires the cancel callback. Returns false when the attempt was
// already settled or revoked.
func (a *Attempt) Cancel() bool {
	a.mu.Lock()
	if a.settled || a.revoked {
		a.mu.Unlock()
		return false
	}
	a.settled = true
	cb := a.cb.OnCancel
	a.mu.Unlock()

	if cb != nil {
		cb()
	}
	return true
}

// Revoke tears the attempt down: callback references are dropped and any
// pending initialization is cancelled, so a stale provider result cannot
// resurrect a discarded booking draft. Safe to call more than once.
func (a *Attempt) Revoke() {
	a.mu.Lock()
	a.revoked = true
	a.cb = Callbacks{}
	cancel := a.cancel
	a.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}
