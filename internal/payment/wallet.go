package payment

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// WalletAdapter processes payments through the PayPal buttons flow. The order
// is created and captured client-side; the adapter only relays the
// success/cancel signals.
type WalletAdapter struct {
	clientID string
	log      *zap.Logger
}

func NewWalletAdapter(clientID string, log *zap.Logger) *WalletAdapter {
	return &WalletAdapter{
		clientID: clientID,
		log:      log.With(zap.String("adapter", "paypal")),
	}
}

func (a *WalletAdapter) Name() string { return "paypal" }

func (a *WalletAdapter) Begin(ctx context.Context, req BeginRequest, cb Callbacks) (*Attempt, error) {
	attempt := newAttempt(a.Name(), req, cb, nil)
	attempt.finishInit("", "order_"+uuid.NewString(), nil)
	return attempt, nil
}

func (a *WalletAdapter) Complete(ctx context.Context, attempt *Attempt, reference string) error {
	if !attempt.Succeed() {
		return ErrAttemptSettled
	}
	a.log.Info("Wallet payment approved", zap.String("reference", attempt.Reference()))
	return nil
}
