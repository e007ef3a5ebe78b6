package payment

import (
	"context"
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/client"
	"go.uber.org/zap"
)

// CardAdapter processes card payments through Stripe. The server creates a
// PaymentIntent and hands the client secret to the front end; the confirmed
// intent is reported back by the client.
type CardAdapter struct {
	client   *client.API
	currency string
	log      *zap.Logger
}

func NewCardAdapter(sc *client.API, currency string, log *zap.Logger) *CardAdapter {
	return &CardAdapter{
		client:   sc,
		currency: currency,
		log:      log.With(zap.String("adapter", "stripe")),
	}
}

func (a *CardAdapter) Name() string { return "stripe" }

func (a *CardAdapter) Begin(ctx context.Context, req BeginRequest, cb Callbacks) (*Attempt, error) {
	initCtx, cancel := context.WithCancel(ctx)
	attempt := newAttempt(a.Name(), req, cb, cancel)

	go func() {
		params := &stripe.PaymentIntentParams{
			Amount:   stripe.Int64(toMinorUnits(req.Amount)),
			Currency: stripe.String(a.currency),
			AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
				Enabled: stripe.Bool(true),
			},
		}
		params.Context = initCtx

		intent, err := a.client.PaymentIntents.New(params)
		if err != nil {
			a.log.Warn("Create payment intent failed", zap.Error(err), zap.Float64("amount", req.Amount))
			attempt.finishInit("", "", fmt.Errorf("create payment intent: %w", err))
			return
		}

		a.log.Info("Payment intent created",
			zap.String("intent_id", intent.ID),
			zap.Float64("amount", req.Amount),
		)
		attempt.finishInit(intent.ClientSecret, intent.ID, nil)
	}()

	return attempt, nil
}

func (a *CardAdapter) Complete(ctx context.Context, attempt *Attempt, reference string) error {
	select {
	case <-attempt.Ready():
	case <-ctx.Done():
		return ctx.Err()
	}

	if err := attempt.Err(); err != nil {
		return err
	}

	if !attempt.Succeed() {
		return ErrAttemptSettled
	}
	return nil
}

// toMinorUnits converts a dollar amount to cents.
func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
