package payment

import (
	"github.com/stripe/stripe-go/v78/client"
	"go.uber.org/zap"

	"cinenyc-booking/pkg/utils"
)

// Providers groups the configured payment collaborators. Clients are built
// once from config and injected; nothing here lives as a package-level
// singleton.
type Providers struct {
	Stripe   *client.API
	Verifier *Verifier
	Adapters map[string]Adapter
}

func NewProviders(cfg utils.PaymentConfig, log *zap.Logger) *Providers {
	sc := &client.API{}
	sc.Init(cfg.StripeSecretKey, nil)

	verifier := NewVerifier(cfg.PaystackBaseURL, cfg.PaystackSecretKey, log)

	card := NewCardAdapter(sc, cfg.Currency, log)
	gateway := NewGatewayAdapter(verifier, log)
	wallet := NewWalletAdapter(cfg.PaypalClientID, log)

	return &Providers{
		Stripe:   sc,
		Verifier: verifier,
		Adapters: map[string]Adapter{
			card.Name():    card,
			gateway.Name(): gateway,
			wallet.Name():  wallet,
		},
	}
}
