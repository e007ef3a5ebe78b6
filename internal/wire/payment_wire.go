package wire

import (
	"github.com/go-chi/chi/v5"

	"cinenyc-booking/internal/adaptor"
)

func wirePayment(r chi.Router, paymentHandler *adaptor.PaymentHandler) {
	// Raw endpoints consumed by provider SDKs on the client
	r.Post("/api/create-payment-intent", paymentHandler.CreatePaymentIntent)
	r.Get("/api/verify-transaction", paymentHandler.VerifyTransaction)
}
