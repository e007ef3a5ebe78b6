package adaptor

import (
	"cinenyc-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Catalog   *CatalogHandler
	Booking   *BookingHandler
	Payment   *PaymentHandler
	Assistant *AssistantHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Catalog:   NewCatalogHandler(service.Catalog, log),
		Booking:   NewBookingHandler(service.Booking, log),
		Payment:   NewPaymentHandler(service.Payment, log),
		Assistant: NewAssistantHandler(service.Assistant, log),
	}
}
