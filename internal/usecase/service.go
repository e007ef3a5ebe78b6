package usecase

import (
	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"

	"cinenyc-booking/internal/data/catalog"
	"cinenyc-booking/internal/data/repository"
	"cinenyc-booking/internal/payment"
	"cinenyc-booking/pkg/utils"
)

// Service aggregates all application services for wiring.
type Service struct {
	Catalog   CatalogService
	Booking   BookingService
	Payment   PaymentService
	Assistant AssistantService
}

func NewService(
	cat *catalog.Catalog,
	providers *payment.Providers,
	repo *repository.Repository,
	adviceModel, tagModel *genai.GenerativeModel,
	config *utils.Config,
	log *zap.Logger,
) *Service {
	// Keep nil pointers out of the interface fields so the assistant can
	// detect a disabled model.
	var advice, tag generativeModel
	if adviceModel != nil {
		advice = adviceModel
	}
	if tagModel != nil {
		tag = tagModel
	}

	return &Service{
		Catalog:   NewCatalogService(cat, log),
		Booking:   NewBookingService(cat, providers.Adapters, repo, log),
		Payment:   NewPaymentService(providers, config.Payment.Currency, log),
		Assistant: NewAssistantService(advice, tag, cat, log),
	}
}
