package usecase

import (
	"context"
	"fmt"
	"math"

	stripe "github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/client"
	"go.uber.org/zap"

	"cinenyc-booking/internal/dto/request"
	"cinenyc-booking/internal/dto/response"
	"cinenyc-booking/internal/payment"
	"cinenyc-booking/pkg/utils"
)

type PaymentService interface {
	CreatePaymentIntent(ctx context.Context, req *request.CreateIntentRequest) (*response.PaymentIntentResponse, error)
	VerifyTransaction(ctx context.Context, reference string) (*response.VerificationResponse, error)
}

type paymentService struct {
	stripe   *client.API
	verifier *payment.Verifier
	currency string
	log      *zap.Logger
}

func NewPaymentService(
	providers *payment.Providers,
	currency string,
	log *zap.Logger,
) PaymentService {
	return &paymentService{
		stripe:   providers.Stripe,
		verifier: providers.Verifier,
		currency: currency,
		log:      log.With(zap.String("service", "payment")),
	}
}

func (s *paymentService) CreatePaymentIntent(ctx context.Context, req *request.CreateIntentRequest) (*response.PaymentIntentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Request validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	currency := req.Currency
	if currency == "" {
		currency = s.currency
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(math.Round(req.Amount * 100))),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx

	intent, err := s.stripe.PaymentIntents.New(params)
	if err != nil {
		s.log.Error("Failed to create payment intent",
			zap.Error(err),
			zap.Float64("amount", req.Amount),
		)
		return nil, fmt.Errorf("create payment intent: %w", err)
	}

	s.log.Info("Payment intent created",
		zap.String("intent_id", intent.ID),
		zap.Float64("amount", req.Amount),
	)
	return &response.PaymentIntentResponse{ClientSecret: intent.ClientSecret}, nil
}

func (s *paymentService) VerifyTransaction(ctx context.Context, reference string) (*response.VerificationResponse, error) {
	if reference == "" {
		return nil, fmt.Errorf("validation failed: reference is required")
	}

	result, err := s.verifier.Verify(ctx, reference)
	if err != nil {
		return nil, err
	}

	resp := &response.VerificationResponse{
		Status:           result.Status,
		Message:          result.Message,
		UpstreamRejected: result.UpstreamRejected,
	}
	if result.Status {
		resp.Message = "Verification successful"
		resp.Data = result.Data
	}
	return resp, nil
}
