package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"cinenyc-booking/internal/booking"
	"cinenyc-booking/internal/data/catalog"
	"cinenyc-booking/internal/data/repository"
	"cinenyc-booking/internal/dto/request"
	"cinenyc-booking/internal/dto/response"
	"cinenyc-booking/internal/payment"
	"cinenyc-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	StartSession(ctx context.Context) (*response.FlowStateResponse, error)
	GetSession(ctx context.Context, sessionID string) (*response.FlowStateResponse, error)
	EndSession(ctx context.Context, sessionID string) error

	OpenMovieDetail(ctx context.Context, sessionID string, req *request.OpenDetailRequest) (*response.FlowStateResponse, error)
	CloseMovieDetail(ctx context.Context, sessionID string) (*response.FlowStateResponse, error)
	SelectShowtime(ctx context.Context, sessionID string, req *request.SelectShowtimeRequest) (*response.FlowStateResponse, error)
	ToggleSeat(ctx context.Context, sessionID string, req *request.ToggleSeatRequest) (*response.FlowStateResponse, error)
	Confirm(ctx context.Context, sessionID string) (*response.FlowStateResponse, error)
	Back(ctx context.Context, sessionID string) (*response.FlowStateResponse, error)

	BeginPayment(ctx context.Context, sessionID string, req *request.BeginPaymentRequest) (*response.FlowStateResponse, error)
	CompletePayment(ctx context.Context, sessionID string, req *request.CompletePaymentRequest) (*response.FlowStateResponse, error)
	CancelPayment(ctx context.Context, sessionID string) (*response.FlowStateResponse, error)
	Reset(ctx context.Context, sessionID string) (*response.FlowStateResponse, error)
}

type bookingService struct {
	catalog  *catalog.Catalog
	adapters map[string]payment.Adapter
	repo     *repository.Repository
	log      *zap.Logger
}

func NewBookingService(
	cat *catalog.Catalog,
	adapters map[string]payment.Adapter,
	repo *repository.Repository,
	log *zap.Logger,
) BookingService {
	return &bookingService{
		catalog:  cat,
		adapters: adapters,
		repo:     repo,
		log:      log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) StartSession(ctx context.Context) (*response.FlowStateResponse, error) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	flow := booking.NewFlow(s.catalog, s.adapters, rng, s.log)

	id := s.repo.Session.Create(flow)

	s.log.Info("Booking session started", zap.String("session_id", id.String()))
	return response.FlowToResponse(id.String(), flow.Snapshot()), nil
}

func (s *bookingService) GetSession(ctx context.Context, sessionID string) (*response.FlowStateResponse, error) {
	flow, id, err := s.findFlow(sessionID)
	if err != nil {
		return nil, err
	}
	return response.FlowToResponse(id.String(), flow.Snapshot()), nil
}

func (s *bookingService) EndSession(ctx context.Context, sessionID string) error {
	flow, id, err := s.findFlow(sessionID)
	if err != nil {
		return err
	}

	// Reset revokes any in-flight payment attempt before the flow is dropped.
	flow.Reset()
	s.repo.Session.Delete(id)

	s.log.Info("Booking session ended", zap.String("session_id", id.String()))
	return nil
}

func (s *bookingService) OpenMovieDetail(ctx context.Context, sessionID string, req *request.OpenDetailRequest) (*response.FlowStateResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Request validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	flow, id, err := s.findFlow(sessionID)
	if err != nil {
		return nil, err
	}

	if err := flow.OpenDetail(req.MovieID); err != nil {
		s.log.Warn("Failed to open movie detail",
			zap.Error(err),
			zap.String("session_id", sessionID),
			zap.String("movie_id", req.MovieID),
		)
		return nil, err
	}

	return response.FlowToResponse(id.String(), flow.Snapshot()), nil
}

func (s *bookingService) CloseMovieDetail(ctx context.Context, sessionID string) (*response.FlowStateResponse, error) {
	flow, id, err := s.findFlow(sessionID)
	if err != nil {
		return nil, err
	}

	flow.CloseDetail()
	return response.FlowToResponse(id.String(), flow.Snapshot()), nil
}

func (s *bookingService) SelectShowtime(ctx context.Context, sessionID string, req *request.SelectShowtimeRequest) (*response.FlowStateResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Request validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	flow, id, err := s.findFlow(sessionID)
	if err != nil {
		return nil, err
	}

	if err := flow.SelectShowtime(req.ShowtimeID); err != nil {
		s.log.Warn("Failed to select showtime",
			zap.Error(err),
			zap.String("session_id", sessionID),
			zap.String("showtime_id", req.ShowtimeID),
		)
		return nil, err
	}

	return response.FlowToResponse(id.String(), flow.Snapshot()), nil
}

func (s *bookingService) ToggleSeat(ctx context.Context, sessionID string, req *request.ToggleSeatRequest) (*response.FlowStateResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Request validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	flow, id, err := s.findFlow(sessionID)
	if err != nil {
		return nil, err
	}

	if err := flow.ToggleSeat(req.Seat); err != nil {
		return nil, err
	}

	return response.FlowToResponse(id.String(), flow.Snapshot()), nil
}

func (s *bookingService) Confirm(ctx context.Context, sessionID string) (*response.FlowStateResponse, error) {
	flow, id, err := s.findFlow(sessionID)
	if err != nil {
		return nil, err
	}

	if err := flow.Confirm(); err != nil {
		return nil, err
	}

	return response.FlowToResponse(id.String(), flow.Snapshot()), nil
}

func (s *bookingService) Back(ctx context.Context, sessionID string) (*response.FlowStateResponse, error) {
	flow, id, err := s.findFlow(sessionID)
	if err != nil {
		return nil, err
	}

	if err := flow.Back(); err != nil {
		return nil, err
	}

	return response.FlowToResponse(id.String(), flow.Snapshot()), nil
}

func (s *bookingService) BeginPayment(ctx context.Context, sessionID string, req *request.BeginPaymentRequest) (*response.FlowStateResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Request validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	flow, id, err := s.findFlow(sessionID)
	if err != nil {
		return nil, err
	}

	attempt, err := flow.BeginPayment(ctx, req.Provider, req.Email)
	if err != nil {
		s.log.Warn("Failed to begin payment",
			zap.Error(err),
			zap.String("session_id", sessionID),
			zap.String("provider", req.Provider),
		)
		return nil, err
	}

	// Wait for provider initialization outside the flow lock so the response
	// carries the client secret or reference when it is ready.
	select {
	case <-attempt.Ready():
		if initErr := attempt.Err(); initErr != nil {
			s.log.Error("Payment initialization failed",
				zap.Error(initErr),
				zap.String("session_id", sessionID),
				zap.String("provider", req.Provider),
			)
			return nil, fmt.Errorf("begin payment: %w", initErr)
		}
	case <-ctx.Done():
		return nil, fmt.Errorf("begin payment: %w", ctx.Err())
	}

	return response.FlowToResponse(id.String(), flow.Snapshot()), nil
}

func (s *bookingService) CompletePayment(ctx context.Context, sessionID string, req *request.CompletePaymentRequest) (*response.FlowStateResponse, error) {
	flow, id, err := s.findFlow(sessionID)
	if err != nil {
		return nil, err
	}

	if err := flow.CompletePayment(ctx, req.Reference); err != nil {
		s.log.Warn("Failed to complete payment",
			zap.Error(err),
			zap.String("session_id", sessionID),
		)
		return nil, err
	}

	return response.FlowToResponse(id.String(), flow.Snapshot()), nil
}

func (s *bookingService) CancelPayment(ctx context.Context, sessionID string) (*response.FlowStateResponse, error) {
	flow, id, err := s.findFlow(sessionID)
	if err != nil {
		return nil, err
	}

	if err := flow.CancelPayment(); err != nil {
		return nil, err
	}

	return response.FlowToResponse(id.String(), flow.Snapshot()), nil
}

func (s *bookingService) Reset(ctx context.Context, sessionID string) (*response.FlowStateResponse, error) {
	flow, id, err := s.findFlow(sessionID)
	if err != nil {
		return nil, err
	}

	flow.Reset()
	return response.FlowToResponse(id.String(), flow.Snapshot()), nil
}

func (s *bookingService) findFlow(sessionID string) (*booking.Flow, uuid.UUID, error) {
	id, err := uuid.Parse(sessionID)
	if err != nil {
		return nil, uuid.Nil, fmt.Errorf("invalid session ID format")
	}

	flow, ok := s.repo.Session.Find(id)
	if !ok {
		return nil, uuid.Nil, fmt.Errorf("session %s not found", sessionID)
	}
	return flow, id, nil
}
