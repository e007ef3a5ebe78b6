package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"cinenyc-booking/internal/dto/request"
	"cinenyc-booking/internal/usecase"
	"cinenyc-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// StartSession handles POST /api/sessions
func (h *BookingHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	state, err := h.service.StartSession(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "start session")
		return
	}

	utils.ResponseCreated(w, "Session started successfully", state)
}

// GetSession handles GET /api/sessions/{id}
func (h *BookingHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")

	state, err := h.service.GetSession(r.Context(), sessionID)
	if err != nil {
		h.handleServiceError(w, err, "get session")
		return
	}

	utils.ResponseSuccess(w, "Session retrieved successfully", state)
}

// EndSession handles DELETE /api/sessions/{id}
func (h *BookingHandler) EndSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")

	if err := h.service.EndSession(r.Context(), sessionID); err != nil {
		h.handleServiceError(w, err, "end session")
		return
	}

	utils.ResponseSuccess(w, "Session ended successfully", nil)
}

// OpenMovieDetail handles POST /api/sessions/{id}/detail
func (h *BookingHandler) OpenMovieDetail(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")

	var req request.OpenDetailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	state, err := h.service.OpenMovieDetail(r.Context(), sessionID, &req)
	if err != nil {
		h.handleServiceError(w, err, "open movie detail")
		return
	}

	utils.ResponseSuccess(w, "Movie detail opened", state)
}

// CloseMovieDetail handles DELETE /api/sessions/{id}/detail
func (h *BookingHandler) CloseMovieDetail(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")

	state, err := h.service.CloseMovieDetail(r.Context(), sessionID)
	if err != nil {
		h.handleServiceError(w, err, "close movie detail")
		return
	}

	utils.ResponseSuccess(w, "Movie detail closed", state)
}

// SelectShowtime handles POST /api/sessions/{id}/showtime
func (h *BookingHandler) SelectShowtime(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")

	var req request.SelectShowtimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	state, err := h.service.SelectShowtime(r.Context(), sessionID, &req)
	if err != nil {
		h.handleServiceError(w, err, "select showtime")
		return
	}

	utils.ResponseSuccess(w, "Showtime selected", state)
}

// ToggleSeat handles POST /api/sessions/{id}/seats/toggle
func (h *BookingHandler) ToggleSeat(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")

	var req request.ToggleSeatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	state, err := h.service.ToggleSeat(r.Context(), sessionID, &req)
	if err != nil {
		h.handleServiceError(w, err, "toggle seat")
		return
	}

	utils.ResponseSuccess(w, "Seat toggled", state)
}

// Confirm handles POST /api/sessions/{id}/confirm
func (h *BookingHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")

	state, err := h.service.Confirm(r.Context(), sessionID)
	if err != nil {
		h.handleServiceError(w, err, "confirm seats")
		return
	}

	utils.ResponseSuccess(w, "Seats confirmed", state)
}

// Back handles POST /api/sessions/{id}/back
func (h *BookingHandler) Back(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")

	state, err := h.service.Back(r.Context(), sessionID)
	if err != nil {
		h.handleServiceError(w, err, "go back")
		return
	}

	utils.ResponseSuccess(w, "Went back", state)
}

// BeginPayment handles POST /api/sessions/{id}/payment
func (h *BookingHandler) BeginPayment(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")

	var req request.BeginPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	state, err := h.service.BeginPayment(r.Context(), sessionID, &req)
	if err != nil {
		h.handleServiceError(w, err, "begin payment")
		return
	}

	utils.ResponseSuccess(w, "Payment started", state)
}

// CompletePayment handles POST /api/sessions/{id}/payment/complete
func (h *BookingHandler) CompletePayment(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")

	var req request.CompletePaymentRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.ResponseBadRequest(w, "Invalid request body", nil)
			return
		}
	}

	state, err := h.service.CompletePayment(r.Context(), sessionID, &req)
	if err != nil {
		h.handleServiceError(w, err, "complete payment")
		return
	}

	utils.ResponseSuccess(w, "Payment completed", state)
}

// CancelPayment handles POST /api/sessions/{id}/payment/cancel
func (h *BookingHandler) CancelPayment(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")

	state, err := h.service.CancelPayment(r.Context(), sessionID)
	if err != nil {
		h.handleServiceError(w, err, "cancel payment")
		return
	}

	utils.ResponseSuccess(w, "Payment cancelled", state)
}

// Reset handles POST /api/sessions/{id}/reset
func (h *BookingHandler) Reset(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")

	state, err := h.service.Reset(r.Context(), sessionID)
	if err != nil {
		h.handleServiceError(w, err, "reset session")
		return
	}

	utils.ResponseSuccess(w, "Session reset", state)
}

func (h *BookingHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "verification failed"):
		h.log.Warn(operation+" failed - verification",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseUnprocessable(w, "Payment could not be verified, please contact support")

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"),
		strings.Contains(errMsg, "cannot"),
		strings.Contains(errMsg, "no active payment"):
		h.log.Warn(operation+" rejected",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "settled"):
		h.log.Warn(operation+" failed - attempt already settled",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, errMsg)

	default:
		h.log.Error(operation+" failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
