package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"cinenyc-booking/internal/dto/request"
	"cinenyc-booking/internal/usecase"
	"go.uber.org/zap"
)

// PaymentHandler serves the raw payment endpoints consumed by provider SDKs
// on the client. These keep their own minimal JSON shapes instead of the
// standard response envelope.
type PaymentHandler struct {
	service usecase.PaymentService
	log     *zap.Logger
}

func NewPaymentHandler(service usecase.PaymentService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		log:     log.With(zap.String("handler", "payment")),
	}
}

// CreatePaymentIntent handles POST /api/create-payment-intent
func (h *PaymentHandler) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var req request.CreateIntentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}

	if req.Amount <= 0 {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Amount is required"})
		return
	}

	intent, err := h.service.CreatePaymentIntent(r.Context(), &req)
	if err != nil {
		if strings.Contains(err.Error(), "validation failed") {
			h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		h.log.Error("Create payment intent failed", zap.Error(err))
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to create payment intent"})
		return
	}

	h.writeJSON(w, http.StatusOK, intent)
}

// VerifyTransaction handles GET /api/verify-transaction?reference=...
func (h *PaymentHandler) VerifyTransaction(w http.ResponseWriter, r *http.Request) {
	reference := r.URL.Query().Get("reference")
	if reference == "" {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Reference is required"})
		return
	}

	result, err := h.service.VerifyTransaction(r.Context(), reference)
	if err != nil {
		h.log.Error("Verify transaction failed", zap.Error(err), zap.String("reference", reference))
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Verification request failed"})
		return
	}

	if result.UpstreamRejected {
		h.writeJSON(w, http.StatusBadRequest, result)
		return
	}

	h.writeJSON(w, http.StatusOK, result)
}

func (h *PaymentHandler) writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.log.Error("Failed to encode response", zap.Error(err))
	}
}
