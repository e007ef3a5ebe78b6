package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"cinenyc-booking/internal/dto/request"
	"cinenyc-booking/internal/usecase"
	"cinenyc-booking/pkg/utils"

	"go.uber.org/zap"
)

type AssistantHandler struct {
	service usecase.AssistantService
	log     *zap.Logger
}

func NewAssistantHandler(service usecase.AssistantService, log *zap.Logger) *AssistantHandler {
	return &AssistantHandler{
		service: service,
		log:     log.With(zap.String("handler", "assistant")),
	}
}

// GetMovieAdvice handles POST /api/assistant/advice
func (h *AssistantHandler) GetMovieAdvice(w http.ResponseWriter, r *http.Request) {
	var req request.AssistantQueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	advice, err := h.service.GetMovieAdvice(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "get movie advice")
		return
	}

	utils.ResponseSuccess(w, "Advice generated successfully", advice)
}

// ExtractSearchTag handles POST /api/assistant/tag
func (h *AssistantHandler) ExtractSearchTag(w http.ResponseWriter, r *http.Request) {
	var req request.AssistantQueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	tag, err := h.service.ExtractSearchTag(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "extract search tag")
		return
	}

	utils.ResponseSuccess(w, "Tag extracted successfully", tag)
}

func (h *AssistantHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error(operation+" failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
