package wire

import (
	"github.com/go-chi/chi/v5"

	"cinenyc-booking/internal/adaptor"
)

func wireAssistant(r chi.Router, assistantHandler *adaptor.AssistantHandler) {
	r.Post("/api/assistant/advice", assistantHandler.GetMovieAdvice)
	r.Post("/api/assistant/tag", assistantHandler.ExtractSearchTag)
}
