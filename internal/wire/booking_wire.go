package wire

import (
	"github.com/go-chi/chi/v5"

	"cinenyc-booking/internal/adaptor"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	// Session lifecycle
	r.Post("/api/sessions", bookingHandler.StartSession)
	r.Get("/api/sessions/{id}", bookingHandler.GetSession)
	r.Delete("/api/sessions/{id}", bookingHandler.EndSession)

	// Browse stage
	r.Post("/api/sessions/{id}/detail", bookingHandler.OpenMovieDetail)
	r.Delete("/api/sessions/{id}/detail", bookingHandler.CloseMovieDetail)
	r.Post("/api/sessions/{id}/showtime", bookingHandler.SelectShowtime)

	// Seat stage
	r.Post("/api/sessions/{id}/seats/toggle", bookingHandler.ToggleSeat)
	r.Post("/api/sessions/{id}/confirm", bookingHandler.Confirm)

	// Navigation
	r.Post("/api/sessions/{id}/back", bookingHandler.Back)
	r.Post("/api/sessions/{id}/reset", bookingHandler.Reset)

	// Payment stage
	r.Post("/api/sessions/{id}/payment", bookingHandler.BeginPayment)
	r.Post("/api/sessions/{id}/payment/complete", bookingHandler.CompletePayment)
	r.Post("/api/sessions/{id}/payment/cancel", bookingHandler.CancelPayment)
}
