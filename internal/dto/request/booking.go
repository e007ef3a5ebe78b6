package request

type OpenDetailRequest struct {
	MovieID string `json:"movie_id" validate:"required"`
}

type SelectShowtimeRequest struct {
	ShowtimeID string `json:"showtime_id" validate:"required"`
}

type ToggleSeatRequest struct {
	Seat string `json:"seat" validate:"required,min=2,max=3"`
}

type BeginPaymentRequest struct {
	Provider string `json:"provider" validate:"required,oneof=stripe paystack paypal"`
	Email    string `json:"email" validate:"omitempty,email"`
}

type CompletePaymentRequest struct {
	Reference string `json:"reference,omitempty"`
}
