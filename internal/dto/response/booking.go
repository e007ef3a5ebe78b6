package response

import (
	"cinenyc-booking/internal/booking"
)

type SeatMapResponse struct {
	Rows     int      `json:"rows"`
	Cols     int      `json:"cols"`
	Occupied []string `json:"occupied"`
	Selected []string `json:"selected"`
}

type DraftResponse struct {
	Movie    *MovieResponse    `json:"movie,omitempty"`
	Theater  *TheaterResponse  `json:"theater,omitempty"`
	Showtime *ShowtimeResponse `json:"showtime,omitempty"`
	Seats    []string          `json:"seats"`
	Total    float64           `json:"total"`
}

type PaymentStateResponse struct {
	Provider     string  `json:"provider"`
	Amount       float64 `json:"amount"`
	Email        string  `json:"email,omitempty"`
	Reference    string  `json:"reference,omitempty"`
	ClientSecret string  `json:"client_secret,omitempty"`
}

type FlowStateResponse struct {
	SessionID   string                `json:"session_id"`
	Stage       string                `json:"stage"`
	DetailMovie *MovieResponse        `json:"detail_movie,omitempty"`
	Draft       DraftResponse         `json:"draft"`
	SeatMap     SeatMapResponse       `json:"seat_map"`
	Payment     *PaymentStateResponse `json:"payment,omitempty"`
	OrderID     string                `json:"order_id,omitempty"`
}

// FlowToResponse renders a flow snapshot for the API.
func FlowToResponse(sessionID string, snap booking.Snapshot) *FlowStateResponse {
	resp := &FlowStateResponse{
		SessionID: sessionID,
		Stage:     string(snap.Stage),
		Draft: DraftResponse{
			Seats: snap.Seats,
			Total: snap.Total,
		},
		SeatMap: SeatMapResponse{
			Rows:     booking.GridRows,
			Cols:     booking.GridCols,
			Occupied: snap.Occupied,
			Selected: snap.Seats,
		},
		OrderID: snap.OrderID,
	}

	if snap.DetailMovie != nil {
		m := MovieToResponse(snap.DetailMovie)
		resp.DetailMovie = &m
	}
	if snap.Movie != nil {
		m := MovieToResponse(snap.Movie)
		resp.Draft.Movie = &m
	}
	if snap.Theater != nil {
		t := TheaterToResponse(snap.Theater)
		resp.Draft.Theater = &t
	}
	if snap.Showtime != nil {
		s := ShowtimeToResponse(snap.Showtime)
		resp.Draft.Showtime = &s
	}
	if snap.Provider != "" {
		resp.Payment = &PaymentStateResponse{
			Provider:     snap.Provider,
			Amount:       snap.PaymentAmount,
			Email:        snap.PaymentEmail,
			Reference:    snap.Reference,
			ClientSecret: snap.ClientSecret,
		}
	}

	return resp
}
