package usecase

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"cinenyc-booking/internal/data/catalog"
	"cinenyc-booking/internal/data/repository"
	"cinenyc-booking/internal/dto/request"
	"cinenyc-booking/internal/payment"
)

func newBookingServiceForTest(t *testing.T) BookingService {
	t.Helper()

	cat, err := catalog.Fixtures()
	require.NoError(t, err)

	log := zap.NewNop()
	adapters := map[string]payment.Adapter{
		"paypal": payment.NewWalletAdapter("test-client-id", log),
	}
	repo := repository.NewRepository(nil, log)

	return NewBookingService(cat, adapters, repo, log)
}

func TestSessionLifecycle(t *testing.T) {
	svc := newBookingServiceForTest(t)
	ctx := context.Background()

	state, err := svc.StartSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "browse", state.Stage)
	assert.NotEmpty(t, state.SessionID)
	assert.Equal(t, 7, state.SeatMap.Rows)
	assert.Equal(t, 12, state.SeatMap.Cols)

	fetched, err := svc.GetSession(ctx, state.SessionID)
	require.NoError(t, err)
	assert.Equal(t, state.SessionID, fetched.SessionID)

	require.NoError(t, svc.EndSession(ctx, state.SessionID))

	_, err = svc.GetSession(ctx, state.SessionID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestGetSessionInvalidID(t *testing.T) {
	svc := newBookingServiceForTest(t)

	_, err := svc.GetSession(context.Background(), "not-a-uuid")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid session ID")
}

func TestBookingThroughService(t *testing.T) {
	svc := newBookingServiceForTest(t)
	ctx := context.Background()

	state, err := svc.StartSession(ctx)
	require.NoError(t, err)
	id := state.SessionID

	state, err = svc.OpenMovieDetail(ctx, id, &request.OpenDetailRequest{MovieID: "m1"})
	require.NoError(t, err)
	require.NotNil(t, state.DetailMovie)
	assert.Equal(t, "Dune: Part Two", state.DetailMovie.Title)

	state, err = svc.SelectShowtime(ctx, id, &request.SelectShowtimeRequest{ShowtimeID: "s1"})
	require.NoError(t, err)
	assert.Equal(t, "seats", state.Stage)
	require.NotNil(t, state.Draft.Showtime)
	assert.InDelta(t, 12.00, state.Draft.Showtime.Price, 0.001)

	// Pick two seats the occupancy roll left free.
	occupied := make(map[string]bool, len(state.SeatMap.Occupied))
	for _, s := range state.SeatMap.Occupied {
		occupied[s] = true
	}
	var picked []string
	for r := 'A'; r <= 'G' && len(picked) < 2; r++ {
		for c := 1; c <= 12 && len(picked) < 2; c++ {
			seat := string(r) + strconv.Itoa(c)
			if !occupied[seat] {
				picked = append(picked, seat)
			}
		}
	}
	require.Len(t, picked, 2)

	for _, seat := range picked {
		state, err = svc.ToggleSeat(ctx, id, &request.ToggleSeatRequest{Seat: seat})
		require.NoError(t, err)
	}
	assert.InDelta(t, 24.00, state.Draft.Total, 0.001)

	state, err = svc.Confirm(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "payment", state.Stage)

	state, err = svc.BeginPayment(ctx, id, &request.BeginPaymentRequest{Provider: "paypal"})
	require.NoError(t, err)
	require.NotNil(t, state.Payment)
	assert.Equal(t, "paypal", state.Payment.Provider)
	assert.InDelta(t, 24.00, state.Payment.Amount, 0.001)
	assert.NotEmpty(t, state.Payment.Reference)

	state, err = svc.CompletePayment(ctx, id, &request.CompletePaymentRequest{})
	require.NoError(t, err)
	assert.Equal(t, "checkout", state.Stage)
	assert.NotEmpty(t, state.OrderID)
	assert.Equal(t, picked, state.Draft.Seats)

	state, err = svc.Reset(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "browse", state.Stage)
	assert.Empty(t, state.OrderID)
	assert.Empty(t, state.Draft.Seats)
}

func TestBeginPaymentRejectsUnknownProvider(t *testing.T) {
	svc := newBookingServiceForTest(t)
	ctx := context.Background()

	state, err := svc.StartSession(ctx)
	require.NoError(t, err)

	_, err = svc.BeginPayment(ctx, state.SessionID, &request.BeginPaymentRequest{Provider: "bitcoin"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}
