package booking

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"cinenyc-booking/internal/data/catalog"
	"cinenyc-booking/internal/payment"
)

func newTestFlow(t *testing.T) *Flow {
	t.Helper()

	cat, err := catalog.Fixtures()
	require.NoError(t, err)

	adapters := map[string]payment.Adapter{
		"paypal": payment.NewWalletAdapter("test-client-id", zap.NewNop()),
	}
	return NewFlow(cat, adapters, rand.New(rand.NewSource(7)), zap.NewNop())
}

// freeSeats returns n seat IDs that are not occupied in the flow's grid.
func freeSeats(t *testing.T, f *Flow, n int) []string {
	t.Helper()

	var out []string
	for r := 0; r < GridRows && len(out) < n; r++ {
		for c := 1; c <= GridCols && len(out) < n; c++ {
			id := SeatID(r, c)
			if !f.grid.IsOccupied(id) {
				out = append(out, id)
			}
		}
	}
	require.Len(t, out, n, "grid has too few free seats")
	return out
}

// advanceToSeats walks a fresh flow into seat selection for Dune: Part Two.
func advanceToSeats(t *testing.T, f *Flow) {
	t.Helper()
	require.NoError(t, f.OpenDetail("m1"))
	require.NoError(t, f.SelectShowtime("s1"))
	require.Equal(t, StageSeats, f.Stage())
}

func TestFullBookingFlow(t *testing.T) {
	f := newTestFlow(t)

	require.NoError(t, f.OpenDetail("m1"))
	snap := f.Snapshot()
	require.NotNil(t, snap.DetailMovie)
	assert.Equal(t, "Dune: Part Two", snap.DetailMovie.Title)

	require.NoError(t, f.SelectShowtime("s1"))
	assert.Equal(t, StageSeats, f.Stage())

	seats := freeSeats(t, f, 2)
	require.NoError(t, f.ToggleSeat(seats[0]))
	require.NoError(t, f.ToggleSeat(seats[1]))
	assert.InDelta(t, 24.00, f.Snapshot().Total, 0.001)

	require.NoError(t, f.Confirm())
	assert.Equal(t, StagePayment, f.Stage())

	attempt, err := f.BeginPayment(context.Background(), "paypal", "guest@example.com")
	require.NoError(t, err)
	<-attempt.Ready()
	require.NoError(t, attempt.Err())

	snap = f.Snapshot()
	assert.Equal(t, "paypal", snap.Provider)
	assert.InDelta(t, 24.00, snap.PaymentAmount, 0.001)
	assert.Equal(t, "guest@example.com", snap.PaymentEmail)

	require.NoError(t, f.CompletePayment(context.Background(), ""))
	snap = f.Snapshot()
	assert.Equal(t, StageCheckout, snap.Stage)
	assert.NotEmpty(t, snap.OrderID)
	assert.Equal(t, seats, snap.Seats)
	assert.InDelta(t, 24.00, snap.Total, 0.001)
}

func TestConfirmWithoutSeats(t *testing.T) {
	f := newTestFlow(t)
	advanceToSeats(t, f)

	err := f.Confirm()
	assert.ErrorIs(t, err, ErrNoSeatsSelected)
	assert.Equal(t, StageSeats, f.Stage())
}

func TestToggleSeatTwiceDeselects(t *testing.T) {
	f := newTestFlow(t)
	advanceToSeats(t, f)

	seat := freeSeats(t, f, 1)[0]
	require.NoError(t, f.ToggleSeat(seat))
	assert.InDelta(t, 12.00, f.Snapshot().Total, 0.001)

	require.NoError(t, f.ToggleSeat(seat))
	snap := f.Snapshot()
	assert.Zero(t, snap.Total)
	assert.Empty(t, snap.Seats)
}

func TestToggleOccupiedSeatRejected(t *testing.T) {
	f := newTestFlow(t)
	advanceToSeats(t, f)

	occupied := f.grid.Occupied()
	require.NotEmpty(t, occupied)

	err := f.ToggleSeat(occupied[0])
	assert.ErrorIs(t, err, ErrSeatOccupied)
	assert.Empty(t, f.Snapshot().Seats)
}

func TestToggleSeatAliasRejected(t *testing.T) {
	f := newTestFlow(t)
	advanceToSeats(t, f)

	// A leading-zero alias of an occupied seat must not slip past the
	// occupancy check.
	occupied := f.grid.Occupied()
	require.NotEmpty(t, occupied)
	alias := occupied[0][:1] + "0" + occupied[0][1:]
	err := f.ToggleSeat(alias)
	assert.ErrorIs(t, err, ErrInvalidSeat)
	assert.Empty(t, f.Snapshot().Seats)

	// Nor can the same physical seat be selected twice under two spellings.
	seat := freeSeats(t, f, 1)[0]
	require.NoError(t, f.ToggleSeat(seat))
	err = f.ToggleSeat(seat[:1] + "0" + seat[1:])
	assert.ErrorIs(t, err, ErrInvalidSeat)

	snap := f.Snapshot()
	assert.Equal(t, []string{seat}, snap.Seats)
	assert.InDelta(t, 12.00, snap.Total, 0.001)
}

func TestToggleInvalidSeat(t *testing.T) {
	f := newTestFlow(t)
	advanceToSeats(t, f)

	for _, id := range []string{"", "Z1", "A0", "A13", "H4", "AA"} {
		err := f.ToggleSeat(id)
		assert.ErrorIs(t, err, ErrInvalidSeat, "seat %q", id)
	}
}

func TestSelectShowtimeRequiresDetail(t *testing.T) {
	f := newTestFlow(t)

	err := f.SelectShowtime("s1")
	assert.ErrorIs(t, err, ErrNoDetailOpen)
	assert.Equal(t, StageBrowse, f.Stage())
}

func TestSelectShowtimeWrongMovie(t *testing.T) {
	f := newTestFlow(t)
	require.NoError(t, f.OpenDetail("m2"))

	// s1 belongs to m1
	err := f.SelectShowtime("s1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not belong")
	assert.Equal(t, StageBrowse, f.Stage())
}

func TestReselectionClearsSeats(t *testing.T) {
	f := newTestFlow(t)
	advanceToSeats(t, f)

	seats := freeSeats(t, f, 2)
	require.NoError(t, f.ToggleSeat(seats[0]))
	require.NoError(t, f.ToggleSeat(seats[1]))

	// Back reopens the draft movie's detail view.
	require.NoError(t, f.Back())
	snap := f.Snapshot()
	assert.Equal(t, StageBrowse, snap.Stage)
	require.NotNil(t, snap.DetailMovie)
	assert.Equal(t, "m1", snap.DetailMovie.ID)

	require.NoError(t, f.SelectShowtime("s2"))
	snap = f.Snapshot()
	assert.Empty(t, snap.Seats)
	assert.Zero(t, snap.Total)
}

func TestBackFromPaymentRevokesAttempt(t *testing.T) {
	f := newTestFlow(t)
	advanceToSeats(t, f)

	seat := freeSeats(t, f, 1)[0]
	require.NoError(t, f.ToggleSeat(seat))
	require.NoError(t, f.Confirm())

	attempt, err := f.BeginPayment(context.Background(), "paypal", "")
	require.NoError(t, err)

	require.NoError(t, f.Back())
	assert.Equal(t, StageSeats, f.Stage())

	// A late provider success must not move the flow anymore.
	assert.False(t, attempt.Succeed())
	assert.Equal(t, StageSeats, f.Stage())
	assert.Empty(t, f.Snapshot().OrderID)
}

func TestCancelPaymentReturnsToSeats(t *testing.T) {
	f := newTestFlow(t)
	advanceToSeats(t, f)

	seat := freeSeats(t, f, 1)[0]
	require.NoError(t, f.ToggleSeat(seat))
	require.NoError(t, f.Confirm())

	_, err := f.BeginPayment(context.Background(), "paypal", "")
	require.NoError(t, err)

	require.NoError(t, f.CancelPayment())
	snap := f.Snapshot()
	assert.Equal(t, StageSeats, snap.Stage)
	assert.Equal(t, []string{seat}, snap.Seats, "selection survives a cancelled payment")
}

func TestBeginPaymentUnknownProvider(t *testing.T) {
	f := newTestFlow(t)
	advanceToSeats(t, f)

	seat := freeSeats(t, f, 1)[0]
	require.NoError(t, f.ToggleSeat(seat))
	require.NoError(t, f.Confirm())

	_, err := f.BeginPayment(context.Background(), "bitcoin", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestCompletePaymentWithoutAttempt(t *testing.T) {
	f := newTestFlow(t)
	advanceToSeats(t, f)

	seat := freeSeats(t, f, 1)[0]
	require.NoError(t, f.ToggleSeat(seat))
	require.NoError(t, f.Confirm())

	err := f.CompletePayment(context.Background(), "")
	assert.ErrorIs(t, err, ErrNoAttempt)
}

func TestResetFromEveryStage(t *testing.T) {
	t.Run("browse", func(t *testing.T) {
		f := newTestFlow(t)
		f.Reset()
		assert.Equal(t, StageBrowse, f.Stage())
	})

	t.Run("seats", func(t *testing.T) {
		f := newTestFlow(t)
		advanceToSeats(t, f)
		seat := freeSeats(t, f, 1)[0]
		require.NoError(t, f.ToggleSeat(seat))

		f.Reset()
		snap := f.Snapshot()
		assert.Equal(t, StageBrowse, snap.Stage)
		assert.Empty(t, snap.Seats)
		assert.Nil(t, snap.Showtime)
	})

	t.Run("payment", func(t *testing.T) {
		f := newTestFlow(t)
		advanceToSeats(t, f)
		seat := freeSeats(t, f, 1)[0]
		require.NoError(t, f.ToggleSeat(seat))
		require.NoError(t, f.Confirm())

		attempt, err := f.BeginPayment(context.Background(), "paypal", "")
		require.NoError(t, err)

		f.Reset()
		assert.Equal(t, StageBrowse, f.Stage())
		assert.False(t, attempt.Succeed(), "revoked attempt stays dead")
	})

	t.Run("checkout", func(t *testing.T) {
		f := newTestFlow(t)
		advanceToSeats(t, f)
		seat := freeSeats(t, f, 1)[0]
		require.NoError(t, f.ToggleSeat(seat))
		require.NoError(t, f.Confirm())
		_, err := f.BeginPayment(context.Background(), "paypal", "")
		require.NoError(t, err)
		require.NoError(t, f.CompletePayment(context.Background(), ""))
		require.Equal(t, StageCheckout, f.Stage())

		f.Reset()
		snap := f.Snapshot()
		assert.Equal(t, StageBrowse, snap.Stage)
		assert.Empty(t, snap.OrderID)
	})
}

func TestResetIsIdempotent(t *testing.T) {
	f := newTestFlow(t)
	advanceToSeats(t, f)

	occupiedBefore := f.Snapshot().Occupied

	f.Reset()
	f.Reset()
	f.Reset()

	snap := f.Snapshot()
	assert.Equal(t, StageBrowse, snap.Stage)
	assert.Equal(t, occupiedBefore, snap.Occupied, "occupancy is kept for the session")
}
