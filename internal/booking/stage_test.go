package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransitionFor(t *testing.T) {
	cases := []struct {
		from  Stage
		event Event
		to    Stage
		ok    bool
	}{
		{StageBrowse, EventShowtimeSelected, StageSeats, true},
		{StageSeats, EventConfirmed, StagePayment, true},
		{StageSeats, EventWentBack, StageBrowse, true},
		{StagePayment, EventWentBack, StageSeats, true},
		{StagePayment, EventPaymentCancelled, StageSeats, true},
		{StagePayment, EventPaymentSucceeded, StageCheckout, true},

		// Absent edges are no-ops.
		{StageBrowse, EventConfirmed, "", false},
		{StageBrowse, EventWentBack, "", false},
		{StageSeats, EventPaymentSucceeded, "", false},
		{StageCheckout, EventConfirmed, "", false},
		{StageCheckout, EventWentBack, "", false},
	}

	for _, tc := range cases {
		to, ok := transitionFor(tc.from, tc.event)
		assert.Equal(t, tc.ok, ok, "%s + %s", tc.from, tc.event)
		if tc.ok {
			assert.Equal(t, tc.to, to, "%s + %s", tc.from, tc.event)
		}
	}
}

func TestResetAllowedFromEveryStage(t *testing.T) {
	for _, from := range []Stage{StageBrowse, StageSeats, StagePayment, StageCheckout} {
		to, ok := transitionFor(from, EventResetRequested)
		assert.True(t, ok, string(from))
		assert.Equal(t, StageBrowse, to, string(from))
	}
}
