package booking

// Stage is one of the four booking flow phases.
type Stage string

const (
	StageBrowse   Stage = "browse"
	StageSeats    Stage = "seats"
	StagePayment  Stage = "payment"
	StageCheckout Stage = "checkout"
)

// Event is a trigger that may move the flow between stages.
type Event string

const (
	EventShowtimeSelected Event = "showtime_selected"
	EventConfirmed        Event = "confirmed"
	EventWentBack         Event = "went_back"
	EventPaymentCancelled Event = "payment_cancelled"
	EventPaymentSucceeded Event = "payment_succeeded"
	EventResetRequested   Event = "reset_requested"
)

type transition struct {
	from  Stage
	event Event
	to    Stage
}

// transitionsTable is the single source of truth for allowed stage edges.
// Guards (seat count, detail open) live in Flow; an absent edge is a no-op.
var transitionsTable = []transition{
	{StageBrowse, EventShowtimeSelected, StageSeats},

	{StageSeats, EventConfirmed, StagePayment},
	{StageSeats, EventWentBack, StageBrowse},

	{StagePayment, EventWentBack, StageSeats},
	{StagePayment, EventPaymentCancelled, StageSeats},
	{StagePayment, EventPaymentSucceeded, StageCheckout},

	// Reset is allowed from every stage, including browse (idempotent).
	{StageBrowse, EventResetRequested, StageBrowse},
	{StageSeats, EventResetRequested, StageBrowse},
	{StagePayment, EventResetRequested, StageBrowse},
	{StageCheckout, EventResetRequested, StageBrowse},
}

// transitionFor returns the target stage for a given stage+event.
func transitionFor(from Stage, ev Event) (Stage, bool) {
	for _, tr := range transitionsTable {
		if tr.from == from && tr.event == ev {
			return tr.to, true
		}
	}
	return "", false
}
