package booking

import (
	"sort"
	"strconv"

	"cinenyc-booking/internal/data/entity"
)

// Draft is the in-progress selection of movie, theater, showtime and seats
// before payment. Only Flow constructs and mutates drafts.
type Draft struct {
	movie    *entity.Movie
	theater  *entity.Theater
	showtime *entity.Showtime
	seats    map[string]struct{}
}

func newDraft() Draft {
	return Draft{seats: make(map[string]struct{})}
}

func (d *Draft) Movie() *entity.Movie       { return d.movie }
func (d *Draft) Theater() *entity.Theater   { return d.theater }
func (d *Draft) Showtime() *entity.Showtime { return d.showtime }

func (d *Draft) SeatCount() int { return len(d.seats) }

func (d *Draft) HasSeat(id string) bool {
	_, ok := d.seats[id]
	return ok
}

// Seats returns the selection sorted by row letter then column number.
func (d *Draft) Seats() []string {
	out := make([]string, 0, len(d.seats))
	for id := range d.seats {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		ci, _ := strconv.Atoi(out[i][1:])
		cj, _ := strconv.Atoi(out[j][1:])
		return ci < cj
	})
	return out
}

// Total is always derived from the showtime's unit price and the current
// selection; it is never cached.
func (d *Draft) Total() float64 {
	if d.showtime == nil {
		return 0
	}
	return d.showtime.Price * float64(len(d.seats))
}

// toggleSeat applies symmetric-difference semantics.
func (d *Draft) toggleSeat(id string) {
	if _, ok := d.seats[id]; ok {
		delete(d.seats, id)
		return
	}
	d.seats[id] = struct{}{}
}

func (d *Draft) clearSeats() {
	d.seats = make(map[string]struct{})
}

func (d *Draft) clear() {
	d.movie = nil
	d.theater = nil
	d.showtime = nil
	d.seats = make(map[string]struct{})
}
