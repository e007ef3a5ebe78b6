package booking

import (
	"fmt"
	"math/rand"
	"sort"
	"strconv"
)

const (
	// GridRows x GridCols is the fixed auditorium layout: rows A-G, 12 seats
	// per row, 84 seats total.
	GridRows = 7
	GridCols = 12

	occupancyRate = 0.15
)

var rowLetters = [GridRows]byte{'A', 'B', 'C', 'D', 'E', 'F', 'G'}

// SeatID builds a seat identifier from a 0-based row index and a 1-based
// column number, e.g. SeatID(2, 7) == "C7".
func SeatID(row, col int) string {
	return fmt.Sprintf("%c%d", rowLetters[row], col)
}

// ValidSeatID reports whether id is the canonical name of a seat inside the
// grid. Aliases such as "A04" are rejected; every seat has exactly one
// identifier, so selection and occupancy always agree on map keys.
func ValidSeatID(id string) bool {
	if len(id) < 2 {
		return false
	}
	row := id[0]
	if row < 'A' || row > 'G' {
		return false
	}
	col, err := strconv.Atoi(id[1:])
	if err != nil {
		return false
	}
	if col < 1 || col > GridCols {
		return false
	}
	return id == SeatID(int(row-'A'), col)
}

// SeatGrid holds the occupancy set for one booking session. Occupancy is
// rolled exactly once from the injected source and never changes for the
// grid's lifetime; a selection can therefore never race a shifting
// occupancy set.
type SeatGrid struct {
	occupied map[string]struct{}
}

func NewSeatGrid(rng *rand.Rand) *SeatGrid {
	occupied := make(map[string]struct{})
	for r := 0; r < GridRows; r++ {
		for c := 1; c <= GridCols; c++ {
			if rng.Float64() < occupancyRate {
				occupied[SeatID(r, c)] = struct{}{}
			}
		}
	}
	return &SeatGrid{occupied: occupied}
}

func (g *SeatGrid) IsOccupied(id string) bool {
	_, ok := g.occupied[id]
	return ok
}

// Occupied returns the occupied seat identifiers sorted by row then column.
func (g *SeatGrid) Occupied() []string {
	out := make([]string, 0, len(g.occupied))
	for id := range g.occupied {
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
