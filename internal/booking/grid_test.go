package booking

import (
	"math/rand"
	"sort"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeatID(t *testing.T) {
	assert.Equal(t, "A1", SeatID(0, 1))
	assert.Equal(t, "C7", SeatID(2, 7))
	assert.Equal(t, "G12", SeatID(6, 12))
}

func TestValidSeatID(t *testing.T) {
	valid := []string{"A1", "A12", "G1", "D6"}
	for _, id := range valid {
		assert.True(t, ValidSeatID(id), id)
	}

	invalid := []string{"", "A", "H1", "A0", "A13", "a1", "1A", "BX"}
	for _, id := range invalid {
		assert.False(t, ValidSeatID(id), id)
	}

	// Leading-zero aliases name the same physical seat under a different map
	// key; only the canonical form is accepted.
	aliases := []string{"A04", "A01", "B012", "G001"}
	for _, id := range aliases {
		assert.False(t, ValidSeatID(id), id)
	}
}

func TestGridOccupancyStablePerSeed(t *testing.T) {
	a := NewSeatGrid(rand.New(rand.NewSource(42)))
	b := NewSeatGrid(rand.New(rand.NewSource(42)))

	assert.Equal(t, a.Occupied(), b.Occupied())
}

func TestGridOccupancyWithinBounds(t *testing.T) {
	g := NewSeatGrid(rand.New(rand.NewSource(1)))

	occupied := g.Occupied()
	require.NotEmpty(t, occupied)
	assert.Less(t, len(occupied), GridRows*GridCols)

	for _, id := range occupied {
		assert.True(t, ValidSeatID(id), id)
		assert.True(t, g.IsOccupied(id))
	}
}

func TestGridOccupiedSorted(t *testing.T) {
	g := NewSeatGrid(rand.New(rand.NewSource(3)))

	occupied := g.Occupied()
	sorted := sort.SliceIsSorted(occupied, func(i, j int) bool {
		if occupied[i][0] != occupied[j][0] {
			return occupied[i][0] < occupied[j][0]
		}
		ci, _ := strconv.Atoi(occupied[i][1:])
		cj, _ := strconv.Atoi(occupied[j][1:])
		return ci < cj
	})
	assert.True(t, sorted)
}
