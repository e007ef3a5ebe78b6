package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinenyc-booking/internal/data/entity"
)

func TestFixturesLoad(t *testing.T) {
	cat, err := Fixtures()
	require.NoError(t, err)

	assert.Len(t, cat.Movies(), 14)
	assert.Len(t, cat.Theaters(), 2)
}

func TestFixturesReferentialIntegrity(t *testing.T) {
	cat, err := Fixtures()
	require.NoError(t, err)

	for _, m := range cat.Movies() {
		showtimes := cat.ShowtimesForMovie(m.ID)
		for _, st := range showtimes {
			_, ok := cat.TheaterByID(st.TheaterID)
			assert.True(t, ok, "showtime %s references unknown theater %s", st.ID, st.TheaterID)
			assert.Equal(t, m.ID, st.MovieID)
			assert.Greater(t, st.Price, 0.0)
			assert.True(t, entity.ValidFormat(st.Format), "showtime %s has format %q", st.ID, st.Format)
		}
	}
}

func TestMoviesSortedByPopularity(t *testing.T) {
	cat, err := Fixtures()
	require.NoError(t, err)

	movies := cat.Movies()
	for i := 1; i < len(movies); i++ {
		assert.GreaterOrEqual(t, movies[i-1].Popularity, movies[i].Popularity)
	}
}

func TestLookupUnknownIDs(t *testing.T) {
	cat, err := Fixtures()
	require.NoError(t, err)

	_, ok := cat.MovieByID("m999")
	assert.False(t, ok)
	_, ok = cat.TheaterByID("t999")
	assert.False(t, ok)
	_, ok = cat.ShowtimeByID("s999")
	assert.False(t, ok)
	assert.Empty(t, cat.ShowtimesForMovie("m999"))
}

func TestNewRejectsDuplicateIDs(t *testing.T) {
	movies := []entity.Movie{
		{ID: "m1", Title: "One"},
		{ID: "m1", Title: "Two"},
	}

	_, err := New(movies, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestNewRejectsDanglingShowtime(t *testing.T) {
	movies := []entity.Movie{{ID: "m1", Title: "One"}}
	theaters := []entity.Theater{{ID: "t1", Name: "Main"}}
	showtimes := []entity.Showtime{
		{ID: "s1", TheaterID: "t2", MovieID: "m1", Time: "7:00 PM", Format: entity.FormatStandard, Price: 12},
	}

	_, err := New(movies, theaters, showtimes)
	require.Error(t, err)
}
