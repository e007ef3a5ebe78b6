package catalog

import (
	"fmt"
	"sort"

	"cinenyc-booking/internal/data/entity"
)

// Catalog holds the immutable movie/theater/showtime listings. It is built
// once at startup (from fixtures or the catalog database) and is safe for
// concurrent reads.
type Catalog struct {
	movies    []entity.Movie
	theaters  []entity.Theater
	showtimes []entity.Showtime

	movieByID    map[string]*entity.Movie
	theaterByID  map[string]*entity.Theater
	showtimeByID map[string]*entity.Showtime
}

// New builds a catalog and validates referential integrity: every showtime
// must reference an existing movie and theater and carry a valid format.
func New(movies []entity.Movie, theaters []entity.Theater, showtimes []entity.Showtime) (*Catalog, error) {
	c := &Catalog{
		movies:       movies,
		theaters:     theaters,
		showtimes:    showtimes,
		movieByID:    make(map[string]*entity.Movie, len(movies)),
		theaterByID:  make(map[string]*entity.Theater, len(theaters)),
		showtimeByID: make(map[string]*entity.Showtime, len(showtimes)),
	}

	for i := range movies {
		m := &c.movies[i]
		if _, dup := c.movieByID[m.ID]; dup {
			return nil, fmt.Errorf("duplicate movie id %s", m.ID)
		}
		c.movieByID[m.ID] = m
	}

	for i := range theaters {
		t := &c.theaters[i]
		if _, dup := c.theaterByID[t.ID]; dup {
			return nil, fmt.Errorf("duplicate theater id %s", t.ID)
		}
		c.theaterByID[t.ID] = t
	}

	for i := range showtimes {
		s := &c.showtimes[i]
		if _, dup := c.showtimeByID[s.ID]; dup {
			return nil, fmt.Errorf("duplicate showtime id %s", s.ID)
		}
		if _, ok := c.movieByID[s.MovieID]; !ok {
			return nil, fmt.Errorf("showtime %s references unknown movie %s", s.ID, s.MovieID)
		}
		if _, ok := c.theaterByID[s.TheaterID]; !ok {
			return nil, fmt.Errorf("showtime %s references unknown theater %s", s.ID, s.TheaterID)
		}
		if !entity.ValidFormat(s.Format) {
			return nil, fmt.Errorf("showtime %s has invalid format %q", s.ID, s.Format)
		}
		if s.Price <= 0 {
			return nil, fmt.Errorf("showtime %s has non-positive price", s.ID)
		}
		c.showtimeByID[s.ID] = s
	}

	return c, nil
}

// Movies returns all movies sorted by popularity, most popular first.
func (c *Catalog) Movies() []entity.Movie {
	out := make([]entity.Movie, len(c.movies))
	copy(out, c.movies)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Popularity > out[j].Popularity
	})
	return out
}

func (c *Catalog) Theaters() []entity.Theater {
	out := make([]entity.Theater, len(c.theaters))
	copy(out, c.theaters)
	return out
}

func (c *Catalog) MovieByID(id string) (*entity.Movie, bool) {
	m, ok := c.movieByID[id]
	return m, ok
}

func (c *Catalog) TheaterByID(id string) (*entity.Theater, bool) {
	t, ok := c.theaterByID[id]
	return t, ok
}

func (c *Catalog) ShowtimeByID(id string) (*entity.Showtime, bool) {
	s, ok := c.showtimeByID[id]
	return s, ok
}

// ShowtimesForMovie returns the movie's showtimes in catalog order.
func (c *Catalog) ShowtimesForMovie(movieID string) []entity.Showtime {
	var out []entity.Showtime
	for _, s := range c.showtimes {
		if s.MovieID == movieID {
			out = append(out, s)
		}
	}
	return out
}
