package response

import (
	"cinenyc-booking/internal/data/entity"
)

type MovieResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	PosterURL   string   `json:"poster_url"`
	BannerURL   string   `json:"banner_url"`
	Rating      string   `json:"rating"`
	Genres      []string `json:"genres"`
	Duration    string   `json:"duration"`
	Description string   `json:"description"`
	ReleaseDate string   `json:"release_date"`
	Director    string   `json:"director"`
	Cast        []string `json:"cast"`
	Popularity  int      `json:"popularity"`
}

type TheaterResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Address   string   `json:"address"`
	Distance  string   `json:"distance"`
	Amenities []string `json:"amenities"`
}

type ShowtimeResponse struct {
	ID      string  `json:"id"`
	MovieID string  `json:"movie_id"`
	Time    string  `json:"time"`
	Format  string  `json:"format"`
	Price   float64 `json:"price"`
}

// TheaterShowtimesResponse groups a movie's showtimes per theater, the way
// the detail view presents them.
type TheaterShowtimesResponse struct {
	Theater   TheaterResponse    `json:"theater"`
	Showtimes []ShowtimeResponse `json:"showtimes"`
}

// Helper converters

func MovieToResponse(m *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:          m.ID,
		Title:       m.Title,
		PosterURL:   m.PosterURL,
		BannerURL:   m.BannerURL,
		Rating:      m.Rating,
		Genres:      m.Genres,
		Duration:    m.Duration,
		Description: m.Description,
		ReleaseDate: m.ReleaseDate,
		Director:    m.Director,
		Cast:        m.Cast,
		Popularity:  m.Popularity,
	}
}

func TheaterToResponse(t *entity.Theater) TheaterResponse {
	return TheaterResponse{
		ID:        t.ID,
		Name:      t.Name,
		Address:   t.Address,
		Distance:  t.Distance,
		Amenities: t.Amenities,
	}
}

func ShowtimeToResponse(s *entity.Showtime) ShowtimeResponse {
	return ShowtimeResponse{
		ID:      s.ID,
		MovieID: s.MovieID,
		Time:    s.Time,
		Format:  string(s.Format),
		Price:   s.Price,
	}
}
