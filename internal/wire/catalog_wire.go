package wire

import (
	"github.com/go-chi/chi/v5"

	"cinenyc-booking/internal/adaptor"
)

func wireCatalog(r chi.Router, catalogHandler *adaptor.CatalogHandler) {
	// GET /api/movies - list movies sorted by popularity (public)
	r.Get("/api/movies", catalogHandler.GetMovies)

	// GET /api/movies/{id} - movie details (public)
	r.Get("/api/movies/{id}", catalogHandler.GetMovieByID)

	// GET /api/movies/{id}/showtimes - showtimes grouped per theater
	r.Get("/api/movies/{id}/showtimes", catalogHandler.GetShowtimes)

	// GET /api/theaters - list theaters
	r.Get("/api/theaters", catalogHandler.GetTheaters)
}
