package usecase

import (
	"fmt"

	"cinenyc-booking/internal/data/catalog"
	"cinenyc-booking/internal/dto/response"

	"go.uber.org/zap"
)

type CatalogService interface {
	GetMovies() []response.MovieResponse
	GetMovieByID(movieID string) (*response.MovieResponse, error)
	GetTheaters() []response.TheaterResponse
	GetShowtimes(movieID string) ([]response.TheaterShowtimesResponse, error)
}

type catalogService struct {
	catalog *catalog.Catalog
	log     *zap.Logger
}

func NewCatalogService(
	cat *catalog.Catalog,
	log *zap.Logger,
) CatalogService {
	return &catalogService{
		catalog: cat,
		log:     log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) GetMovies() []response.MovieResponse {
	movies := s.catalog.Movies()

	result := make([]response.MovieResponse, 0, len(movies))
	for i := range movies {
		result = append(result, response.MovieToResponse(&movies[i]))
	}
	return result
}

func (s *catalogService) GetMovieByID(movieID string) (*response.MovieResponse, error) {
	movie, ok := s.catalog.MovieByID(movieID)
	if !ok {
		s.log.Warn("Movie not found", zap.String("movie_id", movieID))
		return nil, fmt.Errorf("movie %s not found", movieID)
	}

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *catalogService) GetTheaters() []response.TheaterResponse {
	theaters := s.catalog.Theaters()

	result := make([]response.TheaterResponse, 0, len(theaters))
	for i := range theaters {
		result = append(result, response.TheaterToResponse(&theaters[i]))
	}
	return result
}

// GetShowtimes returns the movie's showtimes grouped per theater, keeping
// the theater order stable.
func (s *catalogService) GetShowtimes(movieID string) ([]response.TheaterShowtimesResponse, error) {
	if _, ok := s.catalog.MovieByID(movieID); !ok {
		s.log.Warn("Movie not found", zap.String("movie_id", movieID))
		return nil, fmt.Errorf("movie %s not found", movieID)
	}

	showtimes := s.catalog.ShowtimesForMovie(movieID)

	byTheater := make(map[string][]response.ShowtimeResponse)
	for i := range showtimes {
		st := &showtimes[i]
		byTheater[st.TheaterID] = append(byTheater[st.TheaterID], response.ShowtimeToResponse(st))
	}

	theaters := s.catalog.Theaters()
	result := make([]response.TheaterShowtimesResponse, 0, len(byTheater))
	for i := range theaters {
		group, ok := byTheater[theaters[i].ID]
		if !ok {
			continue
		}
		result = append(result, response.TheaterShowtimesResponse{
			Theater:   response.TheaterToResponse(&theaters[i]),
			Showtimes: group,
		})
	}

	return result, nil
}
