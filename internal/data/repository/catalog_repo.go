package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"cinenyc-booking/internal/data/catalog"
	"cinenyc-booking/internal/data/entity"
	"cinenyc-booking/pkg/database"
)

// CatalogRepository loads the immutable catalog from the database. It runs
// once at startup; the catalog never changes afterwards.
type CatalogRepository interface {
	Load(ctx context.Context) (*catalog.Catalog, error)
}

type catalogRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCatalogRepository(db database.PgxIface, log *zap.Logger) CatalogRepository {
	return &catalogRepository{
		db:  db,
		log: log.With(zap.String("repository", "catalog")),
	}
}

func (r *catalogRepository) Load(ctx context.Context) (*catalog.Catalog, error) {
	movies, err := r.loadMovies(ctx)
	if err != nil {
		return nil, err
	}

	theaters, err := r.loadTheaters(ctx)
	if err != nil {
		return nil, err
	}

	showtimes, err := r.loadShowtimes(ctx)
	if err != nil {
		return nil, err
	}

	cat, err := catalog.New(movies, theaters, showtimes)
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}

	r.log.Info("Catalog loaded from database",
		zap.Int("movies", len(movies)),
		zap.Int("theaters", len(theaters)),
		zap.Int("showtimes", len(showtimes)),
	)
	return cat, nil
}

func (r *catalogRepository) loadMovies(ctx context.Context) ([]entity.Movie, error) {
	query := `
		SELECT id, title, poster_url, banner_url, rating, genres, duration,
		       description, release_date, director, cast_members, popularity
		FROM movies
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to load movies", zap.Error(err))
		return nil, fmt.Errorf("load movies: %w", err)
	}
	defer rows.Close()

	var movies []entity.Movie
	for rows.Next() {
		var m entity.Movie
		err := rows.Scan(
			&m.ID,
			&m.Title,
			&m.PosterURL,
			&m.BannerURL,
			&m.Rating,
			&m.Genres,
			&m.Duration,
			&m.Description,
			&m.ReleaseDate,
			&m.Director,
			&m.Cast,
			&m.Popularity,
		)
		if err != nil {
			return nil, fmt.Errorf("scan movie: %w", err)
		}
		movies = append(movies, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate movies: %w", err)
	}
	return movies, nil
}

func (r *catalogRepository) loadTheaters(ctx context.Context) ([]entity.Theater, error) {
	query := `
		SELECT id, name, address, distance, amenities
		FROM theaters
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to load theaters", zap.Error(err))
		return nil, fmt.Errorf("load theaters: %w", err)
	}
	defer rows.Close()

	var theaters []entity.Theater
	for rows.Next() {
		var t entity.Theater
		if err := rows.Scan(&t.ID, &t.Name, &t.Address, &t.Distance, &t.Amenities); err != nil {
			return nil, fmt.Errorf("scan theater: %w", err)
		}
		theaters = append(theaters, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate theaters: %w", err)
	}
	return theaters, nil
}

func (r *catalogRepository) loadShowtimes(ctx context.Context) ([]entity.Showtime, error) {
	query := `
		SELECT id, theater_id, movie_id, show_time, format, price
		FROM showtimes
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to load showtimes", zap.Error(err))
		return nil, fmt.Errorf("load showtimes: %w", err)
	}
	defer rows.Close()

	var showtimes []entity.Showtime
	for rows.Next() {
		var s entity.Showtime
		if err := rows.Scan(&s.ID, &s.TheaterID, &s.MovieID, &s.Time, &s.Format, &s.Price); err != nil {
			return nil, fmt.Errorf("scan showtime: %w", err)
		}
		showtimes = append(showtimes, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate showtimes: %w", err)
	}
	return showtimes, nil
}
