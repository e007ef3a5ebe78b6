package repository

import (
	"go.uber.org/zap"

	"cinenyc-booking/pkg/database"
)

// Repository groups all data access for wiring.
type Repository struct {
	Catalog CatalogRepository
	Session SessionRepository
}

// NewRepository initializes all repositories. db may be nil when the service
// runs on the embedded fixture catalog.
func NewRepository(db database.PgxIface, logger *zap.Logger) *Repository {
	repo := &Repository{
		Session: NewSessionRepository(logger),
	}
	if db != nil {
		repo.Catalog = NewCatalogRepository(db, logger)
	}
	return repo
}
