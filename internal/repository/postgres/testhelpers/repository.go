package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/map-my-world-service/internal/domain/repository"
	"github.com/map-my-world-service/internal/repository/postgres"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// NewCategoryRepositoryForTest creates a category repository with test database and logger
func NewCategoryRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.CategoryRepository {
	return postgres.NewCategoryRepository(NewDBForTest(db, logger))
}

// NewCityRepositoryForTest creates a city repository with test database and logger
func NewCityRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.CityRepository {
	return postgres.NewCityRepository(NewDBForTest(db, logger))
}

// NewLocationRepositoryForTest creates a location repository with test database and logger
func NewLocationRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.LocationRepository {
	return postgres.NewLocationRepository(NewDBForTest(db, logger))
}

// NewLocationCategoryRepositoryForTest creates a location-category repository with test database and logger
func NewLocationCategoryRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.LocationCategoryRepository {
	return postgres.NewLocationCategoryRepository(NewDBForTest(db, logger))
}
