package repository

import (
	"context"
	"time"

	"github.com/map-my-world-service/internal/domain"
)

// LocationRepository persists locations and serves the read paths that
// join through location_category.
type LocationRepository interface {
	// FindByCoordinates returns the non-deleted location at the exact
	// (country, city, latitude, longitude) tuple, or nil. The address is
	// not part of the lookup.
	FindByCoordinates(ctx context.Context, countryID, cityID int64, latitude, longitude float64) (*domain.Location, error)

	// CreateWithCategories inserts the location and one location_category
	// row per category id, all inside a single transaction. A failure on
	// the association insert rolls the location back too. Each created
	// association starts with total_reviews = 0.
	CreateWithCategories(ctx context.Context, loc *domain.Location, categoryIDs []int64) (*domain.Location, error)

	// GetDetail returns the non-deleted location joined to its
	// location_category row for categoryID, annotated with that row's
	// total_reviews. Nil when the pair does not exist.
	GetDetail(ctx context.Context, locationID, categoryID int64) (*domain.RankedLocation, error)

	// Recommend selects non-deleted locations associated to categoryID
	// whose association was updated inside [since, until], ordered by
	// ascending total_reviews. Least-reviewed-first is the recommendation
	// policy; keep the sort direction.
	Recommend(ctx context.Context, categoryID int64, since, until time.Time, limit, offset int) ([]*domain.RankedLocation, error)
}
