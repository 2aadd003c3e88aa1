package repository

import (
	"context"

	"github.com/map-my-world-service/internal/domain"
)

// LocationCategoryRepository works with the location<->category join
// table and its review counter.
type LocationCategoryRepository interface {
	// GetCategoryIndex scans all non-deleted join rows once and returns
	// location_id -> categories, to decorate result lists without N+1
	// lookups. Empty map when no rows exist.
	GetCategoryIndex(ctx context.Context) (map[int64][]domain.Category, error)

	// IncrementTotalReviews bumps total_reviews by exactly 1 and
	// refreshes updated_at on the single non-deleted (location, category)
	// row, as one atomic UPDATE. Returns false when no such row exists.
	IncrementTotalReviews(ctx context.Context, locationID, categoryID int64) (bool, error)
}
