package repository

import (
	"context"

	"github.com/map-my-world-service/internal/domain"
)

// CategoryRepository persists categories. Every query filters out
// soft-deleted rows; callers never see is_deleted = TRUE categories.
type CategoryRepository interface {
	// GetByName returns the category with the exact name, or nil.
	GetByName(ctx context.Context, name string) (*domain.Category, error)

	// GetByIDs resolves the given ids to existing categories. Ids that
	// do not resolve are simply absent from the result.
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.Category, error)

	// Create inserts a category with a slug derived from its name.
	Create(ctx context.Context, name, slug string, description *string) (*domain.Category, error)
}
