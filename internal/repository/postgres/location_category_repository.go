package postgres

import (
	"context"

	"go.uber.org/zap"

	"github.com/map-my-world-service/internal/domain"
	"github.com/map-my-world-service/internal/domain/repository"
	apperrors "github.com/map-my-world-service/internal/pkg/errors"
)

type locationCategoryRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewLocationCategoryRepository(db *DB) repository.LocationCategoryRepository {
	return &locationCategoryRepository{
		db:     db,
		logger: db.logger,
	}
}

func (r *locationCategoryRepository) GetCategoryIndex(ctx context.Context) (map[int64][]domain.Category, error) {
	query := `
		SELECT
			lc.location_id,
			c.id, c.name, c.slug, c.description,
			c.created_at, c.updated_at, c.is_deleted
		FROM location_category lc
		JOIN category c ON c.id = lc.category_id
		WHERE lc.is_deleted = FALSE AND c.is_deleted = FALSE
		ORDER BY lc.location_id, c.id
	`

	index := make(map[int64][]domain.Category)
	err := r.db.withReconnectRetry(ctx, func() error {
		rows, err := r.db.QueryContext(ctx, query)
		if err != nil {
			return err
		}
		defer rows.Close()

		clear(index)
		for rows.Next() {
			var locationID int64
			var category domain.Category

			err := rows.Scan(
				&locationID,
				&category.ID, &category.Name, &category.Slug, &category.Description,
				&category.CreatedAt, &category.UpdatedAt, &category.IsDeleted,
			)
			if err != nil {
				return err
			}

			index[locationID] = append(index[locationID], category)
		}

		return rows.Err()
	})
	if err != nil {
		r.logger.Error("Failed to build category index", zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}

	return index, nil
}

func (r *locationCategoryRepository) IncrementTotalReviews(ctx context.Context, locationID, categoryID int64) (bool, error) {
	// Single atomic UPDATE; concurrent views never lose an increment.
	query := `
		UPDATE location_category
		SET total_reviews = total_reviews + 1,
		    updated_at = now()
		WHERE location_id = $1
		  AND category_id = $2
		  AND is_deleted = FALSE
	`

	var affected int64
	err := r.db.withReconnectRetry(ctx, func() error {
		res, err := r.db.ExecContext(ctx, query, locationID, categoryID)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		r.logger.Error("Failed to increment total_reviews",
			zap.Int64("location_id", locationID),
			zap.Int64("category_id", categoryID),
			zap.Error(err),
		)
		return false, apperrors.ErrDatabaseError
	}

	return affected > 0, nil
}
