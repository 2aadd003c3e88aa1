package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/map-my-world-service/internal/domain"
	"github.com/map-my-world-service/internal/domain/repository"
	apperrors "github.com/map-my-world-service/internal/pkg/errors"
)

const categoryColumns = `id, name, slug, description, created_at, updated_at, is_deleted`

type categoryRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewCategoryRepository(db *DB) repository.CategoryRepository {
	return &categoryRepository{
		db:     db,
		logger: db.logger,
	}
}

func (r *categoryRepository) GetByName(ctx context.Context, name string) (*domain.Category, error) {
	query := `
		SELECT ` + categoryColumns + `
		FROM category
		WHERE name = $1 AND is_deleted = FALSE
		ORDER BY id
		LIMIT 1
	`

	var category domain.Category
	err := r.db.withReconnectRetry(ctx, func() error {
		return r.db.GetContext(ctx, &category, query, name)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get category by name", zap.String("name", name), zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}

	return &category, nil
}

func (r *categoryRepository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Category, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `
		SELECT ` + categoryColumns + `
		FROM category
		WHERE id = ANY($1::bigint[]) AND is_deleted = FALSE
		ORDER BY id
	`

	var categories []*domain.Category
	err := r.db.withReconnectRetry(ctx, func() error {
		categories = categories[:0]
		return r.db.SelectContext(ctx, &categories, query, pq.Array(ids))
	})
	if err != nil {
		r.logger.Error("Failed to get categories by ids", zap.Int64s("ids", ids), zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}

	return categories, nil
}

func (r *categoryRepository) Create(ctx context.Context, name, slug string, description *string) (*domain.Category, error) {
	query := `
		INSERT INTO category (name, slug, description)
		VALUES ($1, $2, $3)
		RETURNING ` + categoryColumns + `
	`

	desc := sql.NullString{}
	if description != nil {
		desc = sql.NullString{String: *description, Valid: true}
	}

	var category domain.Category
	err := r.db.withReconnectRetry(ctx, func() error {
		return r.db.GetContext(ctx, &category, query, name, slug, desc)
	})
	if err != nil {
		r.logger.Error("Failed to create category", zap.String("name", name), zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}

	return &category, nil
}
