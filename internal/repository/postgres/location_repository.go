package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/map-my-world-service/internal/domain"
	"github.com/map-my-world-service/internal/domain/repository"
	apperrors "github.com/map-my-world-service/internal/pkg/errors"
)

const locationColumns = `id, country_id, city_id, address, latitude, longitude, created_at, updated_at, is_deleted`

type locationRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewLocationRepository(db *DB) repository.LocationRepository {
	return &locationRepository{
		db:     db,
		logger: db.logger,
	}
}

func (r *locationRepository) FindByCoordinates(
	ctx context.Context,
	countryID, cityID int64,
	latitude, longitude float64,
) (*domain.Location, error) {
	query := `
		SELECT ` + locationColumns + `
		FROM location
		WHERE country_id = $1
		  AND city_id = $2
		  AND latitude = $3::numeric(10,7)
		  AND longitude = $4::numeric(10,7)
		  AND is_deleted = FALSE
		LIMIT 1
	`

	var loc domain.Location
	err := r.db.withReconnectRetry(ctx, func() error {
		return r.db.GetContext(ctx, &loc, query, countryID, cityID, latitude, longitude)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to find location by coordinates",
			zap.Int64("country_id", countryID),
			zap.Int64("city_id", cityID),
			zap.Error(err),
		)
		return nil, apperrors.ErrDatabaseError
	}

	return &loc, nil
}

func (r *locationRepository) CreateWithCategories(
	ctx context.Context,
	loc *domain.Location,
	categoryIDs []int64,
) (*domain.Location, error) {
	insertLocation := `
		INSERT INTO location (country_id, city_id, address, latitude, longitude)
		VALUES ($1, $2, $3, $4::numeric(10,7), $5::numeric(10,7))
		RETURNING ` + locationColumns + `
	`

	insertAssociations := `
		INSERT INTO location_category (location_id, category_id, total_reviews)
		SELECT $1, unnest($2::bigint[]), 0
	`

	var created domain.Location
	err := r.db.withReconnectRetry(ctx, func() error {
		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			return err
		}
		defer tx.Rollback()

		if err := tx.GetContext(ctx, &created, insertLocation,
			loc.CountryID, loc.CityID, loc.Address, loc.Latitude, loc.Longitude,
		); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, insertAssociations,
			created.ID, pq.Array(categoryIDs),
		); err != nil {
			return err
		}

		return tx.Commit()
	})
	if err != nil {
		r.logger.Error("Failed to create location with categories",
			zap.Int64("country_id", loc.CountryID),
			zap.Int64("city_id", loc.CityID),
			zap.Int64s("category_ids", categoryIDs),
			zap.Error(err),
		)
		return nil, apperrors.ErrDatabaseError
	}

	return &created, nil
}

func (r *locationRepository) GetDetail(
	ctx context.Context,
	locationID, categoryID int64,
) (*domain.RankedLocation, error) {
	query := `
		SELECT
			l.id, l.country_id, l.city_id, l.address, l.latitude, l.longitude,
			l.created_at, l.updated_at, l.is_deleted,
			lc.total_reviews
		FROM location l
		JOIN location_category lc ON lc.location_id = l.id
		WHERE l.id = $1
		  AND lc.category_id = $2
		  AND l.is_deleted = FALSE
		  AND lc.is_deleted = FALSE
	`

	var detail domain.RankedLocation
	err := r.db.withReconnectRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, locationID, categoryID).Scan(
			&detail.ID, &detail.CountryID, &detail.CityID, &detail.Address,
			&detail.Latitude, &detail.Longitude,
			&detail.CreatedAt, &detail.UpdatedAt, &detail.IsDeleted,
			&detail.TotalReviews,
		)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get location detail",
			zap.Int64("location_id", locationID),
			zap.Int64("category_id", categoryID),
			zap.Error(err),
		)
		return nil, apperrors.ErrDatabaseError
	}

	return &detail, nil
}

func (r *locationRepository) Recommend(
	ctx context.Context,
	categoryID int64,
	since, until time.Time,
	limit, offset int,
) ([]*domain.RankedLocation, error) {
	// Least-reviewed-first inside the trailing activity window. The
	// ascending sort is the recommendation policy; do not invert it into
	// a popularity ranking.
	query := `
		SELECT
			l.id, l.country_id, l.city_id, l.address, l.latitude, l.longitude,
			l.created_at, l.updated_at, l.is_deleted,
			lc.total_reviews
		FROM location l
		JOIN location_category lc ON lc.location_id = l.id
		WHERE lc.category_id = $1
		  AND lc.updated_at BETWEEN $2 AND $3
		  AND l.is_deleted = FALSE
		  AND lc.is_deleted = FALSE
		ORDER BY lc.total_reviews ASC, l.id ASC
		LIMIT $4 OFFSET $5
	`

	var locations []*domain.RankedLocation
	err := r.db.withReconnectRetry(ctx, func() error {
		rows, err := r.db.QueryContext(ctx, query, categoryID, since, until, limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()

		locations = locations[:0]
		for rows.Next() {
			var loc domain.RankedLocation
			err := rows.Scan(
				&loc.ID, &loc.CountryID, &loc.CityID, &loc.Address,
				&loc.Latitude, &loc.Longitude,
				&loc.CreatedAt, &loc.UpdatedAt, &loc.IsDeleted,
				&loc.TotalReviews,
			)
			if err != nil {
				return err
			}
			locations = append(locations, &loc)
		}

		return rows.Err()
	})
	if err != nil {
		r.logger.Error("Failed to query recommended locations",
			zap.Int64("category_id", categoryID),
			zap.Error(err),
		)
		return nil, apperrors.ErrDatabaseError
	}

	return locations, nil
}
