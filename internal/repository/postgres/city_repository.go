package postgres

import (
	"context"

	"go.uber.org/zap"

	"github.com/map-my-world-service/internal/domain"
	"github.com/map-my-world-service/internal/domain/repository"
	apperrors "github.com/map-my-world-service/internal/pkg/errors"
)

type cityRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewCityRepository(db *DB) repository.CityRepository {
	return &cityRepository{
		db:     db,
		logger: db.logger,
	}
}

func (r *cityRepository) GetCityCountryIndex(ctx context.Context) (map[int64]domain.CityCountry, error) {
	query := `
		SELECT
			ci.id, ci.name, ci.slug, ci.country_id,
			ci.created_at, ci.updated_at, ci.is_deleted,
			co.id, co.name, co.slug, co.code,
			co.created_at, co.updated_at, co.is_deleted
		FROM city ci
		JOIN country co ON co.id = ci.country_id
		WHERE ci.is_deleted = FALSE AND co.is_deleted = FALSE
	`

	index := make(map[int64]domain.CityCountry)
	err := r.db.withReconnectRetry(ctx, func() error {
		rows, err := r.db.QueryContext(ctx, query)
		if err != nil {
			return err
		}
		defer rows.Close()

		clear(index)
		for rows.Next() {
			var city domain.City
			var country domain.Country

			err := rows.Scan(
				&city.ID, &city.Name, &city.Slug, &city.CountryID,
				&city.CreatedAt, &city.UpdatedAt, &city.IsDeleted,
				&country.ID, &country.Name, &country.Slug, &country.Code,
				&country.CreatedAt, &country.UpdatedAt, &country.IsDeleted,
			)
			if err != nil {
				return err
			}

			index[city.ID] = domain.CityCountry{City: city, Country: country}
		}

		return rows.Err()
	})
	if err != nil {
		r.logger.Error("Failed to build city/country index", zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}

	return index, nil
}
