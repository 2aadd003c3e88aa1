package repository

import (
	"context"

	"github.com/map-my-world-service/internal/domain"
)

// CityRepository reads the city/country reference tables.
type CityRepository interface {
	// GetCityCountryIndex scans all non-deleted cities once and returns
	// city_id -> (city, country). Empty map when no rows exist. Intended
	// for small-to-moderate table sizes; there is no pagination.
	GetCityCountryIndex(ctx context.Context) (map[int64]domain.CityCountry, error)
}
