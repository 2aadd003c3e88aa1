package testhelpers

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Seed helpers insert minimal rows and return the generated IDs.

func InsertCountry(db *sql.DB, name, slug, code string) (int64, error) {
	var id int64
	err := db.QueryRowContext(context.Background(),
		`INSERT INTO country (name, slug, code) VALUES ($1, $2, $3) RETURNING id`,
		name, slug, code).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert country %s: %w", name, err)
	}
	return id, nil
}

func InsertCity(db *sql.DB, name, slug string, countryID int64) (int64, error) {
	var id int64
	err := db.QueryRowContext(context.Background(),
		`INSERT INTO city (name, slug, country_id) VALUES ($1, $2, $3) RETURNING id`,
		name, slug, countryID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert city %s: %w", name, err)
	}
	return id, nil
}

func InsertCategory(db *sql.DB, name, slug string) (int64, error) {
	var id int64
	err := db.QueryRowContext(context.Background(),
		`INSERT INTO category (name, slug) VALUES ($1, $2) RETURNING id`,
		name, slug).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert category %s: %w", name, err)
	}
	return id, nil
}

func InsertLocation(db *sql.DB, countryID, cityID int64, address string, lat, lon float64) (int64, error) {
	var id int64
	err := db.QueryRowContext(context.Background(),
		`INSERT INTO location (country_id, city_id, address, latitude, longitude)
		 VALUES ($1, $2, $3, $4::numeric(10,7), $5::numeric(10,7)) RETURNING id`,
		countryID, cityID, address, lat, lon).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert location %s: %w", address, err)
	}
	return id, nil
}

// InsertLocationCategory creates a join row with an explicit review count
// and updated_at, so window queries can be exercised with rows both
// inside and outside the interval.
func InsertLocationCategory(db *sql.DB, locationID, categoryID int64, totalReviews int, updatedAt time.Time) (int64, error) {
	var id int64
	err := db.QueryRowContext(context.Background(),
		`INSERT INTO location_category (location_id, category_id, total_reviews, updated_at)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		locationID, categoryID, totalReviews, updatedAt).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert location_category (%d, %d): %w", locationID, categoryID, err)
	}
	return id, nil
}
