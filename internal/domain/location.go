package domain

// Location is a geographic point inside a city. The tuple
// (country_id, city_id, latitude, longitude) is unique among non-deleted
// rows; the free-text address takes no part in that constraint.
type Location struct {
	ID        int64   `db:"id" json:"id"`
	CountryID int64   `db:"country_id" json:"country_id"`
	CityID    int64   `db:"city_id" json:"city_id"`
	Address   string  `db:"address" json:"address"`
	Latitude  float64 `db:"latitude" json:"latitude"`
	Longitude float64 `db:"longitude" json:"longitude"`
	Auditable
}

// RankedLocation is a location annotated with the review counter of the
// join row it was selected through.
type RankedLocation struct {
	Location
	TotalReviews int64 `db:"total_reviews" json:"total_reviews"`
}
