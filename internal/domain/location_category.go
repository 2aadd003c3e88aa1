package domain

// LocationCategory joins a location to a category. The (location,
// category) pair is unique. The row doubles as an engagement counter:
// total_reviews grows by one every time the location is fetched filtered
// by that category, and updated_at tracks the last such view.
type LocationCategory struct {
	ID           int64 `db:"id" json:"id"`
	LocationID   int64 `db:"location_id" json:"location_id"`
	CategoryID   int64 `db:"category_id" json:"category_id"`
	TotalReviews int64 `db:"total_reviews" json:"total_reviews"`
	Auditable
}
