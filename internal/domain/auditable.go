package domain

import "time"

// Auditable carries the audit columns every table shares. Rows are never
// physically removed on the normal application paths; deletion flips
// IsDeleted and every query must filter on it.
type Auditable struct {
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
	IsDeleted bool      `db:"is_deleted" json:"is_deleted"`
}
