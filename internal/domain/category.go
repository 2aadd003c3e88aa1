package domain

import "database/sql"

// Category slug uniquely identifies a category; it is derived from the
// name once, at creation time.
type Category struct {
	ID          int64          `db:"id" json:"id"`
	Name        string         `db:"name" json:"name"`
	Slug        string         `db:"slug" json:"slug"`
	Description sql.NullString `db:"description" json:"description"`
	Auditable
}
