package domain

// Country code is always stored upper-case ("co" -> "CO").
type Country struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
	Slug string `db:"slug" json:"slug"`
	Code string `db:"code" json:"code"`
	Auditable
}
