package domain

type City struct {
	ID        int64  `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	Slug      string `db:"slug" json:"slug"`
	CountryID int64  `db:"country_id" json:"country_id"`
	Auditable
}

// CityCountry is the resolved (city, country) pair used when decorating
// location payloads.
type CityCountry struct {
	City    City
	Country Country
}
