package dto

import (
	"fmt"
	"strings"

	"github.com/map-my-world-service/internal/domain"
)

// CreateLocationInput carries the location part of an add-locations body.
type CreateLocationInput struct {
	CountryID int64   `json:"country_id" validate:"required,gt=0"`
	CityID    int64   `json:"city_id" validate:"required,gt=0"`
	Address   string  `json:"address" validate:"required,max=500"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// LocationAddInput is the body of POST /api/rest/add-locations.
type LocationAddInput struct {
	CategoryIDList []int64             `json:"category_id_list" validate:"required,min=1,dive,gt=0"`
	Location       CreateLocationInput `json:"location"`
}

// Normalize trims the free-text address before the length limit applies.
func (in *LocationAddInput) Normalize() {
	in.Location.Address = strings.TrimSpace(in.Location.Address)
}

type CountryType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

type CityType struct {
	ID      int64       `json:"id"`
	Name    string      `json:"name"`
	Country CountryType `json:"country"`
}

func NewCityType(pair domain.CityCountry) *CityType {
	return &CityType{
		ID:   pair.City.ID,
		Name: pair.City.Name,
		Country: CountryType{
			ID:   pair.Country.ID,
			Name: pair.Country.Name,
			Code: pair.Country.Code,
		},
	}
}

// LocationType is the client-facing view of a location, decorated with
// its full category set, city/country nesting and a computed detail URL.
type LocationType struct {
	ID            int64          `json:"id"`
	Address       string         `json:"address"`
	Latitude      float64        `json:"latitude"`
	Longitude     float64        `json:"longitude"`
	CategoriesSet []CategoryType `json:"categories_set"`
	City          *CityType      `json:"city"`
	TotalReviews  int64          `json:"total_reviews"`
	URLDetail     string         `json:"url_detail"`
}

// NewLocationType assembles the view model. categoryID selects which
// detail URL is advertised; categories is the location's full category
// set regardless of that filter.
func NewLocationType(
	loc *domain.RankedLocation,
	categoryID int64,
	city *CityType,
	categories []domain.Category,
	siteURL string,
) LocationType {
	return LocationType{
		ID:            loc.ID,
		Address:       loc.Address,
		Latitude:      loc.Latitude,
		Longitude:     loc.Longitude,
		CategoriesSet: NewCategoryTypeList(categories),
		City:          city,
		TotalReviews:  loc.TotalReviews,
		URLDetail:     DetailURL(siteURL, loc.ID, categoryID),
	}
}

// DetailURL computes {site_url}/api/rest/location-{id}/category-{catId}.
func DetailURL(siteURL string, locationID, categoryID int64) string {
	return fmt.Sprintf("%s/api/rest/location-%d/category-%d", siteURL, locationID, categoryID)
}

type LocationMetadata struct {
	TotalCount int `json:"total_count"`
}

type LocationListPayload struct {
	Metadata LocationMetadata `json:"metadata"`
	Items    []LocationType   `json:"items"`
}

// EmptyLocationList is the 200 body when nothing matches.
func EmptyLocationList() LocationListPayload {
	return LocationListPayload{
		Metadata: LocationMetadata{TotalCount: 0},
		Items:    []LocationType{},
	}
}

type CreateLocationPayload struct {
	Location *LocationType `json:"location"`
	Response Response      `json:"response"`
}

// EmptyLocationPayload is the error-state body: null location plus the
// error envelope.
func EmptyLocationPayload(resp Response) CreateLocationPayload {
	return CreateLocationPayload{Location: nil, Response: resp}
}
