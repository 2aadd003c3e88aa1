package errors

import "net/http"

var (
	// ErrNotFound maps to a 404 with an empty JSON body.
	ErrNotFound = New(
		http.StatusNotFound,
		TypeValidation,
		"Not found",
	)

	// ErrInternalServer withholds detail from the client; the cause is
	// logged server-side only.
	ErrInternalServer = New(
		http.StatusInternalServerError,
		TypeInternal,
		"",
	)

	ErrDatabaseError = New(
		http.StatusInternalServerError,
		TypeInternal,
		"",
	)
)

// CategoriesNotFound is raised before any row is touched when none of the
// requested category ids resolve.
func CategoriesNotFound(categoryIDs []int64) *AppError {
	return Validationf("Categories with ID's %v, not found.", categoryIDs)
}

// DuplicateLocation rejects a second location at identical coordinates
// within the same city and country.
func DuplicateLocation(locationID int64, address string) *AppError {
	return Validationf("This location [%d] %s alredy registered", locationID, address)
}
