// Package docs Map My World API.
//
// Directory service for geographic locations tagged with categories.
// Clients register categories and locations, fetch decorated location
// details and request recommendations ranked by recent review activity.
//
//	Schemes: http, https
//	BasePath: /api/rest
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package docs
