package dto

import (
	"net/http"

	apperrors "github.com/map-my-world-service/internal/pkg/errors"
)

// Response is the envelope every create endpoint carries next to its
// entity: {status_code, type, message}.
type Response struct {
	StatusCode int    `json:"status_code"`
	Type       string `json:"type"`
	Message    string `json:"message"`
}

func SuccessResponse() Response {
	return Response{
		StatusCode: http.StatusCreated,
		Type:       "Success",
		Message:    "",
	}
}

func ErrorResponse(err *apperrors.AppError) Response {
	return Response{
		StatusCode: err.StatusCode,
		Type:       err.Type,
		Message:    err.Message,
	}
}
