package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/map-my-world-service/internal/pkg/errors"
)

// Translate maps any error coming out of a usecase onto the wire error
// shape. Unknown errors degrade to a 500 with the message withheld.
func Translate(err error) *apperrors.AppError {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return apperrors.ErrInternalServer
}

// SendNotFound responds 404 with an empty JSON body.
func SendNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{})
}
