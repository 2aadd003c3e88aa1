package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	apperrors "github.com/map-my-world-service/internal/pkg/errors"
	"github.com/map-my-world-service/internal/pkg/utils"
	"github.com/map-my-world-service/internal/usecase"
	"github.com/map-my-world-service/internal/usecase/dto"
)

type CategoryHandler struct {
	categoryUC *usecase.CategoryUseCase
	logger     *zap.Logger
}

func NewCategoryHandler(categoryUC *usecase.CategoryUseCase, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryUC: categoryUC,
		logger:     logger,
	}
}

// AddCategory creates a category or returns the existing one with the
// same name.
// @Summary Add category
// @Tags categories
// @Accept json
// @Produce json
// @Param input body dto.CategoryAddInput true "Category to register"
// @Success 201 {object} dto.CreateCategoryPayload
// @Failure 400 {object} dto.CreateCategoryPayload
// @Failure 500 {object} dto.CreateCategoryPayload
// @Router /api/rest/add-categories [post]
func (h *CategoryHandler) AddCategory(c *fiber.Ctx) error {
	var input dto.CategoryAddInput
	if err := c.BodyParser(&input); err != nil {
		appErr := apperrors.Validation("Invalid request body")
		return c.Status(appErr.StatusCode).JSON(dto.EmptyCategoryPayload(dto.ErrorResponse(appErr)))
	}

	category, err := h.categoryUC.AddCategory(c.Context(), input)
	if err != nil {
		appErr := utils.Translate(err)
		h.logger.Warn("Add category failed",
			zap.String("type", appErr.Type),
			zap.String("message", appErr.Message),
		)
		return c.Status(appErr.StatusCode).JSON(dto.EmptyCategoryPayload(dto.ErrorResponse(appErr)))
	}

	return c.Status(fiber.StatusCreated).JSON(dto.CreateCategoryPayload{
		Category: category,
		Response: dto.SuccessResponse(),
	})
}
