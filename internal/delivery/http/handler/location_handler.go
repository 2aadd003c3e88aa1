package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	apperrors "github.com/map-my-world-service/internal/pkg/errors"
	"github.com/map-my-world-service/internal/pkg/utils"
	"github.com/map-my-world-service/internal/usecase"
	"github.com/map-my-world-service/internal/usecase/dto"
	"github.com/map-my-world-service/internal/worker/views"
)

type LocationHandler struct {
	locationUC *usecase.LocationUseCase
	viewWorker *views.Worker
	logger     *zap.Logger
}

func NewLocationHandler(
	locationUC *usecase.LocationUseCase,
	viewWorker *views.Worker,
	logger *zap.Logger,
) *LocationHandler {
	return &LocationHandler{
		locationUC: locationUC,
		viewWorker: viewWorker,
		logger:     logger,
	}
}

// AddLocation registers a location tagged with one or more categories.
// @Summary Add location
// @Tags locations
// @Accept json
// @Produce json
// @Param input body dto.LocationAddInput true "Location and its categories"
// @Success 201 {object} dto.CreateLocationPayload
// @Failure 400 {object} dto.CreateLocationPayload
// @Failure 500 {object} dto.CreateLocationPayload
// @Router /api/rest/add-locations [post]
func (h *LocationHandler) AddLocation(c *fiber.Ctx) error {
	var input dto.LocationAddInput
	if err := c.BodyParser(&input); err != nil {
		appErr := apperrors.Validation("Invalid request body")
		return c.Status(appErr.StatusCode).JSON(dto.EmptyLocationPayload(dto.ErrorResponse(appErr)))
	}

	location, err := h.locationUC.AddLocation(c.Context(), input)
	if err != nil {
		appErr := utils.Translate(err)
		h.logger.Warn("Add location failed",
			zap.String("type", appErr.Type),
			zap.String("message", appErr.Message),
		)
		return c.Status(appErr.StatusCode).JSON(dto.EmptyLocationPayload(dto.ErrorResponse(appErr)))
	}

	return c.Status(fiber.StatusCreated).JSON(dto.CreateLocationPayload{
		Location: location,
		Response: dto.SuccessResponse(),
	})
}

// RecommendLocations lists locations with recent review activity for a
// category, least-reviewed-first.
// @Summary Recommend locations
// @Tags locations
// @Produce json
// @Param category_id query int true "Category id"
// @Param limit query int false "Page size (default 10)"
// @Param offset query int false "Page offset (default 0)"
// @Success 200 {object} dto.LocationListPayload
// @Router /api/rest/recommend-locations [get]
func (h *LocationHandler) RecommendLocations(c *fiber.Ctx) error {
	categoryID := c.QueryInt("category_id")
	if categoryID <= 0 {
		appErr := apperrors.Validation("category_id must be a positive integer")
		return c.Status(appErr.StatusCode).JSON(dto.ErrorResponse(appErr))
	}

	limit := c.QueryInt("limit", usecase.DefaultRecommendLimit)
	offset := c.QueryInt("offset", usecase.DefaultRecommendOffset)

	payload, err := h.locationUC.Recommend(c.Context(), int64(categoryID), limit, offset)
	if err != nil {
		appErr := utils.Translate(err)
		return c.Status(appErr.StatusCode).JSON(dto.ErrorResponse(appErr))
	}

	return c.JSON(payload)
}

// LocationDetail returns the decorated location for a (location,
// category) pair and schedules the detached view-counter increment after
// the response body is produced.
// @Summary Location detail
// @Tags locations
// @Produce json
// @Param location_id path int true "Location id"
// @Param category_id path int true "Category id"
// @Success 200 {object} dto.LocationType
// @Failure 404 {object} map[string]interface{}
// @Router /api/rest/location-{location_id}/category-{category_id} [get]
func (h *LocationHandler) LocationDetail(c *fiber.Ctx) error {
	locationID, err := c.ParamsInt("location_id")
	if err != nil || locationID <= 0 {
		return utils.SendNotFound(c)
	}

	categoryID, err := c.ParamsInt("category_id")
	if err != nil || categoryID <= 0 {
		return utils.SendNotFound(c)
	}

	location, err := h.locationUC.Detail(c.Context(), int64(locationID), int64(categoryID))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return utils.SendNotFound(c)
		}
		appErr := utils.Translate(err)
		return c.Status(appErr.StatusCode).JSON(dto.ErrorResponse(appErr))
	}

	if err := c.JSON(location); err != nil {
		return err
	}

	// Response is built; the increment runs detached and its outcome is
	// never observed by this request.
	h.viewWorker.Enqueue(int64(locationID), int64(categoryID))

	return nil
}
