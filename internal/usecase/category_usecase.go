package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/map-my-world-service/internal/domain/repository"
	apperrors "github.com/map-my-world-service/internal/pkg/errors"
	"github.com/map-my-world-service/internal/pkg/utils"
	"github.com/map-my-world-service/internal/pkg/validator"
	"github.com/map-my-world-service/internal/usecase/dto"
)

type CategoryUseCase struct {
	categoryRepo repository.CategoryRepository
	logger       *zap.Logger
}

func NewCategoryUseCase(
	categoryRepo repository.CategoryRepository,
	logger *zap.Logger,
) *CategoryUseCase {
	return &CategoryUseCase{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// AddCategory is idempotent by name: when a non-deleted category with the
// same trimmed name exists it is returned unchanged, and no new row is
// created. The slug is derived from the name only at creation time.
func (uc *CategoryUseCase) AddCategory(
	ctx context.Context,
	input dto.CategoryAddInput,
) (*dto.CategoryType, error) {
	input.Normalize()

	if err := validator.Validate(&input); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	existing, err := uc.categoryRepo.GetByName(ctx, input.Name)
	if err != nil {
		uc.logger.Error("Failed to look up category", zap.String("name", input.Name), zap.Error(err))
		return nil, err
	}
	if existing != nil {
		result := dto.NewCategoryType(existing)
		return &result, nil
	}

	created, err := uc.categoryRepo.Create(ctx, input.Name, utils.Slugify(input.Name), input.Description)
	if err != nil {
		uc.logger.Error("Failed to create category", zap.String("name", input.Name), zap.Error(err))
		return nil, err
	}

	uc.logger.Info("Category created",
		zap.Int64("id", created.ID),
		zap.String("slug", created.Slug),
	)

	result := dto.NewCategoryType(created)
	return &result, nil
}
