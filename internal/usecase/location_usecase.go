package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/map-my-world-service/internal/domain"
	"github.com/map-my-world-service/internal/domain/repository"
	apperrors "github.com/map-my-world-service/internal/pkg/errors"
	"github.com/map-my-world-service/internal/pkg/validator"
	"github.com/map-my-world-service/internal/usecase/dto"
)

const (
	// recommendWindow is the trailing interval a location_category row's
	// updated_at must fall inside to count as recent engagement.
	recommendWindow = 30 * 24 * time.Hour

	// DefaultRecommendLimit and DefaultRecommendOffset apply when the
	// client sends no pagination.
	DefaultRecommendLimit  = 10
	DefaultRecommendOffset = 0
)

type LocationUseCase struct {
	locationRepo         repository.LocationRepository
	categoryRepo         repository.CategoryRepository
	cityRepo             repository.CityRepository
	locationCategoryRepo repository.LocationCategoryRepository
	cacheRepo            repository.CacheRepository
	logger               *zap.Logger
	siteURL              string
	recommendCacheTTL    time.Duration
}

func NewLocationUseCase(
	locationRepo repository.LocationRepository,
	categoryRepo repository.CategoryRepository,
	cityRepo repository.CityRepository,
	locationCategoryRepo repository.LocationCategoryRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	siteURL string,
	recommendCacheTTL time.Duration,
) *LocationUseCase {
	return &LocationUseCase{
		locationRepo:         locationRepo,
		categoryRepo:         categoryRepo,
		cityRepo:             cityRepo,
		locationCategoryRepo: locationCategoryRepo,
		cacheRepo:            cacheRepo,
		logger:               logger,
		siteURL:              siteURL,
		recommendCacheTTL:    recommendCacheTTL,
	}
}

// AddLocation runs the creation workflow: resolve categories, reject
// duplicate coordinates, then insert the location and its associations in
// one transaction.
func (uc *LocationUseCase) AddLocation(
	ctx context.Context,
	input dto.LocationAddInput,
) (*dto.LocationType, error) {
	input.Normalize()

	if err := validator.Validate(&input); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	categories, err := uc.categoryRepo.GetByIDs(ctx, input.CategoryIDList)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, apperrors.CategoriesNotFound(input.CategoryIDList)
	}

	loc := input.Location
	existing, err := uc.locationRepo.FindByCoordinates(
		ctx, loc.CountryID, loc.CityID, loc.Latitude, loc.Longitude,
	)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		// The address plays no part here: identical coordinates are
		// rejected even when the free text differs.
		return nil, apperrors.DuplicateLocation(existing.ID, existing.Address)
	}

	categoryIDs := make([]int64, 0, len(categories))
	for _, c := range categories {
		categoryIDs = append(categoryIDs, c.ID)
	}

	created, err := uc.locationRepo.CreateWithCategories(ctx, &domain.Location{
		CountryID: loc.CountryID,
		CityID:    loc.CityID,
		Address:   loc.Address,
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
	}, categoryIDs)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Location created",
		zap.Int64("id", created.ID),
		zap.Int64s("category_ids", categoryIDs),
	)

	resolved := make([]domain.Category, 0, len(categories))
	for _, c := range categories {
		resolved = append(resolved, *c)
	}

	ranked := domain.RankedLocation{Location: *created, TotalReviews: 0}
	result := dto.NewLocationType(&ranked, input.CategoryIDList[0], nil, resolved, uc.siteURL)
	return &result, nil
}

// Recommend returns locations with recent engagement for the category,
// least-reviewed-first, decorated via the in-memory lookup indexes.
func (uc *LocationUseCase) Recommend(
	ctx context.Context,
	categoryID int64,
	limit, offset int,
) (*dto.LocationListPayload, error) {
	if limit <= 0 {
		limit = DefaultRecommendLimit
	}
	if offset < 0 {
		offset = DefaultRecommendOffset
	}

	cacheKey := fmt.Sprintf("recommend:%d:%d:%d", categoryID, limit, offset)
	if cached := uc.cachedRecommendation(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	until := time.Now().UTC()
	since := until.Add(-recommendWindow)

	locations, err := uc.locationRepo.Recommend(ctx, categoryID, since, until, limit, offset)
	if err != nil {
		return nil, err
	}
	if len(locations) == 0 {
		payload := dto.EmptyLocationList()
		return &payload, nil
	}

	items, err := uc.decorate(ctx, locations, categoryID)
	if err != nil {
		return nil, err
	}

	payload := &dto.LocationListPayload{
		Metadata: dto.LocationMetadata{TotalCount: len(items)},
		Items:    items,
	}

	uc.storeRecommendation(ctx, cacheKey, payload)
	return payload, nil
}

// Detail fetches the decorated location for a (location, category) pair.
// Returns ErrNotFound when the pair does not exist among non-deleted rows.
func (uc *LocationUseCase) Detail(
	ctx context.Context,
	locationID, categoryID int64,
) (*dto.LocationType, error) {
	detail, err := uc.locationRepo.GetDetail(ctx, locationID, categoryID)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, apperrors.ErrNotFound
	}

	items, err := uc.decorate(ctx, []*domain.RankedLocation{detail}, categoryID)
	if err != nil {
		return nil, err
	}

	return &items[0], nil
}

// decorate builds the indexes once per call, not per row, then maps each
// location to its view model.
func (uc *LocationUseCase) decorate(
	ctx context.Context,
	locations []*domain.RankedLocation,
	categoryID int64,
) ([]dto.LocationType, error) {
	categoryIndex, err := uc.locationCategoryRepo.GetCategoryIndex(ctx)
	if err != nil {
		return nil, err
	}

	cityIndex, err := uc.cityRepo.GetCityCountryIndex(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]dto.LocationType, 0, len(locations))
	for _, loc := range locations {
		var city *dto.CityType
		if pair, ok := cityIndex[loc.CityID]; ok {
			city = dto.NewCityType(pair)
		}

		items = append(items, dto.NewLocationType(
			loc, categoryID, city, categoryIndex[loc.ID], uc.siteURL,
		))
	}

	return items, nil
}

// cachedRecommendation is best-effort: any cache failure reads as a miss.
func (uc *LocationUseCase) cachedRecommendation(ctx context.Context, key string) *dto.LocationListPayload {
	if uc.recommendCacheTTL <= 0 || uc.cacheRepo == nil {
		return nil
	}

	raw, err := uc.cacheRepo.Get(ctx, key)
	if err != nil || raw == nil {
		return nil
	}

	var payload dto.LocationListPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		uc.logger.Warn("Failed to decode cached recommendation", zap.String("key", key), zap.Error(err))
		return nil
	}

	return &payload
}

func (uc *LocationUseCase) storeRecommendation(ctx context.Context, key string, payload *dto.LocationListPayload) {
	if uc.recommendCacheTTL <= 0 || uc.cacheRepo == nil {
		return
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return
	}

	if err := uc.cacheRepo.Set(ctx, key, raw, uc.recommendCacheTTL); err != nil {
		uc.logger.Warn("Failed to cache recommendation", zap.String("key", key), zap.Error(err))
	}
}
