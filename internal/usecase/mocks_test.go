package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/map-my-world-service/internal/domain"
)

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) GetByName(ctx context.Context, name string) (*domain.Category, error) {
	args := m.Called(ctx, name)
	var category *domain.Category
	if v := args.Get(0); v != nil {
		category = v.(*domain.Category)
	}
	return category, args.Error(1)
}

func (m *MockCategoryRepository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Category, error) {
	args := m.Called(ctx, ids)
	var categories []*domain.Category
	if v := args.Get(0); v != nil {
		categories = v.([]*domain.Category)
	}
	return categories, args.Error(1)
}

func (m *MockCategoryRepository) Create(ctx context.Context, name, slug string, description *string) (*domain.Category, error) {
	args := m.Called(ctx, name, slug, description)
	var category *domain.Category
	if v := args.Get(0); v != nil {
		category = v.(*domain.Category)
	}
	return category, args.Error(1)
}

type MockCityRepository struct {
	mock.Mock
}

func (m *MockCityRepository) GetCityCountryIndex(ctx context.Context) (map[int64]domain.CityCountry, error) {
	args := m.Called(ctx)
	var index map[int64]domain.CityCountry
	if v := args.Get(0); v != nil {
		index = v.(map[int64]domain.CityCountry)
	}
	return index, args.Error(1)
}

type MockLocationRepository struct {
	mock.Mock
}

func (m *MockLocationRepository) FindByCoordinates(ctx context.Context, countryID, cityID int64, latitude, longitude float64) (*domain.Location, error) {
	args := m.Called(ctx, countryID, cityID, latitude, longitude)
	var loc *domain.Location
	if v := args.Get(0); v != nil {
		loc = v.(*domain.Location)
	}
	return loc, args.Error(1)
}

func (m *MockLocationRepository) CreateWithCategories(ctx context.Context, loc *domain.Location, categoryIDs []int64) (*domain.Location, error) {
	args := m.Called(ctx, loc, categoryIDs)
	var created *domain.Location
	if v := args.Get(0); v != nil {
		created = v.(*domain.Location)
	}
	return created, args.Error(1)
}

func (m *MockLocationRepository) GetDetail(ctx context.Context, locationID, categoryID int64) (*domain.RankedLocation, error) {
	args := m.Called(ctx, locationID, categoryID)
	var detail *domain.RankedLocation
	if v := args.Get(0); v != nil {
		detail = v.(*domain.RankedLocation)
	}
	return detail, args.Error(1)
}

func (m *MockLocationRepository) Recommend(ctx context.Context, categoryID int64, since, until time.Time, limit, offset int) ([]*domain.RankedLocation, error) {
	args := m.Called(ctx, categoryID, since, until, limit, offset)
	var locations []*domain.RankedLocation
	if v := args.Get(0); v != nil {
		locations = v.([]*domain.RankedLocation)
	}
	return locations, args.Error(1)
}

type MockLocationCategoryRepository struct {
	mock.Mock
}

func (m *MockLocationCategoryRepository) GetCategoryIndex(ctx context.Context) (map[int64][]domain.Category, error) {
	args := m.Called(ctx)
	var index map[int64][]domain.Category
	if v := args.Get(0); v != nil {
		index = v.(map[int64][]domain.Category)
	}
	return index, args.Error(1)
}

func (m *MockLocationCategoryRepository) IncrementTotalReviews(ctx context.Context, locationID, categoryID int64) (bool, error) {
	args := m.Called(ctx, locationID, categoryID)
	return args.Bool(0), args.Error(1)
}

type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	var value []byte
	if v := args.Get(0); v != nil {
		value = v.([]byte)
	}
	return value, args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
