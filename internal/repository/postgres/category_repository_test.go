package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/map-my-world-service/internal/domain/repository"
	"github.com/map-my-world-service/internal/repository/postgres/testhelpers"
)

// CategoryRepositorySuite tests the category repository with a real database
type CategoryRepositorySuite struct {
	suite.Suite
	testDB *testhelpers.TestDB
	repo   repository.CategoryRepository
	ctx    context.Context
}

func (s *CategoryRepositorySuite) SetupSuite() {
	s.testDB = testhelpers.SetupTestDB(s.T())

	err := testhelpers.ApplyMigrations(s.testDB.DB.DB, "../../../migrations")
	s.Require().NoError(err, "Failed to apply migrations")

	s.repo = testhelpers.NewCategoryRepositoryForTest(s.testDB.DB, s.testDB.Logger)
}

func (s *CategoryRepositorySuite) TearDownSuite() {
	if s.testDB != nil {
		s.testDB.Close()
	}
}

func (s *CategoryRepositorySuite) SetupTest() {
	s.ctx = context.Background()
	s.Require().NoError(s.testDB.Cleanup(s.ctx))
}

func (s *CategoryRepositorySuite) TestCreate_ReturnsGeneratedRow() {
	desc := "Places that serve coffee"
	category, err := s.repo.Create(s.ctx, "Coffee Shop", "coffee-shop", &desc)
	s.NoError(err)
	s.NotNil(category)
	s.NotZero(category.ID)
	s.Equal("Coffee Shop", category.Name)
	s.Equal("coffee-shop", category.Slug)
	s.True(category.Description.Valid)
	s.Equal(desc, category.Description.String)
	s.False(category.CreatedAt.IsZero())
}

func (s *CategoryRepositorySuite) TestCreate_NilDescription() {
	category, err := s.repo.Create(s.ctx, "Museum", "museum", nil)
	s.NoError(err)
	s.NotNil(category)
	s.False(category.Description.Valid)
}

func (s *CategoryRepositorySuite) TestGetByName_Found() {
	_, err := s.repo.Create(s.ctx, "Coffee Shop", "coffee-shop", nil)
	s.Require().NoError(err)

	category, err := s.repo.GetByName(s.ctx, "Coffee Shop")
	s.NoError(err)
	s.NotNil(category)
	s.Equal("coffee-shop", category.Slug)
}

func (s *CategoryRepositorySuite) TestGetByName_Missing() {
	category, err := s.repo.GetByName(s.ctx, "No Such Category")
	s.NoError(err)
	s.Nil(category)
}

func (s *CategoryRepositorySuite) TestGetByIDs_FiltersUnknownIDs() {
	first, err := s.repo.Create(s.ctx, "Coffee Shop", "coffee-shop", nil)
	s.Require().NoError(err)
	second, err := s.repo.Create(s.ctx, "Museum", "museum", nil)
	s.Require().NoError(err)

	categories, err := s.repo.GetByIDs(s.ctx, []int64{first.ID, second.ID, 99999})
	s.NoError(err)
	s.Len(categories, 2)
}

func (s *CategoryRepositorySuite) TestGetByIDs_Empty() {
	categories, err := s.repo.GetByIDs(s.ctx, []int64{99999})
	s.NoError(err)
	s.Empty(categories)
}

func TestCategoryRepositorySuite(t *testing.T) {
	suite.Run(t, new(CategoryRepositorySuite))
}
