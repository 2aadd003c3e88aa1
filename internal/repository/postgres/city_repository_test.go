package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/map-my-world-service/internal/domain/repository"
	"github.com/map-my-world-service/internal/repository/postgres/testhelpers"
)

// CityRepositorySuite tests the city/country index with a real database
type CityRepositorySuite struct {
	suite.Suite
	testDB *testhelpers.TestDB
	repo   repository.CityRepository
	ctx    context.Context
}

func (s *CityRepositorySuite) SetupSuite() {
	s.testDB = testhelpers.SetupTestDB(s.T())

	err := testhelpers.ApplyMigrations(s.testDB.DB.DB, "../../../migrations")
	s.Require().NoError(err, "Failed to apply migrations")

	s.repo = testhelpers.NewCityRepositoryForTest(s.testDB.DB, s.testDB.Logger)
}

func (s *CityRepositorySuite) TearDownSuite() {
	if s.testDB != nil {
		s.testDB.Close()
	}
}

func (s *CityRepositorySuite) SetupTest() {
	s.ctx = context.Background()
	s.Require().NoError(s.testDB.Cleanup(s.ctx))
}

func (s *CityRepositorySuite) TestGetCityCountryIndex_ResolvesCountry() {
	db := s.testDB.DB.DB
	countryID, err := testhelpers.InsertCountry(db, "Colombia", "colombia", "CO")
	s.Require().NoError(err)
	cityID, err := testhelpers.InsertCity(db, "Medellín", "medellin", countryID)
	s.Require().NoError(err)

	index, err := s.repo.GetCityCountryIndex(s.ctx)
	s.NoError(err)

	pair, ok := index[cityID]
	s.True(ok)
	s.Equal("Medellín", pair.City.Name)
	s.Equal(countryID, pair.City.CountryID)
	s.Equal("Colombia", pair.Country.Name)
	s.Equal("CO", pair.Country.Code)
}

func (s *CityRepositorySuite) TestGetCityCountryIndex_ExcludesDeletedCity() {
	db := s.testDB.DB.DB
	countryID, err := testhelpers.InsertCountry(db, "Colombia", "colombia", "CO")
	s.Require().NoError(err)
	cityID, err := testhelpers.InsertCity(db, "Medellín", "medellin", countryID)
	s.Require().NoError(err)

	_, err = s.testDB.DB.Exec("UPDATE city SET is_deleted = TRUE WHERE id = $1", cityID)
	s.Require().NoError(err)

	index, err := s.repo.GetCityCountryIndex(s.ctx)
	s.NoError(err)
	_, ok := index[cityID]
	s.False(ok)
}

func TestCityRepositorySuite(t *testing.T) {
	suite.Run(t, new(CityRepositorySuite))
}
