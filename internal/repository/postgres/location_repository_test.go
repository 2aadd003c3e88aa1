package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/map-my-world-service/internal/domain"
	"github.com/map-my-world-service/internal/domain/repository"
	"github.com/map-my-world-service/internal/repository/postgres/testhelpers"
)

// LocationRepositorySuite tests the location repository with a real database
type LocationRepositorySuite struct {
	suite.Suite
	testDB *testhelpers.TestDB
	repo   repository.LocationRepository
	ctx    context.Context

	countryID  int64
	cityID     int64
	categoryID int64
}

func (s *LocationRepositorySuite) SetupSuite() {
	s.testDB = testhelpers.SetupTestDB(s.T())

	err := testhelpers.ApplyMigrations(s.testDB.DB.DB, "../../../migrations")
	s.Require().NoError(err, "Failed to apply migrations")

	s.repo = testhelpers.NewLocationRepositoryForTest(s.testDB.DB, s.testDB.Logger)
}

func (s *LocationRepositorySuite) TearDownSuite() {
	if s.testDB != nil {
		s.testDB.Close()
	}
}

func (s *LocationRepositorySuite) SetupTest() {
	s.ctx = context.Background()
	s.Require().NoError(s.testDB.Cleanup(s.ctx))

	db := s.testDB.DB.DB

	var err error
	s.countryID, err = testhelpers.InsertCountry(db, "Colombia", "colombia", "CO")
	s.Require().NoError(err)
	s.cityID, err = testhelpers.InsertCity(db, "Medellín", "medellin", s.countryID)
	s.Require().NoError(err)
	s.categoryID, err = testhelpers.InsertCategory(db, "Coffee Shop", "coffee-shop")
	s.Require().NoError(err)
}

func (s *LocationRepositorySuite) newLocation(address string, lat, lon float64) *domain.Location {
	return &domain.Location{
		CountryID: s.countryID,
		CityID:    s.cityID,
		Address:   address,
		Latitude:  lat,
		Longitude: lon,
	}
}

// ============================================================================
// CreateWithCategories
// ============================================================================

func (s *LocationRepositorySuite) TestCreateWithCategories_CreatesJoinRows() {
	secondCategory, err := testhelpers.InsertCategory(s.testDB.DB.DB, "Museum", "museum")
	s.Require().NoError(err)

	created, err := s.repo.CreateWithCategories(s.ctx,
		s.newLocation("Calle 10 # 43E-31", 6.2091925, -75.5704426),
		[]int64{s.categoryID, secondCategory},
	)
	s.NoError(err)
	s.NotNil(created)
	s.NotZero(created.ID)
	s.Equal(6.2091925, created.Latitude)
	s.Equal(-75.5704426, created.Longitude)

	var joinCount int
	err = s.testDB.DB.Get(&joinCount,
		"SELECT count(*) FROM location_category WHERE location_id = $1", created.ID)
	s.NoError(err)
	s.Equal(2, joinCount)

	var reviews int
	err = s.testDB.DB.Get(&reviews,
		"SELECT coalesce(sum(total_reviews), 0) FROM location_category WHERE location_id = $1",
		created.ID)
	s.NoError(err)
	s.Equal(0, reviews)
}

func (s *LocationRepositorySuite) TestCreateWithCategories_RollsBackOnBadCategory() {
	_, err := s.repo.CreateWithCategories(s.ctx,
		s.newLocation("Calle 10 # 43E-31", 6.2091925, -75.5704426),
		[]int64{s.categoryID, 99999},
	)
	s.Error(err)

	// The location insert must not survive the failed association insert.
	var locationCount int
	err = s.testDB.DB.Get(&locationCount, "SELECT count(*) FROM location")
	s.NoError(err)
	s.Equal(0, locationCount)
}

// ============================================================================
// FindByCoordinates
// ============================================================================

func (s *LocationRepositorySuite) TestFindByCoordinates_MatchesOnCoordinatesOnly() {
	created, err := s.repo.CreateWithCategories(s.ctx,
		s.newLocation("Calle 10 # 43E-31", 6.2091925, -75.5704426),
		[]int64{s.categoryID},
	)
	s.Require().NoError(err)

	// Same point is found regardless of the address stored with it.
	found, err := s.repo.FindByCoordinates(s.ctx, s.countryID, s.cityID, 6.2091925, -75.5704426)
	s.NoError(err)
	s.NotNil(found)
	s.Equal(created.ID, found.ID)
	s.Equal("Calle 10 # 43E-31", found.Address)
}

func (s *LocationRepositorySuite) TestFindByCoordinates_DifferentPoint() {
	_, err := s.repo.CreateWithCategories(s.ctx,
		s.newLocation("Calle 10 # 43E-31", 6.2091925, -75.5704426),
		[]int64{s.categoryID},
	)
	s.Require().NoError(err)

	found, err := s.repo.FindByCoordinates(s.ctx, s.countryID, s.cityID, 6.2091926, -75.5704426)
	s.NoError(err)
	s.Nil(found)
}

// ============================================================================
// GetDetail
// ============================================================================

func (s *LocationRepositorySuite) TestGetDetail_ReturnsJoinReviewCount() {
	created, err := s.repo.CreateWithCategories(s.ctx,
		s.newLocation("Calle 10 # 43E-31", 6.2091925, -75.5704426),
		[]int64{s.categoryID},
	)
	s.Require().NoError(err)

	_, err = s.testDB.DB.Exec(
		"UPDATE location_category SET total_reviews = 7 WHERE location_id = $1", created.ID)
	s.Require().NoError(err)

	detail, err := s.repo.GetDetail(s.ctx, created.ID, s.categoryID)
	s.NoError(err)
	s.NotNil(detail)
	s.Equal(created.ID, detail.ID)
	s.Equal(int64(7), detail.TotalReviews)
}

func (s *LocationRepositorySuite) TestGetDetail_MissingPair() {
	created, err := s.repo.CreateWithCategories(s.ctx,
		s.newLocation("Calle 10 # 43E-31", 6.2091925, -75.5704426),
		[]int64{s.categoryID},
	)
	s.Require().NoError(err)

	otherCategory, err := testhelpers.InsertCategory(s.testDB.DB.DB, "Museum", "museum")
	s.Require().NoError(err)

	detail, err := s.repo.GetDetail(s.ctx, created.ID, otherCategory)
	s.NoError(err)
	s.Nil(detail)
}

func (s *LocationRepositorySuite) TestGetDetail_IgnoresDeletedJoinRow() {
	created, err := s.repo.CreateWithCategories(s.ctx,
		s.newLocation("Calle 10 # 43E-31", 6.2091925, -75.5704426),
		[]int64{s.categoryID},
	)
	s.Require().NoError(err)

	_, err = s.testDB.DB.Exec(
		"UPDATE location_category SET is_deleted = TRUE WHERE location_id = $1", created.ID)
	s.Require().NoError(err)

	detail, err := s.repo.GetDetail(s.ctx, created.ID, s.categoryID)
	s.NoError(err)
	s.Nil(detail)
}

// ============================================================================
// Recommend
// ============================================================================

func (s *LocationRepositorySuite) seedRecommendRow(address string, lat float64, reviews int, updatedAt time.Time) int64 {
	db := s.testDB.DB.DB
	locationID, err := testhelpers.InsertLocation(db, s.countryID, s.cityID, address, lat, -75.5704426)
	s.Require().NoError(err)
	_, err = testhelpers.InsertLocationCategory(db, locationID, s.categoryID, reviews, updatedAt)
	s.Require().NoError(err)
	return locationID
}

func (s *LocationRepositorySuite) TestRecommend_AscendingReviewsWithinWindow() {
	now := time.Now().UTC()

	busy := s.seedRecommendRow("busy place", 6.1, 50, now.Add(-time.Hour))
	quiet := s.seedRecommendRow("quiet place", 6.2, 2, now.Add(-48*time.Hour))
	s.seedRecommendRow("stale place", 6.3, 1, now.Add(-40*24*time.Hour))

	results, err := s.repo.Recommend(s.ctx, s.categoryID,
		now.Add(-30*24*time.Hour), now, 10, 0)
	s.NoError(err)
	s.Len(results, 2)

	// Least-reviewed first; the stale row falls outside the window.
	s.Equal(quiet, results[0].ID)
	s.Equal(int64(2), results[0].TotalReviews)
	s.Equal(busy, results[1].ID)
	s.Equal(int64(50), results[1].TotalReviews)
}

func (s *LocationRepositorySuite) TestRecommend_LimitAndOffset() {
	now := time.Now().UTC()

	s.seedRecommendRow("first", 6.1, 1, now.Add(-time.Hour))
	second := s.seedRecommendRow("second", 6.2, 2, now.Add(-time.Hour))
	s.seedRecommendRow("third", 6.3, 3, now.Add(-time.Hour))

	results, err := s.repo.Recommend(s.ctx, s.categoryID,
		now.Add(-30*24*time.Hour), now, 1, 1)
	s.NoError(err)
	s.Len(results, 1)
	s.Equal(second, results[0].ID)
}

func (s *LocationRepositorySuite) TestRecommend_OtherCategoryExcluded() {
	now := time.Now().UTC()
	s.seedRecommendRow("coffee place", 6.1, 1, now.Add(-time.Hour))

	otherCategory, err := testhelpers.InsertCategory(s.testDB.DB.DB, "Museum", "museum")
	s.Require().NoError(err)

	results, err := s.repo.Recommend(s.ctx, otherCategory,
		now.Add(-30*24*time.Hour), now, 10, 0)
	s.NoError(err)
	s.Empty(results)
}

func TestLocationRepositorySuite(t *testing.T) {
	suite.Run(t, new(LocationRepositorySuite))
}
