//go:build integration
// +build integration

package repository

import (
	"testing"

	"congregation-manager-backend/internal/database/models"
	"congregation-manager-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ResponsibilityAssignmentRepositoryTestSuite tests the ResponsibilityAssignmentRepository
type ResponsibilityAssignmentRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ResponsibilityAssignmentRepository
	factories     *testutils.FactorySet

	schedule       *models.MeetingSchedule
	responsibility *models.Responsibility
	publisher      *models.Publisher
}

func (suite *ResponsibilityAssignmentRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewResponsibilityAssignmentRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *ResponsibilityAssignmentRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest cleans the DB and seeds one schedule, responsibility and publisher
func (suite *ResponsibilityAssignmentRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.schedule = suite.factories.MeetingSchedule.ForWeek(2025, 10, models.MeetingTypeMidweek)
	suite.responsibility = suite.factories.Responsibility.Create()
	suite.publisher = suite.factories.Publisher.Create()

	suite.NoError(suite.baseTestSuite.DB.Create(suite.schedule).Error)
	suite.NoError(suite.baseTestSuite.DB.Create(suite.responsibility).Error)
	suite.NoError(suite.baseTestSuite.DB.Create(suite.publisher).Error)
}

func (suite *ResponsibilityAssignmentRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ResponsibilityAssignmentRepositoryTestSuite) TestCreateAndGet() {
	assignment := suite.factories.Assignment.Create(suite.schedule.ID, suite.responsibility.ID, suite.publisher.ID)
	suite.NoError(suite.repo.Create(assignment))

	found, err := suite.repo.Get(suite.schedule.ID, suite.responsibility.ID, suite.publisher.ID)
	suite.NoError(err)
	suite.Equal(suite.publisher.ID, found.PublisherID)
}

func (suite *ResponsibilityAssignmentRepositoryTestSuite) TestCreate_Duplicate() {
	assignment := suite.factories.Assignment.Create(suite.schedule.ID, suite.responsibility.ID, suite.publisher.ID)
	suite.NoError(suite.repo.Create(assignment))

	dup := suite.factories.Assignment.Create(suite.schedule.ID, suite.responsibility.ID, suite.publisher.ID)
	err := suite.repo.Create(dup)

	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
}

func (suite *ResponsibilityAssignmentRepositoryTestSuite) TestDelete() {
	assignment := suite.factories.Assignment.Create(suite.schedule.ID, suite.responsibility.ID, suite.publisher.ID)
	suite.NoError(suite.repo.Create(assignment))

	deleted, err := suite.repo.Delete(suite.schedule.ID, suite.responsibility.ID, suite.publisher.ID)
	suite.NoError(err)
	suite.True(deleted)

	// Second delete is a no-op
	deleted, err = suite.repo.Delete(suite.schedule.ID, suite.responsibility.ID, suite.publisher.ID)
	suite.NoError(err)
	suite.False(deleted)
}

func (suite *ResponsibilityAssignmentRepositoryTestSuite) TestDeleteForMeetingAndResponsibility() {
	first := suite.factories.Assignment.Create(suite.schedule.ID, suite.responsibility.ID, suite.publisher.ID)
	suite.NoError(suite.repo.Create(first))

	other := suite.factories.Publisher.WithName("Ana", "López")
	suite.NoError(suite.baseTestSuite.DB.Create(other).Error)
	second := suite.factories.Assignment.Create(suite.schedule.ID, suite.responsibility.ID, other.ID)
	suite.NoError(suite.repo.Create(second))

	suite.NoError(suite.repo.DeleteForMeetingAndResponsibility(suite.schedule.ID, suite.responsibility.ID))

	assignments, err := suite.repo.GetByMeetingSchedule(suite.schedule.ID)
	suite.NoError(err)
	suite.Len(assignments, 0)
}

func (suite *ResponsibilityAssignmentRepositoryTestSuite) TestGetByPublisher() {
	assignment := suite.factories.Assignment.Create(suite.schedule.ID, suite.responsibility.ID, suite.publisher.ID)
	suite.NoError(suite.repo.Create(assignment))

	assignments, err := suite.repo.GetByPublisher(suite.publisher.ID)
	suite.NoError(err)
	suite.Len(assignments, 1)

	assignments, err = suite.repo.GetByPublisher(uuid.New())
	suite.NoError(err)
	suite.Len(assignments, 0)
}

func (suite *ResponsibilityAssignmentRepositoryTestSuite) TestGetForPublisherMonth() {
	assignment := suite.factories.Assignment.Create(suite.schedule.ID, suite.responsibility.ID, suite.publisher.ID)
	suite.NoError(suite.repo.Create(assignment))

	// Week 10 of 2025 falls in March
	assignments, err := suite.repo.GetForPublisherMonth(suite.publisher.ID, 3, 2025)
	suite.NoError(err)
	suite.Len(assignments, 1)

	assignments, err = suite.repo.GetForPublisherMonth(suite.publisher.ID, 4, 2025)
	suite.NoError(err)
	suite.Len(assignments, 0)
}

func TestResponsibilityAssignmentRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ResponsibilityAssignmentRepositoryTestSuite))
}
