//go:build integration
// +build integration

package service

import (
	"testing"

	"congregation-manager-backend/internal/database/models"
	apperrors "congregation-manager-backend/internal/errors"
	"congregation-manager-backend/internal/repository"
	"congregation-manager-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// AssignmentServiceIntegrationTestSuite exercises the assignment service
// against a real Postgres
type AssignmentServiceIntegrationTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	service       *AssignmentService
	factories     *testutils.FactorySet

	schedule       *models.MeetingSchedule
	responsibility *models.Responsibility
	publisher      *models.Publisher
}

func (suite *AssignmentServiceIntegrationTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	db := suite.baseTestSuite.DB
	suite.service = NewAssignmentService(
		db,
		repository.NewResponsibilityAssignmentRepository(db),
		repository.NewMeetingScheduleRepository(db),
		repository.NewPublisherRepository(db),
		repository.NewResponsibilityRepository(db),
		validator.New(),
	)
	suite.factories = testutils.NewFactorySet()
}

func (suite *AssignmentServiceIntegrationTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *AssignmentServiceIntegrationTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.schedule = suite.factories.MeetingSchedule.ForWeek(2025, 10, models.MeetingTypeMidweek)
	suite.responsibility = suite.factories.Responsibility.Create()
	suite.publisher = suite.factories.Publisher.Create()

	db := suite.baseTestSuite.DB
	suite.NoError(db.Create(suite.schedule).Error)
	suite.NoError(db.Create(suite.responsibility).Error)
	suite.NoError(db.Create(suite.publisher).Error)
}

func (suite *AssignmentServiceIntegrationTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *AssignmentServiceIntegrationTestSuite) TestAssign_DisplacesExistingPublisher() {
	assigned, err := suite.service.Assign(suite.schedule.ID, suite.responsibility.ID, suite.publisher.ID)
	suite.NoError(err)
	suite.True(assigned)

	// A second publisher takes over the same slot
	replacement := suite.factories.Publisher.WithName("Ana", "López")
	suite.NoError(suite.baseTestSuite.DB.Create(replacement).Error)

	assigned, err = suite.service.Assign(suite.schedule.ID, suite.responsibility.ID, replacement.ID)
	suite.NoError(err)
	suite.True(assigned)

	assignments, err := suite.service.GetByMeetingSchedule(suite.schedule.ID)
	suite.NoError(err)
	suite.Len(assignments, 1)
	suite.Equal(replacement.ID, assignments[0].PublisherID)
}

func (suite *AssignmentServiceIntegrationTestSuite) TestAssign_MissingEntityReturnsFalse() {
	assigned, err := suite.service.Assign(uuid.New(), suite.responsibility.ID, suite.publisher.ID)
	suite.NoError(err)
	suite.False(assigned)

	assigned, err = suite.service.Assign(suite.schedule.ID, suite.responsibility.ID, uuid.New())
	suite.NoError(err)
	suite.False(assigned)
}

func (suite *AssignmentServiceIntegrationTestSuite) TestCreate_NeverDisplaces() {
	req := &AssignmentRequest{
		MeetingScheduleID: suite.schedule.ID,
		ResponsibilityID:  suite.responsibility.ID,
		PublisherID:       suite.publisher.ID,
	}

	_, err := suite.service.Create(req)
	suite.NoError(err)

	// Exact duplicate is rejected
	_, err = suite.service.Create(req)
	suite.ErrorIs(err, apperrors.ErrAssignmentExists)
}

func (suite *AssignmentServiceIntegrationTestSuite) TestRemove() {
	assigned, err := suite.service.Assign(suite.schedule.ID, suite.responsibility.ID, suite.publisher.ID)
	suite.NoError(err)
	suite.True(assigned)

	removed, err := suite.service.Remove(suite.schedule.ID, suite.responsibility.ID, suite.publisher.ID)
	suite.NoError(err)
	suite.True(removed)

	removed, err = suite.service.Remove(suite.schedule.ID, suite.responsibility.ID, suite.publisher.ID)
	suite.NoError(err)
	suite.False(removed)
}

func (suite *AssignmentServiceIntegrationTestSuite) TestGetPublisherAssignmentsForMonth() {
	assigned, err := suite.service.Assign(suite.schedule.ID, suite.responsibility.ID, suite.publisher.ID)
	suite.NoError(err)
	suite.True(assigned)

	// Week 10 of 2025 falls in March
	assignments, err := suite.service.GetPublisherAssignmentsForMonth(suite.publisher.ID, 3, 2025)
	suite.NoError(err)
	suite.Len(assignments, 1)
	suite.Equal("Audio", assignments[0].ResponsibilityName)

	assignments, err = suite.service.GetPublisherAssignmentsForMonth(suite.publisher.ID, 4, 2025)
	suite.NoError(err)
	suite.Len(assignments, 0)
}

func TestAssignmentServiceIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentServiceIntegrationTestSuite))
}
