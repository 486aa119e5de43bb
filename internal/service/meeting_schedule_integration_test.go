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
	"github.com/stretchr/testify/suite"
)

// MeetingScheduleServiceIntegrationTestSuite exercises week provisioning and
// assignment copying against a real Postgres
type MeetingScheduleServiceIntegrationTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	service       *MeetingScheduleService
	factories     *testutils.FactorySet
}

func (suite *MeetingScheduleServiceIntegrationTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	db := suite.baseTestSuite.DB
	suite.service = NewMeetingScheduleService(
		db,
		repository.NewMeetingScheduleRepository(db),
		repository.NewResponsibilityAssignmentRepository(db),
		validator.New(),
	)
	suite.factories = testutils.NewFactorySet()
}

func (suite *MeetingScheduleServiceIntegrationTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *MeetingScheduleServiceIntegrationTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *MeetingScheduleServiceIntegrationTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *MeetingScheduleServiceIntegrationTestSuite) TestGetOrCreateMeetingSchedule_Idempotent() {
	first, err := suite.service.GetOrCreateMeetingSchedule(10, 2025, models.MeetingTypeMidweek)
	suite.NoError(err)
	suite.Equal(10, first.WeekOfYear)
	suite.Equal(2025, first.Year)
	suite.Equal(3, first.Month)

	second, err := suite.service.GetOrCreateMeetingSchedule(10, 2025, models.MeetingTypeMidweek)
	suite.NoError(err)
	suite.Equal(first.ID, second.ID)
}

func (suite *MeetingScheduleServiceIntegrationTestSuite) TestGetOrCreateMeetingSchedule_InvalidWeek() {
	_, err := suite.service.GetOrCreateMeetingSchedule(54, 2025, models.MeetingTypeMidweek)
	suite.Error(err)

	var validationErr *apperrors.ValidationError
	suite.ErrorAs(err, &validationErr)
}

func (suite *MeetingScheduleServiceIntegrationTestSuite) TestGetOrCreateWeekSchedules() {
	schedules, err := suite.service.GetOrCreateWeekSchedules(10, 2025)
	suite.NoError(err)
	suite.Len(schedules, 2)

	types := map[models.MeetingType]bool{}
	for _, schedule := range schedules {
		types[schedule.MeetingType] = true
	}
	suite.True(types[models.MeetingTypeMidweek])
	suite.True(types[models.MeetingTypeWeekend])

	// Second call returns the same rows
	again, err := suite.service.GetOrCreateWeekSchedules(10, 2025)
	suite.NoError(err)
	suite.Len(again, 2)
	suite.Equal(schedules[0].ID, again[0].ID)
	suite.Equal(schedules[1].ID, again[1].ID)
}

func (suite *MeetingScheduleServiceIntegrationTestSuite) TestCopyAssignmentsToWeek() {
	db := suite.baseTestSuite.DB

	responsibility := suite.factories.Responsibility.Create()
	publisher := suite.factories.Publisher.Create()
	suite.NoError(db.Create(responsibility).Error)
	suite.NoError(db.Create(publisher).Error)

	source, err := suite.service.GetOrCreateMeetingSchedule(10, 2025, models.MeetingTypeMidweek)
	suite.NoError(err)
	suite.NoError(db.Create(suite.factories.Assignment.Create(source.ID, responsibility.ID, publisher.ID)).Error)

	copied, err := suite.service.CopyAssignmentsToWeek(10, 2025, 11, 2025)
	suite.NoError(err)
	suite.True(copied)

	targets, err := suite.service.GetByWeek(11, 2025)
	suite.NoError(err)
	suite.Len(targets, 2)
	for _, target := range targets {
		if target.MeetingType == models.MeetingTypeMidweek {
			suite.Len(target.Assignments, 1)
			suite.Equal(publisher.ID, target.Assignments[0].PublisherID)
		}
	}

	// Source week is untouched
	sourceAfter, err := suite.service.GetByID(source.ID)
	suite.NoError(err)
	suite.Len(sourceAfter.Assignments, 1)
}

func (suite *MeetingScheduleServiceIntegrationTestSuite) TestCopyAssignmentsToWeek_ReplacesTarget() {
	db := suite.baseTestSuite.DB

	responsibility := suite.factories.Responsibility.Create()
	publisher := suite.factories.Publisher.Create()
	previous := suite.factories.Publisher.WithName("Ana", "López")
	suite.NoError(db.Create(responsibility).Error)
	suite.NoError(db.Create(publisher).Error)
	suite.NoError(db.Create(previous).Error)

	source, err := suite.service.GetOrCreateMeetingSchedule(10, 2025, models.MeetingTypeMidweek)
	suite.NoError(err)
	target, err := suite.service.GetOrCreateMeetingSchedule(11, 2025, models.MeetingTypeMidweek)
	suite.NoError(err)

	suite.NoError(db.Create(suite.factories.Assignment.Create(source.ID, responsibility.ID, publisher.ID)).Error)
	suite.NoError(db.Create(suite.factories.Assignment.Create(target.ID, responsibility.ID, previous.ID)).Error)

	copied, err := suite.service.CopyAssignmentsToWeek(10, 2025, 11, 2025)
	suite.NoError(err)
	suite.True(copied)

	targetAfter, err := suite.service.GetByID(target.ID)
	suite.NoError(err)
	suite.Len(targetAfter.Assignments, 1)
	suite.Equal(publisher.ID, targetAfter.Assignments[0].PublisherID)
}

func (suite *MeetingScheduleServiceIntegrationTestSuite) TestCopyAssignmentsToWeek_SameWeekRejected() {
	_, err := suite.service.CopyAssignmentsToWeek(10, 2025, 10, 2025)
	suite.Error(err)

	var validationErr *apperrors.ValidationError
	suite.ErrorAs(err, &validationErr)
}

func (suite *MeetingScheduleServiceIntegrationTestSuite) TestCopyAssignmentsToWeek_RangeChecked() {
	var validationErr *apperrors.ValidationError

	_, err := suite.service.CopyAssignmentsToWeek(54, 2025, 11, 2025)
	suite.ErrorAs(err, &validationErr)

	_, err = suite.service.CopyAssignmentsToWeek(10, 2025, 11, 2031)
	suite.ErrorAs(err, &validationErr)
	suite.Equal("Year must be between 2020 and 2030", validationErr.Message)
}

func (suite *MeetingScheduleServiceIntegrationTestSuite) TestDelete_WithAssignments() {
	db := suite.baseTestSuite.DB

	responsibility := suite.factories.Responsibility.Create()
	publisher := suite.factories.Publisher.Create()
	suite.NoError(db.Create(responsibility).Error)
	suite.NoError(db.Create(publisher).Error)

	schedule, err := suite.service.GetOrCreateMeetingSchedule(10, 2025, models.MeetingTypeMidweek)
	suite.NoError(err)
	suite.NoError(db.Create(suite.factories.Assignment.Create(schedule.ID, responsibility.ID, publisher.ID)).Error)

	err = suite.service.Delete(schedule.ID)
	suite.ErrorIs(err, apperrors.ErrScheduleHasAssignments)

	// After the assignment is gone the schedule can be deleted
	suite.NoError(db.Where("meeting_schedule_id = ?", schedule.ID).Delete(&models.ResponsibilityAssignment{}).Error)
	suite.NoError(suite.service.Delete(schedule.ID))

	_, err = suite.service.GetByID(schedule.ID)
	suite.ErrorIs(err, apperrors.ErrMeetingScheduleNotFound)
}

func TestMeetingScheduleServiceIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(MeetingScheduleServiceIntegrationTestSuite))
}
