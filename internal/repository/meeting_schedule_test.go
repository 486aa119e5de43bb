//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"congregation-manager-backend/internal/database/models"
	"congregation-manager-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// MeetingScheduleRepositoryTestSuite tests the MeetingScheduleRepository
type MeetingScheduleRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *MeetingScheduleRepository
	factories     *testutils.FactorySet
}

func (suite *MeetingScheduleRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewMeetingScheduleRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *MeetingScheduleRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *MeetingScheduleRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *MeetingScheduleRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *MeetingScheduleRepositoryTestSuite) TestCreate() {
	schedule := suite.factories.MeetingSchedule.ForWeek(2025, 10, models.MeetingTypeMidweek)

	err := suite.repo.Create(schedule)

	suite.NoError(err)
	suite.Equal(2025, schedule.Year)
	suite.Equal(10, schedule.WeekOfYear)
}

func (suite *MeetingScheduleRepositoryTestSuite) TestCreate_DuplicateNaturalKey() {
	first := suite.factories.MeetingSchedule.ForWeek(2025, 10, models.MeetingTypeMidweek)
	suite.NoError(suite.repo.Create(first))

	// Same (week, year, meeting type) must be rejected by the unique index
	second := suite.factories.MeetingSchedule.ForWeek(2025, 10, models.MeetingTypeMidweek)
	err := suite.repo.Create(second)

	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
}

func (suite *MeetingScheduleRepositoryTestSuite) TestGetByNaturalKey() {
	schedule := suite.factories.MeetingSchedule.ForWeek(2025, 10, models.MeetingTypeWeekend)
	suite.NoError(suite.repo.Create(schedule))

	found, err := suite.repo.GetByNaturalKey(10, 2025, models.MeetingTypeWeekend)

	suite.NoError(err)
	suite.Equal(schedule.ID, found.ID)

	_, err = suite.repo.GetByNaturalKey(11, 2025, models.MeetingTypeWeekend)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *MeetingScheduleRepositoryTestSuite) TestGetByWeek() {
	midweek := suite.factories.MeetingSchedule.ForWeek(2025, 10, models.MeetingTypeMidweek)
	weekend := suite.factories.MeetingSchedule.ForWeek(2025, 10, models.MeetingTypeWeekend)
	other := suite.factories.MeetingSchedule.ForWeek(2025, 11, models.MeetingTypeMidweek)
	suite.NoError(suite.repo.Create(midweek))
	suite.NoError(suite.repo.Create(weekend))
	suite.NoError(suite.repo.Create(other))

	schedules, err := suite.repo.GetByWeek(10, 2025)

	suite.NoError(err)
	suite.Len(schedules, 2)
}

func (suite *MeetingScheduleRepositoryTestSuite) TestGetByMonth() {
	march := suite.factories.MeetingSchedule.ForWeek(2025, 10, models.MeetingTypeMidweek)
	april := suite.factories.MeetingSchedule.ForWeek(2025, 15, models.MeetingTypeMidweek)
	suite.NoError(suite.repo.Create(march))
	suite.NoError(suite.repo.Create(april))

	schedules, err := suite.repo.GetByMonth(3, 2025)

	suite.NoError(err)
	suite.Len(schedules, 1)
	suite.Equal(march.ID, schedules[0].ID)
}

func (suite *MeetingScheduleRepositoryTestSuite) TestGetByDateRange() {
	schedule := suite.factories.MeetingSchedule.ForWeek(2025, 10, models.MeetingTypeMidweek)
	suite.NoError(suite.repo.Create(schedule))

	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	schedules, err := suite.repo.GetByDateRange(start, end)
	suite.NoError(err)
	suite.Len(schedules, 1)

	schedules, err = suite.repo.GetByDateRange(end, end.AddDate(0, 1, 0))
	suite.NoError(err)
	suite.Len(schedules, 0)
}

func (suite *MeetingScheduleRepositoryTestSuite) TestCountAssignments() {
	schedule := suite.factories.MeetingSchedule.ForWeek(2025, 10, models.MeetingTypeMidweek)
	suite.NoError(suite.repo.Create(schedule))

	count, err := suite.repo.CountAssignments(schedule.ID)
	suite.NoError(err)
	suite.Zero(count)

	publisher := suite.factories.Publisher.Create()
	responsibility := suite.factories.Responsibility.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(publisher).Error)
	suite.NoError(suite.baseTestSuite.DB.Create(responsibility).Error)

	assignment := suite.factories.Assignment.Create(schedule.ID, responsibility.ID, publisher.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(assignment).Error)

	count, err = suite.repo.CountAssignments(schedule.ID)
	suite.NoError(err)
	suite.Equal(int64(1), count)
}

func TestMeetingScheduleRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MeetingScheduleRepositoryTestSuite))
}
