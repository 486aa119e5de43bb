package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"congregation-manager-backend/internal/api/handlers"
	"congregation-manager-backend/internal/database/models"
	apperrors "congregation-manager-backend/internal/errors"
	"congregation-manager-backend/internal/mocks"
	"congregation-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// AssignmentHandlerTestSuite defines the test suite for AssignmentHandler
type AssignmentHandlerTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	mockSv  *mocks.MockAssignmentServiceInterface
	handler *handlers.AssignmentHandler
	router  *gin.Engine
}

func (suite *AssignmentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockSv = mocks.NewMockAssignmentServiceInterface(suite.ctrl)
	suite.handler = handlers.NewAssignmentHandler(suite.mockSv)

	suite.router = gin.New()
	suite.router.GET("/assignments", suite.handler.GetAssignmentsByDateRange)
	suite.router.POST("/assignments", suite.handler.CreateAssignment)
	suite.router.PUT("/assignments", suite.handler.Assign)
	suite.router.DELETE("/assignments", suite.handler.RemoveAssignment)
	suite.router.GET("/publishers/:id/assignments", suite.handler.GetAssignmentsByPublisher)
	suite.router.GET("/meeting-schedules/:id/assignments", suite.handler.GetAssignmentsByMeeting)
}

func (suite *AssignmentHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func assignmentBody(meetingID, responsibilityID, publisherID uuid.UUID) string {
	return `{"meeting_schedule_id":"` + meetingID.String() +
		`","responsibility_id":"` + responsibilityID.String() +
		`","publisher_id":"` + publisherID.String() + `"}`
}

func (suite *AssignmentHandlerTestSuite) TestAssign_Success() {
	meetingID, responsibilityID, publisherID := uuid.New(), uuid.New(), uuid.New()
	suite.mockSv.EXPECT().Assign(meetingID, responsibilityID, publisherID).Return(true, nil)

	body := assignmentBody(meetingID, responsibilityID, publisherID)
	req := httptest.NewRequest(http.MethodPut, "/assignments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got map[string]bool
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), got["assigned"])
}

func (suite *AssignmentHandlerTestSuite) TestAssign_MissingEntity() {
	meetingID, responsibilityID, publisherID := uuid.New(), uuid.New(), uuid.New()
	suite.mockSv.EXPECT().Assign(meetingID, responsibilityID, publisherID).Return(false, nil)

	body := assignmentBody(meetingID, responsibilityID, publisherID)
	req := httptest.NewRequest(http.MethodPut, "/assignments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got map[string]bool
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.False(suite.T(), got["assigned"])
}

func (suite *AssignmentHandlerTestSuite) TestCreateAssignment_Conflict() {
	suite.mockSv.EXPECT().Create(gomock.Any()).Return(nil, apperrors.ErrAssignmentExists)

	body := assignmentBody(uuid.New(), uuid.New(), uuid.New())
	req := httptest.NewRequest(http.MethodPost, "/assignments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *AssignmentHandlerTestSuite) TestCreateAssignment_NotFound() {
	suite.mockSv.EXPECT().Create(gomock.Any()).Return(nil, apperrors.ErrPublisherNotFound)

	body := assignmentBody(uuid.New(), uuid.New(), uuid.New())
	req := httptest.NewRequest(http.MethodPost, "/assignments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *AssignmentHandlerTestSuite) TestRemoveAssignment_Success() {
	meetingID, responsibilityID, publisherID := uuid.New(), uuid.New(), uuid.New()
	suite.mockSv.EXPECT().Remove(meetingID, responsibilityID, publisherID).Return(true, nil)

	body := assignmentBody(meetingID, responsibilityID, publisherID)
	req := httptest.NewRequest(http.MethodDelete, "/assignments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got map[string]bool
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), got["removed"])
}

func (suite *AssignmentHandlerTestSuite) TestGetAssignmentsByPublisher_ForMonth() {
	publisherID := uuid.New()
	resp := []service.AssignmentResponse{
		{
			MeetingScheduleID: uuid.New(),
			ResponsibilityID:  uuid.New(),
			PublisherID:       publisherID,
			PublisherName:     "J.Pérez.G",
			MeetingType:       models.MeetingTypeMidweek,
		},
	}
	suite.mockSv.EXPECT().GetPublisherAssignmentsForMonth(publisherID, 3, 2025).Return(resp, nil)

	req := httptest.NewRequest(http.MethodGet, "/publishers/"+publisherID.String()+"/assignments?month=3&year=2025", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got []service.AssignmentResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), got, 1)
	assert.Equal(suite.T(), "J.Pérez.G", got[0].PublisherName)
}

func (suite *AssignmentHandlerTestSuite) TestGetAssignmentsByPublisher_MonthOutOfRange() {
	publisherID := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/publishers/"+publisherID.String()+"/assignments?month=0&year=2025", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Month must be between 1 and 12")
}

func (suite *AssignmentHandlerTestSuite) TestGetAssignmentsByDateRange_Success() {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	suite.mockSv.EXPECT().GetByDateRange(start, end).Return([]service.AssignmentResponse{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/assignments?start_date=2025-03-01&end_date=2025-03-31", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *AssignmentHandlerTestSuite) TestGetAssignmentsByDateRange_BadDate() {
	req := httptest.NewRequest(http.MethodGet, "/assignments?start_date=03-01-2025&end_date=2025-03-31", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *AssignmentHandlerTestSuite) TestGetAssignmentsByMeeting_Success() {
	meetingID := uuid.New()
	suite.mockSv.EXPECT().GetByMeetingSchedule(meetingID).Return([]service.AssignmentResponse{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/meeting-schedules/"+meetingID.String()+"/assignments", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func TestAssignmentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentHandlerTestSuite))
}
