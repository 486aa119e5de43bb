package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

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

// MeetingScheduleHandlerTestSuite defines the test suite for MeetingScheduleHandler
type MeetingScheduleHandlerTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockSv     *mocks.MockMeetingScheduleServiceInterface
	mockReport *mocks.MockReportServiceInterface
	handler    *handlers.MeetingScheduleHandler
	router     *gin.Engine
}

func (suite *MeetingScheduleHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockSv = mocks.NewMockMeetingScheduleServiceInterface(suite.ctrl)
	suite.mockReport = mocks.NewMockReportServiceInterface(suite.ctrl)
	suite.handler = handlers.NewMeetingScheduleHandler(suite.mockSv, suite.mockReport)

	suite.router = gin.New()
	suite.router.GET("/meeting-schedules", suite.handler.ListMeetingSchedules)
	suite.router.POST("/meeting-schedules", suite.handler.CreateMeetingSchedule)
	suite.router.POST("/meeting-schedules/get-or-create", suite.handler.GetOrCreateMeetingSchedule)
	suite.router.POST("/meeting-schedules/copy-week", suite.handler.CopyWeekAssignments)
	suite.router.GET("/meeting-schedules/week/:year/:week", suite.handler.GetOrCreateWeekSchedules)
	suite.router.GET("/meeting-schedules/monthly-schedule/:year/:month", suite.handler.GetMonthlySchedulePDF)
	suite.router.GET("/meeting-schedules/:id", suite.handler.GetMeetingSchedule)
	suite.router.DELETE("/meeting-schedules/:id", suite.handler.DeleteMeetingSchedule)
}

func (suite *MeetingScheduleHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *MeetingScheduleHandlerTestSuite) TestGetOrCreate_Success() {
	resp := &service.MeetingScheduleResponse{
		ID:          uuid.New(),
		Year:        2025,
		WeekOfYear:  10,
		MeetingType: models.MeetingTypeMidweek,
	}
	suite.mockSv.EXPECT().
		GetOrCreateMeetingSchedule(10, 2025, models.MeetingTypeMidweek).
		Return(resp, nil)

	body := `{"week_of_year":10,"year":2025,"meeting_type":"midweek"}`
	req := httptest.NewRequest(http.MethodPost, "/meeting-schedules/get-or-create", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.MeetingScheduleResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 10, got.WeekOfYear)
	assert.Equal(suite.T(), models.MeetingTypeMidweek, got.MeetingType)
}

func (suite *MeetingScheduleHandlerTestSuite) TestGetOrCreateWeekSchedules_Success() {
	resp := []service.MeetingScheduleResponse{
		{ID: uuid.New(), Year: 2025, WeekOfYear: 10, MeetingType: models.MeetingTypeMidweek},
		{ID: uuid.New(), Year: 2025, WeekOfYear: 10, MeetingType: models.MeetingTypeWeekend},
	}
	suite.mockSv.EXPECT().GetOrCreateWeekSchedules(10, 2025).Return(resp, nil)

	req := httptest.NewRequest(http.MethodGet, "/meeting-schedules/week/2025/10", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got []service.MeetingScheduleResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), got, 2)
}

func (suite *MeetingScheduleHandlerTestSuite) TestGetOrCreateWeekSchedules_InvalidWeek() {
	req := httptest.NewRequest(http.MethodGet, "/meeting-schedules/week/2025/abc", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *MeetingScheduleHandlerTestSuite) TestCopyWeekAssignments_Success() {
	suite.mockSv.EXPECT().CopyAssignmentsToWeek(10, 2025, 11, 2025).Return(true, nil)

	body := `{"source_week":10,"source_year":2025,"target_week":11,"target_year":2025}`
	req := httptest.NewRequest(http.MethodPost, "/meeting-schedules/copy-week", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got map[string]bool
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), got["copied"])
}

func (suite *MeetingScheduleHandlerTestSuite) TestListMeetingSchedules_ByMonth() {
	suite.mockSv.EXPECT().GetByMonth(3, 2025).Return([]service.MeetingScheduleResponse{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/meeting-schedules?month=3&year=2025", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *MeetingScheduleHandlerTestSuite) TestListMeetingSchedules_MonthOutOfRange() {
	req := httptest.NewRequest(http.MethodGet, "/meeting-schedules?month=13&year=2025", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Month must be between 1 and 12")
}

func (suite *MeetingScheduleHandlerTestSuite) TestDeleteMeetingSchedule_HasAssignments() {
	id := uuid.New()
	suite.mockSv.EXPECT().Delete(id).Return(apperrors.ErrScheduleHasAssignments)

	req := httptest.NewRequest(http.MethodDelete, "/meeting-schedules/"+id.String(), nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *MeetingScheduleHandlerTestSuite) TestGetMonthlySchedulePDF_Success() {
	pdfBytes := []byte("%PDF-1.3 fake content")
	suite.mockReport.EXPECT().GenerateMonthlySchedulePDF(3, 2025).Return(pdfBytes, nil)

	req := httptest.NewRequest(http.MethodGet, "/meeting-schedules/monthly-schedule/2025/3", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Equal(suite.T(), "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(suite.T(), "attachment; filename=Programacion_Marzo_2025.pdf", w.Header().Get("Content-Disposition"))
	assert.Equal(suite.T(), pdfBytes, w.Body.Bytes())
}

func (suite *MeetingScheduleHandlerTestSuite) TestGetMonthlySchedulePDF_InvalidMonth() {
	req := httptest.NewRequest(http.MethodGet, "/meeting-schedules/monthly-schedule/2025/13", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	var got map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Month must be between 1 and 12", got["error"])
}

func (suite *MeetingScheduleHandlerTestSuite) TestGetMonthlySchedulePDF_InvalidYear() {
	req := httptest.NewRequest(http.MethodGet, "/meeting-schedules/monthly-schedule/2019/3", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	var got map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Year must be between 2020 and 2030", got["error"])
}

func (suite *MeetingScheduleHandlerTestSuite) TestGetMonthlySchedulePDF_NoCongregation() {
	suite.mockReport.EXPECT().GenerateMonthlySchedulePDF(3, 2025).
		Return(nil, apperrors.ErrNoCongregation)

	req := httptest.NewRequest(http.MethodGet, "/meeting-schedules/monthly-schedule/2025/3", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusInternalServerError, w.Code)

	var got map[string]interface{}
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &got))
	assert.Contains(suite.T(), got["details"], "congregation")
}

func (suite *MeetingScheduleHandlerTestSuite) TestGetMonthlySchedulePDF_RenderError() {
	suite.mockReport.EXPECT().GenerateMonthlySchedulePDF(3, 2025).
		Return(nil, errors.New("render failed"))

	req := httptest.NewRequest(http.MethodGet, "/meeting-schedules/monthly-schedule/2025/3", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusInternalServerError, w.Code)
}

func TestMeetingScheduleHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(MeetingScheduleHandlerTestSuite))
}
