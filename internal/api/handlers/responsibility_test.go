package handlers_test

import (
	"encoding/json"
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

// ResponsibilityHandlerTestSuite defines the test suite for ResponsibilityHandler
type ResponsibilityHandlerTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockSv     *mocks.MockResponsibilityServiceInterface
	mockConfig *mocks.MockAssignmentConfigServiceInterface
	handler    *handlers.ResponsibilityHandler
	router     *gin.Engine
}

func (suite *ResponsibilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockSv = mocks.NewMockResponsibilityServiceInterface(suite.ctrl)
	suite.mockConfig = mocks.NewMockAssignmentConfigServiceInterface(suite.ctrl)
	suite.handler = handlers.NewResponsibilityHandler(suite.mockSv, suite.mockConfig)

	suite.router = gin.New()
	suite.router.GET("/responsibilities", suite.handler.ListResponsibilities)
	suite.router.POST("/responsibilities", suite.handler.CreateResponsibility)
	suite.router.GET("/responsibilities/:id", suite.handler.GetResponsibility)
	suite.router.PUT("/responsibilities/:id", suite.handler.UpdateResponsibility)
	suite.router.DELETE("/responsibilities/:id", suite.handler.DeleteResponsibility)
	suite.router.GET("/responsibilities/:id/assignment-configs", suite.handler.ListAssignmentConfigs)
	suite.router.POST("/responsibilities/:id/assignment-configs", suite.handler.CreateAssignmentConfig)
	suite.router.PUT("/responsibilities/:id/assignment-configs/:meeting_type", suite.handler.UpdateAssignmentConfig)
	suite.router.DELETE("/responsibilities/:id/assignment-configs/:meeting_type", suite.handler.DeleteAssignmentConfig)
}

func (suite *ResponsibilityHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ResponsibilityHandlerTestSuite) TestCreateResponsibility_Success() {
	resp := &service.ResponsibilityResponse{ID: uuid.New(), Name: "Audio"}
	suite.mockSv.EXPECT().Create(gomock.Any()).Return(resp, nil)

	body := `{"name":"Audio"}`
	req := httptest.NewRequest(http.MethodPost, "/responsibilities", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
}

func (suite *ResponsibilityHandlerTestSuite) TestCreateResponsibility_DepartmentNotFound() {
	suite.mockSv.EXPECT().Create(gomock.Any()).Return(nil, apperrors.ErrDepartmentNotFound)

	body := `{"name":"Audio","department_id":"` + uuid.NewString() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/responsibilities", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *ResponsibilityHandlerTestSuite) TestListResponsibilities_Success() {
	resp := []service.ResponsibilityResponse{
		{ID: uuid.New(), Name: "Audio"},
		{ID: uuid.New(), Name: "Plataforma"},
	}
	suite.mockSv.EXPECT().GetAll(false).Return(resp, nil)

	req := httptest.NewRequest(http.MethodGet, "/responsibilities", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got []service.ResponsibilityResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), got, 2)
}

func (suite *ResponsibilityHandlerTestSuite) TestCreateAssignmentConfig_Success() {
	responsibilityID := uuid.New()
	resp := &service.AssignmentConfigResponse{
		ResponsibilityID: responsibilityID,
		MeetingType:      models.MeetingTypeMidweek,
		Quantity:         2,
	}
	suite.mockConfig.EXPECT().Create(gomock.Any()).Return(resp, nil)

	body := `{"meeting_type":"midweek","quantity":2}`
	url := "/responsibilities/" + responsibilityID.String() + "/assignment-configs"
	req := httptest.NewRequest(http.MethodPost, url, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var got service.AssignmentConfigResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, got.Quantity)
}

func (suite *ResponsibilityHandlerTestSuite) TestCreateAssignmentConfig_Duplicate() {
	responsibilityID := uuid.New()
	suite.mockConfig.EXPECT().Create(gomock.Any()).Return(nil, apperrors.ErrAssignmentConfigExists)

	body := `{"meeting_type":"midweek","quantity":2}`
	url := "/responsibilities/" + responsibilityID.String() + "/assignment-configs"
	req := httptest.NewRequest(http.MethodPost, url, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *ResponsibilityHandlerTestSuite) TestDeleteAssignmentConfig_NotFound() {
	responsibilityID := uuid.New()
	suite.mockConfig.EXPECT().
		Delete(responsibilityID, models.MeetingTypeWeekend).
		Return(apperrors.ErrAssignmentConfigNotFound)

	url := "/responsibilities/" + responsibilityID.String() + "/assignment-configs/weekend"
	req := httptest.NewRequest(http.MethodDelete, url, nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func TestResponsibilityHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ResponsibilityHandlerTestSuite))
}
