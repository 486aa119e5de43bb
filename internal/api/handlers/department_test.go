package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"congregation-manager-backend/internal/api/handlers"
	apperrors "congregation-manager-backend/internal/errors"
	"congregation-manager-backend/internal/mocks"
	"congregation-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// DepartmentHandlerTestSuite defines the test suite for DepartmentHandler
type DepartmentHandlerTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockSv     *mocks.MockDepartmentServiceInterface
	mockRespSv *mocks.MockResponsibilityServiceInterface
	handler    *handlers.DepartmentHandler
	router     *gin.Engine
}

func (suite *DepartmentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockSv = mocks.NewMockDepartmentServiceInterface(suite.ctrl)
	suite.mockRespSv = mocks.NewMockResponsibilityServiceInterface(suite.ctrl)
	suite.handler = handlers.NewDepartmentHandler(suite.mockSv, suite.mockRespSv)

	suite.router = gin.New()
	suite.router.GET("/departments", suite.handler.ListDepartments)
	suite.router.POST("/departments", suite.handler.CreateDepartment)
	suite.router.GET("/departments/:id", suite.handler.GetDepartment)
	suite.router.PUT("/departments/:id", suite.handler.UpdateDepartment)
	suite.router.DELETE("/departments/:id", suite.handler.DeleteDepartment)
	suite.router.GET("/departments/:id/responsibilities", suite.handler.GetDepartmentResponsibilities)
}

func (suite *DepartmentHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *DepartmentHandlerTestSuite) TestCreateDepartment_Success() {
	resp := &service.DepartmentResponse{ID: uuid.New(), Name: "Sonido", IsActive: true}
	suite.mockSv.EXPECT().Create(gomock.Any()).Return(resp, nil)

	body := `{"name":"Sonido"}`
	req := httptest.NewRequest(http.MethodPost, "/departments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var got service.DepartmentResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Sonido", got.Name)
	assert.True(suite.T(), got.IsActive)
}

func (suite *DepartmentHandlerTestSuite) TestCreateDepartment_ResponsibleNotFound() {
	suite.mockSv.EXPECT().Create(gomock.Any()).Return(nil, apperrors.ErrPublisherNotFound)

	body := `{"name":"Sonido","responsible_publisher_id":"` + uuid.NewString() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/departments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *DepartmentHandlerTestSuite) TestListDepartments_IncludeDeleted() {
	suite.mockSv.EXPECT().GetAll(true).Return([]service.DepartmentResponse{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/departments?include_deleted=true", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *DepartmentHandlerTestSuite) TestGetDepartmentResponsibilities_Success() {
	departmentID := uuid.New()
	resp := []service.ResponsibilityResponse{
		{ID: uuid.New(), Name: "Audio", DepartmentID: &departmentID},
	}
	suite.mockRespSv.EXPECT().GetByDepartment(departmentID).Return(resp, nil)

	req := httptest.NewRequest(http.MethodGet, "/departments/"+departmentID.String()+"/responsibilities", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got []service.ResponsibilityResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), got, 1)
}

func (suite *DepartmentHandlerTestSuite) TestGetDepartmentResponsibilities_NotFound() {
	departmentID := uuid.New()
	suite.mockRespSv.EXPECT().GetByDepartment(departmentID).Return(nil, apperrors.ErrDepartmentNotFound)

	req := httptest.NewRequest(http.MethodGet, "/departments/"+departmentID.String()+"/responsibilities", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *DepartmentHandlerTestSuite) TestDeleteDepartment_Success() {
	id := uuid.New()
	suite.mockSv.EXPECT().Delete(id).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/departments/"+id.String(), nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

func TestDepartmentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DepartmentHandlerTestSuite))
}
