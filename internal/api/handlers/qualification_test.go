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

// QualificationHandlerTestSuite defines the test suite for QualificationHandler
type QualificationHandlerTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	mockSv  *mocks.MockQualificationServiceInterface
	handler *handlers.QualificationHandler
	router  *gin.Engine
}

func (suite *QualificationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockSv = mocks.NewMockQualificationServiceInterface(suite.ctrl)
	suite.handler = handlers.NewQualificationHandler(suite.mockSv)

	suite.router = gin.New()
	suite.router.GET("/publishers/:id/qualifications", suite.handler.GetPublisherQualifications)
	suite.router.POST("/publishers/:id/qualifications", suite.handler.AddQualification)
	suite.router.DELETE("/publishers/:id/qualifications/:responsibility_id", suite.handler.RemoveQualification)
	suite.router.GET("/responsibilities/:id/qualified-publishers", suite.handler.GetQualifiedPublishers)
}

func (suite *QualificationHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *QualificationHandlerTestSuite) TestAddQualification_Success() {
	publisherID, responsibilityID := uuid.New(), uuid.New()
	resp := &service.QualificationResponse{
		PublisherID:        publisherID,
		ResponsibilityID:   responsibilityID,
		PublisherName:      "J.Pérez.G",
		ResponsibilityName: "Audio",
	}
	suite.mockSv.EXPECT().Add(publisherID, responsibilityID).Return(resp, nil)

	body := `{"responsibility_id":"` + responsibilityID.String() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/publishers/"+publisherID.String()+"/qualifications", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var got service.QualificationResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Audio", got.ResponsibilityName)
}

func (suite *QualificationHandlerTestSuite) TestAddQualification_Duplicate() {
	publisherID, responsibilityID := uuid.New(), uuid.New()
	suite.mockSv.EXPECT().Add(publisherID, responsibilityID).Return(nil, apperrors.ErrQualificationExists)

	body := `{"responsibility_id":"` + responsibilityID.String() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/publishers/"+publisherID.String()+"/qualifications", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *QualificationHandlerTestSuite) TestAddQualification_PublisherNotFound() {
	publisherID, responsibilityID := uuid.New(), uuid.New()
	suite.mockSv.EXPECT().Add(publisherID, responsibilityID).Return(nil, apperrors.ErrPublisherNotFound)

	body := `{"responsibility_id":"` + responsibilityID.String() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/publishers/"+publisherID.String()+"/qualifications", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *QualificationHandlerTestSuite) TestRemoveQualification_Success() {
	publisherID, responsibilityID := uuid.New(), uuid.New()
	suite.mockSv.EXPECT().Remove(publisherID, responsibilityID).Return(nil)

	url := "/publishers/" + publisherID.String() + "/qualifications/" + responsibilityID.String()
	req := httptest.NewRequest(http.MethodDelete, url, nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

func (suite *QualificationHandlerTestSuite) TestRemoveQualification_NotFound() {
	publisherID, responsibilityID := uuid.New(), uuid.New()
	suite.mockSv.EXPECT().Remove(publisherID, responsibilityID).Return(apperrors.ErrQualificationNotFound)

	url := "/publishers/" + publisherID.String() + "/qualifications/" + responsibilityID.String()
	req := httptest.NewRequest(http.MethodDelete, url, nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *QualificationHandlerTestSuite) TestGetPublisherQualifications_Success() {
	publisherID := uuid.New()
	resp := []service.QualificationResponse{
		{PublisherID: publisherID, ResponsibilityID: uuid.New(), ResponsibilityName: "Audio"},
		{PublisherID: publisherID, ResponsibilityID: uuid.New(), ResponsibilityName: "Plataforma"},
	}
	suite.mockSv.EXPECT().GetByPublisher(publisherID).Return(resp, nil)

	req := httptest.NewRequest(http.MethodGet, "/publishers/"+publisherID.String()+"/qualifications", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got []service.QualificationResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), got, 2)
}

func (suite *QualificationHandlerTestSuite) TestGetQualifiedPublishers_NotFound() {
	responsibilityID := uuid.New()
	suite.mockSv.EXPECT().GetByResponsibility(responsibilityID).Return(nil, apperrors.ErrResponsibilityNotFound)

	req := httptest.NewRequest(http.MethodGet, "/responsibilities/"+responsibilityID.String()+"/qualified-publishers", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func TestQualificationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(QualificationHandlerTestSuite))
}
