package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"

	"lead-crm-backend/internal/api/handlers"
	"lead-crm-backend/internal/database/models"
	apperrors "lead-crm-backend/internal/errors"
	"lead-crm-backend/internal/mocks"
	"lead-crm-backend/internal/service"
	"lead-crm-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type IntakeHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockIntakeServiceInterface
	handler     *handlers.IntakeHandler
	httpSuite   *testutils.HTTPTestSuite
}

func (suite *IntakeHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockIntakeServiceInterface(suite.ctrl)
	suite.handler = handlers.NewIntakeHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	suite.httpSuite.Router.POST("/api/v1/public/intake/*path", suite.handler.SubmitLead)
}

func (suite *IntakeHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *IntakeHandlerTestSuite) TestSubmitLead_Form() {
	companyID, teamID, agentID := uuid.New(), uuid.New(), uuid.New()

	suite.mockService.EXPECT().SubmitLead(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req *service.SubmitLeadRequest) (*service.LeadResponse, error) {
			assert.Equal(suite.T(), "/bank-finanse/loans", req.Path)
			assert.Equal(suite.T(), "Anna", req.FirstName)
			assert.Equal(suite.T(), "+48600100200", req.PhoneNumber)
			assert.Equal(suite.T(), "loan", req.Product)
			assert.Equal(suite.T(), "192.0.2.1", req.IPAddress)
			assert.Equal(suite.T(), testutils.TestUserAgent, req.UserAgent)
			return &service.LeadResponse{
				ID:        uuid.New(),
				CompanyID: &companyID,
				TeamID:    &teamID,
				AgentID:   &agentID,
				Status:    models.AssignmentStatusAgentAssigned,
			}, nil
		})

	recorder := suite.httpSuite.SubmitForm("/api/v1/public/intake/bank-finanse/loans", url.Values{
		"first_name":   {"Anna"},
		"phone_number": {"+48600100200"},
		"message":      {"Call me after 5pm"},
		"product":      {"loan"},
	})

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)
	var response service.LeadResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), &agentID, response.AgentID)
}

func (suite *IntakeHandlerTestSuite) TestSubmitLead_JSON() {
	suite.mockService.EXPECT().SubmitLead(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req *service.SubmitLeadRequest) (*service.LeadResponse, error) {
			assert.Equal(suite.T(), "/kantor/", req.Path)
			assert.Equal(suite.T(), "Piotr", req.FirstName)
			return &service.LeadResponse{ID: uuid.New(), Status: models.AssignmentStatusUnassigned}, nil
		})

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/public/intake/kantor/", map[string]interface{}{
		"first_name":   "Piotr",
		"phone_number": "600100200",
	})

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)
}

func (suite *IntakeHandlerTestSuite) TestSubmitLead_Errors() {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"unknown path", apperrors.ErrCompanyNotFound, http.StatusNotFound, "company not found"},
		{"rate limited", apperrors.ErrIntakeRateLimited, http.StatusTooManyRequests, "too many submissions"},
		{"invalid form", apperrors.NewValidationError("phone_number", "invalid phone number"), http.StatusBadRequest, "Validation failed"},
		{"storage failure", errors.New("failed to create lead: connection reset"), http.StatusInternalServerError, "Failed to submit lead"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.mockService.EXPECT().SubmitLead(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			recorder := suite.httpSuite.SubmitForm("/api/v1/public/intake/unknown/", url.Values{"first_name": {"Anna"}})

			testutils.AssertErrorResponse(t, recorder, tt.status, tt.message)
		})
	}
}

func TestIntakeHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(IntakeHandlerTestSuite))
}
