package handlers_test

import (
	"fmt"
	"net/http"
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

type LeadHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockLeadServiceInterface
	handler     *handlers.LeadHandler
	httpSuite   *testutils.HTTPTestSuite
}

func (suite *LeadHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockLeadServiceInterface(suite.ctrl)
	suite.handler = handlers.NewLeadHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	leads := suite.httpSuite.Router.Group("/api/v1/leads")
	{
		leads.GET("/", suite.handler.ListLeads)
		leads.GET("/:id", suite.handler.GetLead)
		leads.PUT("/:id", suite.handler.UpdateLead)
		leads.DELETE("/:id", suite.handler.DeleteLead)
		leads.PUT("/:id/assignment", suite.handler.AssignLead)
		leads.GET("/:id/submission", suite.handler.GetLeadSubmission)
	}
}

func (suite *LeadHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *LeadHandlerTestSuite) TestListLeads() {
	suite.T().Run("Filters", func(t *testing.T) {
		companyID, agentID := uuid.New(), uuid.New()
		suite.mockService.EXPECT().
			GetAll(&service.ListLeadsQuery{
				CompanyID: &companyID,
				AgentID:   &agentID,
				Status:    "agent_assigned",
				Page:      1,
				PageSize:  20,
			}).
			Return(&service.LeadListResponse{Leads: []service.LeadResponse{{ID: uuid.New()}}, Total: 1, Page: 1, PageSize: 20}, nil)

		url := fmt.Sprintf("/api/v1/leads/?company_id=%s&agent_id=%s&status=agent_assigned", companyID, agentID)
		recorder := suite.httpSuite.MakeRequest("GET", url, nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		var response service.LeadListResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, int64(1), response.Total)
	})

	suite.T().Run("Invalid Filter ID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/leads/?team_id=north", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Invalid team_id")
	})
}

func (suite *LeadHandlerTestSuite) TestGetLead() {
	id := uuid.New()
	suite.mockService.EXPECT().GetByID(id).Return(&service.LeadDetailResponse{
		LeadResponse: service.LeadResponse{ID: id, Status: models.AssignmentStatusTeamAssigned},
		CompanyName:  "Bank Finanse",
		TeamName:     "North",
	}, nil)

	recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/leads/%s", id), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	var response service.LeadDetailResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "North", response.TeamName)
	assert.Equal(suite.T(), models.AssignmentStatusTeamAssigned, response.Status)
}

func (suite *LeadHandlerTestSuite) TestUpdateLead() {
	id := uuid.New()

	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().Update(id, gomock.Any()).Return(&service.LeadResponse{ID: id, Description: "Wants a quote"}, nil)

		recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/api/v1/leads/%s", id), map[string]interface{}{
			"first_name":   "Anna",
			"phone_number": "+48600100200",
			"description":  "Wants a quote",
		})

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Email Taken", func(t *testing.T) {
		suite.mockService.EXPECT().Update(id, gomock.Any()).Return(nil, apperrors.ErrLeadEmailExists)

		recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/api/v1/leads/%s", id), map[string]interface{}{
			"email": "anna@example.com",
		})

		assert.Equal(t, http.StatusConflict, recorder.Code)
	})
}

func (suite *LeadHandlerTestSuite) TestDeleteLead() {
	id := uuid.New()
	suite.mockService.EXPECT().Delete(id).Return(nil)

	recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/v1/leads/%s", id), nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

func (suite *LeadHandlerTestSuite) TestAssignLead() {
	id, teamID, agentID := uuid.New(), uuid.New(), uuid.New()

	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			Assign(gomock.Any(), id, &service.AssignLeadRequest{TeamID: &teamID, AgentID: &agentID}).
			Return(&service.LeadResponse{ID: id, TeamID: &teamID, AgentID: &agentID, Status: models.AssignmentStatusAgentAssigned}, nil)

		recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/api/v1/leads/%s/assignment", id), map[string]interface{}{
			"team_id":  teamID.String(),
			"agent_id": agentID.String(),
		})

		assert.Equal(t, http.StatusOK, recorder.Code)
		var response service.LeadResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, models.AssignmentStatusAgentAssigned, response.Status)
	})

	suite.T().Run("Agent Outside Team", func(t *testing.T) {
		suite.mockService.EXPECT().Assign(gomock.Any(), id, gomock.Any()).Return(nil, apperrors.ErrAgentNotInTeam)

		recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/api/v1/leads/%s/assignment", id), map[string]interface{}{
			"team_id":  teamID.String(),
			"agent_id": agentID.String(),
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusUnprocessableEntity, "not a member")
	})
}

func (suite *LeadHandlerTestSuite) TestGetLeadSubmission() {
	id := uuid.New()

	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().GetSubmission(id).Return(&service.LeadSubmissionResponse{
			LeadID:    id,
			IPAddress: "203.0.113.7",
		}, nil)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/leads/%s/submission", id), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Missing", func(t *testing.T) {
		suite.mockService.EXPECT().GetSubmission(id).Return(nil, apperrors.ErrLeadSubmissionNotFound)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/leads/%s/submission", id), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "lead submission not found")
	})
}

func TestLeadHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(LeadHandlerTestSuite))
}
