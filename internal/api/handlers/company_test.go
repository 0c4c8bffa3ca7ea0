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

type CompanyHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockCompanyServiceInterface
	handler     *handlers.CompanyHandler
	httpSuite   *testutils.HTTPTestSuite
}

func (suite *CompanyHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockCompanyServiceInterface(suite.ctrl)
	suite.handler = handlers.NewCompanyHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	companies := suite.httpSuite.Router.Group("/api/v1/companies")
	{
		companies.POST("/", suite.handler.CreateCompany)
		companies.GET("/", suite.handler.ListCompanies)
		companies.GET("/:id", suite.handler.GetCompany)
		companies.PUT("/:id", suite.handler.UpdateCompany)
		companies.DELETE("/:id", suite.handler.DeleteCompany)
		companies.GET("/:id/teams", suite.handler.GetCompanyTeams)
		companies.POST("/:id/teams", suite.handler.LinkTeam)
		companies.PUT("/:id/teams/:team_id", suite.handler.UpdateTeamLink)
		companies.DELETE("/:id/teams/:team_id", suite.handler.UnlinkTeam)
		companies.GET("/:id/agents", suite.handler.GetCompanyAgents)
	}
}

func (suite *CompanyHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CompanyHandlerTestSuite) TestCreateCompany() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			Create(&service.CreateCompanyRequest{
				Name:           "Bank Finanse",
				Path:           "bank-finanse",
				Website:        "https://bankfinanse.example",
				LeadAssignment: "auto",
			}).
			Return(&service.CompanyResponse{
				ID:             uuid.New(),
				Name:           "Bank Finanse",
				Path:           "/bank-finanse/",
				LeadAssignment: models.LeadAssignmentAuto,
			}, nil)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/companies/", map[string]interface{}{
			"name":            "Bank Finanse",
			"path":            "bank-finanse",
			"website":         "https://bankfinanse.example",
			"lead_assignment": "auto",
		})

		assert.Equal(t, http.StatusCreated, recorder.Code)
		var response service.CompanyResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, "/bank-finanse/", response.Path)
	})

	suite.T().Run("Conflict", func(t *testing.T) {
		suite.mockService.EXPECT().Create(gomock.Any()).Return(nil, apperrors.ErrCompanyExists)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/companies/", map[string]interface{}{"name": "Bank Finanse"})

		testutils.AssertErrorResponse(t, recorder, http.StatusConflict, "company already exists")
	})

	suite.T().Run("Invalid JSON", func(t *testing.T) {
		recorder := makeInvalidJSONRequest(suite.httpSuite.Router, "POST", "/api/v1/companies/")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func (suite *CompanyHandlerTestSuite) TestListCompanies() {
	suite.mockService.EXPECT().GetAll(1, 20).Return(&service.CompanyListResponse{
		Companies: []service.CompanyResponse{{ID: uuid.New(), Name: "Bank Finanse"}},
		Total:     1,
		Page:      1,
		PageSize:  20,
	}, nil)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/companies/?page=abc", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	var response service.CompanyListResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response.Companies, 1)
}

func (suite *CompanyHandlerTestSuite) TestGetCompany() {
	suite.T().Run("Not Found", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().GetByID(id).Return(nil, apperrors.ErrCompanyNotFound)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/companies/%s", id), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "company not found")
	})

	suite.T().Run("Invalid ID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/companies/123", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Invalid company ID")
	})
}

func (suite *CompanyHandlerTestSuite) TestUpdateCompany() {
	id := uuid.New()
	suite.mockService.EXPECT().Update(id, gomock.Any()).DoAndReturn(
		func(_ uuid.UUID, req *service.UpdateCompanyRequest) (*service.CompanyResponse, error) {
			assert.Equal(suite.T(), "manual", req.LeadAssignment)
			return &service.CompanyResponse{ID: id, LeadAssignment: models.LeadAssignmentManual}, nil
		})

	recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/api/v1/companies/%s", id), map[string]interface{}{
		"name":            "Bank Finanse",
		"path":            "/bank/",
		"website":         "https://bank.example",
		"lead_assignment": "manual",
	})

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

func (suite *CompanyHandlerTestSuite) TestDeleteCompany() {
	id := uuid.New()
	suite.mockService.EXPECT().Delete(id).Return(nil)

	recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/v1/companies/%s", id), nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

func (suite *CompanyHandlerTestSuite) TestTeamLinks() {
	companyID, teamID := uuid.New(), uuid.New()

	suite.T().Run("List", func(t *testing.T) {
		suite.mockService.EXPECT().GetTeams(companyID).Return([]service.CompanyTeamResponse{
			{TeamResponse: service.TeamResponse{ID: teamID, Name: "North"}, LeadAssignment: models.LeadAssignmentAuto},
		}, nil)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/companies/%s/teams", companyID), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		var response []service.CompanyTeamResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, models.LeadAssignmentAuto, response[0].LeadAssignment)
	})

	suite.T().Run("Link", func(t *testing.T) {
		suite.mockService.EXPECT().
			LinkTeam(companyID, &service.LinkTeamRequest{TeamID: teamID, LeadAssignment: "auto"}).
			Return(&service.CompanyTeamResponse{TeamResponse: service.TeamResponse{ID: teamID}, LeadAssignment: models.LeadAssignmentAuto}, nil)

		recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/v1/companies/%s/teams", companyID), map[string]interface{}{
			"team_id":         teamID.String(),
			"lead_assignment": "auto",
		})

		assert.Equal(t, http.StatusCreated, recorder.Code)
	})

	suite.T().Run("Link Exists", func(t *testing.T) {
		suite.mockService.EXPECT().LinkTeam(companyID, gomock.Any()).Return(nil, apperrors.ErrTeamCompanyExists)

		recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/v1/companies/%s/teams", companyID), map[string]interface{}{
			"team_id": teamID.String(),
		})

		assert.Equal(t, http.StatusConflict, recorder.Code)
	})

	suite.T().Run("Update Mode", func(t *testing.T) {
		suite.mockService.EXPECT().
			UpdateTeamLink(companyID, teamID, &service.UpdateTeamLinkRequest{LeadAssignment: "disabled"}).
			Return(&service.CompanyTeamResponse{TeamResponse: service.TeamResponse{ID: teamID}, LeadAssignment: models.LeadAssignmentDisabled}, nil)

		recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/api/v1/companies/%s/teams/%s", companyID, teamID), map[string]interface{}{
			"lead_assignment": "disabled",
		})

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Update Invalid Team ID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/api/v1/companies/%s/teams/x", companyID), map[string]interface{}{
			"lead_assignment": "auto",
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Invalid team ID")
	})

	suite.T().Run("Unlink Missing", func(t *testing.T) {
		suite.mockService.EXPECT().UnlinkTeam(companyID, teamID).Return(apperrors.ErrTeamCompanyNotFound)

		recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/v1/companies/%s/teams/%s", companyID, teamID), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "team-company link not found")
	})

	suite.T().Run("Unlink", func(t *testing.T) {
		suite.mockService.EXPECT().UnlinkTeam(companyID, teamID).Return(nil)

		recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/v1/companies/%s/teams/%s", companyID, teamID), nil)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})
}

func (suite *CompanyHandlerTestSuite) TestGetCompanyAgents() {
	id := uuid.New()
	suite.mockService.EXPECT().GetAgents(id).Return([]service.AgentResponse{{ID: uuid.New(), FullName: "Ewa Kowalska"}}, nil)

	recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/companies/%s/agents", id), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	var response []service.AgentResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "Ewa Kowalska", response[0].FullName)
}

func TestCompanyHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CompanyHandlerTestSuite))
}
