package handlers_test

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
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

// TeamHandlerTestSuite defines the test suite for TeamHandler
type TeamHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockTeamServiceInterface
	handler     *handlers.TeamHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *TeamHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockTeamServiceInterface(suite.ctrl)
	suite.handler = handlers.NewTeamHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	v1 := suite.httpSuite.Router.Group("/api/v1")
	teams := v1.Group("/teams")
	{
		teams.POST("/", suite.handler.CreateTeam)
		teams.GET("/", suite.handler.ListTeams)
		teams.GET("/:id", suite.handler.GetTeam)
		teams.PUT("/:id", suite.handler.UpdateTeam)
		teams.DELETE("/:id", suite.handler.DeleteTeam)
		teams.GET("/:id/agents", suite.handler.GetTeamAgents)
		teams.GET("/:id/companies", suite.handler.GetTeamCompanies)
	}
}

// TearDownTest cleans up after each test
func (suite *TeamHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func makeInvalidJSONRequest(router http.Handler, method, url string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, url, bytes.NewBufferString("invalid json"))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	return recorder
}

func (suite *TeamHandlerTestSuite) TestCreateTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		expected := &service.TeamResponse{
			ID:        uuid.New(),
			Name:      "North",
			Type:      models.TeamTypeSupport,
			Slug:      "sst-north",
			CreatedAt: "2024-01-01T00:00:00Z",
			UpdatedAt: "2024-01-01T00:00:00Z",
		}
		suite.mockService.EXPECT().
			Create(&service.CreateTeamRequest{Name: "North", Type: "support"}).
			Return(expected, nil)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/teams/", map[string]interface{}{
			"name": "North",
			"type": "support",
		})

		assert.Equal(t, http.StatusCreated, recorder.Code)
		var response service.TeamResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, "sst-north", response.Slug)
		assert.Equal(t, models.TeamTypeSupport, response.Type)
	})

	suite.T().Run("Duplicate", func(t *testing.T) {
		suite.mockService.EXPECT().Create(gomock.Any()).Return(nil, apperrors.ErrTeamExists)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/teams/", map[string]interface{}{"name": "North", "type": "sales"})

		testutils.AssertErrorResponse(t, recorder, http.StatusConflict, "team already exists")
	})

	suite.T().Run("Validation Error", func(t *testing.T) {
		suite.mockService.EXPECT().Create(gomock.Any()).
			Return(nil, fmt.Errorf("validation failed: %w", apperrors.NewValidationError("type", "must be sales or support")))

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/teams/", map[string]interface{}{"name": "North", "type": "marketing"})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Validation failed")
	})

	suite.T().Run("Invalid JSON", func(t *testing.T) {
		recorder := makeInvalidJSONRequest(suite.httpSuite.Router, "POST", "/api/v1/teams/")

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Invalid request body")
	})
}

func (suite *TeamHandlerTestSuite) TestGetTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		teamID := uuid.New()
		suite.mockService.EXPECT().GetByID(teamID).Return(&service.TeamResponse{ID: teamID, Name: "North"}, nil)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/teams/%s", teamID), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		var response service.TeamResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, teamID, response.ID)
	})

	suite.T().Run("Invalid ID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/teams/not-a-uuid", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Invalid team ID")
	})

	suite.T().Run("Not Found", func(t *testing.T) {
		teamID := uuid.New()
		suite.mockService.EXPECT().GetByID(teamID).Return(nil, apperrors.ErrTeamNotFound)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/teams/%s", teamID), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "team not found")
	})
}

func (suite *TeamHandlerTestSuite) TestListTeams() {
	suite.T().Run("Type Filter And Pagination", func(t *testing.T) {
		suite.mockService.EXPECT().GetAll("sales", 2, 10).Return(&service.TeamListResponse{
			Teams:    []service.TeamResponse{{ID: uuid.New(), Name: "Sales A", Type: models.TeamTypeSales}},
			Total:    11,
			Page:     2,
			PageSize: 10,
		}, nil)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/teams/?type=sales&page=2&page_size=10", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		var response service.TeamListResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, int64(11), response.Total)
		assert.Len(t, response.Teams, 1)
	})

	suite.T().Run("Invalid Type", func(t *testing.T) {
		suite.mockService.EXPECT().GetAll("marketing", 1, 20).Return(nil, apperrors.ErrInvalidTeamType)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/teams/?type=marketing", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid team type")
	})

	suite.T().Run("Unexpected Error", func(t *testing.T) {
		suite.mockService.EXPECT().GetAll("", 1, 20).Return(nil, fmt.Errorf("connection refused"))

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/teams/", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusInternalServerError, "Failed to list teams")
	})
}

func (suite *TeamHandlerTestSuite) TestUpdateTeam() {
	teamID := uuid.New()
	suite.mockService.EXPECT().
		Update(teamID, &service.UpdateTeamRequest{Name: "South", Type: "sales"}).
		Return(&service.TeamResponse{ID: teamID, Name: "South", Type: models.TeamTypeSales}, nil)

	recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/api/v1/teams/%s", teamID), map[string]interface{}{
		"name": "South",
		"type": "sales",
	})

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

func (suite *TeamHandlerTestSuite) TestDeleteTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		teamID := uuid.New()
		suite.mockService.EXPECT().Delete(teamID).Return(nil)

		recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/v1/teams/%s", teamID), nil)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	suite.T().Run("Not Found", func(t *testing.T) {
		teamID := uuid.New()
		suite.mockService.EXPECT().Delete(teamID).Return(apperrors.ErrTeamNotFound)

		recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/v1/teams/%s", teamID), nil)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func (suite *TeamHandlerTestSuite) TestGetTeamAgents() {
	teamID := uuid.New()
	suite.mockService.EXPECT().GetWithAgents(teamID).Return(&service.TeamWithAgentsResponse{
		TeamResponse: service.TeamResponse{ID: teamID, Name: "North"},
		Agents: []service.AgentResponse{
			{ID: uuid.New(), FullName: "Ewa Kowalska"},
			{ID: uuid.New(), FullName: "Piotr Zielinski"},
		},
	}, nil)

	recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/teams/%s/agents", teamID), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	var response service.TeamWithAgentsResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	suite.Require().Len(response.Agents, 2)
	assert.Equal(suite.T(), "Ewa Kowalska", response.Agents[0].FullName)
}

func (suite *TeamHandlerTestSuite) TestGetTeamCompanies() {
	teamID := uuid.New()
	suite.mockService.EXPECT().GetCompanies(teamID).Return([]service.CompanyResponse{{ID: uuid.New(), Name: "Bank Finanse"}}, nil)

	recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/teams/%s/companies", teamID), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	var response []service.CompanyResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response, 1)
}

func TestTeamHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TeamHandlerTestSuite))
}
