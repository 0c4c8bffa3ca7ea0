package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"lead-crm-backend/internal/api/handlers"
	apperrors "lead-crm-backend/internal/errors"
	"lead-crm-backend/internal/mocks"
	"lead-crm-backend/internal/service"
	"lead-crm-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ClientHandlerTestSuite defines the test suite for ClientHandler
type ClientHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockClientServiceInterface
	handler     *handlers.ClientHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *ClientHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockClientServiceInterface(suite.ctrl)
	suite.handler = handlers.NewClientHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	v1 := suite.httpSuite.Router.Group("/api/v1")
	clients := v1.Group("/clients")
	{
		clients.POST("/", suite.handler.CreateClient)
		clients.GET("/", suite.handler.ListClients)
		clients.GET("/:id", suite.handler.GetClient)
		clients.PUT("/:id", suite.handler.UpdateClient)
		clients.DELETE("/:id", suite.handler.DeleteClient)
		clients.POST("/:id/process", suite.handler.ProcessClient)
	}
	v1.POST("/leads/:id/client", suite.handler.ConvertLead)
}

// TearDownTest cleans up after each test
func (suite *ClientHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func clientBody() map[string]interface{} {
	return map[string]interface{}{
		"first_name":       "Ewa",
		"last_name":        "Nowak",
		"email":            "ewa.nowak@example.com",
		"phone_number":     "+48 600 700 800",
		"birth_date":       "1988-04-12",
		"salary":           "8000.00",
		"source_of_income": "employment",
		"liabilities":      500,
		"living_expenses":  "2500",
		"rate_per_month":   700,
	}
}

func (suite *ClientHandlerTestSuite) TestCreateClient() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().Create(gomock.Any()).
			DoAndReturn(func(req *service.CreateClientRequest) (*service.ClientResponse, error) {
				assert.True(t, decimal.RequireFromString("8000").Equal(req.Salary))
				assert.True(t, decimal.NewFromInt(500).Equal(req.Liabilities))
				assert.Equal(t, "1988-04-12", req.BirthDate)
				return &service.ClientResponse{ID: uuid.New(), FirstName: req.FirstName, Salary: req.Salary}, nil
			})

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/clients/", clientBody())

		assert.Equal(t, http.StatusCreated, recorder.Code)
		var response service.ClientResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, "Ewa", response.FirstName)
		assert.True(t, decimal.NewFromInt(8000).Equal(response.Salary))
	})

	suite.T().Run("Duplicate", func(t *testing.T) {
		suite.mockService.EXPECT().Create(gomock.Any()).Return(nil, apperrors.ErrClientExists)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/clients/", clientBody())

		testutils.AssertErrorResponse(t, recorder, http.StatusConflict, "client already exists with this email or phone number")
	})

	suite.T().Run("Invalid JSON", func(t *testing.T) {
		recorder := makeInvalidJSONRequest(suite.httpSuite.Router, "POST", "/api/v1/clients/")

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Invalid request body")
	})
}

func (suite *ClientHandlerTestSuite) TestConvertLead() {
	body := map[string]interface{}{
		"last_name":        "Wisniewska",
		"birth_date":       "1990-01-01",
		"salary":           6000,
		"source_of_income": "business",
		"living_expenses":  2000,
	}

	suite.T().Run("Created", func(t *testing.T) {
		leadID := uuid.New()
		suite.mockService.EXPECT().CreateFromLead(leadID, gomock.Any()).
			Return(&service.ClientResponse{ID: uuid.New(), LeadID: &leadID}, true, nil)

		recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/v1/leads/%s/client", leadID), body)

		assert.Equal(t, http.StatusCreated, recorder.Code)
	})

	suite.T().Run("Existing Client", func(t *testing.T) {
		leadID := uuid.New()
		suite.mockService.EXPECT().CreateFromLead(leadID, gomock.Any()).
			Return(&service.ClientResponse{ID: uuid.New()}, false, nil)

		recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/v1/leads/%s/client", leadID), body)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Lead Not Found", func(t *testing.T) {
		leadID := uuid.New()
		suite.mockService.EXPECT().CreateFromLead(leadID, gomock.Any()).Return(nil, false, apperrors.ErrLeadNotFound)

		recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/v1/leads/%s/client", leadID), body)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "lead not found")
	})
}

func (suite *ClientHandlerTestSuite) TestListClients() {
	suite.T().Run("Team Filter", func(t *testing.T) {
		teamID := uuid.New()
		suite.mockService.EXPECT().GetAll(&service.ListClientsQuery{TeamID: &teamID, Page: 1, PageSize: 20}).
			Return(&service.ClientListResponse{Clients: []service.ClientResponse{{ID: uuid.New()}}, Total: 1, Page: 1, PageSize: 20}, nil)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/clients/?team_id="+teamID.String(), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		var response service.ClientListResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Len(t, response.Clients, 1)
	})

	suite.T().Run("Invalid Agent ID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/clients/?agent_id=nope", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Invalid agent_id")
	})
}

func (suite *ClientHandlerTestSuite) TestDeleteClient() {
	suite.T().Run("Success", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().Delete(id).Return(nil)

		recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/v1/clients/%s", id), nil)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	suite.T().Run("Not Found", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().Delete(id).Return(apperrors.ErrClientNotFound)

		recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/v1/clients/%s", id), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "client not found")
	})
}

func (suite *ClientHandlerTestSuite) TestProcessClient() {
	suite.T().Run("Success", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().ProcessCreditworthiness(id).
			Return(&service.ClientResponse{ID: id, Creditworthiness: decimal.NewFromInt(51600)}, nil)

		recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/v1/clients/%s/process", id), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		var response service.ClientResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.True(t, decimal.NewFromInt(51600).Equal(response.Creditworthiness))
	})

	suite.T().Run("Processed Recently", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().ProcessCreditworthiness(id).Return(nil, apperrors.ErrClientProcessedRecently)

		recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/v1/clients/%s/process", id), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusUnprocessableEntity, "client creditworthiness was processed less than 15 days ago")
	})
}

// TestClientHandlerTestSuite runs the test suite
func TestClientHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ClientHandlerTestSuite))
}
