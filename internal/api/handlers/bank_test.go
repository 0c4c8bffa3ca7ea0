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

// BankHandlerTestSuite defines the test suite for BankHandler
type BankHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockBankServiceInterface
	handler     *handlers.BankHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *BankHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockBankServiceInterface(suite.ctrl)
	suite.handler = handlers.NewBankHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	v1 := suite.httpSuite.Router.Group("/api/v1")
	banks := v1.Group("/banks")
	{
		banks.POST("/", suite.handler.CreateBank)
		banks.GET("/", suite.handler.ListBanks)
		banks.GET("/:id", suite.handler.GetBank)
		banks.PUT("/:id", suite.handler.UpdateBank)
		banks.DELETE("/:id", suite.handler.DeleteBank)
	}
	products := v1.Group("/bank-products")
	{
		products.POST("/", suite.handler.CreateProduct)
		products.GET("/", suite.handler.ListProducts)
		products.GET("/:id", suite.handler.GetProduct)
		products.PUT("/:id", suite.handler.UpdateProduct)
		products.DELETE("/:id", suite.handler.DeleteProduct)
	}
}

// TearDownTest cleans up after each test
func (suite *BankHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *BankHandlerTestSuite) TestCreateBank() {
	suite.T().Run("Success", func(t *testing.T) {
		req := &service.BankRequest{Name: "Bank Polski", Headquarters: "Warszawa"}
		suite.mockService.EXPECT().Create(req).Return(&service.BankResponse{ID: uuid.New(), Name: "Bank Polski"}, nil)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/banks/", map[string]interface{}{
			"name":         "Bank Polski",
			"headquarters": "Warszawa",
		})

		assert.Equal(t, http.StatusCreated, recorder.Code)
	})

	suite.T().Run("Duplicate", func(t *testing.T) {
		suite.mockService.EXPECT().Create(gomock.Any()).Return(nil, apperrors.ErrBankExists)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/banks/", map[string]interface{}{"name": "Bank Polski", "headquarters": "Warszawa"})

		testutils.AssertErrorResponse(t, recorder, http.StatusConflict, "bank already exists")
	})
}

func (suite *BankHandlerTestSuite) TestGetBank() {
	suite.T().Run("With Products", func(t *testing.T) {
		bankID := uuid.New()
		rate := decimal.RequireFromString("6.5")
		suite.mockService.EXPECT().GetByID(bankID).Return(&service.BankWithProductsResponse{
			BankResponse: service.BankResponse{ID: bankID, Name: "Bank Polski"},
			Products:     []service.BankProductResponse{{ID: uuid.New(), BankID: bankID, ProductType: "mortgage_loan", InterestRate: &rate}},
		}, nil)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/banks/%s", bankID), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		var response service.BankWithProductsResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, "Bank Polski", response.Name)
		assert.Len(t, response.Products, 1)
	})

	suite.T().Run("Invalid ID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/banks/not-a-uuid", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Invalid bank ID")
	})
}

func (suite *BankHandlerTestSuite) TestListProducts() {
	suite.T().Run("Bank And Type Filter", func(t *testing.T) {
		bankID := uuid.New()
		suite.mockService.EXPECT().ListProducts(&bankID, "credit_card", 1, 20).
			Return(&service.BankProductListResponse{Products: []service.BankProductResponse{}, Page: 1, PageSize: 20}, nil)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/bank-products/?bank_id=%s&type=credit_card", bankID), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Invalid Type", func(t *testing.T) {
		suite.mockService.EXPECT().ListProducts((*uuid.UUID)(nil), "insurance", 1, 20).Return(nil, apperrors.ErrInvalidProductType)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/bank-products/?type=insurance", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid bank product type")
	})
}

func (suite *BankHandlerTestSuite) TestDeleteProduct() {
	suite.T().Run("Success", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().DeleteProduct(id).Return(nil)

		recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/v1/bank-products/%s", id), nil)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	suite.T().Run("Not Found", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().DeleteProduct(id).Return(apperrors.ErrBankProductNotFound)

		recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/v1/bank-products/%s", id), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "bank product not found")
	})
}

// TestBankHandlerTestSuite runs the test suite
func TestBankHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(BankHandlerTestSuite))
}
