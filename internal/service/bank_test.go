package service_test

import (
	"testing"

	"lead-crm-backend/internal/database/models"
	apperrors "lead-crm-backend/internal/errors"
	"lead-crm-backend/internal/mocks"
	"lead-crm-backend/internal/service"
	"lead-crm-backend/internal/validation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type BankServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockBankRepo *mocks.MockBankRepositoryInterface
	bankService  *service.BankService
}

func (suite *BankServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockBankRepo = mocks.NewMockBankRepositoryInterface(suite.ctrl)
	suite.bankService = service.NewBankService(suite.mockBankRepo, validation.New())
}

func (suite *BankServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *BankServiceTestSuite) TestCreate_Success() {
	var stored *models.Bank
	suite.mockBankRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(b *models.Bank) error {
		b.ID = uuid.New()
		stored = b
		return nil
	})

	resp, err := suite.bankService.Create(&service.BankRequest{
		Name:         "Bank Polski",
		Headquarters: "Warszawa",
		Established:  "1919-02-07",
	})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), "Bank Polski", resp.Name)
	assert.Equal(suite.T(), "1919-02-07", resp.Established)
	suite.Require().NotNil(stored.Established)
	assert.Equal(suite.T(), 1919, stored.Established.Year())
}

func (suite *BankServiceTestSuite) TestCreate_Duplicate() {
	suite.mockBankRepo.EXPECT().Create(gomock.Any()).Return(errDuplicate)

	_, err := suite.bankService.Create(&service.BankRequest{Name: "Bank Polski", Headquarters: "Warszawa"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrBankExists)
}

func (suite *BankServiceTestSuite) TestGetByID_WithProducts() {
	bankID := uuid.New()
	rate := decimal.RequireFromString("6.50")
	suite.mockBankRepo.EXPECT().GetWithProducts(bankID).Return(&models.Bank{
		BaseModel: models.BaseModel{ID: bankID},
		Name:      "Bank Polski",
		Products: []models.BankProduct{
			{BaseModel: models.BaseModel{ID: uuid.New()}, BankID: bankID, ProductType: models.BankProductMortgageLoan, InterestRate: &rate},
		},
	}, nil)

	resp, err := suite.bankService.GetByID(bankID)

	suite.Require().NoError(err)
	suite.Require().Len(resp.Products, 1)
	assert.Equal(suite.T(), "Bank Polski", resp.Products[0].BankName)
	assert.True(suite.T(), rate.Equal(*resp.Products[0].InterestRate))
}

func (suite *BankServiceTestSuite) TestCreateProduct_BankNotFound() {
	bankID := uuid.New()
	suite.mockBankRepo.EXPECT().GetByID(bankID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.bankService.CreateProduct(&service.BankProductRequest{BankID: bankID, ProductType: "personal_loan"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrBankNotFound)
}

func (suite *BankServiceTestSuite) TestCreateProduct_RateOutOfRange() {
	rate := decimal.NewFromInt(120)

	resp, err := suite.bankService.CreateProduct(&service.BankProductRequest{
		BankID:       uuid.New(),
		ProductType:  "personal_loan",
		InterestRate: &rate,
	})

	assert.Nil(suite.T(), resp)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

func (suite *BankServiceTestSuite) TestListProducts_InvalidType() {
	_, err := suite.bankService.ListProducts(nil, "insurance", 1, 20)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidProductType)
}

func (suite *BankServiceTestSuite) TestListProducts_FilterByType() {
	card := models.BankProductCreditCard
	suite.mockBankRepo.EXPECT().ListProducts((*uuid.UUID)(nil), &card, 20, 0).
		Return([]models.BankProduct{{BaseModel: models.BaseModel{ID: uuid.New()}, ProductType: card}}, int64(1), nil)

	resp, err := suite.bankService.ListProducts(nil, "credit_card", 1, 20)

	suite.Require().NoError(err)
	assert.Len(suite.T(), resp.Products, 1)
}

func (suite *BankServiceTestSuite) TestDeleteProduct_NotFound() {
	id := uuid.New()
	suite.mockBankRepo.EXPECT().DeleteProduct(id).Return(gorm.ErrRecordNotFound)

	err := suite.bankService.DeleteProduct(id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrBankProductNotFound)
}

func TestBankServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BankServiceTestSuite))
}
