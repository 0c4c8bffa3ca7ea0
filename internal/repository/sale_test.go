//go:build integration
// +build integration

package repository

import (
	"testing"

	"lead-crm-backend/internal/database/models"
	"lead-crm-backend/internal/testutils"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// SaleRepositoryTestSuite tests the SaleRepository and BankRepository
type SaleRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *SaleRepository
	bankRepo      *BankRepository
	clientRepo    *ClientRepository
	teamRepo      *TeamRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *SaleRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewSaleRepository(suite.baseTestSuite.DB)
	suite.bankRepo = NewBankRepository(suite.baseTestSuite.DB)
	suite.clientRepo = NewClientRepository(suite.baseTestSuite.DB)
	suite.teamRepo = NewTeamRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *SaleRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *SaleRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *SaleRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *SaleRepositoryTestSuite) createProduct(productType models.BankProductType, rate string) *models.BankProduct {
	bank := suite.factories.Bank.Create()
	suite.Require().NoError(suite.bankRepo.Create(bank))
	product := suite.factories.Bank.Product(bank.ID, productType, rate)
	suite.Require().NoError(suite.bankRepo.CreateProduct(product))
	return product
}

// TestBankProducts tests listing products by bank and type
func (suite *SaleRepositoryTestSuite) TestBankProducts() {
	bank := suite.factories.Bank.Create()
	suite.NoError(suite.bankRepo.Create(bank))
	suite.NoError(suite.bankRepo.CreateProduct(suite.factories.Bank.Product(bank.ID, models.BankProductMortgageLoan, "6.5")))
	suite.NoError(suite.bankRepo.CreateProduct(suite.factories.Bank.Product(bank.ID, models.BankProductCreditCard, "19.99")))
	suite.createProduct(models.BankProductMortgageLoan, "7")

	loaded, err := suite.bankRepo.GetWithProducts(bank.ID)
	suite.NoError(err)
	suite.Len(loaded.Products, 2)

	_, total, err := suite.bankRepo.ListProducts(&bank.ID, nil, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)

	mortgage := models.BankProductMortgageLoan
	products, total, err := suite.bankRepo.ListProducts(nil, &mortgage, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.NotNil(products[0].Bank)
}

// TestDeleteBankCascades tests that deleting a bank removes its products
func (suite *SaleRepositoryTestSuite) TestDeleteBankCascades() {
	product := suite.createProduct(models.BankProductPersonalLoan, "9")

	suite.NoError(suite.bankRepo.Delete(product.BankID))

	_, err := suite.bankRepo.GetProduct(product.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestListByClientOwner tests filtering sales through the owning client
func (suite *SaleRepositoryTestSuite) TestListByClientOwner() {
	product := suite.createProduct(models.BankProductPersonalLoan, "8")
	team := suite.factories.Team.WithType(models.TeamTypeSales)
	suite.NoError(suite.teamRepo.Create(team))

	owned := suite.factories.Client.WithOwner(&team.ID, nil)
	suite.NoError(suite.clientRepo.Create(owned))
	other := suite.factories.Client.Create()
	suite.NoError(suite.clientRepo.Create(other))

	suite.NoError(suite.repo.Create(suite.factories.Sale.Create(owned.ID, product.ID)))
	approved := suite.factories.Sale.Create(owned.ID, product.ID)
	approved.Status = models.SaleStatusApproved
	suite.NoError(suite.repo.Create(approved))
	suite.NoError(suite.repo.Create(suite.factories.Sale.Create(other.ID, product.ID)))

	_, total, err := suite.repo.List(SaleFilter{TeamID: &team.ID}, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)

	status := models.SaleStatusApproved
	sales, total, err := suite.repo.List(SaleFilter{TeamID: &team.ID, Status: &status}, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal(approved.ID, sales[0].ID)

	_, total, err = suite.repo.List(SaleFilter{ClientID: &other.ID}, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
}

// TestDeleteClientCascadesSales tests that a client's sales go with it
func (suite *SaleRepositoryTestSuite) TestDeleteClientCascadesSales() {
	product := suite.createProduct(models.BankProductPersonalLoan, "8")
	client := suite.factories.Client.Create()
	suite.NoError(suite.clientRepo.Create(client))
	sale := suite.factories.Sale.Create(client.ID, product.ID)
	suite.NoError(suite.repo.Create(sale))

	suite.NoError(suite.clientRepo.Delete(client.ID))

	_, err := suite.repo.GetByID(sale.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestCalculationIsUniquePerQuote tests the unique index on stored quotes
func (suite *SaleRepositoryTestSuite) TestCalculationIsUniquePerQuote() {
	product := suite.createProduct(models.BankProductMortgageLoan, "6")
	client := suite.factories.Client.Create()
	suite.NoError(suite.clientRepo.Create(client))

	quote := func(amount string, years int) *models.Calculation {
		return &models.Calculation{
			ClientID:      client.ID,
			BankProductID: product.ID,
			Amount:        decimal.RequireFromString(amount),
			DurationYears: years,
			Rate:          decimal.RequireFromString("599.55"),
		}
	}

	suite.NoError(suite.repo.CreateCalculation(quote("100000", 30)))
	suite.NoError(suite.repo.CreateCalculation(quote("100000", 25)))
	suite.Error(suite.repo.CreateCalculation(quote("100000", 30)))

	calculations, err := suite.repo.ListCalculations(client.ID)
	suite.NoError(err)
	suite.Require().Len(calculations, 2)
	suite.NotNil(calculations[0].BankProduct)
}

// TestSaleRepositoryTestSuite runs the test suite
func TestSaleRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SaleRepositoryTestSuite))
}
