package service_test

import (
	"errors"
	"testing"
	"time"

	"lead-crm-backend/internal/database/models"
	apperrors "lead-crm-backend/internal/errors"
	"lead-crm-backend/internal/mocks"
	"lead-crm-backend/internal/repository"
	"lead-crm-backend/internal/service"
	"lead-crm-backend/internal/validation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type ClientServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockClientRepo *mocks.MockClientRepositoryInterface
	mockLeadRepo   *mocks.MockLeadRepositoryInterface
	clientService  *service.ClientService
}

func (suite *ClientServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockClientRepo = mocks.NewMockClientRepositoryInterface(suite.ctrl)
	suite.mockLeadRepo = mocks.NewMockLeadRepositoryInterface(suite.ctrl)
	suite.clientService = service.NewClientService(suite.mockClientRepo, suite.mockLeadRepo, validation.New())
}

func (suite *ClientServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func validProfile() service.ClientProfile {
	return service.ClientProfile{
		BirthDate:      "1988-04-12",
		Salary:         decimal.NewFromInt(8000),
		SourceOfIncome: "employment",
		EmploymentType: "open_ended_employment",
		Liabilities:    decimal.NewFromInt(500),
		LivingExpenses: decimal.NewFromInt(2500),
		RatePerMonth:   decimal.NewFromInt(700),
	}
}

func validClientRequest() *service.CreateClientRequest {
	return &service.CreateClientRequest{
		FirstName:     "Ewa",
		LastName:      "Nowak",
		Email:         "ewa.nowak@example.com",
		PhoneNumber:   "+48 600 700 800",
		ClientProfile: validProfile(),
	}
}

func storedClient(processed *time.Time) *models.Client {
	return &models.Client{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		FirstName:      "Ewa",
		LastName:       "Nowak",
		BirthDate:      time.Date(1988, 4, 12, 0, 0, 0, 0, time.UTC),
		Salary:         decimal.NewFromInt(8000),
		SourceOfIncome: models.IncomeEmployment,
		Liabilities:    decimal.NewFromInt(500),
		LivingExpenses: decimal.NewFromInt(2500),
		RatePerMonth:   decimal.NewFromInt(700),
		ProcessingDate: processed,
	}
}

func (suite *ClientServiceTestSuite) TestCreate_Success() {
	var stored *models.Client
	suite.mockClientRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(c *models.Client) error {
		c.ID = uuid.New()
		stored = c
		return nil
	})

	resp, err := suite.clientService.Create(validClientRequest())

	suite.Require().NoError(err)
	assert.Equal(suite.T(), "1988-04-12", stored.BirthDate.Format("2006-01-02"))
	assert.Equal(suite.T(), models.IncomeEmployment, stored.SourceOfIncome)
	assert.True(suite.T(), decimal.NewFromInt(6800).Equal(resp.NetIncome))
	assert.Equal(suite.T(), "1988-04-12", resp.BirthDate)
}

func (suite *ClientServiceTestSuite) TestCreate_ValidationErrors() {
	tests := []struct {
		name   string
		mutate func(r *service.CreateClientRequest)
	}{
		{"zero salary", func(r *service.CreateClientRequest) { r.Salary = decimal.Zero }},
		{"negative liabilities", func(r *service.CreateClientRequest) { r.Liabilities = decimal.NewFromInt(-1) }},
		{"unknown source of income", func(r *service.CreateClientRequest) { r.SourceOfIncome = "lottery" }},
		{"bad birth date", func(r *service.CreateClientRequest) { r.BirthDate = "12.04.1988" }},
		{"bad email", func(r *service.CreateClientRequest) { r.Email = "not-an-email" }},
	}
	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			req := validClientRequest()
			tt.mutate(req)

			resp, err := suite.clientService.Create(req)

			assert.Nil(t, resp)
			assert.Contains(t, err.Error(), "validation failed")
		})
	}
}

func (suite *ClientServiceTestSuite) TestCreate_EmploymentDatesOutOfOrder() {
	req := validClientRequest()
	req.EmploymentStartDate = "2020-05-01"
	req.EmploymentEndDate = "2019-05-01"

	_, err := suite.clientService.Create(req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrEmploymentDatesOutOfOrder)
}

func (suite *ClientServiceTestSuite) TestCreate_Duplicate() {
	suite.mockClientRepo.EXPECT().Create(gomock.Any()).Return(errDuplicate)

	_, err := suite.clientService.Create(validClientRequest())

	assert.ErrorIs(suite.T(), err, apperrors.ErrClientExists)
}

func (suite *ClientServiceTestSuite) TestCreateFromLead_NewClient() {
	leadID, teamID, agentID := uuid.New(), uuid.New(), uuid.New()
	email := "anna@example.com"
	lead := &models.Lead{
		BaseModel:   models.BaseModel{ID: leadID},
		FirstName:   "Anna",
		PhoneNumber: "+48 500 600 700",
		Email:       &email,
		TeamID:      &teamID,
		AgentID:     &agentID,
	}
	suite.mockLeadRepo.EXPECT().GetByID(leadID).Return(lead, nil)
	suite.mockClientRepo.EXPECT().GetByPhone("+48 500 600 700").Return(nil, gorm.ErrRecordNotFound)

	var stored *models.Client
	suite.mockClientRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(c *models.Client) error {
		c.ID = uuid.New()
		stored = c
		return nil
	})

	resp, created, err := suite.clientService.CreateFromLead(leadID, &service.ConvertLeadRequest{
		LastName:      "Wisniewska",
		ClientProfile: validProfile(),
	})

	suite.Require().NoError(err)
	assert.True(suite.T(), created)
	assert.Equal(suite.T(), "Anna", stored.FirstName)
	assert.Equal(suite.T(), email, stored.Email)
	assert.Equal(suite.T(), &teamID, stored.TeamID)
	assert.Equal(suite.T(), &agentID, stored.AgentID)
	assert.Equal(suite.T(), &leadID, resp.LeadID)
}

func (suite *ClientServiceTestSuite) TestCreateFromLead_ExistingPhoneReturnsClient() {
	leadID := uuid.New()
	lead := &models.Lead{BaseModel: models.BaseModel{ID: leadID}, FirstName: "Anna", PhoneNumber: "+48 500 600 700"}
	existing := storedClient(nil)
	suite.mockLeadRepo.EXPECT().GetByID(leadID).Return(lead, nil)
	suite.mockClientRepo.EXPECT().GetByPhone(lead.PhoneNumber).Return(existing, nil)

	resp, created, err := suite.clientService.CreateFromLead(leadID, &service.ConvertLeadRequest{})

	suite.Require().NoError(err)
	assert.False(suite.T(), created)
	assert.Equal(suite.T(), existing.ID, resp.ID)
}

func (suite *ClientServiceTestSuite) TestCreateFromLead_NoEmail() {
	leadID := uuid.New()
	lead := &models.Lead{BaseModel: models.BaseModel{ID: leadID}, FirstName: "Anna", PhoneNumber: "+48 500 600 700"}
	suite.mockLeadRepo.EXPECT().GetByID(leadID).Return(lead, nil)
	suite.mockClientRepo.EXPECT().GetByPhone(lead.PhoneNumber).Return(nil, gorm.ErrRecordNotFound)

	_, _, err := suite.clientService.CreateFromLead(leadID, &service.ConvertLeadRequest{
		LastName:      "Wisniewska",
		ClientProfile: validProfile(),
	})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *ClientServiceTestSuite) TestCreateFromLead_LeadNotFound() {
	leadID := uuid.New()
	suite.mockLeadRepo.EXPECT().GetByID(leadID).Return(nil, gorm.ErrRecordNotFound)

	_, _, err := suite.clientService.CreateFromLead(leadID, &service.ConvertLeadRequest{})

	assert.ErrorIs(suite.T(), err, apperrors.ErrLeadNotFound)
}

func (suite *ClientServiceTestSuite) TestGetAll_PassesOwnerFilter() {
	teamID := uuid.New()
	suite.mockClientRepo.EXPECT().List(repository.ClientFilter{TeamID: &teamID}, 20, 0).
		Return([]models.Client{*storedClient(nil)}, int64(1), nil)

	resp, err := suite.clientService.GetAll(&service.ListClientsQuery{TeamID: &teamID, Page: 1, PageSize: 20})

	suite.Require().NoError(err)
	assert.Len(suite.T(), resp.Clients, 1)
	assert.Equal(suite.T(), int64(1), resp.Total)
}

func (suite *ClientServiceTestSuite) TestDelete_NotFound() {
	id := uuid.New()
	suite.mockClientRepo.EXPECT().Delete(id).Return(gorm.ErrRecordNotFound)

	err := suite.clientService.Delete(id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrClientNotFound)
}

func (suite *ClientServiceTestSuite) TestProcessCreditworthiness_FirstTime() {
	client := storedClient(nil)
	suite.mockClientRepo.EXPECT().GetByID(client.ID).Return(client, nil)
	suite.mockClientRepo.EXPECT().Update(client).Return(nil)

	resp, err := suite.clientService.ProcessCreditworthiness(client.ID)

	suite.Require().NoError(err)
	// (8000 - 500 - 700 - 2500) * 12
	assert.True(suite.T(), decimal.NewFromInt(51600).Equal(resp.Creditworthiness), resp.Creditworthiness.String())
	assert.NotEmpty(suite.T(), resp.ProcessingDate)
	assert.NotNil(suite.T(), client.ProcessingDate)
}

func (suite *ClientServiceTestSuite) TestProcessCreditworthiness_TooSoon() {
	processed := time.Now().Add(-48 * time.Hour)
	client := storedClient(&processed)
	suite.mockClientRepo.EXPECT().GetByID(client.ID).Return(client, nil)

	_, err := suite.clientService.ProcessCreditworthiness(client.ID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrClientProcessedRecently)
	assert.True(suite.T(), apperrors.IsRuleViolation(err))
}

func (suite *ClientServiceTestSuite) TestProcessCreditworthiness_AfterInterval() {
	processed := time.Now().Add(-16 * 24 * time.Hour)
	client := storedClient(&processed)
	suite.mockClientRepo.EXPECT().GetByID(client.ID).Return(client, nil)
	suite.mockClientRepo.EXPECT().Update(client).Return(nil)

	_, err := suite.clientService.ProcessCreditworthiness(client.ID)

	suite.Require().NoError(err)
	assert.True(suite.T(), client.ProcessingDate.After(processed))
}

func (suite *ClientServiceTestSuite) TestProcessCreditworthiness_UpdateError() {
	client := storedClient(nil)
	suite.mockClientRepo.EXPECT().GetByID(client.ID).Return(client, nil)
	suite.mockClientRepo.EXPECT().Update(client).Return(errors.New("connection reset"))

	_, err := suite.clientService.ProcessCreditworthiness(client.ID)

	assert.Contains(suite.T(), err.Error(), "failed to update client")
}

func TestClientServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ClientServiceTestSuite))
}
