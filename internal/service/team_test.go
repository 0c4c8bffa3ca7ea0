package service_test

import (
	"errors"
	"testing"

	"lead-crm-backend/internal/database/models"
	apperrors "lead-crm-backend/internal/errors"
	"lead-crm-backend/internal/mocks"
	"lead-crm-backend/internal/service"
	"lead-crm-backend/internal/validation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type TeamServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockTeamRepo *mocks.MockTeamRepositoryInterface
	teamService  *service.TeamService
}

func (suite *TeamServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTeamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.teamService = service.NewTeamService(suite.mockTeamRepo, validation.New())
}

func (suite *TeamServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TeamServiceTestSuite) TestCreate_Success() {
	suite.mockTeamRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(t *models.Team) error {
		t.ID = uuid.New()
		t.Slug = "sst-north"
		return nil
	})

	resp, err := suite.teamService.Create(&service.CreateTeamRequest{Name: "North", Type: "support"})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), "North", resp.Name)
	assert.Equal(suite.T(), models.TeamTypeSupport, resp.Type)
	assert.Equal(suite.T(), "sst-north", resp.Slug)
}

func (suite *TeamServiceTestSuite) TestCreate_InvalidType() {
	resp, err := suite.teamService.Create(&service.CreateTeamRequest{Name: "North", Type: "marketing"})

	assert.Nil(suite.T(), resp)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

func (suite *TeamServiceTestSuite) TestCreate_Duplicate() {
	suite.mockTeamRepo.EXPECT().Create(gomock.Any()).Return(errDuplicate)

	_, err := suite.teamService.Create(&service.CreateTeamRequest{Name: "North", Type: "sales"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrTeamExists)
}

func (suite *TeamServiceTestSuite) TestGetByID_NotFound() {
	id := uuid.New()
	suite.mockTeamRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.teamService.GetByID(id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrTeamNotFound)
}

func (suite *TeamServiceTestSuite) TestGetAll_FilterByType() {
	sales := models.TeamTypeSales
	suite.mockTeamRepo.EXPECT().GetAll(&sales, 20, 0).Return([]models.Team{
		{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Sales A", Type: models.TeamTypeSales},
	}, int64(1), nil)

	resp, err := suite.teamService.GetAll("sales", 1, 20)

	suite.Require().NoError(err)
	assert.Len(suite.T(), resp.Teams, 1)
	assert.Equal(suite.T(), int64(1), resp.Total)
}

func (suite *TeamServiceTestSuite) TestGetAll_NoFilter() {
	suite.mockTeamRepo.EXPECT().GetAll((*models.TeamType)(nil), 20, 0).Return([]models.Team{}, int64(0), nil)

	resp, err := suite.teamService.GetAll("", 0, 500)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), 20, resp.PageSize)
}

func (suite *TeamServiceTestSuite) TestGetAll_InvalidType() {
	_, err := suite.teamService.GetAll("marketing", 1, 20)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidTeamType)
}

func (suite *TeamServiceTestSuite) TestUpdate_Success() {
	id := uuid.New()
	team := &models.Team{BaseModel: models.BaseModel{ID: id}, Name: "Old", Type: models.TeamTypeSales}
	suite.mockTeamRepo.EXPECT().GetByID(id).Return(team, nil)
	suite.mockTeamRepo.EXPECT().Update(team).Return(nil)

	resp, err := suite.teamService.Update(id, &service.UpdateTeamRequest{Name: "New", Type: "support"})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), "New", resp.Name)
	assert.Equal(suite.T(), models.TeamTypeSupport, resp.Type)
}

func (suite *TeamServiceTestSuite) TestDelete() {
	id := uuid.New()
	suite.mockTeamRepo.EXPECT().GetByID(id).Return(&models.Team{BaseModel: models.BaseModel{ID: id}}, nil)
	suite.mockTeamRepo.EXPECT().Delete(id).Return(errors.New("db down"))

	err := suite.teamService.Delete(id)

	assert.Contains(suite.T(), err.Error(), "failed to delete team")
}

func (suite *TeamServiceTestSuite) TestGetWithAgents() {
	id := uuid.New()
	suite.mockTeamRepo.EXPECT().GetWithAgents(id).Return(&models.Team{
		BaseModel: models.BaseModel{ID: id},
		Name:      "North",
		Agents: []models.Agent{
			{BaseModel: models.BaseModel{ID: uuid.New()}, FirstName: "Ewa", LastName: "Kowalska", TeamID: &id},
			{BaseModel: models.BaseModel{ID: uuid.New()}, FirstName: "Piotr", LastName: "Zielinski", TeamID: &id},
		},
	}, nil)

	resp, err := suite.teamService.GetWithAgents(id)

	suite.Require().NoError(err)
	suite.Require().Len(resp.Agents, 2)
	assert.Equal(suite.T(), "Ewa Kowalska", resp.Agents[0].FullName)
}

func (suite *TeamServiceTestSuite) TestGetCompanies() {
	id := uuid.New()
	suite.mockTeamRepo.EXPECT().GetByID(id).Return(&models.Team{BaseModel: models.BaseModel{ID: id}}, nil)
	suite.mockTeamRepo.EXPECT().GetCompanies(id).Return([]models.Company{
		{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Bank Finanse"},
	}, nil)

	resp, err := suite.teamService.GetCompanies(id)

	suite.Require().NoError(err)
	suite.Require().Len(resp, 1)
	assert.Equal(suite.T(), "Bank Finanse", resp[0].Name)
}

func TestTeamServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TeamServiceTestSuite))
}
