package service_test

import (
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

type AgentServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockAgentRepo *mocks.MockAgentRepositoryInterface
	mockTeamRepo  *mocks.MockTeamRepositoryInterface
	agentService  *service.AgentService
}

func (suite *AgentServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAgentRepo = mocks.NewMockAgentRepositoryInterface(suite.ctrl)
	suite.mockTeamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.agentService = service.NewAgentService(suite.mockAgentRepo, suite.mockTeamRepo, validation.New())
}

func (suite *AgentServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func companyWithID(id uuid.UUID, name string) models.Company {
	return models.Company{BaseModel: models.BaseModel{ID: id}, Name: name}
}

func (suite *AgentServiceTestSuite) createRequest(teamID *uuid.UUID) *service.CreateAgentRequest {
	return &service.CreateAgentRequest{
		FirstName:   "Ewa",
		LastName:    "Kowalska",
		Email:       "ewa.kowalska@example.com",
		PhoneNumber: "+48 600 100 200",
		Role:        "support",
		TeamID:      teamID,
	}
}

func (suite *AgentServiceTestSuite) TestCreate_Success() {
	teamID := uuid.New()
	suite.mockTeamRepo.EXPECT().GetByID(teamID).Return(&models.Team{BaseModel: models.BaseModel{ID: teamID}}, nil)
	suite.mockAgentRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(a *models.Agent) error {
		a.ID = uuid.New()
		return nil
	})

	resp, err := suite.agentService.Create(suite.createRequest(&teamID))

	suite.Require().NoError(err)
	assert.Equal(suite.T(), "Ewa Kowalska", resp.FullName)
	assert.Equal(suite.T(), models.AgentRoleSupport, resp.Role)
	assert.Equal(suite.T(), &teamID, resp.TeamID)
}

func (suite *AgentServiceTestSuite) TestCreate_WithoutTeam() {
	suite.mockAgentRepo.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := suite.agentService.Create(suite.createRequest(nil))

	suite.Require().NoError(err)
	assert.Nil(suite.T(), resp.TeamID)
}

func (suite *AgentServiceTestSuite) TestCreate_TeamNotFound() {
	teamID := uuid.New()
	suite.mockTeamRepo.EXPECT().GetByID(teamID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.agentService.Create(suite.createRequest(&teamID))

	assert.ErrorIs(suite.T(), err, apperrors.ErrTeamNotFound)
}

func (suite *AgentServiceTestSuite) TestCreate_DuplicateEmail() {
	suite.mockAgentRepo.EXPECT().Create(gomock.Any()).Return(errDuplicate)

	_, err := suite.agentService.Create(suite.createRequest(nil))

	assert.ErrorIs(suite.T(), err, apperrors.ErrAgentExists)
}

func (suite *AgentServiceTestSuite) TestCreate_ValidationError() {
	req := suite.createRequest(nil)
	req.Email = "not-an-email"
	req.Role = "manager"

	_, err := suite.agentService.Create(req)

	assert.Contains(suite.T(), err.Error(), "validation failed")
}

func (suite *AgentServiceTestSuite) TestGetByID_IncludesCompaniesAndTeam() {
	id, teamID := uuid.New(), uuid.New()
	suite.mockAgentRepo.EXPECT().GetWithCompanies(id).Return(&models.Agent{
		BaseModel: models.BaseModel{ID: id},
		FirstName: "Ewa",
		LastName:  "Kowalska",
		TeamID:    &teamID,
		Team:      &models.Team{BaseModel: models.BaseModel{ID: teamID}, Name: "North"},
		Companies: []models.Company{companyWithID(uuid.New(), "Bank Finanse")},
	}, nil)

	resp, err := suite.agentService.GetByID(id)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), "North", resp.TeamName)
	suite.Require().Len(resp.Companies, 1)
	assert.Equal(suite.T(), "Bank Finanse", resp.Companies[0].Name)
}

func (suite *AgentServiceTestSuite) TestGetByID_NotFound() {
	id := uuid.New()
	suite.mockAgentRepo.EXPECT().GetWithCompanies(id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.agentService.GetByID(id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrAgentNotFound)
}

func (suite *AgentServiceTestSuite) TestUpdate_TeamChangeDropsCompanyLinks() {
	id, oldTeam, newTeam := uuid.New(), uuid.New(), uuid.New()
	c1, c2 := uuid.New(), uuid.New()
	agent := &models.Agent{
		BaseModel: models.BaseModel{ID: id},
		TeamID:    &oldTeam,
		Companies: []models.Company{companyWithID(c1, "A"), companyWithID(c2, "B")},
	}

	suite.mockAgentRepo.EXPECT().GetWithCompanies(id).Return(agent, nil)
	suite.mockTeamRepo.EXPECT().GetByID(newTeam).Return(&models.Team{BaseModel: models.BaseModel{ID: newTeam}}, nil)
	suite.mockAgentRepo.EXPECT().Update(agent).Return(nil)
	suite.mockAgentRepo.EXPECT().RemoveCompanies(id, []uuid.UUID{c1, c2}).Return(nil)

	req := &service.UpdateAgentRequest{
		FirstName: "Ewa",
		LastName:  "Kowalska",
		Email:     "ewa@example.com",
		Role:      "sales",
		TeamID:    &newTeam,
	}
	resp, err := suite.agentService.Update(id, req)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), &newTeam, resp.TeamID)
	assert.Equal(suite.T(), models.AgentRoleSales, resp.Role)
}

func (suite *AgentServiceTestSuite) TestUpdate_SameTeamKeepsCompanyLinks() {
	id, teamID := uuid.New(), uuid.New()
	sameTeam := teamID
	agent := &models.Agent{
		BaseModel: models.BaseModel{ID: id},
		TeamID:    &teamID,
		Companies: []models.Company{companyWithID(uuid.New(), "A")},
	}

	suite.mockAgentRepo.EXPECT().GetWithCompanies(id).Return(agent, nil)
	suite.mockTeamRepo.EXPECT().GetByID(sameTeam).Return(&models.Team{BaseModel: models.BaseModel{ID: sameTeam}}, nil)
	suite.mockAgentRepo.EXPECT().Update(agent).Return(nil)

	req := &service.UpdateAgentRequest{FirstName: "Ewa", LastName: "Nowak", Email: "ewa@example.com", Role: "support", TeamID: &sameTeam}
	resp, err := suite.agentService.Update(id, req)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), "Ewa Nowak", resp.FullName)
}

func (suite *AgentServiceTestSuite) TestAssignCompanies_Success() {
	id, teamID, served := uuid.New(), uuid.New(), uuid.New()
	agent := &models.Agent{BaseModel: models.BaseModel{ID: id}, TeamID: &teamID}
	linked := &models.Agent{BaseModel: models.BaseModel{ID: id}, TeamID: &teamID, Companies: []models.Company{companyWithID(served, "A")}}

	gomock.InOrder(
		suite.mockAgentRepo.EXPECT().GetWithCompanies(id).Return(agent, nil),
		suite.mockAgentRepo.EXPECT().GetWithCompanies(id).Return(linked, nil),
	)
	suite.mockTeamRepo.EXPECT().GetCompanies(teamID).Return([]models.Company{companyWithID(served, "A")}, nil)
	suite.mockAgentRepo.EXPECT().AddCompanies(id, []uuid.UUID{served}).Return(nil)

	resp, err := suite.agentService.AssignCompanies(id, &service.AgentCompaniesRequest{CompanyIDs: []uuid.UUID{served}})

	suite.Require().NoError(err)
	assert.Len(suite.T(), resp.Companies, 1)
}

func (suite *AgentServiceTestSuite) TestAssignCompanies_AgentWithoutTeam() {
	id := uuid.New()
	suite.mockAgentRepo.EXPECT().GetWithCompanies(id).Return(&models.Agent{BaseModel: models.BaseModel{ID: id}}, nil)

	_, err := suite.agentService.AssignCompanies(id, &service.AgentCompaniesRequest{CompanyIDs: []uuid.UUID{uuid.New()}})

	assert.ErrorIs(suite.T(), err, apperrors.ErrAgentHasNoTeam)
}

func (suite *AgentServiceTestSuite) TestAssignCompanies_TeamServesNothing() {
	id, teamID := uuid.New(), uuid.New()
	suite.mockAgentRepo.EXPECT().GetWithCompanies(id).Return(&models.Agent{BaseModel: models.BaseModel{ID: id}, TeamID: &teamID}, nil)
	suite.mockTeamRepo.EXPECT().GetCompanies(teamID).Return([]models.Company{}, nil)

	_, err := suite.agentService.AssignCompanies(id, &service.AgentCompaniesRequest{CompanyIDs: []uuid.UUID{uuid.New()}})

	assert.ErrorIs(suite.T(), err, apperrors.ErrNoCompaniesToAssign)
}

func (suite *AgentServiceTestSuite) TestAssignCompanies_CompanyNotServedByTeam() {
	id, teamID := uuid.New(), uuid.New()
	suite.mockAgentRepo.EXPECT().GetWithCompanies(id).Return(&models.Agent{BaseModel: models.BaseModel{ID: id}, TeamID: &teamID}, nil)
	suite.mockTeamRepo.EXPECT().GetCompanies(teamID).Return([]models.Company{companyWithID(uuid.New(), "A")}, nil)

	_, err := suite.agentService.AssignCompanies(id, &service.AgentCompaniesRequest{CompanyIDs: []uuid.UUID{uuid.New()}})

	assert.ErrorIs(suite.T(), err, apperrors.ErrCompanyNotServedByTeam)
}

func (suite *AgentServiceTestSuite) TestAssignCompanies_EmptyList() {
	_, err := suite.agentService.AssignCompanies(uuid.New(), &service.AgentCompaniesRequest{})

	assert.Contains(suite.T(), err.Error(), "validation failed")
}

func (suite *AgentServiceTestSuite) TestUnassignCompanies_NothingLinked() {
	id := uuid.New()
	suite.mockAgentRepo.EXPECT().GetWithCompanies(id).Return(&models.Agent{BaseModel: models.BaseModel{ID: id}}, nil)

	_, err := suite.agentService.UnassignCompanies(id, &service.AgentCompaniesRequest{CompanyIDs: []uuid.UUID{uuid.New()}})

	assert.ErrorIs(suite.T(), err, apperrors.ErrNoCompaniesToUnassign)
}

func (suite *AgentServiceTestSuite) TestUnassignCompanies_NotLinked() {
	id := uuid.New()
	suite.mockAgentRepo.EXPECT().GetWithCompanies(id).Return(&models.Agent{
		BaseModel: models.BaseModel{ID: id},
		Companies: []models.Company{companyWithID(uuid.New(), "A")},
	}, nil)

	_, err := suite.agentService.UnassignCompanies(id, &service.AgentCompaniesRequest{CompanyIDs: []uuid.UUID{uuid.New()}})

	assert.ErrorIs(suite.T(), err, apperrors.ErrAgentCompanyNotAssigned)
}

func (suite *AgentServiceTestSuite) TestUnassignCompanies_Success() {
	id, c1 := uuid.New(), uuid.New()
	gomock.InOrder(
		suite.mockAgentRepo.EXPECT().GetWithCompanies(id).Return(&models.Agent{
			BaseModel: models.BaseModel{ID: id},
			Companies: []models.Company{companyWithID(c1, "A")},
		}, nil),
		suite.mockAgentRepo.EXPECT().GetWithCompanies(id).Return(&models.Agent{BaseModel: models.BaseModel{ID: id}}, nil),
	)
	suite.mockAgentRepo.EXPECT().RemoveCompanies(id, []uuid.UUID{c1}).Return(nil)

	resp, err := suite.agentService.UnassignCompanies(id, &service.AgentCompaniesRequest{CompanyIDs: []uuid.UUID{c1}})

	suite.Require().NoError(err)
	assert.Empty(suite.T(), resp.Companies)
}

func (suite *AgentServiceTestSuite) TestGetAssignableCompanies() {
	id, teamID := uuid.New(), uuid.New()
	c1, c2, c3 := uuid.New(), uuid.New(), uuid.New()
	suite.mockAgentRepo.EXPECT().GetWithCompanies(id).Return(&models.Agent{
		BaseModel: models.BaseModel{ID: id},
		TeamID:    &teamID,
		Companies: []models.Company{companyWithID(c2, "B")},
	}, nil)
	suite.mockTeamRepo.EXPECT().GetCompanies(teamID).Return([]models.Company{
		companyWithID(c1, "A"), companyWithID(c2, "B"), companyWithID(c3, "C"),
	}, nil)

	resp, err := suite.agentService.GetAssignableCompanies(id)

	suite.Require().NoError(err)
	suite.Require().Len(resp, 2)
	assert.Equal(suite.T(), c1, resp[0].ID)
	assert.Equal(suite.T(), c3, resp[1].ID)
}

func TestAgentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AgentServiceTestSuite))
}
