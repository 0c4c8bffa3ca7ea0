//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"lead-crm-backend/internal/database/models"
	"lead-crm-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// LeadRepositoryTestSuite tests the LeadRepository
type LeadRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *LeadRepository
	companyRepo   *CompanyRepository
	teamRepo      *TeamRepository
	agentRepo     *AgentRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *LeadRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewLeadRepository(suite.baseTestSuite.DB)
	suite.companyRepo = NewCompanyRepository(suite.baseTestSuite.DB)
	suite.teamRepo = NewTeamRepository(suite.baseTestSuite.DB)
	suite.agentRepo = NewAgentRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *LeadRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *LeadRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *LeadRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateWithSubmission tests storing a lead together with its submission
func (suite *LeadRepositoryTestSuite) TestCreateWithSubmission() {
	company := suite.factories.Company.Create()
	suite.NoError(suite.companyRepo.Create(company))
	lead := suite.factories.Lead.WithCompany(company.ID)
	submission := &models.LeadSubmission{IPAddress: "10.0.0.1", UserAgent: "curl/8.0", SubmittedAt: time.Now()}

	suite.NoError(suite.repo.CreateWithSubmission(lead, submission))
	suite.Equal(lead.ID, submission.LeadID)

	loaded, err := suite.repo.GetWithRelations(lead.ID)
	suite.NoError(err)
	suite.Require().NotNil(loaded.Submission)
	suite.Equal("10.0.0.1", loaded.Submission.IPAddress)
	suite.Require().NotNil(loaded.Company)
	suite.Equal(company.ID, loaded.Company.ID)
	suite.Equal(models.AssignmentStatusUnassigned, loaded.AssignmentStatus())
}

// TestCreateWithSubmissionRollsBack tests that a failing lead insert leaves no submission behind
func (suite *LeadRepositoryTestSuite) TestCreateWithSubmissionRollsBack() {
	suite.NoError(suite.repo.Create(suite.factories.Lead.WithEmail("dup@example.com")))

	lead := suite.factories.Lead.WithEmail("dup@example.com")
	err := suite.repo.CreateWithSubmission(lead, &models.LeadSubmission{SubmittedAt: time.Now()})
	suite.Error(err)

	var count int64
	suite.NoError(suite.baseTestSuite.DB.Model(&models.LeadSubmission{}).Count(&count).Error)
	suite.Zero(count)
}

// TestUpdateAssignment tests setting and clearing team and agent in one update
func (suite *LeadRepositoryTestSuite) TestUpdateAssignment() {
	team := suite.factories.Team.Create()
	suite.NoError(suite.teamRepo.Create(team))
	agent := suite.factories.Agent.WithTeam(team.ID)
	suite.NoError(suite.agentRepo.Create(agent))
	lead := suite.factories.Lead.Create()
	suite.NoError(suite.repo.Create(lead))

	suite.NoError(suite.repo.UpdateAssignment(lead.ID, &team.ID, &agent.ID))
	loaded, err := suite.repo.GetByID(lead.ID)
	suite.NoError(err)
	suite.Equal(models.AssignmentStatusAgentAssigned, loaded.AssignmentStatus())

	suite.NoError(suite.repo.UpdateAssignment(lead.ID, &team.ID, nil))
	loaded, err = suite.repo.GetByID(lead.ID)
	suite.NoError(err)
	suite.Nil(loaded.AgentID)
	suite.Equal(models.AssignmentStatusTeamAssigned, loaded.AssignmentStatus())

	suite.Equal(gorm.ErrRecordNotFound, suite.repo.UpdateAssignment(uuid.New(), nil, nil))
}

// TestListFilters tests filtering leads by company and assignment status
func (suite *LeadRepositoryTestSuite) TestListFilters() {
	company := suite.factories.Company.Create()
	suite.NoError(suite.companyRepo.Create(company))
	team := suite.factories.Team.Create()
	suite.NoError(suite.teamRepo.Create(team))

	assigned := suite.factories.Lead.WithCompany(company.ID)
	assigned.TeamID = &team.ID
	suite.NoError(suite.repo.Create(assigned))
	suite.NoError(suite.repo.Create(suite.factories.Lead.WithCompany(company.ID)))
	suite.NoError(suite.repo.Create(suite.factories.Lead.Create()))

	leads, total, err := suite.repo.List(LeadFilter{CompanyID: &company.ID}, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(leads, 2)

	status := models.AssignmentStatusTeamAssigned
	leads, total, err = suite.repo.List(LeadFilter{Status: &status}, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal(assigned.ID, leads[0].ID)

	unassigned := models.AssignmentStatusUnassigned
	_, total, err = suite.repo.List(LeadFilter{Status: &unassigned}, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)
}

// TestGetSubmissionNotFound tests a lead created without a submission
func (suite *LeadRepositoryTestSuite) TestGetSubmissionNotFound() {
	lead := suite.factories.Lead.Create()
	suite.NoError(suite.repo.Create(lead))

	submission, err := suite.repo.GetSubmission(lead.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(submission)
}

// TestLeadRepositoryTestSuite runs the test suite
func TestLeadRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(LeadRepositoryTestSuite))
}
