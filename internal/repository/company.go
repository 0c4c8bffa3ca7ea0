package repository

import (
	"lead-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompanyRepository handles database operations for companies
type CompanyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// Create creates a new company
func (r *CompanyRepository) Create(company *models.Company) error {
	return r.db.Create(company).Error
}

// GetByID retrieves a company by ID
func (r *CompanyRepository) GetByID(id uuid.UUID) (*models.Company, error) {
	var company models.Company
	err := r.db.First(&company, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &company, nil
}

// GetBySlug retrieves a company by slug
func (r *CompanyRepository) GetBySlug(slug string) (*models.Company, error) {
	var company models.Company
	err := r.db.First(&company, "slug = ?", slug).Error
	if err != nil {
		return nil, err
	}
	return &company, nil
}

// GetByPath retrieves a company by its public intake path
func (r *CompanyRepository) GetByPath(path string) (*models.Company, error) {
	var company models.Company
	err := r.db.First(&company, "path = ?", path).Error
	if err != nil {
		return nil, err
	}
	return &company, nil
}

// GetAll retrieves all companies ordered by name with pagination
func (r *CompanyRepository) GetAll(limit, offset int) ([]models.Company, int64, error) {
	var companies []models.Company
	var total int64

	// Get total count
	if err := r.db.Model(&models.Company{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := r.db.Order("name ASC").Limit(limit).Offset(offset).Find(&companies).Error
	if err != nil {
		return nil, 0, err
	}

	return companies, total, nil
}

// Update updates a company
func (r *CompanyRepository) Update(company *models.Company) error {
	return r.db.Save(company).Error
}

// Delete deletes a company
func (r *CompanyRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Company{}, "id = ?", id).Error
}

// GetTeamLinks retrieves the team links of a company with their teams, in rotation order
func (r *CompanyRepository) GetTeamLinks(companyID uuid.UUID) ([]models.TeamCompany, error) {
	var links []models.TeamCompany
	err := r.db.Preload("Team").
		Joins("JOIN teams ON teams.id = team_companies.team_id").
		Where("team_companies.company_id = ?", companyID).
		Order("teams.created_at ASC").Order("teams.id ASC").
		Find(&links).Error
	return links, err
}

// GetTeamLink retrieves the link between a company and a team
func (r *CompanyRepository) GetTeamLink(companyID, teamID uuid.UUID) (*models.TeamCompany, error) {
	var link models.TeamCompany
	err := r.db.First(&link, "company_id = ? AND team_id = ?", companyID, teamID).Error
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// LinkTeam links a team to a company
func (r *CompanyRepository) LinkTeam(link *models.TeamCompany) error {
	return r.db.Create(link).Error
}

// UpdateTeamLinkMode changes the assignment mode of a company-team link
func (r *CompanyRepository) UpdateTeamLinkMode(companyID, teamID uuid.UUID, mode models.LeadAssignmentMode) error {
	result := r.db.Model(&models.TeamCompany{}).
		Where("company_id = ? AND team_id = ?", companyID, teamID).
		Update("lead_assignment", mode)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UnlinkTeam removes a team from a company. Agents of that team lose their
// link to the company too, since an agent may only serve its team's companies.
func (r *CompanyRepository) UnlinkTeam(companyID, teamID uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.TeamCompany{}, "company_id = ? AND team_id = ?", companyID, teamID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Exec(
			`DELETE FROM agent_companies WHERE company_id = ? AND agent_id IN (SELECT id FROM agents WHERE team_id = ?)`,
			companyID, teamID,
		).Error
	})
}

// GetAgents retrieves the agents linked to a company
func (r *CompanyRepository) GetAgents(companyID uuid.UUID) ([]models.Agent, error) {
	var agents []models.Agent
	err := r.db.
		Joins("JOIN agent_companies ON agent_companies.agent_id = agents.id").
		Where("agent_companies.company_id = ?", companyID).
		Order("agents.last_name ASC").Order("agents.first_name ASC").
		Find(&agents).Error
	return agents, err
}
