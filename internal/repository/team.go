package repository

import (
	"lead-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team
func (r *TeamRepository) Create(team *models.Team) error {
	return r.db.Create(team).Error
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetBySlug retrieves a team by slug
func (r *TeamRepository) GetBySlug(slug string) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "slug = ?", slug).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetAll retrieves teams ordered by name, optionally filtered by type
func (r *TeamRepository) GetAll(teamType *models.TeamType, limit, offset int) ([]models.Team, int64, error) {
	var teams []models.Team
	var total int64

	query := r.db.Model(&models.Team{})
	if teamType != nil {
		query = query.Where("type = ?", *teamType)
	}

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := query.Order("name ASC").Limit(limit).Offset(offset).Find(&teams).Error
	if err != nil {
		return nil, 0, err
	}

	return teams, total, nil
}

// GetWithAgents retrieves a team with all its agents
func (r *TeamRepository) GetWithAgents(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.Preload("Agents", func(db *gorm.DB) *gorm.DB {
		return db.Order("agents.created_at ASC").Order("agents.id ASC")
	}).First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetCompanies retrieves the companies a team serves
func (r *TeamRepository) GetCompanies(teamID uuid.UUID) ([]models.Company, error) {
	var companies []models.Company
	err := r.db.
		Joins("JOIN team_companies ON team_companies.company_id = companies.id").
		Where("team_companies.team_id = ?", teamID).
		Order("companies.name ASC").
		Find(&companies).Error
	return companies, err
}

// GetRotationCandidates returns the teams of the given type that take part in
// automatic distribution for a company. The order (created_at, id) is the
// rotation order.
func (r *TeamRepository) GetRotationCandidates(companyID uuid.UUID, teamType models.TeamType) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.
		Joins("JOIN team_companies ON team_companies.team_id = teams.id").
		Where("team_companies.company_id = ? AND team_companies.lead_assignment = ? AND teams.type = ?",
			companyID, models.LeadAssignmentAuto, teamType).
		Order("teams.created_at ASC").Order("teams.id ASC").
		Find(&teams).Error
	return teams, err
}

// Update updates a team
func (r *TeamRepository) Update(team *models.Team) error {
	return r.db.Save(team).Error
}

// Delete deletes a team
func (r *TeamRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Team{}, "id = ?", id).Error
}
