package repository

import (
	"lead-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AgentRepository handles database operations for agents
type AgentRepository struct {
	db *gorm.DB
}

// NewAgentRepository creates a new agent repository
func NewAgentRepository(db *gorm.DB) *AgentRepository {
	return &AgentRepository{db: db}
}

// Create creates a new agent
func (r *AgentRepository) Create(agent *models.Agent) error {
	return r.db.Omit("Companies").Create(agent).Error
}

// GetByID retrieves an agent by ID
func (r *AgentRepository) GetByID(id uuid.UUID) (*models.Agent, error) {
	var agent models.Agent
	err := r.db.First(&agent, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &agent, nil
}

// GetWithCompanies retrieves an agent with its team and linked companies
func (r *AgentRepository) GetWithCompanies(id uuid.UUID) (*models.Agent, error) {
	var agent models.Agent
	err := r.db.Preload("Team").Preload("Companies", func(db *gorm.DB) *gorm.DB {
		return db.Order("companies.name ASC")
	}).First(&agent, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &agent, nil
}

// GetAll retrieves all agents with pagination
func (r *AgentRepository) GetAll(limit, offset int) ([]models.Agent, int64, error) {
	var agents []models.Agent
	var total int64

	// Get total count
	if err := r.db.Model(&models.Agent{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := r.db.Order("last_name ASC").Order("first_name ASC").Limit(limit).Offset(offset).Find(&agents).Error
	if err != nil {
		return nil, 0, err
	}

	return agents, total, nil
}

// GetByTeamID retrieves all agents of a team in rotation order
func (r *AgentRepository) GetByTeamID(teamID uuid.UUID) ([]models.Agent, error) {
	var agents []models.Agent
	err := r.db.Where("team_id = ?", teamID).
		Order("created_at ASC").Order("id ASC").
		Find(&agents).Error
	return agents, err
}

// GetRotationCandidates returns the agents of a team that are linked to the
// given company, in rotation order (created_at, id).
func (r *AgentRepository) GetRotationCandidates(teamID, companyID uuid.UUID) ([]models.Agent, error) {
	var agents []models.Agent
	err := r.db.
		Joins("JOIN agent_companies ON agent_companies.agent_id = agents.id").
		Where("agents.team_id = ? AND agent_companies.company_id = ?", teamID, companyID).
		Order("agents.created_at ASC").Order("agents.id ASC").
		Find(&agents).Error
	return agents, err
}

// AddCompanies links an agent to companies. Existing links are left as they are.
func (r *AgentRepository) AddCompanies(agentID uuid.UUID, companyIDs []uuid.UUID) error {
	if len(companyIDs) == 0 {
		return nil
	}
	rows := make([]map[string]interface{}, 0, len(companyIDs))
	for _, companyID := range companyIDs {
		rows = append(rows, map[string]interface{}{
			"agent_id":   agentID,
			"company_id": companyID,
		})
	}
	return r.db.Table("agent_companies").
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(rows).Error
}

// RemoveCompanies unlinks an agent from companies
func (r *AgentRepository) RemoveCompanies(agentID uuid.UUID, companyIDs []uuid.UUID) error {
	if len(companyIDs) == 0 {
		return nil
	}
	return r.db.Exec(
		"DELETE FROM agent_companies WHERE agent_id = ? AND company_id IN ?",
		agentID, companyIDs,
	).Error
}

// Update updates an agent
func (r *AgentRepository) Update(agent *models.Agent) error {
	return r.db.Omit("Companies", "Team").Save(agent).Error
}

// Delete deletes an agent
func (r *AgentRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Agent{}, "id = ?", id).Error
}
