package repository

import (
	"lead-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeadRepository handles database operations for leads
type LeadRepository struct {
	db *gorm.DB
}

// NewLeadRepository creates a new lead repository
func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

// Create creates a new lead
func (r *LeadRepository) Create(lead *models.Lead) error {
	return r.db.Omit("Company", "Team", "Agent", "Submission").Create(lead).Error
}

// CreateWithSubmission stores a lead and its submission record atomically
func (r *LeadRepository) CreateWithSubmission(lead *models.Lead, submission *models.LeadSubmission) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Company", "Team", "Agent", "Submission").Create(lead).Error; err != nil {
			return err
		}
		submission.LeadID = lead.ID
		return tx.Create(submission).Error
	})
}

// GetByID retrieves a lead by ID
func (r *LeadRepository) GetByID(id uuid.UUID) (*models.Lead, error) {
	var lead models.Lead
	err := r.db.First(&lead, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

// GetWithRelations retrieves a lead with its company, team, agent and submission
func (r *LeadRepository) GetWithRelations(id uuid.UUID) (*models.Lead, error) {
	var lead models.Lead
	err := r.db.
		Preload("Company").
		Preload("Team").
		Preload("Agent").
		Preload("Submission").
		First(&lead, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

// GetByEmail retrieves a lead by email
func (r *LeadRepository) GetByEmail(email string) (*models.Lead, error) {
	var lead models.Lead
	err := r.db.First(&lead, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

// List retrieves leads matching the filter, newest first
func (r *LeadRepository) List(filter LeadFilter, limit, offset int) ([]models.Lead, int64, error) {
	var leads []models.Lead
	var total int64

	query := applyLeadFilter(r.db.Model(&models.Lead{}), filter)

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := query.Order("created_at DESC").Order("id ASC").Limit(limit).Offset(offset).Find(&leads).Error
	if err != nil {
		return nil, 0, err
	}

	return leads, total, nil
}

func applyLeadFilter(query *gorm.DB, filter LeadFilter) *gorm.DB {
	if filter.CompanyID != nil {
		query = query.Where("company_id = ?", *filter.CompanyID)
	}
	if filter.TeamID != nil {
		query = query.Where("team_id = ?", *filter.TeamID)
	}
	if filter.AgentID != nil {
		query = query.Where("agent_id = ?", *filter.AgentID)
	}
	if filter.Status != nil {
		switch *filter.Status {
		case models.AssignmentStatusUnassigned:
			query = query.Where("team_id IS NULL")
		case models.AssignmentStatusTeamAssigned:
			query = query.Where("team_id IS NOT NULL AND agent_id IS NULL")
		case models.AssignmentStatusAgentAssigned:
			query = query.Where("agent_id IS NOT NULL")
		}
	}
	return query
}

// GetSubmission retrieves the submission record of a lead
func (r *LeadRepository) GetSubmission(leadID uuid.UUID) (*models.LeadSubmission, error) {
	var submission models.LeadSubmission
	err := r.db.First(&submission, "lead_id = ?", leadID).Error
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

// Update updates a lead
func (r *LeadRepository) Update(lead *models.Lead) error {
	return r.db.Omit("Company", "Team", "Agent", "Submission").Save(lead).Error
}

// UpdateAssignment writes team and agent of a lead in a single statement.
// Nil values clear the corresponding column.
func (r *LeadRepository) UpdateAssignment(id uuid.UUID, teamID, agentID *uuid.UUID) error {
	result := r.db.Model(&models.Lead{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"team_id":  teamID,
			"agent_id": agentID,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete deletes a lead
func (r *LeadRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Lead{}, "id = ?", id).Error
}
