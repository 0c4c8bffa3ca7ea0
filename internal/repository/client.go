package repository

import (
	"lead-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClientRepository handles database operations for clients
type ClientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new client repository
func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

// Create creates a new client
func (r *ClientRepository) Create(client *models.Client) error {
	return r.db.Create(client).Error
}

// GetByID retrieves a client by ID with its sales
func (r *ClientRepository) GetByID(id uuid.UUID) (*models.Client, error) {
	var client models.Client
	err := r.db.Preload("Sales", func(db *gorm.DB) *gorm.DB {
		return db.Order("sale_date DESC")
	}).First(&client, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &client, nil
}

// GetByPhone retrieves a client by phone number
func (r *ClientRepository) GetByPhone(phone string) (*models.Client, error) {
	var client models.Client
	err := r.db.First(&client, "phone_number = ?", phone).Error
	if err != nil {
		return nil, err
	}
	return &client, nil
}

// List retrieves clients matching filter ordered by last name with pagination
func (r *ClientRepository) List(filter ClientFilter, limit, offset int) ([]models.Client, int64, error) {
	var clients []models.Client
	var total int64

	query := r.db.Model(&models.Client{})
	if filter.TeamID != nil {
		query = query.Where("team_id = ?", *filter.TeamID)
	}
	if filter.AgentID != nil {
		query = query.Where("agent_id = ?", *filter.AgentID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("last_name ASC").Order("first_name ASC").Limit(limit).Offset(offset).Find(&clients).Error
	if err != nil {
		return nil, 0, err
	}

	return clients, total, nil
}

// Update updates a client
func (r *ClientRepository) Update(client *models.Client) error {
	return r.db.Omit("Sales", "Agent", "Team", "Lead").Save(client).Error
}

// Delete deletes a client and, through the foreign key, its sales
func (r *ClientRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Client{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
