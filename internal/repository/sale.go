package repository

import (
	"lead-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SaleRepository handles database operations for sales and payment calculations
type SaleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(db *gorm.DB) *SaleRepository {
	return &SaleRepository{db: db}
}

// Create creates a new sale
func (r *SaleRepository) Create(sale *models.Sale) error {
	return r.db.Create(sale).Error
}

// GetByID retrieves a sale with its client and product
func (r *SaleRepository) GetByID(id uuid.UUID) (*models.Sale, error) {
	var sale models.Sale
	err := r.db.Preload("Client").Preload("BankProduct.Bank").First(&sale, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &sale, nil
}

// List retrieves sales matching filter, newest first, with pagination
func (r *SaleRepository) List(filter SaleFilter, limit, offset int) ([]models.Sale, int64, error) {
	var sales []models.Sale
	var total int64

	query := r.db.Model(&models.Sale{})
	if filter.TeamID != nil || filter.AgentID != nil {
		query = query.Joins("JOIN clients ON clients.id = sales.client_id")
		if filter.TeamID != nil {
			query = query.Where("clients.team_id = ?", *filter.TeamID)
		}
		if filter.AgentID != nil {
			query = query.Where("clients.agent_id = ?", *filter.AgentID)
		}
	}
	if filter.ClientID != nil {
		query = query.Where("sales.client_id = ?", *filter.ClientID)
	}
	if filter.Status != nil {
		query = query.Where("sales.status = ?", *filter.Status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("BankProduct").
		Order("sales.sale_date DESC").Order("sales.id ASC").
		Limit(limit).Offset(offset).Find(&sales).Error
	if err != nil {
		return nil, 0, err
	}

	return sales, total, nil
}

// Update updates a sale
func (r *SaleRepository) Update(sale *models.Sale) error {
	return r.db.Omit("Client", "BankProduct").Save(sale).Error
}

// Delete deletes a sale
func (r *SaleRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Sale{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CreateCalculation stores a payment quote. A repeated quote violates the
// unique index and surfaces as a duplicate key error.
func (r *SaleRepository) CreateCalculation(calculation *models.Calculation) error {
	return r.db.Create(calculation).Error
}

// ListCalculations retrieves a client's quotes with their products, newest first
func (r *SaleRepository) ListCalculations(clientID uuid.UUID) ([]models.Calculation, error) {
	var calculations []models.Calculation
	err := r.db.Preload("BankProduct.Bank").
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&calculations).Error
	return calculations, err
}
