package repository

import (
	"lead-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BankRepository handles database operations for banks and their products
type BankRepository struct {
	db *gorm.DB
}

// NewBankRepository creates a new bank repository
func NewBankRepository(db *gorm.DB) *BankRepository {
	return &BankRepository{db: db}
}

// Create creates a new bank
func (r *BankRepository) Create(bank *models.Bank) error {
	return r.db.Create(bank).Error
}

// GetByID retrieves a bank by ID
func (r *BankRepository) GetByID(id uuid.UUID) (*models.Bank, error) {
	var bank models.Bank
	if err := r.db.First(&bank, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &bank, nil
}

// GetWithProducts retrieves a bank with its products
func (r *BankRepository) GetWithProducts(id uuid.UUID) (*models.Bank, error) {
	var bank models.Bank
	err := r.db.Preload("Products", func(db *gorm.DB) *gorm.DB {
		return db.Order("product_type ASC").Order("created_at ASC")
	}).First(&bank, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &bank, nil
}

// GetAll retrieves all banks ordered by name with pagination
func (r *BankRepository) GetAll(limit, offset int) ([]models.Bank, int64, error) {
	var banks []models.Bank
	var total int64

	if err := r.db.Model(&models.Bank{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("name ASC").Limit(limit).Offset(offset).Find(&banks).Error
	if err != nil {
		return nil, 0, err
	}

	return banks, total, nil
}

// Update updates a bank
func (r *BankRepository) Update(bank *models.Bank) error {
	return r.db.Omit("Products").Save(bank).Error
}

// Delete deletes a bank and its products
func (r *BankRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Bank{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CreateProduct creates a new bank product
func (r *BankRepository) CreateProduct(product *models.BankProduct) error {
	return r.db.Create(product).Error
}

// GetProduct retrieves a bank product with its bank
func (r *BankRepository) GetProduct(id uuid.UUID) (*models.BankProduct, error) {
	var product models.BankProduct
	if err := r.db.Preload("Bank").First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// ListProducts retrieves bank products, optionally of one bank or type
func (r *BankRepository) ListProducts(bankID *uuid.UUID, productType *models.BankProductType, limit, offset int) ([]models.BankProduct, int64, error) {
	var products []models.BankProduct
	var total int64

	query := r.db.Model(&models.BankProduct{})
	if bankID != nil {
		query = query.Where("bank_id = ?", *bankID)
	}
	if productType != nil {
		query = query.Where("product_type = ?", *productType)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Bank").Order("created_at ASC").Order("id ASC").Limit(limit).Offset(offset).Find(&products).Error
	if err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

// UpdateProduct updates a bank product
func (r *BankRepository) UpdateProduct(product *models.BankProduct) error {
	return r.db.Omit("Bank").Save(product).Error
}

// DeleteProduct deletes a bank product
func (r *BankRepository) DeleteProduct(id uuid.UUID) error {
	result := r.db.Delete(&models.BankProduct{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
