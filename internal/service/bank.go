package service

import (
	"errors"
	"fmt"

	"lead-crm-backend/internal/database/models"
	apperrors "lead-crm-backend/internal/errors"
	"lead-crm-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BankService handles business logic for banks and the products they offer
type BankService struct {
	repo      repository.BankRepositoryInterface
	validator *validator.Validate
}

// NewBankService creates a new bank service
func NewBankService(repo repository.BankRepositoryInterface, validator *validator.Validate) *BankService {
	return &BankService{
		repo:      repo,
		validator: validator,
	}
}

// BankRequest represents the request to create or update a bank
type BankRequest struct {
	Name            string `json:"name" validate:"required,max=30"`
	Headquarters    string `json:"headquarters" validate:"required,max=30"`
	CustomerService string `json:"customer_service,omitempty" validate:"omitempty,phone,max=15"`
	Established     string `json:"established,omitempty" validate:"omitempty,datetime=2006-01-02" example:"1995-01-01"`
	Chairman        string `json:"chairman,omitempty" validate:"omitempty,alphaspace,max=60"`
}

// BankProductRequest represents the request to create or update a bank product.
// InterestRate is the yearly rate in percent.
type BankProductRequest struct {
	BankID       uuid.UUID        `json:"bank_id" validate:"required"`
	ProductType  string           `json:"product_type" validate:"required,oneof=mortgage_loan personal_loan credit_card investments"`
	Description  string           `json:"description,omitempty" validate:"omitempty,max=2000"`
	InterestRate *decimal.Decimal `json:"interest_rate,omitempty" validate:"omitempty,gte=0,lte=100" example:"6.50"`
	Terms        string           `json:"terms,omitempty" validate:"omitempty,max=2000"`
}

// BankResponse represents the response for bank operations
type BankResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Headquarters    string    `json:"headquarters"`
	CustomerService string    `json:"customer_service,omitempty"`
	Established     string    `json:"established,omitempty"`
	Chairman        string    `json:"chairman,omitempty"`
	CreatedAt       string    `json:"created_at"`
	UpdatedAt       string    `json:"updated_at"`
}

// BankWithProductsResponse represents a bank with its products
type BankWithProductsResponse struct {
	BankResponse
	Products []BankProductResponse `json:"products"`
}

// BankListResponse represents a paginated list of banks
type BankListResponse struct {
	Banks    []BankResponse `json:"banks"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// BankProductResponse represents the response for bank product operations
type BankProductResponse struct {
	ID           uuid.UUID        `json:"id"`
	BankID       uuid.UUID        `json:"bank_id"`
	BankName     string           `json:"bank_name,omitempty"`
	ProductType  string           `json:"product_type"`
	Description  string           `json:"description,omitempty"`
	InterestRate *decimal.Decimal `json:"interest_rate,omitempty"`
	Terms        string           `json:"terms,omitempty"`
	CreatedAt    string           `json:"created_at"`
	UpdatedAt    string           `json:"updated_at"`
}

// BankProductListResponse represents a paginated list of bank products
type BankProductListResponse struct {
	Products []BankProductResponse `json:"products"`
	Total    int64                 `json:"total"`
	Page     int                   `json:"page"`
	PageSize int                   `json:"page_size"`
}

// Create creates a new bank
func (s *BankService) Create(req *BankRequest) (*BankResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	bank := &models.Bank{}
	if err := applyBank(bank, req); err != nil {
		return nil, err
	}

	if err := s.repo.Create(bank); err != nil {
		if isDuplicateKey(err) {
			return nil, apperrors.ErrBankExists
		}
		return nil, fmt.Errorf("failed to create bank: %w", err)
	}

	return toBankResponse(bank), nil
}

// GetByID retrieves a bank with its products
func (s *BankService) GetByID(id uuid.UUID) (*BankWithProductsResponse, error) {
	bank, err := s.repo.GetWithProducts(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBankNotFound
		}
		return nil, fmt.Errorf("failed to get bank: %w", err)
	}

	products := make([]BankProductResponse, len(bank.Products))
	for i := range bank.Products {
		products[i] = *toBankProductResponse(&bank.Products[i])
		products[i].BankName = bank.Name
	}

	return &BankWithProductsResponse{
		BankResponse: *toBankResponse(bank),
		Products:     products,
	}, nil
}

// GetAll retrieves banks ordered by name with pagination
func (s *BankService) GetAll(page, pageSize int) (*BankListResponse, error) {
	page, pageSize, offset := paginate(page, pageSize)
	banks, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get banks: %w", err)
	}

	responses := make([]BankResponse, len(banks))
	for i := range banks {
		responses[i] = *toBankResponse(&banks[i])
	}

	return &BankListResponse{
		Banks:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates a bank
func (s *BankService) Update(id uuid.UUID, req *BankRequest) (*BankResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	bank, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBankNotFound
		}
		return nil, fmt.Errorf("failed to get bank: %w", err)
	}
	if err := applyBank(bank, req); err != nil {
		return nil, err
	}

	if err := s.repo.Update(bank); err != nil {
		if isDuplicateKey(err) {
			return nil, apperrors.ErrBankExists
		}
		return nil, fmt.Errorf("failed to update bank: %w", err)
	}

	return toBankResponse(bank), nil
}

// Delete deletes a bank with its products
func (s *BankService) Delete(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrBankNotFound
		}
		return fmt.Errorf("failed to delete bank: %w", err)
	}
	return nil
}

// CreateProduct adds a product to a bank
func (s *BankService) CreateProduct(req *BankProductRequest) (*BankProductResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	bank, err := s.repo.GetByID(req.BankID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBankNotFound
		}
		return nil, fmt.Errorf("failed to get bank: %w", err)
	}

	product := &models.BankProduct{}
	applyBankProduct(product, req)

	if err := s.repo.CreateProduct(product); err != nil {
		return nil, fmt.Errorf("failed to create bank product: %w", err)
	}

	response := toBankProductResponse(product)
	response.BankName = bank.Name
	return response, nil
}

// GetProduct retrieves a bank product by ID
func (s *BankService) GetProduct(id uuid.UUID) (*BankProductResponse, error) {
	product, err := s.getProduct(id)
	if err != nil {
		return nil, err
	}
	return toBankProductResponse(product), nil
}

// ListProducts retrieves bank products, optionally of one bank or product type
func (s *BankService) ListProducts(bankID *uuid.UUID, productType string, page, pageSize int) (*BankProductListResponse, error) {
	var typeFilter *models.BankProductType
	if productType != "" {
		t := models.BankProductType(productType)
		if !t.IsValid() {
			return nil, apperrors.ErrInvalidProductType
		}
		typeFilter = &t
	}

	page, pageSize, offset := paginate(page, pageSize)
	products, total, err := s.repo.ListProducts(bankID, typeFilter, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get bank products: %w", err)
	}

	responses := make([]BankProductResponse, len(products))
	for i := range products {
		responses[i] = *toBankProductResponse(&products[i])
	}

	return &BankProductListResponse{
		Products: responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// UpdateProduct updates a bank product. Moving it to another bank is allowed.
func (s *BankService) UpdateProduct(id uuid.UUID, req *BankProductRequest) (*BankProductResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	product, err := s.getProduct(id)
	if err != nil {
		return nil, err
	}
	if req.BankID != product.BankID {
		bank, err := s.repo.GetByID(req.BankID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrBankNotFound
			}
			return nil, fmt.Errorf("failed to get bank: %w", err)
		}
		product.Bank = bank
	}
	applyBankProduct(product, req)

	if err := s.repo.UpdateProduct(product); err != nil {
		return nil, fmt.Errorf("failed to update bank product: %w", err)
	}

	return toBankProductResponse(product), nil
}

// DeleteProduct deletes a bank product with the sales and quotes made on it
func (s *BankService) DeleteProduct(id uuid.UUID) error {
	if err := s.repo.DeleteProduct(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrBankProductNotFound
		}
		return fmt.Errorf("failed to delete bank product: %w", err)
	}
	return nil
}

func (s *BankService) getProduct(id uuid.UUID) (*models.BankProduct, error) {
	product, err := s.repo.GetProduct(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBankProductNotFound
		}
		return nil, fmt.Errorf("failed to get bank product: %w", err)
	}
	return product, nil
}

func applyBank(bank *models.Bank, req *BankRequest) error {
	established, err := parseOptionalDate("established", req.Established)
	if err != nil {
		return err
	}
	bank.Name = req.Name
	bank.Headquarters = req.Headquarters
	bank.CustomerService = req.CustomerService
	bank.Chairman = req.Chairman
	bank.Established = established
	return nil
}

func applyBankProduct(product *models.BankProduct, req *BankProductRequest) {
	product.BankID = req.BankID
	product.ProductType = models.BankProductType(req.ProductType)
	product.Description = req.Description
	product.InterestRate = req.InterestRate
	product.Terms = req.Terms
}

func toBankResponse(bank *models.Bank) *BankResponse {
	return &BankResponse{
		ID:              bank.ID,
		Name:            bank.Name,
		Headquarters:    bank.Headquarters,
		CustomerService: bank.CustomerService,
		Established:     formatOptionalDate(bank.Established),
		Chairman:        bank.Chairman,
		CreatedAt:       formatTime(bank.CreatedAt),
		UpdatedAt:       formatTime(bank.UpdatedAt),
	}
}

func toBankProductResponse(product *models.BankProduct) *BankProductResponse {
	response := &BankProductResponse{
		ID:           product.ID,
		BankID:       product.BankID,
		ProductType:  string(product.ProductType),
		Description:  product.Description,
		InterestRate: product.InterestRate,
		Terms:        product.Terms,
		CreatedAt:    formatTime(product.CreatedAt),
		UpdatedAt:    formatTime(product.UpdatedAt),
	}
	if product.Bank != nil {
		response.BankName = product.Bank.Name
	}
	return response
}
