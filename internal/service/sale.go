package service

import (
	"errors"
	"fmt"
	"time"

	"lead-crm-backend/internal/database/models"
	apperrors "lead-crm-backend/internal/errors"
	"lead-crm-backend/internal/finance"
	"lead-crm-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SaleService handles business logic for sales and monthly payment quotes
type SaleService struct {
	repo       repository.SaleRepositoryInterface
	clientRepo repository.ClientRepositoryInterface
	bankRepo   repository.BankRepositoryInterface
	validator  *validator.Validate
}

// NewSaleService creates a new sale service
func NewSaleService(
	repo repository.SaleRepositoryInterface,
	clientRepo repository.ClientRepositoryInterface,
	bankRepo repository.BankRepositoryInterface,
	validator *validator.Validate,
) *SaleService {
	return &SaleService{
		repo:       repo,
		clientRepo: clientRepo,
		bankRepo:   bankRepo,
		validator:  validator,
	}
}

// CreateSaleRequest represents the request to record a sale. SaleDate
// defaults to now and Status to new.
type CreateSaleRequest struct {
	ClientID      uuid.UUID       `json:"client_id" validate:"required"`
	BankProductID uuid.UUID       `json:"bank_product_id" validate:"required"`
	Amount        decimal.Decimal `json:"amount" validate:"gt=0" example:"150000.00"`
	DurationYears int             `json:"duration_years" validate:"required,min=1,max=50" example:"25"`
	SaleDate      string          `json:"sale_date,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Status        string          `json:"status,omitempty" validate:"omitempty,oneof=new pending approved rejected manual_check"`
}

// UpdateSaleRequest represents the request to update a sale
type UpdateSaleRequest struct {
	Amount        decimal.Decimal `json:"amount" validate:"gt=0" example:"150000.00"`
	DurationYears int             `json:"duration_years" validate:"required,min=1,max=50" example:"25"`
	Status        string          `json:"status" validate:"required,oneof=new pending approved rejected manual_check"`
}

// CalculateRequest asks for the monthly payment of a product for a client
type CalculateRequest struct {
	BankProductID uuid.UUID       `json:"bank_product_id" validate:"required"`
	Amount        decimal.Decimal `json:"amount" validate:"gt=0" example:"100000.00"`
	DurationYears int             `json:"duration_years" validate:"required,min=1,max=50" example:"30"`
}

// ListSalesQuery holds the sale listing filters and pagination
type ListSalesQuery struct {
	ClientID *uuid.UUID
	TeamID   *uuid.UUID
	AgentID  *uuid.UUID
	Status   string `validate:"omitempty,oneof=new pending approved rejected manual_check"`
	Page     int
	PageSize int
}

// SaleResponse represents the response for sale operations
type SaleResponse struct {
	ID            uuid.UUID       `json:"id"`
	ClientID      uuid.UUID       `json:"client_id"`
	BankProductID uuid.UUID       `json:"bank_product_id"`
	ProductType   string          `json:"product_type,omitempty"`
	SaleDate      string          `json:"sale_date"`
	Amount        decimal.Decimal `json:"amount"`
	DurationYears int             `json:"duration_years"`
	Status        string          `json:"status"`
	CreatedAt     string          `json:"created_at"`
	UpdatedAt     string          `json:"updated_at"`
}

// SaleListResponse represents a paginated list of sales
type SaleListResponse struct {
	Sales    []SaleResponse `json:"sales"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// CalculationResponse is a stored monthly payment quote
type CalculationResponse struct {
	ID             uuid.UUID       `json:"id"`
	ClientID       uuid.UUID       `json:"client_id"`
	BankProductID  uuid.UUID       `json:"bank_product_id"`
	BankName       string          `json:"bank_name,omitempty"`
	ProductType    string          `json:"product_type,omitempty"`
	InterestRate   decimal.Decimal `json:"interest_rate"`
	Amount         decimal.Decimal `json:"amount"`
	DurationYears  int             `json:"duration_years"`
	MonthlyPayment decimal.Decimal `json:"monthly_payment"`
	CreatedAt      string          `json:"created_at"`
}

// Create records a sale of a bank product to a client
func (s *SaleService) Create(req *CreateSaleRequest) (*SaleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.getClient(req.ClientID); err != nil {
		return nil, err
	}
	product, err := s.getProduct(req.BankProductID)
	if err != nil {
		return nil, err
	}

	saleDate := time.Now()
	if req.SaleDate != "" {
		saleDate, err = time.Parse(time.RFC3339, req.SaleDate)
		if err != nil {
			return nil, apperrors.NewValidationError("sale_date", "must be an RFC 3339 timestamp")
		}
	}
	status := models.SaleStatusNew
	if req.Status != "" {
		status = models.SaleStatus(req.Status)
	}

	sale := &models.Sale{
		ClientID:      req.ClientID,
		BankProductID: req.BankProductID,
		SaleDate:      saleDate,
		Amount:        req.Amount,
		DurationYears: req.DurationYears,
		Status:        status,
	}
	if err := s.repo.Create(sale); err != nil {
		return nil, fmt.Errorf("failed to create sale: %w", err)
	}
	sale.BankProduct = product

	return toSaleResponse(sale), nil
}

// GetByID retrieves a sale by ID
func (s *SaleService) GetByID(id uuid.UUID) (*SaleResponse, error) {
	sale, err := s.get(id)
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// GetAll retrieves sales newest first, filtered by client, owning team or
// agent, and status
func (s *SaleService) GetAll(query *ListSalesQuery) (*SaleListResponse, error) {
	if err := s.validator.Struct(query); err != nil {
		return nil, apperrors.ErrInvalidSaleStatus
	}

	page, pageSize, offset := paginate(query.Page, query.PageSize)
	filter := repository.SaleFilter{
		ClientID: query.ClientID,
		TeamID:   query.TeamID,
		AgentID:  query.AgentID,
	}
	if query.Status != "" {
		status := models.SaleStatus(query.Status)
		filter.Status = &status
	}

	sales, total, err := s.repo.List(filter, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get sales: %w", err)
	}

	responses := make([]SaleResponse, len(sales))
	for i := range sales {
		responses[i] = *toSaleResponse(&sales[i])
	}

	return &SaleListResponse{
		Sales:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update changes a sale's terms and status
func (s *SaleService) Update(id uuid.UUID, req *UpdateSaleRequest) (*SaleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	sale, err := s.get(id)
	if err != nil {
		return nil, err
	}

	sale.Amount = req.Amount
	sale.DurationYears = req.DurationYears
	sale.Status = models.SaleStatus(req.Status)

	if err := s.repo.Update(sale); err != nil {
		return nil, fmt.Errorf("failed to update sale: %w", err)
	}

	return toSaleResponse(sale), nil
}

// Delete deletes a sale
func (s *SaleService) Delete(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrSaleNotFound
		}
		return fmt.Errorf("failed to delete sale: %w", err)
	}
	return nil
}

// Calculate quotes and stores the monthly payment of a product for a client.
// Each client keeps one quote per product, amount and duration.
func (s *SaleService) Calculate(clientID uuid.UUID, req *CalculateRequest) (*CalculationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.getClient(clientID); err != nil {
		return nil, err
	}
	product, err := s.getProduct(req.BankProductID)
	if err != nil {
		return nil, err
	}
	if product.InterestRate == nil {
		return nil, apperrors.ErrProductHasNoInterestRate
	}

	calculation := &models.Calculation{
		ClientID:      clientID,
		BankProductID: product.ID,
		Amount:        req.Amount,
		DurationYears: req.DurationYears,
		Rate:          finance.MonthlyPayment(req.Amount, *product.InterestRate, req.DurationYears),
	}
	if err := s.repo.CreateCalculation(calculation); err != nil {
		if isDuplicateKey(err) {
			return nil, apperrors.ErrCalculationExists
		}
		return nil, fmt.Errorf("failed to store calculation: %w", err)
	}
	calculation.BankProduct = product

	return toCalculationResponse(calculation), nil
}

// GetCalculations lists a client's stored quotes, newest first
func (s *SaleService) GetCalculations(clientID uuid.UUID) ([]CalculationResponse, error) {
	if _, err := s.getClient(clientID); err != nil {
		return nil, err
	}

	calculations, err := s.repo.ListCalculations(clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to get calculations: %w", err)
	}

	responses := make([]CalculationResponse, len(calculations))
	for i := range calculations {
		responses[i] = *toCalculationResponse(&calculations[i])
	}
	return responses, nil
}

func (s *SaleService) get(id uuid.UUID) (*models.Sale, error) {
	sale, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSaleNotFound
		}
		return nil, fmt.Errorf("failed to get sale: %w", err)
	}
	return sale, nil
}

func (s *SaleService) getClient(id uuid.UUID) (*models.Client, error) {
	client, err := s.clientRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	return client, nil
}

func (s *SaleService) getProduct(id uuid.UUID) (*models.BankProduct, error) {
	product, err := s.bankRepo.GetProduct(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBankProductNotFound
		}
		return nil, fmt.Errorf("failed to get bank product: %w", err)
	}
	return product, nil
}

func toSaleResponse(sale *models.Sale) *SaleResponse {
	response := &SaleResponse{
		ID:            sale.ID,
		ClientID:      sale.ClientID,
		BankProductID: sale.BankProductID,
		SaleDate:      formatTime(sale.SaleDate),
		Amount:        sale.Amount,
		DurationYears: sale.DurationYears,
		Status:        string(sale.Status),
		CreatedAt:     formatTime(sale.CreatedAt),
		UpdatedAt:     formatTime(sale.UpdatedAt),
	}
	if sale.BankProduct != nil {
		response.ProductType = string(sale.BankProduct.ProductType)
	}
	return response
}

func toCalculationResponse(calculation *models.Calculation) *CalculationResponse {
	response := &CalculationResponse{
		ID:             calculation.ID,
		ClientID:       calculation.ClientID,
		BankProductID:  calculation.BankProductID,
		Amount:         calculation.Amount,
		DurationYears:  calculation.DurationYears,
		MonthlyPayment: calculation.Rate,
		CreatedAt:      formatTime(calculation.CreatedAt),
	}
	if product := calculation.BankProduct; product != nil {
		response.ProductType = string(product.ProductType)
		if product.InterestRate != nil {
			response.InterestRate = *product.InterestRate
		}
		if product.Bank != nil {
			response.BankName = product.Bank.Name
		}
	}
	return response
}
