package service

import (
	"errors"
	"fmt"
	"time"

	"lead-crm-backend/internal/database/models"
	apperrors "lead-crm-backend/internal/errors"
	"lead-crm-backend/internal/finance"
	"lead-crm-backend/internal/logger"
	"lead-crm-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// ClientService handles business logic for clients and their creditworthiness
type ClientService struct {
	repo      repository.ClientRepositoryInterface
	leadRepo  repository.LeadRepositoryInterface
	validator *validator.Validate
}

// NewClientService creates a new client service
func NewClientService(
	repo repository.ClientRepositoryInterface,
	leadRepo repository.LeadRepositoryInterface,
	validator *validator.Validate,
) *ClientService {
	return &ClientService{
		repo:      repo,
		leadRepo:  leadRepo,
		validator: validator,
	}
}

// ClientProfile is the financial profile banks assess. Money is monthly.
type ClientProfile struct {
	BirthDate           string          `json:"birth_date" validate:"required,datetime=2006-01-02" example:"1988-04-12"`
	Salary              decimal.Decimal `json:"salary" validate:"gt=0" example:"8000.00"`
	SourceOfIncome      string          `json:"source_of_income" validate:"required,oneof=employment business investment rental royalties other"`
	Employer            string          `json:"employer,omitempty" validate:"omitempty,max=100"`
	EmploymentType      string          `json:"employment_type,omitempty" validate:"omitempty,oneof=open_ended_employment fixed_term_employment open_ended_b2b fixed_term_b2b specific_work open_ended_service fixed_term_service not_applicable"`
	EmploymentStartDate string          `json:"employment_start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EmploymentEndDate   string          `json:"employment_end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Liabilities         decimal.Decimal `json:"liabilities" validate:"gte=0" example:"500.00"`
	LivingExpenses      decimal.Decimal `json:"living_expenses" validate:"gte=0" example:"2500.00"`
	RatePerMonth        decimal.Decimal `json:"rate_per_month" validate:"gte=0" example:"700.00"`
}

// CreateClientRequest represents the request to create a client
type CreateClientRequest struct {
	TeamID      *uuid.UUID `json:"team_id,omitempty"`
	AgentID     *uuid.UUID `json:"agent_id,omitempty"`
	FirstName   string     `json:"first_name" validate:"required,alphaspace,max=30"`
	LastName    string     `json:"last_name" validate:"required,alphaspace,max=30"`
	Email       string     `json:"email" validate:"required,email,max=255"`
	PhoneNumber string     `json:"phone_number" validate:"required,phone"`
	ClientProfile
}

// UpdateClientRequest represents the request to update a client
type UpdateClientRequest struct {
	TeamID      *uuid.UUID `json:"team_id,omitempty"`
	AgentID     *uuid.UUID `json:"agent_id,omitempty"`
	FirstName   string     `json:"first_name" validate:"required,alphaspace,max=30"`
	LastName    string     `json:"last_name" validate:"required,alphaspace,max=30"`
	Email       string     `json:"email" validate:"required,email,max=255"`
	PhoneNumber string     `json:"phone_number" validate:"required,phone"`
	ClientProfile
}

// ConvertLeadRequest completes a lead's contact details into a client. The
// first name and phone number come from the lead, the email too when omitted.
type ConvertLeadRequest struct {
	LastName string `json:"last_name" validate:"required,alphaspace,max=30"`
	Email    string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	ClientProfile
}

// ListClientsQuery holds the client listing filters and pagination
type ListClientsQuery struct {
	TeamID   *uuid.UUID
	AgentID  *uuid.UUID
	Page     int
	PageSize int
}

// ClientResponse represents the response for client operations
type ClientResponse struct {
	ID                  uuid.UUID       `json:"id"`
	TeamID              *uuid.UUID      `json:"team_id,omitempty"`
	AgentID             *uuid.UUID      `json:"agent_id,omitempty"`
	LeadID              *uuid.UUID      `json:"lead_id,omitempty"`
	FirstName           string          `json:"first_name"`
	LastName            string          `json:"last_name"`
	Email               string          `json:"email"`
	PhoneNumber         string          `json:"phone_number"`
	BirthDate           string          `json:"birth_date"`
	Age                 int             `json:"age"`
	Salary              decimal.Decimal `json:"salary"`
	SourceOfIncome      string          `json:"source_of_income"`
	Employer            string          `json:"employer,omitempty"`
	EmploymentType      string          `json:"employment_type,omitempty"`
	EmploymentStartDate string          `json:"employment_start_date,omitempty"`
	EmploymentEndDate   string          `json:"employment_end_date,omitempty"`
	Liabilities         decimal.Decimal `json:"liabilities"`
	LivingExpenses      decimal.Decimal `json:"living_expenses"`
	RatePerMonth        decimal.Decimal `json:"rate_per_month"`
	NetIncome           decimal.Decimal `json:"net_income"`
	Creditworthiness    decimal.Decimal `json:"creditworthiness"`
	ProcessingDate      string          `json:"processing_date,omitempty"`
	CreatedAt           string          `json:"created_at"`
	UpdatedAt           string          `json:"updated_at"`
}

// ClientListResponse represents a paginated list of clients
type ClientListResponse struct {
	Clients  []ClientResponse `json:"clients"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// Create creates a new client
func (s *ClientService) Create(req *CreateClientRequest) (*ClientResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	client := &models.Client{
		TeamID:      req.TeamID,
		AgentID:     req.AgentID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	}
	if err := applyProfile(client, &req.ClientProfile); err != nil {
		return nil, err
	}

	if err := s.repo.Create(client); err != nil {
		if isDuplicateKey(err) {
			return nil, apperrors.ErrClientExists
		}
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return toClientResponse(client, time.Now()), nil
}

// CreateFromLead converts a lead into a client owned by the lead's team and
// agent. A client already holding the lead's phone number is returned as is,
// with created false.
func (s *ClientService) CreateFromLead(leadID uuid.UUID, req *ConvertLeadRequest) (*ClientResponse, bool, error) {
	lead, err := s.leadRepo.GetByID(leadID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, apperrors.ErrLeadNotFound
		}
		return nil, false, fmt.Errorf("failed to get lead: %w", err)
	}

	existing, err := s.repo.GetByPhone(lead.PhoneNumber)
	if err == nil {
		return toClientResponse(existing, time.Now()), false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to look up client: %w", err)
	}

	if err := s.validator.Struct(req); err != nil {
		return nil, false, fmt.Errorf("validation failed: %w", err)
	}

	email := req.Email
	if email == "" && lead.Email != nil {
		email = *lead.Email
	}
	if email == "" {
		return nil, false, apperrors.NewValidationError("email", "is required when the lead has none")
	}

	client := &models.Client{
		TeamID:      lead.TeamID,
		AgentID:     lead.AgentID,
		LeadID:      &lead.ID,
		FirstName:   lead.FirstName,
		LastName:    req.LastName,
		Email:       email,
		PhoneNumber: lead.PhoneNumber,
	}
	if err := applyProfile(client, &req.ClientProfile); err != nil {
		return nil, false, err
	}

	if err := s.repo.Create(client); err != nil {
		if isDuplicateKey(err) {
			return nil, false, apperrors.ErrClientExists
		}
		return nil, false, fmt.Errorf("failed to create client: %w", err)
	}

	logger.New().WithFields(map[string]interface{}{
		"lead_id":   lead.ID,
		"client_id": client.ID,
	}).Info("Lead converted to client")

	return toClientResponse(client, time.Now()), true, nil
}

// GetByID retrieves a client by ID
func (s *ClientService) GetByID(id uuid.UUID) (*ClientResponse, error) {
	client, err := s.get(id)
	if err != nil {
		return nil, err
	}
	return toClientResponse(client, time.Now()), nil
}

// GetAll retrieves clients with pagination, optionally of one team or agent
func (s *ClientService) GetAll(query *ListClientsQuery) (*ClientListResponse, error) {
	page, pageSize, offset := paginate(query.Page, query.PageSize)
	filter := repository.ClientFilter{TeamID: query.TeamID, AgentID: query.AgentID}

	clients, total, err := s.repo.List(filter, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get clients: %w", err)
	}

	now := time.Now()
	responses := make([]ClientResponse, len(clients))
	for i := range clients {
		responses[i] = *toClientResponse(&clients[i], now)
	}

	return &ClientListResponse{
		Clients:  responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates a client's details and profile. The stored creditworthiness
// is left untouched until the client is processed again.
func (s *ClientService) Update(id uuid.UUID, req *UpdateClientRequest) (*ClientResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	client, err := s.get(id)
	if err != nil {
		return nil, err
	}

	client.TeamID = req.TeamID
	client.AgentID = req.AgentID
	client.FirstName = req.FirstName
	client.LastName = req.LastName
	client.Email = req.Email
	client.PhoneNumber = req.PhoneNumber
	if err := applyProfile(client, &req.ClientProfile); err != nil {
		return nil, err
	}

	if err := s.repo.Update(client); err != nil {
		if isDuplicateKey(err) {
			return nil, apperrors.ErrClientExists
		}
		return nil, fmt.Errorf("failed to update client: %w", err)
	}

	return toClientResponse(client, time.Now()), nil
}

// Delete deletes a client with its sales
func (s *ClientService) Delete(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrClientNotFound
		}
		return fmt.Errorf("failed to delete client: %w", err)
	}
	return nil
}

// ProcessCreditworthiness recomputes and stores the client's creditworthiness.
// A client processed within the last 15 days is rejected.
func (s *ClientService) ProcessCreditworthiness(id uuid.UUID) (*ClientResponse, error) {
	client, err := s.get(id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if !finance.CanReprocess(client.ProcessingDate, now) {
		return nil, apperrors.ErrClientProcessedRecently
	}

	client.Creditworthiness = finance.Creditworthiness(client.NetIncome(), client.LivingExpenses)
	client.ProcessingDate = &now

	if err := s.repo.Update(client); err != nil {
		return nil, fmt.Errorf("failed to update client: %w", err)
	}

	logger.New().WithFields(map[string]interface{}{
		"client_id":        client.ID,
		"creditworthiness": client.Creditworthiness.String(),
	}).Info("Client creditworthiness processed")

	return toClientResponse(client, now), nil
}

func (s *ClientService) get(id uuid.UUID) (*models.Client, error) {
	client, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	return client, nil
}

// applyProfile copies a validated profile onto client
func applyProfile(client *models.Client, p *ClientProfile) error {
	birthDate, err := time.Parse(dateLayout, p.BirthDate)
	if err != nil {
		return apperrors.NewValidationError("birth_date", "must be a date in YYYY-MM-DD format")
	}
	start, err := parseOptionalDate("employment_start_date", p.EmploymentStartDate)
	if err != nil {
		return err
	}
	end, err := parseOptionalDate("employment_end_date", p.EmploymentEndDate)
	if err != nil {
		return err
	}
	if start != nil && end != nil && end.Before(*start) {
		return apperrors.ErrEmploymentDatesOutOfOrder
	}

	client.BirthDate = birthDate
	client.Salary = p.Salary
	client.SourceOfIncome = models.SourceOfIncome(p.SourceOfIncome)
	client.Employer = p.Employer
	client.EmploymentType = models.EmploymentType(p.EmploymentType)
	client.EmploymentStartDate = start
	client.EmploymentEndDate = end
	client.Liabilities = p.Liabilities
	client.LivingExpenses = p.LivingExpenses
	client.RatePerMonth = p.RatePerMonth
	return nil
}

func parseOptionalDate(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, apperrors.NewValidationError(field, "must be a date in YYYY-MM-DD format")
	}
	return &t, nil
}

func formatOptionalDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

func toClientResponse(client *models.Client, now time.Time) *ClientResponse {
	response := &ClientResponse{
		ID:                  client.ID,
		TeamID:              client.TeamID,
		AgentID:             client.AgentID,
		LeadID:              client.LeadID,
		FirstName:           client.FirstName,
		LastName:            client.LastName,
		Email:               client.Email,
		PhoneNumber:         client.PhoneNumber,
		BirthDate:           client.BirthDate.Format(dateLayout),
		Age:                 client.Age(now),
		Salary:              client.Salary,
		SourceOfIncome:      string(client.SourceOfIncome),
		Employer:            client.Employer,
		EmploymentType:      string(client.EmploymentType),
		EmploymentStartDate: formatOptionalDate(client.EmploymentStartDate),
		EmploymentEndDate:   formatOptionalDate(client.EmploymentEndDate),
		Liabilities:         client.Liabilities,
		LivingExpenses:      client.LivingExpenses,
		RatePerMonth:        client.RatePerMonth,
		NetIncome:           client.NetIncome(),
		Creditworthiness:    client.Creditworthiness,
		CreatedAt:           formatTime(client.CreatedAt),
		UpdatedAt:           formatTime(client.UpdatedAt),
	}
	if client.ProcessingDate != nil {
		response.ProcessingDate = formatTime(*client.ProcessingDate)
	}
	return response
}
