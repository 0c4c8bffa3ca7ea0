package service

import (
	"context"

	"lead-crm-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// DistributionServiceInterface defines the round-robin selectors used to route leads
type DistributionServiceInterface interface {
	SelectTeam(ctx context.Context, companyID uuid.UUID, teamType models.TeamType) (*uuid.UUID, error)
	SelectAgent(ctx context.Context, teamID, companyID uuid.UUID) (*uuid.UUID, error)
	GetCursors(companyID uuid.UUID) (*CursorReportResponse, error)
}

// IntakeServiceInterface defines the interface for public lead intake
type IntakeServiceInterface interface {
	SubmitLead(ctx context.Context, req *SubmitLeadRequest) (*LeadResponse, error)
}

// CompanyServiceInterface defines the interface for company service
type CompanyServiceInterface interface {
	Create(req *CreateCompanyRequest) (*CompanyResponse, error)
	GetByID(id uuid.UUID) (*CompanyResponse, error)
	GetAll(page, pageSize int) (*CompanyListResponse, error)
	Update(id uuid.UUID, req *UpdateCompanyRequest) (*CompanyResponse, error)
	Delete(id uuid.UUID) error
	GetTeams(companyID uuid.UUID) ([]CompanyTeamResponse, error)
	LinkTeam(companyID uuid.UUID, req *LinkTeamRequest) (*CompanyTeamResponse, error)
	UpdateTeamLink(companyID, teamID uuid.UUID, req *UpdateTeamLinkRequest) (*CompanyTeamResponse, error)
	UnlinkTeam(companyID, teamID uuid.UUID) error
	GetAgents(companyID uuid.UUID) ([]AgentResponse, error)
}

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	Create(req *CreateTeamRequest) (*TeamResponse, error)
	GetByID(id uuid.UUID) (*TeamResponse, error)
	GetAll(teamType string, page, pageSize int) (*TeamListResponse, error)
	Update(id uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error)
	Delete(id uuid.UUID) error
	GetWithAgents(id uuid.UUID) (*TeamWithAgentsResponse, error)
	GetCompanies(id uuid.UUID) ([]CompanyResponse, error)
}

// AgentServiceInterface defines the interface for agent service
type AgentServiceInterface interface {
	Create(req *CreateAgentRequest) (*AgentResponse, error)
	GetByID(id uuid.UUID) (*AgentWithCompaniesResponse, error)
	GetAll(page, pageSize int) (*AgentListResponse, error)
	Update(id uuid.UUID, req *UpdateAgentRequest) (*AgentResponse, error)
	Delete(id uuid.UUID) error
	AssignCompanies(id uuid.UUID, req *AgentCompaniesRequest) (*AgentWithCompaniesResponse, error)
	UnassignCompanies(id uuid.UUID, req *AgentCompaniesRequest) (*AgentWithCompaniesResponse, error)
	GetAssignableCompanies(id uuid.UUID) ([]CompanyResponse, error)
}

// LeadServiceInterface defines the interface for lead management
type LeadServiceInterface interface {
	GetAll(query *ListLeadsQuery) (*LeadListResponse, error)
	GetByID(id uuid.UUID) (*LeadDetailResponse, error)
	Update(id uuid.UUID, req *UpdateLeadRequest) (*LeadResponse, error)
	Delete(id uuid.UUID) error
	Assign(ctx context.Context, id uuid.UUID, req *AssignLeadRequest) (*LeadResponse, error)
	GetSubmission(id uuid.UUID) (*LeadSubmissionResponse, error)
}

// ClientServiceInterface defines the interface for client service
type ClientServiceInterface interface {
	Create(req *CreateClientRequest) (*ClientResponse, error)
	CreateFromLead(leadID uuid.UUID, req *ConvertLeadRequest) (*ClientResponse, bool, error)
	GetByID(id uuid.UUID) (*ClientResponse, error)
	GetAll(query *ListClientsQuery) (*ClientListResponse, error)
	Update(id uuid.UUID, req *UpdateClientRequest) (*ClientResponse, error)
	Delete(id uuid.UUID) error
	ProcessCreditworthiness(id uuid.UUID) (*ClientResponse, error)
}

// BankServiceInterface defines the interface for bank and bank product service
type BankServiceInterface interface {
	Create(req *BankRequest) (*BankResponse, error)
	GetByID(id uuid.UUID) (*BankWithProductsResponse, error)
	GetAll(page, pageSize int) (*BankListResponse, error)
	Update(id uuid.UUID, req *BankRequest) (*BankResponse, error)
	Delete(id uuid.UUID) error
	CreateProduct(req *BankProductRequest) (*BankProductResponse, error)
	GetProduct(id uuid.UUID) (*BankProductResponse, error)
	ListProducts(bankID *uuid.UUID, productType string, page, pageSize int) (*BankProductListResponse, error)
	UpdateProduct(id uuid.UUID, req *BankProductRequest) (*BankProductResponse, error)
	DeleteProduct(id uuid.UUID) error
}

// SaleServiceInterface defines the interface for sale service
type SaleServiceInterface interface {
	Create(req *CreateSaleRequest) (*SaleResponse, error)
	GetByID(id uuid.UUID) (*SaleResponse, error)
	GetAll(query *ListSalesQuery) (*SaleListResponse, error)
	Update(id uuid.UUID, req *UpdateSaleRequest) (*SaleResponse, error)
	Delete(id uuid.UUID) error
	Calculate(clientID uuid.UUID, req *CalculateRequest) (*CalculationResponse, error)
	GetCalculations(clientID uuid.UUID) ([]CalculationResponse, error)
}
