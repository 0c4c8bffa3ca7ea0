package repository

import (
	"context"

	"lead-crm-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// CursorAdvanceFunc receives the currently stored cursor value and returns the
// value to store. It runs while the cursor row is locked and may be called more
// than once if the transaction is retried, so it must not have side effects.
type CursorAdvanceFunc func(current *uuid.UUID) *uuid.UUID

// LeadFilter narrows lead listings. Nil fields are ignored.
type LeadFilter struct {
	CompanyID *uuid.UUID
	TeamID    *uuid.UUID
	AgentID   *uuid.UUID
	Status    *models.AssignmentStatus
}

// ClientFilter narrows client listings. Nil fields are ignored.
type ClientFilter struct {
	TeamID  *uuid.UUID
	AgentID *uuid.UUID
}

// SaleFilter narrows sale listings by the owning client. Nil fields are ignored.
type SaleFilter struct {
	ClientID *uuid.UUID
	TeamID   *uuid.UUID
	AgentID  *uuid.UUID
	Status   *models.SaleStatus
}

// CompanyRepositoryInterface defines the interface for company repository operations
type CompanyRepositoryInterface interface {
	Create(company *models.Company) error
	GetByID(id uuid.UUID) (*models.Company, error)
	GetBySlug(slug string) (*models.Company, error)
	GetByPath(path string) (*models.Company, error)
	GetAll(limit, offset int) ([]models.Company, int64, error)
	Update(company *models.Company) error
	Delete(id uuid.UUID) error
	GetTeamLinks(companyID uuid.UUID) ([]models.TeamCompany, error)
	GetTeamLink(companyID, teamID uuid.UUID) (*models.TeamCompany, error)
	LinkTeam(link *models.TeamCompany) error
	UpdateTeamLinkMode(companyID, teamID uuid.UUID, mode models.LeadAssignmentMode) error
	UnlinkTeam(companyID, teamID uuid.UUID) error
	GetAgents(companyID uuid.UUID) ([]models.Agent, error)
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetBySlug(slug string) (*models.Team, error)
	GetAll(teamType *models.TeamType, limit, offset int) ([]models.Team, int64, error)
	GetWithAgents(id uuid.UUID) (*models.Team, error)
	GetCompanies(teamID uuid.UUID) ([]models.Company, error)
	GetRotationCandidates(companyID uuid.UUID, teamType models.TeamType) ([]models.Team, error)
	Update(team *models.Team) error
	Delete(id uuid.UUID) error
}

// AgentRepositoryInterface defines the interface for agent repository operations
type AgentRepositoryInterface interface {
	Create(agent *models.Agent) error
	GetByID(id uuid.UUID) (*models.Agent, error)
	GetWithCompanies(id uuid.UUID) (*models.Agent, error)
	GetAll(limit, offset int) ([]models.Agent, int64, error)
	GetByTeamID(teamID uuid.UUID) ([]models.Agent, error)
	GetRotationCandidates(teamID, companyID uuid.UUID) ([]models.Agent, error)
	AddCompanies(agentID uuid.UUID, companyIDs []uuid.UUID) error
	RemoveCompanies(agentID uuid.UUID, companyIDs []uuid.UUID) error
	Update(agent *models.Agent) error
	Delete(id uuid.UUID) error
}

// LeadRepositoryInterface defines the interface for lead repository operations
type LeadRepositoryInterface interface {
	Create(lead *models.Lead) error
	CreateWithSubmission(lead *models.Lead, submission *models.LeadSubmission) error
	GetByID(id uuid.UUID) (*models.Lead, error)
	GetWithRelations(id uuid.UUID) (*models.Lead, error)
	GetByEmail(email string) (*models.Lead, error)
	List(filter LeadFilter, limit, offset int) ([]models.Lead, int64, error)
	GetSubmission(leadID uuid.UUID) (*models.LeadSubmission, error)
	Update(lead *models.Lead) error
	UpdateAssignment(id uuid.UUID, teamID, agentID *uuid.UUID) error
	Delete(id uuid.UUID) error
}

// AssignmentCursorRepositoryInterface persists round-robin rotation cursors.
// Advance methods get-or-create the cursor row, lock it, and store whatever
// the advance func returns, all in one transaction.
type AssignmentCursorRepositoryInterface interface {
	AdvanceTeamCursor(ctx context.Context, companyID uuid.UUID, teamType models.TeamType, advance CursorAdvanceFunc) (*uuid.UUID, error)
	AdvanceAgentCursor(ctx context.Context, teamID, companyID uuid.UUID, advance CursorAdvanceFunc) (*uuid.UUID, error)
	GetTeamCursors(companyID uuid.UUID) ([]models.TeamAssignmentCursor, error)
	GetAgentCursor(teamID uuid.UUID) (*models.AgentAssignmentCursor, error)
}

// ClientRepositoryInterface defines the interface for client repository operations
type ClientRepositoryInterface interface {
	Create(client *models.Client) error
	GetByID(id uuid.UUID) (*models.Client, error)
	GetByPhone(phone string) (*models.Client, error)
	List(filter ClientFilter, limit, offset int) ([]models.Client, int64, error)
	Update(client *models.Client) error
	Delete(id uuid.UUID) error
}

// BankRepositoryInterface defines the interface for bank and bank product operations
type BankRepositoryInterface interface {
	Create(bank *models.Bank) error
	GetByID(id uuid.UUID) (*models.Bank, error)
	GetWithProducts(id uuid.UUID) (*models.Bank, error)
	GetAll(limit, offset int) ([]models.Bank, int64, error)
	Update(bank *models.Bank) error
	Delete(id uuid.UUID) error
	CreateProduct(product *models.BankProduct) error
	GetProduct(id uuid.UUID) (*models.BankProduct, error)
	ListProducts(bankID *uuid.UUID, productType *models.BankProductType, limit, offset int) ([]models.BankProduct, int64, error)
	UpdateProduct(product *models.BankProduct) error
	DeleteProduct(id uuid.UUID) error
}

// SaleRepositoryInterface defines the interface for sale and calculation operations
type SaleRepositoryInterface interface {
	Create(sale *models.Sale) error
	GetByID(id uuid.UUID) (*models.Sale, error)
	List(filter SaleFilter, limit, offset int) ([]models.Sale, int64, error)
	Update(sale *models.Sale) error
	Delete(id uuid.UUID) error
	CreateCalculation(calculation *models.Calculation) error
	ListCalculations(clientID uuid.UUID) ([]models.Calculation, error)
}
