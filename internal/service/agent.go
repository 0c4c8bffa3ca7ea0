package service

import (
	"errors"
	"fmt"

	"lead-crm-backend/internal/database/models"
	apperrors "lead-crm-backend/internal/errors"
	"lead-crm-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AgentService handles business logic for agents and their company links
type AgentService struct {
	repo      repository.AgentRepositoryInterface
	teamRepo  repository.TeamRepositoryInterface
	validator *validator.Validate
}

// NewAgentService creates a new agent service
func NewAgentService(repo repository.AgentRepositoryInterface, teamRepo repository.TeamRepositoryInterface, validator *validator.Validate) *AgentService {
	return &AgentService{
		repo:      repo,
		teamRepo:  teamRepo,
		validator: validator,
	}
}

// CreateAgentRequest represents the request to create an agent
type CreateAgentRequest struct {
	FirstName   string     `json:"first_name" validate:"required,alphaspace,max=30"`
	LastName    string     `json:"last_name" validate:"required,alphaspace,max=30"`
	Email       string     `json:"email" validate:"required,email,max=50"`
	PhoneNumber string     `json:"phone_number,omitempty" validate:"omitempty,phone"`
	Role        string     `json:"role" validate:"required,oneof=sales support"`
	TeamID      *uuid.UUID `json:"team_id,omitempty"`
}

// UpdateAgentRequest represents the request to update an agent
type UpdateAgentRequest struct {
	FirstName   string     `json:"first_name" validate:"required,alphaspace,max=30"`
	LastName    string     `json:"last_name" validate:"required,alphaspace,max=30"`
	Email       string     `json:"email" validate:"required,email,max=50"`
	PhoneNumber string     `json:"phone_number,omitempty" validate:"omitempty,phone"`
	Role        string     `json:"role" validate:"required,oneof=sales support"`
	TeamID      *uuid.UUID `json:"team_id,omitempty"`
}

// AgentCompaniesRequest lists companies to link to or unlink from an agent
type AgentCompaniesRequest struct {
	CompanyIDs []uuid.UUID `json:"company_ids" validate:"required,min=1"`
}

// AgentResponse represents the response for agent operations
type AgentResponse struct {
	ID          uuid.UUID        `json:"id"`
	FirstName   string           `json:"first_name"`
	LastName    string           `json:"last_name"`
	FullName    string           `json:"full_name"`
	Email       string           `json:"email"`
	PhoneNumber string           `json:"phone_number,omitempty"`
	Role        models.AgentRole `json:"role"`
	TeamID      *uuid.UUID       `json:"team_id"`
	CreatedAt   string           `json:"created_at"`
	UpdatedAt   string           `json:"updated_at"`
}

// AgentWithCompaniesResponse represents an agent with the companies it serves
type AgentWithCompaniesResponse struct {
	AgentResponse
	TeamName  string            `json:"team_name,omitempty"`
	Companies []CompanyResponse `json:"companies"`
}

// AgentListResponse represents a paginated list of agents
type AgentListResponse struct {
	Agents   []AgentResponse `json:"agents"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// Create creates a new agent
func (s *AgentService) Create(req *CreateAgentRequest) (*AgentResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if req.TeamID != nil {
		if err := s.ensureTeam(*req.TeamID); err != nil {
			return nil, err
		}
	}

	agent := &models.Agent{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Role:        models.AgentRole(req.Role),
		TeamID:      req.TeamID,
	}

	if err := s.repo.Create(agent); err != nil {
		if isDuplicateKey(err) {
			return nil, apperrors.ErrAgentExists
		}
		return nil, fmt.Errorf("failed to create agent: %w", err)
	}

	return toAgentResponse(agent), nil
}

// GetByID retrieves an agent with its team name and companies
func (s *AgentService) GetByID(id uuid.UUID) (*AgentWithCompaniesResponse, error) {
	agent, err := s.repo.GetWithCompanies(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAgentNotFound
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}

	return toAgentWithCompaniesResponse(agent), nil
}

// GetAll retrieves all agents with pagination
func (s *AgentService) GetAll(page, pageSize int) (*AgentListResponse, error) {
	page, pageSize, offset := paginate(page, pageSize)

	agents, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get agents: %w", err)
	}

	responses := make([]AgentResponse, len(agents))
	for i := range agents {
		responses[i] = *toAgentResponse(&agents[i])
	}

	return &AgentListResponse{
		Agents:   responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates an agent. Moving an agent to another team drops its company
// links, since it may only serve companies of its own team.
func (s *AgentService) Update(id uuid.UUID, req *UpdateAgentRequest) (*AgentResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	agent, err := s.repo.GetWithCompanies(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAgentNotFound
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}

	if req.TeamID != nil {
		if err := s.ensureTeam(*req.TeamID); err != nil {
			return nil, err
		}
	}
	teamChanged := !sameID(agent.TeamID, req.TeamID)

	agent.FirstName = req.FirstName
	agent.LastName = req.LastName
	agent.Email = req.Email
	agent.PhoneNumber = req.PhoneNumber
	agent.Role = models.AgentRole(req.Role)
	agent.TeamID = req.TeamID
	agent.Team = nil

	if err := s.repo.Update(agent); err != nil {
		if isDuplicateKey(err) {
			return nil, apperrors.ErrAgentExists
		}
		return nil, fmt.Errorf("failed to update agent: %w", err)
	}

	if teamChanged && len(agent.Companies) > 0 {
		ids := make([]uuid.UUID, len(agent.Companies))
		for i := range agent.Companies {
			ids[i] = agent.Companies[i].ID
		}
		if err := s.repo.RemoveCompanies(agent.ID, ids); err != nil {
			return nil, fmt.Errorf("failed to drop company links: %w", err)
		}
	}

	return toAgentResponse(agent), nil
}

// Delete deletes an agent
func (s *AgentService) Delete(id uuid.UUID) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAgentNotFound
		}
		return fmt.Errorf("failed to get agent: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete agent: %w", err)
	}

	return nil
}

// AssignCompanies links an agent to companies served by its team
func (s *AgentService) AssignCompanies(id uuid.UUID, req *AgentCompaniesRequest) (*AgentWithCompaniesResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	agent, served, err := s.agentWithTeamCompanies(id)
	if err != nil {
		return nil, err
	}
	if len(served) == 0 {
		return nil, apperrors.ErrNoCompaniesToAssign
	}

	servedIDs := make(map[uuid.UUID]bool, len(served))
	for i := range served {
		servedIDs[served[i].ID] = true
	}
	for _, companyID := range req.CompanyIDs {
		if !servedIDs[companyID] {
			return nil, apperrors.ErrCompanyNotServedByTeam
		}
	}

	if err := s.repo.AddCompanies(agent.ID, req.CompanyIDs); err != nil {
		return nil, fmt.Errorf("failed to assign companies: %w", err)
	}

	return s.GetByID(agent.ID)
}

// UnassignCompanies unlinks an agent from companies it is currently linked to
func (s *AgentService) UnassignCompanies(id uuid.UUID, req *AgentCompaniesRequest) (*AgentWithCompaniesResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	agent, err := s.repo.GetWithCompanies(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAgentNotFound
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}
	if len(agent.Companies) == 0 {
		return nil, apperrors.ErrNoCompaniesToUnassign
	}

	linked := make(map[uuid.UUID]bool, len(agent.Companies))
	for i := range agent.Companies {
		linked[agent.Companies[i].ID] = true
	}
	for _, companyID := range req.CompanyIDs {
		if !linked[companyID] {
			return nil, apperrors.ErrAgentCompanyNotAssigned
		}
	}

	if err := s.repo.RemoveCompanies(agent.ID, req.CompanyIDs); err != nil {
		return nil, fmt.Errorf("failed to unassign companies: %w", err)
	}

	return s.GetByID(agent.ID)
}

// GetAssignableCompanies lists companies served by the agent's team that the
// agent is not linked to yet
func (s *AgentService) GetAssignableCompanies(id uuid.UUID) ([]CompanyResponse, error) {
	agent, served, err := s.agentWithTeamCompanies(id)
	if err != nil {
		return nil, err
	}

	linked := make(map[uuid.UUID]bool, len(agent.Companies))
	for i := range agent.Companies {
		linked[agent.Companies[i].ID] = true
	}

	responses := make([]CompanyResponse, 0, len(served))
	for i := range served {
		if !linked[served[i].ID] {
			responses = append(responses, *toCompanyResponse(&served[i]))
		}
	}
	return responses, nil
}

func (s *AgentService) agentWithTeamCompanies(id uuid.UUID) (*models.Agent, []models.Company, error) {
	agent, err := s.repo.GetWithCompanies(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.ErrAgentNotFound
		}
		return nil, nil, fmt.Errorf("failed to get agent: %w", err)
	}
	if agent.TeamID == nil {
		return nil, nil, apperrors.ErrAgentHasNoTeam
	}

	served, err := s.teamRepo.GetCompanies(*agent.TeamID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get team companies: %w", err)
	}
	return agent, served, nil
}

func (s *AgentService) ensureTeam(teamID uuid.UUID) error {
	if _, err := s.teamRepo.GetByID(teamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("failed to get team: %w", err)
	}
	return nil
}

func sameID(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func toAgentResponse(agent *models.Agent) *AgentResponse {
	return &AgentResponse{
		ID:          agent.ID,
		FirstName:   agent.FirstName,
		LastName:    agent.LastName,
		FullName:    agent.FullName(),
		Email:       agent.Email,
		PhoneNumber: agent.PhoneNumber,
		Role:        agent.Role,
		TeamID:      agent.TeamID,
		CreatedAt:   formatTime(agent.CreatedAt),
		UpdatedAt:   formatTime(agent.UpdatedAt),
	}
}

func toAgentWithCompaniesResponse(agent *models.Agent) *AgentWithCompaniesResponse {
	companies := make([]CompanyResponse, len(agent.Companies))
	for i := range agent.Companies {
		companies[i] = *toCompanyResponse(&agent.Companies[i])
	}
	resp := &AgentWithCompaniesResponse{
		AgentResponse: *toAgentResponse(agent),
		Companies:     companies,
	}
	if agent.Team != nil {
		resp.TeamName = agent.Team.Name
	}
	return resp
}
