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

// TeamService handles business logic for teams
type TeamService struct {
	repo      repository.TeamRepositoryInterface
	validator *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(repo repository.TeamRepositoryInterface, validator *validator.Validate) *TeamService {
	return &TeamService{
		repo:      repo,
		validator: validator,
	}
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Name string `json:"name" validate:"required,min=1,max=50"`
	Type string `json:"type" validate:"required,oneof=sales support"`
}

// UpdateTeamRequest represents the request to update a team
type UpdateTeamRequest struct {
	Name string `json:"name" validate:"required,min=1,max=50"`
	Type string `json:"type" validate:"required,oneof=sales support"`
}

// TeamResponse represents the response for team operations
type TeamResponse struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Type      models.TeamType `json:"type"`
	Slug      string          `json:"slug"`
	CreatedAt string          `json:"created_at"`
	UpdatedAt string          `json:"updated_at"`
}

// TeamListResponse represents a paginated list of teams
type TeamListResponse struct {
	Teams    []TeamResponse `json:"teams"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// TeamWithAgentsResponse represents a team with its agents in rotation order
type TeamWithAgentsResponse struct {
	TeamResponse
	Agents []AgentResponse `json:"agents"`
}

// Create creates a new team
func (s *TeamService) Create(req *CreateTeamRequest) (*TeamResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	team := &models.Team{
		Name: req.Name,
		Type: models.TeamType(req.Type),
	}

	if err := s.repo.Create(team); err != nil {
		if isDuplicateKey(err) {
			return nil, apperrors.ErrTeamExists
		}
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	return toTeamResponse(team), nil
}

// GetByID retrieves a team by ID
func (s *TeamService) GetByID(id uuid.UUID) (*TeamResponse, error) {
	team, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	return toTeamResponse(team), nil
}

// GetAll retrieves teams with pagination, optionally only those of teamType
func (s *TeamService) GetAll(teamType string, page, pageSize int) (*TeamListResponse, error) {
	var filter *models.TeamType
	if teamType != "" {
		t := models.TeamType(teamType)
		if !t.IsValid() {
			return nil, apperrors.ErrInvalidTeamType
		}
		filter = &t
	}

	page, pageSize, offset := paginate(page, pageSize)
	teams, total, err := s.repo.GetAll(filter, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get teams: %w", err)
	}

	responses := make([]TeamResponse, len(teams))
	for i := range teams {
		responses[i] = *toTeamResponse(&teams[i])
	}

	return &TeamListResponse{
		Teams:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates a team
func (s *TeamService) Update(id uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	team, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	team.Name = req.Name
	team.Type = models.TeamType(req.Type)

	if err := s.repo.Update(team); err != nil {
		if isDuplicateKey(err) {
			return nil, apperrors.ErrTeamExists
		}
		return nil, fmt.Errorf("failed to update team: %w", err)
	}

	return toTeamResponse(team), nil
}

// Delete deletes a team. Its agents stay, without a team.
func (s *TeamService) Delete(id uuid.UUID) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("failed to get team: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}

	return nil
}

// GetWithAgents retrieves a team with its agents
func (s *TeamService) GetWithAgents(id uuid.UUID) (*TeamWithAgentsResponse, error) {
	team, err := s.repo.GetWithAgents(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team with agents: %w", err)
	}

	agents := make([]AgentResponse, len(team.Agents))
	for i := range team.Agents {
		agents[i] = *toAgentResponse(&team.Agents[i])
	}

	return &TeamWithAgentsResponse{
		TeamResponse: *toTeamResponse(team),
		Agents:       agents,
	}, nil
}

// GetCompanies retrieves the companies a team serves
func (s *TeamService) GetCompanies(id uuid.UUID) ([]CompanyResponse, error) {
	if _, err := s.GetByID(id); err != nil {
		return nil, err
	}

	companies, err := s.repo.GetCompanies(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get team companies: %w", err)
	}

	responses := make([]CompanyResponse, len(companies))
	for i := range companies {
		responses[i] = *toCompanyResponse(&companies[i])
	}
	return responses, nil
}

func toTeamResponse(team *models.Team) *TeamResponse {
	return &TeamResponse{
		ID:        team.ID,
		Name:      team.Name,
		Type:      team.Type,
		Slug:      team.Slug,
		CreatedAt: formatTime(team.CreatedAt),
		UpdatedAt: formatTime(team.UpdatedAt),
	}
}
