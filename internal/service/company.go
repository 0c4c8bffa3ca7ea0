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

// CompanyService handles business logic for companies and their team links
type CompanyService struct {
	repo      repository.CompanyRepositoryInterface
	teamRepo  repository.TeamRepositoryInterface
	validator *validator.Validate
}

// NewCompanyService creates a new company service
func NewCompanyService(repo repository.CompanyRepositoryInterface, teamRepo repository.TeamRepositoryInterface, validator *validator.Validate) *CompanyService {
	return &CompanyService{
		repo:      repo,
		teamRepo:  teamRepo,
		validator: validator,
	}
}

// CreateCompanyRequest represents the request to create a company
type CreateCompanyRequest struct {
	Name           string `json:"name" validate:"required,min=1,max=100"`
	Path           string `json:"path" validate:"required,max=200"`
	Website        string `json:"website" validate:"required,url,max=200"`
	LeadAssignment string `json:"lead_assignment,omitempty" validate:"omitempty,oneof=auto manual disabled"`
}

// UpdateCompanyRequest represents the request to update a company
type UpdateCompanyRequest struct {
	Name           string `json:"name" validate:"required,min=1,max=100"`
	Path           string `json:"path" validate:"required,max=200"`
	Website        string `json:"website" validate:"required,url,max=200"`
	LeadAssignment string `json:"lead_assignment" validate:"required,oneof=auto manual disabled"`
}

// LinkTeamRequest represents the request to let a team serve a company
type LinkTeamRequest struct {
	TeamID         uuid.UUID `json:"team_id" validate:"required"`
	LeadAssignment string    `json:"lead_assignment,omitempty" validate:"omitempty,oneof=auto manual disabled"`
}

// UpdateTeamLinkRequest represents the request to change a company-team link mode
type UpdateTeamLinkRequest struct {
	LeadAssignment string `json:"lead_assignment" validate:"required,oneof=auto manual disabled"`
}

// CompanyResponse represents the response for company operations
type CompanyResponse struct {
	ID             uuid.UUID                 `json:"id"`
	Name           string                    `json:"name"`
	Slug           string                    `json:"slug"`
	Path           string                    `json:"path"`
	Website        string                    `json:"website"`
	LeadAssignment models.LeadAssignmentMode `json:"lead_assignment"`
	CreatedAt      string                    `json:"created_at"`
	UpdatedAt      string                    `json:"updated_at"`
}

// CompanyListResponse represents a paginated list of companies
type CompanyListResponse struct {
	Companies []CompanyResponse `json:"companies"`
	Total     int64             `json:"total"`
	Page      int               `json:"page"`
	PageSize  int               `json:"page_size"`
}

// CompanyTeamResponse is a team serving a company together with the link mode
type CompanyTeamResponse struct {
	TeamResponse
	LeadAssignment models.LeadAssignmentMode `json:"lead_assignment"`
}

// Create creates a new company
func (s *CompanyService) Create(req *CreateCompanyRequest) (*CompanyResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	company := &models.Company{
		Name:           req.Name,
		Path:           NormalizePath(req.Path),
		Website:        req.Website,
		LeadAssignment: models.LeadAssignmentMode(req.LeadAssignment),
	}

	if err := s.repo.Create(company); err != nil {
		if isDuplicateKey(err) {
			return nil, apperrors.ErrCompanyExists
		}
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	return toCompanyResponse(company), nil
}

// GetByID retrieves a company by ID
func (s *CompanyService) GetByID(id uuid.UUID) (*CompanyResponse, error) {
	company, err := s.getCompany(id)
	if err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// GetAll retrieves all companies with pagination
func (s *CompanyService) GetAll(page, pageSize int) (*CompanyListResponse, error) {
	page, pageSize, offset := paginate(page, pageSize)

	companies, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get companies: %w", err)
	}

	responses := make([]CompanyResponse, len(companies))
	for i := range companies {
		responses[i] = *toCompanyResponse(&companies[i])
	}

	return &CompanyListResponse{
		Companies: responses,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

// Update updates a company
func (s *CompanyService) Update(id uuid.UUID, req *UpdateCompanyRequest) (*CompanyResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	company, err := s.getCompany(id)
	if err != nil {
		return nil, err
	}

	company.Name = req.Name
	company.Path = NormalizePath(req.Path)
	company.Website = req.Website
	company.LeadAssignment = models.LeadAssignmentMode(req.LeadAssignment)

	if err := s.repo.Update(company); err != nil {
		if isDuplicateKey(err) {
			return nil, apperrors.ErrCompanyExists
		}
		return nil, fmt.Errorf("failed to update company: %w", err)
	}

	return toCompanyResponse(company), nil
}

// Delete deletes a company
func (s *CompanyService) Delete(id uuid.UUID) error {
	if _, err := s.getCompany(id); err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}

	return nil
}

// GetTeams retrieves the teams serving a company, in rotation order
func (s *CompanyService) GetTeams(companyID uuid.UUID) ([]CompanyTeamResponse, error) {
	if _, err := s.getCompany(companyID); err != nil {
		return nil, err
	}

	links, err := s.repo.GetTeamLinks(companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get company teams: %w", err)
	}

	responses := make([]CompanyTeamResponse, 0, len(links))
	for i := range links {
		if links[i].Team == nil {
			continue
		}
		responses = append(responses, CompanyTeamResponse{
			TeamResponse:   *toTeamResponse(links[i].Team),
			LeadAssignment: links[i].LeadAssignment,
		})
	}
	return responses, nil
}

// LinkTeam lets a team serve a company. The link defaults to auto mode.
func (s *CompanyService) LinkTeam(companyID uuid.UUID, req *LinkTeamRequest) (*CompanyTeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.getCompany(companyID); err != nil {
		return nil, err
	}
	team, err := s.teamRepo.GetByID(req.TeamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	mode := models.LeadAssignmentMode(req.LeadAssignment)
	if mode == "" {
		mode = models.LeadAssignmentAuto
	}
	link := &models.TeamCompany{
		TeamID:         team.ID,
		CompanyID:      companyID,
		LeadAssignment: mode,
	}
	if err := s.repo.LinkTeam(link); err != nil {
		if isDuplicateKey(err) {
			return nil, apperrors.ErrTeamCompanyExists
		}
		return nil, fmt.Errorf("failed to link team: %w", err)
	}

	return &CompanyTeamResponse{
		TeamResponse:   *toTeamResponse(team),
		LeadAssignment: mode,
	}, nil
}

// UpdateTeamLink changes whether a team takes part in the company's automatic distribution
func (s *CompanyService) UpdateTeamLink(companyID, teamID uuid.UUID, req *UpdateTeamLinkRequest) (*CompanyTeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	mode := models.LeadAssignmentMode(req.LeadAssignment)
	if err := s.repo.UpdateTeamLinkMode(companyID, teamID, mode); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamCompanyNotFound
		}
		return nil, fmt.Errorf("failed to update team link: %w", err)
	}

	team, err := s.teamRepo.GetByID(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	return &CompanyTeamResponse{
		TeamResponse:   *toTeamResponse(team),
		LeadAssignment: mode,
	}, nil
}

// UnlinkTeam stops a team from serving a company
func (s *CompanyService) UnlinkTeam(companyID, teamID uuid.UUID) error {
	if err := s.repo.UnlinkTeam(companyID, teamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamCompanyNotFound
		}
		return fmt.Errorf("failed to unlink team: %w", err)
	}
	return nil
}

// GetAgents retrieves the agents linked to a company
func (s *CompanyService) GetAgents(companyID uuid.UUID) ([]AgentResponse, error) {
	if _, err := s.getCompany(companyID); err != nil {
		return nil, err
	}

	agents, err := s.repo.GetAgents(companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get company agents: %w", err)
	}

	responses := make([]AgentResponse, len(agents))
	for i := range agents {
		responses[i] = *toAgentResponse(&agents[i])
	}
	return responses, nil
}

func (s *CompanyService) getCompany(id uuid.UUID) (*models.Company, error) {
	company, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return company, nil
}

func toCompanyResponse(company *models.Company) *CompanyResponse {
	return &CompanyResponse{
		ID:             company.ID,
		Name:           company.Name,
		Slug:           company.Slug,
		Path:           company.Path,
		Website:        company.Website,
		LeadAssignment: company.LeadAssignment,
		CreatedAt:      formatTime(company.CreatedAt),
		UpdatedAt:      formatTime(company.UpdatedAt),
	}
}
