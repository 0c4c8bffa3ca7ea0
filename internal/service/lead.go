package service

import (
	"context"
	"errors"
	"fmt"

	"lead-crm-backend/internal/database/models"
	apperrors "lead-crm-backend/internal/errors"
	"lead-crm-backend/internal/logger"
	"lead-crm-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeadService handles business logic for leads
type LeadService struct {
	repo      repository.LeadRepositoryInterface
	teamRepo  repository.TeamRepositoryInterface
	agentRepo repository.AgentRepositoryInterface
	validator *validator.Validate
}

// NewLeadService creates a new lead service
func NewLeadService(
	repo repository.LeadRepositoryInterface,
	teamRepo repository.TeamRepositoryInterface,
	agentRepo repository.AgentRepositoryInterface,
	validator *validator.Validate,
) *LeadService {
	return &LeadService{
		repo:      repo,
		teamRepo:  teamRepo,
		agentRepo: agentRepo,
		validator: validator,
	}
}

// ListLeadsQuery holds the lead listing filters and pagination
type ListLeadsQuery struct {
	CompanyID *uuid.UUID
	TeamID    *uuid.UUID
	AgentID   *uuid.UUID
	Status    string `validate:"omitempty,oneof=unassigned team_assigned agent_assigned"`
	Page      int
	PageSize  int
}

// UpdateLeadRequest represents the request to update a lead's details
type UpdateLeadRequest struct {
	FirstName   string  `json:"first_name" validate:"required,alphaspace,max=25"`
	PhoneNumber string  `json:"phone_number" validate:"required,phone"`
	Message     string  `json:"message" validate:"max=500"`
	Description string  `json:"description" validate:"max=2000"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Product     string  `json:"product,omitempty" validate:"omitempty,oneof=loan deposits currency credit_card"`
}

// AssignLeadRequest sets a lead's team and agent directly. Omitted fields are cleared.
type AssignLeadRequest struct {
	TeamID  *uuid.UUID `json:"team_id,omitempty"`
	AgentID *uuid.UUID `json:"agent_id,omitempty"`
}

// LeadResponse represents the response for lead operations
type LeadResponse struct {
	ID          uuid.UUID               `json:"id"`
	FirstName   string                  `json:"first_name"`
	PhoneNumber string                  `json:"phone_number"`
	Message     string                  `json:"message"`
	Description string                  `json:"description,omitempty"`
	Email       *string                 `json:"email,omitempty"`
	Product     models.FinancialProduct `json:"product,omitempty"`
	CompanyID   *uuid.UUID              `json:"company_id"`
	TeamID      *uuid.UUID              `json:"team_id"`
	AgentID     *uuid.UUID              `json:"agent_id"`
	Status      models.AssignmentStatus `json:"status"`
	CreatedAt   string                  `json:"created_at"`
	UpdatedAt   string                  `json:"updated_at"`
}

// LeadDetailResponse is a lead with the names of its company, team and agent
type LeadDetailResponse struct {
	LeadResponse
	CompanyName string `json:"company_name,omitempty"`
	TeamName    string `json:"team_name,omitempty"`
	AgentName   string `json:"agent_name,omitempty"`
}

// LeadListResponse represents a paginated list of leads
type LeadListResponse struct {
	Leads    []LeadResponse `json:"leads"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// LeadSubmissionResponse represents the audit record of a public submission
type LeadSubmissionResponse struct {
	LeadID      uuid.UUID `json:"lead_id"`
	IPAddress   string    `json:"ip_address"`
	UserAgent   string    `json:"user_agent"`
	SubmittedAt string    `json:"submitted_at"`
}

// GetAll retrieves leads matching the query, newest first
func (s *LeadService) GetAll(query *ListLeadsQuery) (*LeadListResponse, error) {
	if err := s.validator.Struct(query); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	page, pageSize, offset := paginate(query.Page, query.PageSize)
	filter := repository.LeadFilter{
		CompanyID: query.CompanyID,
		TeamID:    query.TeamID,
		AgentID:   query.AgentID,
	}
	if query.Status != "" {
		status := models.AssignmentStatus(query.Status)
		filter.Status = &status
	}

	leads, total, err := s.repo.List(filter, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get leads: %w", err)
	}

	responses := make([]LeadResponse, len(leads))
	for i := range leads {
		responses[i] = *toLeadResponse(&leads[i])
	}

	return &LeadListResponse{
		Leads:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GetByID retrieves a lead with its relations
func (s *LeadService) GetByID(id uuid.UUID) (*LeadDetailResponse, error) {
	lead, err := s.repo.GetWithRelations(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLeadNotFound
		}
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}

	resp := &LeadDetailResponse{LeadResponse: *toLeadResponse(lead)}
	if lead.Company != nil {
		resp.CompanyName = lead.Company.Name
	}
	if lead.Team != nil {
		resp.TeamName = lead.Team.Name
	}
	if lead.Agent != nil {
		resp.AgentName = lead.Agent.FullName()
	}
	return resp, nil
}

// Update updates a lead's contact details
func (s *LeadService) Update(id uuid.UUID, req *UpdateLeadRequest) (*LeadResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	lead, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLeadNotFound
		}
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}

	lead.FirstName = req.FirstName
	lead.PhoneNumber = req.PhoneNumber
	lead.Message = req.Message
	lead.Description = req.Description
	lead.Email = req.Email
	lead.Product = models.FinancialProduct(req.Product)

	if err := s.repo.Update(lead); err != nil {
		if isDuplicateKey(err) {
			return nil, apperrors.ErrLeadEmailExists
		}
		return nil, fmt.Errorf("failed to update lead: %w", err)
	}

	return toLeadResponse(lead), nil
}

// Delete deletes a lead
func (s *LeadService) Delete(id uuid.UUID) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrLeadNotFound
		}
		return fmt.Errorf("failed to get lead: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete lead: %w", err)
	}

	return nil
}

// Assign overwrites the team and agent of a lead. An agent given without a
// team brings its own team along; an agent given with a team must belong to it.
func (s *LeadService) Assign(ctx context.Context, id uuid.UUID, req *AssignLeadRequest) (*LeadResponse, error) {
	lead, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLeadNotFound
		}
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}

	teamID := req.TeamID
	if teamID != nil {
		if _, err := s.teamRepo.GetByID(*teamID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrTeamNotFound
			}
			return nil, fmt.Errorf("failed to get team: %w", err)
		}
	}

	if req.AgentID != nil {
		agent, err := s.agentRepo.GetByID(*req.AgentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrAgentNotFound
			}
			return nil, fmt.Errorf("failed to get agent: %w", err)
		}
		switch {
		case agent.TeamID == nil:
			return nil, apperrors.ErrAgentHasNoTeam
		case teamID == nil:
			teamID = agent.TeamID
		case *agent.TeamID != *teamID:
			return nil, apperrors.ErrAgentNotInTeam
		}
	}

	if err := s.repo.UpdateAssignment(lead.ID, teamID, req.AgentID); err != nil {
		return nil, fmt.Errorf("failed to update lead assignment: %w", err)
	}
	lead.TeamID = teamID
	lead.AgentID = req.AgentID

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"lead_id":  lead.ID,
		"team_id":  teamID,
		"agent_id": req.AgentID,
	}).Info("Lead reassigned manually")

	return toLeadResponse(lead), nil
}

// GetSubmission retrieves the public submission record of a lead
func (s *LeadService) GetSubmission(id uuid.UUID) (*LeadSubmissionResponse, error) {
	submission, err := s.repo.GetSubmission(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLeadSubmissionNotFound
		}
		return nil, fmt.Errorf("failed to get lead submission: %w", err)
	}

	return &LeadSubmissionResponse{
		LeadID:      submission.LeadID,
		IPAddress:   submission.IPAddress,
		UserAgent:   submission.UserAgent,
		SubmittedAt: formatTime(submission.SubmittedAt),
	}, nil
}

func toLeadResponse(lead *models.Lead) *LeadResponse {
	return &LeadResponse{
		ID:          lead.ID,
		FirstName:   lead.FirstName,
		PhoneNumber: lead.PhoneNumber,
		Message:     lead.Message,
		Description: lead.Description,
		Email:       lead.Email,
		Product:     lead.Product,
		CompanyID:   lead.CompanyID,
		TeamID:      lead.TeamID,
		AgentID:     lead.AgentID,
		Status:      lead.AssignmentStatus(),
		CreatedAt:   formatTime(lead.CreatedAt),
		UpdatedAt:   formatTime(lead.UpdatedAt),
	}
}
