package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lead-crm-backend/internal/database/models"
	apperrors "lead-crm-backend/internal/errors"
	"lead-crm-backend/internal/logger"
	"lead-crm-backend/internal/ratelimit"
	"lead-crm-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// selectionTimeout bounds team plus agent selection, including lock waits
const selectionTimeout = 5 * time.Second

// IntakeConfig holds the intake settings taken from application config
type IntakeConfig struct {
	// FallbackCompanyPath receives submissions whose path matches no company.
	// Empty disables the fallback.
	FallbackCompanyPath string
	TeamType            models.TeamType
}

// IntakeService turns public form submissions into stored, routed leads
type IntakeService struct {
	companyRepo  repository.CompanyRepositoryInterface
	leadRepo     repository.LeadRepositoryInterface
	distribution DistributionServiceInterface
	limiter      ratelimit.Limiter
	validator    *validator.Validate
	cfg          IntakeConfig
}

// NewIntakeService creates a new intake service
func NewIntakeService(
	companyRepo repository.CompanyRepositoryInterface,
	leadRepo repository.LeadRepositoryInterface,
	distribution DistributionServiceInterface,
	limiter ratelimit.Limiter,
	validator *validator.Validate,
	cfg IntakeConfig,
) *IntakeService {
	if limiter == nil {
		limiter = ratelimit.NoopLimiter{}
	}
	if cfg.TeamType == "" {
		cfg.TeamType = models.TeamTypeSupport
	}
	return &IntakeService{
		companyRepo:  companyRepo,
		leadRepo:     leadRepo,
		distribution: distribution,
		limiter:      limiter,
		validator:    validator,
		cfg:          cfg,
	}
}

// SubmitLeadRequest represents a public lead form submission
type SubmitLeadRequest struct {
	Path        string `json:"-" form:"-"`
	IPAddress   string `json:"-" form:"-"`
	UserAgent   string `json:"-" form:"-"`
	FirstName   string `json:"first_name" form:"first_name" validate:"required,alphaspace,max=25"`
	PhoneNumber string `json:"phone_number" form:"phone_number" validate:"required,phone"`
	Message     string `json:"message" form:"message" validate:"max=500"`
	Product     string `json:"product,omitempty" form:"product" validate:"omitempty,oneof=loan deposits currency credit_card"`
}

// SubmitLead stores the submission as a lead of the company owning the form
// path and, when the company routes leads automatically, assigns a team and an
// agent. The lead is kept unassigned when nobody is eligible.
func (s *IntakeService) SubmitLead(ctx context.Context, req *SubmitLeadRequest) (*LeadResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	log := logger.WithContext(ctx).WithField("path", req.Path)

	if req.IPAddress != "" {
		allowed, err := s.limiter.Allow(ctx, req.IPAddress)
		if err != nil {
			log.WithError(err).Warn("Rate limiter unavailable, accepting submission")
		} else if !allowed {
			log.WithField("ip", req.IPAddress).Warn("Intake rate limit exceeded")
			return nil, apperrors.ErrIntakeRateLimited
		}
	}

	company, err := s.resolveCompany(req.Path)
	if err != nil {
		return nil, err
	}

	lead := &models.Lead{
		FirstName:   req.FirstName,
		PhoneNumber: req.PhoneNumber,
		Message:     req.Message,
		Product:     models.FinancialProduct(req.Product),
		CompanyID:   &company.ID,
	}
	submission := &models.LeadSubmission{
		IPAddress:   req.IPAddress,
		UserAgent:   req.UserAgent,
		SubmittedAt: time.Now(),
	}
	if err := s.leadRepo.CreateWithSubmission(lead, submission); err != nil {
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}

	log = log.WithFields(map[string]interface{}{
		"lead_id":    lead.ID,
		"company_id": company.ID,
	})

	if company.LeadAssignment != models.LeadAssignmentAuto {
		log.Infof("Lead stored without assignment, company assignment mode is %s", company.LeadAssignment)
		return toLeadResponse(lead), nil
	}

	selCtx, cancel := context.WithTimeout(ctx, selectionTimeout)
	defer cancel()

	teamID, err := s.distribution.SelectTeam(selCtx, company.ID, s.cfg.TeamType)
	if err != nil {
		return nil, fmt.Errorf("failed to select team: %w", err)
	}
	if teamID == nil {
		log.Info("No eligible team, lead left unassigned")
		return toLeadResponse(lead), nil
	}

	// The team cursor has already moved on, so the lead keeps its team even
	// when agent selection fails.
	agentID, err := s.distribution.SelectAgent(selCtx, *teamID, company.ID)
	if err != nil {
		log.WithError(err).WithField("team_id", teamID).Error("Agent selection failed, lead assigned to team only")
		agentID = nil
	}

	if err := s.leadRepo.UpdateAssignment(lead.ID, teamID, agentID); err != nil {
		return nil, fmt.Errorf("failed to save lead assignment: %w", err)
	}
	lead.TeamID = teamID
	lead.AgentID = agentID

	log.WithFields(map[string]interface{}{
		"team_id":  teamID,
		"agent_id": agentID,
	}).Info("Lead assigned")

	return toLeadResponse(lead), nil
}

func (s *IntakeService) resolveCompany(path string) (*models.Company, error) {
	company, err := s.companyRepo.GetByPath(NormalizePath(path))
	if err == nil {
		return company, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to resolve company: %w", err)
	}
	if s.cfg.FallbackCompanyPath == "" {
		return nil, apperrors.ErrCompanyNotFound
	}

	company, err = s.companyRepo.GetByPath(NormalizePath(s.cfg.FallbackCompanyPath))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to resolve fallback company: %w", err)
	}
	return company, nil
}
