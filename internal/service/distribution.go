package service

import (
	"context"
	"errors"
	"fmt"

	"lead-crm-backend/internal/database/models"
	apperrors "lead-crm-backend/internal/errors"
	"lead-crm-backend/internal/logger"
	"lead-crm-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DistributionService routes leads to teams and agents in round-robin order.
// Rotation state lives in persisted cursors, so it survives restarts and is
// shared by every server instance.
type DistributionService struct {
	companyRepo repository.CompanyRepositoryInterface
	teamRepo    repository.TeamRepositoryInterface
	agentRepo   repository.AgentRepositoryInterface
	cursorRepo  repository.AssignmentCursorRepositoryInterface
}

// NewDistributionService creates a new distribution service
func NewDistributionService(
	companyRepo repository.CompanyRepositoryInterface,
	teamRepo repository.TeamRepositoryInterface,
	agentRepo repository.AgentRepositoryInterface,
	cursorRepo repository.AssignmentCursorRepositoryInterface,
) *DistributionService {
	return &DistributionService{
		companyRepo: companyRepo,
		teamRepo:    teamRepo,
		agentRepo:   agentRepo,
		cursorRepo:  cursorRepo,
	}
}

// SelectTeamRequest represents a request to pick the next team for a company
type SelectTeamRequest struct {
	CompanyID uuid.UUID `json:"company_id" validate:"required"`
	TeamType  string    `json:"team_type" validate:"required,oneof=sales support"`
}

// SelectAgentRequest represents a request to pick the next agent of a team
type SelectAgentRequest struct {
	TeamID    uuid.UUID `json:"team_id" validate:"required"`
	CompanyID uuid.UUID `json:"company_id" validate:"required"`
}

// SelectionResponse carries the selected id, null when nobody is eligible
type SelectionResponse struct {
	TeamID  *uuid.UUID `json:"team_id,omitempty"`
	AgentID *uuid.UUID `json:"agent_id,omitempty"`
}

// TeamCursorResponse reports where team rotation stands for one team type
type TeamCursorResponse struct {
	TeamType      models.TeamType `json:"team_type"`
	CurrentTeamID *uuid.UUID      `json:"current_team_id"`
	UpdatedAt     string          `json:"updated_at"`
}

// AgentCursorResponse reports where agent rotation stands within a team
type AgentCursorResponse struct {
	TeamID         uuid.UUID  `json:"team_id"`
	TeamName       string     `json:"team_name"`
	CurrentAgentID *uuid.UUID `json:"current_agent_id"`
	UpdatedAt      string     `json:"updated_at,omitempty"`
}

// CursorReportResponse lists the rotation cursors relevant to a company
type CursorReportResponse struct {
	CompanyID    uuid.UUID             `json:"company_id"`
	TeamCursors  []TeamCursorResponse  `json:"team_cursors"`
	AgentCursors []AgentCursorResponse `json:"agent_cursors"`
}

// nextInRotation returns the candidate after current, wrapping around. When
// current is nil or no longer a candidate the rotation starts over at the
// first candidate and restarted is true for the latter case.
func nextInRotation(candidates []uuid.UUID, current *uuid.UUID) (next uuid.UUID, restarted bool) {
	if current == nil {
		return candidates[0], false
	}
	for i, id := range candidates {
		if id == *current {
			return candidates[(i+1)%len(candidates)], false
		}
	}
	return candidates[0], true
}

// nextInRoster is nextInRotation for candidates drawn from a larger ordered
// roster. A current value that is on the roster but not a candidate continues
// with the first candidate after its roster position. Only a current value
// missing from the roster restarts the rotation.
func nextInRoster(roster, candidates []uuid.UUID, current *uuid.UUID) (next uuid.UUID, restarted bool) {
	if current == nil {
		return candidates[0], false
	}
	eligible := make(map[uuid.UUID]bool, len(candidates))
	for _, id := range candidates {
		eligible[id] = true
	}
	if eligible[*current] {
		return nextInRotation(candidates, current)
	}
	for i, id := range roster {
		if id != *current {
			continue
		}
		for step := 1; step <= len(roster); step++ {
			if candidate := roster[(i+step)%len(roster)]; eligible[candidate] {
				return candidate, false
			}
		}
	}
	return candidates[0], true
}

// SelectTeam picks the next team of teamType for the company and records it
// in the company's cursor. It returns nil when no team is eligible, leaving
// the cursor untouched.
func (s *DistributionService) SelectTeam(ctx context.Context, companyID uuid.UUID, teamType models.TeamType) (*uuid.UUID, error) {
	if !teamType.IsValid() {
		return nil, apperrors.ErrInvalidTeamType
	}
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"company_id": companyID,
		"team_type":  teamType,
	})

	teams, err := s.teamRepo.GetRotationCandidates(companyID, teamType)
	if err != nil {
		return nil, fmt.Errorf("failed to get candidate teams: %w", err)
	}
	if len(teams) == 0 {
		log.Debug("No eligible team for company")
		return nil, nil
	}

	ids := make([]uuid.UUID, len(teams))
	for i := range teams {
		ids[i] = teams[i].ID
	}

	var stale *uuid.UUID
	next, err := s.cursorRepo.AdvanceTeamCursor(ctx, companyID, teamType, func(current *uuid.UUID) *uuid.UUID {
		id, restarted := nextInRotation(ids, current)
		stale = nil
		if restarted {
			stale = current
		}
		return &id
	})
	if err != nil {
		return nil, fmt.Errorf("failed to advance team cursor: %w", err)
	}
	if stale != nil {
		log.WithField("stale_team_id", *stale).Warn("Stored team is no longer eligible, restarting rotation")
	}

	log.WithField("team_id", *next).Debug("Selected team")
	return next, nil
}

// SelectAgent picks the next agent of the team who is linked to the company and
// records it in the team's cursor. Rotation continues from the agent last
// chosen for this company, so companies sharing a team do not reset each
// other. It returns nil when no agent is eligible, leaving the cursor untouched.
func (s *DistributionService) SelectAgent(ctx context.Context, teamID, companyID uuid.UUID) (*uuid.UUID, error) {
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"team_id":    teamID,
		"company_id": companyID,
	})

	agents, err := s.agentRepo.GetRotationCandidates(teamID, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get candidate agents: %w", err)
	}
	if len(agents) == 0 {
		log.Debug("No eligible agent in team")
		return nil, nil
	}

	members, err := s.agentRepo.GetByTeamID(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get team roster: %w", err)
	}

	ids := make([]uuid.UUID, len(agents))
	for i := range agents {
		ids[i] = agents[i].ID
	}
	roster := make([]uuid.UUID, len(members))
	for i := range members {
		roster[i] = members[i].ID
	}

	var stale *uuid.UUID
	next, err := s.cursorRepo.AdvanceAgentCursor(ctx, teamID, companyID, func(current *uuid.UUID) *uuid.UUID {
		id, restarted := nextInRoster(roster, ids, current)
		stale = nil
		if restarted {
			stale = current
		}
		return &id
	})
	if err != nil {
		return nil, fmt.Errorf("failed to advance agent cursor: %w", err)
	}
	if stale != nil {
		log.WithField("stale_agent_id", *stale).Warn("Stored agent left the team, restarting rotation")
	}

	log.WithField("agent_id", *next).Debug("Selected agent")
	return next, nil
}

// GetCursors reports the team cursors of a company and the agent cursors of
// every team linked to it. Teams whose cursor was never created are listed
// with a null current agent.
func (s *DistributionService) GetCursors(companyID uuid.UUID) (*CursorReportResponse, error) {
	if _, err := s.companyRepo.GetByID(companyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	teamCursors, err := s.cursorRepo.GetTeamCursors(companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get team cursors: %w", err)
	}

	links, err := s.companyRepo.GetTeamLinks(companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get company teams: %w", err)
	}

	report := &CursorReportResponse{
		CompanyID:    companyID,
		TeamCursors:  make([]TeamCursorResponse, len(teamCursors)),
		AgentCursors: make([]AgentCursorResponse, 0, len(links)),
	}
	for i, c := range teamCursors {
		report.TeamCursors[i] = TeamCursorResponse{
			TeamType:      c.TeamType,
			CurrentTeamID: c.CurrentTeamID,
			UpdatedAt:     formatTime(c.UpdatedAt),
		}
	}

	for _, link := range links {
		entry := AgentCursorResponse{TeamID: link.TeamID}
		if link.Team != nil {
			entry.TeamName = link.Team.Name
		}
		cursor, err := s.cursorRepo.GetAgentCursor(link.TeamID)
		switch {
		case err == nil:
			entry.CurrentAgentID = cursor.CurrentAgentID
			entry.UpdatedAt = formatTime(cursor.UpdatedAt)
		case errors.Is(err, gorm.ErrRecordNotFound):
		default:
			return nil, fmt.Errorf("failed to get agent cursor: %w", err)
		}
		report.AgentCursors = append(report.AgentCursors, entry)
	}

	return report, nil
}
