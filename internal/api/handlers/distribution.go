package handlers

import (
	"fmt"
	"net/http"

	"lead-crm-backend/internal/database/models"
	"lead-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// DistributionHandler exposes the round-robin selectors and their cursors
type DistributionHandler struct {
	distributionService service.DistributionServiceInterface
	validator           *validator.Validate
}

// NewDistributionHandler creates a new distribution handler
func NewDistributionHandler(distributionService service.DistributionServiceInterface, validator *validator.Validate) *DistributionHandler {
	return &DistributionHandler{
		distributionService: distributionService,
		validator:           validator,
	}
}

// SelectTeam handles POST /distribution/select-team
// @Summary Pick the next team for a company
// @Description Advances the company's team cursor for the given team type. team_id is omitted when no team is eligible.
// @Tags distribution
// @Accept json
// @Produce json
// @Param request body service.SelectTeamRequest true "Selection request"
// @Success 200 {object} service.SelectionResponse "Selected team"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /distribution/select-team [post]
func (h *DistributionHandler) SelectTeam(c *gin.Context) {
	var req service.SelectTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		respondError(c, fmt.Errorf("validation failed: %w", err), "select team")
		return
	}

	teamID, err := h.distributionService.SelectTeam(c, req.CompanyID, models.TeamType(req.TeamType))
	if err != nil {
		respondError(c, err, "select team")
		return
	}

	c.JSON(http.StatusOK, service.SelectionResponse{TeamID: teamID})
}

// SelectAgent handles POST /distribution/select-agent
// @Summary Pick the next agent of a team for a company
// @Description Advances the team's agent cursor. Only agents linked to the company are eligible. agent_id is omitted when nobody is eligible.
// @Tags distribution
// @Accept json
// @Produce json
// @Param request body service.SelectAgentRequest true "Selection request"
// @Success 200 {object} service.SelectionResponse "Selected agent"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /distribution/select-agent [post]
func (h *DistributionHandler) SelectAgent(c *gin.Context) {
	var req service.SelectAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		respondError(c, fmt.Errorf("validation failed: %w", err), "select agent")
		return
	}

	agentID, err := h.distributionService.SelectAgent(c, req.TeamID, req.CompanyID)
	if err != nil {
		respondError(c, err, "select agent")
		return
	}

	c.JSON(http.StatusOK, service.SelectionResponse{TeamID: &req.TeamID, AgentID: agentID})
}

// GetCursors handles GET /distribution/cursors
// @Summary Show rotation cursors for a company
// @Tags distribution
// @Produce json
// @Param company_id query string true "Company ID (UUID)"
// @Success 200 {object} service.CursorReportResponse "Cursor report"
// @Failure 400 {object} ErrorResponse "Missing or invalid company_id"
// @Failure 404 {object} ErrorResponse "Company not found"
// @Security BearerAuth
// @Router /distribution/cursors [get]
func (h *DistributionHandler) GetCursors(c *gin.Context) {
	companyID, ok := parseOptionalID(c, "company_id")
	if !ok {
		return
	}
	if companyID == nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "company_id is required"})
		return
	}

	report, err := h.distributionService.GetCursors(*companyID)
	if err != nil {
		respondError(c, err, "get cursors")
		return
	}

	c.JSON(http.StatusOK, report)
}
