package handlers

import (
	"net/http"

	"lead-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// LeadHandler handles HTTP requests for lead management
type LeadHandler struct {
	leadService service.LeadServiceInterface
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(leadService service.LeadServiceInterface) *LeadHandler {
	return &LeadHandler{
		leadService: leadService,
	}
}

// ListLeads handles GET /leads
// @Summary List leads
// @Description Leads newest first, filtered by company, team, agent or assignment status
// @Tags leads
// @Produce json
// @Param company_id query string false "Company ID (UUID)"
// @Param team_id query string false "Team ID (UUID)"
// @Param agent_id query string false "Agent ID (UUID)"
// @Param status query string false "Assignment status" Enums(unassigned, team_assigned, agent_assigned)
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.LeadListResponse "Successfully retrieved leads"
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /leads [get]
func (h *LeadHandler) ListLeads(c *gin.Context) {
	companyID, ok := parseOptionalID(c, "company_id")
	if !ok {
		return
	}
	teamID, ok := parseOptionalID(c, "team_id")
	if !ok {
		return
	}
	agentID, ok := parseOptionalID(c, "agent_id")
	if !ok {
		return
	}
	page, pageSize := pagination(c)

	leads, err := h.leadService.GetAll(&service.ListLeadsQuery{
		CompanyID: companyID,
		TeamID:    teamID,
		AgentID:   agentID,
		Status:    c.Query("status"),
		Page:      page,
		PageSize:  pageSize,
	})
	if err != nil {
		respondError(c, err, "list leads")
		return
	}

	c.JSON(http.StatusOK, leads)
}

// GetLead handles GET /leads/:id
// @Summary Get lead by ID
// @Tags leads
// @Produce json
// @Param id path string true "Lead ID (UUID)"
// @Success 200 {object} service.LeadDetailResponse "Successfully retrieved lead"
// @Failure 400 {object} ErrorResponse "Invalid lead ID"
// @Failure 404 {object} ErrorResponse "Lead not found"
// @Security BearerAuth
// @Router /leads/{id} [get]
func (h *LeadHandler) GetLead(c *gin.Context) {
	id, ok := parseID(c, "id", "lead")
	if !ok {
		return
	}

	lead, err := h.leadService.GetByID(id)
	if err != nil {
		respondError(c, err, "get lead")
		return
	}

	c.JSON(http.StatusOK, lead)
}

// UpdateLead handles PUT /leads/:id
// @Summary Update a lead's details
// @Tags leads
// @Accept json
// @Produce json
// @Param id path string true "Lead ID (UUID)"
// @Param lead body service.UpdateLeadRequest true "Lead data"
// @Success 200 {object} service.LeadResponse "Successfully updated lead"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Lead not found"
// @Failure 409 {object} ErrorResponse "Email already used by another lead"
// @Security BearerAuth
// @Router /leads/{id} [put]
func (h *LeadHandler) UpdateLead(c *gin.Context) {
	id, ok := parseID(c, "id", "lead")
	if !ok {
		return
	}

	var req service.UpdateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	lead, err := h.leadService.Update(id, &req)
	if err != nil {
		respondError(c, err, "update lead")
		return
	}

	c.JSON(http.StatusOK, lead)
}

// DeleteLead handles DELETE /leads/:id
// @Summary Delete a lead
// @Tags leads
// @Param id path string true "Lead ID (UUID)"
// @Success 204 "Successfully deleted lead"
// @Failure 400 {object} ErrorResponse "Invalid lead ID"
// @Failure 404 {object} ErrorResponse "Lead not found"
// @Security BearerAuth
// @Router /leads/{id} [delete]
func (h *LeadHandler) DeleteLead(c *gin.Context) {
	id, ok := parseID(c, "id", "lead")
	if !ok {
		return
	}

	if err := h.leadService.Delete(id); err != nil {
		respondError(c, err, "delete lead")
		return
	}

	c.Status(http.StatusNoContent)
}

// AssignLead handles PUT /leads/:id/assignment
// @Summary Assign a lead manually
// @Description Sets team and agent directly. Omitted fields are cleared. An agent given without a team brings its own team.
// @Tags leads
// @Accept json
// @Produce json
// @Param id path string true "Lead ID (UUID)"
// @Param assignment body service.AssignLeadRequest true "Assignment"
// @Success 200 {object} service.LeadResponse "Lead assigned"
// @Failure 404 {object} ErrorResponse "Lead, team or agent not found"
// @Failure 422 {object} ErrorResponse "Agent does not belong to the team"
// @Security BearerAuth
// @Router /leads/{id}/assignment [put]
func (h *LeadHandler) AssignLead(c *gin.Context) {
	id, ok := parseID(c, "id", "lead")
	if !ok {
		return
	}

	var req service.AssignLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	lead, err := h.leadService.Assign(c, id, &req)
	if err != nil {
		respondError(c, err, "assign lead")
		return
	}

	c.JSON(http.StatusOK, lead)
}

// GetLeadSubmission handles GET /leads/:id/submission
// @Summary Get the audit record of a lead's public submission
// @Tags leads
// @Produce json
// @Param id path string true "Lead ID (UUID)"
// @Success 200 {object} service.LeadSubmissionResponse "Submission record"
// @Failure 404 {object} ErrorResponse "Submission not found"
// @Security BearerAuth
// @Router /leads/{id}/submission [get]
func (h *LeadHandler) GetLeadSubmission(c *gin.Context) {
	id, ok := parseID(c, "id", "lead")
	if !ok {
		return
	}

	submission, err := h.leadService.GetSubmission(id)
	if err != nil {
		respondError(c, err, "get lead submission")
		return
	}

	c.JSON(http.StatusOK, submission)
}
