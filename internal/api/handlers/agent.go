package handlers

import (
	"net/http"

	"lead-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AgentHandler handles HTTP requests for agents and their company links
type AgentHandler struct {
	agentService service.AgentServiceInterface
}

// NewAgentHandler creates a new agent handler
func NewAgentHandler(agentService service.AgentServiceInterface) *AgentHandler {
	return &AgentHandler{
		agentService: agentService,
	}
}

// CreateAgent handles POST /agents
// @Summary Create a new agent
// @Tags agents
// @Accept json
// @Produce json
// @Param agent body service.CreateAgentRequest true "Agent data"
// @Success 201 {object} service.AgentResponse "Successfully created agent"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 409 {object} ErrorResponse "Agent email already used"
// @Security BearerAuth
// @Router /agents [post]
func (h *AgentHandler) CreateAgent(c *gin.Context) {
	var req service.CreateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	agent, err := h.agentService.Create(&req)
	if err != nil {
		respondError(c, err, "create agent")
		return
	}

	c.JSON(http.StatusCreated, agent)
}

// GetAgent handles GET /agents/:id
// @Summary Get agent by ID
// @Description Returns the agent with its team name and linked companies
// @Tags agents
// @Produce json
// @Param id path string true "Agent ID (UUID)"
// @Success 200 {object} service.AgentWithCompaniesResponse "Successfully retrieved agent"
// @Failure 400 {object} ErrorResponse "Invalid agent ID"
// @Failure 404 {object} ErrorResponse "Agent not found"
// @Security BearerAuth
// @Router /agents/{id} [get]
func (h *AgentHandler) GetAgent(c *gin.Context) {
	id, ok := parseID(c, "id", "agent")
	if !ok {
		return
	}

	agent, err := h.agentService.GetByID(id)
	if err != nil {
		respondError(c, err, "get agent")
		return
	}

	c.JSON(http.StatusOK, agent)
}

// ListAgents handles GET /agents
// @Summary List agents
// @Tags agents
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.AgentListResponse "Successfully retrieved agents"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /agents [get]
func (h *AgentHandler) ListAgents(c *gin.Context) {
	page, pageSize := pagination(c)

	agents, err := h.agentService.GetAll(page, pageSize)
	if err != nil {
		respondError(c, err, "list agents")
		return
	}

	c.JSON(http.StatusOK, agents)
}

// UpdateAgent handles PUT /agents/:id
// @Summary Update an agent
// @Description Moving an agent to another team drops its company links
// @Tags agents
// @Accept json
// @Produce json
// @Param id path string true "Agent ID (UUID)"
// @Param agent body service.UpdateAgentRequest true "Agent data"
// @Success 200 {object} service.AgentResponse "Successfully updated agent"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Agent or team not found"
// @Failure 409 {object} ErrorResponse "Agent email already used"
// @Security BearerAuth
// @Router /agents/{id} [put]
func (h *AgentHandler) UpdateAgent(c *gin.Context) {
	id, ok := parseID(c, "id", "agent")
	if !ok {
		return
	}

	var req service.UpdateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	agent, err := h.agentService.Update(id, &req)
	if err != nil {
		respondError(c, err, "update agent")
		return
	}

	c.JSON(http.StatusOK, agent)
}

// DeleteAgent handles DELETE /agents/:id
// @Summary Delete an agent
// @Tags agents
// @Param id path string true "Agent ID (UUID)"
// @Success 204 "Successfully deleted agent"
// @Failure 400 {object} ErrorResponse "Invalid agent ID"
// @Failure 404 {object} ErrorResponse "Agent not found"
// @Security BearerAuth
// @Router /agents/{id} [delete]
func (h *AgentHandler) DeleteAgent(c *gin.Context) {
	id, ok := parseID(c, "id", "agent")
	if !ok {
		return
	}

	if err := h.agentService.Delete(id); err != nil {
		respondError(c, err, "delete agent")
		return
	}

	c.Status(http.StatusNoContent)
}

// AssignCompanies handles POST /agents/:id/companies
// @Summary Link an agent to companies
// @Description Every company must be served by the agent's team
// @Tags agents
// @Accept json
// @Produce json
// @Param id path string true "Agent ID (UUID)"
// @Param companies body service.AgentCompaniesRequest true "Company IDs"
// @Success 200 {object} service.AgentWithCompaniesResponse "Companies linked"
// @Failure 404 {object} ErrorResponse "Agent not found"
// @Failure 422 {object} ErrorResponse "Agent has no team or company not served by its team"
// @Security BearerAuth
// @Router /agents/{id}/companies [post]
func (h *AgentHandler) AssignCompanies(c *gin.Context) {
	id, ok := parseID(c, "id", "agent")
	if !ok {
		return
	}

	var req service.AgentCompaniesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	agent, err := h.agentService.AssignCompanies(id, &req)
	if err != nil {
		respondError(c, err, "assign companies")
		return
	}

	c.JSON(http.StatusOK, agent)
}

// UnassignCompanies handles DELETE /agents/:id/companies
// @Summary Unlink an agent from companies
// @Tags agents
// @Accept json
// @Produce json
// @Param id path string true "Agent ID (UUID)"
// @Param companies body service.AgentCompaniesRequest true "Company IDs"
// @Success 200 {object} service.AgentWithCompaniesResponse "Companies unlinked"
// @Failure 404 {object} ErrorResponse "Agent not found"
// @Failure 422 {object} ErrorResponse "Company not linked to the agent"
// @Security BearerAuth
// @Router /agents/{id}/companies [delete]
func (h *AgentHandler) UnassignCompanies(c *gin.Context) {
	id, ok := parseID(c, "id", "agent")
	if !ok {
		return
	}

	var req service.AgentCompaniesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	agent, err := h.agentService.UnassignCompanies(id, &req)
	if err != nil {
		respondError(c, err, "unassign companies")
		return
	}

	c.JSON(http.StatusOK, agent)
}

// GetAssignableCompanies handles GET /agents/:id/assignable-companies
// @Summary List companies an agent can still be linked to
// @Tags agents
// @Produce json
// @Param id path string true "Agent ID (UUID)"
// @Success 200 {array} service.CompanyResponse "Assignable companies"
// @Failure 404 {object} ErrorResponse "Agent not found"
// @Failure 422 {object} ErrorResponse "Agent has no team"
// @Security BearerAuth
// @Router /agents/{id}/assignable-companies [get]
func (h *AgentHandler) GetAssignableCompanies(c *gin.Context) {
	id, ok := parseID(c, "id", "agent")
	if !ok {
		return
	}

	companies, err := h.agentService.GetAssignableCompanies(id)
	if err != nil {
		respondError(c, err, "get assignable companies")
		return
	}

	c.JSON(http.StatusOK, companies)
}
