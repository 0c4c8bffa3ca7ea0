package handlers

import (
	"net/http"

	"lead-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ClientHandler handles HTTP requests for client operations
type ClientHandler struct {
	clientService service.ClientServiceInterface
}

// NewClientHandler creates a new client handler
func NewClientHandler(clientService service.ClientServiceInterface) *ClientHandler {
	return &ClientHandler{
		clientService: clientService,
	}
}

// CreateClient handles POST /clients
// @Summary Create a new client
// @Tags clients
// @Accept json
// @Produce json
// @Param client body service.CreateClientRequest true "Client data"
// @Success 201 {object} service.ClientResponse "Successfully created client"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Email or phone number already used"
// @Failure 422 {object} ErrorResponse "Employment dates out of order"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /clients [post]
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req service.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	client, err := h.clientService.Create(&req)
	if err != nil {
		respondError(c, err, "create client")
		return
	}

	c.JSON(http.StatusCreated, client)
}

// ConvertLead handles POST /leads/:id/client
// @Summary Convert a lead into a client
// @Description Creates a client from the lead, owned by the lead's team and agent. When a client already has the lead's phone number it is returned with 200.
// @Tags clients
// @Accept json
// @Produce json
// @Param id path string true "Lead ID (UUID)"
// @Param client body service.ConvertLeadRequest true "Missing client details"
// @Success 200 {object} service.ClientResponse "Client already exists"
// @Success 201 {object} service.ClientResponse "Successfully created client"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Lead not found"
// @Failure 409 {object} ErrorResponse "Email already used"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /leads/{id}/client [post]
func (h *ClientHandler) ConvertLead(c *gin.Context) {
	leadID, ok := parseID(c, "id", "lead")
	if !ok {
		return
	}

	var req service.ConvertLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	client, created, err := h.clientService.CreateFromLead(leadID, &req)
	if err != nil {
		respondError(c, err, "convert lead")
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, client)
}

// GetClient handles GET /clients/:id
// @Summary Get client by ID
// @Tags clients
// @Produce json
// @Param id path string true "Client ID (UUID)"
// @Success 200 {object} service.ClientResponse "Successfully retrieved client"
// @Failure 400 {object} ErrorResponse "Invalid client ID"
// @Failure 404 {object} ErrorResponse "Client not found"
// @Security BearerAuth
// @Router /clients/{id} [get]
func (h *ClientHandler) GetClient(c *gin.Context) {
	id, ok := parseID(c, "id", "client")
	if !ok {
		return
	}

	client, err := h.clientService.GetByID(id)
	if err != nil {
		respondError(c, err, "get client")
		return
	}

	c.JSON(http.StatusOK, client)
}

// ListClients handles GET /clients
// @Summary List clients
// @Description Clients ordered by last name, optionally of one team or agent
// @Tags clients
// @Produce json
// @Param team_id query string false "Team ID (UUID)"
// @Param agent_id query string false "Agent ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.ClientListResponse "Successfully retrieved clients"
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /clients [get]
func (h *ClientHandler) ListClients(c *gin.Context) {
	teamID, ok := parseOptionalID(c, "team_id")
	if !ok {
		return
	}
	agentID, ok := parseOptionalID(c, "agent_id")
	if !ok {
		return
	}
	page, pageSize := pagination(c)

	clients, err := h.clientService.GetAll(&service.ListClientsQuery{
		TeamID:   teamID,
		AgentID:  agentID,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		respondError(c, err, "list clients")
		return
	}

	c.JSON(http.StatusOK, clients)
}

// UpdateClient handles PUT /clients/:id
// @Summary Update client
// @Tags clients
// @Accept json
// @Produce json
// @Param id path string true "Client ID (UUID)"
// @Param client body service.UpdateClientRequest true "Client data"
// @Success 200 {object} service.ClientResponse "Successfully updated client"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Client not found"
// @Failure 409 {object} ErrorResponse "Email or phone number already used"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /clients/{id} [put]
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	id, ok := parseID(c, "id", "client")
	if !ok {
		return
	}

	var req service.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	client, err := h.clientService.Update(id, &req)
	if err != nil {
		respondError(c, err, "update client")
		return
	}

	c.JSON(http.StatusOK, client)
}

// DeleteClient handles DELETE /clients/:id
// @Summary Delete client
// @Description Deletes the client with its sales
// @Tags clients
// @Param id path string true "Client ID (UUID)"
// @Success 204 "Successfully deleted client"
// @Failure 400 {object} ErrorResponse "Invalid client ID"
// @Failure 404 {object} ErrorResponse "Client not found"
// @Security BearerAuth
// @Router /clients/{id} [delete]
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	id, ok := parseID(c, "id", "client")
	if !ok {
		return
	}

	if err := h.clientService.Delete(id); err != nil {
		respondError(c, err, "delete client")
		return
	}

	c.Status(http.StatusNoContent)
}

// ProcessClient handles POST /clients/:id/process
// @Summary Process client creditworthiness
// @Description Recomputes and stores the creditworthiness. Allowed once every 15 days.
// @Tags clients
// @Produce json
// @Param id path string true "Client ID (UUID)"
// @Success 200 {object} service.ClientResponse "Creditworthiness updated"
// @Failure 400 {object} ErrorResponse "Invalid client ID"
// @Failure 404 {object} ErrorResponse "Client not found"
// @Failure 422 {object} ErrorResponse "Processed less than 15 days ago"
// @Security BearerAuth
// @Router /clients/{id}/process [post]
func (h *ClientHandler) ProcessClient(c *gin.Context) {
	id, ok := parseID(c, "id", "client")
	if !ok {
		return
	}

	client, err := h.clientService.ProcessCreditworthiness(id)
	if err != nil {
		respondError(c, err, "process client")
		return
	}

	c.JSON(http.StatusOK, client)
}
