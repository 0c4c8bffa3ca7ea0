package handlers

import (
	"net/http"

	"lead-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CompanyHandler handles HTTP requests for companies and the teams serving them
type CompanyHandler struct {
	companyService service.CompanyServiceInterface
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(companyService service.CompanyServiceInterface) *CompanyHandler {
	return &CompanyHandler{
		companyService: companyService,
	}
}

// CreateCompany handles POST /companies
// @Summary Create a new company
// @Description Create a company with its public intake path. Paths are normalized to /path/.
// @Tags companies
// @Accept json
// @Produce json
// @Param company body service.CreateCompanyRequest true "Company data"
// @Success 201 {object} service.CompanyResponse "Successfully created company"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Company name, path or website already used"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /companies [post]
func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	var req service.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	company, err := h.companyService.Create(&req)
	if err != nil {
		respondError(c, err, "create company")
		return
	}

	c.JSON(http.StatusCreated, company)
}

// GetCompany handles GET /companies/:id
// @Summary Get company by ID
// @Tags companies
// @Produce json
// @Param id path string true "Company ID (UUID)"
// @Success 200 {object} service.CompanyResponse "Successfully retrieved company"
// @Failure 400 {object} ErrorResponse "Invalid company ID"
// @Failure 404 {object} ErrorResponse "Company not found"
// @Security BearerAuth
// @Router /companies/{id} [get]
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	id, ok := parseID(c, "id", "company")
	if !ok {
		return
	}

	company, err := h.companyService.GetByID(id)
	if err != nil {
		respondError(c, err, "get company")
		return
	}

	c.JSON(http.StatusOK, company)
}

// ListCompanies handles GET /companies
// @Summary List companies
// @Tags companies
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.CompanyListResponse "Successfully retrieved companies"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /companies [get]
func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	page, pageSize := pagination(c)

	companies, err := h.companyService.GetAll(page, pageSize)
	if err != nil {
		respondError(c, err, "list companies")
		return
	}

	c.JSON(http.StatusOK, companies)
}

// UpdateCompany handles PUT /companies/:id
// @Summary Update a company
// @Tags companies
// @Accept json
// @Produce json
// @Param id path string true "Company ID (UUID)"
// @Param company body service.UpdateCompanyRequest true "Company data"
// @Success 200 {object} service.CompanyResponse "Successfully updated company"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Company not found"
// @Failure 409 {object} ErrorResponse "Company name, path or website already used"
// @Security BearerAuth
// @Router /companies/{id} [put]
func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	id, ok := parseID(c, "id", "company")
	if !ok {
		return
	}

	var req service.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	company, err := h.companyService.Update(id, &req)
	if err != nil {
		respondError(c, err, "update company")
		return
	}

	c.JSON(http.StatusOK, company)
}

// DeleteCompany handles DELETE /companies/:id
// @Summary Delete a company
// @Description Deletes the company with its cursors and team links. Its leads are kept without a company.
// @Tags companies
// @Param id path string true "Company ID (UUID)"
// @Success 204 "Successfully deleted company"
// @Failure 400 {object} ErrorResponse "Invalid company ID"
// @Failure 404 {object} ErrorResponse "Company not found"
// @Security BearerAuth
// @Router /companies/{id} [delete]
func (h *CompanyHandler) DeleteCompany(c *gin.Context) {
	id, ok := parseID(c, "id", "company")
	if !ok {
		return
	}

	if err := h.companyService.Delete(id); err != nil {
		respondError(c, err, "delete company")
		return
	}

	c.Status(http.StatusNoContent)
}

// GetCompanyTeams handles GET /companies/:id/teams
// @Summary List teams serving a company
// @Description Teams in rotation order with the assignment mode of each link
// @Tags companies
// @Produce json
// @Param id path string true "Company ID (UUID)"
// @Success 200 {array} service.CompanyTeamResponse "Successfully retrieved teams"
// @Failure 404 {object} ErrorResponse "Company not found"
// @Security BearerAuth
// @Router /companies/{id}/teams [get]
func (h *CompanyHandler) GetCompanyTeams(c *gin.Context) {
	id, ok := parseID(c, "id", "company")
	if !ok {
		return
	}

	teams, err := h.companyService.GetTeams(id)
	if err != nil {
		respondError(c, err, "get company teams")
		return
	}

	c.JSON(http.StatusOK, teams)
}

// LinkTeam handles POST /companies/:id/teams
// @Summary Let a team serve a company
// @Tags companies
// @Accept json
// @Produce json
// @Param id path string true "Company ID (UUID)"
// @Param link body service.LinkTeamRequest true "Team link"
// @Success 201 {object} service.CompanyTeamResponse "Team linked"
// @Failure 404 {object} ErrorResponse "Company or team not found"
// @Failure 409 {object} ErrorResponse "Team already serves the company"
// @Security BearerAuth
// @Router /companies/{id}/teams [post]
func (h *CompanyHandler) LinkTeam(c *gin.Context) {
	id, ok := parseID(c, "id", "company")
	if !ok {
		return
	}

	var req service.LinkTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	link, err := h.companyService.LinkTeam(id, &req)
	if err != nil {
		respondError(c, err, "link team")
		return
	}

	c.JSON(http.StatusCreated, link)
}

// UpdateTeamLink handles PUT /companies/:id/teams/:team_id
// @Summary Change the assignment mode of a company-team link
// @Description Only links in auto mode take part in round-robin team selection
// @Tags companies
// @Accept json
// @Produce json
// @Param id path string true "Company ID (UUID)"
// @Param team_id path string true "Team ID (UUID)"
// @Param link body service.UpdateTeamLinkRequest true "Link mode"
// @Success 200 {object} service.CompanyTeamResponse "Link updated"
// @Failure 404 {object} ErrorResponse "Link not found"
// @Security BearerAuth
// @Router /companies/{id}/teams/{team_id} [put]
func (h *CompanyHandler) UpdateTeamLink(c *gin.Context) {
	companyID, ok := parseID(c, "id", "company")
	if !ok {
		return
	}
	teamID, ok := parseID(c, "team_id", "team")
	if !ok {
		return
	}

	var req service.UpdateTeamLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	link, err := h.companyService.UpdateTeamLink(companyID, teamID, &req)
	if err != nil {
		respondError(c, err, "update team link")
		return
	}

	c.JSON(http.StatusOK, link)
}

// UnlinkTeam handles DELETE /companies/:id/teams/:team_id
// @Summary Stop a team from serving a company
// @Description Also unlinks the team's agents from the company
// @Tags companies
// @Param id path string true "Company ID (UUID)"
// @Param team_id path string true "Team ID (UUID)"
// @Success 204 "Team unlinked"
// @Failure 404 {object} ErrorResponse "Link not found"
// @Security BearerAuth
// @Router /companies/{id}/teams/{team_id} [delete]
func (h *CompanyHandler) UnlinkTeam(c *gin.Context) {
	companyID, ok := parseID(c, "id", "company")
	if !ok {
		return
	}
	teamID, ok := parseID(c, "team_id", "team")
	if !ok {
		return
	}

	if err := h.companyService.UnlinkTeam(companyID, teamID); err != nil {
		respondError(c, err, "unlink team")
		return
	}

	c.Status(http.StatusNoContent)
}

// GetCompanyAgents handles GET /companies/:id/agents
// @Summary List agents linked to a company
// @Tags companies
// @Produce json
// @Param id path string true "Company ID (UUID)"
// @Success 200 {array} service.AgentResponse "Successfully retrieved agents"
// @Failure 404 {object} ErrorResponse "Company not found"
// @Security BearerAuth
// @Router /companies/{id}/agents [get]
func (h *CompanyHandler) GetCompanyAgents(c *gin.Context) {
	id, ok := parseID(c, "id", "company")
	if !ok {
		return
	}

	agents, err := h.companyService.GetAgents(id)
	if err != nil {
		respondError(c, err, "get company agents")
		return
	}

	c.JSON(http.StatusOK, agents)
}
