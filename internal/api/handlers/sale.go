package handlers

import (
	"net/http"

	"lead-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SaleHandler handles HTTP requests for sales and payment quotes
type SaleHandler struct {
	saleService service.SaleServiceInterface
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(saleService service.SaleServiceInterface) *SaleHandler {
	return &SaleHandler{
		saleService: saleService,
	}
}

// CreateSale handles POST /sales
// @Summary Record a sale
// @Tags sales
// @Accept json
// @Produce json
// @Param sale body service.CreateSaleRequest true "Sale data"
// @Success 201 {object} service.SaleResponse "Successfully created sale"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Client or product not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /sales [post]
func (h *SaleHandler) CreateSale(c *gin.Context) {
	var req service.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	sale, err := h.saleService.Create(&req)
	if err != nil {
		respondError(c, err, "create sale")
		return
	}

	c.JSON(http.StatusCreated, sale)
}

// GetSale handles GET /sales/:id
// @Summary Get sale by ID
// @Tags sales
// @Produce json
// @Param id path string true "Sale ID (UUID)"
// @Success 200 {object} service.SaleResponse "Successfully retrieved sale"
// @Failure 400 {object} ErrorResponse "Invalid sale ID"
// @Failure 404 {object} ErrorResponse "Sale not found"
// @Security BearerAuth
// @Router /sales/{id} [get]
func (h *SaleHandler) GetSale(c *gin.Context) {
	id, ok := parseID(c, "id", "sale")
	if !ok {
		return
	}

	sale, err := h.saleService.GetByID(id)
	if err != nil {
		respondError(c, err, "get sale")
		return
	}

	c.JSON(http.StatusOK, sale)
}

// ListSales handles GET /sales
// @Summary List sales
// @Description Sales newest first, filtered by client, by the client's team or agent, or by status
// @Tags sales
// @Produce json
// @Param client_id query string false "Client ID (UUID)"
// @Param team_id query string false "Team ID (UUID)"
// @Param agent_id query string false "Agent ID (UUID)"
// @Param status query string false "Sale status" Enums(new, pending, approved, rejected, manual_check)
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.SaleListResponse "Successfully retrieved sales"
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Security BearerAuth
// @Router /sales [get]
func (h *SaleHandler) ListSales(c *gin.Context) {
	clientID, ok := parseOptionalID(c, "client_id")
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

	sales, err := h.saleService.GetAll(&service.ListSalesQuery{
		ClientID: clientID,
		TeamID:   teamID,
		AgentID:  agentID,
		Status:   c.Query("status"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		respondError(c, err, "list sales")
		return
	}

	c.JSON(http.StatusOK, sales)
}

// UpdateSale handles PUT /sales/:id
// @Summary Update sale
// @Tags sales
// @Accept json
// @Produce json
// @Param id path string true "Sale ID (UUID)"
// @Param sale body service.UpdateSaleRequest true "Sale data"
// @Success 200 {object} service.SaleResponse "Successfully updated sale"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Sale not found"
// @Security BearerAuth
// @Router /sales/{id} [put]
func (h *SaleHandler) UpdateSale(c *gin.Context) {
	id, ok := parseID(c, "id", "sale")
	if !ok {
		return
	}

	var req service.UpdateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	sale, err := h.saleService.Update(id, &req)
	if err != nil {
		respondError(c, err, "update sale")
		return
	}

	c.JSON(http.StatusOK, sale)
}

// DeleteSale handles DELETE /sales/:id
// @Summary Delete sale
// @Tags sales
// @Param id path string true "Sale ID (UUID)"
// @Success 204 "Successfully deleted sale"
// @Failure 400 {object} ErrorResponse "Invalid sale ID"
// @Failure 404 {object} ErrorResponse "Sale not found"
// @Security BearerAuth
// @Router /sales/{id} [delete]
func (h *SaleHandler) DeleteSale(c *gin.Context) {
	id, ok := parseID(c, "id", "sale")
	if !ok {
		return
	}

	if err := h.saleService.Delete(id); err != nil {
		respondError(c, err, "delete sale")
		return
	}

	c.Status(http.StatusNoContent)
}

// Calculate handles POST /clients/:id/calculations
// @Summary Quote a monthly payment
// @Description Computes the annuity instalment of a bank product for the client and stores the quote
// @Tags sales
// @Accept json
// @Produce json
// @Param id path string true "Client ID (UUID)"
// @Param calculation body service.CalculateRequest true "Quote parameters"
// @Success 201 {object} service.CalculationResponse "Quote stored"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Client or product not found"
// @Failure 409 {object} ErrorResponse "Quote already exists"
// @Failure 422 {object} ErrorResponse "Product has no interest rate"
// @Security BearerAuth
// @Router /clients/{id}/calculations [post]
func (h *SaleHandler) Calculate(c *gin.Context) {
	clientID, ok := parseID(c, "id", "client")
	if !ok {
		return
	}

	var req service.CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	calculation, err := h.saleService.Calculate(clientID, &req)
	if err != nil {
		respondError(c, err, "calculate payment")
		return
	}

	c.JSON(http.StatusCreated, calculation)
}

// GetCalculations handles GET /clients/:id/calculations
// @Summary List a client's payment quotes
// @Tags sales
// @Produce json
// @Param id path string true "Client ID (UUID)"
// @Success 200 {array} service.CalculationResponse "Successfully retrieved quotes"
// @Failure 400 {object} ErrorResponse "Invalid client ID"
// @Failure 404 {object} ErrorResponse "Client not found"
// @Security BearerAuth
// @Router /clients/{id}/calculations [get]
func (h *SaleHandler) GetCalculations(c *gin.Context) {
	clientID, ok := parseID(c, "id", "client")
	if !ok {
		return
	}

	calculations, err := h.saleService.GetCalculations(clientID)
	if err != nil {
		respondError(c, err, "get calculations")
		return
	}

	c.JSON(http.StatusOK, calculations)
}
