package handlers

import (
	"net/http"

	"lead-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// BankHandler handles HTTP requests for banks and bank products
type BankHandler struct {
	bankService service.BankServiceInterface
}

// NewBankHandler creates a new bank handler
func NewBankHandler(bankService service.BankServiceInterface) *BankHandler {
	return &BankHandler{
		bankService: bankService,
	}
}

// CreateBank handles POST /banks
// @Summary Create a new bank
// @Tags banks
// @Accept json
// @Produce json
// @Param bank body service.BankRequest true "Bank data"
// @Success 201 {object} service.BankResponse "Successfully created bank"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Bank name already used"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /banks [post]
func (h *BankHandler) CreateBank(c *gin.Context) {
	var req service.BankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	bank, err := h.bankService.Create(&req)
	if err != nil {
		respondError(c, err, "create bank")
		return
	}

	c.JSON(http.StatusCreated, bank)
}

// GetBank handles GET /banks/:id
// @Summary Get bank with its products
// @Tags banks
// @Produce json
// @Param id path string true "Bank ID (UUID)"
// @Success 200 {object} service.BankWithProductsResponse "Successfully retrieved bank"
// @Failure 400 {object} ErrorResponse "Invalid bank ID"
// @Failure 404 {object} ErrorResponse "Bank not found"
// @Security BearerAuth
// @Router /banks/{id} [get]
func (h *BankHandler) GetBank(c *gin.Context) {
	id, ok := parseID(c, "id", "bank")
	if !ok {
		return
	}

	bank, err := h.bankService.GetByID(id)
	if err != nil {
		respondError(c, err, "get bank")
		return
	}

	c.JSON(http.StatusOK, bank)
}

// ListBanks handles GET /banks
// @Summary List banks
// @Tags banks
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.BankListResponse "Successfully retrieved banks"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /banks [get]
func (h *BankHandler) ListBanks(c *gin.Context) {
	page, pageSize := pagination(c)

	banks, err := h.bankService.GetAll(page, pageSize)
	if err != nil {
		respondError(c, err, "list banks")
		return
	}

	c.JSON(http.StatusOK, banks)
}

// UpdateBank handles PUT /banks/:id
// @Summary Update bank
// @Tags banks
// @Accept json
// @Produce json
// @Param id path string true "Bank ID (UUID)"
// @Param bank body service.BankRequest true "Bank data"
// @Success 200 {object} service.BankResponse "Successfully updated bank"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Bank not found"
// @Failure 409 {object} ErrorResponse "Bank name already used"
// @Security BearerAuth
// @Router /banks/{id} [put]
func (h *BankHandler) UpdateBank(c *gin.Context) {
	id, ok := parseID(c, "id", "bank")
	if !ok {
		return
	}

	var req service.BankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	bank, err := h.bankService.Update(id, &req)
	if err != nil {
		respondError(c, err, "update bank")
		return
	}

	c.JSON(http.StatusOK, bank)
}

// DeleteBank handles DELETE /banks/:id
// @Summary Delete bank
// @Description Deletes the bank with its products and their sales
// @Tags banks
// @Param id path string true "Bank ID (UUID)"
// @Success 204 "Successfully deleted bank"
// @Failure 400 {object} ErrorResponse "Invalid bank ID"
// @Failure 404 {object} ErrorResponse "Bank not found"
// @Security BearerAuth
// @Router /banks/{id} [delete]
func (h *BankHandler) DeleteBank(c *gin.Context) {
	id, ok := parseID(c, "id", "bank")
	if !ok {
		return
	}

	if err := h.bankService.Delete(id); err != nil {
		respondError(c, err, "delete bank")
		return
	}

	c.Status(http.StatusNoContent)
}

// CreateProduct handles POST /bank-products
// @Summary Create a bank product
// @Tags banks
// @Accept json
// @Produce json
// @Param product body service.BankProductRequest true "Product data"
// @Success 201 {object} service.BankProductResponse "Successfully created product"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Bank not found"
// @Security BearerAuth
// @Router /bank-products [post]
func (h *BankHandler) CreateProduct(c *gin.Context) {
	var req service.BankProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	product, err := h.bankService.CreateProduct(&req)
	if err != nil {
		respondError(c, err, "create bank product")
		return
	}

	c.JSON(http.StatusCreated, product)
}

// GetProduct handles GET /bank-products/:id
// @Summary Get bank product by ID
// @Tags banks
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Success 200 {object} service.BankProductResponse "Successfully retrieved product"
// @Failure 400 {object} ErrorResponse "Invalid product ID"
// @Failure 404 {object} ErrorResponse "Product not found"
// @Security BearerAuth
// @Router /bank-products/{id} [get]
func (h *BankHandler) GetProduct(c *gin.Context) {
	id, ok := parseID(c, "id", "bank product")
	if !ok {
		return
	}

	product, err := h.bankService.GetProduct(id)
	if err != nil {
		respondError(c, err, "get bank product")
		return
	}

	c.JSON(http.StatusOK, product)
}

// ListProducts handles GET /bank-products
// @Summary List bank products
// @Tags banks
// @Produce json
// @Param bank_id query string false "Bank ID (UUID)"
// @Param type query string false "Product type" Enums(mortgage_loan, personal_loan, credit_card, investments)
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.BankProductListResponse "Successfully retrieved products"
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Security BearerAuth
// @Router /bank-products [get]
func (h *BankHandler) ListProducts(c *gin.Context) {
	bankID, ok := parseOptionalID(c, "bank_id")
	if !ok {
		return
	}
	page, pageSize := pagination(c)

	products, err := h.bankService.ListProducts(bankID, c.Query("type"), page, pageSize)
	if err != nil {
		respondError(c, err, "list bank products")
		return
	}

	c.JSON(http.StatusOK, products)
}

// UpdateProduct handles PUT /bank-products/:id
// @Summary Update bank product
// @Tags banks
// @Accept json
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Param product body service.BankProductRequest true "Product data"
// @Success 200 {object} service.BankProductResponse "Successfully updated product"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Product or bank not found"
// @Security BearerAuth
// @Router /bank-products/{id} [put]
func (h *BankHandler) UpdateProduct(c *gin.Context) {
	id, ok := parseID(c, "id", "bank product")
	if !ok {
		return
	}

	var req service.BankProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	product, err := h.bankService.UpdateProduct(id, &req)
	if err != nil {
		respondError(c, err, "update bank product")
		return
	}

	c.JSON(http.StatusOK, product)
}

// DeleteProduct handles DELETE /bank-products/:id
// @Summary Delete bank product
// @Tags banks
// @Param id path string true "Product ID (UUID)"
// @Success 204 "Successfully deleted product"
// @Failure 400 {object} ErrorResponse "Invalid product ID"
// @Failure 404 {object} ErrorResponse "Product not found"
// @Security BearerAuth
// @Router /bank-products/{id} [delete]
func (h *BankHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseID(c, "id", "bank product")
	if !ok {
		return
	}

	if err := h.bankService.DeleteProduct(id); err != nil {
		respondError(c, err, "delete bank product")
		return
	}

	c.Status(http.StatusNoContent)
}
