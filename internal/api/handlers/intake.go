package handlers

import (
	"net/http"

	"lead-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// IntakeHandler accepts public lead form submissions
type IntakeHandler struct {
	intakeService service.IntakeServiceInterface
}

// NewIntakeHandler creates a new intake handler
func NewIntakeHandler(intakeService service.IntakeServiceInterface) *IntakeHandler {
	return &IntakeHandler{
		intakeService: intakeService,
	}
}

// SubmitLead handles POST /public/intake/*path
// @Summary Submit a lead form
// @Description Stores a lead for the company whose path matches the form path and routes it to a team and agent when the company assigns automatically. Accepts JSON or form encoded bodies.
// @Tags intake
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param path path string true "Company form path"
// @Param lead body service.SubmitLeadRequest true "Lead form"
// @Success 201 {object} service.LeadResponse "Lead accepted"
// @Failure 400 {object} ErrorResponse "Invalid submission"
// @Failure 404 {object} ErrorResponse "No company for path"
// @Failure 429 {object} ErrorResponse "Too many submissions"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /public/intake/{path} [post]
func (h *IntakeHandler) SubmitLead(c *gin.Context) {
	var req service.SubmitLeadRequest
	if err := c.ShouldBind(&req); err != nil {
		invalidBody(c, err)
		return
	}
	req.Path = c.Param("path")
	req.IPAddress = c.ClientIP()
	req.UserAgent = c.Request.UserAgent()

	lead, err := h.intakeService.SubmitLead(c, &req)
	if err != nil {
		respondError(c, err, "submit lead")
		return
	}

	c.JSON(http.StatusCreated, lead)
}
