package handlers

import (
	"net/http"
	"strconv"

	"HSP-PORTAL/internal/models"
	"HSP-PORTAL/internal/services"

	"github.com/gin-gonic/gin"
)

type ContractRenewalHandler struct {
	renewalService *services.ContractRenewalService
}

func NewContractRenewalHandler(renewalService *services.ContractRenewalService) *ContractRenewalHandler {
	return &ContractRenewalHandler{renewalService: renewalService}
}

// Create opens a contract period for a member
// POST /api/v1/contract-renewals
func (h *ContractRenewalHandler) Create(c *gin.Context) {
	var req services.CreateRenewalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	renewal, err := h.renewalService.Create(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, renewal)
}

// Get returns one contract renewal
// GET /api/v1/contract-renewals/:id
func (h *ContractRenewalHandler) Get(c *gin.Context) {
	renewal, err := h.renewalService.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, renewal)
}

// ListByMember returns all contract periods of one member
// GET /api/v1/members/:id/contract-renewals
func (h *ContractRenewalHandler) ListByMember(c *gin.Context) {
	renewals, err := h.renewalService.ListByMember(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"contract_renewals": renewals})
}

// ListExpiring returns pending contracts running out soon
// GET /api/v1/contract-renewals/expiring?days=30
func (h *ContractRenewalHandler) ListExpiring(c *gin.Context) {
	days := 30
	if d := c.Query("days"); d != "" {
		if parsed, err := strconv.Atoi(d); err == nil && parsed > 0 && parsed <= 365 {
			days = parsed
		}
	}

	renewals, err := h.renewalService.ListExpiring(days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"contract_renewals": renewals})
}

type decideRenewalRequest struct {
	Status    string `json:"status" binding:"required"`
	DecidedBy string `json:"decided_by"`
	Note      string `json:"note"`
}

// Decide records the renewal decision
// PATCH /api/v1/contract-renewals/:id/decision
func (h *ContractRenewalHandler) Decide(c *gin.Context) {
	var req decideRenewalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	renewal, err := h.renewalService.Decide(
		c.Param("id"), models.RenewalStatus(req.Status), req.DecidedBy, req.Note)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, renewal)
}
