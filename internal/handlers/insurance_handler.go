package handler

import (
	"errors"
	"net/http"

	"hospital-billing-backend/internal/services/insurance"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type InsuranceHandler struct {
	service *insurance.ClaimService
}

func NewInsuranceHandler(s *insurance.ClaimService) *InsuranceHandler {
	return &InsuranceHandler{service: s}
}

func (h *InsuranceHandler) ListClaims(c *gin.Context) {
	claims, err := h.service.ListClaims()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, claims)
}

func (h *InsuranceHandler) FileClaim(c *gin.Context) {
	var payload struct {
		BillID            string          `json:"bill_id" binding:"required"`
		InsuranceProvider string          `json:"insurance_provider" binding:"required"`
		PolicyNumber      string          `json:"policy_number" binding:"required"`
		ClaimAmount       decimal.Decimal `json:"claim_amount"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	billID, err := uuid.Parse(payload.BillID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bill ID"})
		return
	}

	claim, err := h.service.FileClaim(actor(c), billID, payload.InsuranceProvider, payload.PolicyNumber, payload.ClaimAmount)
	if err != nil {
		respondInsuranceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "claim filed", "claim": claim})
}

func (h *InsuranceHandler) UpdateClaimStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid claim ID"})
		return
	}

	var payload struct {
		ClaimStatus string `json:"claim_status" binding:"required"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	claim, err := h.service.Adjudicate(actor(c), id, payload.ClaimStatus)
	if err != nil {
		respondInsuranceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "claim updated", "claim": claim})
}

func respondInsuranceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, insurance.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, insurance.ErrClaimNotFound),
		errors.Is(err, insurance.ErrBillNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, insurance.ErrClaimFinalized):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
