package handler

import (
	"errors"
	"net/http"
	"time"

	"hospital-billing-backend/internal/services/billing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BillingHandler struct {
	service *billing.BillingService
}

func NewBillingHandler(s *billing.BillingService) *BillingHandler {
	return &BillingHandler{service: s}
}

func (h *BillingHandler) ListBills(c *gin.Context) {
	bills, err := h.service.ListBills(c.Query("q"), c.Query("status"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, bills)
}

func (h *BillingHandler) GenerateBill(c *gin.Context) {
	var payload struct {
		PatientID     string `json:"patient_id" binding:"required"`
		BillCode      string `json:"bill_code" binding:"required"`
		PaymentMethod string `json:"payment_method" binding:"required"`
		Items         []struct {
			Description string          `json:"description"`
			Amount      decimal.Decimal `json:"amount"`
		} `json:"items" binding:"required"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	patientID, err := uuid.Parse(payload.PatientID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid patient ID"})
		return
	}

	items := make([]billing.BillItemInput, 0, len(payload.Items))
	for _, it := range payload.Items {
		items = append(items, billing.BillItemInput{Description: it.Description, Amount: it.Amount})
	}

	bill, err := h.service.GenerateBill(actor(c), patientID, payload.BillCode, payload.PaymentMethod, items)
	if err != nil {
		respondBillingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "bill generated", "bill": bill})
}

func (h *BillingHandler) GetBill(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bill ID"})
		return
	}

	bill, err := h.service.GetBill(id)
	if err != nil {
		respondBillingError(c, err)
		return
	}
	c.JSON(http.StatusOK, bill)
}

func (h *BillingHandler) ListPayments(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bill ID"})
		return
	}

	payments, err := h.service.ListPayments(id)
	if err != nil {
		respondBillingError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

func (h *BillingHandler) RecordPayment(c *gin.Context) {
	var payload struct {
		BillID          string          `json:"bill_id" binding:"required"`
		AmountPaid      decimal.Decimal `json:"amount_paid"`
		PaymentMethod   string          `json:"payment_method" binding:"required"`
		ReferenceNumber string          `json:"reference_number"`
		ReceivedBy      string          `json:"received_by"`
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

	var receivedBy *uuid.UUID
	if payload.ReceivedBy != "" {
		staffID, err := uuid.Parse(payload.ReceivedBy)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid staff ID"})
			return
		}
		receivedBy = &staffID
	}

	payment, bill, err := h.service.RecordPayment(actor(c), billID, payload.AmountPaid, payload.PaymentMethod, payload.ReferenceNumber, receivedBy)
	if err != nil {
		respondBillingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "payment recorded", "payment": payment, "bill": bill})
}

func (h *BillingHandler) RecordExpense(c *gin.Context) {
	var payload struct {
		ExpenseDate string          `json:"expense_date" binding:"required"` // "yyyy-mm-dd"
		Category    string          `json:"category" binding:"required"`
		Description string          `json:"description"`
		Amount      decimal.Decimal `json:"amount"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	date, err := time.Parse("2006-01-02", payload.ExpenseDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid expense date format, expected yyyy-mm-dd"})
		return
	}

	expense, err := h.service.RecordExpense(actor(c), date, payload.Category, payload.Description, payload.Amount)
	if err != nil {
		respondBillingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "expense recorded", "expense": expense})
}

func (h *BillingHandler) DailyReport(c *gin.Context) {
	rows, err := h.service.DailyReport()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *BillingHandler) MonthlyReport(c *gin.Context) {
	rows, err := h.service.MonthlyReport()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *BillingHandler) ListPatients(c *gin.Context) {
	patients, err := h.service.ListPatients()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, patients)
}

func (h *BillingHandler) ListStaff(c *gin.Context) {
	staff, err := h.service.ListStaff()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, staff)
}

// actor is the authenticated subject set by the auth middleware.
func actor(c *gin.Context) string {
	return c.GetString("subject")
}

func respondBillingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, billing.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, billing.ErrBillNotFound),
		errors.Is(err, billing.ErrPatientNotFound),
		errors.Is(err, billing.ErrStaffNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, billing.ErrDuplicateBillCode),
		errors.Is(err, billing.ErrBillSettled):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
