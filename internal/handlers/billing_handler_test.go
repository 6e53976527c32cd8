package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// Malformed requests must be rejected before any ledger operation runs, so
// these routers carry no service at all.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	billingHandler := NewBillingHandler(nil)
	insuranceHandler := NewInsuranceHandler(nil)

	r.GET("/api/billing/:id", billingHandler.GetBill)
	r.POST("/api/billing", billingHandler.GenerateBill)
	r.GET("/api/billing/payments/:id", billingHandler.ListPayments)
	r.POST("/api/billing/payments", billingHandler.RecordPayment)
	r.POST("/api/billing/expenses", billingHandler.RecordExpense)
	r.POST("/api/insurance/claims", insuranceHandler.FileClaim)
	r.PUT("/api/insurance/claims/:id", insuranceHandler.UpdateClaimStatus)
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestGetBillRejectsBadID(t *testing.T) {
	w := doJSON(newTestRouter(), http.MethodGet, "/api/billing/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid bill ID")
}

func TestListPaymentsRejectsBadID(t *testing.T) {
	w := doJSON(newTestRouter(), http.MethodGet, "/api/billing/payments/42", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateBillRejectsMalformedJSON(t *testing.T) {
	w := doJSON(newTestRouter(), http.MethodPost, "/api/billing", "{not json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateBillRejectsMissingFields(t *testing.T) {
	w := doJSON(newTestRouter(), http.MethodPost, "/api/billing",
		`{"bill_code":"B-1001"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateBillRejectsBadPatientID(t *testing.T) {
	w := doJSON(newTestRouter(), http.MethodPost, "/api/billing",
		`{"patient_id":"nope","bill_code":"B-1001","payment_method":"Cash","items":[{"description":"Consultation","amount":1500}]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid patient ID")
}

func TestRecordPaymentRejectsMissingBill(t *testing.T) {
	w := doJSON(newTestRouter(), http.MethodPost, "/api/billing/payments",
		`{"amount_paid":1000,"payment_method":"Cash"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecordPaymentRejectsBadStaffID(t *testing.T) {
	w := doJSON(newTestRouter(), http.MethodPost, "/api/billing/payments",
		`{"bill_id":"31e7335f-0b0a-4f0e-8a6f-6d44bd2c5a01","amount_paid":1000,"payment_method":"Cash","received_by":"abc"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid staff ID")
}

func TestRecordExpenseRejectsBadDate(t *testing.T) {
	w := doJSON(newTestRouter(), http.MethodPost, "/api/billing/expenses",
		`{"expense_date":"31-12-2025","category":"Utilities","amount":450}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFileClaimRejectsBadBillID(t *testing.T) {
	w := doJSON(newTestRouter(), http.MethodPost, "/api/insurance/claims",
		`{"bill_id":"7","insurance_provider":"Ceylinco","policy_number":"POL-7789","claim_amount":2000}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateClaimStatusRejectsBadID(t *testing.T) {
	w := doJSON(newTestRouter(), http.MethodPut, "/api/insurance/claims/xyz",
		`{"claim_status":"Approved"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid claim ID")
}

func TestUpdateClaimStatusRequiresBody(t *testing.T) {
	w := doJSON(newTestRouter(), http.MethodPut,
		"/api/insurance/claims/31e7335f-0b0a-4f0e-8a6f-6d44bd2c5a01", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
