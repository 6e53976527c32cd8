package billing

import (
	"errors"
	"fmt"
	"testing"

	"hospital-billing-backend/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestValidateGenerateBill(t *testing.T) {
	valid := []BillItemInput{{Description: "Consultation", Amount: d("1500.00")}}

	require.NoError(t, validateGenerateBill("B-1001", models.PaymentMethodCash, valid))

	err := validateGenerateBill("", models.PaymentMethodCash, valid)
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = validateGenerateBill("B-1001", "Cheque", valid)
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = validateGenerateBill("B-1001", models.PaymentMethodCash, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = validateGenerateBill("B-1001", models.PaymentMethodCash, []BillItemInput{
		{Description: "", Amount: d("10.00")},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = validateGenerateBill("B-1001", models.PaymentMethodCash, []BillItemInput{
		{Description: "Refund line", Amount: d("-10.00")},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	// zero-amount items are allowed, e.g. waived charges
	require.NoError(t, validateGenerateBill("B-1001", models.PaymentMethodCash, []BillItemInput{
		{Description: "Waived dressing", Amount: decimal.Zero},
	}))
}

func TestValidatePayment(t *testing.T) {
	require.NoError(t, validatePayment(d("1000.00"), models.PaymentMethodCard))

	assert.ErrorIs(t, validatePayment(decimal.Zero, models.PaymentMethodCash), ErrInvalidInput)
	assert.ErrorIs(t, validatePayment(d("-50.00"), models.PaymentMethodCash), ErrInvalidInput)
	assert.ErrorIs(t, validatePayment(d("50.00"), "Barter"), ErrInvalidInput)
}

func TestValidateExpense(t *testing.T) {
	require.NoError(t, validateExpense(d("450.00"), "Utilities"))

	assert.ErrorIs(t, validateExpense(decimal.Zero, "Utilities"), ErrInvalidInput)
	assert.ErrorIs(t, validateExpense(d("450.00"), ""), ErrInvalidInput)
}

func TestIsUniqueViolation(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "idx_bills_bill_code"}
	assert.True(t, isUniqueViolation(dup))
	assert.True(t, isUniqueViolation(fmt.Errorf("create bill: %w", dup)))

	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("connection refused")))
	assert.False(t, isUniqueViolation(nil))
}

func TestPatientDisplayName(t *testing.T) {
	assert.Equal(t, "", patientDisplayName(nil))
	assert.Equal(t, "Amara Perera", patientDisplayName(&models.Patient{
		FirstName: "Amara", LastName: "Perera",
	}))
}
