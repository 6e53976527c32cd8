package insurance

import (
	"testing"

	"hospital-billing-backend/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestValidateFileClaim(t *testing.T) {
	require.NoError(t, validateFileClaim("Ceylinco", "POL-7789", d("2000.00")))

	assert.ErrorIs(t, validateFileClaim("", "POL-7789", d("2000.00")), ErrInvalidInput)
	assert.ErrorIs(t, validateFileClaim("Ceylinco", "", d("2000.00")), ErrInvalidInput)
	assert.ErrorIs(t, validateFileClaim("Ceylinco", "POL-7789", decimal.Zero), ErrInvalidInput)
	assert.ErrorIs(t, validateFileClaim("Ceylinco", "POL-7789", d("-10.00")), ErrInvalidInput)
}

func TestValidateAdjudication(t *testing.T) {
	require.NoError(t, validateAdjudication(models.ClaimStatusApproved))
	require.NoError(t, validateAdjudication(models.ClaimStatusRejected))

	assert.ErrorIs(t, validateAdjudication(models.ClaimStatusPending), ErrInvalidInput)
	assert.ErrorIs(t, validateAdjudication("Settled"), ErrInvalidInput)
	assert.ErrorIs(t, validateAdjudication(""), ErrInvalidInput)
}
