package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense is the source series behind the total_expenses column of the
// daily/monthly reports.
type Expense struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"expense_id"`
	ExpenseDate time.Time       `gorm:"index" json:"expense_date"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2)" json:"amount"`
	CreatedAt   time.Time       `json:"-"`
}
