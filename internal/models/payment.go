package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Payment struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey" json:"payment_id"`
	BillID          uuid.UUID       `gorm:"type:uuid;index" json:"bill_id"`
	AmountPaid      decimal.Decimal `gorm:"type:decimal(12,2)" json:"amount_paid"`
	PaymentMethod   string          `gorm:"index" json:"payment_method"`
	ReferenceNumber string          `json:"reference_number"`
	ReceivedBy      *uuid.UUID      `gorm:"type:uuid" json:"received_by"`
	PaymentDate     time.Time       `json:"payment_date"`
}
