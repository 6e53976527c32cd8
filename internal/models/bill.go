package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Bill struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey" json:"bill_id"`
	BillCode           string          `gorm:"uniqueIndex" json:"bill_code"`
	PatientID          uuid.UUID       `gorm:"type:uuid;index" json:"patient_id"`
	Patient            *Patient        `gorm:"foreignKey:PatientID" json:"-"`
	PatientName        string          `gorm:"-" json:"patient_name"`
	BillDate           time.Time       `json:"bill_date"`
	PaymentMethod      string          `json:"payment_method"`
	Items              []BillItem      `gorm:"foreignKey:BillID" json:"items"`
	TotalAmount        decimal.Decimal `gorm:"type:decimal(12,2)" json:"total_amount"`
	TotalPaid          decimal.Decimal `gorm:"type:decimal(12,2)" json:"total_paid"`
	OutstandingBalance decimal.Decimal `gorm:"type:decimal(12,2)" json:"outstanding_balance"`
	Status             string          `gorm:"index" json:"status"`
	CreatedAt          time.Time       `json:"-"`
}

// BillItem rows are written once at bill generation and never edited.
type BillItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"item_id"`
	BillID      uuid.UUID       `gorm:"type:uuid;index" json:"-"`
	Position    int             `json:"-"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2)" json:"amount"`
}
