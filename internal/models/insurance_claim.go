package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InsuranceClaim tracks a reimbursement request against one bill. Approval is
// informational only and never adjusts the bill's outstanding balance.
type InsuranceClaim struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey" json:"claim_id"`
	BillID            uuid.UUID       `gorm:"type:uuid;index" json:"bill_id"`
	InsuranceProvider string          `json:"insurance_provider"`
	PolicyNumber      string          `json:"policy_number"`
	ClaimAmount       decimal.Decimal `gorm:"type:decimal(12,2)" json:"claim_amount"`
	ClaimStatus       string          `gorm:"index" json:"claim_status"`
	SubmissionDate    time.Time       `json:"submission_date"`
	ApprovalDate      *time.Time      `json:"approval_date"`
}
