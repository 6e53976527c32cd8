package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type LedgerAuditLog struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	BillID      *uuid.UUID `gorm:"index"`
	Action      string
	PerformedBy string
	Details     datatypes.JSONMap
	CreatedAt   time.Time
}

// NewAuditLog builds one audit row for a ledger mutation. Details are kept as
// a typed map; gorm serializes them on insert.
func NewAuditLog(billID *uuid.UUID, action, actor string, details datatypes.JSONMap) *LedgerAuditLog {
	return &LedgerAuditLog{
		ID:          uuid.New(),
		BillID:      billID,
		Action:      action,
		PerformedBy: actor,
		Details:     details,
		CreatedAt:   time.Now(),
	}
}

// AppendAuditLog writes the row inside the caller's transaction so the audit
// trail commits or rolls back with the mutation it describes.
func AppendAuditLog(tx *gorm.DB, billID *uuid.UUID, action, actor string, details datatypes.JSONMap) error {
	return tx.Create(NewAuditLog(billID, action, actor, details)).Error
}
