package models

import (
	"time"

	"github.com/google/uuid"
)

type Patient struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"patient_id"`
	PatientCode string    `gorm:"uniqueIndex" json:"patient_code"`
	FirstName   string    `json:"first_name"`
	LastName    string    `gorm:"index" json:"last_name"`
	Phone       string    `json:"phone"`
	CreatedAt   time.Time `json:"-"`
}
