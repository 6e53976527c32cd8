package models

import (
	"time"

	"github.com/google/uuid"
)

type Staff struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"staff_id"`
	FullName  string    `gorm:"index" json:"full_name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"-"`
}
