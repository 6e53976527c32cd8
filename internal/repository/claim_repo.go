package repository

import (
	"hospital-billing-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClaimRepository struct {
	db *gorm.DB
}

func NewClaimRepository(db *gorm.DB) *ClaimRepository {
	return &ClaimRepository{db: db}
}

func (r *ClaimRepository) DB() *gorm.DB {
	return r.db
}

func (r *ClaimRepository) GetByID(id uuid.UUID) (*models.InsuranceClaim, error) {
	var claim models.InsuranceClaim
	err := r.db.First(&claim, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &claim, nil
}

func (r *ClaimRepository) List() ([]models.InsuranceClaim, error) {
	var claims []models.InsuranceClaim
	err := r.db.Order("submission_date DESC").Find(&claims).Error
	return claims, err
}
