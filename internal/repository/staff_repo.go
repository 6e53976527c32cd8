package repository

import (
	"hospital-billing-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StaffRepository struct {
	db *gorm.DB
}

func NewStaffRepository(db *gorm.DB) *StaffRepository {
	return &StaffRepository{db: db}
}

func (r *StaffRepository) GetByID(id uuid.UUID) (*models.Staff, error) {
	var staff models.Staff
	err := r.db.First(&staff, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *StaffRepository) List() ([]models.Staff, error) {
	var staff []models.Staff
	err := r.db.Order("full_name ASC").Find(&staff).Error
	return staff, err
}
