package repository

import (
	"hospital-billing-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PatientRepository struct {
	db *gorm.DB
}

func NewPatientRepository(db *gorm.DB) *PatientRepository {
	return &PatientRepository{db: db}
}

func (r *PatientRepository) GetByID(id uuid.UUID) (*models.Patient, error) {
	var patient models.Patient
	err := r.db.First(&patient, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

func (r *PatientRepository) List() ([]models.Patient, error) {
	var patients []models.Patient
	err := r.db.Order("last_name ASC, first_name ASC").Find(&patients).Error
	return patients, err
}
