package repository

import (
	"strings"

	"hospital-billing-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BillRepository struct {
	db *gorm.DB
}

func NewBillRepository(db *gorm.DB) *BillRepository {
	return &BillRepository{db: db}
}

// Expose DB if needed
func (r *BillRepository) DB() *gorm.DB {
	return r.db
}

// GetByID fetches a bill with its items (in creation order) and patient.
func (r *BillRepository) GetByID(id uuid.UUID) (*models.Bill, error) {
	var bill models.Bill
	err := r.db.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Patient").
		First(&bill, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &bill, nil
}

// GetByCode looks a bill up by its human-readable code.
func (r *BillRepository) GetByCode(code string) (*models.Bill, error) {
	var bill models.Bill
	err := r.db.First(&bill, "bill_code = ?", code).Error
	if err != nil {
		return nil, err
	}
	return &bill, nil
}

// Search lists bills, newest first, with optional code/patient-name search and
// status filter.
func (r *BillRepository) Search(query string, status string) ([]models.Bill, error) {
	var bills []models.Bill

	dbQuery := r.db.Model(&models.Bill{}).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Patient").
		Order("bills.created_at DESC")

	if query != "" {
		likeQuery := "%" + strings.ToLower(query) + "%"
		dbQuery = dbQuery.
			Joins("LEFT JOIN patients ON patients.id = bills.patient_id").
			Where(
				"LOWER(bills.bill_code) LIKE ? OR LOWER(patients.first_name) LIKE ? OR LOWER(patients.last_name) LIKE ?",
				likeQuery, likeQuery, likeQuery,
			)
	}
	if status != "" && status != "all" {
		dbQuery = dbQuery.Where("bills.status = ?", status)
	}

	err := dbQuery.Find(&bills).Error
	return bills, err
}
