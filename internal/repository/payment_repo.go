package repository

import (
	"hospital-billing-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) DB() *gorm.DB {
	return r.db
}

// ListByBill returns a bill's full payment history in the order it was taken.
func (r *PaymentRepository) ListByBill(billID uuid.UUID) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.
		Where("bill_id = ?", billID).
		Order("payment_date ASC").
		Find(&payments).Error
	return payments, err
}
