package repository

import (
	"hospital-billing-backend/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AggregateRow is one bucket of a grouped SUM projection. Bucket is a
// 'YYYY-MM-DD' day or a 'YYYY-MM' month.
type AggregateRow struct {
	Bucket string
	Total  decimal.Decimal
}

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) RevenueByDay() ([]AggregateRow, error) {
	var rows []AggregateRow
	err := r.db.Model(&models.Payment{}).
		Select("TO_CHAR(payment_date, 'YYYY-MM-DD') AS bucket, COALESCE(SUM(amount_paid),0) AS total").
		Group("bucket").
		Order("bucket").
		Scan(&rows).Error
	return rows, err
}

func (r *ReportRepository) RevenueByMonth() ([]AggregateRow, error) {
	var rows []AggregateRow
	err := r.db.Model(&models.Payment{}).
		Select("TO_CHAR(payment_date, 'YYYY-MM') AS bucket, COALESCE(SUM(amount_paid),0) AS total").
		Group("bucket").
		Order("bucket").
		Scan(&rows).Error
	return rows, err
}

func (r *ReportRepository) ExpensesByDay() ([]AggregateRow, error) {
	var rows []AggregateRow
	err := r.db.Model(&models.Expense{}).
		Select("TO_CHAR(expense_date, 'YYYY-MM-DD') AS bucket, COALESCE(SUM(amount),0) AS total").
		Group("bucket").
		Order("bucket").
		Scan(&rows).Error
	return rows, err
}

func (r *ReportRepository) ExpensesByMonth() ([]AggregateRow, error) {
	var rows []AggregateRow
	err := r.db.Model(&models.Expense{}).
		Select("TO_CHAR(expense_date, 'YYYY-MM') AS bucket, COALESCE(SUM(amount),0) AS total").
		Group("bucket").
		Order("bucket").
		Scan(&rows).Error
	return rows, err
}
