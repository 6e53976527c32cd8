package billing

import (
	"errors"
	"fmt"
	"time"

	"hospital-billing-backend/internal/models"
	"hospital-billing-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrBillNotFound      = errors.New("bill not found")
	ErrPatientNotFound   = errors.New("patient not found")
	ErrStaffNotFound     = errors.New("staff member not found")
	ErrDuplicateBillCode = errors.New("bill code already exists")
	ErrBillSettled       = errors.New("bill already settled")
)

// BillItemInput is one submitted line item of a bill-generation request.
type BillItemInput struct {
	Description string
	Amount      decimal.Decimal
}

type BillingService struct {
	bills    *repository.BillRepository
	payments *repository.PaymentRepository
	patients *repository.PatientRepository
	staff    *repository.StaffRepository
	reports  *repository.ReportRepository
	db       *gorm.DB
	log      *zap.Logger
}

func NewBillingService(
	bills *repository.BillRepository,
	payments *repository.PaymentRepository,
	patients *repository.PatientRepository,
	staff *repository.StaffRepository,
	reports *repository.ReportRepository,
	log *zap.Logger,
) *BillingService {
	return &BillingService{
		bills:    bills,
		payments: payments,
		patients: patients,
		staff:    staff,
		reports:  reports,
		db:       bills.DB(),
		log:      log,
	}
}

func validateGenerateBill(billCode, paymentMethod string, items []BillItemInput) error {
	if billCode == "" {
		return fmt.Errorf("%w: bill code is required", ErrInvalidInput)
	}
	if !models.ValidPaymentMethods[paymentMethod] {
		return fmt.Errorf("%w: unknown payment method %q", ErrInvalidInput, paymentMethod)
	}
	if len(items) == 0 {
		return fmt.Errorf("%w: at least one line item is required", ErrInvalidInput)
	}
	for i, it := range items {
		if it.Description == "" {
			return fmt.Errorf("%w: item %d has no description", ErrInvalidInput, i+1)
		}
		if it.Amount.Sign() < 0 {
			return fmt.Errorf("%w: item %d has a negative amount", ErrInvalidInput, i+1)
		}
	}
	return nil
}

// GenerateBill persists a new bill with its full item set. Totals are computed
// once from the submitted items; status starts Unpaid with the whole total
// outstanding.
func (s *BillingService) GenerateBill(actor string, patientID uuid.UUID, billCode, paymentMethod string, items []BillItemInput) (*models.Bill, error) {
	if err := validateGenerateBill(billCode, paymentMethod, items); err != nil {
		return nil, err
	}

	patient, err := s.patients.GetByID(patientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPatientNotFound
		}
		return nil, err
	}

	if _, err := s.bills.GetByCode(billCode); err == nil {
		return nil, ErrDuplicateBillCode
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	bill := &models.Bill{
		ID:            uuid.New(),
		BillCode:      billCode,
		PatientID:     patient.ID,
		BillDate:      time.Now(),
		PaymentMethod: paymentMethod,
		Status:        models.BillStatusUnpaid,
		CreatedAt:     time.Now(),
	}
	for i, it := range items {
		bill.Items = append(bill.Items, models.BillItem{
			ID:          uuid.New(),
			BillID:      bill.ID,
			Position:    i,
			Description: it.Description,
			Amount:      it.Amount,
		})
	}
	bill.TotalAmount = models.SumItemAmounts(bill.Items)
	bill.TotalPaid = decimal.Zero
	bill.OutstandingBalance = bill.TotalAmount

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(bill).Error; err != nil {
			// a concurrent insert can slip past the pre-check and land on
			// the unique index instead
			if isUniqueViolation(err) {
				return ErrDuplicateBillCode
			}
			return err
		}
		return models.AppendAuditLog(tx, &bill.ID, "bill_generated", actor, datatypes.JSONMap{
			"bill_code":    bill.BillCode,
			"patient_id":   bill.PatientID.String(),
			"item_count":   len(bill.Items),
			"total_amount": bill.TotalAmount.String(),
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("bill generated",
		zap.String("bill_code", bill.BillCode),
		zap.String("total_amount", bill.TotalAmount.String()),
	)
	bill.Patient = patient
	bill.PatientName = patientDisplayName(patient)
	return bill, nil
}

func validatePayment(amount decimal.Decimal, paymentMethod string) error {
	if amount.Sign() <= 0 {
		return fmt.Errorf("%w: amount paid must be positive", ErrInvalidInput)
	}
	if !models.ValidPaymentMethods[paymentMethod] {
		return fmt.Errorf("%w: unknown payment method %q", ErrInvalidInput, paymentMethod)
	}
	return nil
}

// RecordPayment inserts a payment and recomputes the owning bill's totals and
// status in one transaction, so the payment row and the refreshed totals become
// visible together.
func (s *BillingService) RecordPayment(actor string, billID uuid.UUID, amount decimal.Decimal, paymentMethod, referenceNumber string, receivedBy *uuid.UUID) (*models.Payment, *models.Bill, error) {
	if err := validatePayment(amount, paymentMethod); err != nil {
		return nil, nil, err
	}

	if receivedBy != nil {
		if _, err := s.staff.GetByID(*receivedBy); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil, ErrStaffNotFound
			}
			return nil, nil, err
		}
	}

	payment := &models.Payment{
		ID:              uuid.New(),
		BillID:          billID,
		AmountPaid:      amount,
		PaymentMethod:   paymentMethod,
		ReferenceNumber: referenceNumber,
		ReceivedBy:      receivedBy,
		PaymentDate:     time.Now(),
	}

	var bill models.Bill
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&bill, "id = ?", billID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBillNotFound
			}
			return err
		}
		if !models.BillAcceptsPayment(&bill) {
			return ErrBillSettled
		}

		if err := tx.Create(payment).Error; err != nil {
			return err
		}

		var payments []models.Payment
		if err := tx.Where("bill_id = ?", billID).Find(&payments).Error; err != nil {
			return err
		}
		models.Reconcile(&bill, payments)

		if err := tx.Model(&models.Bill{}).
			Where("id = ?", billID).
			Updates(map[string]interface{}{
				"total_paid":          bill.TotalPaid,
				"outstanding_balance": bill.OutstandingBalance,
				"status":              bill.Status,
			}).Error; err != nil {
			return err
		}

		return models.AppendAuditLog(tx, &billID, "payment_recorded", actor, datatypes.JSONMap{
			"payment_id":     payment.ID.String(),
			"amount_paid":    amount.String(),
			"payment_method": paymentMethod,
			"new_status":     bill.Status,
			"outstanding":    bill.OutstandingBalance.String(),
		})
	})
	if err != nil {
		return nil, nil, err
	}

	s.log.Info("payment recorded",
		zap.String("bill_id", billID.String()),
		zap.String("amount_paid", amount.String()),
		zap.String("status", bill.Status),
	)

	// hand back the same projection GET /billing/:id serves, items and
	// patient included
	if full, err := s.GetBill(billID); err == nil {
		return payment, full, nil
	}
	return payment, &bill, nil
}

// GetBill returns a bill with its items and derived totals.
func (s *BillingService) GetBill(id uuid.UUID) (*models.Bill, error) {
	bill, err := s.bills.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBillNotFound
		}
		return nil, err
	}
	bill.PatientName = patientDisplayName(bill.Patient)
	return bill, nil
}

func (s *BillingService) ListBills(query, status string) ([]models.Bill, error) {
	bills, err := s.bills.Search(query, status)
	if err != nil {
		return nil, err
	}
	for i := range bills {
		bills[i].PatientName = patientDisplayName(bills[i].Patient)
	}
	return bills, nil
}

// ListPayments returns a bill's payment history, oldest first.
func (s *BillingService) ListPayments(billID uuid.UUID) ([]models.Payment, error) {
	if _, err := s.bills.GetByID(billID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBillNotFound
		}
		return nil, err
	}
	return s.payments.ListByBill(billID)
}

func (s *BillingService) ListPatients() ([]models.Patient, error) {
	return s.patients.List()
}

func (s *BillingService) ListStaff() ([]models.Staff, error) {
	return s.staff.List()
}

func validateExpense(amount decimal.Decimal, category string) error {
	if amount.Sign() <= 0 {
		return fmt.Errorf("%w: expense amount must be positive", ErrInvalidInput)
	}
	if category == "" {
		return fmt.Errorf("%w: expense category is required", ErrInvalidInput)
	}
	return nil
}

// RecordExpense stores one operating expense feeding the report series.
func (s *BillingService) RecordExpense(actor string, date time.Time, category, description string, amount decimal.Decimal) (*models.Expense, error) {
	if err := validateExpense(amount, category); err != nil {
		return nil, err
	}

	expense := &models.Expense{
		ID:          uuid.New(),
		ExpenseDate: date,
		Category:    category,
		Description: description,
		Amount:      amount,
		CreatedAt:   time.Now(),
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(expense).Error; err != nil {
			return err
		}
		return models.AppendAuditLog(tx, nil, "expense_recorded", actor, datatypes.JSONMap{
			"expense_id": expense.ID.String(),
			"category":   category,
			"amount":     amount.String(),
		})
	})
	if err != nil {
		return nil, err
	}
	return expense, nil
}

func patientDisplayName(p *models.Patient) string {
	if p == nil {
		return ""
	}
	return p.FirstName + " " + p.LastName
}

// isUniqueViolation matches postgres unique-index errors (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
