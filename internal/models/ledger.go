package models

import "github.com/shopspring/decimal"

const (
	BillStatusUnpaid        = "Unpaid"
	BillStatusPartiallyPaid = "Partially Paid"
	BillStatusPaid          = "Paid"
)

const (
	PaymentMethodCash      = "Cash"
	PaymentMethodCard      = "Card"
	PaymentMethodInsurance = "Insurance"
)

var ValidPaymentMethods = map[string]bool{
	PaymentMethodCash: true, PaymentMethodCard: true, PaymentMethodInsurance: true,
}

const (
	ClaimStatusPending  = "Pending"
	ClaimStatusApproved = "Approved"
	ClaimStatusRejected = "Rejected"
)

// SumItemAmounts computes a bill's total as the exact decimal sum of its
// line-item amounts.
func SumItemAmounts(items []BillItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Amount)
	}
	return total
}

// SumPayments totals every payment recorded against a bill.
func SumPayments(payments []Payment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		total = total.Add(p.AmountPaid)
	}
	return total
}

// DeriveStatus is the single status rule shared by every consumer:
// nothing paid is Unpaid, anything short of the total is Partially Paid, and
// covering the total (or more) is Paid.
func DeriveStatus(totalAmount, totalPaid decimal.Decimal) string {
	switch {
	case totalPaid.Sign() <= 0:
		return BillStatusUnpaid
	case totalPaid.Cmp(totalAmount) >= 0:
		return BillStatusPaid
	default:
		return BillStatusPartiallyPaid
	}
}

// Reconcile recomputes a bill's derived fields from its full payment history.
// It always starts from the complete set, never from the previous totals.
func Reconcile(bill *Bill, payments []Payment) {
	bill.TotalPaid = SumPayments(payments)
	bill.OutstandingBalance = bill.TotalAmount.Sub(bill.TotalPaid)
	bill.Status = DeriveStatus(bill.TotalAmount, bill.TotalPaid)
}

// BillAcceptsPayment reports whether a bill may take another payment: only
// bills with a positive outstanding balance do. Settled bills are closed to
// further payments.
func BillAcceptsPayment(bill *Bill) bool {
	return bill.OutstandingBalance.Sign() > 0
}

// ClaimCanTransition reports whether a claim may move from current to target.
// Pending is the only state that may be left; Approved and Rejected are
// terminal.
func ClaimCanTransition(current, target string) bool {
	if current != ClaimStatusPending {
		return false
	}
	return target == ClaimStatusApproved || target == ClaimStatusRejected
}

// Profit is derived at read time wherever a revenue/expense pair is shown and
// is never persisted.
func Profit(revenue, expenses decimal.Decimal) decimal.Decimal {
	return revenue.Sub(expenses)
}
