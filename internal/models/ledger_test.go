package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestSumItemAmounts(t *testing.T) {
	items := []BillItem{
		{Description: "Consultation", Amount: d("1500.00")},
		{Description: "Lab Test", Amount: d("850.00")},
	}
	require.True(t, SumItemAmounts(items).Equal(d("2350.00")))
	require.True(t, SumItemAmounts(nil).IsZero())
}

func TestSumItemAmountsNoDrift(t *testing.T) {
	// 0.10 a hundred times must land exactly on 10.00
	var items []BillItem
	for i := 0; i < 100; i++ {
		items = append(items, BillItem{Description: "Dressing", Amount: d("0.10")})
	}
	require.True(t, SumItemAmounts(items).Equal(d("10.00")))
}

func TestDeriveStatus(t *testing.T) {
	cases := []struct {
		name  string
		total string
		paid  string
		want  string
	}{
		{"nothing paid", "2350.00", "0", BillStatusUnpaid},
		{"partial", "2350.00", "1000.00", BillStatusPartiallyPaid},
		{"one rupee short", "2350.00", "2349.99", BillStatusPartiallyPaid},
		{"exact", "2350.00", "2350.00", BillStatusPaid},
		{"overpaid", "2350.00", "2400.00", BillStatusPaid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DeriveStatus(d(tc.total), d(tc.paid)))
		})
	}
}

func TestReconcilePaymentSequence(t *testing.T) {
	bill := &Bill{
		TotalAmount: SumItemAmounts([]BillItem{
			{Description: "Consultation", Amount: d("1500.00")},
			{Description: "Lab Test", Amount: d("850.00")},
		}),
	}
	var payments []Payment

	Reconcile(bill, payments)
	require.Equal(t, BillStatusUnpaid, bill.Status)
	require.True(t, bill.OutstandingBalance.Equal(d("2350.00")))

	payments = append(payments, Payment{AmountPaid: d("1000.00")})
	Reconcile(bill, payments)
	require.True(t, bill.TotalPaid.Equal(d("1000.00")))
	require.True(t, bill.OutstandingBalance.Equal(d("1350.00")))
	require.Equal(t, BillStatusPartiallyPaid, bill.Status)

	payments = append(payments, Payment{AmountPaid: d("1350.00")})
	Reconcile(bill, payments)
	require.True(t, bill.OutstandingBalance.IsZero())
	require.Equal(t, BillStatusPaid, bill.Status)
}

func TestReconcileIsIdempotent(t *testing.T) {
	bill := &Bill{TotalAmount: d("500.00")}
	payments := []Payment{{AmountPaid: d("200.00")}, {AmountPaid: d("50.00")}}

	Reconcile(bill, payments)
	first := *bill
	Reconcile(bill, payments)

	assert.True(t, bill.TotalPaid.Equal(first.TotalPaid))
	assert.True(t, bill.OutstandingBalance.Equal(first.OutstandingBalance))
	assert.Equal(t, first.Status, bill.Status)
}

// Claims are tracking-only: reconciliation reads payments and nothing else,
// so a filed (or approved) claim leaves the ledger untouched.
func TestClaimDoesNotAffectBalance(t *testing.T) {
	bill := &Bill{TotalAmount: d("2350.00")}
	payments := []Payment{{AmountPaid: d("1000.00")}, {AmountPaid: d("1350.00")}}
	Reconcile(bill, payments)
	require.True(t, bill.OutstandingBalance.IsZero())

	claim := InsuranceClaim{
		BillID:      bill.ID,
		ClaimAmount: d("2000.00"),
		ClaimStatus: ClaimStatusApproved,
	}
	require.True(t, claim.ClaimAmount.GreaterThan(bill.OutstandingBalance))

	Reconcile(bill, payments)
	assert.True(t, bill.OutstandingBalance.IsZero())
	assert.Equal(t, BillStatusPaid, bill.Status)
}

func TestBillAcceptsPayment(t *testing.T) {
	open := &Bill{TotalAmount: d("2350.00")}
	Reconcile(open, nil)
	assert.True(t, BillAcceptsPayment(open))

	partial := &Bill{TotalAmount: d("2350.00")}
	Reconcile(partial, []Payment{{AmountPaid: d("1000.00")}})
	assert.True(t, BillAcceptsPayment(partial))

	settled := &Bill{TotalAmount: d("2350.00")}
	Reconcile(settled, []Payment{{AmountPaid: d("2350.00")}})
	assert.False(t, BillAcceptsPayment(settled))

	overpaid := &Bill{TotalAmount: d("2350.00")}
	Reconcile(overpaid, []Payment{{AmountPaid: d("2500.00")}})
	assert.False(t, BillAcceptsPayment(overpaid))
}

func TestClaimCanTransition(t *testing.T) {
	cases := []struct {
		current string
		target  string
		want    bool
	}{
		{ClaimStatusPending, ClaimStatusApproved, true},
		{ClaimStatusPending, ClaimStatusRejected, true},
		{ClaimStatusPending, ClaimStatusPending, false},
		{ClaimStatusApproved, ClaimStatusRejected, false},
		{ClaimStatusApproved, ClaimStatusPending, false},
		{ClaimStatusRejected, ClaimStatusApproved, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ClaimCanTransition(tc.current, tc.target),
			"%s -> %s", tc.current, tc.target)
	}
}

func TestProfit(t *testing.T) {
	assert.True(t, Profit(d("2500.00"), d("450.00")).Equal(d("2050.00")))
	assert.True(t, Profit(d("100.00"), d("450.00")).Equal(d("-350.00")))
}
