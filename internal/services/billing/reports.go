package billing

import (
	"sort"

	"hospital-billing-backend/internal/models"
	"hospital-billing-backend/internal/repository"

	"github.com/shopspring/decimal"
)

type DailyReportRow struct {
	ReportDate    string          `json:"report_date"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	Profit        decimal.Decimal `json:"profit"`
}

type MonthlyReportRow struct {
	Month         string          `json:"month"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	Profit        decimal.Decimal `json:"profit"`
}

type seriesPoint struct {
	bucket   string
	revenue  decimal.Decimal
	expenses decimal.Decimal
}

// mergeSeries joins a revenue series and an expense series on their bucket
// key. Buckets present in only one series get a zero for the other, so a day
// with expenses but no payments still shows up.
func mergeSeries(revenue, expenses []repository.AggregateRow) []seriesPoint {
	merged := make(map[string]*seriesPoint)
	for _, row := range revenue {
		merged[row.Bucket] = &seriesPoint{bucket: row.Bucket, revenue: row.Total, expenses: decimal.Zero}
	}
	for _, row := range expenses {
		if p, ok := merged[row.Bucket]; ok {
			p.expenses = row.Total
		} else {
			merged[row.Bucket] = &seriesPoint{bucket: row.Bucket, revenue: decimal.Zero, expenses: row.Total}
		}
	}

	points := make([]seriesPoint, 0, len(merged))
	for _, p := range merged {
		points = append(points, *p)
	}
	sort.Slice(points, func(i, j int) bool { return points[i].bucket < points[j].bucket })
	return points
}

// DailyReport projects revenue vs expenses per day. Profit is derived per row
// and never stored.
func (s *BillingService) DailyReport() ([]DailyReportRow, error) {
	revenue, err := s.reports.RevenueByDay()
	if err != nil {
		return nil, err
	}
	expenses, err := s.reports.ExpensesByDay()
	if err != nil {
		return nil, err
	}

	rows := []DailyReportRow{}
	for _, p := range mergeSeries(revenue, expenses) {
		rows = append(rows, DailyReportRow{
			ReportDate:    p.bucket,
			TotalRevenue:  p.revenue,
			TotalExpenses: p.expenses,
			Profit:        models.Profit(p.revenue, p.expenses),
		})
	}
	return rows, nil
}

// MonthlyReport projects revenue vs expenses per month.
func (s *BillingService) MonthlyReport() ([]MonthlyReportRow, error) {
	revenue, err := s.reports.RevenueByMonth()
	if err != nil {
		return nil, err
	}
	expenses, err := s.reports.ExpensesByMonth()
	if err != nil {
		return nil, err
	}

	rows := []MonthlyReportRow{}
	for _, p := range mergeSeries(revenue, expenses) {
		rows = append(rows, MonthlyReportRow{
			Month:         p.bucket,
			TotalRevenue:  p.revenue,
			TotalExpenses: p.expenses,
			Profit:        models.Profit(p.revenue, p.expenses),
		})
	}
	return rows, nil
}
