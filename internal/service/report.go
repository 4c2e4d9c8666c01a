package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/Sanzzyy/management-finasial/internal/model"
	"github.com/Sanzzyy/management-finasial/internal/repository"
)

// DailyTotal is one entry of the sparse daily series: only days with at
// least one transaction appear, sorted by day.
type DailyTotal struct {
	Day     int     `json:"day"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

// MonthlyReport is the full contract surface of the report aggregator: three
// totals, the sparse daily series, and the expense-by-category mapping.
type MonthlyReport struct {
	Month        int                `json:"month"` // 0-based, January = 0
	Year         int                `json:"year"`
	TotalIncome  float64            `json:"totalIncome"`
	TotalExpense float64            `json:"totalExpense"`
	NetSavings   float64            `json:"netSavings"`
	Daily        []DailyTotal       `json:"daily"`
	ByCategory   map[string]float64 `json:"byCategory"`
}

type ReportService struct {
	txRepo repository.TransactionRepo
}

func NewReportService(txRepo repository.TransactionRepo) *ReportService {
	return &ReportService{txRepo: txRepo}
}

// Monthly builds the report for a 0-based month index and a year. The month
// filter uses local calendar semantics to match how dates were stored.
func (s *ReportService) Monthly(ctx context.Context, userID string, month, year int) (*MonthlyReport, error) {
	if month < 0 || month > 11 {
		return nil, fmt.Errorf("month must be between 0 and 11")
	}

	transactions, err := s.txRepo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	report := BuildMonthlyReport(transactions, month, year)
	return &report, nil
}

// BuildMonthlyReport is the pure aggregation pass over the owner's full
// history. It never zero-fills missing days and omits categories with no
// expense.
func BuildMonthlyReport(transactions []model.Transaction, month, year int) MonthlyReport {
	report := MonthlyReport{
		Month:      month,
		Year:       year,
		ByCategory: map[string]float64{},
	}

	daily := map[int]*DailyTotal{}
	for _, t := range transactions {
		date := t.Date.Local()
		if int(date.Month())-1 != month || date.Year() != year {
			continue
		}

		day := date.Day()
		entry := daily[day]
		if entry == nil {
			entry = &DailyTotal{Day: day}
			daily[day] = entry
		}

		if t.Type == model.TypeIncome {
			report.TotalIncome += t.Amount
			entry.Income += t.Amount
		} else {
			report.TotalExpense += t.Amount
			entry.Expense += t.Amount
			report.ByCategory[t.Category] += t.Amount
		}
	}

	report.NetSavings = report.TotalIncome - report.TotalExpense

	report.Daily = make([]DailyTotal, 0, len(daily))
	for _, entry := range daily {
		report.Daily = append(report.Daily, *entry)
	}
	sort.Slice(report.Daily, func(i, j int) bool {
		return report.Daily[i].Day < report.Daily[j].Day
	})

	return report
}
