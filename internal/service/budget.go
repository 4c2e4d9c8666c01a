package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/Sanzzyy/management-finasial/internal/model"
	"github.com/Sanzzyy/management-finasial/internal/repository"
)

type BudgetService struct {
	budgetRepo repository.BudgetRepo
	txRepo     repository.TransactionRepo
}

func NewBudgetService(budgetRepo repository.BudgetRepo, txRepo repository.TransactionRepo) *BudgetService {
	return &BudgetService{budgetRepo: budgetRepo, txRepo: txRepo}
}

// Set upserts a budget keyed by (owner, category).
func (s *BudgetService) Set(ctx context.Context, userID, category string, limit float64) (*model.Budget, error) {
	if !model.ValidCategory(model.TypeExpense, category) {
		return nil, fmt.Errorf("unknown expense category %q", category)
	}
	if limit < 0 {
		return nil, fmt.Errorf("limit cannot be negative")
	}

	budget := &model.Budget{
		Category: category,
		Limit:    limit,
		UserID:   userID,
	}
	if err := s.budgetRepo.Upsert(ctx, budget); err != nil {
		return nil, err
	}
	return budget, nil
}

// Status combines each budget with the owner's expense total for the current
// calendar month. Two queries total, never one per budget.
func (s *BudgetService) Status(ctx context.Context, userID string, now time.Time) ([]model.BudgetStatus, error) {
	budgets, err := s.budgetRepo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	start, end := monthWindow(now)
	spent, err := s.txRepo.SumExpensesByCategory(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	return BuildBudgetStatus(budgets, spent), nil
}

func (s *BudgetService) Delete(ctx context.Context, userID string, id uint) error {
	affected, err := s.budgetRepo.Delete(ctx, userID, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// BuildBudgetStatus is the pure aggregation core: given the owner's budgets
// and this month's per-category expense totals, derive the status rows.
//
// A zero limit yields percentage 0 regardless of spending (division guard,
// kept as policy); isOverBudget stays spent > limit, so spending against a
// zero limit still flags as over.
func BuildBudgetStatus(budgets []model.Budget, spentByCategory map[string]float64) []model.BudgetStatus {
	statuses := make([]model.BudgetStatus, 0, len(budgets))
	for _, b := range budgets {
		spent := spentByCategory[b.Category] // missing category reads 0

		var percentage float64
		if b.Limit > 0 {
			percentage = math.Min(spent/b.Limit*100, 100)
			percentage = math.Round(percentage*10) / 10
		}

		statuses = append(statuses, model.BudgetStatus{
			ID:           b.ID,
			Category:     b.Category,
			Limit:        b.Limit,
			Spent:        spent,
			Percentage:   percentage,
			IsOverBudget: spent > b.Limit,
		})
	}
	return statuses
}

// monthWindow returns [first of month, first of next month) in local time.
func monthWindow(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 1, 0)
}
