package service

import (
	"context"
	"testing"
	"time"

	"github.com/Sanzzyy/management-finasial/internal/model"
)

type fakeBudgetRepo struct {
	budgets map[uint]*model.Budget
	nextID  uint
}

func newFakeBudgetRepo() *fakeBudgetRepo {
	return &fakeBudgetRepo{budgets: map[uint]*model.Budget{}, nextID: 1}
}

func (f *fakeBudgetRepo) Upsert(_ context.Context, budget *model.Budget) error {
	for _, b := range f.budgets {
		if b.UserID == budget.UserID && b.Category == budget.Category {
			b.Limit = budget.Limit
			budget.ID = b.ID
			return nil
		}
	}
	budget.ID = f.nextID
	f.nextID++
	copied := *budget
	f.budgets[budget.ID] = &copied
	return nil
}

func (f *fakeBudgetRepo) ListByOwner(_ context.Context, userID string) ([]model.Budget, error) {
	var out []model.Budget
	for _, b := range f.budgets {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBudgetRepo) Delete(_ context.Context, userID string, id uint) (int64, error) {
	b, ok := f.budgets[id]
	if !ok || b.UserID != userID {
		return 0, nil
	}
	delete(f.budgets, id)
	return 1, nil
}

func TestBudgetSetUpsert(t *testing.T) {
	repo := newFakeBudgetRepo()
	svc := NewBudgetService(repo, newFakeTransactionRepo())
	ctx := context.Background()

	first, err := svc.Set(ctx, "owner-1", "Food", 100_000)
	if err != nil {
		t.Fatalf("Set: %v", err)
	}
	second, err := svc.Set(ctx, "owner-1", "Food", 250_000)
	if err != nil {
		t.Fatalf("Set again: %v", err)
	}

	if first.ID != second.ID {
		t.Errorf("upsert created a second row: ids %d and %d", first.ID, second.ID)
	}
	list, _ := repo.ListByOwner(ctx, "owner-1")
	if len(list) != 1 {
		t.Fatalf("got %d budgets, want 1", len(list))
	}
	if list[0].Limit != 250_000 {
		t.Errorf("limit = %v, want 250000 after replace", list[0].Limit)
	}
}

func TestBudgetSetValidation(t *testing.T) {
	svc := NewBudgetService(newFakeBudgetRepo(), newFakeTransactionRepo())
	ctx := context.Background()

	if _, err := svc.Set(ctx, "owner-1", "Rocketry", 1000); err == nil {
		t.Error("unknown category should be rejected")
	}
	if _, err := svc.Set(ctx, "owner-1", "Food", -1); err == nil {
		t.Error("negative limit should be rejected")
	}
	if _, err := svc.Set(ctx, "owner-1", "Food", 0); err != nil {
		t.Errorf("zero limit is allowed, got %v", err)
	}
}

func TestBudgetStatusMonthWindow(t *testing.T) {
	budgetRepo := newFakeBudgetRepo()
	txRepo := newFakeTransactionRepo()
	svc := NewBudgetService(budgetRepo, txRepo)
	ctx := context.Background()

	if _, err := svc.Set(ctx, "owner-1", "Food", 100_000); err != nil {
		t.Fatalf("Set: %v", err)
	}

	now := time.Date(2026, time.March, 15, 10, 0, 0, 0, time.Local)
	txSvc := NewTransactionService(txRepo, nil, nil)
	mustCreate := func(category string, amount float64, date time.Time) {
		t.Helper()
		_, err := txSvc.Create(ctx, "owner-1", TransactionInput{
			Title: "t", Amount: amount, Type: model.TypeExpense,
			Category: category, Date: date,
		})
		if err != nil {
			t.Fatalf("create transaction: %v", err)
		}
	}

	mustCreate("Food", 50_000, now)                                            // in window
	mustCreate("Food", 30_000, time.Date(2026, 3, 31, 23, 0, 0, 0, time.Local)) // last day counts
	mustCreate("Food", 70_000, now.AddDate(0, -1, 0))                          // previous month, excluded

	statuses, err := svc.Status(ctx, "owner-1", now)
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if len(statuses) != 1 {
		t.Fatalf("got %d statuses, want 1", len(statuses))
	}
	if statuses[0].Spent != 80_000 {
		t.Errorf("spent = %v, want 80000 (current month only, last day inclusive)", statuses[0].Spent)
	}
}
