package service

import (
	"reflect"
	"testing"

	"github.com/Sanzzyy/management-finasial/internal/model"
)

func TestBuildBudgetStatus(t *testing.T) {
	spent := map[string]float64{
		"Food":      80_000, // 50k + 30k
		"Transport": 20_000,
	}

	t.Run("under budget", func(t *testing.T) {
		statuses := BuildBudgetStatus([]model.Budget{
			{ID: 1, Category: "Food", Limit: 100_000},
		}, spent)

		got := statuses[0]
		if got.Spent != 80_000 {
			t.Errorf("spent = %v, want 80000", got.Spent)
		}
		if got.Percentage != 80.0 {
			t.Errorf("percentage = %v, want 80.0", got.Percentage)
		}
		if got.IsOverBudget {
			t.Error("IsOverBudget = true, want false")
		}
	})

	t.Run("over budget clamps percentage", func(t *testing.T) {
		statuses := BuildBudgetStatus([]model.Budget{
			{ID: 1, Category: "Food", Limit: 50_000},
		}, spent)

		got := statuses[0]
		if got.Spent != 80_000 {
			t.Errorf("spent = %v, want 80000", got.Spent)
		}
		if got.Percentage != 100 {
			t.Errorf("percentage = %v, want 100 (clamped)", got.Percentage)
		}
		if !got.IsOverBudget {
			t.Error("IsOverBudget = false, want true")
		}
	})

	t.Run("category with no expenses", func(t *testing.T) {
		statuses := BuildBudgetStatus([]model.Budget{
			{ID: 1, Category: "Bills", Limit: 100_000},
		}, spent)

		got := statuses[0]
		if got.Spent != 0 || got.Percentage != 0 || got.IsOverBudget {
			t.Errorf("got %+v, want spent=0 percentage=0 over=false", got)
		}
	})

	t.Run("zero limit", func(t *testing.T) {
		statuses := BuildBudgetStatus([]model.Budget{
			{ID: 1, Category: "Food", Limit: 0},
			{ID: 2, Category: "Bills", Limit: 0},
		}, spent)

		// Any spending against a zero limit flags over-budget, but the
		// percentage stays 0 (division guard).
		if statuses[0].Percentage != 0 {
			t.Errorf("percentage = %v, want 0", statuses[0].Percentage)
		}
		if !statuses[0].IsOverBudget {
			t.Error("spent 80000 against limit 0 should be over budget")
		}
		if statuses[1].IsOverBudget {
			t.Error("no spending against limit 0 should not be over budget")
		}
	})

	t.Run("one decimal rounding", func(t *testing.T) {
		statuses := BuildBudgetStatus([]model.Budget{
			{ID: 1, Category: "Transport", Limit: 30_000},
		}, spent)

		if statuses[0].Percentage != 66.7 {
			t.Errorf("percentage = %v, want 66.7", statuses[0].Percentage)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		budgets := []model.Budget{
			{ID: 1, Category: "Food", Limit: 100_000},
			{ID: 2, Category: "Transport", Limit: 30_000},
		}
		first := BuildBudgetStatus(budgets, spent)
		second := BuildBudgetStatus(budgets, spent)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("two runs over the same input differ: %+v vs %+v", first, second)
		}
	})

	t.Run("sum property", func(t *testing.T) {
		budgets := []model.Budget{
			{ID: 1, Category: "Food", Limit: 100_000},
			{ID: 2, Category: "Transport", Limit: 30_000},
		}
		statuses := BuildBudgetStatus(budgets, spent)

		var total float64
		for _, s := range statuses {
			total += s.Spent
		}
		if total != 100_000 {
			t.Errorf("sum of spent = %v, want 100000", total)
		}
	})

	t.Run("no budgets", func(t *testing.T) {
		statuses := BuildBudgetStatus(nil, spent)
		if len(statuses) != 0 {
			t.Errorf("got %d statuses, want 0", len(statuses))
		}
	})
}
