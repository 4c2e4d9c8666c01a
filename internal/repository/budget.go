package repository

import (
	"context"

	"github.com/Sanzzyy/management-finasial/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BudgetRepo interface {
	Upsert(ctx context.Context, budget *model.Budget) error
	ListByOwner(ctx context.Context, userID string) ([]model.Budget, error)
	Delete(ctx context.Context, userID string, id uint) (int64, error)
}

type budgetRepo struct {
	db *gorm.DB
}

func NewBudgetRepo(db *gorm.DB) BudgetRepo {
	return &budgetRepo{db: db}
}

// Upsert creates the budget or, when the (user_id, category) row already
// exists, replaces its limit. This is what keeps the one-budget-per-category
// invariant without a read-then-write race.
func (r *budgetRepo) Upsert(ctx context.Context, budget *model.Budget) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "category"}},
			DoUpdates: clause.AssignmentColumns([]string{"limit", "updated_at"}),
		}).
		Create(budget).Error
}

func (r *budgetRepo) ListByOwner(ctx context.Context, userID string) ([]model.Budget, error) {
	var list []model.Budget
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&list).Error
	return list, err
}

func (r *budgetRepo) Delete(ctx context.Context, userID string, id uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Budget{})
	return res.RowsAffected, res.Error
}
