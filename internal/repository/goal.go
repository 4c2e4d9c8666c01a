package repository

import (
	"context"

	"github.com/Sanzzyy/management-finasial/internal/model"
	"gorm.io/gorm"
)

type GoalRepo interface {
	Create(ctx context.Context, goal *model.Goal) error
	ListByOwner(ctx context.Context, userID string) ([]model.Goal, error)
	GetByID(ctx context.Context, id uint) (*model.Goal, error)
	AddSaving(ctx context.Context, userID string, id uint, amount float64) (int64, error)
	Delete(ctx context.Context, userID string, id uint) (int64, error)
}

type goalRepo struct {
	db *gorm.DB
}

func NewGoalRepo(db *gorm.DB) GoalRepo {
	return &goalRepo{db: db}
}

func (r *goalRepo) Create(ctx context.Context, goal *model.Goal) error {
	return r.db.WithContext(ctx).Create(goal).Error
}

func (r *goalRepo) ListByOwner(ctx context.Context, userID string) ([]model.Goal, error) {
	var list []model.Goal
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&list).Error
	return list, err
}

func (r *goalRepo) GetByID(ctx context.Context, id uint) (*model.Goal, error) {
	var goal model.Goal
	if err := r.db.WithContext(ctx).First(&goal, id).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

// AddSaving increments saved_amount in a single UPDATE so two simultaneous
// contributions from the same owner cannot lose an update. The owner check
// rides in the WHERE clause; zero affected rows means not-found-or-not-yours.
func (r *goalRepo) AddSaving(ctx context.Context, userID string, id uint, amount float64) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Goal{}).
		Where("id = ? AND user_id = ?", id, userID).
		UpdateColumn("saved_amount", gorm.Expr("saved_amount + ?", amount))
	return res.RowsAffected, res.Error
}

func (r *goalRepo) Delete(ctx context.Context, userID string, id uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Goal{})
	return res.RowsAffected, res.Error
}
