package repository

import (
	"context"

	"github.com/Sanzzyy/management-finasial/internal/model"
	"gorm.io/gorm"
)

type ScheduleRepo interface {
	Create(ctx context.Context, schedule *model.Schedule) error
	ListByOwner(ctx context.Context, userID, day string) ([]model.Schedule, error)
	GetByID(ctx context.Context, id uint) (*model.Schedule, error)
	Update(ctx context.Context, schedule *model.Schedule) error
	Delete(ctx context.Context, userID string, id uint) (int64, error)
}

type scheduleRepo struct {
	db *gorm.DB
}

func NewScheduleRepo(db *gorm.DB) ScheduleRepo {
	return &scheduleRepo{db: db}
}

func (r *scheduleRepo) Create(ctx context.Context, schedule *model.Schedule) error {
	return r.db.WithContext(ctx).Create(schedule).Error
}

// ListByOwner returns the owner's schedule, optionally narrowed to one
// weekday, ordered by the zero-padded time string.
func (r *scheduleRepo) ListByOwner(ctx context.Context, userID, day string) ([]model.Schedule, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if day != "" {
		q = q.Where("day = ?", day)
	}

	var list []model.Schedule
	err := q.Order("time ASC").Find(&list).Error
	return list, err
}

func (r *scheduleRepo) GetByID(ctx context.Context, id uint) (*model.Schedule, error) {
	var schedule model.Schedule
	if err := r.db.WithContext(ctx).First(&schedule, id).Error; err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (r *scheduleRepo) Update(ctx context.Context, schedule *model.Schedule) error {
	// Save writes all columns, so a toggled-off IsCompleted persists too.
	return r.db.WithContext(ctx).Save(schedule).Error
}

func (r *scheduleRepo) Delete(ctx context.Context, userID string, id uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Schedule{})
	return res.RowsAffected, res.Error
}
