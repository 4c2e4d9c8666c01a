package repository

import (
	"context"
	"time"

	"github.com/Sanzzyy/management-finasial/internal/model"
	"gorm.io/gorm"
)

// TransactionFilter narrows a list query. Zero values mean "no filter".
type TransactionFilter struct {
	UserID    string
	Type      model.TransactionType
	Category  string
	StartDate time.Time
	EndDate   time.Time
	Page      int
	PageSize  int
}

type TransactionRepo interface {
	Create(ctx context.Context, tx *model.Transaction) error
	GetByID(ctx context.Context, id uint) (*model.Transaction, error)
	List(ctx context.Context, filter TransactionFilter) ([]model.Transaction, int64, error)
	ListByOwner(ctx context.Context, userID string) ([]model.Transaction, error)
	ListRecent(ctx context.Context, userID string, limit int) ([]model.Transaction, error)
	SumExpensesByCategory(ctx context.Context, userID string, from, to time.Time) (map[string]float64, error)
	Update(ctx context.Context, tx *model.Transaction) error
	Delete(ctx context.Context, userID string, id uint) (int64, error)
}

type transactionRepo struct {
	db *gorm.DB
}

func NewTransactionRepo(db *gorm.DB) TransactionRepo {
	return &transactionRepo{db: db}
}

func (r *transactionRepo) Create(ctx context.Context, tx *model.Transaction) error {
	return r.db.WithContext(ctx).Create(tx).Error
}

func (r *transactionRepo) GetByID(ctx context.Context, id uint) (*model.Transaction, error) {
	var tx model.Transaction
	if err := r.db.WithContext(ctx).First(&tx, id).Error; err != nil {
		return nil, err
	}
	return &tx, nil
}

func (r *transactionRepo) List(ctx context.Context, filter TransactionFilter) ([]model.Transaction, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Transaction{}).Where("user_id = ?", filter.UserID)

	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if !filter.StartDate.IsZero() {
		q = q.Where("date >= ?", filter.StartDate)
	}
	if !filter.EndDate.IsZero() {
		q = q.Where("date < ?", filter.EndDate)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.PageSize > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		q = q.Offset((page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	var list []model.Transaction
	if err := q.Order("date DESC").Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *transactionRepo) ListByOwner(ctx context.Context, userID string) ([]model.Transaction, error) {
	var list []model.Transaction
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&list).Error
	return list, err
}

func (r *transactionRepo) ListRecent(ctx context.Context, userID string, limit int) ([]model.Transaction, error) {
	var list []model.Transaction
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Limit(limit).
		Find(&list).Error
	return list, err
}

type categorySum struct {
	Category string
	Total    float64
}

// SumExpensesByCategory groups the owner's EXPENSE rows inside [from, to) per
// category in one query, the input for the budget-status aggregation.
func (r *transactionRepo) SumExpensesByCategory(ctx context.Context, userID string, from, to time.Time) (map[string]float64, error) {
	var rows []categorySum
	err := r.db.WithContext(ctx).
		Model(&model.Transaction{}).
		Select("category, SUM(amount) AS total").
		Where("user_id = ? AND type = ? AND date >= ? AND date < ?", userID, model.TypeExpense, from, to).
		Group("category").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	spent := make(map[string]float64, len(rows))
	for _, row := range rows {
		spent[row.Category] = row.Total
	}
	return spent, nil
}

func (r *transactionRepo) Update(ctx context.Context, tx *model.Transaction) error {
	return r.db.WithContext(ctx).Save(tx).Error
}

// Delete removes the row only when it belongs to userID, and reports how many
// rows matched. Zero rows means not-found-or-not-yours; the caller decides the
// error without learning which.
func (r *transactionRepo) Delete(ctx context.Context, userID string, id uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Transaction{})
	return res.RowsAffected, res.Error
}
