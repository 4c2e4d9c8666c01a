package model

import "time"

// Budget is a per-category monthly spending limit. At most one row exists per
// (UserID, Category) pair; writes go through an upsert keyed on that index.
type Budget struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Category string  `gorm:"type:varchar(64);uniqueIndex:idx_owner_category" json:"category"`
	Limit    float64 `gorm:"type:decimal(12,2);not null" json:"limit"`
	UserID   string  `gorm:"type:varchar(36);uniqueIndex:idx_owner_category" json:"user_id"`
}

func (Budget) TableName() string {
	return "budgets"
}

// BudgetStatus is the derived view of a budget against the current month's
// spending. Never persisted, recomputed per request.
type BudgetStatus struct {
	ID           uint    `json:"id"`
	Category     string  `json:"category"`
	Limit        float64 `json:"limit"`
	Spent        float64 `json:"spent"`
	Percentage   float64 `json:"percentage"`
	IsOverBudget bool    `json:"isOverBudget"`
}
