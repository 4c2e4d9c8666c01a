package model

import "time"

type TransactionType string

const (
	TypeIncome  TransactionType = "INCOME"
	TypeExpense TransactionType = "EXPENSE"
)

type Priority string

const (
	PriorityNeed Priority = "NEED"
	PriorityWant Priority = "WANT"
)

// Transaction is a single income or expense record. Priority only carries
// meaning for expenses; income rows always store NEED.
type Transaction struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Title    string          `gorm:"type:varchar(255);not null" json:"title"`
	Amount   float64         `gorm:"type:decimal(12,2);not null" json:"amount"`
	Type     TransactionType `gorm:"type:varchar(16);index" json:"type"`
	Category string          `gorm:"type:varchar(64);index" json:"category"`
	Priority Priority        `gorm:"type:varchar(16)" json:"priority"`
	Date     time.Time       `gorm:"index" json:"date"`
	UserID   string          `gorm:"type:varchar(36);index" json:"user_id"`
}

func (Transaction) TableName() string {
	return "transactions"
}

func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

func (p Priority) Valid() bool {
	return p == PriorityNeed || p == PriorityWant
}
