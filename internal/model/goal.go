package model

import "time"

// Goal is a savings target. SavedAmount starts at 0 and only ever grows, via
// an atomic increment at the storage layer. The stored value is deliberately
// not capped at TargetAmount; only the derived percentage is clamped.
type Goal struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Title        string  `gorm:"type:varchar(255);not null" json:"title"`
	TargetAmount float64 `gorm:"type:decimal(12,2);not null" json:"targetAmount"`
	SavedAmount  float64 `gorm:"type:decimal(12,2);not null;default:0" json:"savedAmount"`
	UserID       string  `gorm:"type:varchar(36);index" json:"user_id"`
}

func (Goal) TableName() string {
	return "goals"
}

// GoalStatus is a Goal plus its display percentage.
type GoalStatus struct {
	Goal
	Percentage int `json:"percentage"`
}
