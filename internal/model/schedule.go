package model

import "time"

// Schedule is a class or academic event. IsCompleted is toggled independently
// of the other fields.
type Schedule struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Subject     string `gorm:"type:varchar(255);not null" json:"subject"`
	Day         string `gorm:"type:varchar(16);index" json:"day"`
	Time        string `gorm:"type:varchar(8)" json:"time"` // "HH:MM"
	Room        string `gorm:"type:varchar(64)" json:"room"`
	Type        string `gorm:"type:varchar(16)" json:"type"`
	IsCompleted bool   `gorm:"not null;default:false" json:"isCompleted"`
	UserID      string `gorm:"type:varchar(36);index" json:"user_id"`
}

func (Schedule) TableName() string {
	return "schedules"
}
