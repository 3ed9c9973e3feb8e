package models

import (
	"time"

	"gorm.io/gorm"
)

// Expense is immutable once created: there is no update or delete path.
type Expense struct {
	gorm.Model
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	User        User      `gorm:"foreignKey:UserID" json:"-"`
	Amount      float64   `gorm:"not null" json:"amount"`
	Category    string    `gorm:"not null;size:50" json:"category"`
	Description string    `gorm:"size:200" json:"description"`
	Date        time.Time `gorm:"not null;index" json:"date"`
}
