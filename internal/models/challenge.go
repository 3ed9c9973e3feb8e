package models

import "gorm.io/gorm"

// Challenge is a catalog entry shared by all users. The catalog is seeded
// once at startup and read-only to the user-facing API afterwards.
type Challenge struct {
	gorm.Model
	Title       string `gorm:"not null;size:100" json:"title"`
	Description string `gorm:"not null;size:200" json:"description"`
	Category    string `gorm:"not null;size:50" json:"category"`
	Points      int    `gorm:"not null" json:"points"`
}
