package models

import (
	"gorm.io/gorm"
)

const DefaultMonthlyBudget = 5000.0

type User struct {
	gorm.Model
	Name          string  `gorm:"not null" json:"name"`
	Email         string  `gorm:"uniqueIndex;not null" json:"email"`
	University    string  `gorm:"not null" json:"university"`
	PasswordHash  string  `gorm:"not null" json:"-"`
	MonthlyBudget float64 `gorm:"not null;default:5000" json:"monthly_budget"`
	Streak        int     `gorm:"not null;default:0" json:"streak"`
	RewardPoints  int     `gorm:"not null;default:0" json:"reward_points"`
	ChallengesWon int     `gorm:"not null;default:0" json:"challenges_won"`
}
