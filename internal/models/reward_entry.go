package models

import "gorm.io/gorm"

// RewardEntry records a single reward-point payout. One row is appended in
// the same transaction that marks a challenge completed, giving users and
// admins an auditable history of where points came from.
type RewardEntry struct {
	gorm.Model
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	User        User      `gorm:"foreignKey:UserID" json:"-"`
	ChallengeID uint      `gorm:"not null;index" json:"challenge_id"`
	Challenge   Challenge `gorm:"foreignKey:ChallengeID" json:"challenge,omitempty"`
	Points      int       `gorm:"not null" json:"points"`
	Note        string    `gorm:"type:text" json:"note"`
}
