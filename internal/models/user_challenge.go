package models

import "gorm.io/gorm"

const (
	ChallengeStatusActive    = "active"
	ChallengeStatusCompleted = "completed"
)

// UserChallenge is one user's attempt at one catalog challenge. At most one
// record exists per (user, challenge) pair, enforced by a lookup before
// insert. Status only ever moves active -> completed.
type UserChallenge struct {
	gorm.Model
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	User        User      `gorm:"foreignKey:UserID" json:"-"`
	ChallengeID uint      `gorm:"not null;index" json:"challenge_id"`
	Challenge   Challenge `gorm:"foreignKey:ChallengeID" json:"challenge,omitempty"`
	Status      string    `gorm:"not null;default:active;size:20" json:"status"`
	Progress    float64   `gorm:"not null;default:0" json:"progress"`
}
