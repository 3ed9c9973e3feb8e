package repository

import (
	"github.com/budgetbuddy/budgetbuddy/internal/models"
	"gorm.io/gorm"
)

type RewardRepository struct {
	db *gorm.DB
}

func NewRewardRepository(db *gorm.DB) *RewardRepository {
	return &RewardRepository{db: db}
}

func (r *RewardRepository) Create(tx *gorm.DB, entry *models.RewardEntry) error {
	return tx.Create(entry).Error
}

func (r *RewardRepository) FindByUser(userID uint) ([]models.RewardEntry, error) {
	var entries []models.RewardEntry
	err := r.db.Where("user_id = ?", userID).
		Preload("Challenge").
		Order("created_at DESC").
		Find(&entries).Error
	return entries, err
}

func (r *RewardRepository) FindAll() ([]models.RewardEntry, error) {
	var entries []models.RewardEntry
	err := r.db.
		Preload("User").
		Preload("Challenge").
		Order("created_at DESC").
		Find(&entries).Error
	return entries, err
}
