package repository

import (
	"errors"

	"github.com/budgetbuddy/budgetbuddy/internal/models"
	"gorm.io/gorm"
)

type ChallengeRepository struct {
	db *gorm.DB
}

func NewChallengeRepository(db *gorm.DB) *ChallengeRepository {
	return &ChallengeRepository{db: db}
}

func (r *ChallengeRepository) FindByID(id uint) (*models.Challenge, error) {
	var challenge models.Challenge
	err := r.db.First(&challenge, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &challenge, nil
}

func (r *ChallengeRepository) FindAll() ([]models.Challenge, error) {
	var challenges []models.Challenge
	err := r.db.Order("id ASC").Find(&challenges).Error
	return challenges, err
}

// FindByCategory matches the category case-insensitively.
func (r *ChallengeRepository) FindByCategory(category string) ([]models.Challenge, error) {
	var challenges []models.Challenge
	err := r.db.Where("LOWER(category) = LOWER(?)", category).
		Order("id ASC").
		Find(&challenges).Error
	return challenges, err
}
