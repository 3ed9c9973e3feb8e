package repository

import (
	"errors"

	"github.com/budgetbuddy/budgetbuddy/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserChallengeRepository struct {
	db *gorm.DB
}

func NewUserChallengeRepository(db *gorm.DB) *UserChallengeRepository {
	return &UserChallengeRepository{db: db}
}

func (r *UserChallengeRepository) Create(uc *models.UserChallenge) error {
	return r.db.Create(uc).Error
}

func (r *UserChallengeRepository) FindByID(id uint) (*models.UserChallenge, error) {
	var uc models.UserChallenge
	err := r.db.Preload("Challenge").First(&uc, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &uc, nil
}

func (r *UserChallengeRepository) FindByIDForUpdate(tx *gorm.DB, id uint) (*models.UserChallenge, error) {
	var uc models.UserChallenge
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&uc, id).Error
	if err != nil {
		return nil, err
	}
	return &uc, nil
}

// FindByUserAndChallenge is the lookup backing the one-attempt-per-challenge
// rule enforced on join.
func (r *UserChallengeRepository) FindByUserAndChallenge(userID, challengeID uint) (*models.UserChallenge, error) {
	var uc models.UserChallenge
	err := r.db.Where("user_id = ? AND challenge_id = ?", userID, challengeID).First(&uc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &uc, nil
}

func (r *UserChallengeRepository) FindActiveByUser(userID uint) ([]models.UserChallenge, error) {
	var ucs []models.UserChallenge
	err := r.db.Where("user_id = ? AND status = ?", userID, models.ChallengeStatusActive).
		Preload("Challenge").
		Order("id ASC").
		Find(&ucs).Error
	return ucs, err
}

func (r *UserChallengeRepository) UpdateInTx(tx *gorm.DB, uc *models.UserChallenge) error {
	return tx.Save(uc).Error
}
