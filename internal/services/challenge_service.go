package services

import (
	"errors"
	"fmt"

	"github.com/budgetbuddy/budgetbuddy/internal/models"
	"github.com/budgetbuddy/budgetbuddy/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrChallengeNotFound     = errors.New("challenge not found")
	ErrAlreadyJoined         = errors.New("already joined")
	ErrUserChallengeNotFound = errors.New("user challenge not found")
)

// completionThreshold is the progress percentage at which a challenge is
// considered done and the reward is paid out.
const completionThreshold = 100

type ChallengeService struct {
	challengeRepo     *repository.ChallengeRepository
	userChallengeRepo *repository.UserChallengeRepository
	userRepo          *repository.UserRepository
	rewardRepo        *repository.RewardRepository
	db                *gorm.DB
}

func NewChallengeService(
	challengeRepo *repository.ChallengeRepository,
	userChallengeRepo *repository.UserChallengeRepository,
	userRepo *repository.UserRepository,
	rewardRepo *repository.RewardRepository,
	db *gorm.DB,
) *ChallengeService {
	return &ChallengeService{
		challengeRepo:     challengeRepo,
		userChallengeRepo: userChallengeRepo,
		userRepo:          userRepo,
		rewardRepo:        rewardRepo,
		db:                db,
	}
}

func (s *ChallengeService) AvailableChallenges(category string) ([]models.Challenge, error) {
	if category == "" || category == "all" {
		return s.challengeRepo.FindAll()
	}
	return s.challengeRepo.FindByCategory(category)
}

// Join enrolls the user in a catalog challenge. A second join of the same
// challenge fails with ErrAlreadyJoined rather than no-oping.
func (s *ChallengeService) Join(userID, challengeID uint) (*models.UserChallenge, error) {
	challenge, err := s.challengeRepo.FindByID(challengeID)
	if err != nil {
		return nil, err
	}
	if challenge == nil {
		return nil, ErrChallengeNotFound
	}

	existing, err := s.userChallengeRepo.FindByUserAndChallenge(userID, challengeID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyJoined
	}

	uc := &models.UserChallenge{
		UserID:      userID,
		ChallengeID: challengeID,
		Status:      models.ChallengeStatusActive,
		Progress:    0,
	}
	if err := s.userChallengeRepo.Create(uc); err != nil {
		return nil, err
	}

	return s.userChallengeRepo.FindByID(uc.ID)
}

func (s *ChallengeService) ListActive(userID uint) ([]models.UserChallenge, error) {
	return s.userChallengeRepo.FindActiveByUser(userID)
}

// UpdateProgress sets the progress of one of the user's challenge attempts.
// Progress is stored as given: it may decrease and is not clamped to [0,100].
// The first time it reaches 100 while the attempt is still active, the
// attempt is marked completed and the reward is paid out: challenges won,
// reward points and streak all move together with the status change inside
// one transaction, with the attempt row locked so concurrent updates cannot
// pay the reward twice. Later updates only change the progress field.
func (s *ChallengeService) UpdateProgress(userID, userChallengeID uint, progress float64) (*models.UserChallenge, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		uc, err := s.userChallengeRepo.FindByIDForUpdate(tx, userChallengeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserChallengeNotFound
			}
			return err
		}

		// Ownership check: attempts of other users are indistinguishable
		// from missing ones.
		if uc.UserID != userID {
			return ErrUserChallengeNotFound
		}

		completing := progress >= completionThreshold && uc.Status == models.ChallengeStatusActive

		uc.Progress = progress
		if completing {
			uc.Status = models.ChallengeStatusCompleted
		}
		if err := s.userChallengeRepo.UpdateInTx(tx, uc); err != nil {
			return err
		}

		if !completing {
			return nil
		}

		var challenge models.Challenge
		if err := tx.First(&challenge, uc.ChallengeID).Error; err != nil {
			return err
		}

		user, err := s.userRepo.FindByIDForUpdate(tx, uc.UserID)
		if err != nil {
			return err
		}

		user.ChallengesWon++
		user.RewardPoints += challenge.Points
		user.Streak++
		if err := s.userRepo.UpdateInTx(tx, user); err != nil {
			return err
		}

		entry := &models.RewardEntry{
			UserID:      user.ID,
			ChallengeID: challenge.ID,
			Points:      challenge.Points,
			Note:        fmt.Sprintf("Challenge completed: %s", challenge.Title),
		}
		return s.rewardRepo.Create(tx, entry)
	})

	if err != nil {
		return nil, err
	}

	return s.userChallengeRepo.FindByID(userChallengeID)
}

func (s *ChallengeService) RewardHistory(userID uint) ([]models.RewardEntry, error) {
	return s.rewardRepo.FindByUser(userID)
}
