package services

import (
	"testing"

	"github.com/budgetbuddy/budgetbuddy/internal/database"
	"github.com/budgetbuddy/budgetbuddy/internal/models"
	"github.com/budgetbuddy/budgetbuddy/internal/repository"
	"github.com/stretchr/testify/assert"
)

func setupChallengeTestDB(t *testing.T) (*repository.UserRepository, *repository.RewardRepository, *ChallengeService) {
	db, err := database.Connect(":memory:")
	assert.NoError(t, err)

	err = database.Migrate(db)
	assert.NoError(t, err)

	challengeRepo := repository.NewChallengeRepository(db)
	userChallengeRepo := repository.NewUserChallengeRepository(db)
	userRepo := repository.NewUserRepository(db)
	rewardRepo := repository.NewRewardRepository(db)
	challengeService := NewChallengeService(challengeRepo, userChallengeRepo, userRepo, rewardRepo, db)

	return userRepo, rewardRepo, challengeService
}

func createTestUser(t *testing.T, userRepo *repository.UserRepository, email string) *models.User {
	user := &models.User{
		Name:          "Test User",
		Email:         email,
		University:    "Test University",
		PasswordHash:  "x",
		MonthlyBudget: 5000,
	}
	err := userRepo.Create(user)
	assert.NoError(t, err)
	return user
}

func createTestChallenge(t *testing.T, svc *ChallengeService, title string, points int) *models.Challenge {
	challenge := &models.Challenge{
		Title:       title,
		Description: "Test challenge description",
		Category:    "Savings",
		Points:      points,
	}
	err := svc.db.Create(challenge).Error
	assert.NoError(t, err)
	return challenge
}

func TestChallengeService_Join(t *testing.T) {
	userRepo, _, challengeService := setupChallengeTestDB(t)

	user := createTestUser(t, userRepo, "join@test.com")
	challenge := createTestChallenge(t, challengeService, "Save big", 100)

	uc, err := challengeService.Join(user.ID, challenge.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.ChallengeStatusActive, uc.Status)
	assert.Equal(t, 0.0, uc.Progress)
	assert.Equal(t, challenge.ID, uc.ChallengeID)
}

func TestChallengeService_JoinUnknownChallenge(t *testing.T) {
	userRepo, _, challengeService := setupChallengeTestDB(t)

	user := createTestUser(t, userRepo, "unknown@test.com")

	_, err := challengeService.Join(user.ID, 9999)
	assert.Equal(t, ErrChallengeNotFound, err)
}

func TestChallengeService_JoinTwice(t *testing.T) {
	userRepo, _, challengeService := setupChallengeTestDB(t)

	user := createTestUser(t, userRepo, "twice@test.com")
	challenge := createTestChallenge(t, challengeService, "Save big", 100)

	_, err := challengeService.Join(user.ID, challenge.ID)
	assert.NoError(t, err)

	_, err = challengeService.Join(user.ID, challenge.ID)
	assert.Equal(t, ErrAlreadyJoined, err)
}

func TestChallengeService_UpdateProgressOwnership(t *testing.T) {
	userRepo, _, challengeService := setupChallengeTestDB(t)

	owner := createTestUser(t, userRepo, "owner@test.com")
	other := createTestUser(t, userRepo, "other@test.com")
	challenge := createTestChallenge(t, challengeService, "Save big", 100)

	uc, err := challengeService.Join(owner.ID, challenge.ID)
	assert.NoError(t, err)

	_, err = challengeService.UpdateProgress(other.ID, uc.ID, 50)
	assert.Equal(t, ErrUserChallengeNotFound, err)

	_, err = challengeService.UpdateProgress(owner.ID, 9999, 50)
	assert.Equal(t, ErrUserChallengeNotFound, err)
}

func TestChallengeService_CompletionPaysOutOnce(t *testing.T) {
	userRepo, rewardRepo, challengeService := setupChallengeTestDB(t)

	user := createTestUser(t, userRepo, "complete@test.com")
	challenge := createTestChallenge(t, challengeService, "No coffee", 50)

	uc, err := challengeService.Join(user.ID, challenge.ID)
	assert.NoError(t, err)

	// Below the threshold: nothing is paid out.
	uc, err = challengeService.UpdateProgress(user.ID, uc.ID, 40)
	assert.NoError(t, err)
	assert.Equal(t, models.ChallengeStatusActive, uc.Status)
	assert.Equal(t, 40.0, uc.Progress)

	userAfter, _ := userRepo.FindByID(user.ID)
	assert.Equal(t, 0, userAfter.ChallengesWon)
	assert.Equal(t, 0, userAfter.RewardPoints)
	assert.Equal(t, 0, userAfter.Streak)

	// Crossing the threshold completes and pays out.
	uc, err = challengeService.UpdateProgress(user.ID, uc.ID, 100)
	assert.NoError(t, err)
	assert.Equal(t, models.ChallengeStatusCompleted, uc.Status)

	userAfter, _ = userRepo.FindByID(user.ID)
	assert.Equal(t, 1, userAfter.ChallengesWon)
	assert.Equal(t, 50, userAfter.RewardPoints)
	assert.Equal(t, 1, userAfter.Streak)

	entries, err := rewardRepo.FindByUser(user.ID)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, 50, entries[0].Points)
	assert.Equal(t, "Challenge completed: No coffee", entries[0].Note)

	// Progress may still change afterwards, but the reward never repeats.
	uc, err = challengeService.UpdateProgress(user.ID, uc.ID, 10)
	assert.NoError(t, err)
	assert.Equal(t, models.ChallengeStatusCompleted, uc.Status)
	assert.Equal(t, 10.0, uc.Progress)

	uc, err = challengeService.UpdateProgress(user.ID, uc.ID, 150)
	assert.NoError(t, err)
	assert.Equal(t, models.ChallengeStatusCompleted, uc.Status)
	assert.Equal(t, 150.0, uc.Progress)

	userAfter, _ = userRepo.FindByID(user.ID)
	assert.Equal(t, 1, userAfter.ChallengesWon)
	assert.Equal(t, 50, userAfter.RewardPoints)
	assert.Equal(t, 1, userAfter.Streak)
}

func TestChallengeService_ListActive(t *testing.T) {
	userRepo, _, challengeService := setupChallengeTestDB(t)

	user := createTestUser(t, userRepo, "active@test.com")
	first := createTestChallenge(t, challengeService, "First", 10)
	second := createTestChallenge(t, challengeService, "Second", 20)

	ucFirst, err := challengeService.Join(user.ID, first.ID)
	assert.NoError(t, err)
	_, err = challengeService.Join(user.ID, second.ID)
	assert.NoError(t, err)

	active, err := challengeService.ListActive(user.ID)
	assert.NoError(t, err)
	assert.Len(t, active, 2)

	_, err = challengeService.UpdateProgress(user.ID, ucFirst.ID, 100)
	assert.NoError(t, err)

	active, err = challengeService.ListActive(user.ID)
	assert.NoError(t, err)
	assert.Len(t, active, 1)
	assert.Equal(t, second.ID, active[0].ChallengeID)
	assert.Equal(t, "Second", active[0].Challenge.Title)
}

func TestChallengeService_AvailableChallengesByCategory(t *testing.T) {
	_, _, challengeService := setupChallengeTestDB(t)

	createTestChallenge(t, challengeService, "Savings one", 10)
	habit := &models.Challenge{Title: "Habit one", Description: "d", Category: "Habits", Points: 5}
	assert.NoError(t, challengeService.db.Create(habit).Error)

	all, err := challengeService.AvailableChallenges("all")
	assert.NoError(t, err)
	assert.Len(t, all, 2)

	habits, err := challengeService.AvailableChallenges("habits")
	assert.NoError(t, err)
	assert.Len(t, habits, 1)
	assert.Equal(t, "Habit one", habits[0].Title)
}
