package services

import (
	"github.com/budgetbuddy/budgetbuddy/internal/repository"
)

// SelfPlaceholderName replaces the requesting user's display name in their
// appended leaderboard row.
const SelfPlaceholderName = "You"

type LeaderboardEntry struct {
	Name          string `json:"name"`
	ChallengesWon int    `json:"challenges_won"`
	Points        int    `json:"points"`
}

type LeaderboardService struct {
	userRepo *repository.UserRepository
	topN     int
}

func NewLeaderboardService(userRepo *repository.UserRepository, topN int) *LeaderboardService {
	if topN <= 0 {
		topN = 3
	}
	return &LeaderboardService{userRepo: userRepo, topN: topN}
}

func (s *LeaderboardService) TopN() ([]LeaderboardEntry, error) {
	users, err := s.userRepo.TopByRewardPoints(s.topN)
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, len(users))
	for i, u := range users {
		entries[i] = LeaderboardEntry{
			Name:          u.Name,
			ChallengesWon: u.ChallengesWon,
			Points:        u.RewardPoints,
		}
	}
	return entries, nil
}

// WithSelf appends the requesting user's own standing to the top list. The
// user is appended even when they already appear in the top entries; the
// duplicate row is deliberate and the front end relies on the last entry
// always being "You".
func (s *LeaderboardService) WithSelf(userID uint) ([]LeaderboardEntry, error) {
	entries, err := s.TopN()
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	entries = append(entries, LeaderboardEntry{
		Name:          SelfPlaceholderName,
		ChallengesWon: user.ChallengesWon,
		Points:        user.RewardPoints,
	})
	return entries, nil
}
