package services

import (
	"errors"
	"sort"
	"time"

	"github.com/budgetbuddy/budgetbuddy/internal/catalog"
	"github.com/budgetbuddy/budgetbuddy/internal/models"
	"github.com/budgetbuddy/budgetbuddy/internal/repository"
)

var ErrInvalidCategory = errors.New("invalid category")

// Period selects the aggregation window for spending queries.
const (
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodAll   = "all"
)

type Dashboard struct {
	MonthlyBudget float64 `json:"monthly_budget"`
	TotalSpent    float64 `json:"total_spent"`
	Remaining     float64 `json:"remaining"`
	ChallengesWon int     `json:"challenges_won"`
	RewardPoints  int     `json:"reward_points"`
	Streak        int     `json:"streak"`
}

type BudgetGoal struct {
	Budget   float64 `json:"budget"`
	Progress float64 `json:"progress"`
}

// DailySpending is the line-chart projection: parallel slices of ascending
// ISO dates and the amount spent on each.
type DailySpending struct {
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
}

// LedgerService computes per-user spending aggregates. All aggregation is a
// single pass over the filtered expense rows; nothing is precomputed or
// cached across requests.
type LedgerService struct {
	expenseRepo *repository.ExpenseRepository
	userRepo    *repository.UserRepository
	now         func() time.Time
}

func NewLedgerService(expenseRepo *repository.ExpenseRepository, userRepo *repository.UserRepository) *LedgerService {
	return &LedgerService{
		expenseRepo: expenseRepo,
		userRepo:    userRepo,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// windowStart resolves a period selector to the inclusive lower bound of the
// window. Unknown selectors fall through to the full history, as the source
// API treated anything but week/month as "all".
func (s *LedgerService) windowStart(period string) time.Time {
	now := s.now()
	switch period {
	case PeriodWeek:
		return now.AddDate(0, 0, -7)
	case PeriodMonth:
		return monthStart(now)
	default:
		return time.Time{}
	}
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// AddExpense validates the category against the fixed catalog
// (case-insensitively, storing the canonical spelling) and records the
// expense. A zero date defaults to now. Amounts are stored as given; the
// sign is deliberately not checked.
func (s *LedgerService) AddExpense(userID uint, amount float64, category, description string, date time.Time) (*models.Expense, error) {
	canonical, ok := catalog.CanonicalCategory(category)
	if !ok {
		return nil, ErrInvalidCategory
	}

	if date.IsZero() {
		date = s.now()
	}

	expense := &models.Expense{
		UserID:      userID,
		Amount:      amount,
		Category:    canonical,
		Description: description,
		Date:        date,
	}
	if err := s.expenseRepo.Create(expense); err != nil {
		return nil, err
	}
	return expense, nil
}

func (s *LedgerService) RecentExpenses(userID uint, limit int) ([]models.Expense, error) {
	return s.expenseRepo.FindRecent(userID, limit)
}

// SpendingByCategory sums the user's expenses per category within the
// window. Categories with no expenses are absent from the result.
func (s *LedgerService) SpendingByCategory(userID uint, period string) (map[string]float64, error) {
	expenses, err := s.expenseRepo.FindByUserSince(userID, s.windowStart(period))
	if err != nil {
		return nil, err
	}

	byCategory := make(map[string]float64)
	for _, e := range expenses {
		byCategory[e.Category] += e.Amount
	}
	return byCategory, nil
}

// SpendingByDay groups the user's expenses by calendar day within the
// window. Lexicographic order of the ISO date labels is chronological order.
func (s *LedgerService) SpendingByDay(userID uint, period string) (*DailySpending, error) {
	expenses, err := s.expenseRepo.FindByUserSince(userID, s.windowStart(period))
	if err != nil {
		return nil, err
	}

	daily := make(map[string]float64)
	for _, e := range expenses {
		day := e.Date.Format("2006-01-02")
		daily[day] += e.Amount
	}

	labels := make([]string, 0, len(daily))
	for day := range daily {
		labels = append(labels, day)
	}
	sort.Strings(labels)

	data := make([]float64, len(labels))
	for i, day := range labels {
		data[i] = daily[day]
	}

	return &DailySpending{Labels: labels, Data: data}, nil
}

// Dashboard reports the current calendar month's spending against the
// user's budget. Remaining may go negative when the budget is exceeded.
func (s *LedgerService) Dashboard(userID uint) (*Dashboard, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	total, err := s.monthToDateTotal(userID)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		MonthlyBudget: user.MonthlyBudget,
		TotalSpent:    total,
		Remaining:     user.MonthlyBudget - total,
		ChallengesWon: user.ChallengesWon,
		RewardPoints:  user.RewardPoints,
		Streak:        user.Streak,
	}, nil
}

// BudgetGoal reports month-to-date spending as a percentage of the budget.
// A non-positive budget yields zero progress rather than a division fault.
func (s *LedgerService) BudgetGoal(userID uint) (*BudgetGoal, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	total, err := s.monthToDateTotal(userID)
	if err != nil {
		return nil, err
	}

	progress := 0.0
	if user.MonthlyBudget > 0 {
		progress = total / user.MonthlyBudget * 100
	}

	return &BudgetGoal{Budget: user.MonthlyBudget, Progress: progress}, nil
}

func (s *LedgerService) monthToDateTotal(userID uint) (float64, error) {
	expenses, err := s.expenseRepo.FindByUserSince(userID, monthStart(s.now()))
	if err != nil {
		return 0, err
	}

	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	return total, nil
}
