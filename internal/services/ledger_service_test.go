package services

import (
	"testing"
	"time"

	"github.com/budgetbuddy/budgetbuddy/internal/database"
	"github.com/budgetbuddy/budgetbuddy/internal/models"
	"github.com/budgetbuddy/budgetbuddy/internal/repository"
	"github.com/stretchr/testify/assert"
)

// fixedNow keeps window boundaries deterministic: mid-month so week and
// month windows differ.
var fixedNow = time.Date(2025, 6, 18, 12, 0, 0, 0, time.UTC)

func setupLedgerTestDB(t *testing.T) (*repository.UserRepository, *repository.ExpenseRepository, *LedgerService) {
	db, err := database.Connect(":memory:")
	assert.NoError(t, err)

	err = database.Migrate(db)
	assert.NoError(t, err)

	userRepo := repository.NewUserRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	ledgerService := NewLedgerService(expenseRepo, userRepo)
	ledgerService.now = func() time.Time { return fixedNow }

	return userRepo, expenseRepo, ledgerService
}

func createLedgerUser(t *testing.T, userRepo *repository.UserRepository, budget float64) *models.User {
	user := &models.User{
		Name:          "Ledger User",
		Email:         "ledger@test.com",
		University:    "Test University",
		PasswordHash:  "x",
		MonthlyBudget: budget,
	}
	err := userRepo.Create(user)
	assert.NoError(t, err)
	return user
}

func TestLedgerService_AddExpenseValidatesCategory(t *testing.T) {
	userRepo, _, ledgerService := setupLedgerTestDB(t)
	user := createLedgerUser(t, userRepo, 500)

	_, err := ledgerService.AddExpense(user.ID, 10, "Groceries", "", time.Time{})
	assert.Equal(t, ErrInvalidCategory, err)

	// Case-insensitive match stores the canonical spelling.
	expense, err := ledgerService.AddExpense(user.ID, 10, "food & dining", "lunch", time.Time{})
	assert.NoError(t, err)
	assert.Equal(t, "Food & Dining", expense.Category)
	assert.Equal(t, fixedNow, expense.Date.UTC())
}

func TestLedgerService_Dashboard(t *testing.T) {
	userRepo, _, ledgerService := setupLedgerTestDB(t)
	user := createLedgerUser(t, userRepo, 500)

	_, err := ledgerService.AddExpense(user.ID, 100, "Shopping", "", fixedNow.AddDate(0, 0, -2))
	assert.NoError(t, err)
	_, err = ledgerService.AddExpense(user.ID, 200, "Shopping", "", fixedNow.AddDate(0, 0, -1))
	assert.NoError(t, err)
	_, err = ledgerService.AddExpense(user.ID, 50, "Entertainment", "", fixedNow)
	assert.NoError(t, err)

	// Previous month, outside the dashboard window.
	_, err = ledgerService.AddExpense(user.ID, 999, "Other", "", fixedNow.AddDate(0, -1, 0))
	assert.NoError(t, err)

	dashboard, err := ledgerService.Dashboard(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, 500.0, dashboard.MonthlyBudget)
	assert.Equal(t, 350.0, dashboard.TotalSpent)
	assert.Equal(t, 150.0, dashboard.Remaining)
}

func TestLedgerService_DashboardOverspend(t *testing.T) {
	userRepo, _, ledgerService := setupLedgerTestDB(t)
	user := createLedgerUser(t, userRepo, 100)

	_, err := ledgerService.AddExpense(user.ID, 250, "Shopping", "", fixedNow)
	assert.NoError(t, err)

	dashboard, err := ledgerService.Dashboard(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, -150.0, dashboard.Remaining)
}

func TestLedgerService_BudgetGoalZeroBudget(t *testing.T) {
	userRepo, _, ledgerService := setupLedgerTestDB(t)
	user := createLedgerUser(t, userRepo, 0)

	_, err := ledgerService.AddExpense(user.ID, 100, "Shopping", "", fixedNow)
	assert.NoError(t, err)

	goal, err := ledgerService.BudgetGoal(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, goal.Progress)
}

func TestLedgerService_BudgetGoalProgress(t *testing.T) {
	userRepo, _, ledgerService := setupLedgerTestDB(t)
	user := createLedgerUser(t, userRepo, 1000)

	_, err := ledgerService.AddExpense(user.ID, 250, "Shopping", "", fixedNow)
	assert.NoError(t, err)

	goal, err := ledgerService.BudgetGoal(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, 1000.0, goal.Budget)
	assert.Equal(t, 25.0, goal.Progress)
}

func TestLedgerService_ProjectionsAgreeOnTotal(t *testing.T) {
	userRepo, _, ledgerService := setupLedgerTestDB(t)
	user := createLedgerUser(t, userRepo, 500)

	_, err := ledgerService.AddExpense(user.ID, 30, "Food & Dining", "", fixedNow.AddDate(0, 0, -3))
	assert.NoError(t, err)
	_, err = ledgerService.AddExpense(user.ID, 70, "Food & Dining", "", fixedNow.AddDate(0, 0, -3))
	assert.NoError(t, err)
	_, err = ledgerService.AddExpense(user.ID, 45, "Travel & Transport", "", fixedNow.AddDate(0, 0, -1))
	assert.NoError(t, err)

	byCategory, err := ledgerService.SpendingByCategory(user.ID, PeriodAll)
	assert.NoError(t, err)

	var categoryTotal float64
	for _, amount := range byCategory {
		categoryTotal += amount
	}

	daily, err := ledgerService.SpendingByDay(user.ID, PeriodAll)
	assert.NoError(t, err)

	var dailyTotal float64
	for _, amount := range daily.Data {
		dailyTotal += amount
	}

	assert.Equal(t, categoryTotal, dailyTotal)
	assert.Equal(t, 145.0, dailyTotal)
}

func TestLedgerService_SpendingByDaySorted(t *testing.T) {
	userRepo, _, ledgerService := setupLedgerTestDB(t)
	user := createLedgerUser(t, userRepo, 500)

	// Inserted out of order; labels come back chronologically.
	_, err := ledgerService.AddExpense(user.ID, 20, "Shopping", "", fixedNow)
	assert.NoError(t, err)
	_, err = ledgerService.AddExpense(user.ID, 10, "Shopping", "", fixedNow.AddDate(0, 0, -5))
	assert.NoError(t, err)
	_, err = ledgerService.AddExpense(user.ID, 15, "Shopping", "", fixedNow.AddDate(0, 0, -5))
	assert.NoError(t, err)

	daily, err := ledgerService.SpendingByDay(user.ID, PeriodAll)
	assert.NoError(t, err)
	assert.Equal(t, []string{"2025-06-13", "2025-06-18"}, daily.Labels)
	assert.Equal(t, []float64{25, 20}, daily.Data)
}

func TestLedgerService_Windows(t *testing.T) {
	userRepo, _, ledgerService := setupLedgerTestDB(t)
	user := createLedgerUser(t, userRepo, 500)

	_, err := ledgerService.AddExpense(user.ID, 10, "Shopping", "this week", fixedNow.AddDate(0, 0, -2))
	assert.NoError(t, err)
	_, err = ledgerService.AddExpense(user.ID, 20, "Shopping", "earlier this month", fixedNow.AddDate(0, 0, -10))
	assert.NoError(t, err)
	_, err = ledgerService.AddExpense(user.ID, 40, "Shopping", "last month", fixedNow.AddDate(0, -1, 0))
	assert.NoError(t, err)

	week, err := ledgerService.SpendingByCategory(user.ID, PeriodWeek)
	assert.NoError(t, err)
	assert.Equal(t, 10.0, week["Shopping"])

	month, err := ledgerService.SpendingByCategory(user.ID, PeriodMonth)
	assert.NoError(t, err)
	assert.Equal(t, 30.0, month["Shopping"])

	all, err := ledgerService.SpendingByCategory(user.ID, PeriodAll)
	assert.NoError(t, err)
	assert.Equal(t, 70.0, all["Shopping"])
}

func TestLedgerService_RecentExpenses(t *testing.T) {
	userRepo, _, ledgerService := setupLedgerTestDB(t)
	user := createLedgerUser(t, userRepo, 500)

	for i := 0; i < 12; i++ {
		_, err := ledgerService.AddExpense(user.ID, float64(i+1), "Other", "", fixedNow.AddDate(0, 0, -i))
		assert.NoError(t, err)
	}

	recent, err := ledgerService.RecentExpenses(user.ID, 10)
	assert.NoError(t, err)
	assert.Len(t, recent, 10)
	assert.Equal(t, 1.0, recent[0].Amount)
}
