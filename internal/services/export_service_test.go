package services

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/budgetbuddy/budgetbuddy/internal/database"
	"github.com/budgetbuddy/budgetbuddy/internal/models"
	"github.com/budgetbuddy/budgetbuddy/internal/repository"
	"github.com/stretchr/testify/assert"
)

func setupExportTestDB(t *testing.T) (*repository.UserRepository, *repository.ExpenseRepository, *ExportService) {
	db, err := database.Connect(":memory:")
	assert.NoError(t, err)

	err = database.Migrate(db)
	assert.NoError(t, err)

	userRepo := repository.NewUserRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	exportService := NewExportService(userRepo, expenseRepo, "test-signing-key")

	return userRepo, expenseRepo, exportService
}

func TestExportService_ExpenseHistoryOrdered(t *testing.T) {
	userRepo, expenseRepo, exportService := setupExportTestDB(t)

	user := &models.User{Name: "Alice", Email: "alice@uni.edu", University: "U", PasswordHash: "x", MonthlyBudget: 5000}
	assert.NoError(t, userRepo.Create(user))

	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	later := models.Expense{UserID: user.ID, Amount: 20, Category: "Shopping", Date: base.AddDate(0, 0, 5)}
	earlier := models.Expense{UserID: user.ID, Amount: 10, Category: "Other", Description: "pens", Date: base}
	assert.NoError(t, expenseRepo.Create(&later))
	assert.NoError(t, expenseRepo.Create(&earlier))

	rows, err := exportService.ExpenseHistory(user.ID)
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, 10.0, rows[0].Amount)
	assert.Equal(t, "pens", rows[0].Description)
	assert.Equal(t, 20.0, rows[1].Amount)
}

func TestExportService_WriteCSV(t *testing.T) {
	_, _, exportService := setupExportTestDB(t)

	rows := []ExpenseRow{
		{Date: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), Amount: 12.5, Category: "Food & Dining", Description: "lunch"},
		{Date: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), Amount: 3, Category: "Other"},
	}

	var buf bytes.Buffer
	err := exportService.WriteCSV(&buf, rows)
	assert.NoError(t, err)

	records, err := csv.NewReader(&buf).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, records, 3)
	assert.Equal(t, []string{"Date", "Amount", "Category", "Description"}, records[0])
	assert.Equal(t, []string{"2025-06-01T00:00:00Z", "12.5", "Food & Dining", "lunch"}, records[1])
	assert.Equal(t, []string{"2025-06-02T00:00:00Z", "3", "Other", ""}, records[2])
}

func TestExportService_SignedExportRoundTrip(t *testing.T) {
	userRepo, expenseRepo, exportService := setupExportTestDB(t)

	user := &models.User{Name: "Alice", Email: "alice@uni.edu", University: "U", PasswordHash: "x", MonthlyBudget: 5000}
	assert.NoError(t, userRepo.Create(user))

	expense := models.Expense{UserID: user.ID, Amount: 42, Category: "Shopping", Date: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)}
	assert.NoError(t, expenseRepo.Create(&expense))

	export, err := exportService.SignedExport(user.ID)
	assert.NoError(t, err)
	assert.NotEmpty(t, export.Signature)
	assert.Len(t, export.Expenses, 1)

	valid, err := exportService.VerifyExport(export)
	assert.NoError(t, err)
	assert.True(t, valid)

	// Tampering with the payload invalidates the signature.
	export.Expenses[0].Amount = 1
	valid, err = exportService.VerifyExport(export)
	assert.NoError(t, err)
	assert.False(t, valid)
}

func TestExportService_SignedExportUnknownUser(t *testing.T) {
	_, _, exportService := setupExportTestDB(t)

	_, err := exportService.SignedExport(9999)
	assert.Equal(t, ErrUserNotFound, err)
}

func TestExportService_VerifyMissingSignature(t *testing.T) {
	_, _, exportService := setupExportTestDB(t)

	_, err := exportService.VerifyExport(&ExpenseExport{})
	assert.Equal(t, ErrInvalidExport, err)
}
