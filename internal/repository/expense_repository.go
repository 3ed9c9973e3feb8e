package repository

import (
	"time"

	"github.com/budgetbuddy/budgetbuddy/internal/models"
	"gorm.io/gorm"
)

type ExpenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

func (r *ExpenseRepository) Create(expense *models.Expense) error {
	return r.db.Create(expense).Error
}

// FindByUserSince returns the user's expenses with date >= since. A zero
// since means the full history.
func (r *ExpenseRepository) FindByUserSince(userID uint, since time.Time) ([]models.Expense, error) {
	var expenses []models.Expense
	db := r.db.Where("user_id = ?", userID)
	if !since.IsZero() {
		db = db.Where("date >= ?", since)
	}
	err := db.Find(&expenses).Error
	return expenses, err
}

func (r *ExpenseRepository) FindRecent(userID uint, limit int) ([]models.Expense, error) {
	var expenses []models.Expense
	err := r.db.Where("user_id = ?", userID).
		Order("date DESC").
		Limit(limit).
		Find(&expenses).Error
	return expenses, err
}

func (r *ExpenseRepository) FindAllByUser(userID uint) ([]models.Expense, error) {
	var expenses []models.Expense
	err := r.db.Where("user_id = ?", userID).
		Order("date ASC").
		Find(&expenses).Error
	return expenses, err
}
