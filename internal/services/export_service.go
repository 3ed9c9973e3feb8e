package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/csv"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"strconv"
	"time"

	"github.com/budgetbuddy/budgetbuddy/internal/repository"
)

var ErrInvalidExport = errors.New("invalid export data")

// ExpenseRow is one line of a user's exported expense history, ordered by
// date ascending.
type ExpenseRow struct {
	Date        time.Time `json:"date"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
}

// ExpenseExport is the signed JSON export document. The signature is an
// HMAC-SHA256 over the document with the signature field blanked.
type ExpenseExport struct {
	UserID     uint         `json:"user_id"`
	Name       string       `json:"name"`
	Email      string       `json:"email"`
	Expenses   []ExpenseRow `json:"expenses"`
	ExportedAt time.Time    `json:"exported_at"`
	Signature  string       `json:"signature"`
}

type ExportService struct {
	userRepo    *repository.UserRepository
	expenseRepo *repository.ExpenseRepository
	signingKey  string
}

func NewExportService(userRepo *repository.UserRepository, expenseRepo *repository.ExpenseRepository, signingKey string) *ExportService {
	return &ExportService{
		userRepo:    userRepo,
		expenseRepo: expenseRepo,
		signingKey:  signingKey,
	}
}

func (s *ExportService) ExpenseHistory(userID uint) ([]ExpenseRow, error) {
	expenses, err := s.expenseRepo.FindAllByUser(userID)
	if err != nil {
		return nil, err
	}

	rows := make([]ExpenseRow, len(expenses))
	for i, e := range expenses {
		rows[i] = ExpenseRow{
			Date:        e.Date,
			Amount:      e.Amount,
			Category:    e.Category,
			Description: e.Description,
		}
	}
	return rows, nil
}

// WriteCSV renders the rows as a CSV document with a fixed header.
func (s *ExportService) WriteCSV(w io.Writer, rows []ExpenseRow) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"Date", "Amount", "Category", "Description"}); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			row.Date.Format(time.RFC3339),
			strconv.FormatFloat(row.Amount, 'f', -1, 64),
			row.Category,
			row.Description,
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// SignedExport builds a tamper-evident JSON export of the user's full
// expense history.
func (s *ExportService) SignedExport(userID uint) (*ExpenseExport, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	rows, err := s.ExpenseHistory(userID)
	if err != nil {
		return nil, err
	}

	export := &ExpenseExport{
		UserID:     user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Expenses:   rows,
		ExportedAt: time.Now().UTC(),
	}

	signature, err := s.signExport(export)
	if err != nil {
		return nil, err
	}
	export.Signature = signature

	return export, nil
}

// VerifyExport checks the embedded signature of an export document.
func (s *ExportService) VerifyExport(export *ExpenseExport) (bool, error) {
	if export.Signature == "" {
		return false, ErrInvalidExport
	}

	provided := export.Signature

	copy := *export
	copy.Signature = ""

	computed, err := s.signExport(&copy)
	if err != nil {
		return false, err
	}

	return hmac.Equal([]byte(computed), []byte(provided)), nil
}

func (s *ExportService) signExport(export *ExpenseExport) (string, error) {
	copy := *export
	copy.Signature = ""

	data, err := json.Marshal(copy)
	if err != nil {
		return "", err
	}

	h := hmac.New(sha256.New, []byte(s.signingKey))
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil)), nil
}
