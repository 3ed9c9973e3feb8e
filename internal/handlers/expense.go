package handlers

import (
	"bytes"
	"net/http"
	"time"

	"github.com/budgetbuddy/budgetbuddy/internal/middleware"
	"github.com/budgetbuddy/budgetbuddy/internal/services"
	"github.com/gin-gonic/gin"
)

const recentExpenseLimit = 10

type ExpenseHandler struct {
	ledgerService *services.LedgerService
	exportService *services.ExportService
}

func NewExpenseHandler(ledgerService *services.LedgerService, exportService *services.ExportService) *ExpenseHandler {
	return &ExpenseHandler{
		ledgerService: ledgerService,
		exportService: exportService,
	}
}

type AddExpenseRequest struct {
	Amount      float64    `json:"amount" binding:"required"`
	Category    string     `json:"category" binding:"required"`
	Description string     `json:"description"`
	Date        *time.Time `json:"date"`
}

type ExpenseResponse struct {
	ID          uint      `json:"id"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
}

// AddExpense godoc
// @Summary Record an expense
// @Description Record an expense in one of the fixed categories
// @Tags expenses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AddExpenseRequest true "Expense details"
// @Success 200 {object} ExpenseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /expenses [post]
func (h *ExpenseHandler) AddExpense(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req AddExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	var date time.Time
	if req.Date != nil {
		date = *req.Date
	}

	expense, err := h.ledgerService.AddExpense(userID, req.Amount, req.Category, req.Description, date)
	if err != nil {
		switch err {
		case services.ErrInvalidCategory:
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid category"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, ExpenseResponse{
		ID:          expense.ID,
		Amount:      expense.Amount,
		Category:    expense.Category,
		Description: expense.Description,
		Date:        expense.Date,
	})
}

// RecentExpenses godoc
// @Summary List recent expenses
// @Description List the authenticated user's ten most recent expenses
// @Tags expenses
// @Produce json
// @Security BearerAuth
// @Success 200 {array} ExpenseResponse
// @Failure 401 {object} ErrorResponse
// @Router /expenses/recent [get]
func (h *ExpenseHandler) RecentExpenses(c *gin.Context) {
	userID := middleware.GetUserID(c)

	expenses, err := h.ledgerService.RecentExpenses(userID, recentExpenseLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	response := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		response[i] = ExpenseResponse{
			ID:          e.ID,
			Amount:      e.Amount,
			Category:    e.Category,
			Description: e.Description,
			Date:        e.Date,
		}
	}

	c.JSON(http.StatusOK, response)
}

// ExportCSV godoc
// @Summary Export expense history as CSV
// @Description Download the full expense history as a CSV attachment
// @Tags expenses
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {string} string "CSV document"
// @Failure 401 {object} ErrorResponse
// @Router /expenses/export [get]
func (h *ExpenseHandler) ExportCSV(c *gin.Context) {
	userID := middleware.GetUserID(c)

	rows, err := h.exportService.ExpenseHistory(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	var buf bytes.Buffer
	if err := h.exportService.WriteCSV(&buf, rows); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="expenses.csv"`)
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

// SignedExport godoc
// @Summary Export expense history with signature
// @Description Export the full expense history as a signed JSON document
// @Tags expenses
// @Produce json
// @Security BearerAuth
// @Success 200 {object} services.ExpenseExport
// @Failure 401 {object} ErrorResponse
// @Router /expenses/export/signed [get]
func (h *ExpenseHandler) SignedExport(c *gin.Context) {
	userID := middleware.GetUserID(c)

	export, err := h.exportService.SignedExport(userID)
	if err != nil {
		if err == services.ErrUserNotFound {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, export)
}

type VerifyExportResponse struct {
	Valid bool `json:"valid"`
}

// VerifyExport godoc
// @Summary Verify an export signature
// @Description Verify the HMAC signature of an exported expense history
// @Tags expenses
// @Accept json
// @Produce json
// @Param request body services.ExpenseExport true "Export document"
// @Success 200 {object} VerifyExportResponse
// @Failure 400 {object} ErrorResponse
// @Router /expenses/export/verify [post]
func (h *ExpenseHandler) VerifyExport(c *gin.Context) {
	var export services.ExpenseExport
	if err := c.ShouldBindJSON(&export); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	valid, err := h.exportService.VerifyExport(&export)
	if err != nil {
		if err == services.ErrInvalidExport {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid export data"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, VerifyExportResponse{Valid: valid})
}
