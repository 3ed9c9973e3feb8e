package handlers

import (
	"net/http"

	"github.com/budgetbuddy/budgetbuddy/internal/middleware"
	"github.com/budgetbuddy/budgetbuddy/internal/services"
	"github.com/gin-gonic/gin"
)

type BudgetHandler struct {
	accountService *services.AccountService
	ledgerService  *services.LedgerService
}

func NewBudgetHandler(accountService *services.AccountService, ledgerService *services.LedgerService) *BudgetHandler {
	return &BudgetHandler{
		accountService: accountService,
		ledgerService:  ledgerService,
	}
}

type UpdateBudgetRequest struct {
	Budget float64 `json:"budget" binding:"required"`
}

// Goal godoc
// @Summary Budget goal progress
// @Description Month-to-date spending as a percentage of the monthly budget
// @Tags budget
// @Produce json
// @Security BearerAuth
// @Success 200 {object} services.BudgetGoal
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /budget/goal [get]
func (h *BudgetHandler) Goal(c *gin.Context) {
	userID := middleware.GetUserID(c)

	goal, err := h.ledgerService.BudgetGoal(userID)
	if err != nil {
		if err == services.ErrUserNotFound {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, goal)
}

// Update godoc
// @Summary Update monthly budget
// @Description Set the authenticated user's monthly budget
// @Tags budget
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateBudgetRequest true "New budget"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /budget [put]
func (h *BudgetHandler) Update(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	if _, err := h.accountService.UpdateBudget(userID, req.Budget); err != nil {
		if err == services.ErrUserNotFound {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "budget updated"})
}
