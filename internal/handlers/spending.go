package handlers

import (
	"net/http"

	"github.com/budgetbuddy/budgetbuddy/internal/middleware"
	"github.com/budgetbuddy/budgetbuddy/internal/services"
	"github.com/gin-gonic/gin"
)

type SpendingHandler struct {
	ledgerService *services.LedgerService
}

func NewSpendingHandler(ledgerService *services.LedgerService) *SpendingHandler {
	return &SpendingHandler{ledgerService: ledgerService}
}

type CategorySpendingResponse struct {
	ByCategory map[string]float64 `json:"by_category"`
}

// Spending godoc
// @Summary Spending overview
// @Description Aggregate spending over a window, by category or by day
// @Tags spending
// @Produce json
// @Security BearerAuth
// @Param period query string false "week, month or all" default(month)
// @Param type query string false "category or line" default(category)
// @Success 200 {object} CategorySpendingResponse
// @Failure 401 {object} ErrorResponse
// @Router /spending [get]
func (h *SpendingHandler) Spending(c *gin.Context) {
	userID := middleware.GetUserID(c)
	period := c.DefaultQuery("period", services.PeriodMonth)
	chartType := c.DefaultQuery("type", "category")

	if chartType == "line" {
		daily, err := h.ledgerService.SpendingByDay(userID, period)
		if err != nil {
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, daily)
		return
	}

	byCategory, err := h.ledgerService.SpendingByCategory(userID, period)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, CategorySpendingResponse{ByCategory: byCategory})
}

// Dashboard godoc
// @Summary Dashboard summary
// @Description Month-to-date spending, remaining budget and gamification counters
// @Tags spending
// @Produce json
// @Security BearerAuth
// @Success 200 {object} services.Dashboard
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /dashboard [get]
func (h *SpendingHandler) Dashboard(c *gin.Context) {
	userID := middleware.GetUserID(c)

	dashboard, err := h.ledgerService.Dashboard(userID)
	if err != nil {
		if err == services.ErrUserNotFound {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dashboard)
}
