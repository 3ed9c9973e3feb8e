package handlers

import (
	"net/http"

	"github.com/budgetbuddy/budgetbuddy/internal/middleware"
	"github.com/budgetbuddy/budgetbuddy/internal/services"
	"github.com/gin-gonic/gin"
)

type LeaderboardHandler struct {
	leaderboardService *services.LeaderboardService
}

func NewLeaderboardHandler(leaderboardService *services.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardService: leaderboardService}
}

// Leaderboard godoc
// @Summary Leaderboard
// @Description Top users by reward points with the requesting user appended
// @Tags leaderboard
// @Produce json
// @Security BearerAuth
// @Success 200 {array} services.LeaderboardEntry
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /leaderboard [get]
func (h *LeaderboardHandler) Leaderboard(c *gin.Context) {
	userID := middleware.GetUserID(c)

	entries, err := h.leaderboardService.WithSelf(userID)
	if err != nil {
		if err == services.ErrUserNotFound {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, entries)
}
