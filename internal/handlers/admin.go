package handlers

import (
	"net/http"
	"strconv"

	"github.com/budgetbuddy/budgetbuddy/internal/repository"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	userRepo   *repository.UserRepository
	rewardRepo *repository.RewardRepository
}

func NewAdminHandler(userRepo *repository.UserRepository, rewardRepo *repository.RewardRepository) *AdminHandler {
	return &AdminHandler{
		userRepo:   userRepo,
		rewardRepo: rewardRepo,
	}
}

type AdminUserResponse struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	University    string  `json:"university"`
	MonthlyBudget float64 `json:"monthly_budget"`
	RewardPoints  int     `json:"reward_points"`
	ChallengesWon int     `json:"challenges_won"`
	Streak        int     `json:"streak"`
}

type AdjustPointsRequest struct {
	Points int `json:"points" binding:"required"`
}

// ListUsers godoc
// @Summary List all users
// @Description List every registered user (admin only)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} AdminUserResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.userRepo.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	response := make([]AdminUserResponse, len(users))
	for i, u := range users {
		response[i] = AdminUserResponse{
			ID:            u.ID,
			Name:          u.Name,
			Email:         u.Email,
			University:    u.University,
			MonthlyBudget: u.MonthlyBudget,
			RewardPoints:  u.RewardPoints,
			ChallengesWon: u.ChallengesWon,
			Streak:        u.Streak,
		}
	}

	c.JSON(http.StatusOK, response)
}

// ListRewards godoc
// @Summary List all reward payouts
// @Description List every reward entry across users (admin only)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} RewardEntryResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /admin/rewards [get]
func (h *AdminHandler) ListRewards(c *gin.Context) {
	entries, err := h.rewardRepo.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	response := make([]RewardEntryResponse, len(entries))
	for i, e := range entries {
		response[i] = RewardEntryResponse{
			ID:        e.ID,
			Challenge: e.Challenge.Title,
			Points:    e.Points,
			Note:      e.Note,
			EarnedAt:  e.CreatedAt,
		}
	}

	c.JSON(http.StatusOK, response)
}

// AdjustPoints godoc
// @Summary Set a user's reward points
// @Description Overwrite a user's reward point balance (admin only)
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body AdjustPointsRequest true "New point balance"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/points/{id} [put]
func (h *AdminHandler) AdjustPoints(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user id"})
		return
	}

	var req AdjustPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	user, err := h.userRepo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "user not found"})
		return
	}

	user.RewardPoints = req.Points
	if err := h.userRepo.Update(user); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "points updated"})
}
