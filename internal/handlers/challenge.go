package handlers

import (
	"net/http"
	"time"

	"github.com/budgetbuddy/budgetbuddy/internal/middleware"
	"github.com/budgetbuddy/budgetbuddy/internal/services"
	"github.com/gin-gonic/gin"
)

type ChallengeHandler struct {
	challengeService *services.ChallengeService
}

func NewChallengeHandler(challengeService *services.ChallengeService) *ChallengeHandler {
	return &ChallengeHandler{challengeService: challengeService}
}

type JoinChallengeRequest struct {
	ChallengeID uint `json:"challenge_id" binding:"required"`
}

type UpdateProgressRequest struct {
	UserChallengeID uint     `json:"user_challenge_id" binding:"required"`
	Progress        *float64 `json:"progress" binding:"required"`
}

type ChallengeResponse struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Points      int    `json:"points"`
}

type UserChallengeResponse struct {
	ID          uint    `json:"id"`
	ChallengeID uint    `json:"challenge_id"`
	Status      string  `json:"status"`
	Progress    float64 `json:"progress"`
}

type RewardEntryResponse struct {
	ID        uint      `json:"id"`
	Challenge string    `json:"challenge"`
	Points    int       `json:"points"`
	Note      string    `json:"note"`
	EarnedAt  time.Time `json:"earned_at"`
}

// Available godoc
// @Summary List catalog challenges
// @Description List all challenges, optionally filtered by category
// @Tags challenges
// @Produce json
// @Security BearerAuth
// @Param category query string false "category filter" default(all)
// @Success 200 {array} ChallengeResponse
// @Failure 401 {object} ErrorResponse
// @Router /challenges/available [get]
func (h *ChallengeHandler) Available(c *gin.Context) {
	category := c.DefaultQuery("category", "all")

	challenges, err := h.challengeService.AvailableChallenges(category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	response := make([]ChallengeResponse, len(challenges))
	for i, ch := range challenges {
		response[i] = ChallengeResponse{
			ID:          ch.ID,
			Title:       ch.Title,
			Description: ch.Description,
			Category:    ch.Category,
			Points:      ch.Points,
		}
	}

	c.JSON(http.StatusOK, response)
}

// Join godoc
// @Summary Join a challenge
// @Description Enroll the authenticated user in a catalog challenge
// @Tags challenges
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body JoinChallengeRequest true "Challenge to join"
// @Success 200 {object} UserChallengeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /challenges/join [post]
func (h *ChallengeHandler) Join(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req JoinChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	uc, err := h.challengeService.Join(userID, req.ChallengeID)
	if err != nil {
		switch err {
		case services.ErrChallengeNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "challenge not found"})
		case services.ErrAlreadyJoined:
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "already joined"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, UserChallengeResponse{
		ID:          uc.ID,
		ChallengeID: uc.ChallengeID,
		Status:      uc.Status,
		Progress:    uc.Progress,
	})
}

// Active godoc
// @Summary List active challenges
// @Description List the authenticated user's in-progress challenge attempts
// @Tags challenges
// @Produce json
// @Security BearerAuth
// @Success 200 {array} UserChallengeResponse
// @Failure 401 {object} ErrorResponse
// @Router /challenges/active [get]
func (h *ChallengeHandler) Active(c *gin.Context) {
	userID := middleware.GetUserID(c)

	ucs, err := h.challengeService.ListActive(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	response := make([]UserChallengeResponse, len(ucs))
	for i, uc := range ucs {
		response[i] = UserChallengeResponse{
			ID:          uc.ID,
			ChallengeID: uc.ChallengeID,
			Status:      uc.Status,
			Progress:    uc.Progress,
		}
	}

	c.JSON(http.StatusOK, response)
}

// UpdateProgress godoc
// @Summary Update challenge progress
// @Description Set progress on an attempt; reaching 100 pays out the reward once
// @Tags challenges
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateProgressRequest true "Progress update"
// @Success 200 {object} UserChallengeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /challenges/update [post]
func (h *ChallengeHandler) UpdateProgress(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req UpdateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	uc, err := h.challengeService.UpdateProgress(userID, req.UserChallengeID, *req.Progress)
	if err != nil {
		switch err {
		case services.ErrUserChallengeNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, UserChallengeResponse{
		ID:          uc.ID,
		ChallengeID: uc.ChallengeID,
		Status:      uc.Status,
		Progress:    uc.Progress,
	})
}

// RewardHistory godoc
// @Summary Reward history
// @Description List the authenticated user's reward payouts, newest first
// @Tags challenges
// @Produce json
// @Security BearerAuth
// @Success 200 {array} RewardEntryResponse
// @Failure 401 {object} ErrorResponse
// @Router /rewards/history [get]
func (h *ChallengeHandler) RewardHistory(c *gin.Context) {
	userID := middleware.GetUserID(c)

	entries, err := h.challengeService.RewardHistory(userID)
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
