package handlers

import (
	"math/rand"
	"net/http"

	"github.com/budgetbuddy/budgetbuddy/internal/catalog"
	"github.com/gin-gonic/gin"
)

type TipsHandler struct{}

func NewTipsHandler() *TipsHandler {
	return &TipsHandler{}
}

type TipResponse struct {
	Tip string `json:"tip"`
}

// Tip godoc
// @Summary Random saving tip
// @Description Return one tip picked at random from the fixed tip list
// @Tags tips
// @Produce json
// @Security BearerAuth
// @Success 200 {object} TipResponse
// @Router /tips [get]
func (h *TipsHandler) Tip(c *gin.Context) {
	tip := catalog.Tips[rand.Intn(len(catalog.Tips))]
	c.JSON(http.StatusOK, TipResponse{Tip: tip})
}
