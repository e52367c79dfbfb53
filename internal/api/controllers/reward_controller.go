package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"beacon/internal/models/request_models"
	"beacon/internal/models/response_models"
	"beacon/internal/services"
	"beacon/pkg/middleware"
	"beacon/pkg/utils"
)

type RewardController struct {
	rewardService services.RewardServiceInterface
}

func NewRewardController(rewardService services.RewardServiceInterface) *RewardController {
	return &RewardController{
		rewardService: rewardService,
	}
}

// ListMine returns the authenticated user's reward ledger entries.
func (r *RewardController) ListMine(c *gin.Context) {
	account := middleware.CurrentAccount(c)
	rewards, err := r.rewardService.ListRewards(c.Request.Context(), account.ID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": response_models.ToRewardResponses(rewards)})
}

// Claim godoc
// @Summary Request redemption of accrued points
// @Tags Rewards
// @Accept json
// @Produce json
// @Param request body request_models.ClaimRewardRequest true "Claim payload"
// @Success 201 {object} map[string]interface{}
// @Failure 422 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /claim-reward [post]
func (r *RewardController) Claim(c *gin.Context) {
	var req request_models.ClaimRewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	claim, err := r.rewardService.RequestClaim(c.Request.Context(), middleware.CurrentAccount(c), req.Points)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"claim": response_models.ToClaimResponse(claim)})
}
