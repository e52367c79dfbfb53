package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"beacon/internal/models/request_models"
	"beacon/internal/models/response_models"
	"beacon/internal/services"
	"beacon/pkg/middleware"
	"beacon/pkg/utils"
)

type AdminController struct {
	accountService     services.AccountServiceInterface
	reportService      services.ReportServiceInterface
	rewardService      services.RewardServiceInterface
	leaderboardService services.LeaderboardServiceInterface
}

func NewAdminController(
	accountService services.AccountServiceInterface,
	reportService services.ReportServiceInterface,
	rewardService services.RewardServiceInterface,
	leaderboardService services.LeaderboardServiceInterface,
) *AdminController {
	return &AdminController{
		accountService:     accountService,
		reportService:      reportService,
		rewardService:      rewardService,
		leaderboardService: leaderboardService,
	}
}

// ListResponders returns pending responder applications.
func (a *AdminController) ListResponders(c *gin.Context) {
	responders, err := a.accountService.ListPendingResponders(c.Request.Context(), middleware.CurrentAccount(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"responder": response_models.ToUserResponses(responders)})
}

func (a *AdminController) ApproveResponder(c *gin.Context) {
	a.decideResponder(c, true)
}

func (a *AdminController) DeclineResponder(c *gin.Context) {
	a.decideResponder(c, false)
}

func (a *AdminController) decideResponder(c *gin.Context, approve bool) {
	responderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid responder ID")
		return
	}

	if err := a.accountService.DecideResponder(c.Request.Context(), middleware.CurrentAccount(c), responderID, approve); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	message := "Responder application declined"
	if approve {
		message = "Responder approved"
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// ListEmergencies returns all reports for the admin dashboard.
func (a *AdminController) ListEmergencies(c *gin.Context) {
	reports, err := a.reportService.ListForRole(c.Request.Context(), middleware.CurrentAccount(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"emergencies": response_models.ToReportResponses(reports)})
}

// Leaderboard godoc
// @Summary Ranked reward point totals per user
// @Tags Admin
// @Produce json
// @Param limit query int false "Maximum entries" default(0)
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /admin/leaderboard [get]
func (a *AdminController) Leaderboard(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	entries, err := a.leaderboardService.TopUsers(c.Request.Context(), middleware.CurrentAccount(c), limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": entries})
}

// ListClaims returns every reward claim for admin processing.
func (a *AdminController) ListClaims(c *gin.Context) {
	claims, err := a.rewardService.ListClaims(c.Request.Context(), middleware.CurrentAccount(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"claims": response_models.ToClaimResponses(claims)})
}

// ProcessClaim settles a pending reward claim.
func (a *AdminController) ProcessClaim(c *gin.Context) {
	claimID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid claim ID")
		return
	}

	var req request_models.ProcessClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	claim, err := a.rewardService.ProcessClaim(c.Request.Context(), middleware.CurrentAccount(c), claimID, req.Status)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"claim": response_models.ToClaimResponse(claim)})
}
