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

type AuthController struct {
	accountService services.AccountServiceInterface
}

func NewAuthController(accountService services.AccountServiceInterface) *AuthController {
	return &AuthController{
		accountService: accountService,
	}
}

// Register godoc
// @Summary Register a new account
// @Description Reporters get an immediate session token; responders enter the pending-approval queue and get none.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.RegisterRequest true "Registration payload"
// @Success 201 {object} map[string]interface{}
// @Failure 409 {object} utils.ErrorResponse
// @Router /register [post]
func (a *AuthController) Register(c *gin.Context) {
	var req request_models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	result, err := a.accountService.Register(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if result.PendingApproval {
		c.JSON(http.StatusCreated, gin.H{
			"pending_approval": true,
			"message":          "Your responder application is awaiting admin approval",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token": result.Token,
		"user":  response_models.ToUserResponse(result.Account),
	})
}

// Login godoc
// @Summary Authenticate and issue a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Router /login [post]
func (a *AuthController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	token, account, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  response_models.ToUserResponse(account),
	})
}

// Logout revokes the current token. The client discards its credentials
// whatever we answer, so this always reports success.
func (a *AuthController) Logout(c *gin.Context) {
	if claims := middleware.CurrentClaims(c); claims != nil {
		a.accountService.Logout(c.Request.Context(), claims)
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// CurrentUser godoc
// @Summary Return the authenticated account
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /user [get]
func (a *AuthController) CurrentUser(c *gin.Context) {
	account := middleware.CurrentAccount(c)
	c.JSON(http.StatusOK, gin.H{"user": response_models.ToUserResponse(account)})
}

// UpdateProfile godoc
// @Summary Update the authenticated account's profile
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.UpdateProfileRequest true "Profile payload"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /profile/update [put]
func (a *AuthController) UpdateProfile(c *gin.Context) {
	var req request_models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	account := middleware.CurrentAccount(c)
	updated, err := a.accountService.UpdateProfile(c.Request.Context(), account.ID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": response_models.ToUserResponse(updated)})
}
