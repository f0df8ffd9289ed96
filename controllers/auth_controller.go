package controllers

import (
	"net/http"

	"canteen-api/models"
	"canteen-api/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// RequestPin godoc
// @Summary Request a verification PIN
// @Description Issues a six-digit PIN to the student's email, creating the user record if needed
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.RequestPinRequest true "PIN Request"
// @Success 200 {object} models.PinIssuedResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/request-pin [post]
func (ctrl *AuthController) RequestPin(c *gin.Context) {
	var req models.RequestPinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Missing required fields"})
		return
	}

	resp, err := ctrl.auth.RequestPin(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// VerifyPin godoc
// @Summary Verify a PIN
// @Description Consumes a previously issued PIN and returns a bearer token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.VerifyPinRequest true "PIN Verification"
// @Success 200 {object} models.VerifiedResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /auth/verify-pin [post]
func (ctrl *AuthController) VerifyPin(c *gin.Context) {
	var req models.VerifyPinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Missing email or PIN"})
		return
	}

	resp, err := ctrl.auth.VerifyPin(c.Request.Context(), req.Email, req.Pin)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Me godoc
// @Summary Current user
// @Description Returns the record behind the presented bearer token
// @Tags Authentication
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/me [get]
func (ctrl *AuthController) Me(c *gin.Context) {
	userID := c.GetInt("user_id")

	user, err := ctrl.auth.Me(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
