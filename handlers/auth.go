package handlers

import (
	"net/http"

	"meditrip/utils"

	"github.com/gin-gonic/gin"
)

type signUpRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"`
}

// SignUpHandler registers a new patient account.
// POST /api/auth/signup
func (h *HandlerBundle) SignUpHandler(c *gin.Context) {
	var req signUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	result, err := h.UserSvc.SignUp(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "token": result.Token, "user": result.User})
}

type signInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SignInHandler authenticates a user and issues a JWT.
// POST /api/auth/signin
func (h *HandlerBundle) SignInHandler(c *gin.Context) {
	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	result, err := h.UserSvc.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "token": result.Token, "user": result.User})
}

// GetProfileHandler returns the authenticated user's profile.
// GET /api/auth/me
func (h *HandlerBundle) GetProfileHandler(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		utils.JSONError(c, http.StatusUnauthorized, "Authentication required", "")
		return
	}

	u, err := h.UserSvc.GetByID(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": u})
}
