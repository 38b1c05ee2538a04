package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopease/shopease/apperrors"
	"github.com/shopease/shopease/models"
	"github.com/shopease/shopease/services"
)

// AuthService is the contract the controller needs from the auth service.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*models.User, *apperrors.Error)
	Login(ctx context.Context, email, password string) (*services.LoginResult, *apperrors.Error)
}

type AuthController struct {
	auth AuthService
}

func NewAuthController(auth AuthService) *AuthController {
	return &AuthController{auth: auth}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles POST /api/auth/register
func (ac *AuthController) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	user, appErr := ac.auth.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if appErr != nil {
		renderError(c, appErr)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// Login handles POST /api/auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	result, appErr := ac.auth.Login(c.Request.Context(), req.Email, req.Password)
	if appErr != nil {
		renderError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, result)
}
