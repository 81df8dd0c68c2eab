package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"inkwell/helper"
	"inkwell/models"
	"inkwell/services"
)

type AuthHandler struct {
	authService services.AuthService
	userService services.UserService
	httpHelper  *helper.HTTPHelper
}

func NewAuthHandler(authService services.AuthService, userService services.UserService, httpHelper *helper.HTTPHelper) *AuthHandler {
	return &AuthHandler{authService: authService, userService: userService, httpHelper: httpHelper}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.httpHelper.SendBadRequest(c, err.Error())
		return
	}

	auth, err := h.authService.Login(req)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			h.httpHelper.SendUnauthorizedError(c, "Something went wrong with your login! Please try again.")
			return
		}
		h.httpHelper.SendInternalServerError(c, "Something went wrong! Please try again.")
		return
	}

	h.httpHelper.SendSuccess(c, "Welcome back!", auth)
}

func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, _ := c.Get("user_id")

	user, err := h.authService.GetUserByID(userID.(uint))
	if err != nil {
		h.httpHelper.SendInternalServerError(c, "Something went wrong! Please try again.")
		return
	}
	if user == nil {
		h.httpHelper.SendNotFoundError(c, "Sorry, we can't find what you're looking for...")
		return
	}

	h.httpHelper.SendSuccess(c, "", user)
}

// GetUsers backs the admin users table.
func (h *AuthHandler) GetUsers(c *gin.Context) {
	users, err := h.userService.GetAllUsersForAdmin()
	if err != nil {
		h.httpHelper.SendInternalServerError(c, "Something went wrong! Please try again.")
		return
	}

	h.httpHelper.SendSuccess(c, "", users)
}
