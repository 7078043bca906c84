package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/lmsdash/internal/app/services"
	"github.com/yigit/lmsdash/internal/middleware"
)

// UserController serves the current user's profile
type UserController struct {
	userService services.UserService
	userID      string
}

// NewUserController creates a new UserController acting for userID
func NewUserController(userService services.UserService, userID string) *UserController {
	return &UserController{
		userService: userService,
		userID:      userID,
	}
}

// GetCurrentUser returns the dashboard user
// @Summary Get current user
// @Tags user
// @Produce json
// @Success 200 {object} models.User
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to fetch user"
// @Router /user [get]
func (c *UserController) GetCurrentUser(ctx *gin.Context) {
	user, err := c.userService.GetUserByID(ctx, c.userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to fetch user")
		return
	}

	ctx.JSON(http.StatusOK, user)
}
