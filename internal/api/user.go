package api

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/VamsidharReddy01/MyRestaurant/internal/service"
)

type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new instance of UserHandler
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Login exchanges staff credentials for a token --> POST /staff/login/
func (h *UserHandler) Login(c echo.Context) error {
	login := struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}{}
	if err := c.Bind(&login); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	if login.Username == "" || login.Password == "" {
		return c.JSON(400, map[string]string{"error": "Username and password are required"})
	}

	token, err := h.userService.Login(c.Request().Context(), login.Username, login.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			return c.JSON(401, map[string]string{"error": err.Error()})
		case errors.Is(err, service.ErrNotStaff):
			return c.JSON(403, map[string]string{"error": err.Error()})
		}
		return c.JSON(500, map[string]string{"error": err.Error()})
	}

	return c.JSON(200, map[string]string{
		"token":    token,
		"username": login.Username,
	})
}
