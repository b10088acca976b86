package api

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/VamsidharReddy01/MyRestaurant/internal/service"
)

// SessionRequired checks the already signature-verified token against the
// redis session store, so revoked tokens stop working before their JWT
// expiry. Runs after the echo-jwt middleware.
func SessionRequired(userService service.UserService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return c.JSON(401, map[string]string{"error": "unauthorized"})
			}

			username, err := userService.ValidateToken(c.Request().Context(), token.Raw)
			if err != nil {
				return c.JSON(401, map[string]string{"error": "unauthorized"})
			}

			c.Set("username", username)
			return next(c)
		}
	}
}
