package api

import (
	"time"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/VamsidharReddy01/MyRestaurant/internal/service"
)

// RegisterRoutes wires all endpoints onto e. Staff routes sit behind the JWT
// middleware (the frontend sends "Authorization: Token <jwt>") plus the redis
// session check.
func RegisterRoutes(e *echo.Echo, menuHandler *MenuHandler, orderHandler *OrderHandler, userHandler *UserHandler, userService service.UserService, jwtSecret string) {
	// Public
	e.GET("/menu/", menuHandler.GetMenu)
	e.GET("/tables/", menuHandler.GetTables)
	e.POST("/order/", orderHandler.CreateOrder)
	e.POST("/staff/login/", userHandler.Login)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]interface{}{
			"status":  "ok",
			"service": "restaurant-backend",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	// Staff only
	staff := e.Group("")
	staff.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(jwtSecret),
		TokenLookup: "header:Authorization:Token ",
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(401, map[string]string{"error": "unauthorized"})
		},
	}))
	staff.Use(SessionRequired(userService))

	staff.GET("/orders/", orderHandler.ListOrders)
	staff.PATCH("/order/:id/status/", orderHandler.UpdateOrderStatus)
}
