package api

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/VamsidharReddy01/MyRestaurant/internal/service"
)

type MenuHandler struct {
	menuService service.MenuService
}

// NewMenuHandler creates a new instance of MenuHandler
func NewMenuHandler(menuService service.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// GetMenu returns the full nested menu --> GET /menu/
func (h *MenuHandler) GetMenu(c echo.Context) error {
	menu, err := h.menuService.GetMenu(c.Request().Context())
	if err != nil {
		if errors.Is(err, service.ErrNoRestaurant) {
			return c.JSON(404, map[string]string{"error": err.Error()})
		}
		return c.JSON(500, map[string]string{"error": err.Error()})
	}

	return c.JSON(200, menu)
}

// GetTables lists the restaurant's tables --> GET /tables/
func (h *MenuHandler) GetTables(c echo.Context) error {
	tables, err := h.menuService.GetTables(c.Request().Context())
	if err != nil {
		if errors.Is(err, service.ErrNoRestaurant) {
			return c.JSON(404, map[string]string{"error": err.Error()})
		}
		return c.JSON(500, map[string]string{"error": err.Error()})
	}

	resp := make([]map[string]interface{}, 0, len(tables))
	for _, table := range tables {
		resp = append(resp, map[string]interface{}{
			"id":       table.ID,
			"name":     table.Name,
			"capacity": table.Capacity,
		})
	}

	return c.JSON(200, resp)
}
