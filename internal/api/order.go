package api

import (
	"errors"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/VamsidharReddy01/MyRestaurant/internal/service"
)

type OrderHandler struct {
	orderService service.OrderService
}

// NewOrderHandler creates a new instance of OrderHandler
func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

type CreateOrderRequest struct {
	CustomerName string             `json:"customer_name"`
	TableNumber  string             `json:"table_number"`
	Items        []OrderItemRequest `json:"items"`
}

// OrderItemRequest deliberately has no price field: totals are computed from
// stored prices, so a tampered price in the payload is simply ignored.
type OrderItemRequest struct {
	MenuItemID *int `json:"menu_item_id"`
	Quantity   *int `json:"quantity"`
}

type ListedOrderItem struct {
	Name     *string `json:"name"`
	Quantity int     `json:"quantity"`
}

type ListedOrder struct {
	OrderID      int               `json:"order_id"`
	CustomerName string            `json:"customer_name"`
	TableNumber  string            `json:"table_number"`
	Status       string            `json:"status"`
	TotalAmount  string            `json:"total_amount"`
	CreatedAt    time.Time         `json:"created_at"`
	Items        []ListedOrderItem `json:"items"`
}

// CreateOrder places a new order --> POST /order/
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	in := service.PlaceOrderInput{
		CustomerName: req.CustomerName,
		TableNumber:  req.TableNumber,
	}
	for _, item := range req.Items {
		in.Items = append(in.Items, service.OrderLine{
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
		})
	}

	order, err := h.orderService.PlaceOrder(c.Request().Context(), in)
	if err != nil {
		return orderError(c, err)
	}

	return c.JSON(201, map[string]interface{}{
		"message":      "Order placed successfully",
		"order_id":     order.ID,
		"total_amount": order.TotalAmount.StringFixed(2),
	})
}

// ListOrders returns all orders for the kitchen dashboard --> GET /orders/
func (h *OrderHandler) ListOrders(c echo.Context) error {
	orders, err := h.orderService.ListOrders(c.Request().Context())
	if err != nil {
		return orderError(c, err)
	}

	resp := make([]ListedOrder, 0, len(orders))
	for _, order := range orders {
		listed := ListedOrder{
			OrderID:      order.ID,
			CustomerName: order.CustomerName,
			TableNumber:  order.TableNumber,
			Status:       string(order.Status),
			TotalAmount:  order.TotalAmount.StringFixed(2),
			CreatedAt:    order.CreatedAt,
			Items:        make([]ListedOrderItem, 0, len(order.Items)),
		}
		for _, item := range order.Items {
			listed.Items = append(listed.Items, ListedOrderItem{
				Name:     item.MenuItemName,
				Quantity: item.Quantity,
			})
		}
		resp = append(resp, listed)
	}

	return c.JSON(200, resp)
}

// UpdateOrderStatus patches an order's status --> PATCH /order/:id/status/
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	id := c.Param("id")
	idInt, err := strconv.Atoi(id)
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	req := struct {
		Status string `json:"status"`
	}{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	order, err := h.orderService.UpdateOrderStatus(c.Request().Context(), idInt, req.Status)
	if err != nil {
		return orderError(c, err)
	}

	return c.JSON(200, map[string]interface{}{
		"message":    "Order status updated",
		"order_id":   order.ID,
		"new_status": string(order.Status),
	})
}

func orderError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrNoRestaurant), errors.Is(err, service.ErrOrderNotFound):
		return c.JSON(404, map[string]string{"error": err.Error()})
	case errors.Is(err, service.ErrMissingField),
		errors.Is(err, service.ErrEmptyOrder),
		errors.Is(err, service.ErrMissingItemID),
		errors.Is(err, service.ErrInvalidQuantity),
		errors.Is(err, service.ErrItemNotFound),
		errors.Is(err, service.ErrInvalidStatus):
		return c.JSON(400, map[string]string{"error": err.Error()})
	}
	return c.JSON(500, map[string]string{"error": err.Error()})
}
