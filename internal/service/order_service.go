package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	"github.com/VamsidharReddy01/MyRestaurant/internal/entity"
	"github.com/VamsidharReddy01/MyRestaurant/internal/repository"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// OrderService is a service that provides order placement and lifecycle
// operations for the configured restaurant.
type OrderService struct {
	orderRepo      repository.OrderRepository
	catalogRepo    repository.CatalogRepository
	kafkaWriter    *kafka.Writer
	restaurantSlug string
}

// NewOrderService creates a new instance of OrderService. kafkaWriter may be
// nil, in which case no events are published.
func NewOrderService(orderRepo repository.OrderRepository, catalogRepo repository.CatalogRepository, kafkaWriter *kafka.Writer, restaurantSlug string) *OrderService {
	return &OrderService{
		orderRepo:      orderRepo,
		catalogRepo:    catalogRepo,
		kafkaWriter:    kafkaWriter,
		restaurantSlug: restaurantSlug,
	}
}

type PlaceOrderInput struct {
	CustomerName string
	TableNumber  string
	Items        []OrderLine
}

// OrderLine is one requested (menu item, quantity) pair. Quantity defaults to
// 1 when absent. Any client-sent price is never part of the input: totals are
// computed from stored prices only.
type OrderLine struct {
	MenuItemID *int
	Quantity   *int
}

// PlaceOrder validates every requested line against the catalog, then
// persists the order and its items atomically with a server-computed total.
// Validation is fail-fast: the first failing line aborts the whole request
// and nothing is written.
func (s *OrderService) PlaceOrder(ctx context.Context, in PlaceOrderInput) (*entity.Order, error) {
	customerName := strings.TrimSpace(in.CustomerName)
	tableNumber := strings.TrimSpace(in.TableNumber)

	if customerName == "" || tableNumber == "" {
		return nil, ErrMissingField
	}
	if len(in.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	restaurant, err := s.catalogRepo.GetRestaurantBySlug(ctx, s.restaurantSlug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoRestaurant
		}
		return nil, err
	}

	// Validate all items before touching the order tables. A single invalid
	// line rejects the entire order.
	type validatedLine struct {
		item     *entity.MenuItem
		quantity int
	}
	lines := make([]validatedLine, 0, len(in.Items))

	for _, line := range in.Items {
		// ID 0 never exists, treat it like an absent field.
		if line.MenuItemID == nil || *line.MenuItemID == 0 {
			return nil, ErrMissingItemID
		}

		quantity := 1
		if line.Quantity != nil {
			quantity = *line.Quantity
		}
		if quantity <= 0 {
			return nil, fmt.Errorf("%w for menu item ID %d", ErrInvalidQuantity, *line.MenuItemID)
		}

		item, err := s.catalogRepo.GetMenuItemByID(ctx, *line.MenuItemID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, fmt.Errorf("%w: ID %d", ErrItemNotFound, *line.MenuItemID)
			}
			return nil, err
		}

		lines = append(lines, validatedLine{item: item, quantity: quantity})
	}

	order := &entity.Order{
		RestaurantID: restaurant.ID,
		CustomerName: customerName,
		TableNumber:  tableNumber,
		Status:       entity.StatusPending,
		CreatedAt:    time.Now(),
	}

	// Line totals come from the stored price, never from the request.
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.item.Price.Mul(decimal.NewFromInt(int64(line.quantity))))

		itemID := line.item.ID
		order.Items = append(order.Items, entity.OrderItem{
			MenuItemID: &itemID,
			Quantity:   line.quantity,
		})
	}
	order.TotalAmount = total

	createdOrder, err := s.orderRepo.CreateOrder(ctx, order)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating order")
		return nil, err
	}

	s.publishOrderEvent(ctx, createdOrder, "created")

	return createdOrder, nil
}

// UpdateOrderStatus sets an existing order's status to any member of the
// allowed set. Transitions are not forced to be monotonic. The order is
// looked up first, so a missing order wins over a bad status value.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, orderID int, newStatus string) (*entity.Order, error) {
	order, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	status := entity.Status(newStatus)
	if !entity.IsValidStatus(status) {
		allowed := make([]string, len(entity.AllowedStatuses))
		for i, st := range entity.AllowedStatuses {
			allowed[i] = string(st)
		}
		return nil, fmt.Errorf("%w '%s', allowed: %s", ErrInvalidStatus, newStatus, strings.Join(allowed, ", "))
	}

	if err := s.orderRepo.UpdateOrderStatus(ctx, orderID, status); err != nil {
		logger.Error().Err(err).Msgf("Error updating status for order %d", orderID)
		return nil, err
	}
	order.Status = status

	s.publishOrderEvent(ctx, order, "status_updated")

	return order, nil
}

// ListOrders returns the restaurant's orders newest first, each with its line
// items denormalized.
func (s *OrderService) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	restaurant, err := s.catalogRepo.GetRestaurantBySlug(ctx, s.restaurantSlug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoRestaurant
		}
		return nil, err
	}

	orders, err := s.orderRepo.ListOrders(ctx, restaurant.ID)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing orders")
		return nil, err
	}

	for _, order := range orders {
		items, err := s.orderRepo.GetOrderItems(ctx, order.ID)
		if err != nil {
			return nil, err
		}
		for _, item := range items {
			order.Items = append(order.Items, *item)
		}
	}

	return orders, nil
}

// publishOrderEvent emits an order event to Kafka. Failures are logged only:
// the order is already committed and the caller must see it as placed.
func (s *OrderService) publishOrderEvent(ctx context.Context, order *entity.Order, eventType string) {
	if s.kafkaWriter == nil {
		return
	}

	orderJSON, err := json.Marshal(order)
	if err != nil {
		logger.Error().Err(err).Msgf("Error marshalling event for order %d", order.ID)
		return
	}

	// order.created.1 or order.status_updated.1
	msg := kafka.Message{
		Key:   []byte(fmt.Sprintf("order.%s.%d", eventType, order.ID)),
		Value: orderJSON,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Error().Err(err).Msgf("Error publishing event for order %d", order.ID)
	}
}
