package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/VamsidharReddy01/MyRestaurant/internal/entity"
)

type OrderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db}
}

// CreateOrder persists the order and all of its line items in one
// transaction. Either every row is written or none is.
func (r *OrderRepository) CreateOrder(ctx context.Context, order *entity.Order) (*entity.Order, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO orders (restaurant_id, customer_name, table_number, status, total_amount, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		order.RestaurantID, order.CustomerName, order.TableNumber, order.Status, order.TotalAmount, order.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}

	orderID, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	order.ID = int(orderID)

	for i := range order.Items {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO order_items (order_id, menu_item_id, quantity) VALUES (?, ?, ?)`,
			order.ID, order.Items[i].MenuItemID, order.Items[i].Quantity)
		if err != nil {
			return nil, fmt.Errorf("insert order item: %w", err)
		}
		itemID, err := res.LastInsertId()
		if err != nil {
			return nil, err
		}
		order.Items[i].ID = int(itemID)
		order.Items[i].OrderID = order.ID
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit order: %w", err)
	}

	return order, nil
}

func (r *OrderRepository) GetOrderByID(ctx context.Context, id int) (*entity.Order, error) {
	var order entity.Order
	query := `SELECT id, restaurant_id, customer_name, table_number, status, total_amount, created_at
		FROM orders WHERE id = ?`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&order.ID, &order.RestaurantID, &order.CustomerName, &order.TableNumber,
		&order.Status, &order.TotalAmount, &order.CreatedAt)
	if err != nil {
		return nil, err
	}

	return &order, nil
}

// ListOrders returns the restaurant's orders newest first, without items.
func (r *OrderRepository) ListOrders(ctx context.Context, restaurantID int) ([]*entity.Order, error) {
	query := `SELECT id, restaurant_id, customer_name, table_number, status, total_amount, created_at
		FROM orders WHERE restaurant_id = ? ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*entity.Order
	for rows.Next() {
		var order entity.Order
		err := rows.Scan(&order.ID, &order.RestaurantID, &order.CustomerName, &order.TableNumber,
			&order.Status, &order.TotalAmount, &order.CreatedAt)
		if err != nil {
			return nil, err
		}
		orders = append(orders, &order)
	}

	return orders, rows.Err()
}

// GetOrderItems loads an order's line items with the menu item name
// denormalized. The name is NULL when the menu item has been deleted.
func (r *OrderRepository) GetOrderItems(ctx context.Context, orderID int) ([]*entity.OrderItem, error) {
	query := `SELECT oi.id, oi.order_id, oi.menu_item_id, mi.name, oi.quantity
		FROM order_items oi
		LEFT JOIN menu_items mi ON oi.menu_item_id = mi.id
		WHERE oi.order_id = ?
		ORDER BY oi.id`
	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*entity.OrderItem
	for rows.Next() {
		var item entity.OrderItem
		err := rows.Scan(&item.ID, &item.OrderID, &item.MenuItemID, &item.MenuItemName, &item.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, &item)
	}

	return items, rows.Err()
}

func (r *OrderRepository) UpdateOrderStatus(ctx context.Context, id int, status entity.Status) error {
	query := `UPDATE orders SET status = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}
