package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusServed    Status = "served"
	StatusCancelled Status = "cancelled"
)

// AllowedStatuses is the full order lifecycle. Any member may be set from any
// current status; there is no forced progression.
var AllowedStatuses = []Status{
	StatusPending,
	StatusAccepted,
	StatusPreparing,
	StatusReady,
	StatusServed,
	StatusCancelled,
}

// IsValidStatus reports whether s is a member of the allowed status set.
func IsValidStatus(s Status) bool {
	for _, allowed := range AllowedStatuses {
		if s == allowed {
			return true
		}
	}
	return false
}

type Order struct {
	ID           int             `json:"id"`
	RestaurantID int             `json:"restaurant_id"`
	CustomerName string          `json:"customer_name"`
	TableNumber  string          `json:"table_number"`
	Status       Status          `json:"status"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	CreatedAt    time.Time       `json:"created_at"`
	Items        []OrderItem     `json:"items"`
}

type OrderItem struct {
	ID           int     `json:"id"`
	OrderID      int     `json:"order_id"`
	MenuItemID   *int    `json:"menu_item_id"`             // NULL once the menu item is deleted
	MenuItemName *string `json:"menu_item_name,omitempty"` // denormalized for listings
	Quantity     int     `json:"quantity"`
}

/*
MySQL schema for the order tables:

CREATE TABLE orders (
	id INT AUTO_INCREMENT PRIMARY KEY,
	restaurant_id INT NOT NULL REFERENCES restaurants(id),
	customer_name VARCHAR(100) NOT NULL,
	table_number VARCHAR(10) NOT NULL,
	status VARCHAR(20) NOT NULL DEFAULT 'pending',
	total_amount DECIMAL(10,2) NOT NULL DEFAULT 0.00,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE order_items (
	id INT AUTO_INCREMENT PRIMARY KEY,
	order_id INT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
	menu_item_id INT NULL REFERENCES menu_items(id) ON DELETE SET NULL,
	quantity INT NOT NULL DEFAULT 1
);
*/
