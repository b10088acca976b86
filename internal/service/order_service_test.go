package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VamsidharReddy01/MyRestaurant/internal/repository"
)

func setupOrderServiceTest(t *testing.T) (*OrderService, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { mockDB.Close() })

	svc := NewOrderService(
		*repository.NewOrderRepository(mockDB),
		*repository.NewCatalogRepository(mockDB),
		nil, // events off
		"my-restaurant",
	)
	return svc, mock
}

func intPtr(v int) *int { return &v }

func expectRestaurantLookup(mock sqlmock.Sqlmock) {
	mock.ExpectQuery("FROM restaurants").
		WithArgs("my-restaurant").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug", "address", "created_at"}).
			AddRow(1, "My Restaurant", "my-restaurant", "12 Main St", time.Now()))
}

func expectMenuItemLookup(mock sqlmock.Sqlmock, id int, name, price string) {
	mock.ExpectQuery("FROM menu_items WHERE id").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id", "restaurant_id", "category_id", "name", "description", "price", "rating", "is_veg", "available"}).
			AddRow(id, 1, 1, name, "", price, "4.0", true, true))
}

func TestPlaceOrder_ComputesTotalFromStoredPrices(t *testing.T) {
	svc, mock := setupOrderServiceTest(t)

	expectRestaurantLookup(mock)
	expectMenuItemLookup(mock, 7, "Margherita Pizza", "9.50")
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO orders").
		WillReturnResult(sqlmock.NewResult(12, 1))
	mock.ExpectExec("INSERT INTO order_items").
		WithArgs(12, 7, 2).
		WillReturnResult(sqlmock.NewResult(31, 1))
	mock.ExpectCommit()

	order, err := svc.PlaceOrder(context.Background(), PlaceOrderInput{
		CustomerName: "Alice",
		TableNumber:  "T3",
		Items:        []OrderLine{{MenuItemID: intPtr(7), Quantity: intPtr(2)}},
	})
	require.NoError(t, err)

	assert.Equal(t, 12, order.ID)
	assert.Equal(t, "pending", string(order.Status))
	assert.Equal(t, "19.00", order.TotalAmount.StringFixed(2))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPlaceOrder_QuantityDefaultsToOne(t *testing.T) {
	svc, mock := setupOrderServiceTest(t)

	expectRestaurantLookup(mock)
	expectMenuItemLookup(mock, 3, "Lemonade", "2.50")
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO orders").
		WillReturnResult(sqlmock.NewResult(13, 1))
	mock.ExpectExec("INSERT INTO order_items").
		WithArgs(13, 3, 1).
		WillReturnResult(sqlmock.NewResult(40, 1))
	mock.ExpectCommit()

	order, err := svc.PlaceOrder(context.Background(), PlaceOrderInput{
		CustomerName: "Bob",
		TableNumber:  "T1",
		Items:        []OrderLine{{MenuItemID: intPtr(3)}},
	})
	require.NoError(t, err)

	assert.Equal(t, "2.50", order.TotalAmount.StringFixed(2))
	assert.Equal(t, 1, order.Items[0].Quantity)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPlaceOrder_MissingFields(t *testing.T) {
	svc, mock := setupOrderServiceTest(t)

	_, err := svc.PlaceOrder(context.Background(), PlaceOrderInput{
		CustomerName: "   ",
		TableNumber:  "T3",
		Items:        []OrderLine{{MenuItemID: intPtr(7)}},
	})
	assert.ErrorIs(t, err, ErrMissingField)

	// Nothing may reach the database on input validation failures.
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPlaceOrder_EmptyItems(t *testing.T) {
	svc, mock := setupOrderServiceTest(t)

	_, err := svc.PlaceOrder(context.Background(), PlaceOrderInput{
		CustomerName: "Alice",
		TableNumber:  "T3",
	})
	assert.ErrorIs(t, err, ErrEmptyOrder)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPlaceOrder_NoRestaurantConfigured(t *testing.T) {
	svc, mock := setupOrderServiceTest(t)

	mock.ExpectQuery("FROM restaurants").
		WithArgs("my-restaurant").
		WillReturnError(sql.ErrNoRows)

	_, err := svc.PlaceOrder(context.Background(), PlaceOrderInput{
		CustomerName: "Alice",
		TableNumber:  "T3",
		Items:        []OrderLine{{MenuItemID: intPtr(7)}},
	})
	assert.ErrorIs(t, err, ErrNoRestaurant)
}

func TestPlaceOrder_LineWithoutItemID(t *testing.T) {
	svc, mock := setupOrderServiceTest(t)

	expectRestaurantLookup(mock)

	_, err := svc.PlaceOrder(context.Background(), PlaceOrderInput{
		CustomerName: "Alice",
		TableNumber:  "T3",
		Items:        []OrderLine{{Quantity: intPtr(2)}},
	})
	assert.ErrorIs(t, err, ErrMissingItemID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPlaceOrder_ZeroItemIDTreatedAsMissing(t *testing.T) {
	svc, mock := setupOrderServiceTest(t)

	expectRestaurantLookup(mock)

	_, err := svc.PlaceOrder(context.Background(), PlaceOrderInput{
		CustomerName: "Alice",
		TableNumber:  "T3",
		Items:        []OrderLine{{MenuItemID: intPtr(0), Quantity: intPtr(1)}},
	})
	assert.ErrorIs(t, err, ErrMissingItemID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPlaceOrder_ZeroQuantity(t *testing.T) {
	svc, mock := setupOrderServiceTest(t)

	expectRestaurantLookup(mock)

	_, err := svc.PlaceOrder(context.Background(), PlaceOrderInput{
		CustomerName: "Alice",
		TableNumber:  "T3",
		Items:        []OrderLine{{MenuItemID: intPtr(7), Quantity: intPtr(0)}},
	})
	assert.ErrorIs(t, err, ErrInvalidQuantity)
	assert.Contains(t, err.Error(), "menu item ID 7")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPlaceOrder_UnknownItemWritesNothing(t *testing.T) {
	svc, mock := setupOrderServiceTest(t)

	expectRestaurantLookup(mock)
	expectMenuItemLookup(mock, 7, "Margherita Pizza", "9.50")
	mock.ExpectQuery("FROM menu_items WHERE id").
		WithArgs(999).
		WillReturnError(sql.ErrNoRows)

	_, err := svc.PlaceOrder(context.Background(), PlaceOrderInput{
		CustomerName: "Alice",
		TableNumber:  "T3",
		Items: []OrderLine{
			{MenuItemID: intPtr(7), Quantity: intPtr(1)},
			{MenuItemID: intPtr(999), Quantity: intPtr(1)},
		},
	})
	assert.ErrorIs(t, err, ErrItemNotFound)
	assert.Contains(t, err.Error(), "ID 999")

	// The valid first line must not have produced any insert.
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateOrderStatus_RejectsUnknownStatus(t *testing.T) {
	svc, mock := setupOrderServiceTest(t)

	mock.ExpectQuery("FROM orders WHERE id").
		WithArgs(12).
		WillReturnRows(sqlmock.NewRows([]string{"id", "restaurant_id", "customer_name", "table_number", "status", "total_amount", "created_at"}).
			AddRow(12, 1, "Alice", "T3", "pending", "19.00", time.Now()))

	_, err := svc.UpdateOrderStatus(context.Background(), 12, "flying")
	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.Contains(t, err.Error(), "pending")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateOrderStatus_OrderNotFound(t *testing.T) {
	svc, mock := setupOrderServiceTest(t)

	mock.ExpectQuery("FROM orders WHERE id").
		WithArgs(999).
		WillReturnError(sql.ErrNoRows)

	_, err := svc.UpdateOrderStatus(context.Background(), 999, "accepted")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestUpdateOrderStatus_MissingOrderWinsOverBadStatus(t *testing.T) {
	svc, mock := setupOrderServiceTest(t)

	mock.ExpectQuery("FROM orders WHERE id").
		WithArgs(999).
		WillReturnError(sql.ErrNoRows)

	_, err := svc.UpdateOrderStatus(context.Background(), 999, "flying")
	assert.ErrorIs(t, err, ErrOrderNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateOrderStatus_AllowsAnyDirection(t *testing.T) {
	svc, mock := setupOrderServiceTest(t)

	// served back to pending is allowed, transitions are not monotonic
	mock.ExpectQuery("FROM orders WHERE id").
		WithArgs(12).
		WillReturnRows(sqlmock.NewRows([]string{"id", "restaurant_id", "customer_name", "table_number", "status", "total_amount", "created_at"}).
			AddRow(12, 1, "Alice", "T3", "served", "19.00", time.Now()))
	mock.ExpectExec("UPDATE orders SET status").
		WithArgs("pending", 12).
		WillReturnResult(sqlmock.NewResult(0, 1))

	order, err := svc.UpdateOrderStatus(context.Background(), 12, "pending")
	require.NoError(t, err)
	assert.Equal(t, "pending", string(order.Status))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListOrders_AttachesItems(t *testing.T) {
	svc, mock := setupOrderServiceTest(t)

	expectRestaurantLookup(mock)
	mock.ExpectQuery("FROM orders WHERE restaurant_id").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "restaurant_id", "customer_name", "table_number", "status", "total_amount", "created_at"}).
			AddRow(12, 1, "Alice", "T3", "pending", "19.00", time.Now()))
	mock.ExpectQuery("FROM order_items").
		WithArgs(12).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "menu_item_id", "name", "quantity"}).
			AddRow(31, 12, 7, "Margherita Pizza", 2).
			AddRow(32, 12, nil, nil, 1))

	orders, err := svc.ListOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Len(t, orders[0].Items, 2)

	assert.Equal(t, "Margherita Pizza", *orders[0].Items[0].MenuItemName)
	assert.Nil(t, orders[0].Items[1].MenuItemName)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListOrders_NoRestaurantConfigured(t *testing.T) {
	svc, mock := setupOrderServiceTest(t)

	mock.ExpectQuery("FROM restaurants").
		WithArgs("my-restaurant").
		WillReturnError(sql.ErrNoRows)

	_, err := svc.ListOrders(context.Background())
	assert.ErrorIs(t, err, ErrNoRestaurant)
}

func TestPlaceOrder_RollsBackOnItemInsertFailure(t *testing.T) {
	svc, mock := setupOrderServiceTest(t)

	expectRestaurantLookup(mock)
	expectMenuItemLookup(mock, 7, "Margherita Pizza", "9.50")
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO orders").
		WillReturnResult(sqlmock.NewResult(12, 1))
	mock.ExpectExec("INSERT INTO order_items").
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	_, err := svc.PlaceOrder(context.Background(), PlaceOrderInput{
		CustomerName: "Alice",
		TableNumber:  "T3",
		Items:        []OrderLine{{MenuItemID: intPtr(7), Quantity: intPtr(2)}},
	})
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
