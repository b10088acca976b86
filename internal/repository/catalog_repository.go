package repository

import (
	"context"
	"database/sql"

	"github.com/VamsidharReddy01/MyRestaurant/internal/entity"
)

type CatalogRepository struct {
	db *sql.DB
}

func NewCatalogRepository(db *sql.DB) *CatalogRepository {
	return &CatalogRepository{db}
}

func (r *CatalogRepository) GetRestaurantBySlug(ctx context.Context, slug string) (*entity.Restaurant, error) {
	var restaurant entity.Restaurant
	query := `SELECT id, name, slug, address, created_at FROM restaurants WHERE slug = ?`
	err := r.db.QueryRowContext(ctx, query, slug).Scan(
		&restaurant.ID, &restaurant.Name, &restaurant.Slug, &restaurant.Address, &restaurant.CreatedAt)
	if err != nil {
		return nil, err
	}

	return &restaurant, nil
}

func (r *CatalogRepository) GetTables(ctx context.Context, restaurantID int) ([]*entity.Table, error) {
	query := `SELECT id, restaurant_id, name, capacity FROM tables WHERE restaurant_id = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tables []*entity.Table
	for rows.Next() {
		var table entity.Table
		err := rows.Scan(&table.ID, &table.RestaurantID, &table.Name, &table.Capacity)
		if err != nil {
			return nil, err
		}
		tables = append(tables, &table)
	}

	return tables, rows.Err()
}

func (r *CatalogRepository) GetCategories(ctx context.Context, restaurantID int) ([]*entity.Category, error) {
	query := `SELECT id, restaurant_id, name FROM categories WHERE restaurant_id = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*entity.Category
	for rows.Next() {
		var category entity.Category
		err := rows.Scan(&category.ID, &category.RestaurantID, &category.Name)
		if err != nil {
			return nil, err
		}
		categories = append(categories, &category)
	}

	return categories, rows.Err()
}

func (r *CatalogRepository) GetMenuItems(ctx context.Context, restaurantID int) ([]*entity.MenuItem, error) {
	query := `SELECT id, restaurant_id, category_id, name, description, price, rating, is_veg, available
		FROM menu_items WHERE restaurant_id = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*entity.MenuItem
	for rows.Next() {
		var item entity.MenuItem
		err := rows.Scan(&item.ID, &item.RestaurantID, &item.CategoryID, &item.Name,
			&item.Description, &item.Price, &item.Rating, &item.IsVeg, &item.Available)
		if err != nil {
			return nil, err
		}
		items = append(items, &item)
	}

	return items, rows.Err()
}

func (r *CatalogRepository) GetMenuItemByID(ctx context.Context, id int) (*entity.MenuItem, error) {
	var item entity.MenuItem
	query := `SELECT id, restaurant_id, category_id, name, description, price, rating, is_veg, available
		FROM menu_items WHERE id = ?`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&item.ID, &item.RestaurantID, &item.CategoryID, &item.Name,
		&item.Description, &item.Price, &item.Rating, &item.IsVeg, &item.Available)
	if err != nil {
		return nil, err
	}

	return &item, nil
}
