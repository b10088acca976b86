package migrations

import (
	"database/sql"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS restaurants (
		id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(200) NOT NULL,
		slug VARCHAR(200) NOT NULL UNIQUE,
		address TEXT,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`,
	`CREATE TABLE IF NOT EXISTS tables (
		id INT AUTO_INCREMENT PRIMARY KEY,
		restaurant_id INT NOT NULL,
		name VARCHAR(50) NOT NULL,
		capacity INT NOT NULL DEFAULT 4,
		FOREIGN KEY (restaurant_id) REFERENCES restaurants(id) ON DELETE CASCADE
	);`,
	`CREATE TABLE IF NOT EXISTS categories (
		id INT AUTO_INCREMENT PRIMARY KEY,
		restaurant_id INT NOT NULL,
		name VARCHAR(100) NOT NULL,
		FOREIGN KEY (restaurant_id) REFERENCES restaurants(id) ON DELETE CASCADE
	);`,
	`CREATE TABLE IF NOT EXISTS menu_items (
		id INT AUTO_INCREMENT PRIMARY KEY,
		restaurant_id INT NOT NULL,
		category_id INT NULL,
		name VARCHAR(200) NOT NULL,
		description TEXT,
		price DECIMAL(8,2) NOT NULL,
		rating DECIMAL(3,1) NOT NULL DEFAULT 0.0,
		is_veg BOOLEAN NOT NULL DEFAULT TRUE,
		available BOOLEAN NOT NULL DEFAULT TRUE,
		FOREIGN KEY (restaurant_id) REFERENCES restaurants(id) ON DELETE CASCADE,
		FOREIGN KEY (category_id) REFERENCES categories(id) ON DELETE SET NULL
	);`,
	`CREATE TABLE IF NOT EXISTS orders (
		id INT AUTO_INCREMENT PRIMARY KEY,
		restaurant_id INT NOT NULL,
		customer_name VARCHAR(100) NOT NULL,
		table_number VARCHAR(10) NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'pending',
		total_amount DECIMAL(10,2) NOT NULL DEFAULT 0.00,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (restaurant_id) REFERENCES restaurants(id) ON DELETE CASCADE
	);`,
	`CREATE TABLE IF NOT EXISTS order_items (
		id INT AUTO_INCREMENT PRIMARY KEY,
		order_id INT NOT NULL,
		menu_item_id INT NULL,
		quantity INT NOT NULL DEFAULT 1,
		FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE CASCADE,
		FOREIGN KEY (menu_item_id) REFERENCES menu_items(id) ON DELETE SET NULL
	);`,
	`CREATE TABLE IF NOT EXISTS users (
		id INT AUTO_INCREMENT PRIMARY KEY,
		username VARCHAR(150) NOT NULL UNIQUE,
		password VARCHAR(255) NOT NULL,
		is_staff BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`,
}

// AutoMigrate creates all tables if they do not exist. Each statement is
// retried, since the database container may still be warming up on startup.
func AutoMigrate(retries int, db *sql.DB) error {
	for _, stmt := range schema {
		_, err := db.Exec(stmt)
		for i := 0; err != nil && i < retries; i++ {
			time.Sleep(1 * time.Second)
			_, err = db.Exec(stmt)
		}
		if err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// Seed inserts a demo restaurant with tables, categories, menu items and one
// staff login. It is a no-op when a restaurant with the given slug already
// exists.
func Seed(db *sql.DB, slug, staffUsername, staffPassword string) error {
	var existing int
	err := db.QueryRow(`SELECT COUNT(*) FROM restaurants WHERE slug = ?`, slug).Scan(&existing)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if existing > 0 {
		return nil
	}

	res, err := db.Exec(`INSERT INTO restaurants (name, slug, address) VALUES (?, ?, ?)`,
		"My Restaurant", slug, "42 Main Street")
	if err != nil {
		return fmt.Errorf("seed restaurant: %w", err)
	}
	restaurantID, err := res.LastInsertId()
	if err != nil {
		return err
	}

	for i := 1; i <= 6; i++ {
		_, err = db.Exec(`INSERT INTO tables (restaurant_id, name, capacity) VALUES (?, ?, ?)`,
			restaurantID, fmt.Sprintf("T%d", i), 4)
		if err != nil {
			return fmt.Errorf("seed tables: %w", err)
		}
	}

	categories := map[string][]struct {
		name  string
		price string
		isVeg bool
	}{
		"Starters": {
			{"Garlic Bread", "4.50", true},
			{"Chicken Wings", "7.90", false},
		},
		"Mains": {
			{"Margherita Pizza", "9.50", true},
			{"Butter Chicken", "12.00", false},
		},
		"Drinks": {
			{"Fresh Lime Soda", "2.50", true},
		},
	}

	for categoryName, items := range categories {
		res, err = db.Exec(`INSERT INTO categories (restaurant_id, name) VALUES (?, ?)`,
			restaurantID, categoryName)
		if err != nil {
			return fmt.Errorf("seed categories: %w", err)
		}
		categoryID, err := res.LastInsertId()
		if err != nil {
			return err
		}
		for _, item := range items {
			_, err = db.Exec(
				`INSERT INTO menu_items (restaurant_id, category_id, name, description, price, rating, is_veg, available)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				restaurantID, categoryID, item.name, "", item.price, "4.0", item.isVeg, true)
			if err != nil {
				return fmt.Errorf("seed menu items: %w", err)
			}
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(staffPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = db.Exec(`INSERT INTO users (username, password, is_staff) VALUES (?, ?, ?)`,
		staffUsername, string(hash), true)
	if err != nil {
		return fmt.Errorf("seed staff user: %w", err)
	}

	return nil
}
