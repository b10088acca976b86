package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type Restaurant struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

type Table struct {
	ID           int    `json:"id"`
	RestaurantID int    `json:"restaurant_id"`
	Name         string `json:"name"` // e.g. T1, T2
	Capacity     int    `json:"capacity"`
}

type Category struct {
	ID           int    `json:"id"`
	RestaurantID int    `json:"restaurant_id"`
	Name         string `json:"name"`
}

type MenuItem struct {
	ID           int             `json:"id"`
	RestaurantID int             `json:"restaurant_id"`
	CategoryID   *int            `json:"category_id"` // NULL once the category is removed
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Rating       decimal.Decimal `json:"rating"`
	IsVeg        bool            `json:"is_veg"`
	Available    bool            `json:"available"`
}

/*
MySQL schema for the catalog tables:

CREATE TABLE restaurants (
	id INT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(200) NOT NULL,
	slug VARCHAR(200) NOT NULL UNIQUE,
	address TEXT,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE tables (
	id INT AUTO_INCREMENT PRIMARY KEY,
	restaurant_id INT NOT NULL REFERENCES restaurants(id),
	name VARCHAR(50) NOT NULL,
	capacity INT NOT NULL DEFAULT 4
);

CREATE TABLE categories (
	id INT AUTO_INCREMENT PRIMARY KEY,
	restaurant_id INT NOT NULL REFERENCES restaurants(id),
	name VARCHAR(100) NOT NULL
);

CREATE TABLE menu_items (
	id INT AUTO_INCREMENT PRIMARY KEY,
	restaurant_id INT NOT NULL REFERENCES restaurants(id),
	category_id INT NULL REFERENCES categories(id),
	name VARCHAR(200) NOT NULL,
	description TEXT,
	price DECIMAL(8,2) NOT NULL,
	rating DECIMAL(3,1) NOT NULL DEFAULT 0.0,
	is_veg BOOLEAN NOT NULL DEFAULT TRUE,
	available BOOLEAN NOT NULL DEFAULT TRUE
);
*/
