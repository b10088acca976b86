package main

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	_ "github.com/go-sql-driver/mysql"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/VamsidharReddy01/MyRestaurant/internal/api"
	"github.com/VamsidharReddy01/MyRestaurant/internal/config"
	"github.com/VamsidharReddy01/MyRestaurant/internal/repository"
	"github.com/VamsidharReddy01/MyRestaurant/internal/service"
	"github.com/VamsidharReddy01/MyRestaurant/migrations"
)

func connectDB(host, port, user, pass, dbname string) (*sql.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true", user, pass, host, port, dbname)

	var db *sql.DB
	var err error
	for i := 0; i < 10; i++ {
		db, err = sql.Open("mysql", dsn)
		if err == nil {
			err = db.Ping()
			if err == nil {
				log.Printf("Connected to DB %s", dbname)
				return db, nil
			}
		}
		log.Printf("Retry %d: failed to connect to DB %s (%s:%s): %v", i+1, dbname, host, port, err)
		time.Sleep(3 * time.Second)
	}
	return nil, fmt.Errorf("failed to connect to DB %s at %s:%s after retries: %v", dbname, host, port, err)
}

func main() {
	cfg := config.Load()

	db, err := connectDB(cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPass, cfg.DBName)
	if err != nil {
		panic(err)
	}

	if err := migrations.AutoMigrate(3, db); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}

	if cfg.Seed {
		if err := migrations.Seed(db, cfg.RestaurantSlug, cfg.StaffUsername, cfg.StaffPassword); err != nil {
			log.Fatalf("Failed to seed demo data: %v", err)
		}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	kafkaWriter := config.NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaTopic)

	catalogRepo := repository.NewCatalogRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	userRepo := repository.NewUserRepository(db)

	menuService := service.NewMenuService(*catalogRepo, cfg.RestaurantSlug)
	orderService := service.NewOrderService(*orderRepo, *catalogRepo, kafkaWriter, cfg.RestaurantSlug)
	userService := service.NewUserService(*userRepo, rdb, cfg.JWTSecret)

	menuHandler := api.NewMenuHandler(*menuService)
	orderHandler := api.NewOrderHandler(*orderService)
	userHandler := api.NewUserHandler(*userService)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	api.RegisterRoutes(e, menuHandler, orderHandler, userHandler, *userService, cfg.JWTSecret)

	e.Logger.Fatal(e.Start(cfg.HTTPAddr))
}
