package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr string

	DBHost string
	DBPort string
	DBUser string
	DBPass string
	DBName string

	RedisAddr string

	KafkaBrokers []string
	KafkaTopic   string

	JWTSecret      string
	RestaurantSlug string

	Seed          bool
	StaffUsername string
	StaffPassword string

	Env string
}

// Load reads configuration from the environment, picking up a local .env
// file when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		HTTPAddr: GetString("HTTP_ADDR", ":8080"),

		DBHost: GetString("DB_HOST", "127.0.0.1"),
		DBPort: GetString("DB_PORT", "3306"),
		DBUser: GetString("DB_USER", "root"),
		DBPass: GetString("DB_PASS", ""),
		DBName: GetString("DB_NAME", "restaurant-db"),

		RedisAddr: GetString("REDIS_ADDR", "localhost:6379"),

		KafkaBrokers: splitList(GetString("KAFKA_BROKERS", "")),
		KafkaTopic:   GetString("KAFKA_TOPIC", "order-events"),

		JWTSecret:      GetString("JWT_SECRET", "secret"),
		RestaurantSlug: GetString("RESTAURANT_SLUG", "my-restaurant"),

		Seed:          GetBool("SEED", false),
		StaffUsername: GetString("STAFF_USERNAME", "chef"),
		StaffPassword: GetString("STAFF_PASSWORD", "changeme"),

		Env: GetString("ENV", "development"),
	}
}

func GetString(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func GetInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return n
}

func GetBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return b
}

func splitList(val string) []string {
	if val == "" {
		return nil
	}
	parts := strings.Split(val, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
