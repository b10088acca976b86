package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected HTTPAddr: %s", cfg.HTTPAddr)
	}
	if cfg.RestaurantSlug != "my-restaurant" {
		t.Fatalf("unexpected RestaurantSlug: %s", cfg.RestaurantSlug)
	}
	if cfg.KafkaBrokers != nil {
		t.Fatalf("expected no brokers by default, got %v", cfg.KafkaBrokers)
	}
	if cfg.Seed {
		t.Fatalf("expected seeding off by default")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("RESTAURANT_SLUG", "corner-cafe")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092")
	t.Setenv("SEED", "true")

	cfg := Load()

	if cfg.RestaurantSlug != "corner-cafe" {
		t.Fatalf("unexpected RestaurantSlug: %s", cfg.RestaurantSlug)
	}
	if len(cfg.KafkaBrokers) != 2 || cfg.KafkaBrokers[1] != "kafka-2:9092" {
		t.Fatalf("unexpected brokers: %v", cfg.KafkaBrokers)
	}
	if !cfg.Seed {
		t.Fatalf("expected seeding on")
	}
}

func TestNewKafkaWriterDisabledWithoutBrokers(t *testing.T) {
	if w := NewKafkaWriter(nil, "order-events"); w != nil {
		t.Fatalf("expected nil writer without brokers")
	}
	if w := NewKafkaWriter([]string{"kafka-1:9092"}, "order-events"); w == nil {
		t.Fatalf("expected writer with brokers")
	}
}
