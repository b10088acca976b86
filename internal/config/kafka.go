package config

import "github.com/segmentio/kafka-go"

// NewKafkaWriter builds a writer for the order event topic. Returns nil when
// no brokers are configured, which turns event publishing off entirely.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	if len(brokers) == 0 {
		return nil
	}
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
}
