package config

import (
	"testing"

	"example.com/signup/internal/events"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("EVENT_TOPIC", "")
	t.Setenv("CONSUMER_TOPICS", "")
	t.Setenv("HTTP_ADDRESS", "")

	cfg := Load()

	if cfg.EventTopic != events.Topic {
		t.Fatalf("expected default event topic %q got %q", events.Topic, cfg.EventTopic)
	}
	if len(cfg.ConsumerTopics) != 1 || cfg.ConsumerTopics[0] != events.Topic {
		t.Fatalf("expected consumer topics to default to the event topic, got %v", cfg.ConsumerTopics)
	}
	if cfg.HTTPAddress != ":8080" {
		t.Fatalf("unexpected default address %q", cfg.HTTPAddress)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("EVENT_TOPIC", "registration_events_v2")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092")

	cfg := Load()

	if cfg.EventTopic != "registration_events_v2" {
		t.Fatalf("unexpected event topic %q", cfg.EventTopic)
	}
	if len(cfg.KafkaBrokers) != 2 || cfg.KafkaBrokers[1] != "kafka-2:9092" {
		t.Fatalf("unexpected brokers %v", cfg.KafkaBrokers)
	}
}
