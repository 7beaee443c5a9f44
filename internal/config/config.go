// Package config centralises configuration parsing for the signup service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"example.com/signup/internal/events"
)

// Config captures runtime configuration values for the signup service.
type Config struct {
	HTTPAddress    string
	MetricsAddress string // Auditor-only metrics listener.
	StaticDir      string

	KafkaBrokers       []string
	EventTopic         string
	EventsEnabled      bool
	PublishInterval    time.Duration
	PublishBatchSize   int
	PublishMaxAttempts int
	EventQueueCapacity int

	ConsumerGroupID      string
	ConsumerTopics       []string
	AuditSummaryInterval time.Duration
}

// Load reads environment variables into Config, applying sensible defaults for local dev.
func Load() Config {
	cfg := Config{
		HTTPAddress:          getEnv("HTTP_ADDRESS", ":8080"),
		MetricsAddress:       getEnv("METRICS_ADDRESS", ":9102"),
		StaticDir:            getEnv("STATIC_DIR", "web/static"),
		EventTopic:           getEnv("EVENT_TOPIC", events.Topic),
		EventsEnabled:        getBoolEnv("EVENTS_ENABLED", false),
		PublishInterval:      getDurationEnv("PUBLISH_INTERVAL", 2*time.Second),
		PublishBatchSize:     getIntEnv("PUBLISH_BATCH_SIZE", 25),
		PublishMaxAttempts:   getIntEnv("PUBLISH_MAX_ATTEMPTS", 5),
		EventQueueCapacity:   getIntEnv("EVENT_QUEUE_CAPACITY", 1024),
		ConsumerGroupID:      getEnv("CONSUMER_GROUP_ID", "signup-auditor"),
		AuditSummaryInterval: getDurationEnv("AUDIT_SUMMARY_INTERVAL", time.Minute),
	}

	cfg.KafkaBrokers = splitAndTrim(getEnv("KAFKA_BROKERS", "kafka:9092"))
	cfg.ConsumerTopics = splitAndTrim(getEnv("CONSUMER_TOPICS", cfg.EventTopic))
	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getBoolEnv(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}
