package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Kafka request pipeline. Disabled leaves only the HTTP API running.
	KafkaEnabled     bool
	KafkaBrokers     []string
	KafkaSourceTopic string
	KafkaSinkTopic   string
	KafkaGroupID     string

	BatchSize          int
	BatchFlushInterval time.Duration

	// Generator limits and behavior.
	DefaultPoints   int
	MaxPoints       int
	MaxChord        float64
	CacheSize       int
	StrictSixSeries bool
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	batchSize, err := sharedcfg.ParseBatchSize()
	if err != nil {
		return nil, err
	}

	flushInterval, err := sharedcfg.ParseBatchFlushInterval()
	if err != nil {
		return nil, err
	}

	kafkaEnabled, err := parseBool("KAFKA_ENABLED", true)
	if err != nil {
		return nil, err
	}
	strictSixSeries, err := parseBool("AIRFOIL_STRICT_SIX_SERIES", false)
	if err != nil {
		return nil, err
	}

	defaultPoints, err := parseInt("AIRFOIL_DEFAULT_POINTS", 100)
	if err != nil {
		return nil, err
	}
	maxPoints, err := parseInt("AIRFOIL_MAX_POINTS", 10000)
	if err != nil {
		return nil, err
	}
	cacheSize, err := parseInt("AIRFOIL_CACHE_SIZE", 256)
	if err != nil {
		return nil, err
	}
	maxChord, err := parseFloat("AIRFOIL_MAX_CHORD", 100)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr:           sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:           sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:          sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout:    shutdownTimeout,
		KafkaEnabled:       kafkaEnabled,
		KafkaBrokers:       sharedcfg.ParseBrokers(sharedcfg.EnvOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaSourceTopic:   sharedcfg.EnvOrDefault("KAFKA_SOURCE_TOPIC", "airfoil-requests"),
		KafkaSinkTopic:     sharedcfg.EnvOrDefault("KAFKA_SINK_TOPIC", "airfoil-profiles"),
		KafkaGroupID:       sharedcfg.EnvOrDefault("KAFKA_GROUP_ID", "naca-airfoil"),
		BatchSize:          batchSize,
		BatchFlushInterval: flushInterval,

		DefaultPoints:   defaultPoints,
		MaxPoints:       maxPoints,
		MaxChord:        maxChord,
		CacheSize:       cacheSize,
		StrictSixSeries: strictSixSeries,
	}

	if cfg.KafkaEnabled {
		if len(cfg.KafkaBrokers) == 0 {
			return nil, errors.New("KAFKA_BROKERS is required")
		}
		if cfg.KafkaSourceTopic == "" {
			return nil, errors.New("KAFKA_SOURCE_TOPIC is required")
		}
		if cfg.KafkaSinkTopic == "" {
			return nil, errors.New("KAFKA_SINK_TOPIC is required")
		}
	}
	if cfg.MaxPoints < 2 {
		return nil, errors.New("AIRFOIL_MAX_POINTS must be at least 2")
	}
	if cfg.DefaultPoints < 2 || cfg.DefaultPoints > cfg.MaxPoints {
		return nil, fmt.Errorf("AIRFOIL_DEFAULT_POINTS must be between 2 and %d", cfg.MaxPoints)
	}
	if !(cfg.MaxChord > 0) {
		return nil, errors.New("AIRFOIL_MAX_CHORD must be positive")
	}
	if cfg.CacheSize < 0 {
		return nil, errors.New("AIRFOIL_CACHE_SIZE must not be negative")
	}

	return cfg, nil
}

func parseBool(key string, def bool) (bool, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func parseInt(key string, def int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func parseFloat(key string, def float64) (float64, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}
