package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config aggregates application configuration values loaded from
// environment variables.
type Config struct {
	Env              string
	HTTPAddr         string
	MongoURI         string
	MongoDB          string
	KafkaBrokers     []string
	KafkaTopic       string
	RatesAPIBaseURL  string
	RatesFetchTime   time.Duration
	CurrencyBaseURL  string
	CurrencyAPIHost  string
	CurrencyAPIKey   string
	CurrencyCallTime time.Duration
}

// Load parses configuration from the current environment. MongoDB and
// Kafka are optional: without them the service falls back to in-memory
// tenant fixtures and skips event publishing.
func Load() (Config, error) {
	cfg := Config{
		Env:             getEnv("APP_ENV", "dev"),
		HTTPAddr:        getEnv("HTTP_ADDR", ":8080"),
		MongoURI:        os.Getenv("MONGO_URI"),
		MongoDB:         getEnv("MONGO_DB", "stayview"),
		KafkaTopic:      getEnv("KAFKA_TOPIC", "widget.calendar.events"),
		RatesAPIBaseURL: getEnv("RATES_API_URL", "http://localhost:9090"),
		CurrencyBaseURL: getEnv("CURRENCY_API_URL", ""),
		CurrencyAPIHost: getEnv("CURRENCY_API_HOST", ""),
		CurrencyAPIKey:  getEnv("CURRENCY_API_KEY", ""),
	}

	brokers := getEnv("KAFKA_BROKERS", "")
	if brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}

	ratesTimeout, err := parseDurationEnv("RATES_FETCH_TIMEOUT", 10*time.Second)
	if err != nil {
		return Config{}, err
	}
	cfg.RatesFetchTime = ratesTimeout

	currencyTimeout, err := parseDurationEnv("CURRENCY_TIMEOUT", 5*time.Second)
	if err != nil {
		return Config{}, err
	}
	cfg.CurrencyCallTime = currencyTimeout

	if cfg.RatesAPIBaseURL == "" {
		return Config{}, fmt.Errorf("RATES_API_URL is required")
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDurationEnv(key string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s duration: %w", key, err)
	}
	return d, nil
}
