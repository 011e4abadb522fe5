package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/srgjo27/ticket_storefront/internal/platform/database"
)

type Config struct {
	HTTPAddr          string
	DB                database.Config
	RedisAddr         string
	RedisPassword     string
	CatalogFile       string
	BookingTopic      string
	LogLevel          string
	LogJSON           bool
	CheckoutRetention time.Duration
	ProfileSecret     string
	ProfileIdleTime   time.Duration
}

// Load reads .env if present and then the environment.
func Load(envFile string) Config {
	if err := godotenv.Load(envFile); err != nil {
		logrus.Infof("No %s file found, using OS environment", envFile)
	}

	return Config{
		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),
		DB: database.Config{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "ticket_storefront"),
		},
		RedisAddr:         getEnv("REDIS_HOST", "localhost") + ":" + getEnv("REDIS_PORT", "6379"),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		CatalogFile:       getEnv("CATALOG_FILE", "config/events.yaml"),
		BookingTopic:      getEnv("BOOKING_EVENTS_TOPIC", "BookingPlaced"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogJSON:           getEnv("LOG_FORMAT", "json") == "json",
		CheckoutRetention: getDuration("CHECKOUT_RETENTION", time.Hour),
		ProfileSecret:     getEnv("PROFILE_SECRET", ""),
		ProfileIdleTime:   getDuration("PROFILE_IDLE_TIMEOUT", 30*time.Minute),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		logrus.WithField(key, v).Warn("Invalid duration, using default")
		return fallback
	}

	return d
}
