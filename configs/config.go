package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	// StorageDriver is "file", "redis" or "memory".
	StorageDriver string
	StoragePath   string
	RedisAddr     string

	// OrdersKey names the single slot holding the order history.
	OrdersKey string

	// CheckoutDelay stands in for the payment round-trip.
	CheckoutDelay time.Duration
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment variables")
	}

	return &Config{
		Port:          getEnv("PORT", "8000"),
		StorageDriver: getEnv("STORAGE_DRIVER", "file"),
		StoragePath:   getEnv("STORAGE_PATH", "./data"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		OrdersKey:     getEnv("ORDERS_KEY", "canteen_orders"),
		CheckoutDelay: time.Duration(getEnvInt("CHECKOUT_DELAY_MS", 1000)) * time.Millisecond,
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}
