package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/dineshdk1011/college-canteen/configs"
	"github.com/dineshdk1011/college-canteen/repository"
	"github.com/dineshdk1011/college-canteen/routes"
	"github.com/dineshdk1011/college-canteen/services"
	"github.com/dineshdk1011/college-canteen/storage"
)

func main() {
	cfg := configs.LoadConfig()
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	store, err := buildStore(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("storage init failed")
	}

	// Catalog
	catalog := repository.NewCatalogRepository(configs.SeedCanteens())

	// Cart lives for the whole session; orders are durable in the slot.
	cart := services.NewCartService()
	orders := repository.NewOrderRepository(store, cfg.OrdersKey,
		logger.With().Str("component", "orders").Logger())
	checkout := services.NewCheckoutService(cart, orders, cfg.CheckoutDelay,
		logger.With().Str("component", "checkout").Logger())

	// HTTP
	r := gin.Default()
	routes.RegisterRoutes(r, routes.Deps{
		Catalog:  catalog,
		Cart:     cart,
		Checkout: checkout,
		Orders:   orders,
	})

	addr := fmt.Sprintf(":%s", cfg.Port)
	logger.Info().Str("addr", addr).Str("storage", cfg.StorageDriver).Msg("server running")
	if err := r.Run(addr); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

func buildStore(cfg *configs.Config, logger zerolog.Logger) (storage.Store, error) {
	switch cfg.StorageDriver {
	case "file":
		return storage.NewFileStore(cfg.StoragePath)
	case "redis":
		s := storage.NewRedisStore(cfg.RedisAddr)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Ping(ctx); err != nil {
			return nil, fmt.Errorf("redis at %s: %w", cfg.RedisAddr, err)
		}
		return s, nil
	case "memory":
		logger.Warn().Msg("memory storage selected, orders will not survive a restart")
		return storage.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
