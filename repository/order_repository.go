package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/dineshdk1011/college-canteen/entity"
	"github.com/dineshdk1011/college-canteen/storage"
)

// OrderRepository keeps the order history as a single JSON array in one
// storage key, most recent first. The slot may be shared with other
// processes, so it is re-read on every operation and never cached.
type OrderRepository struct {
	store storage.Store
	key   string
	log   zerolog.Logger
}

func NewOrderRepository(store storage.Store, key string, log zerolog.Logger) *OrderRepository {
	return &OrderRepository{store: store, key: key, log: log}
}

// ListAll returns every stored order, most recent first. A missing or
// unparsable slot reads as an empty history; it is never an error to the
// caller.
func (r *OrderRepository) ListAll(ctx context.Context) []entity.Order {
	raw, err := r.store.Get(ctx, r.key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			r.log.Warn().Err(err).Str("key", r.key).Msg("orders slot unreadable, treating as empty")
		}
		return nil
	}
	var orders []entity.Order
	if err := json.Unmarshal(raw, &orders); err != nil {
		r.log.Warn().Err(err).Str("key", r.key).Msg("orders slot corrupt, treating as empty")
		return nil
	}
	return orders
}

// FindByID scans the stored list for the given order id.
func (r *OrderRepository) FindByID(ctx context.Context, id string) (*entity.Order, bool) {
	for _, o := range r.ListAll(ctx) {
		if o.ID == id {
			return &o, true
		}
	}
	return nil, false
}

// Prepend writes the order ahead of everything already stored, replacing
// the whole slot in one write.
func (r *OrderRepository) Prepend(ctx context.Context, o entity.Order) error {
	orders := append([]entity.Order{o}, r.ListAll(ctx)...)
	raw, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("encode orders: %w", err)
	}
	if err := r.store.Set(ctx, r.key, raw); err != nil {
		return fmt.Errorf("write orders slot: %w", err)
	}
	return nil
}
