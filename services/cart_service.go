package services

import (
	"sync"

	"github.com/dineshdk1011/college-canteen/entity"
)

// CartService is the single source of truth for the in-progress order.
// One instance lives for the whole session, owned by the composition root.
// Entries are unique by item id; insertion order is kept for display only.
type CartService struct {
	mu    sync.Mutex
	items []entity.CartItem
}

func NewCartService() *CartService {
	return &CartService{}
}

// Add inserts the item, or replaces the quantity when the item id is
// already present. Re-adding does not sum: the UI only offers "Add" for
// items not yet in the cart, everything after that goes through
// UpdateQuantity.
func (s *CartService) Add(item entity.CartItem) {
	if item.Quantity <= 0 {
		item.Quantity = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ItemID == item.ItemID {
			s.items[i].Quantity = item.Quantity
			return
		}
	}
	s.items = append(s.items, item)
}

// UpdateQuantity sets the quantity for an item already in the cart.
// Quantity <= 0 removes the entry; an unknown item id is a no-op.
func (s *CartService) UpdateQuantity(itemID string, qty int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ItemID == itemID {
			if qty <= 0 {
				s.items = append(s.items[:i], s.items[i+1:]...)
			} else {
				s.items[i].Quantity = qty
			}
			return
		}
	}
}

func (s *CartService) Remove(itemID string) {
	s.UpdateQuantity(itemID, 0)
}

func (s *CartService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

// Items returns a value copy of the cart in insertion order. CartItem has
// no reference fields, so the copy is safe to hold across later mutations.
func (s *CartService) Items() []entity.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// Count is the sum of quantities, recomputed on every call.
func (s *CartService) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, it := range s.items {
		total += it.Quantity
	}
	return total
}

// TotalAmount is the sum of price times quantity, recomputed on every call.
func (s *CartService) TotalAmount() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total int64
	for _, it := range s.items {
		total += it.LineTotal()
	}
	return total
}
