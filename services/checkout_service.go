package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dineshdk1011/college-canteen/entity"
	"github.com/dineshdk1011/college-canteen/repository"
)

var ErrEmptyCart = errors.New("cart is empty")

// ValidationError reports every required checkout field that was missing.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// ----- DTO from Controller -----

type CheckoutIn struct {
	Name           string `json:"name"`
	CollegeID      string `json:"collegeId"`
	Phone          string `json:"phone"`
	PickupLocation string `json:"pickupLocation"`
	PaymentMethod  string `json:"paymentMethod"`
	Notes          string `json:"notes"`
}

// CheckoutService turns the current cart plus the checkout form into a
// persisted order. The delay stands in for the payment round-trip of the
// original flow; it is a single suspension point with no cancellation.
type CheckoutService struct {
	cart   *CartService
	orders *repository.OrderRepository
	delay  time.Duration
	log    zerolog.Logger
}

func NewCheckoutService(cart *CartService, orders *repository.OrderRepository, delay time.Duration, log zerolog.Logger) *CheckoutService {
	return &CheckoutService{cart: cart, orders: orders, delay: delay, log: log}
}

// Checkout validates, persists and returns the new order id. On any
// failure the cart is left untouched so the user can retry; the cart is
// cleared only after the order is durably written.
func (s *CheckoutService) Checkout(ctx context.Context, in CheckoutIn) (string, error) {
	snapshot := s.cart.Items()
	if len(snapshot) == 0 {
		return "", ErrEmptyCart
	}

	info := entity.UserInfo{
		Name:           in.Name,
		CollegeID:      in.CollegeID,
		Phone:          in.Phone,
		PickupLocation: in.PickupLocation,
		PaymentMethod:  in.PaymentMethod,
		Notes:          in.Notes,
	}
	if missing := info.MissingFields(); len(missing) > 0 {
		return "", &ValidationError{Fields: missing}
	}
	info.ApplyDefaults()

	if s.delay > 0 {
		time.Sleep(s.delay)
	}

	var total int64
	for _, it := range snapshot {
		total += it.LineTotal()
	}

	order := entity.Order{
		ID:           newOrderID(),
		Date:         time.Now().UTC(),
		Items:        snapshot,
		TotalAmount:  total,
		Status:       entity.StatusOrderPlaced,
		CanteenNames: canteenNames(snapshot),
		UserInfo:     info,
	}

	if err := s.orders.Prepend(ctx, order); err != nil {
		s.log.Error().Err(err).Str("orderId", order.ID).Msg("order persist failed")
		return "", err
	}

	s.cart.Clear()
	s.log.Info().Str("orderId", order.ID).Int64("total", order.TotalAmount).
		Int("items", len(order.Items)).Msg("order placed")
	return order.ID, nil
}

// newOrderID combines an epoch-millisecond component with a random one, so
// ids never collide across repeated calls in a session.
func newOrderID() string {
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

// canteenNames de-duplicates, preserving first-seen order.
func canteenNames(items []entity.CartItem) []string {
	seen := make(map[string]bool, len(items))
	var names []string
	for _, it := range items {
		if !seen[it.CanteenName] {
			seen[it.CanteenName] = true
			names = append(names, it.CanteenName)
		}
	}
	return names
}
