package store

import (
	"context"
	"fmt"
	"strings"

	"sama-store/internal/domain"
	"sama-store/internal/storage"

	"github.com/google/uuid"
)

// NewOrderID generates a unique storefront order id. The SAM- prefix is part
// of the order number format customers see. The suffix length varies between
// 8 and 10 characters so the length-derived courier assignment spreads over
// the whole roster.
func NewOrderID() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "SAM-" + raw[:8+int(raw[len(raw)-1])%3]
}

// Orders returns a snapshot of all orders, newest first.
func (s *Store) Orders() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// OrdersForUser returns the orders owned by one user, newest first.
func (s *Store) OrdersForUser(userID string) []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Order
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out
}

// OrderByID looks up one order.
func (s *Store) OrderByID(id string) (domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return domain.Order{}, ErrOrderNotFound
}

// PlaceOrder prepends the order and persists the collection. An order with no
// items creates nothing. Stock is deducted per line, floored at zero.
func (s *Store) PlaceOrder(ctx context.Context, order domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.placeOrderLocked(ctx, order)
}

// placeOrderLocked is the placement body; the caller holds the mutex.
func (s *Store) placeOrderLocked(ctx context.Context, order domain.Order) error {
	if len(order.Items) == 0 {
		return ErrEmptyOrder
	}

	for _, item := range order.Items {
		for i := range s.products {
			if s.products[i].ID == item.ID {
				s.products[i].Stock -= item.Quantity
				if s.products[i].Stock < 0 {
					s.products[i].Stock = 0
				}
			}
		}
	}

	s.orders = append([]domain.Order{order}, s.orders...)
	s.persist(ctx, storage.CollectionOrders, s.orders)
	s.persist(ctx, storage.CollectionProducts, s.products)
	return nil
}

// Checkout turns the session's cart into a new pending order, places it and
// clears the cart as one state transition under the mutex: a concurrent
// checkout of the same session finds the cart already empty instead of
// duplicating the order. The total is the sum of line subtotals plus the
// province shipping surcharge.
func (s *Store) Checkout(ctx context.Context, sessionID, userID, address string, province domain.Province) (domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.carts[sessionID]
	if len(cart) == 0 {
		return domain.Order{}, ErrEmptyOrder
	}
	items := make([]domain.CartItem, len(cart))
	copy(items, cart)

	var subtotal int64
	for _, item := range items {
		subtotal += item.Subtotal()
	}

	order := domain.Order{
		ID:              NewOrderID(),
		UserID:          userID,
		Items:           items,
		Total:           subtotal + domain.ShippingFee(province),
		Status:          domain.StatusPending,
		Date:            timeNow(),
		ShippingAddress: address,
		Province:        province,
	}

	if err := s.placeOrderLocked(ctx, order); err != nil {
		return domain.Order{}, err
	}

	delete(s.carts, sessionID)
	return order, nil
}

// UpdateOrderStatus overwrites an order's status after validating the
// transition centrally: unknown statuses are rejected, the status never
// regresses, and delivered is terminal. Forward jumps stay legal for the
// admin surface; the tracking simulator only ever advances one stage.
func (s *Store) UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID != orderID {
			continue
		}
		current := s.orders[i].Status
		if status == current {
			return nil
		}
		if current.Terminal() || status.Index() < current.Index() {
			return fmt.Errorf("%w: %s -> %s", ErrStatusRegress, current, status)
		}
		s.orders[i].Status = status
		s.persist(ctx, storage.CollectionOrders, s.orders)
		return nil
	}
	return ErrOrderNotFound
}
