package store

import "sama-store/internal/domain"

// Carts belong to the active browsing session, keyed by session id. They are
// never persisted: an explicit clear or a placed order is the only way out.

// AddToCart increments the quantity of an existing line for the product, or
// appends a new line with quantity 1. Stock is deliberately not enforced here;
// it is deducted at placement.
func (s *Store) AddToCart(sessionID string, p domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.carts[sessionID]
	for i := range cart {
		if cart[i].ID == p.ID {
			cart[i].Quantity++
			return
		}
	}
	s.carts[sessionID] = append(cart, domain.CartItem{Product: p, Quantity: 1})
}

// RemoveFromCart removes the entire line for the product, whatever its
// quantity. This matches the storefront's observable behavior: the decrement
// control removes the whole line.
func (s *Store) RemoveFromCart(sessionID, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.carts[sessionID]
	out := cart[:0]
	for _, item := range cart {
		if item.ID != productID {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		delete(s.carts, sessionID)
		return
	}
	s.carts[sessionID] = out
}

// ClearCart empties the session's cart unconditionally.
func (s *Store) ClearCart(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}

// Cart returns a snapshot of the session's cart.
func (s *Store) Cart(sessionID string) []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.carts[sessionID]
	out := make([]domain.CartItem, len(cart))
	copy(out, cart)
	return out
}

// CartSubtotal sums the line subtotals at effective prices.
func (s *Store) CartSubtotal(sessionID string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total int64
	for _, item := range s.carts[sessionID] {
		total += item.Subtotal()
	}
	return total
}
