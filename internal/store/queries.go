package store

import (
	"sort"

	"sama-store/internal/domain"
)

// TotalSales sums the totals of every order ever placed.
func (s *Store) TotalSales() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total int64
	for _, o := range s.orders {
		total += o.Total
	}
	return total
}

// PendingOrderCount counts orders still waiting to be processed.
func (s *Store) PendingOrderCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, o := range s.orders {
		if o.Status == domain.StatusPending {
			count++
		}
	}
	return count
}

// Customers derives the known customer identities from the orders and chat
// threads rather than keeping a separate collection: anyone who placed an
// order or opened a thread is a customer. The guest sentinel is excluded.
func (s *Store) Customers() []domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]bool)
	var out []domain.User
	add := func(id string) {
		if id == "" || id == domain.GuestSender || seen[id] {
			return
		}
		seen[id] = true
		out = append(out, domain.User{
			Email: id,
			Name:  domain.DisplayNameFor(id),
			Role:  domain.RoleCustomer,
		})
	}

	for _, o := range s.orders {
		add(o.UserID)
	}
	for _, m := range s.chats {
		if !m.IsAdmin {
			add(domain.ThreadOwner(m.SenderID))
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out
}
