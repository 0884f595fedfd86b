package store

import (
	"context"
	"testing"

	"sama-store/internal/domain"
)

func TestTotalSalesAndPendingCount(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	orders := []struct {
		total  int64
		status domain.OrderStatus
	}{
		{45000, domain.StatusPending},
		{120000, domain.StatusShipped},
		{8000, domain.StatusPending},
	}
	for _, o := range orders {
		err := s.PlaceOrder(ctx, domain.Order{
			ID:     NewOrderID(),
			UserID: "buyer@example.com",
			Items:  []domain.CartItem{{Product: testProduct("a1", 1000), Quantity: 1}},
			Total:  o.total,
			Status: o.status,
		})
		if err != nil {
			t.Fatalf("PlaceOrder failed: %v", err)
		}
	}

	if got := s.TotalSales(); got != 173000 {
		t.Errorf("TotalSales %d, want 173000", got)
	}
	if got := s.PendingOrderCount(); got != 2 {
		t.Errorf("PendingOrderCount %d, want 2", got)
	}
}

func TestCustomersDerivedFromOrdersAndChats(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	err := s.PlaceOrder(ctx, domain.Order{
		ID:     NewOrderID(),
		UserID: "zed@example.com",
		Items:  []domain.CartItem{{Product: testProduct("a1", 1000), Quantity: 1}},
		Status: domain.StatusPending,
	})
	if err != nil {
		t.Fatalf("PlaceOrder failed: %v", err)
	}
	if _, err := s.SendChatMessage(ctx, "hello", domain.User{Email: "amy@example.com", Name: "amy"}, false, ""); err != nil {
		t.Fatalf("SendChatMessage failed: %v", err)
	}
	// Guest chatter and admin replies do not create customers.
	if _, err := s.SendChatMessage(ctx, "anon question", domain.User{}, false, ""); err != nil {
		t.Fatalf("SendChatMessage failed: %v", err)
	}
	if _, err := s.SendChatMessage(ctx, "reply", domain.User{Email: "admin@sama.local"}, true, "amy@example.com"); err != nil {
		t.Fatalf("SendChatMessage failed: %v", err)
	}

	customers := s.Customers()
	if len(customers) != 2 {
		t.Fatalf("%d customers, want 2: %+v", len(customers), customers)
	}
	if customers[0].Email != "amy@example.com" || customers[1].Email != "zed@example.com" {
		t.Fatalf("customers not sorted by email: %+v", customers)
	}
	if customers[0].Name != "amy" || customers[0].Role != domain.RoleCustomer {
		t.Errorf("derived identity: %+v", customers[0])
	}
}
