package store

import (
	"context"
	"testing"
	"time"

	"sama-store/internal/domain"
	"sama-store/internal/storage"

	"go.uber.org/zap"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(context.Background(), storage.NewMemoryProvider(), zap.NewNop())
}

func fixedClock(t *testing.T, at time.Time) {
	t.Helper()
	orig := timeNow
	timeNow = func() time.Time { return at }
	t.Cleanup(func() { timeNow = orig })
}

func testProduct(id string, price int64) domain.Product {
	return domain.Product{
		ID:       id,
		Name:     "Product " + id,
		Price:    price,
		Category: "Electronics",
		Images:   []string{"https://example.test/" + id + ".jpg"},
		Stock:    10,
	}
}

func TestNewSeedsDefaultCatalog(t *testing.T) {
	s := newTestStore(t)

	products := s.Products()
	if len(products) != len(DefaultCatalog()) {
		t.Fatalf("fresh store has %d products, want %d", len(products), len(DefaultCatalog()))
	}
	if products[0].ID != "p1" {
		t.Fatalf("first seeded product is %q, want p1", products[0].ID)
	}
}

func TestNewReloadsPersistedState(t *testing.T) {
	ctx := context.Background()
	provider := storage.NewMemoryProvider()
	logger := zap.NewNop()

	first := New(ctx, provider, logger)
	first.AddProduct(ctx, testProduct("p9", 25000))
	if err := first.PlaceOrder(ctx, domain.Order{
		ID:     "SAM-reload01",
		UserID: "buyer@example.com",
		Items:  []domain.CartItem{{Product: testProduct("p9", 25000), Quantity: 1}},
		Total:  30000,
		Status: domain.StatusPending,
		Date:   time.Now(),
	}); err != nil {
		t.Fatalf("PlaceOrder failed: %v", err)
	}

	second := New(ctx, provider, logger)
	if _, err := second.ProductByID("p9"); err != nil {
		t.Fatalf("reloaded store is missing p9: %v", err)
	}
	if _, err := second.OrderByID("SAM-reload01"); err != nil {
		t.Fatalf("reloaded store is missing the order: %v", err)
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s.AddProduct(ctx, testProduct("p9", 1000))
	s.AddToCart("sess-1", testProduct("p9", 1000))
	if _, err := s.SendChatMessage(ctx, "hello", domain.User{}, false, ""); err != nil {
		t.Fatalf("SendChatMessage failed: %v", err)
	}
	s.Log(ctx, "something happened", "admin@sama.local", domain.AuditOperation, domain.OutcomeSuccess)

	if err := s.Reset(ctx); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}

	if got := len(s.Products()); got != len(DefaultCatalog()) {
		t.Errorf("products after reset: %d, want %d", got, len(DefaultCatalog()))
	}
	if got := len(s.Orders()); got != 0 {
		t.Errorf("orders after reset: %d, want 0", got)
	}
	if got := len(s.Logs()); got != 0 {
		t.Errorf("audit logs after reset: %d, want 0", got)
	}
	if got := len(s.Cart("sess-1")); got != 0 {
		t.Errorf("cart after reset: %d items, want 0", got)
	}
}

func TestPersistFailureDoesNotRollBackMemory(t *testing.T) {
	ctx := context.Background()
	provider := storage.NewMemoryProvider()
	s := New(ctx, provider, zap.NewNop())

	provider.FailSaves = true
	s.AddProduct(ctx, testProduct("p8", 5000))

	if _, err := s.ProductByID("p8"); err != nil {
		t.Fatalf("product missing from memory after failed save: %v", err)
	}

	// The provider never saw the write, so a fresh store loads without it.
	provider.FailSaves = false
	fresh := New(ctx, provider, zap.NewNop())
	if _, err := fresh.ProductByID("p8"); err == nil {
		t.Fatal("failed save should not have reached the provider")
	}
}
