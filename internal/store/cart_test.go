package store

import (
	"testing"

	"sama-store/internal/domain"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestProperty_RepeatedAddsAccumulateOneLine(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("n adds of one product yield a single line with quantity n", prop.ForAll(
		func(n int) bool {
			s := newTestStore(t)
			p := testProduct("p1", 1000)
			for i := 0; i < n; i++ {
				s.AddToCart("sess", p)
			}
			cart := s.Cart("sess")
			return len(cart) == 1 && cart[0].Quantity == n && cart[0].ID == "p1"
		},
		gen.IntRange(1, 50),
	))

	properties.Property("subtotal is quantity times effective price", prop.ForAll(
		func(n int, price int64) bool {
			s := newTestStore(t)
			p := testProduct("p1", price)
			for i := 0; i < n; i++ {
				s.AddToCart("sess", p)
			}
			return s.CartSubtotal("sess") == int64(n)*price
		},
		gen.IntRange(1, 20),
		gen.Int64Range(1, 2_000_000),
	))

	properties.TestingRun(t)
}

func TestAddToCartKeepsDistinctLines(t *testing.T) {
	s := newTestStore(t)
	s.AddToCart("sess", testProduct("p1", 1000))
	s.AddToCart("sess", testProduct("p2", 2000))
	s.AddToCart("sess", testProduct("p1", 1000))

	cart := s.Cart("sess")
	if len(cart) != 2 {
		t.Fatalf("cart has %d lines, want 2", len(cart))
	}
	if cart[0].ID != "p1" || cart[0].Quantity != 2 {
		t.Errorf("first line %s qty %d, want p1 qty 2", cart[0].ID, cart[0].Quantity)
	}
	if cart[1].ID != "p2" || cart[1].Quantity != 1 {
		t.Errorf("second line %s qty %d, want p2 qty 1", cart[1].ID, cart[1].Quantity)
	}
}

func TestRemoveFromCartDropsWholeLine(t *testing.T) {
	s := newTestStore(t)
	p := testProduct("p1", 1000)
	for i := 0; i < 5; i++ {
		s.AddToCart("sess", p)
	}
	s.AddToCart("sess", testProduct("p2", 2000))

	s.RemoveFromCart("sess", "p1")

	cart := s.Cart("sess")
	if len(cart) != 1 || cart[0].ID != "p2" {
		t.Fatalf("cart after removal: %+v, want only p2", cart)
	}
}

func TestRemoveFromCartUnknownProductIsNoOp(t *testing.T) {
	s := newTestStore(t)
	s.AddToCart("sess", testProduct("p1", 1000))

	s.RemoveFromCart("sess", "p999")

	if got := len(s.Cart("sess")); got != 1 {
		t.Fatalf("cart has %d lines, want 1", got)
	}
}

func TestCartsAreIsolatedBySession(t *testing.T) {
	s := newTestStore(t)
	s.AddToCart("sess-a", testProduct("p1", 1000))
	s.AddToCart("sess-b", testProduct("p2", 2000))

	if cart := s.Cart("sess-a"); len(cart) != 1 || cart[0].ID != "p1" {
		t.Errorf("session a cart: %+v", cart)
	}
	if cart := s.Cart("sess-b"); len(cart) != 1 || cart[0].ID != "p2" {
		t.Errorf("session b cart: %+v", cart)
	}

	s.ClearCart("sess-a")
	if got := len(s.Cart("sess-a")); got != 0 {
		t.Errorf("cleared cart has %d lines", got)
	}
	if got := len(s.Cart("sess-b")); got != 1 {
		t.Errorf("other session's cart was touched: %d lines", got)
	}
}

func TestCartUsesDiscountPrice(t *testing.T) {
	s := newTestStore(t)
	p := domain.Product{ID: "p1", Name: "Offer", Price: 10000, IsOffer: true, DiscountPrice: 8000, Stock: 5}
	s.AddToCart("sess", p)
	s.AddToCart("sess", p)

	if got := s.CartSubtotal("sess"); got != 16000 {
		t.Fatalf("subtotal %d, want 16000 at the discount price", got)
	}
}
