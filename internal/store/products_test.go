package store

import (
	"context"
	"errors"
	"testing"
)

func TestSearchProducts(t *testing.T) {
	s := newTestStore(t)

	cases := []struct {
		name     string
		category string
		query    string
		wantIDs  []string
	}{
		{"no filters returns everything", "", "", []string{"p1", "p2", "p3"}},
		{"category filter", "Phones", "", []string{"p1"}},
		{"query matches name case-insensitively", "", "IPHONE", []string{"p1"}},
		{"query matches description", "", "farms", []string{"p2"}},
		{"category and query combined", "Electronics", "macbook", []string{"p3"}},
		{"no match", "", "zzzz", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := s.SearchProducts(tc.category, tc.query)
			if len(got) != len(tc.wantIDs) {
				t.Fatalf("%d results, want %d", len(got), len(tc.wantIDs))
			}
			for i, p := range got {
				if p.ID != tc.wantIDs[i] {
					t.Errorf("result %d is %s, want %s", i, p.ID, tc.wantIDs[i])
				}
			}
		})
	}
}

func TestUpdateProductReplacesRecord(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	p, err := s.ProductByID("p2")
	if err != nil {
		t.Fatalf("ProductByID failed: %v", err)
	}
	p.Price = 40000
	p.Stock = 99
	if err := s.UpdateProduct(ctx, p); err != nil {
		t.Fatalf("UpdateProduct failed: %v", err)
	}

	got, err := s.ProductByID("p2")
	if err != nil {
		t.Fatalf("ProductByID failed: %v", err)
	}
	if got.Price != 40000 || got.Stock != 99 {
		t.Fatalf("updated product: %+v", got)
	}

	if err := s.UpdateProduct(ctx, testProduct("nope", 1)); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("update of unknown product: got %v, want ErrProductNotFound", err)
	}
}

func TestDeleteProduct(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	if err := s.DeleteProduct(ctx, "p1"); err != nil {
		t.Fatalf("DeleteProduct failed: %v", err)
	}
	if _, err := s.ProductByID("p1"); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("deleted product still present: %v", err)
	}
	if err := s.DeleteProduct(ctx, "p1"); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("second delete: got %v, want ErrProductNotFound", err)
	}
}
