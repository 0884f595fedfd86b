package store

import (
	"context"
	"strings"

	"sama-store/internal/domain"
	"sama-store/internal/storage"
)

// Products returns a snapshot of the catalog.
func (s *Store) Products() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

// ProductByID looks up one product.
func (s *Store) ProductByID(id string) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, ErrProductNotFound
}

// SearchProducts filters the catalog by category and a case-insensitive text
// query over name and description. Empty arguments match everything.
func (s *Store) SearchProducts(category, query string) []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	query = strings.ToLower(strings.TrimSpace(query))
	var out []domain.Product
	for _, p := range s.products {
		if category != "" && p.Category != category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// AddProduct appends a new product to the catalog.
func (s *Store) AddProduct(ctx context.Context, p domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append(s.products, p)
	s.persist(ctx, storage.CollectionProducts, s.products)
}

// UpdateProduct fully replaces the record with the same id. There is no
// partial-field merge.
func (s *Store) UpdateProduct(ctx context.Context, p domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == p.ID {
			s.products[i] = p
			s.persist(ctx, storage.CollectionProducts, s.products)
			return nil
		}
	}
	return ErrProductNotFound
}

// DeleteProduct removes a product from the catalog.
func (s *Store) DeleteProduct(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			s.persist(ctx, storage.CollectionProducts, s.products)
			return nil
		}
	}
	return ErrProductNotFound
}
