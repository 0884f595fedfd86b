// Package store holds the authoritative in-memory storefront state: products,
// orders, carts, chat messages and the audit trail. Every mutation goes
// through the Store so derived views stay consistent, and each mutation is
// mirrored to the persistence provider best-effort: a failed save is logged
// and never rolls back memory.
package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"sama-store/internal/domain"
	"sama-store/internal/storage"

	"go.uber.org/zap"
)

// timeNow is swapped out in tests that need a fixed clock.
var timeNow = time.Now

var (
	ErrProductNotFound = errors.New("product not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrEmptyOrder      = errors.New("order has no items")
	ErrBlankMessage    = errors.New("message text is blank")
	ErrInvalidStatus   = errors.New("unknown order status")
	ErrStatusRegress   = errors.New("order status cannot move backwards")
)

// Store is the single writer for all storefront collections. The mutex is the
// whole consistency mechanism: callers never touch collections directly.
type Store struct {
	mu       sync.Mutex
	provider storage.Provider
	logger   *zap.Logger

	products []domain.Product
	orders   []domain.Order
	chats    []domain.ChatMessage
	logs     []domain.AuditLog
	carts    map[string][]domain.CartItem
}

// New loads persisted state from the provider. A store that has never been
// written starts with the default catalog, which is persisted immediately.
func New(ctx context.Context, provider storage.Provider, logger *zap.Logger) *Store {
	s := &Store{
		provider: provider,
		logger:   logger,
		carts:    make(map[string][]domain.CartItem),
	}

	if err := provider.Load(ctx, storage.CollectionProducts, &s.products); err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.Warn("Failed to load products, using default catalog", zap.Error(err))
		}
		s.products = DefaultCatalog()
		s.persist(ctx, storage.CollectionProducts, s.products)
	}
	if err := provider.Load(ctx, storage.CollectionOrders, &s.orders); err != nil && !errors.Is(err, storage.ErrNotFound) {
		logger.Warn("Failed to load orders", zap.Error(err))
	}
	if err := provider.Load(ctx, storage.CollectionChats, &s.chats); err != nil && !errors.Is(err, storage.ErrNotFound) {
		logger.Warn("Failed to load chats", zap.Error(err))
	}
	if err := provider.Load(ctx, storage.CollectionLogs, &s.logs); err != nil && !errors.Is(err, storage.ErrNotFound) {
		logger.Warn("Failed to load audit logs", zap.Error(err))
	}

	return s
}

// persist mirrors one collection to the provider. Persistence and the
// in-memory mutation are independent failure domains: the running session's
// state is the source of truth, so errors are only logged.
func (s *Store) persist(ctx context.Context, c storage.Collection, value any) {
	if err := s.provider.Save(ctx, c, value); err != nil {
		s.logger.Error("Failed to persist collection",
			zap.String("collection", string(c)),
			zap.Error(err),
		)
	}
}

// Reset clears every persisted record and reinitializes the default catalog.
// Carts and session state are dropped with everything else.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.provider.Reset(ctx); err != nil {
		return err
	}

	s.products = DefaultCatalog()
	s.orders = nil
	s.chats = nil
	s.logs = nil
	s.carts = make(map[string][]domain.CartItem)
	s.persist(ctx, storage.CollectionProducts, s.products)
	return nil
}
