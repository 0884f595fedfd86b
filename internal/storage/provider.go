// Package storage implements the persistence provider: an opaque key-value
// record store holding the four persisted collections behind a reversible
// obfuscation encoding. The encoding is not cryptographic protection and must
// never be treated as such.
package storage

import (
	"context"
	"errors"
)

// Collection identifies one of the persisted record collections.
type Collection string

// Fixed storage keys for the persisted collections.
const (
	CollectionProducts Collection = "sama_store_products"
	CollectionOrders   Collection = "sama_store_orders"
	CollectionChats    Collection = "sama_store_chats"
	CollectionLogs     Collection = "sama_store_logs"
)

// Collections lists every persisted collection, in reset order.
var Collections = []Collection{CollectionProducts, CollectionOrders, CollectionChats, CollectionLogs}

// ErrNotFound is returned by Load when a collection has never been written or
// its stored form cannot be decoded. Callers fall back to their defaults.
var ErrNotFound = errors.New("collection not found")

// Provider is the injectable persistence contract. Writes mirror in-memory
// state best-effort; a failed Save must never roll back the caller's state.
type Provider interface {
	// Load decodes a stored collection into the given value. Returns
	// ErrNotFound when nothing usable is stored under the key.
	Load(ctx context.Context, c Collection, into any) error

	// Save encodes and stores the value under the collection key, replacing
	// any previous record.
	Save(ctx context.Context, c Collection, value any) error

	// Reset deletes every persisted collection.
	Reset(ctx context.Context) error

	// Ping verifies the backing store is reachable.
	Ping(ctx context.Context) error
}
