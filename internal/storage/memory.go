package storage

import (
	"context"
	"errors"
	"sync"
)

// MemoryProvider is an in-process Provider used in tests and as a no-setup
// default. It still round-trips values through the record encoding so tests
// exercise the same code path as the durable backends.
type MemoryProvider struct {
	mu      sync.RWMutex
	records map[Collection][]byte

	// FailSaves makes every Save return an error, for exercising the
	// persistence-is-best-effort contract.
	FailSaves bool
}

// NewMemoryProvider returns an empty in-memory provider.
func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{records: make(map[Collection][]byte)}
}

func (p *MemoryProvider) Load(_ context.Context, c Collection, into any) error {
	p.mu.RLock()
	data, ok := p.records[c]
	p.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}
	if err := Decode(data, into); err != nil {
		return ErrNotFound
	}
	return nil
}

func (p *MemoryProvider) Save(_ context.Context, c Collection, value any) error {
	if p.FailSaves {
		return errSaveFailed
	}
	data, err := Encode(value)
	if err != nil {
		return err
	}
	p.mu.Lock()
	p.records[c] = data
	p.mu.Unlock()
	return nil
}

func (p *MemoryProvider) Reset(_ context.Context) error {
	p.mu.Lock()
	p.records = make(map[Collection][]byte)
	p.mu.Unlock()
	return nil
}

func (p *MemoryProvider) Ping(_ context.Context) error {
	return nil
}

var errSaveFailed = errors.New("save failed")
