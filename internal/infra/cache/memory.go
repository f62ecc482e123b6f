package cache

import (
	"context"
	"sync"
	"time"

	"salon-booking/internal/pkg/clock"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryBackend is the in-process fallback used when Redis is disabled or
// unreachable. Expiry is checked passively on read.
type MemoryBackend struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	clock   clock.Clock
}

func NewMemoryBackend(clk clock.Clock) *MemoryBackend {
	return &MemoryBackend{
		entries: make(map[string]memoryEntry),
		clock:   clk,
	}
}

func (b *MemoryBackend) Get(_ context.Context, key string) ([]byte, bool, error) {
	b.mu.RLock()
	entry, ok := b.entries[key]
	b.mu.RUnlock()

	if !ok {
		return nil, false, nil
	}
	if b.clock.Now().After(entry.expiresAt) {
		b.mu.Lock()
		delete(b.entries, key)
		b.mu.Unlock()
		return nil, false, nil
	}
	return entry.value, true, nil
}

func (b *MemoryBackend) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries[key] = memoryEntry{
		value:     value,
		expiresAt: b.clock.Now().Add(ttl),
	}
	return nil
}

func (b *MemoryBackend) Delete(_ context.Context, key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.entries, key)
	return nil
}

// CleanupExpired drops expired entries eagerly. Reads already ignore expired
// entries; this only bounds memory growth.
func (b *MemoryBackend) CleanupExpired() {
	now := b.clock.Now()
	b.mu.Lock()
	defer b.mu.Unlock()
	for key, entry := range b.entries {
		if now.After(entry.expiresAt) {
			delete(b.entries, key)
		}
	}
}

func (b *MemoryBackend) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.entries)
}
