package tokencache

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	expiresAt time.Time
}

// MemoryDenylist is a process-local Denylist used in tests and single-node
// deployments without redis. Expired entries are dropped lazily on read.
type MemoryDenylist struct {
	mu   sync.RWMutex
	data map[string]entry
}

func NewMemoryDenylist() *MemoryDenylist {
	return &MemoryDenylist{
		data: make(map[string]entry),
	}
}

func (d *MemoryDenylist) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.data[jti] = entry{expiresAt: time.Now().Add(ttl)}
	return nil
}

func (d *MemoryDenylist) IsRevoked(_ context.Context, jti string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	e, ok := d.data[jti]
	if !ok {
		return false, nil
	}
	if time.Now().After(e.expiresAt) {
		delete(d.data, jti)
		return false, nil
	}
	return true, nil
}
