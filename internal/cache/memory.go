package cache

import (
	"context"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/connecta/identity-service/internal/domain/entity"
)

type memoryEntry struct {
	identity  entity.Identity
	expiresAt time.Time
}

// Memory is a bounded in-process LRU cache. It guarantees freshness
// only within its own process; multi-node deployments should use the
// Redis backend instead.
type Memory struct {
	entries *lru.Cache[string, memoryEntry]
	ttl     time.Duration
}

// NewMemory builds an LRU cache holding at most capacity identities.
// A ttl of zero disables staleness expiry, leaving eviction to the LRU.
func NewMemory(capacity int, ttl time.Duration) (*Memory, error) {
	entries, err := lru.New[string, memoryEntry](capacity)
	if err != nil {
		return nil, err
	}
	return &Memory{entries: entries, ttl: ttl}, nil
}

func (m *Memory) Get(_ context.Context, id string) (*entity.Identity, bool) {
	e, ok := m.entries.Get(id)
	if !ok {
		return nil, false
	}
	if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
		m.entries.Remove(id)
		return nil, false
	}
	ident := e.identity
	return &ident, true
}

func (m *Memory) Set(_ context.Context, identity *entity.Identity) {
	if identity == nil || identity.ID == "" {
		return
	}
	e := memoryEntry{identity: *identity}
	if m.ttl > 0 {
		e.expiresAt = time.Now().Add(m.ttl)
	}
	m.entries.Add(identity.ID, e)
}

func (m *Memory) Invalidate(_ context.Context, id string) {
	m.entries.Remove(id)
}

// Len reports how many identities are currently cached.
func (m *Memory) Len() int {
	return m.entries.Len()
}

var _ IdentityCache = (*Memory)(nil)
