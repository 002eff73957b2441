// Package cache provides the identity lookup cache. The application
// layer reads through it: a miss falls back to the repository and the
// loaded record is stored for subsequent lookups. Failed lookups are
// never cached, so a later registration is observed immediately.
package cache

import (
	"context"

	"github.com/connecta/identity-service/internal/domain/entity"
)

// IdentityCache maps identity id -> Identity. Entries are bounded:
// the memory backend evicts least-recently-used entries past capacity,
// the Redis backend expires them by TTL.
//
// Invalidate must be called by every mutating operation before that
// operation returns, so the next Get observes fresh state. The cache is
// an injected dependency, never a process-wide singleton.
type IdentityCache interface {
	// Get returns the cached identity and whether it was present.
	Get(ctx context.Context, id string) (*entity.Identity, bool)
	Set(ctx context.Context, identity *entity.Identity)
	Invalidate(ctx context.Context, id string)
}
