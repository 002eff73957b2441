package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/connecta/identity-service/internal/domain/entity"
)

type redisIdentity struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Email        string             `json:"email"`
	Phone        string             `json:"phone"`
	PasswordHash string             `json:"password_hash"`
	ProfileKind  entity.ProfileKind `json:"profile_kind"`
	Active       bool               `json:"active"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// Redis caches identities as JSON values with a TTL. Because it is
// shared across processes, an invalidation on one node is observed by
// all of them, which the in-process backend cannot offer.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
	logger *logrus.Logger
}

func NewRedis(client *redis.Client, ttl time.Duration, logger *logrus.Logger) *Redis {
	return &Redis{client: client, ttl: ttl, logger: logger}
}

func identityKey(id string) string {
	return "cache:identity:" + id
}

// Get treats any Redis failure as a miss; the caller falls through to
// the store, so a degraded cache never blocks reads.
func (r *Redis) Get(ctx context.Context, id string) (*entity.Identity, bool) {
	raw, err := r.client.Get(ctx, identityKey(id)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) && r.logger != nil {
			r.logger.WithError(err).WithField("identity_id", id).Warn("identity cache read failed")
		}
		return nil, false
	}
	var stored redisIdentity
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, false
	}
	return &entity.Identity{
		ID:           stored.ID,
		Name:         stored.Name,
		Email:        stored.Email,
		Phone:        stored.Phone,
		PasswordHash: stored.PasswordHash,
		ProfileKind:  stored.ProfileKind,
		Active:       stored.Active,
		CreatedAt:    stored.CreatedAt,
		UpdatedAt:    stored.UpdatedAt,
	}, true
}

func (r *Redis) Set(ctx context.Context, identity *entity.Identity) {
	if identity == nil || identity.ID == "" {
		return
	}
	b, err := json.Marshal(redisIdentity{
		ID:           identity.ID,
		Name:         identity.Name,
		Email:        identity.Email,
		Phone:        identity.Phone,
		PasswordHash: identity.PasswordHash,
		ProfileKind:  identity.ProfileKind,
		Active:       identity.Active,
		CreatedAt:    identity.CreatedAt,
		UpdatedAt:    identity.UpdatedAt,
	})
	if err != nil {
		return
	}
	if err := r.client.Set(ctx, identityKey(identity.ID), b, r.ttl).Err(); err != nil && r.logger != nil {
		r.logger.WithError(err).WithField("identity_id", identity.ID).Warn("identity cache write failed")
	}
}

// Invalidate must not silently leave a stale entry behind: a delete
// failure is logged so the staleness window is visible in operations.
func (r *Redis) Invalidate(ctx context.Context, id string) {
	if err := r.client.Del(ctx, identityKey(id)).Err(); err != nil && r.logger != nil {
		r.logger.WithError(err).WithField("identity_id", id).Warn("identity cache invalidation failed")
	}
}

var _ IdentityCache = (*Redis)(nil)
