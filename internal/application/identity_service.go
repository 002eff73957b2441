package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/connecta/identity-service/internal/cache"
	"github.com/connecta/identity-service/internal/domain/entity"
	"github.com/connecta/identity-service/internal/domain/repository"
	"github.com/connecta/identity-service/pkg/helpers"
)

// IdentityService owns identity reads and the mutating operations that
// must keep the cache coherent: every mutation invalidates the cached
// entry before it returns.
type IdentityService struct {
	Repo   repository.IdentityRepository
	Cache  cache.IdentityCache
	Logger *logrus.Logger
}

func NewIdentityService(repo repository.IdentityRepository, c cache.IdentityCache, logger *logrus.Logger) *IdentityService {
	return &IdentityService{Repo: repo, Cache: c, Logger: logger}
}

// GetByID is a read-through lookup: cache hit wins, a miss loads from
// the store and populates the cache. Misses on nonexistent identities
// are not cached.
func (s *IdentityService) GetByID(ctx context.Context, id string) (*entity.Identity, error) {
	if ident, ok := s.Cache.Get(ctx, id); ok {
		return ident, nil
	}
	ident, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrIdentityNotFound
		}
		return nil, err
	}
	s.Cache.Set(ctx, ident)
	return ident, nil
}

// UpdateProfileInput carries partial updates; empty fields are left
// untouched. A non-empty password is re-hashed before storage.
type UpdateProfileInput struct {
	Name     string
	Phone    string
	Password string
}

func (s *IdentityService) UpdateProfile(ctx context.Context, id string, in UpdateProfileInput) (*entity.Identity, error) {
	ident, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrIdentityNotFound
		}
		return nil, err
	}

	if in.Name != "" {
		ident.Name = in.Name
	}
	if in.Phone != "" {
		ident.Phone = in.Phone
	}
	if in.Password != "" {
		hash, err := helpers.HashPassword(in.Password)
		if err != nil {
			return nil, err
		}
		ident.PasswordHash = hash
	}

	if err := s.Repo.Update(ctx, ident); err != nil {
		return nil, err
	}
	s.Cache.Invalidate(ctx, id)

	s.Logger.WithField("identity_id", id).Info("identity profile updated")
	return ident, nil
}

// Deactivate moves the identity to its terminal state. Deactivating an
// already-deactivated identity is a no-op, not an error. Tokens issued
// before deactivation stay valid until their TTL; callers treat the TTL
// as the upper bound of residual access.
func (s *IdentityService) Deactivate(ctx context.Context, id string) error {
	ident, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrIdentityNotFound
		}
		return err
	}
	if !ident.Active {
		return nil
	}

	ident.Active = false
	if err := s.Repo.Update(ctx, ident); err != nil {
		return err
	}
	s.Cache.Invalidate(ctx, id)

	s.Logger.WithField("identity_id", id).Info("identity deactivated")
	return nil
}
