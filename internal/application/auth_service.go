package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/connecta/identity-service/internal/cache"
	"github.com/connecta/identity-service/internal/domain/entity"
	"github.com/connecta/identity-service/internal/domain/repository"
	"github.com/connecta/identity-service/pkg/helpers"
)

// RegisteredEvent is the fire-and-forget payload published after a
// successful registration for downstream services to consume.
type RegisteredEvent struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Email       string             `json:"email"`
	ProfileKind entity.ProfileKind `json:"profile_kind"`
	Timestamp   int64              `json:"timestamp"`
}

// EventPublisher notifies external collaborators. A publish failure
// must never fail or roll back the operation that produced the event.
type EventPublisher interface {
	PublishJSON(ctx context.Context, routingKey string, body any) error
}

// AuthService orchestrates registration and login.
type AuthService struct {
	Repo   repository.IdentityRepository
	Cache  cache.IdentityCache
	Codec  *helpers.TokenCodec
	Pub    EventPublisher
	Logger *logrus.Logger
}

func NewAuthService(repo repository.IdentityRepository, c cache.IdentityCache, codec *helpers.TokenCodec, pub EventPublisher, logger *logrus.Logger) *AuthService {
	return &AuthService{Repo: repo, Cache: c, Codec: codec, Pub: pub, Logger: logger}
}

// RegisterInput carries already shape-validated fields; field format
// checks (name length, email shape, phone pattern) happen at the HTTP
// boundary before the core is reached.
type RegisterInput struct {
	Name        string
	Email       string
	Phone       string
	Password    string
	ProfileKind string
}

// Register creates a new active identity. The ExistsByEmail pre-check
// gives a fast answer for the common case, but the insert itself is the
// real uniqueness gate: the store's unique constraint decides races, so
// two concurrent registrations with the same email cannot both succeed.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*entity.Identity, error) {
	kind, ok := entity.ParseProfileKind(in.ProfileKind)
	if !ok {
		return nil, ErrInvalidProfileKind
	}

	taken, err := s.Repo.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	ident := &entity.Identity{
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		PasswordHash: hash,
		ProfileKind:  kind,
		Active:       true,
	}
	if err := s.Repo.Create(ctx, ident); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	// Populate, not invalidate: the very next lookup is usually the
	// freshly registered account itself.
	s.Cache.Set(ctx, ident)
	s.publishRegistered(ctx, ident)

	s.Logger.WithFields(logrus.Fields{
		"identity_id":  ident.ID,
		"profile_kind": ident.ProfileKind,
	}).Info("identity registered")

	return ident, nil
}

// Authenticate verifies the credential and lifecycle state and returns
// the identity for token issuance by the caller.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*entity.Identity, error) {
	ident, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !helpers.CheckPassword(ident.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	if !ident.Active {
		return nil, ErrAccountDeactivated
	}

	// Lookups by email go to the store; keep the id-keyed cache warm
	// for the authenticated requests that follow.
	s.Cache.Set(ctx, ident)
	return ident, nil
}

// IssueToken signs a bearer token for an authenticated identity.
func (s *AuthService) IssueToken(ident *entity.Identity) (string, time.Time, error) {
	return s.Codec.Issue(ident)
}

func (s *AuthService) publishRegistered(ctx context.Context, ident *entity.Identity) {
	if s.Pub == nil {
		return
	}
	event := RegisteredEvent{
		ID:          ident.ID,
		Name:        ident.Name,
		Email:       ident.Email,
		ProfileKind: ident.ProfileKind,
		Timestamp:   time.Now().UnixMilli(),
	}
	if err := s.Pub.PublishJSON(ctx, helpers.RoutingKeyRegistered, event); err != nil {
		// Swallowed on purpose: registration already committed.
		s.Logger.WithError(err).WithField("identity_id", ident.ID).Warn("registered event publish failed")
	}
}
