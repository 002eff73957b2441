package repository

import (
	"context"
	"errors"

	"github.com/connecta/identity-service/internal/domain/entity"
)

// ErrNotFound is returned when an identity does not exist.
var ErrNotFound = errors.New("identity not found")

// ErrEmailTaken is returned by Create when the email is already used by
// any identity, active or not. Implementations must enforce this
// atomically with the insert (a unique constraint, not check-then-insert).
var ErrEmailTaken = errors.New("email already registered")

// IdentityRepository defines the persistence contract for identities.
type IdentityRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Identity, error)
	GetByEmail(ctx context.Context, email string) (*entity.Identity, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// Create assigns ID, CreatedAt and UpdatedAt on success.
	Create(ctx context.Context, identity *entity.Identity) error
	Update(ctx context.Context, identity *entity.Identity) error
}
