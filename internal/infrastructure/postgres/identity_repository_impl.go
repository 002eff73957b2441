package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/connecta/identity-service/internal/domain/entity"
	"github.com/connecta/identity-service/internal/domain/repository"
)

const uniqueViolation = "23505"

type IdentityRepository struct {
	pool *pgxpool.Pool
}

func NewIdentityRepository(pool *pgxpool.Pool) *IdentityRepository {
	return &IdentityRepository{pool: pool}
}

func (r *IdentityRepository) GetByID(ctx context.Context, id string) (*entity.Identity, error) {
	return r.getBy(ctx, `
		SELECT id, name, email, phone, password_hash, profile_kind, active, created_at, updated_at
		FROM identities
		WHERE id = $1
	`, id)
}

func (r *IdentityRepository) GetByEmail(ctx context.Context, email string) (*entity.Identity, error) {
	return r.getBy(ctx, `
		SELECT id, name, email, phone, password_hash, profile_kind, active, created_at, updated_at
		FROM identities
		WHERE email = $1
	`, email)
}

func (r *IdentityRepository) getBy(ctx context.Context, query string, arg any) (*entity.Identity, error) {
	ident := &entity.Identity{}
	row := r.pool.QueryRow(ctx, query, arg)
	if err := row.Scan(&ident.ID, &ident.Name, &ident.Email, &ident.Phone, &ident.PasswordHash,
		&ident.ProfileKind, &ident.Active, &ident.CreatedAt, &ident.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return ident, nil
}

func (r *IdentityRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM identities WHERE email = $1)
	`, email).Scan(&exists)
	return exists, err
}

// Create inserts the identity. Email uniqueness is enforced by the
// unique index on identities.email; a concurrent duplicate insert
// surfaces as ErrEmailTaken rather than a race.
func (r *IdentityRepository) Create(ctx context.Context, ident *entity.Identity) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO identities (name, email, phone, password_hash, profile_kind, active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, ident.Name, ident.Email, ident.Phone, ident.PasswordHash, ident.ProfileKind, ident.Active)

	if err := row.Scan(&ident.ID, &ident.CreatedAt, &ident.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return repository.ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *IdentityRepository) Update(ctx context.Context, ident *entity.Identity) error {
	ident.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE identities
		SET name = $1, phone = $2, password_hash = $3, active = $4, updated_at = $5
		WHERE id = $6
	`, ident.Name, ident.Phone, ident.PasswordHash, ident.Active, ident.UpdatedAt, ident.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.IdentityRepository = (*IdentityRepository)(nil)
