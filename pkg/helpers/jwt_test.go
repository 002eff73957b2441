package helpers_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/connecta/identity-service/internal/domain/entity"
	"github.com/connecta/identity-service/pkg/helpers"
)

func testIdentity(kind entity.ProfileKind) *entity.Identity {
	return &entity.Identity{
		ID:          "3f1e9a6e-0000-4000-8000-000000000001",
		Name:        "Ana Silva",
		Email:       "ana@x.com",
		ProfileKind: kind,
		Active:      true,
	}
}

func TestTokenCodec_RoundTrip(t *testing.T) {
	codec := helpers.NewTokenCodec("test-secret", 24*time.Hour, 30*time.Second, "connecta-test")

	tests := []struct {
		name string
		kind entity.ProfileKind
		want entity.Role
	}{
		{name: "mentor", kind: entity.ProfileMentor, want: entity.RoleMentor},
		{name: "mentee", kind: entity.ProfileMentee, want: entity.RoleMentee},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ident := testIdentity(tt.kind)
			token, exp, err := codec.Issue(ident)
			require.NoError(t, err)
			assert.NotEmpty(t, token)
			assert.WithinDuration(t, time.Now().Add(24*time.Hour), exp, time.Minute)

			claims, err := codec.Validate(token)
			require.NoError(t, err)
			assert.Equal(t, ident.ID, claims.Subject)
			assert.Equal(t, ident.Email, claims.Email)
			assert.Equal(t, tt.want, claims.Role)
		})
	}
}

func TestTokenCodec_Expiry(t *testing.T) {
	const (
		ttl    = 24 * time.Hour
		leeway = 30 * time.Second
	)
	issuedAt := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	codec := helpers.NewTokenCodec("test-secret", ttl, leeway, "connecta-test").
		WithClock(func() time.Time { return issuedAt })
	token, _, err := codec.Issue(testIdentity(entity.ProfileMentor))
	require.NoError(t, err)

	tests := []struct {
		name    string
		at      time.Time
		wantErr error
	}{
		{name: "just before expiry", at: issuedAt.Add(ttl - time.Second)},
		{name: "within leeway after expiry", at: issuedAt.Add(ttl + leeway - time.Second)},
		{name: "past expiry and leeway", at: issuedAt.Add(ttl + leeway + time.Second), wantErr: helpers.ErrTokenExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			at := tt.at
			codec.WithClock(func() time.Time { return at })
			_, err := codec.Validate(token)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestTokenCodec_Invalid(t *testing.T) {
	codec := helpers.NewTokenCodec("test-secret", time.Hour, 30*time.Second, "connecta-test")
	token, _, err := codec.Issue(testIdentity(entity.ProfileMentee))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-token"},
		{name: "tampered payload", token: token[:len(token)-4] + "zzzz"},
		{name: "empty", token: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.Validate(tt.token)
			assert.ErrorIs(t, err, helpers.ErrTokenInvalid)
		})
	}

	t.Run("wrong secret", func(t *testing.T) {
		other := helpers.NewTokenCodec("other-secret", time.Hour, 30*time.Second, "connecta-test")
		_, err := other.Validate(token)
		assert.ErrorIs(t, err, helpers.ErrTokenInvalid)
	})
}
