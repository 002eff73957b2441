package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/connecta/identity-service/internal/domain/entity"
)

// ErrTokenExpired is returned by Validate when the token was once valid
// but is past its expiry (outside the configured leeway).
var ErrTokenExpired = errors.New("token expired")

// ErrTokenInvalid covers every other validation failure: garbled input,
// a tampered payload, or a signature from the wrong key.
var ErrTokenInvalid = errors.New("token invalid")

// Claims is the decoded payload of a validated token.
type Claims struct {
	Email string      `json:"email"`
	Role  entity.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenCodec issues and validates stateless bearer tokens (HS256).
// Tokens are self-contained; there is no server-side revocation, so a
// deactivated identity keeps any already-issued token until its TTL.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
	leeway time.Duration
	issuer string

	// now is overridable in tests; nil means time.Now.
	now func() time.Time
}

func NewTokenCodec(secret string, ttl, leeway time.Duration, issuer string) *TokenCodec {
	return &TokenCodec{
		secret: []byte(secret),
		ttl:    ttl,
		leeway: leeway,
		issuer: issuer,
	}
}

// WithClock replaces the time source; used by tests to pin issuance
// and validation instants.
func (c *TokenCodec) WithClock(now func() time.Time) *TokenCodec {
	c.now = now
	return c
}

func (c *TokenCodec) clock() time.Time {
	if c.now != nil {
		return c.now()
	}
	return time.Now()
}

// Issue signs a token for the identity. The role claim is derived from
// the profile kind at issuance time.
func (c *TokenCodec) Issue(ident *entity.Identity) (string, time.Time, error) {
	now := c.clock()
	exp := now.Add(c.ttl)
	claims := &Claims{
		Email: ident.Email,
		Role:  entity.RoleFor(ident.ProfileKind),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    c.issuer,
			Subject:   ident.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(c.secret)
	return s, exp, err
}

// Validate verifies signature and expiry and returns the decoded claims.
// Expiry is checked with the configured leeway to tolerate clock drift
// between issuing and validating nodes.
func (c *TokenCodec) Validate(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return c.secret, nil
	}, jwt.WithLeeway(c.leeway), jwt.WithTimeFunc(c.clock))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !tkn.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
