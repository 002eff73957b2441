package application

import "errors"

var (
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password at login. The two are deliberately indistinguishable to
	// callers so responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailTaken is returned by Register when the email belongs to
	// any existing identity, deactivated ones included.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidProfileKind is returned when the requested profile kind
	// does not map to a known value.
	ErrInvalidProfileKind = errors.New("invalid profile kind")

	// ErrAccountDeactivated is returned when the credential is correct
	// but the identity has been deactivated.
	ErrAccountDeactivated = errors.New("account deactivated")

	// ErrIdentityNotFound is returned by profile operations; login never
	// surfaces it.
	ErrIdentityNotFound = errors.New("identity not found")
)
