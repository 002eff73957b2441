package entity

import (
	"strings"
	"time"
)

// ProfileKind classifies an identity as either side of a mentorship.
type ProfileKind string

const (
	ProfileMentor ProfileKind = "MENTOR"
	ProfileMentee ProfileKind = "MENTEE"
)

// ParseProfileKind maps user input onto a known profile kind.
// Matching is case-insensitive; anything else is rejected.
func ParseProfileKind(s string) (ProfileKind, bool) {
	switch ProfileKind(strings.ToUpper(strings.TrimSpace(s))) {
	case ProfileMentor:
		return ProfileMentor, true
	case ProfileMentee:
		return ProfileMentee, true
	}
	return "", false
}

// Identity is the aggregate root for the account domain.
// PasswordHash is a bcrypt hash; the plaintext never leaves the
// hashing call that produced it.
type Identity struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	Phone        string      `json:"phone"`
	PasswordHash string      `json:"-"`
	ProfileKind  ProfileKind `json:"profile_kind"`
	Active       bool        `json:"active"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
