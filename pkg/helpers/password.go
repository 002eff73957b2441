package helpers

import "golang.org/x/crypto/bcrypt"

// bcrypt embeds a fresh random salt in every hash, so hashing the same
// plaintext twice yields different outputs, and comparison runs in time
// independent of where a mismatch occurs.
const hashCost = bcrypt.DefaultCost

// HashPassword hashes the plain text password using bcrypt
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), hashCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPassword reports whether plain matches the stored bcrypt hash.
// A malformed stored hash is indistinguishable from a wrong password.
func CheckPassword(hash string, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
