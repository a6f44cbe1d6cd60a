// Package password wraps bcrypt hashing behind a two-function API so the
// cost and algorithm live in exactly one place.
package password

import "golang.org/x/crypto/bcrypt"

// Hash produces a salted one-way digest of plain. bcrypt embeds a fresh
// random salt per call, so two hashes of the same input differ.
func Hash(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plain is the input that produced digest.
// A mismatch is a false, not an error.
func Verify(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
