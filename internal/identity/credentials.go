package identity

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// Scheme isolates how credentials are stored and compared. Every credential
// check in the identity service goes through a single Scheme, so a hashing
// scheme can replace the legacy stored-as-given format without touching any
// caller.
type Scheme interface {
	// Hash converts a plaintext password into its stored representation.
	Hash(password string) (string, error)

	// Verify reports whether candidate matches the stored representation.
	Verify(stored string, candidate string) bool
}

// PlainScheme stores the password as given and compares in constant time.
// This matches the on-device data written by earlier versions of the client,
// which is why it remains the default.
type PlainScheme struct{}

func (PlainScheme) Hash(password string) (string, error) {
	return password, nil
}

func (PlainScheme) Verify(stored string, candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
}

// BcryptScheme stores bcrypt hashes. Not compatible with directories written
// under PlainScheme.
type BcryptScheme struct{}

func (BcryptScheme) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (BcryptScheme) Verify(stored string, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(candidate)) == nil
}
