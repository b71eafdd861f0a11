package security

import "golang.org/x/crypto/bcrypt"

// cost 10, fixed at build time
const bcryptCost = 10

// HashPassword hashes a plain text password with bcrypt. The salt is
// generated per call and embedded in the returned hash string.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)

	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// CheckPassword compares a bcrypt hash with a plaintext password using
// bcrypt's own constant-time comparison.
func CheckPassword(hash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}
