package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a salted bcrypt digest; every call salts fresh,
// so hashing the same plaintext twice yields different digests.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword verifies a plaintext against a stored digest. It fails
// closed: a malformed digest reports a mismatch instead of an error.
func CheckPassword(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
