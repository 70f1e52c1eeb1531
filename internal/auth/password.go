package auth

import "golang.org/x/crypto/bcrypt"

// defaultBcryptCost balances login latency against brute-force resistance.
const defaultBcryptCost = 12

// PasswordHasher hashes and verifies passwords with bcrypt. The produced
// hash string is self-contained: it embeds the algorithm version, cost and
// random salt, so two hashes of the same password never match.
type PasswordHasher struct {
	cost int
}

func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{cost: defaultBcryptCost}
}

// Hash returns the bcrypt hash of password.
func (h *PasswordHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports whether password matches hash. Malformed hashes simply
// yield false; verification is constant-time on the digest comparison.
func (h *PasswordHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
