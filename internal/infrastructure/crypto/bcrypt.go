package crypto

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/peopledesk/workforce-api/internal/core/ports"
)

// BcryptHasher implements ports.PasswordHasher on top of bcrypt. bcrypt
// embeds a random per-hash salt, so two hashes of the same plaintext differ.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher using the given cost. Costs outside the
// valid bcrypt range fall back to the library default.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify checks a plaintext against a stored hash. A match produced with a
// cost below the hasher's current cost yields VerifySuccessRehash so callers
// can upgrade the stored hash.
func (h *BcryptHasher) Verify(storedHash, plaintext string) ports.VerifyResult {
	if bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(plaintext)) != nil {
		return ports.VerifyFailed
	}
	if cost, err := bcrypt.Cost([]byte(storedHash)); err == nil && cost < h.cost {
		return ports.VerifySuccessRehash
	}
	return ports.VerifySuccess
}
