package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/storeline/storeline-server/internal/model"
)

// hashCost matches the work factor the credential records were created
// with. Raising it only affects newly created hashes.
const hashCost = 10

var _ model.PasswordHasher = (*Bcrypt)(nil)

// Bcrypt implements PasswordHasher using the bcrypt KDF.
type Bcrypt struct{}

// NewBcrypt creates a new bcrypt password hasher.
func NewBcrypt() *Bcrypt {
	return &Bcrypt{}
}

// Hash derives a one-way hash of the password.
func (b *Bcrypt) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether the password matches the stored hash.
func (b *Bcrypt) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
