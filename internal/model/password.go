package model

// PasswordHasher provides one-way hashing and verification for stored
// credentials.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}
