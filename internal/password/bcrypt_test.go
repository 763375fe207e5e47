package password

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBcrypt_HashAndVerify(t *testing.T) {
	h := NewBcrypt()

	hash, err := h.Hash("correct horse battery staple")
	require.NoError(t, err)
	require.NotEqual(t, "correct horse battery staple", hash)

	require.True(t, h.Verify("correct horse battery staple", hash))
	require.False(t, h.Verify("wrong password", hash))
}

func TestBcrypt_VerifyGarbageHash(t *testing.T) {
	h := NewBcrypt()
	require.False(t, h.Verify("anything", "not-a-bcrypt-hash"))
}
