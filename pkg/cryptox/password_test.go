package cryptox

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Hashing needs a pepper; point it at a throwaway file.
	pepperPath := filepath.Join(os.TempDir(), "cryptox-test-pepper")
	SetPepperPath(pepperPath)

	os.Remove(pepperPath)
	defer os.Remove(pepperPath)

	os.Exit(m.Run())
}

func TestHashPasswordProducesPHCFormat(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"simple password", "password123"},
		{"complex password", "P@ssw0rd!#$%^&*()"},
		{"long password", strings.Repeat("a", 100)},
		{"empty password", ""},
		{"whitespace password", "   spaces   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPassword(tt.password)
			require.NoError(t, err)
			require.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"))

			parts := strings.Split(hash, "$")
			require.Len(t, parts, 6)
			require.Contains(t, parts[3], "m=")
			require.Contains(t, parts[3], "t=")
			require.Contains(t, parts[3], "p=")
			require.NotEmpty(t, parts[4])
			require.NotEmpty(t, parts[5])
		})
	}
}

func TestHashPasswordUniqueSalts(t *testing.T) {
	password := "samepassword"

	hash1, err := HashPassword(password)
	require.NoError(t, err)
	hash2, err := HashPassword(password)
	require.NoError(t, err)

	require.NotEqual(t, hash1, hash2)

	require.NoError(t, VerifyPassword(password, hash1))
	require.NoError(t, VerifyPassword(password, hash2))
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct-password")
	require.NoError(t, err)

	t.Run("accepts the right password", func(t *testing.T) {
		require.NoError(t, VerifyPassword("correct-password", hash))
	})

	t.Run("rejects wrong passwords", func(t *testing.T) {
		for _, wrong := range []string{"wrong-password", "Correct-Password", "correct-password ", "", "correct-passwor"} {
			require.ErrorIs(t, VerifyPassword(wrong, hash), ErrPasswordMismatch)
		}
	})

	t.Run("rejects malformed hashes", func(t *testing.T) {
		require.Error(t, VerifyPassword("anything", "not-a-phc-hash"))
		require.Error(t, VerifyPassword("anything", "$bcrypt$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA"))
	})
}
