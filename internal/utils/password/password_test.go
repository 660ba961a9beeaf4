package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// testCost используется в тестах для ускорения выполнения
const testCost = bcrypt.MinCost

func TestBCryptHasher_Hash(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{
			name:     "Valid password",
			password: "password123",
		},
		{
			name:     "Password with special characters",
			password: "p@ssw0rd!#$%",
		},
		{
			name:     "Unicode password counted in runes",
			password: "pokébåll",
		},
		{
			name:     "Too short",
			password: "abc",
			wantErr:  ErrPasswordTooShort,
		},
		{
			name:     "Empty password",
			password: "",
			wantErr:  ErrPasswordTooShort,
		},
		{
			name:     "Longer than bcrypt accepts",
			password: strings.Repeat("a", 73),
			wantErr:  ErrPasswordTooLong,
		},
	}

	hasher := NewBCryptHasher(testCost, 6)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := hasher.Hash(tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, hash)
				return
			}

			require.NoError(t, err)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte(tt.password)))
		})
	}
}

func TestBCryptHasher_Check(t *testing.T) {
	hasher := NewBCryptHasher(testCost, 6)

	hash, err := hasher.Hash("pikachu42")
	require.NoError(t, err)

	t.Run("Matching password", func(t *testing.T) {
		assert.NoError(t, hasher.Check(hash, "pikachu42"))
	})

	t.Run("Wrong password", func(t *testing.T) {
		assert.ErrorIs(t, hasher.Check(hash, "raichu42"), ErrMismatch)
	})

	t.Run("Empty hash", func(t *testing.T) {
		assert.ErrorIs(t, hasher.Check("", "pikachu42"), ErrMismatch)
	})

	t.Run("Malformed hash", func(t *testing.T) {
		err := hasher.Check("not-a-bcrypt-hash", "pikachu42")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrMismatch)
	})
}

func TestNewBCryptHasher_Defaults(t *testing.T) {
	h := NewBCryptHasher(1000, 0)
	assert.Equal(t, DefaultCost, h.cost)
	assert.Equal(t, DefaultMinLength, h.minLength)
}
