package passwords

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash(t *testing.T) {
	first, err := Hash("password")
	require.NoError(t, err)

	assert.Len(t, first, EncodedLength)
	assert.True(t, strings.HasPrefix(first, "$argon2i$v=19$m=131072,t=7,p=1$"), first)
	assert.Equal(t, Argon2i, Algorithm(first))

	second, err := Hash("password")
	require.NoError(t, err)
	assert.NotEqual(t, first, second, "salt must differ between calls")
}

func TestHashWithParams(t *testing.T) {
	cheap := Params{Time: 1, Memory: 8 * 1024, Threads: 1, SaltLen: 16, KeyLen: 32}

	hash, err := HashWithParams("secret", cheap)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2i$v=19$m=8192,t=1,p=1$"), hash)

	_, err = HashWithParams("", cheap)
	assert.ErrorIs(t, err, ErrEmptyPassword)
}

func TestAlgorithm(t *testing.T) {
	tests := []struct {
		name string
		hash string
		want string
	}{
		{"argon2i", "$argon2i$v=19$m=65536,t=7,p=1$c2FsdA$a2V5", Argon2i},
		{"argon2id", "$argon2id$v=19$m=65536,t=4,p=1$c2FsdA$a2V5", Argon2id},
		{"bcrypt 2y", "$2y$10$abcdefghijklmnopqrstuv", Bcrypt},
		{"bcrypt 2b", "$2b$12$abcdefghijklmnopqrstuv", Bcrypt},
		{"unknown tag", "$scrypt$ln=16,r=8,p=1$salt$key", ""},
		{"no prefix", "argon2i$v=19$m=65536", ""},
		{"single segment", "$argon2i", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Algorithm(tt.hash))
		})
	}
}
