// Package passwords works with PHC-encoded password hashes.
//
// Only Argon2i is produced. Other algorithms are recognised so callers can
// reject them by name.
package passwords

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Algorithm names reported by Algorithm.
const (
	Argon2i  = "argon2i"
	Argon2id = "argon2id"
	Bcrypt   = "bcrypt"
)

// EncodedLength is the length of every hash produced by Hash with DefaultParams.
const EncodedLength = 97

// ErrEmptyPassword is returned when Hash is called with an empty password.
var ErrEmptyPassword = errors.New("password is empty")

// Params are the Argon2i cost parameters.
type Params struct {
	Time    uint32 // passes over memory
	Memory  uint32 // KiB
	Threads uint8
	SaltLen uint32
	KeyLen  uint32
}

// DefaultParams keep the encoded form at EncodedLength characters.
var DefaultParams = Params{
	Time:    7,
	Memory:  128 * 1024,
	Threads: 1,
	SaltLen: 16,
	KeyLen:  32,
}

// Hash derives an Argon2i key for password and returns it in the
// $argon2i$v=19$m=..,t=..,p=..$salt$key form.
func Hash(password string) (string, error) {
	return HashWithParams(password, DefaultParams)
}

// HashWithParams is Hash with explicit cost parameters.
func HashWithParams(password string, p Params) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	salt := make([]byte, p.SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("reading salt: %w", err)
	}

	key := argon2.Key([]byte(password), salt, p.Time, p.Memory, p.Threads, p.KeyLen)

	return fmt.Sprintf("$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		Argon2i, argon2.Version, p.Memory, p.Time, p.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Algorithm reports the algorithm an encoded hash declares, or "" when the
// prefix is not recognised.
func Algorithm(hash string) string {
	if !strings.HasPrefix(hash, "$") {
		return ""
	}
	tag, _, found := strings.Cut(hash[1:], "$")
	if !found {
		return ""
	}

	switch tag {
	case Argon2i, Argon2id:
		return tag
	case "2a", "2b", "2y":
		return Bcrypt
	default:
		return ""
	}
}
