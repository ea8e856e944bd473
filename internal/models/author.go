package models

import (
	"encoding/json"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"github.com/sbilibin2017/author-registry/internal/passwords"
)

// Field limits.
const (
	ActivationTokenLength = 32
	AvatarURLMaxLength    = 255
	EmailMaxLength        = 128
	HashLength            = passwords.EncodedLength
	// UsernameMaxLength is the column width. Setters do not enforce it.
	UsernameMaxLength = 32
)

// Author is a user account on the content platform.
// Fields are only reachable through getters and validating setters.
type Author struct {
	id              uuid.UUID
	activationToken *string // nil once the account is activated
	avatarURL       string
	email           string
	passwordHash    string
	username        string
}

// NewAuthor builds an Author from all six fields, returning the first validation failure.
func NewAuthor(id uuid.UUID, activationToken *string, avatarURL, email, passwordHash, username string) (*Author, error) {
	a := &Author{}
	if err := a.SetID(id); err != nil {
		return nil, err
	}
	if err := a.SetActivationToken(activationToken); err != nil {
		return nil, err
	}
	if err := a.SetAvatarURL(avatarURL); err != nil {
		return nil, err
	}
	if err := a.SetEmail(email); err != nil {
		return nil, err
	}
	if err := a.SetPasswordHash(passwordHash); err != nil {
		return nil, err
	}
	if err := a.SetUsername(username); err != nil {
		return nil, err
	}
	return a, nil
}

// ID returns the author id.
func (a *Author) ID() uuid.UUID { return a.id }

// SetID assigns the id. The id cannot be changed once set.
func (a *Author) SetID(id uuid.UUID) error {
	if id == uuid.Nil {
		return fmt.Errorf("%w: author id is required", ErrInvalidFormat)
	}
	if a.id != uuid.Nil && a.id != id {
		return fmt.Errorf("%w: %s", ErrIDAlreadySet, a.id)
	}
	a.id = id
	return nil
}

// SetIDString parses the dashed or 32-hex form and assigns it.
func (a *Author) SetIDString(id string) error {
	parsed, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return fmt.Errorf("%w: author id: %v", ErrInvalidFormat, err)
	}
	return a.SetID(parsed)
}

// SetIDBytes assigns a raw 16-byte id.
func (a *Author) SetIDBytes(id []byte) error {
	parsed, err := uuid.FromBytes(id)
	if err != nil {
		return fmt.Errorf("%w: author id must be 16 bytes, got %d", ErrOutOfRange, len(id))
	}
	return a.SetID(parsed)
}

// ActivationToken returns the pending activation token, or nil when the account is active.
func (a *Author) ActivationToken() *string {
	if a.activationToken == nil {
		return nil
	}
	token := *a.activationToken
	return &token
}

// SetActivationToken stores a 32-character hex token. A nil token marks the account activated.
func (a *Author) SetActivationToken(token *string) error {
	if token == nil {
		a.activationToken = nil
		return nil
	}

	normalized := strings.ToLower(strings.TrimSpace(*token))
	if len(normalized) != ActivationTokenLength {
		return fmt.Errorf("%w: activation token must be %d characters", ErrInvalidFormat, ActivationTokenLength)
	}
	if err := validation.Validate(normalized, is.Hexadecimal); err != nil {
		return fmt.Errorf("%w: activation token: %v", ErrInvalidFormat, err)
	}

	a.activationToken = &normalized
	return nil
}

// IsActivated reports whether the activation token has been cleared.
func (a *Author) IsActivated() bool { return a.activationToken == nil }

// AvatarURL returns the avatar URL.
func (a *Author) AvatarURL() string { return a.avatarURL }

// SetAvatarURL stores an absolute URL of at most 255 characters.
func (a *Author) SetAvatarURL(avatarURL string) error {
	avatarURL = strings.TrimSpace(avatarURL)
	if avatarURL == "" {
		return fmt.Errorf("%w: avatar url is empty", ErrInvalidFormat)
	}
	if len(avatarURL) > AvatarURLMaxLength {
		return fmt.Errorf("%w: avatar url exceeds %d characters", ErrOutOfRange, AvatarURLMaxLength)
	}
	if err := validation.Validate(avatarURL, is.RequestURL, is.URL); err != nil {
		return fmt.Errorf("%w: avatar url: %v", ErrInvalidFormat, err)
	}

	a.avatarURL = avatarURL
	return nil
}

// Email returns the email address.
func (a *Author) Email() string { return a.email }

// SetEmail stores a well-formed address of at most 128 characters.
func (a *Author) SetEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("%w: email is empty", ErrInvalidFormat)
	}
	if len(email) > EmailMaxLength {
		return fmt.Errorf("%w: email exceeds %d characters", ErrOutOfRange, EmailMaxLength)
	}
	if err := validation.Validate(email, is.EmailFormat); err != nil {
		return fmt.Errorf("%w: email: %v", ErrInvalidFormat, err)
	}

	a.email = email
	return nil
}

// PasswordHash returns the encoded Argon2i hash.
func (a *Author) PasswordHash() string { return a.passwordHash }

// SetPasswordHash stores a pre-computed Argon2i hash. Plaintext passwords are rejected
// because they never carry the $argon2i$ prefix.
func (a *Author) SetPasswordHash(hash string) error {
	if hash == "" {
		return fmt.Errorf("%w: password hash is empty", ErrInvalidFormat)
	}
	if algo := passwords.Algorithm(hash); algo != passwords.Argon2i {
		return fmt.Errorf("%w: password hash algorithm %q is not %s", ErrInvalidFormat, algo, passwords.Argon2i)
	}
	if len(hash) != HashLength {
		return fmt.Errorf("%w: password hash must be %d characters, got %d", ErrOutOfRange, HashLength, len(hash))
	}

	a.passwordHash = hash
	return nil
}

// Username returns the username.
func (a *Author) Username() string { return a.username }

// SetUsername stores a non-empty username.
func (a *Author) SetUsername(username string) error {
	if username == "" {
		return fmt.Errorf("%w: username is empty", ErrInvalidFormat)
	}

	a.username = username
	return nil
}

// Serialize maps every field to its storage column name.
func (a *Author) Serialize() map[string]any {
	var token any
	if a.activationToken != nil {
		token = *a.activationToken
	}

	return map[string]any{
		"authorId":              a.id.String(),
		"authorActivationToken": token,
		"authorAvatarUrl":       a.avatarURL,
		"authorEmail":           a.email,
		"authorHash":            a.passwordHash,
		"authorUsername":        a.username,
	}
}

// MarshalJSON encodes the Serialize mapping.
func (a *Author) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Serialize())
}
