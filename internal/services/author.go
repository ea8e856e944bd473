package services

//go:generate mockgen -source=author.go -destination=author_mock.go -package=services

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/author-registry/internal/logger"
	"github.com/sbilibin2017/author-registry/internal/models"
)

// Error variables
var (
	ErrAuthorNotFound   = errors.New("author not found")
	ErrAlreadyActivated = errors.New("author already activated")
	ErrInvalidToken     = errors.New("invalid activation token")
)

// AuthorReader defines read-only operations for authors.
type AuthorReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Author, error)
	FindAll(ctx context.Context) ([]*models.Author, error)
}

// AuthorWriter defines write operations for authors.
type AuthorWriter interface {
	Insert(ctx context.Context, a *models.Author) error
	Update(ctx context.Context, a *models.Author) error
	Delete(ctx context.Context, a *models.Author) error
}

// TxRunner runs fn inside a caller-owned transaction.
type TxRunner func(ctx context.Context, fn func(ctx context.Context) error) error

// ProfileChange lists the fields to change. Nil fields are left as they are.
type ProfileChange struct {
	AvatarURL    *string
	Email        *string
	PasswordHash *string
	Username     *string
}

// AuthorService handles author registration, activation and profile upkeep.
type AuthorService struct {
	reader AuthorReader
	writer AuthorWriter
	inTx   TxRunner
}

// NewAuthorService creates a new AuthorService instance.
// A nil TxRunner runs read-modify-write steps without a transaction.
func NewAuthorService(reader AuthorReader, writer AuthorWriter, inTx TxRunner) *AuthorService {
	if inTx == nil {
		inTx = func(ctx context.Context, fn func(ctx context.Context) error) error { return fn(ctx) }
	}
	return &AuthorService{
		reader: reader,
		writer: writer,
		inTx:   inTx,
	}
}

// Register creates an author with a fresh id and activation token.
func (svc *AuthorService) Register(ctx context.Context, avatarURL, email, passwordHash, username string) (*models.Author, error) {
	token, err := newActivationToken()
	if err != nil {
		logger.Log.Errorw("failed to generate activation token", "err", err)
		return nil, err
	}

	author, err := models.NewAuthor(uuid.New(), &token, avatarURL, email, passwordHash, username)
	if err != nil {
		logger.Log.Errorw("invalid author", "email", email, "username", username, "err", err)
		return nil, err
	}

	if err := svc.writer.Insert(ctx, author); err != nil {
		logger.Log.Errorw("failed to save author", "err", err)
		return nil, err
	}

	return author, nil
}

// Activate clears the activation token when it matches.
func (svc *AuthorService) Activate(ctx context.Context, id uuid.UUID, token string) error {
	return svc.inTx(ctx, func(ctx context.Context) error {
		author, err := svc.find(ctx, id)
		if err != nil {
			return err
		}

		pending := author.ActivationToken()
		if pending == nil {
			return ErrAlreadyActivated
		}
		given := strings.ToLower(strings.TrimSpace(token))
		if subtle.ConstantTimeCompare([]byte(given), []byte(*pending)) != 1 {
			logger.Log.Errorw("activation token mismatch", "author_id", id)
			return ErrInvalidToken
		}

		if err := author.SetActivationToken(nil); err != nil {
			return err
		}
		if err := svc.writer.Update(ctx, author); err != nil {
			logger.Log.Errorw("failed to activate author", "author_id", id, "err", err)
			return err
		}
		return nil
	})
}

// Get returns the author with the given id.
func (svc *AuthorService) Get(ctx context.Context, id uuid.UUID) (*models.Author, error) {
	return svc.find(ctx, id)
}

// List returns all authors in storage order.
func (svc *AuthorService) List(ctx context.Context) ([]*models.Author, error) {
	authors, err := svc.reader.FindAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list authors", "err", err)
		return nil, err
	}
	return authors, nil
}

// ChangeProfile applies the non-nil fields of change and saves the author.
// The activation token is never touched here.
func (svc *AuthorService) ChangeProfile(ctx context.Context, id uuid.UUID, change ProfileChange) (*models.Author, error) {
	var author *models.Author
	err := svc.inTx(ctx, func(ctx context.Context) error {
		var err error
		author, err = svc.find(ctx, id)
		if err != nil {
			return err
		}

		if change.AvatarURL != nil {
			if err := author.SetAvatarURL(*change.AvatarURL); err != nil {
				return err
			}
		}
		if change.Email != nil {
			if err := author.SetEmail(*change.Email); err != nil {
				return err
			}
		}
		if change.PasswordHash != nil {
			if err := author.SetPasswordHash(*change.PasswordHash); err != nil {
				return err
			}
		}
		if change.Username != nil {
			if err := author.SetUsername(*change.Username); err != nil {
				return err
			}
		}

		if err := svc.writer.Update(ctx, author); err != nil {
			logger.Log.Errorw("failed to update author", "author_id", id, "err", err)
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return author, nil
}

// Remove deletes the author with the given id.
func (svc *AuthorService) Remove(ctx context.Context, id uuid.UUID) error {
	return svc.inTx(ctx, func(ctx context.Context) error {
		author, err := svc.find(ctx, id)
		if err != nil {
			return err
		}
		if err := svc.writer.Delete(ctx, author); err != nil {
			logger.Log.Errorw("failed to delete author", "author_id", id, "err", err)
			return err
		}
		return nil
	})
}

func (svc *AuthorService) find(ctx context.Context, id uuid.UUID) (*models.Author, error) {
	author, err := svc.reader.FindByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get author", "author_id", id, "err", err)
		return nil, err
	}
	if author == nil {
		return nil, ErrAuthorNotFound
	}
	return author, nil
}

// newActivationToken returns 16 random bytes as 32 lowercase hex characters.
func newActivationToken() (string, error) {
	b := make([]byte, models.ActivationTokenLength/2)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
