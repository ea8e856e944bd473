package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/author-registry/internal/logger"
	"github.com/sbilibin2017/author-registry/internal/models"
)

// authorRow is the scan target for the author table.
type authorRow struct {
	ID              uuid.UUID      `db:"authorid"`
	ActivationToken sql.NullString `db:"authoractivationtoken"`
	AvatarURL       string         `db:"authoravatarurl"`
	Email           string         `db:"authoremail"`
	Hash            string         `db:"authorhash"`
	Username        string         `db:"authorusername"`
}

// toModel rebuilds the entity through its validating setters.
func (r authorRow) toModel() (*models.Author, error) {
	var token *string
	if r.ActivationToken.Valid {
		token = &r.ActivationToken.String
	}
	return models.NewAuthor(r.ID, token, r.AvatarURL, r.Email, r.Hash, r.Username)
}

// AuthorRepository issues one statement per call against the author table.
// It never opens, commits or rolls back transactions; when the context carries
// a caller-started transaction the statement runs on it.
type AuthorRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewAuthorRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *AuthorRepository {
	return &AuthorRepository{db: db, txGetter: txGetter}
}

func (r *AuthorRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Insert writes all six columns.
func (r *AuthorRepository) Insert(ctx context.Context, a *models.Author) error {
	const query = `
		INSERT INTO author (authorId, authorActivationToken, authorAvatarUrl, authorEmail, authorHash, authorUsername)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	args := []any{a.ID(), a.ActivationToken(), a.AvatarURL(), a.Email(), a.PasswordHash(), a.Username()}

	rowsAffected, err := r.exec(ctx, query, args)
	logQuery(query, redactHash(args, 4), rowsAffected, err)
	if err != nil {
		return storageError("insert author", err)
	}
	return nil
}

// Update rewrites every column except the id, keyed by id.
func (r *AuthorRepository) Update(ctx context.Context, a *models.Author) error {
	const query = `
		UPDATE author
		SET authorActivationToken = $1, authorAvatarUrl = $2, authorEmail = $3, authorHash = $4, authorUsername = $5
		WHERE authorId = $6
	`
	args := []any{a.ActivationToken(), a.AvatarURL(), a.Email(), a.PasswordHash(), a.Username(), a.ID()}

	rowsAffected, err := r.exec(ctx, query, args)
	logQuery(query, redactHash(args, 3), rowsAffected, err)
	if err != nil {
		return storageError("update author", err)
	}
	return nil
}

// Delete removes the row keyed by the author id.
func (r *AuthorRepository) Delete(ctx context.Context, a *models.Author) error {
	const query = `DELETE FROM author WHERE authorId = $1`
	args := []any{a.ID()}

	rowsAffected, err := r.exec(ctx, query, args)
	logQuery(query, args, rowsAffected, err)
	if err != nil {
		return storageError("delete author", err)
	}
	return nil
}

// FindByID returns the author with the given id, or nil when no row matches.
func (r *AuthorRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Author, error) {
	const query = `
		SELECT authorId, authorActivationToken, authorAvatarUrl, authorEmail, authorHash, authorUsername
		FROM author
		WHERE authorId = $1
	`

	var row authorRow
	err := sqlx.GetContext(ctx, r.executor(ctx), &row, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		logQuery(query, []any{id}, nil, nil)
		return nil, nil
	}
	logQuery(query, []any{id}, row.ID, err)
	if err != nil {
		return nil, storageError("find author", err)
	}

	a, err := row.toModel()
	if err != nil {
		return nil, storageError("load author "+row.ID.String(), err)
	}
	return a, nil
}

// FindAll returns every author in the storage's natural row order.
func (r *AuthorRepository) FindAll(ctx context.Context) ([]*models.Author, error) {
	const query = `
		SELECT authorId, authorActivationToken, authorAvatarUrl, authorEmail, authorHash, authorUsername
		FROM author
	`

	var rows []authorRow
	err := sqlx.SelectContext(ctx, r.executor(ctx), &rows, query)
	logQuery(query, nil, len(rows), err)
	if err != nil {
		return nil, storageError("find authors", err)
	}

	authors := make([]*models.Author, 0, len(rows))
	for _, row := range rows {
		a, err := row.toModel()
		if err != nil {
			return nil, storageError("load author "+row.ID.String(), err)
		}
		authors = append(authors, a)
	}
	return authors, nil
}

func (r *AuthorRepository) exec(ctx context.Context, query string, args []any) (int64, error) {
	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	return rowsAffected, err
}

// logQuery logs the query in a single line with its args, result and error.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Infow("author query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}

// redactHash returns a copy of args with the password hash at index i masked.
func redactHash(args []any, i int) []any {
	out := append([]any(nil), args...)
	out[i] = "[REDACTED]"
	return out
}
