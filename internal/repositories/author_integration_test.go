package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sbilibin2017/author-registry/internal/migrations"
	"github.com/sbilibin2017/author-registry/internal/models"
	"github.com/sbilibin2017/author-registry/internal/passwords"
)

func setupAuthorPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres container test in short mode")
	}

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)

	version, err := migrations.Up(context.Background(), db.DB)
	require.NoError(t, err)
	require.Equal(t, int64(1), version)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func TestAuthorRepository_Postgres(t *testing.T) {
	db, teardown := setupAuthorPostgresContainer(t)
	defer teardown()

	repo := NewAuthorRepository(db, TxFromContext)
	ctx := context.Background()

	hash, err := passwords.Hash("password")
	require.NoError(t, err)

	token := "66941404092275938727437995023979 "
	author, err := models.NewAuthor(
		uuid.MustParse("6145f31f-8a8f-4492-baf2-ba1082ecc0ef"),
		&token, "https://www.twitter.com", "oklozoff@gmail.com", hash, "klozoff",
	)
	require.NoError(t, err)

	t.Run("Insert", func(t *testing.T) {
		require.NoError(t, repo.Insert(ctx, author))
	})

	t.Run("FindByID", func(t *testing.T) {
		got, err := repo.FindByID(ctx, author.ID())
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, author.Serialize(), got.Serialize())
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		dup, err := models.NewAuthor(uuid.New(), nil, "https://example.com", "oklozoff@gmail.com", hash, "other")
		require.NoError(t, err)

		err = repo.Insert(ctx, dup)
		assert.ErrorIs(t, err, ErrStorage)
		assert.ErrorIs(t, err, ErrDuplicate)
	})

	t.Run("Update", func(t *testing.T) {
		require.NoError(t, author.SetActivationToken(nil))
		require.NoError(t, author.SetEmail("oliver@example.com"))
		require.NoError(t, repo.Update(ctx, author))

		got, err := repo.FindByID(ctx, author.ID())
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Nil(t, got.ActivationToken())
		assert.Equal(t, "oliver@example.com", got.Email())
	})

	t.Run("FindAll", func(t *testing.T) {
		other, err := models.NewAuthor(uuid.New(), nil, "https://example.com/b.png", "b@example.com", hash, "bravo")
		require.NoError(t, err)
		require.NoError(t, repo.Insert(ctx, other))

		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, author))

		got, err := repo.FindByID(ctx, author.ID())
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("RollbackInTx", func(t *testing.T) {
		fresh, err := models.NewAuthor(uuid.New(), nil, "https://example.com/c.png", "c@example.com", hash, "charlie")
		require.NoError(t, err)

		sentinel := fmt.Errorf("abort")
		err = InTx(ctx, db, func(ctx context.Context) error {
			if err := repo.Insert(ctx, fresh); err != nil {
				return err
			}
			return sentinel
		})
		assert.ErrorIs(t, err, sentinel)

		got, err := repo.FindByID(ctx, fresh.ID())
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}
