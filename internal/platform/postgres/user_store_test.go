//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskora/taskora-api/internal/domain"
	"github.com/taskora/taskora-api/internal/platform/postgres"
	"github.com/taskora/taskora-api/internal/store"
	"github.com/taskora/taskora-api/internal/testdb"
)

func TestPostgresUserStore_Create(t *testing.T) {
	if !testdb.IsIntegrationTestEnvironment() {
		t.Skip("Skipping integration test - requires DATABASE_URL environment variable")
	}

	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		userStore := postgres.NewPostgresUserStore(tx, bcrypt.MinCost)

		t.Run("successful creation", func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), testdb.TestTimeout)
			defer cancel()

			user, err := domain.NewUser("create-test-user", "password1234567")
			require.NoError(t, err)

			require.NoError(t, userStore.Create(ctx, user))

			// Plaintext must be gone, hash must verify
			assert.Empty(t, user.Password)
			assert.NoError(t,
				bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte("password1234567")))

			var dbUser domain.User
			err = tx.QueryRowContext(ctx, `
				SELECT id, username, hashed_password, created_at
				FROM users
				WHERE id = $1
			`, user.ID).Scan(&dbUser.ID, &dbUser.Username, &dbUser.HashedPassword, &dbUser.CreatedAt)
			require.NoError(t, err)

			assert.Equal(t, user.ID, dbUser.ID)
			assert.Equal(t, "create-test-user", dbUser.Username)
			assert.False(t, dbUser.CreatedAt.IsZero())
		})

		t.Run("duplicate username", func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), testdb.TestTimeout)
			defer cancel()

			first, err := domain.NewUser("duplicate-test-user", "password1234567")
			require.NoError(t, err)
			require.NoError(t, userStore.Create(ctx, first))

			second, err := domain.NewUser("duplicate-test-user", "otherpassword123")
			require.NoError(t, err)

			err = userStore.Create(ctx, second)
			require.Error(t, err)
			assert.ErrorIs(t, err, store.ErrUsernameExists)
			assert.ErrorIs(t, err, store.ErrDuplicate)
		})

		t.Run("invalid user rejected before insert", func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), testdb.TestTimeout)
			defer cancel()

			invalid := &domain.User{
				ID:        uuid.New(),
				Username:  "",
				Password:  "password1234567",
				CreatedAt: time.Now().UTC(),
			}

			err := userStore.Create(ctx, invalid)
			assert.ErrorIs(t, err, domain.ErrEmptyUsername)
		})
	})
}

func TestPostgresUserStore_Get(t *testing.T) {
	if !testdb.IsIntegrationTestEnvironment() {
		t.Skip("Skipping integration test - requires DATABASE_URL environment variable")
	}

	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		userStore := postgres.NewPostgresUserStore(tx, bcrypt.MinCost)

		ctx, cancel := context.WithTimeout(context.Background(), testdb.TestTimeout)
		defer cancel()

		user, err := domain.NewUser("get-test-user", "password1234567")
		require.NoError(t, err)
		require.NoError(t, userStore.Create(ctx, user))

		t.Run("by ID", func(t *testing.T) {
			got, err := userStore.GetByID(ctx, user.ID)
			require.NoError(t, err)
			assert.Equal(t, user.ID, got.ID)
			assert.Equal(t, "get-test-user", got.Username)
			assert.NotEmpty(t, got.HashedPassword)
			assert.Empty(t, got.Password)
		})

		t.Run("by ID not found", func(t *testing.T) {
			_, err := userStore.GetByID(ctx, uuid.New())
			assert.ErrorIs(t, err, store.ErrUserNotFound)
			assert.ErrorIs(t, err, store.ErrNotFound)
		})

		t.Run("by username", func(t *testing.T) {
			got, err := userStore.GetByUsername(ctx, "get-test-user")
			require.NoError(t, err)
			assert.Equal(t, user.ID, got.ID)
		})

		t.Run("by username not found", func(t *testing.T) {
			_, err := userStore.GetByUsername(ctx, "no-such-user")
			assert.ErrorIs(t, err, store.ErrUserNotFound)
		})
	})
}
