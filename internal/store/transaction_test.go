//go:build integration

package store_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskora/taskora-api/internal/domain"
	"github.com/taskora/taskora-api/internal/platform/postgres"
	"github.com/taskora/taskora-api/internal/store"
	"github.com/taskora/taskora-api/internal/testdb"
)

// The commit path persists rows; the rollback path leaves no trace. Both are
// driven through the stores' WithTx binding, the way callers are expected to
// compose multi-statement operations.
func TestRunInTransaction(t *testing.T) {
	if !testdb.IsIntegrationTestEnvironment() {
		t.Skip("Skipping integration test - requires DATABASE_URL environment variable")
	}

	db := testdb.GetTestDBWithT(t)
	ctx := context.Background()

	userStore := postgres.NewPostgresUserStore(db, bcrypt.MinCost)
	taskStore := postgres.NewPostgresTaskStore(db)

	t.Run("commit persists user and task together", func(t *testing.T) {
		user, err := domain.NewUser("txn-commit-user", "password1234567")
		require.NoError(t, err)

		err = store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
			if err := userStore.WithTx(tx).Create(ctx, user); err != nil {
				return err
			}

			task, err := domain.NewTask(user.ID, "txn task", "")
			if err != nil {
				return err
			}
			return taskStore.WithTx(tx).Create(ctx, task)
		})
		require.NoError(t, err)

		t.Cleanup(func() {
			_, _ = db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, user.ID)
		})

		got, err := userStore.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "txn-commit-user", got.Username)

		tasks, err := taskStore.ListByUser(ctx, user.ID)
		require.NoError(t, err)
		assert.Len(t, tasks, 1)
	})

	t.Run("error rolls everything back", func(t *testing.T) {
		user, err := domain.NewUser("txn-rollback-user", "password1234567")
		require.NoError(t, err)

		boom := errors.New("boom")
		err = store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
			if err := userStore.WithTx(tx).Create(ctx, user); err != nil {
				return err
			}
			return boom
		})
		require.ErrorIs(t, err, boom)

		_, err = userStore.GetByUsername(ctx, "txn-rollback-user")
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})
}
