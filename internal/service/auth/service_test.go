package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskora/taskora-api/internal/domain"
	"github.com/taskora/taskora-api/internal/mocks"
	"github.com/taskora/taskora-api/internal/service/auth"
	"github.com/taskora/taskora-api/internal/store"
)

func TestAuthenticateUser(t *testing.T) {
	t.Parallel()

	registeredUser := func(username string) *mocks.MockUserStore {
		userStore := mocks.NewMockUserStore()
		user, err := domain.NewUser(username, "correct-password")
		require.NoError(t, err)
		require.NoError(t, userStore.Create(context.Background(), user))
		return userStore
	}

	t.Run("valid credentials", func(t *testing.T) {
		t.Parallel()
		userStore := registeredUser("alice")
		svc := auth.NewService(userStore, &mocks.MockPasswordVerifier{ShouldSucceed: true}, nil)

		user, err := svc.AuthenticateUser(context.Background(), "alice", "correct-password")
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("unknown username", func(t *testing.T) {
		t.Parallel()
		userStore := mocks.NewMockUserStore()
		svc := auth.NewService(userStore, &mocks.MockPasswordVerifier{ShouldSucceed: true}, nil)

		user, err := svc.AuthenticateUser(context.Background(), "nobody", "whatever")
		require.ErrorIs(t, err, auth.ErrInvalidCredentials)
		assert.Nil(t, user)
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()
		userStore := registeredUser("alice")
		svc := auth.NewService(userStore, &mocks.MockPasswordVerifier{ShouldSucceed: false}, nil)

		user, err := svc.AuthenticateUser(context.Background(), "alice", "wrong-password")
		require.ErrorIs(t, err, auth.ErrInvalidCredentials)
		assert.Nil(t, user)
	})

	t.Run("unknown user and wrong password are indistinguishable", func(t *testing.T) {
		t.Parallel()
		userStore := registeredUser("alice")
		svc := auth.NewService(userStore, &mocks.MockPasswordVerifier{ShouldSucceed: false}, nil)

		_, errUnknown := svc.AuthenticateUser(context.Background(), "nobody", "whatever")
		_, errMismatch := svc.AuthenticateUser(context.Background(), "alice", "wrong-password")
		assert.Equal(t, errUnknown, errMismatch)
	})

	t.Run("backend failure surfaces as-is", func(t *testing.T) {
		t.Parallel()
		backendErr := errors.New("connection refused")
		userStore := mocks.NewMockUserStore()
		userStore.LookupError = backendErr
		svc := auth.NewService(userStore, &mocks.MockPasswordVerifier{ShouldSucceed: true}, nil)

		_, err := svc.AuthenticateUser(context.Background(), "alice", "correct-password")
		require.ErrorIs(t, err, backendErr)
		assert.NotErrorIs(t, err, auth.ErrInvalidCredentials)
		assert.NotErrorIs(t, err, store.ErrUserNotFound)
	})
}
