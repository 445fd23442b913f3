package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskora/taskora-api/internal/api/shared"
	"github.com/taskora/taskora-api/internal/domain"
)

func requestWithURLParam(param, value string) *http.Request {
	req := httptest.NewRequest("GET", "/", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(param, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestGetUserIDFromContext(t *testing.T) {
	t.Parallel()

	t.Run("present", func(t *testing.T) {
		t.Parallel()
		userID := uuid.New()
		req := httptest.NewRequest("GET", "/", nil)
		req = req.WithContext(context.WithValue(req.Context(), shared.UserIDContextKey, userID))

		got, ok := getUserIDFromContext(req)
		require.True(t, ok)
		assert.Equal(t, userID, got)
	})

	t.Run("absent", func(t *testing.T) {
		t.Parallel()
		_, ok := getUserIDFromContext(httptest.NewRequest("GET", "/", nil))
		assert.False(t, ok)
	})

	t.Run("nil UUID treated as absent", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest("GET", "/", nil)
		req = req.WithContext(context.WithValue(req.Context(), shared.UserIDContextKey, uuid.Nil))

		_, ok := getUserIDFromContext(req)
		assert.False(t, ok)
	})
}

func TestGetPathUUID(t *testing.T) {
	t.Parallel()

	t.Run("valid UUID", func(t *testing.T) {
		t.Parallel()
		want := uuid.New()
		got, err := getPathUUID(requestWithURLParam("id", want.String()), "id")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("missing parameter", func(t *testing.T) {
		t.Parallel()
		_, err := getPathUUID(requestWithURLParam("other", "x"), "id")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("malformed UUID", func(t *testing.T) {
		t.Parallel()
		_, err := getPathUUID(requestWithURLParam("id", "not-a-uuid"), "id")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidID)

		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "id", vErr.Field)
	})
}
