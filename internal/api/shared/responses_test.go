package shared

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	t.Parallel()

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/test", nil)

	RespondWithJSON(recorder, req, http.StatusCreated, map[string]string{"status": "ok"})

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, recorder.Body.String())
}

func TestRespondWithError(t *testing.T) {
	t.Parallel()

	t.Run("without trace ID", func(t *testing.T) {
		t.Parallel()

		recorder := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/test", nil)

		RespondWithError(recorder, req, http.StatusNotFound, "Task not found")

		assert.Equal(t, http.StatusNotFound, recorder.Code)

		var resp ErrorResponse
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
		assert.Equal(t, "Task not found", resp.Error)
		assert.Empty(t, resp.TraceID)
	})

	t.Run("with trace ID from context", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest("GET", "/test", nil)
		ctx := SetTraceID(req.Context())
		req = req.WithContext(ctx)

		recorder := httptest.NewRecorder()
		RespondWithError(recorder, req, http.StatusBadRequest, "Invalid request")

		var resp ErrorResponse
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
		assert.Equal(t, "Invalid request", resp.Error)
		assert.Equal(t, GetTraceID(ctx), resp.TraceID)
	})

	t.Run("status code never serialized", func(t *testing.T) {
		t.Parallel()

		recorder := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/test", nil)

		RespondWithError(recorder, req, http.StatusConflict, "Username already exists")

		var raw map[string]interface{}
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&raw))
		assert.NotContains(t, raw, "code")
	})
}

func TestRespondWithErrorAndLog(t *testing.T) {
	t.Parallel()

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/test", nil)

	internalErr := errors.New("pq: relation \"tasks\" does not exist")
	RespondWithErrorAndLog(recorder, req, http.StatusInternalServerError, "Failed to retrieve tasks", internalErr)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)

	// The raw error must never reach the client
	body := recorder.Body.String()
	assert.NotContains(t, body, "pq:")
	assert.NotContains(t, body, "relation")

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Equal(t, "Failed to retrieve tasks", resp.Error)
}

func TestTraceID(t *testing.T) {
	t.Parallel()

	ctx := SetTraceID(context.Background())
	traceID := GetTraceID(ctx)
	assert.NotEmpty(t, traceID)

	// Fresh contexts get fresh IDs
	other := GetTraceID(SetTraceID(context.Background()))
	assert.NotEqual(t, traceID, other)

	// A context without a trace ID yields the empty string
	assert.Empty(t, GetTraceID(context.Background()))
}
