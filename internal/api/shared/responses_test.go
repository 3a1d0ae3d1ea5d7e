package shared

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/kitchen-api/internal/paging"
	"github.com/phrazzld/kitchen-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func newRequest(t *testing.T) (*http.Request, *logger.TestLogBuffer) {
	t.Helper()
	buf, log := logger.NewTestLogger(t)
	req := httptest.NewRequest(http.MethodGet, "/api/menu-items", nil)
	ctx := logger.WithLogger(SetTraceID(req.Context()), log)
	return req.WithContext(ctx), buf
}

func TestRespondSuccess(t *testing.T) {
	req, _ := newRequest(t)

	t.Run("empty list is kept", func(t *testing.T) {
		w := httptest.NewRecorder()
		RespondSuccess(w, req, http.StatusOK, "Menu items retrieved successfully", []string{}, nil)

		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		body := w.Body.String()
		assert.Equal(t, int64(200), gjson.Get(body, "status").Int())
		assert.True(t, gjson.Get(body, "success").Bool())
		assert.True(t, gjson.Get(body, "data").IsArray())
		assert.False(t, gjson.Get(body, "meta").Exists())
		assert.False(t, gjson.Get(body, "error").Exists())
	})

	t.Run("meta included", func(t *testing.T) {
		w := httptest.NewRecorder()
		meta := paging.NewMeta(paging.Normalize(2, 10, "", ""), 25)
		RespondSuccess(w, req, http.StatusOK, "ok", []int{1}, &meta)

		body := w.Body.String()
		assert.Equal(t, int64(3), gjson.Get(body, "meta.totalPages").Int())
		assert.True(t, gjson.Get(body, "meta.hasPrevious").Bool())
	})

	t.Run("nil data omitted", func(t *testing.T) {
		w := httptest.NewRecorder()
		RespondSuccess(w, req, http.StatusCreated, "done", nil, nil)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.False(t, gjson.Get(w.Body.String(), "data").Exists())
	})
}

func TestRespondWithError(t *testing.T) {
	req, _ := newRequest(t)
	w := httptest.NewRecorder()

	RespondWithError(w, req, http.StatusBadRequest, "Vendor ID is required", map[string]any{})

	body := w.Body.String()
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, gjson.Get(body, "success").Bool())
	assert.Equal(t, "Vendor ID is required", gjson.Get(body, "message").String())
	assert.True(t, gjson.Get(body, "error").IsObject())
}

func TestRespondWithErrorAndLogLevels(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		opts      []ResponseOption
		wantLevel string
	}{
		{name: "server error", status: http.StatusInternalServerError, wantLevel: "ERROR"},
		{name: "rate limited", status: http.StatusTooManyRequests, wantLevel: "WARN"},
		{name: "not found", status: http.StatusNotFound, wantLevel: "DEBUG"},
		{name: "elevated bad request", status: http.StatusBadRequest, opts: []ResponseOption{WithElevatedLogLevel()}, wantLevel: "WARN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, buf := newRequest(t)
			w := httptest.NewRecorder()

			RespondWithErrorAndLog(w, req, tt.status, "boom", errors.New("dial postgres://app:hunter2@db:5432/kitchen"), tt.opts...)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, int64(tt.status), gjson.Get(w.Body.String(), "status").Int())

			entries, err := buf.Entries()
			require.NoError(t, err)
			require.Len(t, entries, 1)
			assert.Equal(t, tt.wantLevel, entries[0]["level"])
			assert.NotEmpty(t, entries[0]["trace_id"])
			assert.NotContains(t, buf.String(), "hunter2")
		})
	}
}
