package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/user-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

type healthCheckerFunc func(ctx context.Context) error

func (f healthCheckerFunc) Check(ctx context.Context) error { return f(ctx) }

func TestHealthHandler(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		handler := NewHealthHandler(healthCheckerFunc(func(context.Context) error { return nil }))

		w := httptest.NewRecorder()
		handler.Health(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"success","message":"OK","data":{"database":"up"}}`, w.Body.String())
	})

	t.Run("database down", func(t *testing.T) {
		handler := NewHealthHandler(healthCheckerFunc(func(context.Context) error {
			return domain.NewDatabaseError("ping database", "database unavailable", errors.New("dial"))
		}))

		w := httptest.NewRecorder()
		handler.Health(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t,
			`{"status":"error","message":"Database error occurred","errors":{"database":["database unavailable"]}}`,
			w.Body.String())
	})
}

func TestFallbackHandlers(t *testing.T) {
	w := httptest.NewRecorder()
	NotFound(w, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"status":"error","message":"Resource not found"}`, w.Body.String())

	w = httptest.NewRecorder()
	MethodNotAllowed(w, httptest.NewRequest(http.MethodDelete, "/users/1", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.JSONEq(t, `{"status":"error","message":"Method not allowed"}`, w.Body.String())
}
