// AngelaMos | 2026
// handler_test.go

package health

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

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestReadiness(t *testing.T) {
	up := pingFunc(func(context.Context) error { return nil })
	down := pingFunc(func(context.Context) error { return errors.New("refused") })

	t.Run("all healthy", func(t *testing.T) {
		h := NewHandler(Dependency{"database", up}, Dependency{"redis", up})
		rec := httptest.NewRecorder()
		h.Readiness(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		var body ReadinessResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "ok", body.Status)
		assert.Len(t, body.Checks, 2)
	})

	t.Run("one dependency down", func(t *testing.T) {
		h := NewHandler(Dependency{"database", up}, Dependency{"rabbitmq", down})
		rec := httptest.NewRecorder()
		h.Readiness(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		var body ReadinessResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "degraded", body.Status)
		assert.False(t, body.Checks[1].Healthy)
	})

	t.Run("shutting down", func(t *testing.T) {
		h := NewHandler()
		h.SetShutdown(true)
		rec := httptest.NewRecorder()
		h.Liveness(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
