package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avoronov/quotekeeper/internal/sessions"
)

// failingStore always fails Ping, simulating a broken sessions database.
type failingStore struct {
	*sessions.MemoryStore
}

func (f *failingStore) Ping() error {
	return errors.New("database is closed")
}

func serveHealth(t *testing.T, controller *HealthController) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := NewRouter(controller)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	router.ServeHTTP(w, req)
	return w
}

func TestHealthController_Status(t *testing.T) {
	t.Run("returns healthy with a memory store", func(t *testing.T) {
		controller := NewHealthController(sessions.NewMemoryStore(), "1.0.0")

		w := serveHealth(t, controller)
		assert.Equal(t, http.StatusOK, w.Code)

		var response HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "healthy", response.Status)
		assert.Equal(t, "1.0.0", response.Version)
		assert.Equal(t, "ok", response.Checks["sessions"])
		assert.NotEmpty(t, response.Time)
	})

	t.Run("returns unhealthy when the sessions backend fails ping", func(t *testing.T) {
		controller := NewHealthController(&failingStore{sessions.NewMemoryStore()}, "1.0.0")

		w := serveHealth(t, controller)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)

		var response HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "unhealthy", response.Status)
		assert.Contains(t, response.Checks["sessions"], "error")
	})

	t.Run("reports a missing store as not configured", func(t *testing.T) {
		controller := NewHealthController(nil, "1.0.0")

		w := serveHealth(t, controller)
		assert.Equal(t, http.StatusOK, w.Code)

		var response HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "not configured", response.Checks["sessions"])
	})
}

func TestRouter_KeepAlive(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewRouter(NewHealthController(sessions.NewMemoryStore(), "dev"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Bot is running", w.Body.String())
}
