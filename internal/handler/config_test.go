package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/settings-loader/internal/dbconfig"
	"github.com/BuzzLyutic/settings-loader/internal/model"
	"github.com/BuzzLyutic/settings-loader/internal/settings"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	base := settings.Settings{Env: "test", Addr: ":8080", BaseDir: t.TempDir()}
	manager := dbconfig.NewManager(base.BaseDir, zap.NewNop())
	h := NewConfigHandler(base, manager, map[string]string{"default": "DB"}, zap.NewNop())

	r := chi.NewRouter()
	h.Routes(r)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}

func TestSettings(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/settings")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "test", body["env"])
	assert.NotContains(t, body, "secret_key", "secret key never leaves the process")
}

func TestDatabases_RedactsPassword(t *testing.T) {
	t.Setenv("DB_ENGINE", "postgresql")
	t.Setenv("DB_NAME", "appdb")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "supersecret")
	t.Setenv("DB_HOST", "db.internal")

	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/databases")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]model.DatabaseSettings
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	require.Contains(t, body, "default")
	assert.Equal(t, "postgresql", body["default"].Engine)
	assert.Equal(t, "********", body["default"].Password)
	assert.Equal(t, 5432, body["default"].Port)
}

func TestDatabases_SQLiteDefault(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/databases")
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]model.DatabaseSettings
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	require.Contains(t, body, "default")
	assert.Equal(t, "sqlite", body["default"].Engine)
}
