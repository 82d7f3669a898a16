package console

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/crm-console/internal/api"
	"github.com/xavierca1/crm-console/internal/config"
	"github.com/xavierca1/crm-console/internal/session"
	"github.com/xavierca1/crm-console/internal/store"
)

func newTestConsole(t *testing.T, backendURL string) (*Server, *store.AuthStore, http.Handler) {
	t.Helper()

	cfg := config.Default()
	cfg.StateDir = t.TempDir()
	cfg.Backend.BaseURL = backendURL

	creds, err := session.NewStore(cfg.StateDir)
	require.NoError(t, err)
	auth, err := store.NewAuthStore(creds)
	require.NoError(t, err)

	client := api.NewClient(backendURL, 0, auth)
	leads := store.NewLeadStore(client)

	s := NewServer(cfg, client, auth, leads)
	return s, auth, s.Router()
}

func TestProtectedRouteRedirectsToLogin(t *testing.T) {
	_, _, router := newTestConsole(t, "http://localhost:0")

	for _, path := range []string{"/", "/leads", "/appointments"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusFound, rec.Code, path)
		assert.Equal(t, "/login", rec.Header().Get("Location"), path)
	}
}

func TestUnmatchedPathRedirectsHome(t *testing.T) {
	_, _, router := newTestConsole(t, "http://localhost:0")

	req := httptest.NewRequest(http.MethodGet, "/definitely-not-a-page", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestLoginPersistsSession(t *testing.T) {
	backend := chi.NewRouter()
	backend.Post("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": {"token": "tok-1", "user": {"name": "Ana", "email": "ana@example.com"}}}`))
	})
	backendSrv := httptest.NewServer(backend)
	defer backendSrv.Close()

	_, auth, router := newTestConsole(t, backendSrv.URL)

	body, _ := json.Marshal(map[string]string{"email": "ana@example.com", "password": "secret"})
	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.True(t, auth.LoggedIn())
	assert.Equal(t, "tok-1", auth.Token())
	assert.Contains(t, rec.Body.String(), "ana@example.com")
}

func TestLoginValidationRunsBeforeTheBackend(t *testing.T) {
	backendHit := false
	backendSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		backendHit = true
	}))
	defer backendSrv.Close()

	_, auth, router := newTestConsole(t, backendSrv.URL)

	body, _ := json.Marshal(map[string]string{"email": "not-an-email", "password": ""})
	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "fields")
	assert.False(t, backendHit)
	assert.False(t, auth.LoggedIn())
}

func TestLeadsPageFetchesWithFilters(t *testing.T) {
	var gotQuery string
	backend := chi.NewRouter()
	backend.Get("/leads", func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"data": [{"_id": "1", "name": "Ana", "stage": "New"}]}`))
	})
	backendSrv := httptest.NewServer(backend)
	defer backendSrv.Close()

	_, auth, router := newTestConsole(t, backendSrv.URL)
	require.NoError(t, auth.SetAuth("tok", nil))

	req := httptest.NewRequest(http.MethodGet, "/leads?name=ana&stage=Qualified", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, gotQuery, "name=ana")
	assert.Contains(t, gotQuery, "stage=Qualified")

	var page leadsPageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	require.Len(t, page.Leads, 1)
	assert.Equal(t, "Ana", page.Leads[0].Name)
	assert.Empty(t, page.Error)
}

func TestBackend401ClearsSessionEverywhere(t *testing.T) {
	backend := chi.NewRouter()
	backend.Get("/leads", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	backendSrv := httptest.NewServer(backend)
	defer backendSrv.Close()

	_, auth, router := newTestConsole(t, backendSrv.URL)
	require.NoError(t, auth.SetAuth("stale-token", nil))

	req := httptest.NewRequest(http.MethodGet, "/leads", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, "the page itself renders, with the error recorded")

	assert.False(t, auth.LoggedIn(), "the 401 observer logged the session out")

	// Every protected page now redirects.
	req = httptest.NewRequest(http.MethodGet, "/leads", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestStageUpdateRejectsUnknownStage(t *testing.T) {
	_, auth, router := newTestConsole(t, "http://localhost:0")
	require.NoError(t, auth.SetAuth("tok", nil))

	body, _ := json.Marshal(map[string]string{"stage": "Bogus"})
	req := httptest.NewRequest(http.MethodPut, "/leads/1/stage", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "stage")
}

func TestLogoutClearsAndRedirects(t *testing.T) {
	_, auth, router := newTestConsole(t, "http://localhost:0")
	require.NoError(t, auth.SetAuth("tok", nil))

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	assert.False(t, auth.LoggedIn())
}

func TestHealthzReportsBackendAndSession(t *testing.T) {
	backendSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound) // any answer counts as reachable
	}))
	defer backendSrv.Close()

	_, _, router := newTestConsole(t, backendSrv.URL)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var health healthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "reachable", health.Dependencies["backend"])
	assert.Equal(t, "logged out", health.Dependencies["session"])
}
