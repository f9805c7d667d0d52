package console

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/payroll-admin-console/internal/apiclient"
	"github.com/magabrotheeeer/payroll-admin-console/internal/http/middlewarectx"
	"github.com/magabrotheeeer/payroll-admin-console/internal/lib/sl"
	"github.com/magabrotheeeer/payroll-admin-console/internal/session"
	"github.com/magabrotheeeer/payroll-admin-console/internal/store"
)

func backend(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		var body any
		switch r.URL.Path {
		case "/api/auth/login":
			body = map[string]any{"success": true, "data": map[string]any{
				"token": "T1",
				"user":  map[string]any{"id": "u-1", "fullName": "Ada Admin", "email": "a@x.io"},
			}}
		case "/api/admin/users":
			if r.Header.Get("Authorization") != "Bearer T1" {
				w.WriteHeader(http.StatusUnauthorized)
				body = map[string]any{"success": false, "message": "Unauthorized"}
				break
			}
			body = map[string]any{"success": true, "data": map[string]any{
				"users":      []map[string]any{{"id": "u-2", "fullName": "Bob", "email": "b@x.io"}},
				"pagination": map[string]any{"total": 94, "page": 1, "limit": 10, "totalPages": 10},
			}}
		default:
			w.WriteHeader(http.StatusNotFound)
			body = map[string]any{"success": false, "message": "not found"}
		}
		require.NoError(t, json.NewEncoder(w).Encode(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newRouter(t *testing.T, rps float64, burst int) (http.Handler, *session.Session) {
	t.Helper()
	srv := backend(t)

	sess := session.New(session.NewMemoryStore(""))
	client := apiclient.New(srv.URL+"/api", sess, sl.Discard())
	st := store.New(client, sess, sl.Discard())
	client.SetNavigator(st)

	r := chi.NewRouter()
	RegisterRoutes(r, sl.Discard(), st, sess, middlewarectx.NewLimiter(rps, burst), prometheus.NewRegistry())
	return r, sess
}

type apiResponse struct {
	Status string          `json:"status"`
	Error  string          `json:"error"`
	Data   json.RawMessage `json:"data"`
}

func call(t *testing.T, h http.Handler, method, path, body string) (int, apiResponse) {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(method, path, strings.NewReader(body)))
	var resp apiResponse
	if w.Header().Get("Content-Type") == "application/json" {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w.Code, resp
}

func TestRoutes_LoginThenFetchUsers(t *testing.T) {
	h, sess := newRouter(t, 100, 100)

	code, resp := call(t, h, http.MethodPost, "/api/v1/dispatch/users/fetchUsers", `{}`)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "not logged in", resp.Error)

	code, resp = call(t, h, http.MethodPost, "/api/v1/dispatch/auth/loginUser", `{"email":"a@x.io","password":"secret"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "OK", resp.Status)
	var snap store.Snapshot
	require.NoError(t, json.Unmarshal(resp.Data, &snap))
	assert.Equal(t, "T1", snap.Auth.Token)
	assert.Equal(t, "T1", sess.Token())

	code, resp = call(t, h, http.MethodPost, "/api/v1/dispatch/users/fetchUsers", `{"page":1,"limit":10}`)
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(resp.Data, &snap))
	assert.Equal(t, 94, snap.Users.TotalUsers)
	assert.Len(t, snap.Users.Users, 1)

	code, resp = call(t, h, http.MethodGet, "/api/v1/state/users", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(resp.Data), `"totalUsers":94`)
}

func TestRoutes_ValidationAndUnknownAction(t *testing.T) {
	h, _ := newRouter(t, 100, 100)

	code, resp := call(t, h, http.MethodPost, "/api/v1/dispatch/auth/loginUser", `{"email":"nope","password":"p"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Contains(t, resp.Error, "Email")

	code, _ = call(t, h, http.MethodPost, "/api/v1/dispatch/auth/impersonate", `{}`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = call(t, h, http.MethodGet, "/api/v1/state/billing", "")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestRoutes_DispatchRateLimited(t *testing.T) {
	h, _ := newRouter(t, 1, 1)

	code, _ := call(t, h, http.MethodPost, "/api/v1/dispatch/auth/clearError", ``)
	assert.Equal(t, http.StatusOK, code)

	code, resp := call(t, h, http.MethodPost, "/api/v1/dispatch/auth/clearError", ``)
	assert.Equal(t, http.StatusTooManyRequests, code)
	assert.Equal(t, "too many requests", resp.Error)

	code, _ = call(t, h, http.MethodGet, "/api/v1/state", "")
	assert.Equal(t, http.StatusOK, code)
}

func TestRoutes_ServiceEndpoints(t *testing.T) {
	h, _ := newRouter(t, 100, 100)

	code, resp := call(t, h, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"status":"ok","authenticated":false}`, string(resp.Data))

	code, resp = call(t, h, http.MethodGet, "/api/v1/actions", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(resp.Data), store.TypeUpdatePlanData)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNewTokenStore(t *testing.T) {
	cfg := testConfig(t)
	ctx := context.Background()

	cfg.Driver = "memory"
	ts, closeFn, err := newTokenStore(ctx, cfg)
	require.NoError(t, err)
	assert.IsType(t, &session.MemoryStore{}, ts)
	assert.NoError(t, closeFn())

	cfg.Driver = "file"
	ts, _, err = newTokenStore(ctx, cfg)
	require.NoError(t, err)
	assert.IsType(t, &session.FileStore{}, ts)

	cfg.Driver = "carrier-pigeon"
	_, _, err = newTokenStore(ctx, cfg)
	assert.Error(t, err)
}
