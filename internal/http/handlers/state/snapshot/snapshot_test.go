package snapshot

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/payroll-admin-console/internal/store"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) State() store.Snapshot {
	return m.Called().Get(0).(store.Snapshot)
}

func TestSnapshotHandler(t *testing.T) {
	snap := store.Snapshot{Version: 3, Location: "/dashboard"}
	snap.Auth.Token = "T1"
	snap.Dashboard.UserRole = "System Administrator"

	mockService := new(MockService)
	mockService.On("State").Return(snap)

	handler := New(slog.New(slog.NewTextHandler(io.Discard, nil)), mockService)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/state", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status string                     `json:"status"`
		Data   map[string]json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "OK", resp.Status)
	for _, key := range append([]string{"version", "location"}, store.Keys...) {
		assert.Contains(t, resp.Data, key)
	}
	assert.JSONEq(t, `"/dashboard"`, string(resp.Data["location"]))

	mockService.AssertExpectations(t)
}
