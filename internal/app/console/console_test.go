package console

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/payroll-admin-console/internal/config"
	"github.com/magabrotheeeer/payroll-admin-console/internal/lib/sl"
	"github.com/magabrotheeeer/payroll-admin-console/internal/session"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Env:     config.EnvLocal,
		Backend: config.Backend{BaseURL: "http://127.0.0.1:1/api"},
		Session: config.Session{
			Driver:   config.SessionDriverFile,
			FilePath: filepath.Join(t.TempDir(), "token"),
			Key:      session.DefaultKey,
		},
		HTTPServer: config.HTTPServer{AddressHTTP: "127.0.0.1:0", TimeoutHTTP: time.Second, IdleTimeout: time.Second},
		RateLimit:  config.RateLimit{RPS: 5, Burst: 10},
	}
}

func TestNew_RedisSessionRehydrated(t *testing.T) {
	mr := miniredis.RunT(t)
	require.NoError(t, mr.Set(session.DefaultKey, "T1"))

	cfg := testConfig(t)
	cfg.Driver = config.SessionDriverRedis
	cfg.AddressRedis = mr.Addr()

	app, err := New(context.Background(), cfg, sl.Discard())
	require.NoError(t, err)
	t.Cleanup(app.close)

	assert.True(t, app.session.Authenticated())
	assert.Equal(t, "T1", app.store.State().Auth.Token)
}

func TestNew_RedisUnavailable(t *testing.T) {
	cfg := testConfig(t)
	cfg.Driver = config.SessionDriverRedis
	cfg.AddressRedis = "127.0.0.1:1"
	cfg.DialTimeout = 100 * time.Millisecond

	_, err := New(context.Background(), cfg, sl.Discard())
	assert.Error(t, err)
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	app, err := New(context.Background(), testConfig(t), sl.Discard())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop")
	}
}
