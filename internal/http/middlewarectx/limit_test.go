package middlewarectx

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func okHandler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("success")); err != nil {
			t.Errorf("failed to write response: %v", err)
		}
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	logger := newNoopLogger()

	t.Run("пропускает запросы в пределах лимита", func(t *testing.T) {
		handler := RateLimitMiddleware(NewLimiter(10, 10), logger)(okHandler(t))
		req := httptest.NewRequest(http.MethodPost, "/api/v1/dispatch/users/fetchUsers", nil)

		for i := 0; i < 10; i++ {
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "success", w.Body.String())
		}
	})

	t.Run("отвечает 429 сверх лимита", func(t *testing.T) {
		handler := RateLimitMiddleware(NewLimiter(1, 1), logger)(okHandler(t))
		req := httptest.NewRequest(http.MethodPost, "/test", nil)

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		w = httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.JSONEq(t, `{"status":"Error","error":"too many requests"}`, w.Body.String())
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	})

	t.Run("снова пропускает после пополнения", func(t *testing.T) {
		handler := RateLimitMiddleware(NewLimiter(10, 1), logger)(okHandler(t))
		req := httptest.NewRequest(http.MethodPost, "/test", nil)

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		w = httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusTooManyRequests, w.Code)

		time.Sleep(150 * time.Millisecond)

		w = httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRateLimitMiddleware_HandlerNotCalledWhenLimited(t *testing.T) {
	var calls int
	handler := RateLimitMiddleware(NewLimiter(1, 1), newNoopLogger())(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 3; i++ {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/test", nil))
	}

	assert.Equal(t, 1, calls)
}
