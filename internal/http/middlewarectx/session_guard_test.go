package middlewarectx

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/payroll-admin-console/internal/lib/jwt"
)

type staticSession string

func (s staticSession) Token() string { return string(s) }

func signedToken(t *testing.T) string {
	t.Helper()
	claims := jwt.Claims{
		UserID: "u-1",
		Role:   "SUPER_ADMIN",
		RegisteredClaims: gojwt.RegisteredClaims{
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)
	return token
}

func TestSessionGuard(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		wantStatus int
		wantCalled bool
		wantUserID any
		wantRole   any
	}{
		{name: "нет сессии", token: "", wantStatus: http.StatusUnauthorized},
		{name: "непрозрачный токен", token: "T1", wantStatus: http.StatusOK, wantCalled: true},
		{name: "jwt с ролью", token: signedToken(t), wantStatus: http.StatusOK, wantCalled: true, wantUserID: "u-1", wantRole: "SUPER_ADMIN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var called bool
			var gotUserID, gotRole any
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				gotUserID = r.Context().Value(UserID)
				gotRole = r.Context().Value(Role)
				w.WriteHeader(http.StatusOK)
			})

			w := httptest.NewRecorder()
			SessionGuard(staticSession(tt.token), newNoopLogger())(next).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/state", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantCalled, called)
			assert.Equal(t, tt.wantUserID, gotUserID)
			assert.Equal(t, tt.wantRole, gotRole)
			if !tt.wantCalled {
				assert.JSONEq(t, `{"status":"Error","error":"not logged in"}`, w.Body.String())
			}
		})
	}
}
