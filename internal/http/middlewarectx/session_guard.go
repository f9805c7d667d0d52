// Package middlewarectx содержит HTTP middleware шлюза консоли.
//
// SessionGuard закрывает маршруты, которым нужна активная сессия
// администратора, RateLimitMiddleware ограничивает частоту dispatch-запросов.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/payroll-admin-console/internal/http/response"
	"github.com/magabrotheeeer/payroll-admin-console/internal/lib/jwt"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

const (
	// UserID идентификатор администратора из токена, если токен JWT.
	UserID Key = "user_id"
	// Role роль администратора из токена.
	Role Key = "role"
)

// Session источник текущего токена консоли.
type Session interface {
	Token() string
}

// SessionGuard пропускает запрос только при активной сессии. Непрозрачный
// токен тоже считается сессией, тогда UserID и Role в контекст не попадают.
func SessionGuard(sess Session, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.SessionGuard"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			token := sess.Token()
			if token == "" {
				log.Warn("no active session")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("not logged in"))
				return
			}

			ctx := r.Context()
			if claims, err := jwt.Inspect(token); err == nil {
				ctx = context.WithValue(ctx, UserID, claims.UserID)
				ctx = context.WithValue(ctx, Role, claims.Role)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
