// Package jwt разбирает токен сессии без проверки подписи.
//
// Подпись проверяет бэкенд; консоли нужны только срок жизни и данные
// администратора, чтобы не поднимать из хранилища заведомо истёкший токен.
// Непрозрачные (не-JWT) токены считаются бессрочными.
package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims данные, которые бэкенд кладёт в токен администратора.
type Claims struct {
	UserID string `json:"userId,omitempty"`
	Email  string `json:"email,omitempty"`
	Role   string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Inspect разбирает токен без проверки подписи.
func Inspect(tokenStr string) (*Claims, error) {
	const op = "jwt.Inspect"
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenStr, claims); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return claims, nil
}

// Expired true только для разбираемого JWT, у которого exp уже в прошлом.
func Expired(tokenStr string, now time.Time) bool {
	claims, err := Inspect(tokenStr)
	if err != nil || claims.ExpiresAt == nil {
		return false
	}
	return !now.Before(claims.ExpiresAt.Time)
}
