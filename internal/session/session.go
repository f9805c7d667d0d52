// Package session хранит токен администратора и его долговременное хранилище.
//
// Session передаётся в HTTP-клиент явно, вместо глобального чтения хранилища
// на каждом запросе. Токен держится в памяти и дублируется в TokenStore,
// чтобы пережить перезапуск консоли.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/magabrotheeeer/payroll-admin-console/internal/lib/jwt"
)

// DefaultKey фиксированное имя, под которым токен лежит в хранилище.
const DefaultKey = "token"

// ErrNoToken возвращается хранилищем, если токена нет.
var ErrNoToken = errors.New("token not found")

// TokenStore долговременное хранилище одного токена.
type TokenStore interface {
	// Load возвращает сохранённый токен или ErrNoToken.
	Load(ctx context.Context) (string, error)
	// Save сохраняет токен, заменяя предыдущий.
	Save(ctx context.Context, token string) error
	// Clear удаляет токен. Отсутствие токена ошибкой не считается.
	Clear(ctx context.Context) error
}

// Session текущий токен администратора.
type Session struct {
	mu    sync.RWMutex
	token string
	store TokenStore
	now   func() time.Time
}

// New создаёт пустую сессию поверх store.
func New(store TokenStore) *Session {
	return &Session{store: store, now: time.Now}
}

// Token возвращает текущий токен, пустая строка означает отсутствие сессии.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Authenticated есть ли токен.
func (s *Session) Authenticated() bool {
	return s.Token() != ""
}

// SetCredentials сохраняет токен в хранилище и только после успешной
// записи делает его текущим. При ошибке хранилища сессия не меняется.
func (s *Session) SetCredentials(ctx context.Context, token string) error {
	const op = "session.SetCredentials"
	if token == "" {
		return fmt.Errorf("%s: empty token", op)
	}
	if err := s.store.Save(ctx, token); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	return nil
}

// Clear забывает токен и удаляет его из хранилища. Токен в памяти
// сбрасывается даже при ошибке хранилища.
func (s *Session) Clear(ctx context.Context) error {
	const op = "session.Clear"
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Rehydrate поднимает токен из хранилища при старте. Истёкший JWT
// удаляется из хранилища и не восстанавливается.
func (s *Session) Rehydrate(ctx context.Context) (string, error) {
	const op = "session.Rehydrate"
	token, err := s.store.Load(ctx)
	if errors.Is(err, ErrNoToken) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if jwt.Expired(token, s.now()) {
		if err := s.store.Clear(ctx); err != nil {
			return "", fmt.Errorf("%s: %w", op, err)
		}
		return "", nil
	}
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	return token, nil
}
