package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileStore хранит токен в файле с правами 0600.
type FileStore struct {
	path string
}

// NewFileStore создаёт хранилище по пути path, каталог создаётся при первой записи.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) Load(_ context.Context) (string, error) {
	const op = "session.FileStore.Load"
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", ErrNoToken
	}
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}

func (f *FileStore) Save(_ context.Context, token string) error {
	const op = "session.FileStore.Save"
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(token), 0o600); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (f *FileStore) Clear(_ context.Context) error {
	const op = "session.FileStore.Clear"
	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
