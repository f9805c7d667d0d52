package console

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/payroll-admin-console/internal/config"
	"github.com/magabrotheeeer/payroll-admin-console/internal/session"
)

func noopClose() error { return nil }

// newTokenStore выбирает хранилище токена по session.driver.
func newTokenStore(ctx context.Context, cfg *config.Config) (session.TokenStore, func() error, error) {
	const op = "console.newTokenStore"

	switch cfg.Driver {
	case config.SessionDriverFile:
		return session.NewFileStore(cfg.FilePath), noopClose, nil
	case config.SessionDriverRedis:
		rs, err := session.NewRedisStore(ctx, cfg.RedisConnection, cfg.Key)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", op, err)
		}
		return rs, rs.Close, nil
	case config.SessionDriverMemory:
		return session.NewMemoryStore(""), noopClose, nil
	}
	return nil, nil, fmt.Errorf("%s: unknown session driver %q", op, cfg.Driver)
}
