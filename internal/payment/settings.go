// AngelaMos | 2026
// settings.go

package payment

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/cricketacademy/academy-api/internal/config"
	"github.com/cricketacademy/academy-api/internal/core"
)

const settingsKey = "payment:settings"

type SettingsStore interface {
	Get(ctx context.Context) (*Settings, error)
	Put(ctx context.Context, s *Settings) error
}

type redisSettings struct {
	c        redis.Cmdable
	defaults Settings
}

// NewRedisSettings keeps settings under a single key. Until an admin saves
// them, reads fall back to the values from the config file.
func NewRedisSettings(c redis.Cmdable, cfg config.PaymentConfig, currency string) SettingsStore {
	return &redisSettings{
		c: c,
		defaults: Settings{
			Currency:        currency,
			Gateways:        cfg.Gateways,
			Methods:         cfg.Methods,
			GlobalEnabled:   cfg.GlobalEnabled,
			RestrictedUsers: []string{},
		},
	}
}

func (r *redisSettings) Get(ctx context.Context) (*Settings, error) {
	var s Settings
	err := core.GetJSON(ctx, r.c, settingsKey, &s)
	if errors.Is(err, core.ErrNotFound) {
		d := r.defaults
		return &d, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *redisSettings) Put(ctx context.Context, s *Settings) error {
	return core.SetJSON(ctx, r.c, settingsKey, s, 0)
}
