package practice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/mindwell/voicedesk/pkg/logging"
)

const configKey = "voicedesk:practice:config"

// Store persists the practice configuration in Redis so operators can
// update hours or pricing without a redeploy. Reads fall back to the
// injected defaults when nothing has been stored.
type Store struct {
	client   *redis.Client
	defaults *Config
	logger   *logging.Logger
}

// NewStore creates a Redis-backed config store.
func NewStore(client *redis.Client, defaults *Config, logger *logging.Logger) *Store {
	if defaults == nil {
		defaults = Defaults()
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Store{client: client, defaults: defaults, logger: logger}
}

// Get returns the stored configuration, or the defaults when no config
// has been saved yet or Redis is not wired.
func (s *Store) Get(ctx context.Context) (*Config, error) {
	if s.client == nil {
		return s.defaults, nil
	}

	raw, err := s.client.Get(ctx, configKey).Result()
	if errors.Is(err, redis.Nil) {
		return s.defaults, nil
	}
	if err != nil {
		return nil, fmt.Errorf("practice: load config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		s.logger.Error("practice: stored config is corrupt, using defaults", "error", err)
		return s.defaults, nil
	}
	return &cfg, nil
}

// Put stores the configuration. The stored value replaces the previous
// one wholesale; partial updates are the operator UI's concern.
func (s *Store) Put(ctx context.Context, cfg *Config) error {
	if s.client == nil {
		return fmt.Errorf("practice: redis not configured")
	}
	if cfg == nil {
		return fmt.Errorf("practice: config required")
	}

	raw, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("practice: encode config: %w", err)
	}
	if err := s.client.Set(ctx, configKey, raw, 0).Err(); err != nil {
		return fmt.Errorf("practice: store config: %w", err)
	}
	s.logger.Info("practice: configuration updated", "name", cfg.Name)
	return nil
}
