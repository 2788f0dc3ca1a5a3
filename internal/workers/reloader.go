// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/appetrosyan/partial-config/internal/config"
	"github.com/appetrosyan/partial-config/internal/logger"
)

// LoadFunc produces a fresh effective configuration.
type LoadFunc func(ctx context.Context) (*config.ServerConfig, error)

// ConfigReloader keeps the latest successfully loaded configuration and
// refreshes it every interval. A failed load keeps the previous value.
type ConfigReloader struct {
	load     LoadFunc
	interval time.Duration
	current  atomic.Pointer[config.ServerConfig]
	logger   *logger.Logger
}

// NewConfigReloader starts from initial. A non-positive interval turns Run
// into a no-op, leaving [ConfigReloader.Reload] as the only way to refresh.
func NewConfigReloader(initial *config.ServerConfig, load LoadFunc, interval time.Duration, logger *logger.Logger) *ConfigReloader {
	r := &ConfigReloader{
		load:     load,
		interval: interval,
		logger:   logger.GetChildLogger("reloader"),
	}
	r.current.Store(initial)
	return r
}

// Current returns the configuration in effect. It is safe for concurrent use.
func (r *ConfigReloader) Current() *config.ServerConfig {
	return r.current.Load()
}

// Reload loads the configuration once and swaps it in on success.
func (r *ConfigReloader) Reload(ctx context.Context) error {
	cfg, err := r.load(ctx)
	if err != nil {
		r.logger.Err(err).Msg("configuration reload failed, keeping previous configuration")
		return err
	}

	r.current.Store(cfg)
	r.logger.Debug().Msg("configuration reloaded")
	return nil
}

func (r *ConfigReloader) Run(ctx context.Context) {
	if r.interval <= 0 {
		return
	}

	go func() {
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				_ = r.Reload(ctx)
			}
		}
	}()
}
