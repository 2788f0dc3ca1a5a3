// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [ServerConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *ServerConfig) validate() error {
	if cfg.Address == (NetAddress{}) {
		return fmt.Errorf("%w: empty address", ErrInvalidServerConfigs)
	}

	if cfg.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive, got %s", ErrInvalidServerConfigs, cfg.RequestTimeout)
	}

	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	if cfg.SettingsScope == "" {
		return ErrInvalidSettingsConfigs
	}

	return nil
}
