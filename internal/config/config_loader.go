// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/appetrosyan/partial-config/internal/logger"
	"github.com/appetrosyan/partial-config/internal/store"
	"github.com/appetrosyan/partial-config/partial"
	"github.com/appetrosyan/partial-config/partial/dbsource"
	"github.com/appetrosyan/partial-config/partial/env"
	"github.com/appetrosyan/partial-config/partial/file"
	"github.com/appetrosyan/partial-config/partial/flags"
	"github.com/appetrosyan/partial-config/partial/remote"
)

// LoadOptions describes where [Load] reads from.
type LoadOptions struct {
	// Context bounds the remote and database layers. Defaults to
	// context.Background.
	Context context.Context

	// Flags is a parsed flag set prepared with [RegisterFlags]. Nil skips
	// the flag layer.
	Flags *pflag.FlagSet

	// Lookup replaces os.LookupEnv.
	Lookup env.Lookup

	// Logger receives the chain diagnostics. Nil keeps the load silent.
	Logger *logger.Logger
}

// RegisterFlags defines the command-line flags of [PartialServerConfig]
// in fs.
func RegisterFlags(fs *pflag.FlagSet) error {
	return flags.Register[PartialServerConfig](fs)
}

// Variables lists the environment variables [Load] consults.
func Variables() ([]env.Variable, error) {
	return env.Variables[PartialServerConfig]()
}

type loader struct {
	ctx   context.Context
	log   *logger.Logger
	env   partial.Source[PartialServerConfig]
	flags partial.Source[PartialServerConfig]
}

func newLoader(opts LoadOptions) *loader {
	l := &loader{ctx: opts.Context, log: opts.Logger}
	if l.ctx == nil {
		l.ctx = context.Background()
	}
	if l.log == nil {
		l.log = logger.Nop()
	}
	l.log = l.log.GetChildLogger("config")

	envOpts := []env.Option{env.WithLogger(l.log.Logger)}
	if opts.Lookup != nil {
		envOpts = append(envOpts, env.WithLookup(opts.Lookup))
	}
	l.env = env.New[PartialServerConfig](envOpts...)

	if opts.Flags != nil {
		l.flags = flags.New[PartialServerConfig](opts.Flags)
	}

	return l
}

// Load merges every configuration layer and validates the result.
//
// The environment and flags are read first on their own to locate the
// configuration file, the remote document and the settings database.
// A settings database named by a DSN is opened, migrated and closed again
// before Load returns.
func Load(opts LoadOptions) (*ServerConfig, error) {
	l := newLoader(opts)

	locator, err := l.locate()
	if err != nil {
		return nil, fmt.Errorf("error locating configuration sources: %w", err)
	}

	settings, closeSettings, err := l.settingsSource(locator)
	if err != nil {
		return nil, err
	}
	defer closeSettings()

	cfg, err := partial.New[ServerConfig](PartialServerConfig{}, partial.WithLogger(l.log.Logger)).
		Source(partial.Static("Defaults", Defaults())).
		Source(file.FromConfigPath[PartialServerConfig](locator)).
		Source(l.remoteSource(locator)).
		Source(settings).
		Source(l.env).
		Source(partial.Maybe(l.flags)).
		Build()
	if err != nil {
		return nil, err
	}

	return &cfg, cfg.validate()
}

// Locate merges only the environment and the flags, without building. The
// result names the configuration file, the remote document and the settings
// database that [Load] would read.
func Locate(opts LoadOptions) (PartialServerConfig, error) {
	return newLoader(opts).locate()
}

func (l *loader) locate() (PartialServerConfig, error) {
	acc, err := partial.Apply(&l.log.Logger, PartialServerConfig{}, l.env)
	if err != nil {
		return PartialServerConfig{}, err
	}
	return partial.Apply(&l.log.Logger, acc, partial.Maybe(l.flags))
}

func (l *loader) remoteSource(locator PartialServerConfig) partial.Source[PartialServerConfig] {
	url, ok := locator.RemoteURL.Get()
	if !ok || url == "" {
		return partial.Maybe[PartialServerConfig](nil)
	}

	opts := []remote.Option{remote.WithContext(l.ctx)}
	if timeout, ok := locator.RequestTimeout.Get(); ok && timeout > 0 {
		opts = append(opts, remote.WithTimeout(timeout))
	}
	return remote.URL[PartialServerConfig](url, opts...)
}

func (l *loader) settingsSource(locator PartialServerConfig) (partial.Source[PartialServerConfig], func(), error) {
	dsn, ok := locator.SettingsDSN.Get()
	if !ok || dsn == "" {
		return partial.Maybe[PartialServerConfig](nil), func() {}, nil
	}

	db, err := store.Open(l.ctx, dsn, l.log.GetChildLogger("store"))
	if err != nil {
		return nil, nil, fmt.Errorf("error opening settings database: %w", err)
	}

	src := dbsource.New[PartialServerConfig](db.DB,
		dbsource.WithContext(l.ctx),
		dbsource.WithScope(locator.SettingsScope.OrElse(DefaultScope)),
		dbsource.WithPlaceholder(db.Placeholder()),
		dbsource.WithLogger(l.log.Logger),
	)

	return src, func() { _ = db.Close() }, nil
}
