// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/appetrosyan/partial-config/partial"
)

// DefaultScope is the settings scope read when none is configured.
const DefaultScope = "default"

// ServerConfig is the effective configuration of the bundled server once
// every layer has been merged.
type ServerConfig struct {
	// Address is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	Address NetAddress

	// GRPCAddress is the TCP address of the gRPC server. Nil disables it.
	GRPCAddress *NetAddress

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	RequestTimeout time.Duration

	// DatabaseURI is the connection string of the application database.
	DatabaseURI *string

	// TokenIssuer is the "iss" claim of issued tokens, when tokens are used.
	TokenIssuer partial.Optional[string]

	// LogLevel is a zerolog level name.
	LogLevel string

	// ConfigFile is the configuration file that was read, if any.
	ConfigFile *string

	// RemoteURL is the remote configuration document that was read, if any.
	RemoteURL *string

	// SettingsDSN is the settings database that was read, if any.
	SettingsDSN *string

	// SettingsScope selects the rows of the settings table.
	SettingsScope string
}

// PartialServerConfig is one layer of [ServerConfig]. Every source fills
// the fields it knows about and leaves the rest absent.
//
// Struct tags:
//   - json:    key in configuration files and remote documents.
//   - env:     environment variables, first alias preferred.
//   - flag:    long flag name and shorthand.
//   - setting: row name in the settings table.
type PartialServerConfig struct {
	Address        partial.Optional[NetAddress]    `partial:"address" json:"address" env:"SERVER_ADDRESS,ADDRESS" flag:"address,a" usage:"Net address host:port" setting:"address"`
	GRPCAddress    partial.Optional[NetAddress]    `partial:"grpc_address" json:"grpc_address" env:"SERVER_GRPC_ADDRESS" flag:"grpc-address" usage:"gRPC health server address host:port" setting:"grpc_address"`
	RequestTimeout partial.Optional[time.Duration] `partial:"request_timeout" json:"request_timeout" env:"SERVER_REQUEST_TIMEOUT" flag:"request-timeout" usage:"Request timeout (e.g., 30s, 1m)" setting:"request_timeout"`
	DatabaseURI    partial.Optional[string]        `partial:"database_uri" json:"database_uri" env:"DATABASE_URI,STORAGE_DB_DATABASE_URI" flag:"database-uri,d" usage:"Database DSN" setting:"database_uri"`
	TokenIssuer    partial.Optional[string]        `partial:"token_issuer" json:"token_issuer" env:"APP_TOKEN_ISSUER" flag:"token-issuer" usage:"Token issuer" setting:"token_issuer"`
	LogLevel       partial.Optional[string]        `partial:"log_level" json:"log_level" env:"LOG_LEVEL" flag:"log-level" usage:"Log level (debug, info, warn, error)" setting:"log_level"`
	ConfigFile     partial.Optional[string]        `partial:"config_file" json:"-" env:"CONFIG" flag:"config,c" usage:"Configuration file path (json, toml, yaml, hcl)"`
	RemoteURL      partial.Optional[string]        `partial:"remote_url" json:"-" env:"CONFIG_URL" flag:"config-url" usage:"Remote configuration URL"`
	SettingsDSN    partial.Optional[string]        `partial:"settings_dsn" json:"-" env:"SETTINGS_DSN" flag:"settings-dsn" usage:"Settings database DSN (postgres:// or sqlite path)"`
	SettingsScope  partial.Optional[string]        `partial:"settings_scope" json:"-" env:"SETTINGS_SCOPE" flag:"settings-scope" usage:"Settings scope"`
}

// Defaults is the lowest layer of every load.
func Defaults() PartialServerConfig {
	return PartialServerConfig{
		Address:        partial.Some(NetAddress{Host: "localhost", Port: 8080}),
		RequestTimeout: partial.Some(30 * time.Second),
		LogLevel:       partial.Some(zerolog.InfoLevel.String()),
		SettingsScope:  partial.Some(DefaultScope),
	}
}

// OverrideWith implements partial.Overrider.
func (p PartialServerConfig) OverrideWith(other PartialServerConfig) PartialServerConfig {
	return partial.Override(p, other)
}

// Build implements partial.Partial. All missing required fields are
// reported together.
func (p PartialServerConfig) Build(log *zerolog.Logger) (ServerConfig, error) {
	return partial.Assemble[ServerConfig](p, log)
}

// ConfigPath implements partial.ConfigPath.
func (p PartialServerConfig) ConfigPath() (string, bool) {
	return p.ConfigFile.Get()
}

// Shareable turns cfg back into a layer holding the fields another
// instance may load from this one. The database URI and the fields
// locating sources stay local.
func (cfg *ServerConfig) Shareable() PartialServerConfig {
	return PartialServerConfig{
		Address:        partial.Some(cfg.Address),
		GRPCAddress:    partial.FromPtr(cfg.GRPCAddress),
		RequestTimeout: partial.Some(cfg.RequestTimeout),
		TokenIssuer:    cfg.TokenIssuer,
		LogLevel:       partial.Some(cfg.LogLevel),
	}
}
