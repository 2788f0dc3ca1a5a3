// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package partial

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Apply folds one source into acc: the source is named in the log, its
// layer is produced, and acc.OverrideWith(layer) is returned, so the new
// layer takes precedence over everything applied before it.
//
// A failing source short-circuits with a [*SourceError] naming it.
func Apply[P Overrider[P]](log *zerolog.Logger, acc P, src Source[P]) (P, error) {
	log = orNop(log)

	name := src.Name()
	log.Info().Str("source", name).Msg("sourcing configuration")

	layer, err := src.ToPartial()
	if err != nil {
		log.Error().Err(err).Str("source", name).Msg("configuration source failed")
		var zero P
		return zero, &SourceError{Source: name, Err: err}
	}

	return acc.OverrideWith(layer), nil
}

// Option configures a [Chain].
type Option func(*options)

type options struct {
	log zerolog.Logger
}

// WithLogger sets the logger that receives the chain's diagnostics.
// Without it the chain is silent.
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// Chain applies sources in call order on top of a base partial and builds
// the target at the end. Given
//
//	partial.New[Config](base).Source(a).Source(b).Source(c).Build()
//
// the effective precedence is c > b > a > base. After the first failing
// source the remaining calls are skipped and Build returns that error.
type Chain[T any, P Partial[P, T]] struct {
	acc     P
	err     error
	log     zerolog.Logger
	sources []string
}

// New starts a chain from base, which is usually the zero value of P.
func New[T any, P Partial[P, T]](base P, opts ...Option) *Chain[T, P] {
	o := options{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	return &Chain[T, P]{
		acc:     base,
		log:     o.log.With().Str("chain_id", newChainID()).Logger(),
		sources: make([]string, 0, 4),
	}
}

// Source applies src on top of everything applied so far. A nil src
// behaves like Maybe(nil) and contributes an empty layer.
func (c *Chain[T, P]) Source(src Source[P]) *Chain[T, P] {
	if src == nil {
		src = Maybe[P](nil)
	}
	if c.err != nil {
		c.log.Debug().Str("source", src.Name()).Msg("skipping source after earlier failure")
		return c
	}

	acc, err := Apply(&c.log, c.acc, src)
	if err != nil {
		c.err = err
		return c
	}

	c.acc = acc
	c.sources = append(c.sources, src.Name())
	return c
}

// Sources returns the names of the sources applied successfully so far.
func (c *Chain[T, P]) Sources() []string {
	return c.sources
}

// Partial returns the merged layers without building.
func (c *Chain[T, P]) Partial() (P, error) {
	if c.err != nil {
		var zero P
		return zero, c.err
	}
	return c.acc, nil
}

// Build converts the merged layers into T. A source failure recorded
// earlier is returned instead.
func (c *Chain[T, P]) Build() (T, error) {
	if c.err != nil {
		var zero T
		return zero, fmt.Errorf("error occurred during building config: %w", c.err)
	}

	return c.acc.Build(&c.log)
}

func newChainID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return v7.String()
}
