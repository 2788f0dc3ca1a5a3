// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package env

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/appetrosyan/partial-config/internal/convert"
	"github.com/appetrosyan/partial-config/partial"
)

// Name is reported by every environment source.
const Name = "Environment Variables"

// ErrDuplicateAlias is returned when one field lists the same variable twice.
var ErrDuplicateAlias = errors.New("duplicate environment variable alias")

// Option configures a [Source].
type Option func(*options)

type options struct {
	lookup Lookup
	prefix string
	log    zerolog.Logger
}

// WithLookup replaces [os.LookupEnv], mainly for tests.
func WithLookup(lookup Lookup) Option {
	return func(o *options) {
		o.lookup = lookup
	}
}

// WithPrefix prepends prefix to every variable name declared in the tags.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithLogger sets the logger receiving redundancy and consistency warnings.
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

func newOptions(opts []Option) options {
	o := options{lookup: os.LookupEnv, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Source fills a partial struct P from the environment. Each field lists
// its candidate variables in an `env` tag:
//
//	Port partial.Optional[uint16] `env:"PORT,APP_PORT"`
//
// Fields without the tag are left absent. The environment is read again on
// every ToPartial call.
type Source[P any] struct {
	opts options
}

// New returns an environment source for P.
func New[P any](opts ...Option) *Source[P] {
	return &Source[P]{opts: newOptions(opts)}
}

func (s *Source[P]) Name() string {
	return Name
}

// ToPartial resolves every tagged field. The first inconsistent alias set
// or unparsable value aborts the whole layer.
func (s *Source[P]) ToPartial() (P, error) {
	var (
		p    P
		zero P
	)

	refs, err := partial.Fields(&p)
	if err != nil {
		return zero, err
	}

	for _, ref := range refs {
		names, err := aliases(ref, s.opts.prefix)
		if err != nil {
			return zero, err
		}
		if len(names) == 0 {
			continue
		}

		resolved, err := Extract(&s.opts.log, s.opts.lookup, names...)
		if err != nil {
			return zero, err
		}

		raw, ok := resolved.Get()
		if !ok {
			continue
		}

		typ := ref.Slot.ElemType()
		value, err := convert.Parse(typ, raw)
		if err != nil {
			return zero, &partial.ParseFieldError{Field: ref.Name, Type: typ.String(), Err: err}
		}
		if err := ref.Slot.SetReflect(value); err != nil {
			return zero, err
		}
	}

	return p, nil
}

// Variable pairs a field with the environment variables it is read from.
type Variable struct {
	Field string
	Names []string
}

// Variables lists the variables consulted for P, in field order, honouring
// the same options as [New]. Untagged fields are omitted.
func Variables[P any](opts ...Option) ([]Variable, error) {
	o := newOptions(opts)

	var p P
	refs, err := partial.Fields(&p)
	if err != nil {
		return nil, err
	}

	vars := make([]Variable, 0, len(refs))
	for _, ref := range refs {
		names, err := aliases(ref, o.prefix)
		if err != nil {
			return nil, err
		}
		if len(names) == 0 {
			continue
		}
		vars = append(vars, Variable{Field: ref.Name, Names: names})
	}

	return vars, nil
}

func aliases(ref partial.FieldRef, prefix string) ([]string, error) {
	tag, ok := ref.Tag.Lookup("env")
	if !ok || tag == "-" {
		return nil, nil
	}

	seen := make(map[string]struct{})
	names := make([]string, 0, strings.Count(tag, ",")+1)
	for _, name := range strings.Split(tag, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: field %s lists %s more than once", ErrDuplicateAlias, ref.Name, name)
		}
		seen[name] = struct{}{}
		names = append(names, prefix+name)
	}

	return names, nil
}
