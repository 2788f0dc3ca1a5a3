// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package flags provides a configuration layer read from command-line flags.
//
// Fields opt in with a `flag` tag holding the long name and an optional
// one-letter shorthand, plus an optional `usage` tag:
//
//	Port partial.Optional[uint16] `flag:"port,p" usage:"listen port"`
//
// Only flags given on the command line contribute to the layer; defaults
// belong to a lower layer.
package flags

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/appetrosyan/partial-config/internal/convert"
	"github.com/appetrosyan/partial-config/partial"
)

// Name is reported by every flag source.
const Name = "Command-line flags"

// ErrUnknownFlag is returned when a tagged field has no flag in the set.
var ErrUnknownFlag = errors.New("flag is not defined")

var durationType = reflect.TypeOf(time.Duration(0))

// value is the pflag.Value behind every registered field. It keeps the raw
// text and checks it against the field type as soon as it is set.
type value struct {
	typ reflect.Type
	raw string
	set bool
}

func (v *value) String() string {
	return v.raw
}

func (v *value) Set(s string) error {
	raw := s
	if v.set && v.typ.Kind() == reflect.Slice {
		raw = v.raw + "," + s
	}

	if _, err := convert.Parse(v.typ, raw); err != nil {
		return err
	}

	v.raw, v.set = raw, true
	return nil
}

func (v *value) Type() string {
	switch {
	case v.typ == durationType:
		return "duration"
	case v.typ.Kind() == reflect.Slice:
		return v.typ.Elem().Kind().String() + "s"
	default:
		return v.typ.Kind().String()
	}
}

// Register defines one flag in fs for every field of P carrying a `flag`
// tag. Values are validated against the field type while fs is parsed.
func Register[P any](fs *pflag.FlagSet) error {
	var p P
	refs, err := partial.Fields(&p)
	if err != nil {
		return err
	}

	for _, ref := range refs {
		name, short, ok := flagName(ref)
		if !ok {
			continue
		}

		typ := ref.Slot.ElemType()
		f := fs.VarPF(&value{typ: typ}, name, short, ref.Tag.Get("usage"))
		if typ.Kind() == reflect.Bool {
			f.NoOptDefVal = "true"
		}
	}

	return nil
}

type source[P any] struct {
	fs *pflag.FlagSet
}

// New returns a source reading the parsed flags of fs. The flags may have
// been defined by [Register] or by any other means; only their text is used.
func New[P any](fs *pflag.FlagSet) partial.Source[P] {
	return source[P]{fs: fs}
}

func (s source[P]) Name() string {
	return Name
}

func (s source[P]) ToPartial() (P, error) {
	var (
		p    P
		zero P
	)

	refs, err := partial.Fields(&p)
	if err != nil {
		return zero, err
	}

	for _, ref := range refs {
		name, _, ok := flagName(ref)
		if !ok {
			continue
		}

		f := s.fs.Lookup(name)
		if f == nil {
			return zero, fmt.Errorf("%w: --%s for field %s", ErrUnknownFlag, name, ref.Name)
		}
		if !f.Changed {
			continue
		}

		typ := ref.Slot.ElemType()
		parsed, err := convert.Parse(typ, text(f.Value))
		if err != nil {
			return zero, &partial.ParseFieldError{Field: ref.Name, Type: typ.String(), Err: err}
		}
		if err := ref.Slot.SetReflect(parsed); err != nil {
			return zero, err
		}
	}

	return p, nil
}

func text(v pflag.Value) string {
	if sv, ok := v.(pflag.SliceValue); ok {
		return strings.Join(sv.GetSlice(), ",")
	}
	return v.String()
}

func flagName(ref partial.FieldRef) (name, short string, ok bool) {
	tag, found := ref.Tag.Lookup("flag")
	if !found || tag == "" || tag == "-" {
		return "", "", false
	}

	name, short, _ = strings.Cut(tag, ",")
	return strings.TrimSpace(name), strings.TrimSpace(short), true
}
