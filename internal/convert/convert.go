// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package convert turns the raw strings produced by environment variables,
// command-line flags, and settings tables into typed values.
//
// Parsing is delegated to the caarlos0/env parsers so that every textual
// layer accepts exactly the same spellings (durations such as "30s",
// comma-separated slices, encoding.TextUnmarshaler implementations, etc.).
package convert

import (
	"encoding"
	"errors"
	"reflect"

	"github.com/caarlos0/env/v11"
)

// holderKey is the only variable visible to the parser while converting a
// single value.
const holderKey = "VALUE"

// ErrEmptyValue is returned when an empty string is offered for a
// non-textual type.
var ErrEmptyValue = errors.New("empty value")

var textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()

// Parse converts raw into a value of typ.
//
// Textual kinds are converted directly, so an empty string is a valid
// value for them, unless the type implements encoding.TextUnmarshaler, in
// which case its UnmarshalText decides. For every other type an empty input yields
// [ErrEmptyValue]; otherwise the underlying parse failure is returned
// unwrapped from the caarlos0/env aggregate.
func Parse(typ reflect.Type, raw string) (reflect.Value, error) {
	if typ.Kind() == reflect.String {
		if reflect.PointerTo(typ).Implements(textUnmarshalerType) {
			v := reflect.New(typ)
			if err := v.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(raw)); err != nil {
				return reflect.Value{}, err
			}
			return v.Elem(), nil
		}
		return reflect.ValueOf(raw).Convert(typ), nil
	}
	if raw == "" {
		return reflect.Value{}, ErrEmptyValue
	}

	holder := reflect.New(reflect.StructOf([]reflect.StructField{{
		Name: "Value",
		Type: typ,
		Tag:  reflect.StructTag(`env:"` + holderKey + `"`),
	}}))

	err := env.ParseWithOptions(holder.Interface(), env.Options{
		Environment: map[string]string{holderKey: raw},
	})
	if err != nil {
		return reflect.Value{}, cause(err)
	}

	return holder.Elem().Field(0), nil
}

// IsTextual reports whether values of typ are taken verbatim.
func IsTextual(typ reflect.Type) bool {
	return typ.Kind() == reflect.String
}

// cause strips the aggregate and field wrappers that env.ParseWithOptions
// adds around a single conversion failure.
func cause(err error) error {
	var agg env.AggregateError
	if !errors.As(err, &agg) || len(agg.Errors) != 1 {
		return err
	}

	var parseErr env.ParseError
	if errors.As(agg.Errors[0], &parseErr) && parseErr.Err != nil {
		return parseErr.Err
	}

	return agg.Errors[0]
}
