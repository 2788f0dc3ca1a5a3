// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package partial

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. Typed errors below match them with [errors.Is].
var (
	// ErrMissingFields is matched by [*MissingFieldsError] when a build finds
	// required fields that no layer provided.
	ErrMissingFields = errors.New("missing required fields")

	// ErrInconsistentSetting is matched by [*InconsistentSettingError] when
	// two specifications for one field disagree inside a single source.
	ErrInconsistentSetting = errors.New("inconsistent setting")

	// ErrParseField is matched by [*ParseFieldError] when a textual value
	// cannot be converted to the field's declared type.
	ErrParseField = errors.New("cannot parse field")

	// ErrNotPartial is returned when a value handed to the reflective
	// helpers is not a struct made of Optional fields.
	ErrNotPartial = errors.New("not a partial struct")

	// ErrShapeMismatch is returned by [Assemble] when the partial struct and
	// the target struct do not pair up field by field.
	ErrShapeMismatch = errors.New("partial and target shapes differ")

	// ErrTypeMismatch is returned when a slot is given a value of the wrong type.
	ErrTypeMismatch = errors.New("type mismatch")
)

// MissingField is the declared name of a required field that was absent at
// build time.
type MissingField string

func (f MissingField) Error() string {
	return fmt.Sprintf("the field %s is missing", string(f))
}

// MissingFieldsError lists every required field left unset after all
// layers were merged, in declaration order.
type MissingFieldsError struct {
	Fields []MissingField
}

func (e *MissingFieldsError) Error() string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = string(f)
	}
	return fmt.Sprintf("the required fields [%s] were not specified in any of the configuration sources",
		strings.Join(names, ", "))
}

func (e *MissingFieldsError) Is(target error) bool {
	return target == ErrMissingFields
}

// Names returns the missing field names as strings.
func (e *MissingFieldsError) Names() []string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = string(f)
	}
	return names
}

// InconsistentSettingError carries both origins and both values of a
// conflicting specification.
type InconsistentSettingError struct {
	FirstSource   string
	FirstSetting  string
	SecondSource  string
	SecondSetting string
}

func (e *InconsistentSettingError) Error() string {
	return fmt.Sprintf("inconsistent specification: %s set %q but %s set %q",
		e.FirstSource, e.FirstSetting, e.SecondSource, e.SecondSetting)
}

func (e *InconsistentSettingError) Is(target error) bool {
	return target == ErrInconsistentSetting
}

// ParseFieldError reports a textual value that could not be converted to
// the declared type of a field.
type ParseFieldError struct {
	Field string
	Type  string
	Err   error
}

func (e *ParseFieldError) Error() string {
	return fmt.Sprintf("cannot parse field %s of type %s: %v", e.Field, e.Type, e.Err)
}

func (e *ParseFieldError) Is(target error) bool {
	return target == ErrParseField
}

func (e *ParseFieldError) Unwrap() error {
	return e.Err
}

// SourceError names the layer whose ToPartial failed.
type SourceError struct {
	Source string
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("configuration source %s: %v", e.Source, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}
