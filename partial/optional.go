// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package partial

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/appetrosyan/partial-config/internal/convert"
)

// Optional holds a value that is either present or absent.
// The zero value is absent, which makes the zero value of every partial
// struct the neutral layer.
type Optional[T any] struct {
	value T
	set   bool
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// None returns an absent Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// FromPtr returns an absent Optional for a nil pointer and a present copy
// of *p otherwise.
func FromPtr[T any](p *T) Optional[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// Get returns the held value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

// IsSet reports whether a value is present.
func (o Optional[T]) IsSet() bool {
	return o.set
}

// OrElse returns the held value, or fallback when absent.
func (o Optional[T]) OrElse(fallback T) T {
	if o.set {
		return o.value
	}
	return fallback
}

// Or returns o when present and other otherwise.
func (o Optional[T]) Or(other Optional[T]) Optional[T] {
	if o.set {
		return o
	}
	return other
}

// Ptr returns a pointer to a copy of the held value, or nil when absent.
func (o Optional[T]) Ptr() *T {
	if !o.set {
		return nil
	}
	v := o.value
	return &v
}

func (o Optional[T]) String() string {
	if !o.set {
		return "<unset>"
	}
	return fmt.Sprint(o.value)
}

// ElemType returns the reflect type of T.
func (o Optional[T]) ElemType() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Reflect returns the held value, or the invalid reflect.Value when absent.
func (o Optional[T]) Reflect() reflect.Value {
	if !o.set {
		return reflect.Value{}
	}
	return reflect.ValueOf(&o.value).Elem()
}

// SetReflect stores v, which must be assignable to T. An invalid v makes the
// Optional absent.
func (o *Optional[T]) SetReflect(v reflect.Value) error {
	if !v.IsValid() {
		*o = Optional[T]{}
		return nil
	}

	typ := o.ElemType()
	if !v.Type().AssignableTo(typ) {
		return fmt.Errorf("%w: %s is not assignable to %s", ErrTypeMismatch, v.Type(), typ)
	}

	reflect.ValueOf(&o.value).Elem().Set(v)
	o.set = true
	return nil
}

// MarshalJSON encodes an absent value as null.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.set {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// UnmarshalJSON treats null as absent. A JSON string offered for a
// non-textual T is parsed with the same rules as environment values, so
// "30s" fills an Optional[time.Duration].
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = Optional[T]{}
		return nil
	}

	var v T
	err := json.Unmarshal(data, &v)
	if err == nil {
		*o = Some(v)
		return nil
	}

	typ := o.ElemType()
	var raw string
	if convert.IsTextual(typ) || json.Unmarshal(data, &raw) != nil {
		return err
	}

	parsed, parseErr := convert.Parse(typ, raw)
	if parseErr != nil {
		return fmt.Errorf("cannot parse %q as %s: %w", raw, typ, parseErr)
	}

	return o.SetReflect(parsed)
}

func (Optional[T]) optional() {}

// Slot is implemented by *Optional[T]. It lets sources fill a partial
// struct field without knowing T at compile time.
type Slot interface {
	IsSet() bool
	ElemType() reflect.Type
	Reflect() reflect.Value
	SetReflect(v reflect.Value) error
}

// optionalValue marks Optional instantiations for the merge transformer.
type optionalValue interface {
	IsSet() bool
	optional()
}

var (
	_ Slot          = (*Optional[int])(nil)
	_ optionalValue = Optional[int]{}
)
