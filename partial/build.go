// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package partial

import (
	"fmt"
	"reflect"

	"github.com/rs/zerolog"
)

// Missing accumulates the names of absent required fields. The zero value
// is ready to use.
type Missing struct {
	fields []MissingField
}

// Add records name as missing.
func (m *Missing) Add(name string) {
	m.fields = append(m.fields, MissingField(name))
}

// Fields returns the recorded names in the order they were added.
func (m *Missing) Fields() []MissingField {
	return m.fields
}

// Err returns a [*MissingFieldsError] listing every recorded field, or nil
// when nothing was recorded.
func (m *Missing) Err() error {
	if len(m.fields) == 0 {
		return nil
	}
	fields := make([]MissingField, len(m.fields))
	copy(fields, m.fields)
	return &MissingFieldsError{Fields: fields}
}

// Require unwraps a required field for hand-written Build methods. When o
// is absent the name is recorded in m and the zero value of V is returned
// as a placeholder.
func Require[V any](m *Missing, name string, o Optional[V]) V {
	v, ok := o.Get()
	if !ok {
		m.Add(name)
	}
	return v
}

type fieldKind int

const (
	kindRequired fieldKind = iota
	kindPointer
	kindPassthrough
)

type fieldPlan struct {
	ref   FieldRef
	index int
	kind  fieldKind
}

// Assemble builds a T from the partial struct p, which must pair up with T
// field by field: same exported names, same order. For a partial field of
// type Optional[E] the target field is required when it has type E and
// already optional when it has type *E or Optional[E]; absent optional
// fields become nil or absent.
//
// Every absent required field is reported in one [*MissingFieldsError].
func Assemble[T any](p any, log *zerolog.Logger) (T, error) {
	var out T
	log = orNop(log)

	plan, err := planFields(p, reflect.TypeOf(out))
	if err != nil {
		return out, err
	}

	required := 0
	for _, f := range plan {
		if f.kind == kindRequired {
			required++
		}
	}
	log.Info().
		Int("required", required).
		Int("optional", len(plan)-required).
		Msg("building configuration")

	var missing Missing
	target := reflect.ValueOf(&out).Elem()
	for _, f := range plan {
		dst := target.Field(f.index)
		switch f.kind {
		case kindRequired:
			if !f.ref.Slot.IsSet() {
				missing.Add(f.ref.Name)
				continue
			}
			dst.Set(f.ref.Slot.Reflect())
		case kindPointer:
			if f.ref.Slot.IsSet() {
				ptr := reflect.New(f.ref.Slot.ElemType())
				ptr.Elem().Set(f.ref.Slot.Reflect())
				dst.Set(ptr)
			}
		case kindPassthrough:
			dst.Set(reflect.ValueOf(f.ref.Slot).Elem())
		}
	}

	if err := missing.Err(); err != nil {
		var zero T
		return zero, err
	}

	return out, nil
}

func planFields(p any, target reflect.Type) ([]fieldPlan, error) {
	pv := reflect.ValueOf(p)
	if pv.Kind() == reflect.Pointer {
		if pv.IsNil() {
			return nil, fmt.Errorf("%w: nil %T", ErrNotPartial, p)
		}
		pv = pv.Elem()
	}

	// Work on an addressable copy so the caller's value is never touched.
	cp := reflect.New(pv.Type())
	cp.Elem().Set(pv)

	refs, err := Fields(cp.Interface())
	if err != nil {
		return nil, err
	}

	if target.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: target %s is not a struct", ErrShapeMismatch, target)
	}

	exported := make([]int, 0, target.NumField())
	for i := 0; i < target.NumField(); i++ {
		if target.Field(i).IsExported() {
			exported = append(exported, i)
		}
	}
	if len(exported) != len(refs) {
		return nil, fmt.Errorf("%w: %s has %d fields, %s has %d",
			ErrShapeMismatch, pv.Type(), len(refs), target, len(exported))
	}

	plan := make([]fieldPlan, len(refs))
	for i, ref := range refs {
		tf := target.Field(exported[i])
		if tf.Name != ref.GoName {
			return nil, fmt.Errorf("%w: field %d is %s in %s but %s in %s",
				ErrShapeMismatch, i, ref.GoName, pv.Type(), tf.Name, target)
		}

		elem := ref.Slot.ElemType()
		slotType := reflect.TypeOf(ref.Slot).Elem()
		var kind fieldKind
		switch {
		case tf.Type == elem:
			kind = kindRequired
		case tf.Type.Kind() == reflect.Pointer && tf.Type.Elem() == elem:
			kind = kindPointer
		case tf.Type == slotType:
			kind = kindPassthrough
		default:
			return nil, fmt.Errorf("%w: %s.%s has type %s, want %s, *%s or %s",
				ErrShapeMismatch, target, tf.Name, tf.Type, elem, elem, slotType)
		}

		plan[i] = fieldPlan{ref: ref, index: exported[i], kind: kind}
	}

	return plan, nil
}
