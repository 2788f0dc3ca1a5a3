// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package partial

import (
	"fmt"
	"reflect"

	"dario.cat/mergo"
)

var optionalValueType = reflect.TypeOf((*optionalValue)(nil)).Elem()

// presence makes mergo treat every Optional as a single value: a present
// source replaces the destination, an absent one leaves it alone.
type presence struct{}

func (presence) Transformer(typ reflect.Type) func(dst, src reflect.Value) error {
	if !typ.Implements(optionalValueType) {
		return nil
	}

	return func(dst, src reflect.Value) error {
		if src.Interface().(optionalValue).IsSet() && dst.CanSet() {
			dst.Set(src)
		}
		return nil
	}
}

// Override returns a copy of base where every field present in other
// replaces the corresponding field of base. Required-ness is never
// consulted, only presence, so a later layer can never unset a value.
//
// Exported fields that are not Optional, such as nested partial structs,
// are merged recursively with mergo's override rules.
//
// Override panics if P is not a struct, which is a programming error.
func Override[P any](base, other P) P {
	out := base
	if err := mergo.Merge(&out, other, mergo.WithOverride, mergo.WithTransformers(presence{})); err != nil {
		panic(fmt.Sprintf("partial: override %T: %v", base, err))
	}
	return out
}
