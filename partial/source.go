// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package partial

//go:generate mockgen -source=source.go -destination=../internal/mock/source_mock.go -package=mock

// Unspecified is the name reported by a [Maybe] wrapper around no source.
const Unspecified = "Unspecified"

// Source produces one configuration layer.
//
// ToPartial is the consuming step: sources perform their I/O there and
// callers should not invoke it more than once. Name must be free of side
// effects; it is logged before the layer is applied and used in errors.
type Source[P any] interface {
	ToPartial() (P, error)
	Name() string
}

type maybeSource[P any] struct {
	inner Source[P]
}

// Maybe wraps an optional source. A nil src contributes an empty layer and
// is reported as [Unspecified]; a non-nil src behaves exactly like itself.
func Maybe[P any](src Source[P]) Source[P] {
	return maybeSource[P]{inner: src}
}

func (m maybeSource[P]) ToPartial() (P, error) {
	if m.inner == nil {
		var empty P
		return empty, nil
	}
	return m.inner.ToPartial()
}

func (m maybeSource[P]) Name() string {
	if m.inner == nil {
		return Unspecified
	}
	return m.inner.Name()
}

type staticSource[P any] struct {
	name  string
	value P
}

// Static returns a source that always yields p. It is the usual way to
// put hard-coded defaults at the bottom of a chain.
func Static[P any](name string, p P) Source[P] {
	return staticSource[P]{name: name, value: p}
}

func (s staticSource[P]) ToPartial() (P, error) {
	return s.value, nil
}

func (s staticSource[P]) Name() string {
	return s.name
}
