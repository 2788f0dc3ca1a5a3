// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package partial

import "github.com/rs/zerolog"

// Overrider is implemented by partial structs. OverrideWith returns a new
// value where every field present in other wins and every other field is
// kept from the receiver. It must be pure and must not fail.
//
// Most implementations simply delegate to [Override].
type Overrider[P any] interface {
	OverrideWith(other P) P
}

// Partial pairs a partial struct P with the target configuration T it
// builds.
//
// Build turns a fully merged P into T. It must try every field and report
// all absent required fields at once (see [Assemble] and [Missing]); log
// receives the diagnostic events and may be nil.
type Partial[P, T any] interface {
	Overrider[P]
	Build(log *zerolog.Logger) (T, error)
}

// ConfigPath is implemented by partial structs that may carry the location
// of a configuration file, typically taken from a flag or an environment
// variable before the file itself is read.
type ConfigPath interface {
	ConfigPath() (string, bool)
}

func orNop(log *zerolog.Logger) *zerolog.Logger {
	if log == nil {
		nop := zerolog.Nop()
		return &nop
	}
	return log
}
