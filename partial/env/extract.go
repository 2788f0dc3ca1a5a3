// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package env

import (
	"os"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/appetrosyan/partial-config/partial"
)

// Lookup reports the value of one environment variable and whether it is
// set. [os.LookupEnv] is the default.
type Lookup func(name string) (string, bool)

// Extract resolves one field from its ordered list of candidate variables.
//
// Candidates are read in order. Unset variables and variables holding
// invalid UTF-8 are skipped, the latter with a warning. The first valid
// value wins; a later candidate with the same value only produces a
// redundancy warning, while a later candidate with a different value stops
// the scan with a [*partial.InconsistentSettingError] naming both.
//
// The result is absent when no candidate was usable.
func Extract(log *zerolog.Logger, lookup Lookup, candidates ...string) (partial.Optional[string], error) {
	if log == nil {
		nop := zerolog.Nop()
		log = &nop
	}
	if lookup == nil {
		lookup = os.LookupEnv
	}

	var (
		found    bool
		origin   string
		resolved string
	)

	for _, candidate := range candidates {
		value, ok := lookup(candidate)
		if !ok {
			continue
		}

		if !utf8.ValidString(value) {
			log.Warn().
				Str("variable", candidate).
				Bytes("raw", []byte(value)).
				Msg("environment variable value is not valid UTF-8, ignoring it")
			continue
		}

		switch {
		case !found:
			found, origin, resolved = true, candidate, value
		case value == resolved:
			log.Warn().
				Str("variable", candidate).
				Str("previous", origin).
				Msg("redundant specification of environment variable")
		default:
			log.Error().
				Str("variable", candidate).
				Str("expected", resolved).
				Str("found", value).
				Msg("inconsistent specification via environment variable")
			return partial.None[string](), &partial.InconsistentSettingError{
				FirstSource:   "Environment variable " + origin,
				FirstSetting:  resolved,
				SecondSource:  "Environment variable " + candidate,
				SecondSetting: value,
			}
		}
	}

	if !found {
		return partial.None[string](), nil
	}
	return partial.Some(resolved), nil
}
