// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package partial

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"pgregory.net/rapid"
)

// ── fixtures ─────────────────────────────────────────────────────────────────

type testConfig struct {
	Str1   string
	Port   uint64
	Height *uint64
}

type partialTestConfig struct {
	Str1   Optional[string] `partial:"str1"`
	Port   Optional[uint64] `partial:"port"`
	Height Optional[uint64] `partial:"height"`
}

func (p partialTestConfig) OverrideWith(o partialTestConfig) partialTestConfig {
	return Override(p, o)
}

func (p partialTestConfig) Build(log *zerolog.Logger) (testConfig, error) {
	return Assemble[testConfig](p, log)
}

func bufferLogger(t *testing.T) (*zerolog.Logger, *bytes.Buffer) {
	t.Helper()
	buf := new(bytes.Buffer)
	log := zerolog.New(buf)
	return &log, buf
}

func drawPartial(t *rapid.T, label string) partialTestConfig {
	var p partialTestConfig
	if rapid.Bool().Draw(t, label+".str1.set") {
		p.Str1 = Some(rapid.String().Draw(t, label+".str1"))
	}
	if rapid.Bool().Draw(t, label+".port.set") {
		p.Port = Some(rapid.Uint64().Draw(t, label+".port"))
	}
	if rapid.Bool().Draw(t, label+".height.set") {
		p.Height = Some(rapid.Uint64().Draw(t, label+".height"))
	}
	return p
}
