// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package partial

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Assemble ─────────────────────────────────────────────────────────────────

func TestAssemble_AllFieldsPresent(t *testing.T) {
	p := partialTestConfig{
		Str1:   Some("X"),
		Port:   Some(uint64(8080)),
		Height: Some(uint64(12)),
	}

	cfg, err := p.Build(nil)

	require.NoError(t, err)
	assert.Equal(t, "X", cfg.Str1)
	assert.Equal(t, uint64(8080), cfg.Port)
	require.NotNil(t, cfg.Height)
	assert.Equal(t, uint64(12), *cfg.Height)
}

func TestAssemble_AbsentOptionalBecomesNil(t *testing.T) {
	p := partialTestConfig{Str1: Some(""), Port: Some(uint64(0))}

	cfg, err := p.Build(nil)

	require.NoError(t, err)
	assert.Equal(t, "", cfg.Str1)
	assert.Equal(t, uint64(0), cfg.Port)
	assert.Nil(t, cfg.Height)
}

func TestAssemble_ReportsEveryMissingField(t *testing.T) {
	cfg, err := partialTestConfig{}.Build(nil)

	require.Error(t, err)
	assert.Equal(t, testConfig{}, cfg)
	assert.ErrorIs(t, err, ErrMissingFields)

	var missing *MissingFieldsError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, []string{"str1", "port"}, missing.Names())
	assert.Equal(t,
		"the required fields [str1, port] were not specified in any of the configuration sources",
		err.Error())
}

func TestAssemble_SingleMissingField(t *testing.T) {
	_, err := partialTestConfig{Str1: Some("X")}.Build(nil)

	var missing *MissingFieldsError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, []MissingField{"port"}, missing.Fields)
}

func TestAssemble_DoesNotModifyPartial(t *testing.T) {
	p := partialTestConfig{Str1: Some("X")}
	_, _ = p.Build(nil)
	assert.Equal(t, partialTestConfig{Str1: Some("X")}, p)
}

func TestAssemble_FieldKinds(t *testing.T) {
	type target struct {
		Name    string
		Timeout *time.Duration
		Token   Optional[string]
	}
	type source struct {
		Name    Optional[string]
		Timeout Optional[time.Duration]
		Token   Optional[string]
	}

	t.Run("passthrough keeps presence", func(t *testing.T) {
		cfg, err := Assemble[target](source{Name: Some("n"), Token: Some("t")}, nil)
		require.NoError(t, err)
		assert.Equal(t, "n", cfg.Name)
		assert.Nil(t, cfg.Timeout)
		assert.Equal(t, Some("t"), cfg.Token)
	})

	t.Run("passthrough absent", func(t *testing.T) {
		cfg, err := Assemble[target](source{Name: Some("n")}, nil)
		require.NoError(t, err)
		assert.False(t, cfg.Token.IsSet())
	})

	t.Run("pointer to partial is accepted", func(t *testing.T) {
		cfg, err := Assemble[target](&source{Name: Some("n"), Timeout: Some(time.Second)}, nil)
		require.NoError(t, err)
		require.NotNil(t, cfg.Timeout)
		assert.Equal(t, time.Second, *cfg.Timeout)
	})
}

func TestAssemble_ShapeErrors(t *testing.T) {
	type target struct {
		A string
		B int
	}

	tests := []struct {
		name    string
		partial any
		wantErr error
	}{
		{
			name: "different field count",
			partial: struct {
				A Optional[string]
			}{},
			wantErr: ErrShapeMismatch,
		},
		{
			name: "different field names",
			partial: struct {
				A Optional[string]
				C Optional[int]
			}{},
			wantErr: ErrShapeMismatch,
		},
		{
			name: "different field types",
			partial: struct {
				A Optional[string]
				B Optional[string]
			}{},
			wantErr: ErrShapeMismatch,
		},
		{
			name: "field is not optional",
			partial: struct {
				A string
				B Optional[int]
			}{},
			wantErr: ErrNotPartial,
		},
		{
			name:    "not a struct",
			partial: 5,
			wantErr: ErrNotPartial,
		},
		{
			name:    "nil pointer",
			partial: (*partialTestConfig)(nil),
			wantErr: ErrNotPartial,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Assemble[target](tt.partial, nil)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAssemble_TargetNotStruct(t *testing.T) {
	_, err := Assemble[int](partialTestConfig{}, nil)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestAssemble_LogsFieldCounts(t *testing.T) {
	log, buf := bufferLogger(t)

	_, err := Assemble[testConfig](partialTestConfig{Str1: Some("X"), Port: Some(uint64(1))}, log)

	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"required":2`)
	assert.Contains(t, buf.String(), `"optional":1`)
	assert.Contains(t, buf.String(), "building configuration")
}

// ── Missing / Require ────────────────────────────────────────────────────────

func TestMissing_ZeroValueHasNoError(t *testing.T) {
	var m Missing
	assert.NoError(t, m.Err())
	assert.Empty(t, m.Fields())
}

func TestRequire_HandWrittenBuild(t *testing.T) {
	var m Missing

	name := Require(&m, "name", Some("svc"))
	port := Require(&m, "port", None[int]())
	host := Require(&m, "host", None[string]())

	assert.Equal(t, "svc", name)
	assert.Equal(t, 0, port)
	assert.Equal(t, "", host)

	err := m.Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingFields)

	var missing *MissingFieldsError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, []string{"port", "host"}, missing.Names())
}

func TestMissing_ErrIsDetached(t *testing.T) {
	var m Missing
	m.Add("a")

	err := m.Err()
	m.Add("b")

	var missing *MissingFieldsError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, []string{"a"}, missing.Names())
}
