// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/appetrosyan/partial-config/partial"
)

var (
	// ErrNoFile is returned when the configuration file does not exist.
	ErrNoFile = errors.New("configuration file not found")

	// ErrNoExtension is returned by [Path] for a file without extension,
	// since the format cannot be told.
	ErrNoExtension = errors.New("configuration file has no extension")

	// ErrUnsupportedExtension is returned by [Path] for an extension that
	// maps to no known format.
	ErrUnsupportedExtension = errors.New("unsupported configuration file extension")

	// ErrOpen wraps file system failures other than a missing file.
	ErrOpen = errors.New("cannot open configuration file")

	// ErrDecode wraps syntax and type errors in the document.
	ErrDecode = errors.New("cannot decode configuration file")
)

type source[P any] struct {
	path   string
	format Format
}

// JSON reads path as a JSON document.
func JSON[P any](path string) partial.Source[P] {
	return source[P]{path: path, format: FormatJSON}
}

// TOML reads path as a TOML document.
func TOML[P any](path string) partial.Source[P] {
	return source[P]{path: path, format: FormatTOML}
}

// YAML reads path as a YAML document.
func YAML[P any](path string) partial.Source[P] {
	return source[P]{path: path, format: FormatYAML}
}

// HCL reads the top-level attributes of path as an HCL body.
func HCL[P any](path string) partial.Source[P] {
	return source[P]{path: path, format: FormatHCL}
}

func (s source[P]) Name() string {
	return fmt.Sprintf("%s file at %q", s.format, s.path)
}

func (s source[P]) ToPartial() (P, error) {
	return read[P](s.path, s.format)
}

type pathSource[P any] struct {
	path string
}

// Path picks the format from the extension of path when the layer is
// read: toml or tml, json or js, yaml or yml, and hcl.
func Path[P any](path string) partial.Source[P] {
	return pathSource[P]{path: path}
}

func (s pathSource[P]) Name() string {
	return fmt.Sprintf("Configuration file at %q", s.path)
}

func (s pathSource[P]) ToPartial() (P, error) {
	var zero P

	if _, err := os.Stat(s.path); err != nil {
		return zero, openError(s.path, err)
	}

	format, err := FormatFromExtension(filepath.Ext(s.path))
	if err != nil {
		return zero, fmt.Errorf("%s: %w", s.path, err)
	}

	return read[P](s.path, format)
}

// FromConfigPath returns a [Path] source for the file named by cp, or an
// empty [partial.Unspecified] layer when cp names none.
func FromConfigPath[P any](cp partial.ConfigPath) partial.Source[P] {
	if cp == nil {
		return partial.Maybe[P](nil)
	}
	if path, ok := cp.ConfigPath(); ok && path != "" {
		return partial.Maybe(Path[P](path))
	}
	return partial.Maybe[P](nil)
}

func read[P any](path string, format Format) (P, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		var zero P
		return zero, openError(path, err)
	}

	return Decode[P](format, data, path)
}

func openError(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrNoFile, path)
	}
	return fmt.Errorf("%w: %w", ErrOpen, err)
}
