// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package file

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/pelletier/go-toml/v2"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// Format identifies a configuration document syntax.
type Format string

const (
	FormatJSON Format = "JSON"
	FormatTOML Format = "TOML"
	FormatYAML Format = "YAML"
	FormatHCL  Format = "HCL"
)

// FormatFromExtension maps a file extension, with or without the leading
// dot, to its format.
func FormatFromExtension(ext string) (Format, error) {
	ext = strings.TrimPrefix(ext, ".")
	if ext == "" {
		return "", ErrNoExtension
	}

	switch strings.ToLower(ext) {
	case "toml", "tml":
		return FormatTOML, nil
	case "json", "js":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "hcl":
		return FormatHCL, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedExtension, ext)
	}
}

// Decode parses data in the given format into a fresh P. filename is only
// used in diagnostics.
//
// Every format is first converted to JSON so that P's Optional fields see
// the same null and string-fallback rules regardless of syntax.
func Decode[P any](format Format, data []byte, filename string) (P, error) {
	var p P

	doc, err := toJSON(format, data, filename)
	if err != nil {
		return p, fmt.Errorf("%w: %s %s: %w", ErrDecode, format, filename, err)
	}

	if err := sonic.ConfigStd.Unmarshal(doc, &p); err != nil {
		var zero P
		return zero, fmt.Errorf("%w: %s %s: %w", ErrDecode, format, filename, err)
	}

	return p, nil
}

func toJSON(format Format, data []byte, filename string) ([]byte, error) {
	if format != FormatJSON && len(bytes.TrimSpace(data)) == 0 {
		return []byte("{}"), nil
	}

	switch format {
	case FormatJSON:
		return data, nil
	case FormatTOML:
		var doc map[string]any
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
		return sonic.ConfigStd.Marshal(doc)
	case FormatYAML:
		return yaml.YAMLToJSON(data)
	case FormatHCL:
		return hclToJSON(data, filename)
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

// hclToJSON evaluates the top-level attributes of an HCL body. Blocks are
// not supported and variables or functions are not available.
func hclToJSON(data []byte, filename string) ([]byte, error) {
	parsed, diags := hclparse.NewParser().ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, diags
	}

	attrs, diags := parsed.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, diags
	}

	doc := make(map[string]ctyjson.SimpleJSONValue, len(attrs))
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, diags
		}
		doc[name] = ctyjson.SimpleJSONValue{Value: val}
	}

	return sonic.ConfigStd.Marshal(doc)
}
