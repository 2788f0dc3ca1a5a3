// Package file provides configuration layers read from JSON, TOML, YAML and
// HCL documents.
//
// The document is decoded straight into the partial struct, so keys map to
// fields through their `json` tags and a key that is missing or null leaves
// the field absent.
package file
