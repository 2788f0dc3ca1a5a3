// Package config provides configuration loading, merging, and validation
// facilities for the bundled server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier present fields):
//  1. Built-in defaults
//  2. Configuration file (JSON, TOML, YAML or HCL)
//  3. Remote configuration document
//  4. Settings database
//  5. Environment variables
//  6. Command-line flags
//
// The file, remote document and settings database are located by the
// environment and flags first. The main entry point is [Load].
package config
