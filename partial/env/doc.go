// Package env reads partial configuration layers from environment
// variables.
//
// A field may be spelled by several variables. They are consulted in tag
// order and must agree: two aliases holding different values are an
// [partial.InconsistentSettingError], never a silent pick.
package env
