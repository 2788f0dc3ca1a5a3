// Package http serves the effective configuration over HTTP.
//
// GET /api/config returns the shareable layer as JSON, so one instance can
// be the remote configuration source of another. Request tracing and
// access logging wrap every route.
package http
