// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package remote provides a configuration layer fetched over HTTP.
//
// The document may be JSON, TOML, YAML or HCL. The format is taken from the
// Content-Type of the response and, failing that, from the extension of the
// URL path.
package remote

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/appetrosyan/partial-config/partial"
	"github.com/appetrosyan/partial-config/partial/file"
)

var (
	// ErrUnexpectedStatus is returned for any non-2xx response not allowed
	// by an option.
	ErrUnexpectedStatus = errors.New("unexpected response status")

	// ErrUnknownFormat is returned when neither the Content-Type nor the URL
	// tells the document format.
	ErrUnknownFormat = errors.New("cannot tell remote document format")
)

const (
	defaultTimeout    = 15 * time.Second
	defaultRetryCount = 2
)

// Option configures a remote source.
type Option func(*options)

type options struct {
	ctx           context.Context
	timeout       time.Duration
	retries       int
	headers       map[string]string
	format        file.Format
	allowNotFound bool
	client        *resty.Client
}

// WithContext bounds the request with ctx.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		o.ctx = ctx
	}
}

// WithTimeout overrides the default 15 second request timeout.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithRetryCount sets how many times a failed request is retried.
func WithRetryCount(n int) Option {
	return func(o *options) {
		o.retries = n
	}
}

// WithHeader adds a request header, e.g. an Authorization token.
func WithHeader(key, value string) Option {
	return func(o *options) {
		o.headers[key] = value
	}
}

// WithFormat forces the document format.
func WithFormat(f file.Format) Option {
	return func(o *options) {
		o.format = f
	}
}

// AllowNotFound makes a 404 response an empty layer instead of an error.
func AllowNotFound() Option {
	return func(o *options) {
		o.allowNotFound = true
	}
}

// WithClient uses c instead of a new resty client. Timeout and retry
// options are still applied to it.
func WithClient(c *resty.Client) Option {
	return func(o *options) {
		o.client = c
	}
}

type source[P any] struct {
	url  string
	opts options
}

// URL returns a source fetching the document at rawURL.
func URL[P any](rawURL string, opts ...Option) partial.Source[P] {
	o := options{
		ctx:     context.Background(),
		timeout: defaultTimeout,
		retries: defaultRetryCount,
		headers: make(map[string]string),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return source[P]{url: rawURL, opts: o}
}

func (s source[P]) Name() string {
	return "Remote configuration at " + s.url
}

func (s source[P]) ToPartial() (P, error) {
	var zero P

	cli := s.opts.client
	if cli == nil {
		cli = resty.New()
	}
	cli.SetTimeout(s.opts.timeout).SetRetryCount(s.opts.retries)

	resp, err := cli.R().
		SetContext(s.opts.ctx).
		SetHeaders(s.opts.headers).
		SetHeader("Accept", "application/json, application/toml, application/yaml, */*").
		Get(s.url)
	if err != nil {
		return zero, fmt.Errorf("fetch %s: %w", s.url, err)
	}

	if resp.StatusCode() == http.StatusNotFound && s.opts.allowNotFound {
		return zero, nil
	}
	if !resp.IsSuccess() {
		body := strings.TrimSpace(string(resp.Body()))
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return zero, fmt.Errorf("%w: http %d: %s", ErrUnexpectedStatus, resp.StatusCode(), body)
	}

	format := s.opts.format
	if format == "" {
		format, err = detectFormat(resp.Header().Get("Content-Type"), s.url)
		if err != nil {
			return zero, err
		}
	}

	return file.Decode[P](format, resp.Body(), s.url)
}

func detectFormat(contentType, rawURL string) (file.Format, error) {
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		switch {
		case strings.HasSuffix(mediaType, "json"):
			return file.FormatJSON, nil
		case strings.HasSuffix(mediaType, "toml"):
			return file.FormatTOML, nil
		case strings.HasSuffix(mediaType, "yaml"), strings.HasSuffix(mediaType, "yml"):
			return file.FormatYAML, nil
		case strings.HasSuffix(mediaType, "hcl"):
			return file.FormatHCL, nil
		}
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnknownFormat, err)
	}
	format, err := file.FormatFromExtension(path.Ext(u.Path))
	if err != nil {
		return "", fmt.Errorf("%w: content type %q: %w", ErrUnknownFormat, contentType, err)
	}
	return format, nil
}
