package openaikit

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Options collects the configurable pieces of a Client. Zero values mean
// "use the default"; the credential itself is passed to New directly.
type Options struct {
	// BaseURL overrides the fixed API endpoint, e.g. for a proxy or a test
	// server. Defaults to DefaultBaseURL.
	BaseURL string

	// Organization, when set, is sent as the OpenAI-Organization header.
	Organization string

	// UserAgent replaces the default User-Agent header.
	UserAgent string

	// HTTPClient supplies the transport. Defaults to a plain http.Client
	// with no timeout; timeouts belong to the transport or the context,
	// never to the core.
	HTTPClient *http.Client

	// Timeout, when non-zero, is applied to the default HTTP client. It is
	// ignored when HTTPClient is set.
	Timeout time.Duration

	// Headers are extra headers attached to every request.
	Headers map[string]string

	// Logger receives debug-level request/response lines. The credential is
	// never logged. Defaults to a no-op logger.
	Logger *zap.Logger
}

// Option is a functional option for New.
type Option func(*Options)

// WithBaseURL overrides the API endpoint.
func WithBaseURL(url string) Option {
	return func(o *Options) {
		o.BaseURL = url
	}
}

// WithOrganization sets the organization ID header.
func WithOrganization(org string) Option {
	return func(o *Options) {
		o.Organization = org
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(o *Options) {
		o.UserAgent = ua
	}
}

// WithHTTPClient supplies a custom transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *Options) {
		o.HTTPClient = hc
	}
}

// WithTimeout sets a round-trip timeout on the default transport.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) {
		o.Timeout = d
	}
}

// WithHeaders merges extra headers into every request.
func WithHeaders(headers map[string]string) Option {
	return func(o *Options) {
		if o.Headers == nil {
			o.Headers = make(map[string]string)
		}
		for k, v := range headers {
			o.Headers[k] = v
		}
	}
}

// WithLogger enables debug logging of request metadata.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}
