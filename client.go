package openaikit

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"
)

const (
	// DefaultBaseURL is the fixed API endpoint used unless overridden.
	DefaultBaseURL = "https://api.openai.com/v1"

	defaultUserAgent = "openaikit/1.0"
)

// Client bundles the credential, base URL, and transport handle. It is
// immutable after construction and safe for concurrent use by multiple
// goroutines without synchronization.
type Client struct {
	credential   Credential
	baseURL      string
	organization string
	userAgent    string
	headers      map[string]string
	httpClient   *http.Client
	logger       *zap.Logger
}

// New builds a Client from an API key and options. It fails with a
// *ConfigurationError when the key is empty or the base URL does not parse;
// no network call is made.
func New(apiKey string, opts ...Option) (*Client, error) {
	options := Options{
		BaseURL:   DefaultBaseURL,
		UserAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(&options)
	}

	credential := NewCredential(strings.TrimSpace(apiKey))
	if credential.Empty() {
		return nil, &ConfigurationError{Reason: "API key must not be empty"}
	}

	base := strings.TrimSuffix(options.BaseURL, "/")
	if base == "" {
		return nil, &ConfigurationError{Reason: "base URL must not be empty"}
	}
	if u, err := url.Parse(base); err != nil || u.Scheme == "" || u.Host == "" {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("base URL %q is not a valid absolute URL", base)}
	}

	httpClient := options.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: options.Timeout}
	}

	logger := options.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		credential:   credential,
		baseURL:      base,
		organization: options.Organization,
		userAgent:    options.UserAgent,
		headers:      options.Headers,
		httpClient:   httpClient,
		logger:       logger,
	}, nil
}

// BaseURL returns the endpoint the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// setHeaders attaches the common headers to an outgoing request.
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", c.credential.bearer())
	req.Header.Set("User-Agent", c.userAgent)

	if c.organization != "" {
		req.Header.Set("OpenAI-Organization", c.organization)
	}

	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
}
