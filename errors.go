package openaikit

import (
	"fmt"
)

// ConfigurationError reports that a client could not be constructed from the
// given inputs. No network call is ever attempted before construction
// succeeds.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "openaikit: invalid configuration: " + e.Reason
}

// TransportError wraps a failure to complete the HTTP exchange itself:
// connection refused, timeout, DNS failure, or an aborted response body.
// The core never retries; inspect the wrapped error and decide upstream.
type TransportError struct {
	Operation string
	Err       error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("openaikit: %s: transport: %v", e.Operation, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// SerializationError reports that a request payload could not be turned into
// a valid wire body. This covers both encoding failures and payloads that
// fail their required-field validation; either way it is a programming error
// on the caller's side, not a remote fault.
type SerializationError struct {
	Operation string
	Err       error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("openaikit: %s: serialize request: %v", e.Operation, e.Err)
}

func (e *SerializationError) Unwrap() error { return e.Err }

// APIError is a non-success status returned by the endpoint. The structured
// error envelope is parsed when the server provides one; Body always carries
// the raw response for diagnosis.
type APIError struct {
	Operation  string
	StatusCode int
	Type       string
	Code       string
	Message    string
	Body       []byte
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("openaikit: %s: API error: status %d: %s", e.Operation, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("openaikit: %s: API error: status %d", e.Operation, e.StatusCode)
}

// DeserializationError reports a response body that does not match the
// operation's schema. When a required field was absent from the payload,
// Field names it; otherwise Err carries the decoding failure.
type DeserializationError struct {
	Operation string
	Field     string
	Err       error
}

func (e *DeserializationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("openaikit: %s: response field %q not found", e.Operation, e.Field)
	}
	return fmt.Sprintf("openaikit: %s: parse response: %v", e.Operation, e.Err)
}

func (e *DeserializationError) Unwrap() error { return e.Err }
