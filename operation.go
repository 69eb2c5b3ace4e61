package openaikit

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Operation describes one remote endpoint: its HTTP method, its path under
// the base URL, and the request/response payload types. Adding an operation
// means declaring a descriptor and a thin wrapper; the transport logic below
// is shared and never touched.
type Operation[Req, Resp any] struct {
	Name   string
	Method string
	Path   string
}

// Void is the request payload of body-less operations.
type Void struct{}

// validatable is implemented by request payloads that carry a required-field
// set. Invoke checks it before any serialization is attempted.
type validatable interface {
	Validate() error
}

// Invoke performs a single request/response exchange for op. The payload is
// validated, serialized as the JSON body (GET operations send none), and the
// response is decoded into the operation's response type. Every failure maps
// to exactly one of the typed errors in this package; nothing is retried.
func Invoke[Req, Resp any](ctx context.Context, c *Client, op Operation[Req, Resp], payload Req) (Resp, error) {
	var zero Resp

	if v, ok := any(payload).(validatable); ok {
		if err := v.Validate(); err != nil {
			return zero, &SerializationError{Operation: op.Name, Err: err}
		}
	}

	var body io.Reader
	if op.Method != http.MethodGet && op.Method != http.MethodDelete {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return zero, &SerializationError{Operation: op.Name, Err: err}
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, op.Method, c.baseURL+op.Path, body)
	if err != nil {
		return zero, &TransportError{Operation: op.Name, Err: err}
	}
	c.setHeaders(req)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return zero, &TransportError{Operation: op.Name, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return zero, &TransportError{Operation: op.Name, Err: err}
	}

	c.logger.Debug("request completed",
		zap.String("operation", op.Name),
		zap.String("method", op.Method),
		zap.String("path", op.Path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return zero, newAPIError(op.Name, resp.StatusCode, respBody)
	}

	var out Resp
	if err := json.Unmarshal(respBody, &out); err != nil {
		var derr *DeserializationError
		if errors.As(err, &derr) {
			derr.Operation = op.Name
			return zero, derr
		}
		return zero, &DeserializationError{Operation: op.Name, Err: err}
	}

	return out, nil
}

// Result carries the outcome of an asynchronous invocation.
type Result[T any] struct {
	Value T
	Err   error
}

// InvokeAsync runs the exchange in its own goroutine and delivers exactly
// one Result on the returned channel. The channel is buffered, so the result
// is never lost even if the caller reads late. Cancellation flows through
// ctx as with Invoke.
func InvokeAsync[Req, Resp any](ctx context.Context, c *Client, op Operation[Req, Resp], payload Req) <-chan Result[Resp] {
	ch := make(chan Result[Resp], 1)
	go func() {
		value, err := Invoke(ctx, c, op, payload)
		ch <- Result[Resp]{Value: value, Err: err}
	}()
	return ch
}

// errorEnvelope is the JSON error body the endpoint returns alongside
// non-success statuses.
type errorEnvelope struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error"`
}

func newAPIError(operation string, status int, body []byte) *APIError {
	apiErr := &APIError{
		Operation:  operation,
		StatusCode: status,
		Body:       body,
	}
	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil {
		apiErr.Message = envelope.Error.Message
		apiErr.Type = envelope.Error.Type
		apiErr.Code = envelope.Error.Code
	}
	return apiErr
}
