// Package openaikit is a small, typed client for the OpenAI HTTP API.
//
// It covers model listing and retrieval, text completions, chat completions,
// and edits. Every operation is a single request/response exchange over HTTPS
// with the credential attached as a bearer token; there is no retry policy,
// pagination, or caching in the core — those are the caller's business.
//
// https://platform.openai.com/docs/api-reference
package openaikit
