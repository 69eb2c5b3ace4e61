package openaikit

import (
	"context"
	"net/http"

	"github.com/lunarbyte/openaikit/internal/validator"
)

// CompletionRequest asks a model to predict one or more completions for the
// given prompt(s). Only Model is required; zero-valued optional fields are
// omitted from the body so the server applies its own defaults.
type CompletionRequest struct {
	Model       string   `json:"model" req:"required"`
	Prompt      []string `json:"prompt,omitempty"`
	Suffix      string   `json:"suffix,omitempty"`
	MaxTokens   int      `json:"max_tokens,omitempty"`
	Temperature float32  `json:"temperature,omitempty" req:"max:2"`
	TopP        float32  `json:"top_p,omitempty" req:"max:1"`
	N           int      `json:"n,omitempty" req:"min:1"`
	Stream      bool     `json:"stream,omitempty"`
	// The API caps logprobs at 5 without a support exception.
	Logprobs         int            `json:"logprobs,omitempty" req:"max:5"`
	Echo             bool           `json:"echo,omitempty"`
	Stop             []string       `json:"stop,omitempty"`
	PresencePenalty  float32        `json:"presence_penalty,omitempty" req:"min:-2,max:2"`
	FrequencyPenalty float32        `json:"frequency_penalty,omitempty" req:"min:-2,max:2"`
	BestOf           int            `json:"best_of,omitempty"`
	LogitBias        map[string]int `json:"logit_bias,omitempty"`
	User             string         `json:"user,omitempty"`
}

// Validate checks the required-field set and value bounds.
func (r CompletionRequest) Validate() error {
	return validator.Validate(r)
}

// CompletionResponse is the generated text plus usage metadata.
type CompletionResponse struct {
	ID      string             `json:"id,omitempty"`
	Object  string             `json:"object,omitempty"`
	Created int64              `json:"created,omitempty"`
	Model   string             `json:"model,omitempty"`
	Choices []CompletionChoice `json:"choices"`
	Usage   *Usage             `json:"usage,omitempty"`
}

// UnmarshalJSON fails when the response carries no "choices" array.
func (r *CompletionResponse) UnmarshalJSON(data []byte) error {
	type alias CompletionResponse
	var a alias
	if err := decodeStrict(data, &a, "choices"); err != nil {
		return err
	}
	*r = CompletionResponse(a)
	return nil
}

// CompletionChoice is one generated completion.
type CompletionChoice struct {
	Text         string `json:"text"`
	Index        int    `json:"index,omitempty"`
	Logprobs     *int   `json:"logprobs,omitempty"`
	FinishReason string `json:"finish_reason,omitempty"`
}

// UnmarshalJSON fails when a choice has no text rather than defaulting to "".
func (ch *CompletionChoice) UnmarshalJSON(data []byte) error {
	type alias CompletionChoice
	var a alias
	if err := decodeStrict(data, &a, "text"); err != nil {
		return err
	}
	*ch = CompletionChoice(a)
	return nil
}

// Usage reports the token accounting of a generation.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

var createCompletionOp = Operation[CompletionRequest, CompletionResponse]{
	Name:   "create_completion",
	Method: http.MethodPost,
	Path:   "/completions",
}

// CreateCompletion submits a text completion request and returns the
// generated text with its usage metadata.
func (c *Client) CreateCompletion(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	resp, err := Invoke(ctx, c, createCompletionOp, req)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
