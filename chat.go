package openaikit

import (
	"context"
	"net/http"

	"github.com/lunarbyte/openaikit/internal/validator"
)

// Role is the author of a chat message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatMessage is one turn of a conversation.
type ChatMessage struct {
	Role    Role   `json:"role" req:"required,enum:system|user|assistant"`
	Content string `json:"content"`
}

// ChatCompletionRequest asks a chat model to continue a conversation.
type ChatCompletionRequest struct {
	Model            string         `json:"model" req:"required"`
	Messages         []ChatMessage  `json:"messages" req:"required"`
	MaxTokens        int            `json:"max_tokens,omitempty"`
	Temperature      float32        `json:"temperature,omitempty" req:"max:2"`
	TopP             float32        `json:"top_p,omitempty" req:"max:1"`
	N                int            `json:"n,omitempty" req:"min:1"`
	Stream           bool           `json:"stream,omitempty"`
	Stop             []string       `json:"stop,omitempty"`
	PresencePenalty  float32        `json:"presence_penalty,omitempty" req:"min:-2,max:2"`
	FrequencyPenalty float32        `json:"frequency_penalty,omitempty" req:"min:-2,max:2"`
	LogitBias        map[string]int `json:"logit_bias,omitempty"`
	User             string         `json:"user,omitempty"`
}

// Validate checks the required-field set: model, at least one message, and a
// known role on every message.
func (r ChatCompletionRequest) Validate() error {
	if err := validator.Validate(r); err != nil {
		return err
	}
	for _, m := range r.Messages {
		if err := validator.Validate(m); err != nil {
			return err
		}
	}
	return nil
}

// ChatCompletionResponse is the model's reply to a conversation.
type ChatCompletionResponse struct {
	ID      string                 `json:"id,omitempty"`
	Object  string                 `json:"object,omitempty"`
	Created int64                  `json:"created,omitempty"`
	Model   string                 `json:"model,omitempty"`
	Choices []ChatCompletionChoice `json:"choices"`
	Usage   *Usage                 `json:"usage,omitempty"`
}

// UnmarshalJSON fails when the response carries no "choices" array.
func (r *ChatCompletionResponse) UnmarshalJSON(data []byte) error {
	type alias ChatCompletionResponse
	var a alias
	if err := decodeStrict(data, &a, "choices"); err != nil {
		return err
	}
	*r = ChatCompletionResponse(a)
	return nil
}

// ChatCompletionChoice is one generated reply.
type ChatCompletionChoice struct {
	Index        int         `json:"index,omitempty"`
	Message      ChatMessage `json:"message"`
	FinishReason string      `json:"finish_reason,omitempty"`
}

// UnmarshalJSON fails when a choice has no message object.
func (ch *ChatCompletionChoice) UnmarshalJSON(data []byte) error {
	type alias ChatCompletionChoice
	var a alias
	if err := decodeStrict(data, &a, "message"); err != nil {
		return err
	}
	*ch = ChatCompletionChoice(a)
	return nil
}

var createChatCompletionOp = Operation[ChatCompletionRequest, ChatCompletionResponse]{
	Name:   "create_chat_completion",
	Method: http.MethodPost,
	Path:   "/chat/completions",
}

// CreateChatCompletion submits a chat conversation and returns the model's
// reply with its usage metadata.
func (c *Client) CreateChatCompletion(ctx context.Context, req ChatCompletionRequest) (*ChatCompletionResponse, error) {
	resp, err := Invoke(ctx, c, createChatCompletionOp, req)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
