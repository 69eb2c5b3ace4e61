package openaikit

import (
	"context"
	"net/http"

	"github.com/lunarbyte/openaikit/internal/validator"
)

// EditRequest asks a model to rewrite Input according to Instruction.
type EditRequest struct {
	Model       string  `json:"model" req:"required"`
	Instruction string  `json:"instruction" req:"required"`
	Input       string  `json:"input,omitempty"`
	N           int     `json:"n,omitempty" req:"min:1"`
	Temperature float32 `json:"temperature,omitempty" req:"max:2"`
	TopP        float32 `json:"top_p,omitempty" req:"max:1"`
}

// Validate checks the required-field set and value bounds.
func (r EditRequest) Validate() error {
	return validator.Validate(r)
}

// EditResponse carries the rewritten text.
type EditResponse struct {
	Object  string       `json:"object,omitempty"`
	Created int64        `json:"created,omitempty"`
	Choices []EditChoice `json:"choices"`
	Usage   *Usage       `json:"usage,omitempty"`
}

// UnmarshalJSON fails when the response carries no "choices" array.
func (r *EditResponse) UnmarshalJSON(data []byte) error {
	type alias EditResponse
	var a alias
	if err := decodeStrict(data, &a, "choices"); err != nil {
		return err
	}
	*r = EditResponse(a)
	return nil
}

// EditChoice is one rewritten variant.
type EditChoice struct {
	Text  string `json:"text"`
	Index int    `json:"index,omitempty"`
}

// UnmarshalJSON fails when a choice has no text.
func (ch *EditChoice) UnmarshalJSON(data []byte) error {
	type alias EditChoice
	var a alias
	if err := decodeStrict(data, &a, "text"); err != nil {
		return err
	}
	*ch = EditChoice(a)
	return nil
}

var createEditOp = Operation[EditRequest, EditResponse]{
	Name:   "create_edit",
	Method: http.MethodPost,
	Path:   "/edits",
}

// CreateEdit submits an edit request and returns the rewritten text.
func (c *Client) CreateEdit(ctx context.Context, req EditRequest) (*EditResponse, error) {
	resp, err := Invoke(ctx, c, createEditOp, req)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
