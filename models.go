package openaikit

import (
	"context"
	"net/http"
	"net/url"
)

// Model describes one model available to the credential, with basic
// information such as the owner and permissioning.
type Model struct {
	ID         string            `json:"id"`
	Object     string            `json:"object,omitempty"`
	Created    int64             `json:"created,omitempty"`
	OwnedBy    string            `json:"owned_by,omitempty"`
	Root       string            `json:"root,omitempty"`
	Parent     string            `json:"parent,omitempty"`
	Permission []ModelPermission `json:"permission,omitempty"`
}

// UnmarshalJSON fails when the wire payload omits the model ID instead of
// producing a zero-valued entry.
func (m *Model) UnmarshalJSON(data []byte) error {
	type alias Model
	var a alias
	if err := decodeStrict(data, &a, "id"); err != nil {
		return err
	}
	*m = Model(a)
	return nil
}

// ModelPermission is one entry of a model's permission list.
type ModelPermission struct {
	ID                 string `json:"id"`
	Object             string `json:"object,omitempty"`
	Created            int64  `json:"created,omitempty"`
	AllowCreateEngine  bool   `json:"allow_create_engine"`
	AllowFineTuning    bool   `json:"allow_fine_tuning"`
	AllowLogprobs      bool   `json:"allow_logprobs"`
	AllowSampling      bool   `json:"allow_sampling"`
	AllowSearchIndices bool   `json:"allow_search_indices"`
	AllowView          bool   `json:"allow_view"`
	IsBlocking         bool   `json:"is_blocking"`
	Organization       string `json:"organization,omitempty"`
	Group              string `json:"group,omitempty"`
}

// ModelList is the response of the model listing operation.
type ModelList struct {
	Object string  `json:"object,omitempty"`
	Data   []Model `json:"data"`
}

// UnmarshalJSON fails when the listing has no "data" array at all.
func (l *ModelList) UnmarshalJSON(data []byte) error {
	type alias ModelList
	var a alias
	if err := decodeStrict(data, &a, "data"); err != nil {
		return err
	}
	*l = ModelList(a)
	return nil
}

var listModelsOp = Operation[Void, ModelList]{
	Name:   "list_models",
	Method: http.MethodGet,
	Path:   "/models",
}

// ListModels lists the currently available models, and provides basic
// information about each one such as the owner and availability.
func (c *Client) ListModels(ctx context.Context) ([]Model, error) {
	list, err := Invoke(ctx, c, listModelsOp, Void{})
	if err != nil {
		return nil, err
	}
	return list.Data, nil
}

// GetModel retrieves a single model by ID.
func (c *Client) GetModel(ctx context.Context, modelID string) (*Model, error) {
	op := Operation[Void, Model]{
		Name:   "retrieve_model",
		Method: http.MethodGet,
		Path:   "/models/" + url.PathEscape(modelID),
	}
	model, err := Invoke(ctx, c, op, Void{})
	if err != nil {
		return nil, err
	}
	return &model, nil
}

// Advisory per-endpoint model catalogs. The server remains the source of
// truth; these are not enforced by Invoke.
var (
	// CompletionModels are known to accept the completions endpoint.
	CompletionModels = []string{
		"text-davinci-003",
		"text-davinci-002",
		"text-curie-001",
		"text-babbage-001",
		"text-ada-001",
		"davinci",
		"curie",
		"babbage",
		"ada",
	}

	// ChatModels are known to accept the chat completions endpoint.
	ChatModels = []string{
		"gpt-4",
		"gpt-4-0314",
		"gpt-4-32k",
		"gpt-4-32k-0314",
		"gpt-3.5-turbo",
		"gpt-3.5-turbo-0301",
	}

	// EditModels are known to accept the edits endpoint.
	EditModels = []string{
		"text-davinci-edit-001",
		"code-davinci-edit-001",
	}
)

// SupportsCompletion reports whether model is in the completion catalog.
func SupportsCompletion(model string) bool { return contains(CompletionModels, model) }

// SupportsChat reports whether model is in the chat catalog.
func SupportsChat(model string) bool { return contains(ChatModels, model) }

// SupportsEdits reports whether model is in the edits catalog.
func SupportsEdits(model string) bool { return contains(EditModels, model) }

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
