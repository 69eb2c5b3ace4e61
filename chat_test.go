package openaikit

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
)

func TestCreateChatCompletion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("expected /chat/completions, got %s", r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		if !strings.Contains(string(body), `"role":"user"`) {
			t.Errorf("user message not serialized: %s", body)
		}
		w.Write([]byte(`{
			"id": "chatcmpl-1",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "hi there"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 9, "completion_tokens": 3, "total_tokens": 12}
		}`))
	}))
	defer srv.Close()

	c, err := New("sk-test", WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	resp, err := c.CreateChatCompletion(context.Background(), ChatCompletionRequest{
		Model: "gpt-3.5-turbo",
		Messages: []ChatMessage{
			{Role: RoleSystem, Content: "be brief"},
			{Role: RoleUser, Content: "hello"},
		},
	})
	if err != nil {
		t.Fatalf("CreateChatCompletion: %v", err)
	}
	if resp.Choices[0].Message.Content != "hi there" {
		t.Fatalf("unexpected reply: %q", resp.Choices[0].Message.Content)
	}
	if resp.Choices[0].Message.Role != RoleAssistant {
		t.Fatalf("unexpected role: %q", resp.Choices[0].Message.Role)
	}
	if resp.Usage == nil || resp.Usage.TotalTokens != 12 {
		t.Fatalf("unexpected usage: %+v", resp.Usage)
	}
}

func TestCreateChatCompletion_RequiresMessages(t *testing.T) {
	c, err := New("sk-test")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, err = c.CreateChatCompletion(context.Background(), ChatCompletionRequest{Model: "gpt-4"})
	var serErr *SerializationError
	if !errors.As(err, &serErr) {
		t.Fatalf("expected *SerializationError, got %v", err)
	}
	if !strings.Contains(err.Error(), `"messages"`) {
		t.Fatalf("expected error to name messages, got %v", err)
	}
}

func TestCreateChatCompletion_RejectsUnknownRole(t *testing.T) {
	c, err := New("sk-test")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, err = c.CreateChatCompletion(context.Background(), ChatCompletionRequest{
		Model:    "gpt-4",
		Messages: []ChatMessage{{Role: "robot", Content: "beep"}},
	})
	var serErr *SerializationError
	if !errors.As(err, &serErr) {
		t.Fatalf("expected *SerializationError for unknown role, got %v", err)
	}
}

func TestCreateChatCompletion_ChoiceWithoutMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[{"index":0,"finish_reason":"stop"}]}`))
	}))
	defer srv.Close()

	c, err := New("sk-test", WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, err = c.CreateChatCompletion(context.Background(), ChatCompletionRequest{
		Model:    "gpt-4",
		Messages: []ChatMessage{{Role: RoleUser, Content: "hello"}},
	})
	var derr *DeserializationError
	if !errors.As(err, &derr) {
		t.Fatalf("expected *DeserializationError, got %v", err)
	}
	if derr.Field != "message" {
		t.Fatalf("expected missing field message, got %q", derr.Field)
	}
}

func TestChatCompletionRequest_RoundTrip(t *testing.T) {
	req := ChatCompletionRequest{
		Model: "gpt-4",
		Messages: []ChatMessage{
			{Role: RoleSystem, Content: "be brief"},
			{Role: RoleUser, Content: "hello"},
		},
		MaxTokens:   128,
		Temperature: 0.7,
		Stop:        []string{"END"},
		User:        "tester",
	}

	data, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var back ChatCompletionRequest
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if !reflect.DeepEqual(req, back) {
		t.Fatalf("round trip mismatch:\nhave %+v\nwant %+v", back, req)
	}
}
