package openaikit

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestListModels_SingleEntry(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if r.URL.Path != "/models" {
			t.Errorf("expected /models, got %s", r.URL.Path)
		}
		w.Write([]byte(`{"data":[{"id":"model-a"}]}`))
	}))
	defer srv.Close()

	c, err := New("sk-test", WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	models, err := c.ListModels(context.Background())
	if err != nil {
		t.Fatalf("ListModels: %v", err)
	}
	if len(models) != 1 {
		t.Fatalf("expected exactly one model, got %d", len(models))
	}
	if models[0].ID != "model-a" {
		t.Fatalf("expected model-a, got %q", models[0].ID)
	}
}

func TestListModels_FullEntries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"object": "list",
			"data": [
				{
					"id": "text-davinci-003",
					"object": "model",
					"created": 1669599635,
					"owned_by": "openai-internal",
					"permission": [{"id": "modelperm-1", "allow_sampling": true, "is_blocking": false, "organization": "*"}]
				},
				{"id": "gpt-4", "created": 1678604602, "owned_by": "openai"}
			]
		}`))
	}))
	defer srv.Close()

	c, err := New("sk-test", WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	models, err := c.ListModels(context.Background())
	if err != nil {
		t.Fatalf("ListModels: %v", err)
	}
	if len(models) != 2 {
		t.Fatalf("expected two models, got %d", len(models))
	}
	if models[0].OwnedBy != "openai-internal" {
		t.Fatalf("unexpected owner: %q", models[0].OwnedBy)
	}
	if len(models[0].Permission) != 1 || !models[0].Permission[0].AllowSampling {
		t.Fatalf("permission not parsed: %+v", models[0].Permission)
	}
}

func TestListModels_MissingDataYieldsDeserializationError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"object":"list"}`))
	}))
	defer srv.Close()

	c, err := New("sk-test", WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, err = c.ListModels(context.Background())
	var derr *DeserializationError
	if !errors.As(err, &derr) {
		t.Fatalf("expected *DeserializationError, got %v", err)
	}
	if derr.Field != "data" {
		t.Fatalf("expected missing field data, got %q", derr.Field)
	}
}

func TestListModels_MissingModelIDYieldsDeserializationError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"created":123,"owned_by":"openai"}]}`))
	}))
	defer srv.Close()

	c, err := New("sk-test", WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, err = c.ListModels(context.Background())
	var derr *DeserializationError
	if !errors.As(err, &derr) {
		t.Fatalf("expected *DeserializationError, got %v", err)
	}
	if derr.Field != "id" {
		t.Fatalf("expected missing field id, got %q", derr.Field)
	}
	if derr.Operation != "list_models" {
		t.Fatalf("expected operation name attached, got %q", derr.Operation)
	}
}

func TestListModels_NullIDCountsAsMissing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"id":null}]}`))
	}))
	defer srv.Close()

	c, err := New("sk-test", WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, err = c.ListModels(context.Background())
	var derr *DeserializationError
	if !errors.As(err, &derr) {
		t.Fatalf("expected *DeserializationError, got %v", err)
	}
	if derr.Field != "id" {
		t.Fatalf("expected missing field id, got %q", derr.Field)
	}
}

func TestGetModel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/models/text-davinci-003" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"id":"text-davinci-003","owned_by":"openai-internal"}`))
	}))
	defer srv.Close()

	c, err := New("sk-test", WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	m, err := c.GetModel(context.Background(), "text-davinci-003")
	if err != nil {
		t.Fatalf("GetModel: %v", err)
	}
	if m.ID != "text-davinci-003" || m.OwnedBy != "openai-internal" {
		t.Fatalf("unexpected model: %+v", m)
	}
}

func TestModelCatalogPredicates(t *testing.T) {
	if !SupportsCompletion("text-davinci-003") {
		t.Fatalf("text-davinci-003 should support completions")
	}
	if SupportsCompletion("gpt-4") {
		t.Fatalf("gpt-4 should not be in the completion catalog")
	}
	if !SupportsChat("gpt-3.5-turbo") {
		t.Fatalf("gpt-3.5-turbo should support chat")
	}
	if !SupportsEdits("code-davinci-edit-001") {
		t.Fatalf("code-davinci-edit-001 should support edits")
	}
	if SupportsEdits("davinci") {
		t.Fatalf("davinci should not be in the edits catalog")
	}
}
