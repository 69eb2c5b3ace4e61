package config

import (
	"testing"
	"time"
)

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("OPENAI_API_KEY", "sk-env")
	t.Setenv("OPENAI_BASE_URL", "https://proxy.example.com/v1")
	t.Setenv("OPENAI_ORGANIZATION", "org-env")

	s, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.APIKey != "sk-env" {
		t.Fatalf("expected API key from env, got %q", s.APIKey)
	}
	if s.BaseURL != "https://proxy.example.com/v1" {
		t.Fatalf("expected base URL from env, got %q", s.BaseURL)
	}
	if s.Organization != "org-env" {
		t.Fatalf("expected organization from env, got %q", s.Organization)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	s, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.DefaultModel != "gpt-3.5-turbo" {
		t.Fatalf("unexpected default model: %q", s.DefaultModel)
	}
	if s.Timeout != 60*time.Second {
		t.Fatalf("unexpected default timeout: %v", s.Timeout)
	}
}

func TestLoad_TimeoutOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("OPENAI_TIMEOUT", "5s")

	s, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Timeout != 5*time.Second {
		t.Fatalf("expected 5s timeout, got %v", s.Timeout)
	}
}
