package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"resumeforge/internal/llm"
)

func TestCompleteSendsJSONResponseFormat(t *testing.T) {
	var got chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Fatalf("missing bearer token, got %q", r.Header.Get("Authorization"))
		}
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": `{"ok":true}`}},
			},
		})
	}))
	defer server.Close()

	client := &Client{
		apiKey:     "test-key",
		model:      "gpt-4o",
		baseURL:    server.URL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}

	out, err := client.Complete(context.Background(), llm.Request{
		Messages:    []llm.Message{llm.System("sys"), llm.User("hello")},
		Temperature: 0.5,
		MaxTokens:   500,
		JSONOutput:  true,
	})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if out != `{"ok":true}` {
		t.Fatalf("unexpected content %q", out)
	}

	if got.ResponseFormat == nil || got.ResponseFormat.Type != "json_object" {
		t.Fatalf("expected json_object response_format, got %+v", got.ResponseFormat)
	}
	if got.Temperature == nil || *got.Temperature != 0.5 {
		t.Fatalf("expected temperature 0.5, got %+v", got.Temperature)
	}
	if got.MaxTokens != 500 {
		t.Fatalf("expected max_tokens 500, got %d", got.MaxTokens)
	}
	if len(got.Messages) != 2 || got.Messages[0].Role != "system" {
		t.Fatalf("unexpected messages %+v", got.Messages)
	}
}

func TestCompleteSurfacesAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{"message": "rate limited", "type": "rate_limit_error"},
		})
	}))
	defer server.Close()

	client := &Client{
		apiKey:     "test-key",
		model:      "gpt-4o",
		baseURL:    server.URL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}

	if _, err := client.Complete(context.Background(), llm.Request{Messages: []llm.Message{llm.User("x")}}); err == nil {
		t.Fatalf("expected error from API error payload")
	}
}

func TestNewClientRequiresKey(t *testing.T) {
	if _, err := NewClient("", "gpt-4o"); err == nil {
		t.Fatalf("expected error for empty api key")
	}
	client, err := NewClient("key", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.model != defaultModel {
		t.Fatalf("expected default model, got %q", client.model)
	}
}
