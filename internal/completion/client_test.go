package completion_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/solwyn/aura/internal/completion"
	"github.com/solwyn/aura/internal/config"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError + 1,
	}))
}

// fakeProvider emulates the chat completions endpoint, returning the given
// content for every request. An empty content simulates a provider that
// produced no usable text.
func fakeProvider(t *testing.T, content string, capture *map[string]any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if capture != nil {
			json.NewDecoder(r.Body).Decode(capture)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":     "cmpl-test",
			"object": "chat.completion",
			"model":  "gpt-4o-mini",
			"choices": []map[string]any{
				{
					"index": 0,
					"message": map[string]any{
						"role":    "assistant",
						"content": content,
					},
					"finish_reason": "stop",
				},
			},
		})
	}))
}

func newClient(t *testing.T, baseURL string) completion.Client {
	t.Helper()
	cfg := &config.ProviderConfig{
		APIKey:  "test-key",
		BaseURL: baseURL,
	}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	return completion.New(cfg, testLogger())
}

func TestComplete_ReturnsGeneratedText(t *testing.T) {
	var captured map[string]any
	srv := fakeProvider(t, "Solana's market cap fluctuates; check a live tracker.", &captured)
	defer srv.Close()

	client := newClient(t, srv.URL)

	reply, err := client.Complete(context.Background(), "You are Aura.", "What is the current market cap of Solana?")
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if reply != "Solana's market cap fluctuates; check a live tracker." {
		t.Errorf("reply = %q", reply)
	}

	if captured["model"] != "gpt-4o-mini" {
		t.Errorf("model = %v, want gpt-4o-mini", captured["model"])
	}
	if captured["max_tokens"] != float64(300) {
		t.Errorf("max_tokens = %v, want 300", captured["max_tokens"])
	}
	if captured["temperature"] != 0.7 {
		t.Errorf("temperature = %v, want 0.7", captured["temperature"])
	}

	msgs, ok := captured["messages"].([]any)
	if !ok || len(msgs) != 2 {
		t.Fatalf("messages = %v, want system + user", captured["messages"])
	}
	first := msgs[0].(map[string]any)
	if first["role"] != "system" || first["content"] != "You are Aura." {
		t.Errorf("system message = %v", first)
	}
}

func TestComplete_FallbackOnEmptyText(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty content", ""},
		{"whitespace only", "   \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := fakeProvider(t, tt.content, nil)
			defer srv.Close()

			client := newClient(t, srv.URL)
			reply, err := client.Complete(context.Background(), "system", "message")
			if err != nil {
				t.Fatalf("Complete() error = %v", err)
			}
			if reply != completion.FallbackReply {
				t.Errorf("reply = %q, want fallback", reply)
			}
		})
	}
}

func TestComplete_FallbackOnNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":      "cmpl-test",
			"object":  "chat.completion",
			"choices": []any{},
		})
	}))
	defer srv.Close()

	client := newClient(t, srv.URL)
	reply, err := client.Complete(context.Background(), "system", "message")
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if reply != completion.FallbackReply {
		t.Errorf("reply = %q, want fallback", reply)
	}
}

func TestComplete_ProviderFault(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"message": "overloaded"}}`, http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := newClient(t, srv.URL)
	_, err := client.Complete(context.Background(), "system", "message")
	if !errors.Is(err, completion.ErrUnavailable) {
		t.Errorf("Complete() error = %v, want ErrUnavailable", err)
	}
}
