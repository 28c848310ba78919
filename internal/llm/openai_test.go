package llm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/joestump/listing-writer/internal/config"
	"github.com/joestump/listing-writer/internal/listing"
)

type chatRequest struct {
	Model       string  `json:"model"`
	MaxTokens   int     `json:"max_tokens"`
	Temperature float64 `json:"temperature"`
	Messages    []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

const chatReply = `{
	"id": "chatcmpl-1",
	"object": "chat.completion",
	"created": 1700000000,
	"model": "gpt-3.5-turbo",
	"choices": [{
		"index": 0,
		"finish_reason": "stop",
		"message": {"role": "assistant", "content": "  Sunlit cottage with a chef's kitchen.  \n"}
	}]
}`

func newOpenAIConfig(baseURL string) *config.Config {
	cfg := &config.Config{}
	cfg.LLM.Provider = config.ProviderOpenAI
	cfg.LLM.APIKey = "sk-test"
	cfg.LLM.BaseURL = baseURL
	return cfg
}

func TestOpenAICompleter_Complete(t *testing.T) {
	var got chatRequest
	var auth, path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		auth = r.Header.Get("Authorization")
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, chatReply)
	}))
	defer srv.Close()

	c, err := NewOpenAICompleter(newOpenAIConfig(srv.URL))
	if err != nil {
		t.Fatalf("NewOpenAICompleter: %v", err)
	}
	text, err := c.Complete(context.Background(), "write something")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}

	if text != "Sunlit cottage with a chef's kitchen." {
		t.Errorf("text = %q", text)
	}
	if !strings.HasSuffix(path, "/chat/completions") {
		t.Errorf("path = %q, want suffix /chat/completions", path)
	}
	if auth != "Bearer sk-test" {
		t.Errorf("Authorization = %q", auth)
	}
	if got.Model != "gpt-3.5-turbo" {
		t.Errorf("model = %q, want gpt-3.5-turbo", got.Model)
	}
	if got.MaxTokens != 512 {
		t.Errorf("max_tokens = %d, want 512", got.MaxTokens)
	}
	if got.Temperature != 0.7 {
		t.Errorf("temperature = %v, want 0.7", got.Temperature)
	}
	if len(got.Messages) != 1 || got.Messages[0].Role != "user" || got.Messages[0].Content != "write something" {
		t.Errorf("messages = %+v, want one user message", got.Messages)
	}
}

func TestOpenAICompleter_ErrorIsNotRetried(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"error":{"message":"upstream exploded","type":"server_error"}}`)
	}))
	defer srv.Close()

	gen, err := New(newOpenAIConfig(srv.URL))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_, err = gen.Generate(context.Background(), &listing.Request{PropertyDetails: "Loft", OutputType: "x"})

	var ce *CallError
	if !errors.As(err, &ce) {
		t.Fatalf("err = %T %v, want *CallError", err, err)
	}
	if !strings.Contains(err.Error(), "500") {
		t.Errorf("error %q does not mention the upstream status", err.Error())
	}
	if n := hits.Load(); n != 1 {
		t.Errorf("upstream hit %d times, want 1", n)
	}
}

func TestOpenAICompleter_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"x","object":"chat.completion","created":1,"model":"gpt-3.5-turbo","choices":[]}`)
	}))
	defer srv.Close()

	c, err := NewOpenAICompleter(newOpenAIConfig(srv.URL))
	if err != nil {
		t.Fatalf("NewOpenAICompleter: %v", err)
	}
	if _, err := c.Complete(context.Background(), "p"); err == nil {
		t.Fatal("expected error for empty choices")
	}
}

func TestOpenAICompleter_EmptyContent(t *testing.T) {
	tests := []struct {
		name    string
		message string
	}{
		{name: "null content", message: `{"role":"assistant","content":null}`},
		{name: "empty content", message: `{"role":"assistant","content":""}`},
		{name: "whitespace content", message: `{"role":"assistant","content":"  \n "}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = io.WriteString(w, `{"id":"x","object":"chat.completion","created":1,"model":"gpt-3.5-turbo","choices":[{"index":0,"finish_reason":"stop","message":`+tt.message+`}]}`)
			}))
			defer srv.Close()

			gen, err := New(newOpenAIConfig(srv.URL))
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			text, err := gen.Generate(context.Background(), &listing.Request{PropertyDetails: "Loft", OutputType: "x"})
			var ce *CallError
			if !errors.As(err, &ce) {
				t.Fatalf("Generate = %q, %v; want *CallError", text, err)
			}
			if !strings.Contains(err.Error(), "empty completion content") {
				t.Errorf("error = %q, want empty completion content", err.Error())
			}
		})
	}
}

func TestNewOpenAICompleter_InvalidBaseURL(t *testing.T) {
	if _, err := NewOpenAICompleter(newOpenAIConfig("not a url")); err == nil {
		t.Fatal("expected error for invalid base url")
	}
}
