package stylist

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sikawofie/shop-backend/pkg/config"
	pkgerrors "github.com/sikawofie/shop-backend/pkg/errors"
)

func geminiTestConfig(baseURL string) config.GeminiConfig {
	return config.GeminiConfig{
		APIKey:  "test-key",
		Model:   "gemini-2.5-flash",
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
	}
}

func TestGenerateContentSendsPromptAndParsesReply(t *testing.T) {
	var captured geminiRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1beta/models/gemini-2.5-flash:generateContent" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.Header.Get("x-goog-api-key"); got != "test-key" {
			t.Errorf("expected api key header, got %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Wear the "},{"text":"Sika Classic Tee."}]}}]}`))
	}))
	defer server.Close()

	client := NewGeminiClient(geminiTestConfig(server.URL), server.Client())
	got, err := client.GenerateContent(context.Background(), GenerateInput{
		SystemInstruction: "You are Sika.",
		History: []Turn{
			{Role: "user", Content: "hello"},
			{Role: "ai", Content: "hi there"},
		},
		Query: "what should I wear?",
	})
	if err != nil {
		t.Fatalf("GenerateContent: %v", err)
	}
	if got != "Wear the Sika Classic Tee." {
		t.Fatalf("unexpected reply %q", got)
	}

	if captured.SystemInstruction == nil || captured.SystemInstruction.Parts[0].Text != "You are Sika." {
		t.Fatalf("system instruction not forwarded: %+v", captured.SystemInstruction)
	}
	if len(captured.Contents) != 3 {
		t.Fatalf("expected history plus query, got %d contents", len(captured.Contents))
	}
	if captured.Contents[1].Role != "model" {
		t.Fatalf("assistant turn should map to model role, got %q", captured.Contents[1].Role)
	}
	if captured.Contents[2].Role != "user" || captured.Contents[2].Parts[0].Text != "what should I wear?" {
		t.Fatalf("query turn malformed: %+v", captured.Contents[2])
	}
}

func TestGenerateContentNonOKStatusIsDependencyError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewGeminiClient(geminiTestConfig(server.URL), server.Client())
	_, err := client.GenerateContent(context.Background(), GenerateInput{Query: "hi"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected DEPENDENCY_ERROR, got %v", err)
	}
}

func TestGenerateContentRequiresKeyAndQuery(t *testing.T) {
	client := NewGeminiClient(config.GeminiConfig{Model: "gemini-2.5-flash", BaseURL: "http://localhost"}, nil)
	if client.Configured() {
		t.Fatalf("expected unconfigured client")
	}
	if _, err := client.GenerateContent(context.Background(), GenerateInput{Query: "hi"}); err == nil {
		t.Fatalf("expected error without key")
	}

	keyed := NewGeminiClient(geminiTestConfig("http://localhost"), nil)
	if _, err := keyed.GenerateContent(context.Background(), GenerateInput{Query: "  "}); err == nil {
		t.Fatalf("expected error for empty query")
	}
}

func TestGenerateContentEmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	client := NewGeminiClient(geminiTestConfig(server.URL), server.Client())
	got, err := client.GenerateContent(context.Background(), GenerateInput{Query: "hi"})
	if err != nil {
		t.Fatalf("GenerateContent: %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty text, got %q", got)
	}
}
