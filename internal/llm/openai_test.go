package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// openAIStub mimics the Chat Completions endpoint closely enough for the
// go-openai client.
func openAIStub(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
			return
		}
		resp := map[string]interface{}{
			"id":     "chatcmpl-test",
			"object": "chat.completion",
			"model":  "gpt-4o-mini",
			"choices": []map[string]interface{}{
				{
					"index": 0,
					"message": map[string]interface{}{
						"role":    "assistant",
						"content": content,
					},
					"finish_reason": "stop",
				},
			},
			"usage": map[string]interface{}{
				"prompt_tokens":     100,
				"completion_tokens": 50,
				"total_tokens":      150,
			},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func TestOpenAIProvider_RequiresAPIKey(t *testing.T) {
	_, err := NewOpenAIProvider(Config{})
	if err == nil {
		t.Fatal("Expected error for missing API key, got nil")
	}
}

func TestOpenAIProvider_ExtractFacts_Success(t *testing.T) {
	content := "```json\n[{\"section\": \"fees_and_charges\", \"field\": \"legal_charges\", \"value\": \"As per actuals\", \"source_text\": \"Legal charges: As per actuals\", \"confidence\": 0.85}]\n```"
	server := openAIStub(t, content)
	defer server.Close()

	config := Config{
		APIKey:  "test-key",
		BaseURL: server.URL + "/v1",
		Model:   "gpt-4o-mini",
		Timeout: 5,
	}
	provider, err := NewOpenAIProvider(config)
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}

	req := ExtractRequest{
		DocumentText: "Legal charges: As per actuals",
		Gaps:         testGaps(),
		Filename:     "hdfc_mitc.txt",
	}

	resp, err := provider.ExtractFacts(context.Background(), req)
	if err != nil {
		t.Fatalf("ExtractFacts failed: %v", err)
	}

	if len(resp.Facts) != 1 {
		t.Fatalf("got %d facts, want 1: %+v", len(resp.Facts), resp.Facts)
	}
	f := resp.Facts[0]
	if f.Key != "fees_and_charges.legal_charges" {
		t.Errorf("key = %s", f.Key)
	}
	if f.Value != "As per actuals" {
		t.Errorf("value = %s", f.Value)
	}
	if f.Confidence != 0.85 {
		t.Errorf("confidence = %f", f.Confidence)
	}
	if resp.TokensUsed != 150 {
		t.Errorf("tokens = %d", resp.TokensUsed)
	}
}

func TestOpenAIProvider_ExtractFacts_NoGaps(t *testing.T) {
	provider, err := NewOpenAIProvider(Config{APIKey: "test-key", BaseURL: "http://localhost:1/v1"})
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}

	resp, err := provider.ExtractFacts(context.Background(), ExtractRequest{DocumentText: "text"})
	if err != nil {
		t.Fatalf("ExtractFacts failed: %v", err)
	}
	if len(resp.Facts) != 0 {
		t.Errorf("got %d facts, want 0", len(resp.Facts))
	}
}

func TestNewProvider(t *testing.T) {
	if p, err := NewProvider(Config{Provider: ""}); err != nil || p != nil {
		t.Errorf("disabled provider: p=%v err=%v", p, err)
	}
	if _, err := NewProvider(Config{Provider: "openai", APIKey: "k"}); err != nil {
		t.Errorf("openai: %v", err)
	}
	if _, err := NewProvider(Config{Provider: "ollama"}); err != nil {
		t.Errorf("ollama: %v", err)
	}
	if _, err := NewProvider(Config{Provider: "gemini"}); err == nil {
		t.Error("expected error for unsupported provider")
	}
}
