package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func fakeServer(t *testing.T, content string, status int) (*httptest.Server, *map[string]any) {
	t.Helper()
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("missing bearer token")
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.Header().Set("Content-Type", "application/json")
		if status != http.StatusOK {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"error":{"message":"boom","type":"server_error"}}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":     "chatcmpl-1",
			"object": "chat.completion",
			"model":  "gpt-4o-mini",
			"choices": []map[string]any{{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]any{"role": "assistant", "content": content},
			}},
		})
	}))
	t.Cleanup(srv.Close)
	return srv, &got
}

func TestElaborateHPI(t *testing.T) {
	srv, got := fakeServer(t, "  The patient reports elbow pain.  ", http.StatusOK)
	e := NewElaborator(Config{APIKey: "test-key", BaseURL: srv.URL + "/v1"})

	text, err := e.ElaborateHPI(context.Background(), "elbow pain", []string{"Pain 2/10 at left elbow."})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "The patient reports elbow pain." {
		t.Errorf("got %q", text)
	}
	if (*got)["model"] != defaultModel {
		t.Errorf("expected default model, got %v", (*got)["model"])
	}
	msgs, _ := (*got)["messages"].([]any)
	if len(msgs) != 2 {
		t.Fatalf("expected system and user messages, got %d", len(msgs))
	}
	user, _ := msgs[1].(map[string]any)
	if !strings.Contains(user["content"].(string), "- Pain 2/10 at left elbow.") {
		t.Errorf("facts missing from prompt: %v", user["content"])
	}
}

func TestElaborateHPI_Empty(t *testing.T) {
	srv, _ := fakeServer(t, "   ", http.StatusOK)
	e := NewElaborator(Config{APIKey: "test-key", BaseURL: srv.URL + "/v1", Model: "local"})

	_, err := e.ElaborateHPI(context.Background(), "cough", []string{"Dry cough."})
	if !errors.Is(err, ErrEmptyCompletion) {
		t.Fatalf("expected ErrEmptyCompletion, got %v", err)
	}
}

func TestElaborateHPI_ServerError(t *testing.T) {
	srv, _ := fakeServer(t, "", http.StatusInternalServerError)
	e := NewElaborator(Config{APIKey: "test-key", BaseURL: srv.URL + "/v1"})

	if _, err := e.ElaborateHPI(context.Background(), "cough", []string{"Dry cough."}); err == nil {
		t.Fatal("expected error")
	}
}

func TestElaborateHPI_NoFacts(t *testing.T) {
	e := NewElaborator(Config{APIKey: "test-key"})
	if _, err := e.ElaborateHPI(context.Background(), "cough", nil); err == nil {
		t.Fatal("expected error")
	}
}
