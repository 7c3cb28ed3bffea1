package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestAnthropic(url string) *Anthropic {
	a := NewAnthropic("test-key", http.DefaultClient)
	a.baseURL = url
	return a
}

func TestAnthropic_Complete(t *testing.T) {
	var gotReq anthropicRequest
	var gotHeaders http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeaders = r.Header.Clone()
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]string{
				{"type": "text", "text": "Subject line"},
				{"type": "tool_use", "text": "ignored"},
				{"type": "text", "text": "\n\nBody"},
			},
		})
	}))
	defer srv.Close()

	a := newTestAnthropic(srv.URL)
	got, err := a.Complete(context.Background(), "write an email", Options{MaxTokens: 150, Temperature: 0.7})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if got != "Subject line\n\nBody" {
		t.Errorf("text = %q", got)
	}

	if gotHeaders.Get("x-api-key") != "test-key" {
		t.Errorf("x-api-key = %q", gotHeaders.Get("x-api-key"))
	}
	if gotHeaders.Get("anthropic-version") != "2023-06-01" {
		t.Errorf("anthropic-version = %q", gotHeaders.Get("anthropic-version"))
	}
	if gotReq.Model != "claude-3-5-haiku-20241022" {
		t.Errorf("model = %q", gotReq.Model)
	}
	if gotReq.MaxTokens != 150 || gotReq.Temperature != 0.7 {
		t.Errorf("options = %d/%v", gotReq.MaxTokens, gotReq.Temperature)
	}
	if gotReq.Stream {
		t.Error("non-streaming call requested a stream")
	}
	if len(gotReq.Messages) != 1 || gotReq.Messages[0].Role != "user" || gotReq.Messages[0].Content != "write an email" {
		t.Errorf("messages = %+v", gotReq.Messages)
	}
}

func TestAnthropic_Stream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req anthropicRequest
		json.NewDecoder(r.Body).Decode(&req)
		if !req.Stream {
			t.Error("streaming call did not request a stream")
		}

		w.Header().Set("Content-Type", "text/event-stream")
		for _, line := range []string{
			`event: message_start`,
			`data: {"type":"message_start"}`,
			``,
			`data: {"type":"content_block_delta","delta":{"type":"text_delta","text":"Launch"}}`,
			``,
			`data: {"type":"content_block_delta","delta":{"type":"text_delta","text":" weekly demo"}}`,
			``,
			`data: {"type":"message_stop"}`,
			``,
		} {
			w.Write([]byte(line + "\n"))
		}
	}))
	defer srv.Close()

	a := newTestAnthropic(srv.URL)
	var got []string
	err := a.Stream(context.Background(), "write an email", Options{}, func(text string) {
		got = append(got, text)
	})
	if err != nil {
		t.Fatalf("Stream: %v", err)
	}
	if strings.Join(got, "|") != "Launch| weekly demo" {
		t.Errorf("deltas = %v", got)
	}
}

func TestAnthropic_StreamErrorEvent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		w.Write([]byte(`data: {"type":"error","error":{"message":"overloaded"}}` + "\n"))
	}))
	defer srv.Close()

	a := newTestAnthropic(srv.URL)
	err := a.Stream(context.Background(), "write", Options{}, func(string) {})
	if err == nil || !strings.Contains(err.Error(), "overloaded") {
		t.Errorf("err = %v, want the upstream error message", err)
	}
}

func TestAnthropic_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"invalid x-api-key"}}`))
	}))
	defer srv.Close()

	a := newTestAnthropic(srv.URL)
	_, err := a.Complete(context.Background(), "write", Options{})
	if err == nil {
		t.Fatal("Complete on 401 returned no error")
	}
	if !strings.Contains(err.Error(), "401") || !strings.Contains(err.Error(), "invalid x-api-key") {
		t.Errorf("err = %v", err)
	}
}
