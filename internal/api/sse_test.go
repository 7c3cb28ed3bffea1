package api

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"smartmail/internal/model"
)

func newTestStreamWriter(t *testing.T) (*streamWriter, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	return newStreamWriter(c.Writer), rec
}

func TestStreamWriter_Headers(t *testing.T) {
	sw, rec := newTestStreamWriter(t)
	sw.Send(model.Envelope{Type: model.EnvelopeClassification, Data: model.ClassificationData{}})

	if got := rec.Header().Get("Content-Type"); got != "text/event-stream" {
		t.Errorf("Content-Type = %q, want text/event-stream", got)
	}
	if got := rec.Header().Get("Cache-Control"); got != "no-cache" {
		t.Errorf("Cache-Control = %q, want no-cache", got)
	}
}

func TestStreamWriter_Framing(t *testing.T) {
	sw, rec := newTestStreamWriter(t)

	ok := sw.Send(model.Envelope{
		Type: model.EnvelopeError,
		Data: model.ErrorData{Error: "boom", Provider: "claude"},
	})
	if !ok {
		t.Fatal("Send on a live stream returned false")
	}

	body := rec.Body.String()
	if !strings.HasPrefix(body, "data: ") || !strings.HasSuffix(body, "\n\n") {
		t.Fatalf("frame = %q, want data: <json>\\n\\n", body)
	}

	var env struct {
		Type string          `json:"type"`
		Data model.ErrorData `json:"data"`
	}
	payload := strings.TrimSuffix(strings.TrimPrefix(body, "data: "), "\n\n")
	if err := json.Unmarshal([]byte(payload), &env); err != nil {
		t.Fatalf("frame payload is not JSON: %v", err)
	}
	if env.Type != "error" || env.Data.Error != "boom" {
		t.Errorf("decoded frame = %+v", env)
	}
}

func TestStreamWriter_SendAfterEnd(t *testing.T) {
	sw, rec := newTestStreamWriter(t)

	sw.End()
	if sw.Send(model.Envelope{Type: model.EnvelopeContent}) {
		t.Error("Send after End returned true")
	}
	if rec.Body.Len() != 0 {
		t.Errorf("Send after End wrote %q", rec.Body.String())
	}
}

func TestStreamWriter_EndIdempotent(t *testing.T) {
	sw, _ := newTestStreamWriter(t)

	sw.End()
	sw.End() // must not panic or change anything
	if sw.Send(model.Envelope{Type: model.EnvelopeComplete}) {
		t.Error("stream accepted envelopes after double End")
	}
}
