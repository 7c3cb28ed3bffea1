package api

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/gin-gonic/gin"

	"smartmail/internal/model"
	"smartmail/pkg/metrics"
)

// streamWriter frames envelopes as text/event-stream data lines. The ended
// flag is one-shot: whichever of client disconnect, producer completion or
// producer error fires first ends the stream, and everything after that is
// a no-op. Send and End may race from different goroutines.
type streamWriter struct {
	mu    sync.Mutex
	w     gin.ResponseWriter
	ended bool
}

func newStreamWriter(w gin.ResponseWriter) *streamWriter {
	h := w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	return &streamWriter{w: w}
}

// Send writes one envelope and flushes it. It reports whether the envelope
// was written; false means the stream already ended.
func (s *streamWriter) Send(env model.Envelope) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ended {
		return false
	}

	data, err := json.Marshal(env)
	if err != nil {
		return false
	}

	fmt.Fprintf(s.w, "data: %s\n\n", data)
	s.w.Flush()
	metrics.IncrementStreamEnvelope(string(env.Type))
	return true
}

// End marks the stream finished. Idempotent.
func (s *streamWriter) End() {
	s.mu.Lock()
	s.ended = true
	s.mu.Unlock()
}
