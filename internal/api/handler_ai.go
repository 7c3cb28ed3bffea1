package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"smartmail/internal/model"
	"smartmail/internal/service"
)

type AIHandler struct {
	compose *service.ComposeService
	logger  *zap.Logger
}

func NewAIHandler(compose *service.ComposeService, logger *zap.Logger) *AIHandler {
	return &AIHandler{
		compose: compose,
		logger:  logger,
	}
}

// StreamGenerate handles POST /api/ai/generate/stream. It validates the
// prompt before any upstream call, then relays the generation envelopes to
// the client as server-sent events.
func (h *AIHandler) StreamGenerate(c *gin.Context) {
	var req struct {
		Prompt string `json:"prompt"`
		To     string `json:"to"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Prompt is required"})
		return
	}

	sw := newStreamWriter(c.Writer)
	c.Writer.WriteHeader(http.StatusOK)
	c.Writer.Flush()

	// A client disconnect cancels the request context; stop forwarding as
	// soon as that happens, even with a chunk in flight.
	ctx := c.Request.Context()
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			sw.End()
		case <-done:
		}
	}()

	h.compose.GenerateEmailStream(ctx, req.Prompt, req.To, func(env model.Envelope) {
		sw.Send(env)
	})

	sw.End()
}
