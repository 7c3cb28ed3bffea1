// Package llm provides a provider-agnostic "send a prompt, get text back"
// capability over the chat-completion HTTP APIs of OpenAI, Anthropic and
// Google, with both whole-response and incremental streaming calls.
package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

// Options bound a single completion request.
type Options struct {
	MaxTokens   int
	Temperature float64
}

// Provider is one upstream LLM vendor.
type Provider interface {
	Name() string

	// Complete requests a full completion and returns the response text.
	Complete(ctx context.Context, prompt string, opts Options) (string, error)

	// Stream requests a streamed completion and invokes onDelta once per
	// text increment, in arrival order, from the calling goroutine.
	Stream(ctx context.Context, prompt string, opts Options, onDelta func(text string)) error
}

// New constructs the provider selected by name. API keys are read from the
// environment; a missing key is a construction error, not a call error.
func New(name string, timeout time.Duration) (Provider, error) {
	client := &http.Client{Timeout: timeout}

	switch strings.ToLower(strings.TrimSpace(name)) {
	case "openai":
		key := os.Getenv("OPENAI_API_KEY")
		if key == "" {
			return nil, errors.New("OPENAI_API_KEY is required for the openai provider")
		}
		return NewOpenAI(key, client), nil

	case "claude":
		key := os.Getenv("ANTHROPIC_API_KEY")
		if key == "" {
			return nil, errors.New("ANTHROPIC_API_KEY is required for the claude provider")
		}
		return NewAnthropic(key, client), nil

	case "gemini":
		key := os.Getenv("GOOGLE_API_KEY")
		if key == "" {
			return nil, errors.New("GOOGLE_API_KEY is required for the gemini provider")
		}
		return NewGemini(key, client), nil

	default:
		return nil, fmt.Errorf("unsupported provider %q: use 'openai', 'claude', or 'gemini'", name)
	}
}
