package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"smartmail/internal/llm"
	"smartmail/internal/model"
	"smartmail/pkg/metrics"
)

const (
	classifyMaxTokens   = 10
	classifyTemperature = 0.1

	salesMaxTokens    = 150
	followupMaxTokens = 200

	generateTemperature = 0.7
)

// GeneratedEmail is the result of a non-streaming generation.
type GeneratedEmail struct {
	AssistantType model.Classification `json:"assistantType"`
	Subject       string               `json:"subject"`
	Body          string               `json:"body"`
	Provider      string               `json:"provider"`
	RecipientName string               `json:"recipientName"`
	Recipient     string               `json:"recipient"`
}

// ComposeService routes a drafting request to the matching assistant
// template and turns the provider's completion into email drafts.
type ComposeService struct {
	provider llm.Provider
	cache    *ClassifyCache // nil when redis is not configured
	sender   model.Sender
	logger   *zap.Logger
}

func NewComposeService(provider llm.Provider, cache *ClassifyCache, sender model.Sender, logger *zap.Logger) *ComposeService {
	return &ComposeService{
		provider: provider,
		cache:    cache,
		sender:   sender,
		logger:   logger,
	}
}

// Classify decides whether the request wants a sales or a followup email.
// It never fails: a provider error or any answer other than exactly "sales"
// collapses to followup, observable only through the log and a counter.
func (s *ComposeService) Classify(ctx context.Context, prompt string) model.Classification {
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, prompt); ok {
			return cached
		}
	}

	start := time.Now()
	text, err := s.provider.Complete(ctx, routerPrompt+prompt, llm.Options{
		MaxTokens:   classifyMaxTokens,
		Temperature: classifyTemperature,
	})
	if err != nil {
		metrics.RecordLLMCallLatency(s.provider.Name(), "classify", "failed", time.Since(start))
		metrics.ClassifyFailureCount.Inc()
		s.logger.Warn("classification failed, defaulting to followup", zap.Error(err))
		return model.ClassificationFollowup
	}
	metrics.RecordLLMCallLatency(s.provider.Name(), "classify", "success", time.Since(start))

	classification := model.ClassificationFollowup
	if strings.ToLower(strings.TrimSpace(text)) == "sales" {
		classification = model.ClassificationSales
	}

	if s.cache != nil {
		s.cache.Set(ctx, prompt, classification)
	}
	return classification
}

// GenerateEmail classifies the request and returns the fully generated,
// parsed draft in one call.
func (s *ComposeService) GenerateEmail(ctx context.Context, prompt, to string) (*GeneratedEmail, error) {
	assistantType := s.Classify(ctx, prompt)

	start := time.Now()
	content, err := s.provider.Complete(ctx, s.fullPrompt(assistantType, prompt, to), generateOptions(assistantType))
	if err != nil {
		metrics.RecordLLMCallLatency(s.provider.Name(), "generate", "failed", time.Since(start))
		metrics.IncrementGeneration(string(assistantType), "failed")
		return nil, fmt.Errorf("failed to generate email using %s: %w", s.provider.Name(), err)
	}
	metrics.RecordLLMCallLatency(s.provider.Name(), "generate", "success", time.Since(start))
	metrics.IncrementGeneration(string(assistantType), "success")

	draft := ParseDraft(content)
	return &GeneratedEmail{
		AssistantType: assistantType,
		Subject:       draft.Subject,
		Body:          draft.Body,
		Provider:      s.provider.Name(),
		RecipientName: DisplayName(to),
		Recipient:     to,
	}, nil
}

// GenerateEmailStream classifies the request and streams the generation as
// envelopes through onChunk: one classification envelope, one content
// envelope per non-empty provider delta (carrying the re-parse of the whole
// buffer so far), then a single terminal envelope. A provider failure
// becomes a terminal error envelope, not an error return; request
// cancellation ends the stream with no terminal envelope at all.
func (s *ComposeService) GenerateEmailStream(ctx context.Context, prompt, to string, onChunk func(model.Envelope)) {
	assistantType := s.Classify(ctx, prompt)
	recipientName := DisplayName(to)

	onChunk(model.Envelope{
		Type: model.EnvelopeClassification,
		Data: model.ClassificationData{
			AssistantType: assistantType,
			Provider:      s.provider.Name(),
			RecipientName: recipientName,
			Recipient:     to,
		},
	})

	var buf strings.Builder
	start := time.Now()
	err := s.provider.Stream(ctx, s.fullPrompt(assistantType, prompt, to), generateOptions(assistantType), func(text string) {
		buf.WriteString(text)
		draft := ParseDraft(buf.String())
		onChunk(model.Envelope{
			Type: model.EnvelopeContent,
			Data: model.ContentData{
				AssistantType: assistantType,
				Provider:      s.provider.Name(),
				Subject:       draft.Subject,
				Body:          draft.Body,
				IsPartial:     true,
				RecipientName: recipientName,
				Recipient:     to,
			},
		})
	})
	if err != nil {
		if errors.Is(err, context.Canceled) {
			// Client went away; nobody is listening for a terminal envelope.
			metrics.IncrementGeneration(string(assistantType), "cancelled")
			s.logger.Info("generation cancelled", zap.String("provider", s.provider.Name()))
			return
		}
		metrics.RecordLLMCallLatency(s.provider.Name(), "generate", "failed", time.Since(start))
		metrics.IncrementGeneration(string(assistantType), "failed")
		s.logger.Error("streaming generation failed",
			zap.String("provider", s.provider.Name()),
			zap.Error(err),
		)
		onChunk(model.Envelope{
			Type: model.EnvelopeError,
			Data: model.ErrorData{
				Error:    fmt.Sprintf("Failed to generate email stream using %s: %s", s.provider.Name(), err),
				Provider: s.provider.Name(),
			},
		})
		return
	}
	metrics.RecordLLMCallLatency(s.provider.Name(), "generate", "success", time.Since(start))
	metrics.IncrementGeneration(string(assistantType), "success")

	draft := ParseDraft(buf.String())
	onChunk(model.Envelope{
		Type: model.EnvelopeComplete,
		Data: model.ContentData{
			AssistantType: assistantType,
			Provider:      s.provider.Name(),
			Subject:       draft.Subject,
			Body:          draft.Body,
			IsPartial:     false,
			RecipientName: recipientName,
			Recipient:     to,
		},
	})
}

func (s *ComposeService) fullPrompt(assistantType model.Classification, prompt, to string) string {
	return assistantPrompt(assistantType) + prompt + buildPersonalizedContext(to, s.sender)
}

func generateOptions(assistantType model.Classification) llm.Options {
	maxTokens := followupMaxTokens
	if assistantType == model.ClassificationSales {
		maxTokens = salesMaxTokens
	}
	return llm.Options{MaxTokens: maxTokens, Temperature: generateTemperature}
}
