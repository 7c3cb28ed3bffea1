package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const (
	geminiModel = "gemini-1.5-flash"
	geminiURL   = "https://generativelanguage.googleapis.com/v1beta/models"
)

// Gemini calls the Google Generative Language API.
type Gemini struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

func NewGemini(apiKey string, client *http.Client) *Gemini {
	return &Gemini{
		apiKey:  apiKey,
		model:   geminiModel,
		baseURL: geminiURL,
		client:  client,
	}
}

func (g *Gemini) Name() string { return "gemini" }

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents         []geminiContent `json:"contents"`
	GenerationConfig struct {
		Temperature     float64 `json:"temperature"`
		MaxOutputTokens int     `json:"maxOutputTokens"`
	} `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func (g *Gemini) Complete(ctx context.Context, prompt string, opts Options) (string, error) {
	url := fmt.Sprintf("%s/%s:generateContent", g.baseURL, g.model)
	resp, err := g.send(ctx, url, prompt, opts)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	var result geminiResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}
	return joinGeminiText(result), nil
}

func (g *Gemini) Stream(ctx context.Context, prompt string, opts Options, onDelta func(string)) error {
	url := fmt.Sprintf("%s/%s:streamGenerateContent?alt=sse", g.baseURL, g.model)
	resp, err := g.send(ctx, url, prompt, opts)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return scanEvents(resp.Body, func(data string) error {
		var chunk geminiResponse
		if err := json.Unmarshal([]byte(data), &chunk); err != nil {
			return fmt.Errorf("decoding stream chunk: %w", err)
		}
		if text := joinGeminiText(chunk); text != "" {
			onDelta(text)
		}
		return nil
	})
}

func (g *Gemini) send(ctx context.Context, url, prompt string, opts Options) (*http.Response, error) {
	reqBody := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	}
	reqBody.GenerationConfig.Temperature = opts.Temperature
	reqBody.GenerationConfig.MaxOutputTokens = opts.MaxTokens

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling Gemini API: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API error (%d): %s", resp.StatusCode, string(respBody))
	}
	return resp, nil
}

func joinGeminiText(resp geminiResponse) string {
	if len(resp.Candidates) == 0 {
		return ""
	}
	var text string
	for _, part := range resp.Candidates[0].Content.Parts {
		text += part.Text
	}
	return text
}
