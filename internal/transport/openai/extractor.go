package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/data-blitz-demos/digikey-AgenticAI-demo/internal/domain"
	domintent "github.com/data-blitz-demos/digikey-AgenticAI-demo/internal/domain/intent"
	"github.com/data-blitz-demos/digikey-AgenticAI-demo/internal/metrics"
)

const systemPrompt = `You extract electronic component search intents.
Respond with a single JSON object, no prose, using exactly these fields:
{
  "keywords": ["search", "terms"],
  "category": "one of: regulator, capacitor, resistor, connector, sensor, microcontroller, transistor, diode, timer, oscillator, or empty string",
  "voltage": 3.3,
  "mounting": "smd, tht, or empty string",
  "max_price": 5.0,
  "require_in_stock": false
}
Omit voltage and max_price (or use null) when the user did not state them.
Keywords are lowercase part-search terms with filler words removed.`

// Extractor derives structured intents via an OpenAI-compatible chat API.
type Extractor struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	logger  *zap.Logger
}

// Config holds the assistant provider settings.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
	Logger  *zap.Logger
}

// NewExtractor creates an OpenAI-compatible intent extractor.
func NewExtractor(cfg *Config) *Extractor {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &Extractor{
		client:  openai.NewClientWithConfig(clientCfg),
		model:   cfg.Model,
		timeout: cfg.Timeout,
		logger:  cfg.Logger,
	}
}

// intentPayload mirrors the JSON object the model is instructed to produce.
type intentPayload struct {
	Keywords       []string `json:"keywords"`
	Category       string   `json:"category"`
	Voltage        *float64 `json:"voltage"`
	Mounting       string   `json:"mounting"`
	MaxPrice       *float64 `json:"max_price"`
	RequireInStock bool     `json:"require_in_stock"`
}

// Extract implements usecase/intent.Extractor. Every failure, from transport
// to malformed model output, is wrapped with domain.ErrAssistantUnavailable
// so the resolver has a single signal to fall back on.
func (e *Extractor) Extract(ctx context.Context, text string) (domintent.Intent, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model: e.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}

	start := time.Now()

	resp, err := e.client.CreateChatCompletion(ctx, req)

	duration := time.Since(start)

	if err != nil {
		metrics.ExtractionRequestsTotal.WithLabelValues(e.model, "error").Inc()
		metrics.ExtractionErrorsTotal.WithLabelValues(e.model, "api_error").Inc()
		return domintent.Intent{}, parseAPIError(err)
	}

	if len(resp.Choices) == 0 {
		metrics.ExtractionRequestsTotal.WithLabelValues(e.model, "error").Inc()
		metrics.ExtractionErrorsTotal.WithLabelValues(e.model, "empty_response").Inc()
		return domintent.Intent{}, fmt.Errorf("empty completion response: %w", domain.ErrAssistantUnavailable)
	}

	it, err := parsePayload(resp.Choices[0].Message.Content, text)
	if err != nil {
		metrics.ExtractionRequestsTotal.WithLabelValues(e.model, "error").Inc()
		metrics.ExtractionErrorsTotal.WithLabelValues(e.model, "bad_payload").Inc()
		e.logger.Warn("discarding malformed extraction payload", zap.Error(err))
		return domintent.Intent{}, err
	}

	metrics.ExtractionRequestsTotal.WithLabelValues(e.model, "success").Inc()
	metrics.ExtractionRequestDuration.WithLabelValues(e.model).Observe(duration.Seconds())

	if resp.Usage.TotalTokens > 0 {
		metrics.ExtractionTokensTotal.WithLabelValues(e.model, "prompt").Add(float64(resp.Usage.PromptTokens))
		metrics.ExtractionTokensTotal.WithLabelValues(e.model, "total").Add(float64(resp.Usage.TotalTokens))
	}

	return it, nil
}

// HealthCheck verifies API availability via ListModels (free endpoint).
func (e *Extractor) HealthCheck(ctx context.Context) error {
	if _, err := e.client.ListModels(ctx); err != nil {
		return fmt.Errorf("list models: %w", err)
	}
	return nil
}

// parsePayload decodes the model output into a validated intent.
func parsePayload(content, rawText string) (domintent.Intent, error) {
	var payload intentPayload
	if err := json.Unmarshal([]byte(stripFences(content)), &payload); err != nil {
		return domintent.Intent{}, fmt.Errorf("decode extraction payload: %w: %w", domain.ErrAssistantUnavailable, err)
	}

	attrs := make(map[string]domintent.Constraint)
	if payload.Voltage != nil && *payload.Voltage > 0 {
		attrs[domintent.AttrVoltage] = domintent.NewNumber(*payload.Voltage)
	}
	if m := normalizeMounting(payload.Mounting); m != "" {
		if c, err := domintent.NewValue(m); err == nil {
			attrs[domintent.AttrMounting] = c
		}
	}

	maxPrice := payload.MaxPrice
	if maxPrice != nil && *maxPrice <= 0 {
		maxPrice = nil
	}

	it, err := domintent.New(
		payload.Keywords, payload.Category, attrs, maxPrice, payload.RequireInStock, rawText,
	)
	if err != nil {
		return domintent.Intent{}, fmt.Errorf("invalid extraction payload: %w: %w", domain.ErrAssistantUnavailable, err)
	}
	return it, nil
}

// normalizeMounting folds the model's mounting spellings onto the canonical
// attribute values.
func normalizeMounting(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "smd", "smt", "surface mount", "surface-mount":
		return domintent.MountingSMD
	case "tht", "through hole", "through-hole", "thru hole":
		return domintent.MountingThroughHole
	default:
		return ""
	}
}

// stripFences removes a markdown code fence if the model wrapped its JSON in one.
func stripFences(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(strings.TrimSpace(content), "```")
	return strings.TrimSpace(content)
}

// parseAPIError extracts a human-readable error from the API response.
// All errors are wrapped with domain.ErrAssistantUnavailable for correct fallback.
func parseAPIError(err error) error {
	wrap := domain.ErrAssistantUnavailable

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return fmt.Errorf("assistant API error %d: %s: %w",
			reqErr.HTTPStatusCode, string(reqErr.Body), wrap)
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("assistant API error %d: %s: %w",
			apiErr.HTTPStatusCode, apiErr.Message, wrap)
	}

	return fmt.Errorf("assistant request failed: %w", wrap)
}
