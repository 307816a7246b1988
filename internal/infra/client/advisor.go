package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/boddenberg/startup-bot-go/internal/domain"
	"github.com/boddenberg/startup-bot-go/internal/infra/resilience"

	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("client")

const (
	serviceName = "anthropic"

	// AnthropicVersion is the protocol version sent on every request.
	AnthropicVersion = "2023-06-01"

	// MaxTokens bounds the provider's answer length.
	MaxTokens = 500

	promptTemplate = "As a startup advisor, answer this question concisely (max 400 words): %s"
)

// ============================================================
// Wire contract: POST /v1/messages
// ============================================================

type messagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesResponse struct {
	Content []contentBlock `json:"content"`
}

type contentBlock struct {
	Type string `json:"type,omitempty"`
	Text string `json:"text"`
}

// AdvisorClient calls the Anthropic Messages API once per question.
type AdvisorClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
	cb         *gobreaker.CircuitBreaker
}

// NewAdvisorClient creates a new AdvisorClient. An empty apiKey yields a
// client that refuses every call without touching the network.
func NewAdvisorClient(httpClient *http.Client, baseURL, apiKey, model string, cb *gobreaker.CircuitBreaker) *AdvisorClient {
	return &AdvisorClient{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
		cb:         cb,
	}
}

// Configured reports whether an API key is set.
func (c *AdvisorClient) Configured() bool {
	return c.apiKey != ""
}

// Prompt wraps a question in the advisor instruction template.
func Prompt(question string) string {
	return fmt.Sprintf(promptTemplate, question)
}

// Ask sends the question and returns the first text block of the answer.
//
// Errors:
//   - *domain.ErrNotConfigured when no API key is set (no request is made)
//   - *domain.ErrUpstreamStatus when the provider answers non-200
//   - *domain.ErrExternalService for transport, decoding or breaker failures
func (c *AdvisorClient) Ask(ctx context.Context, question string) (string, error) {
	if !c.Configured() {
		return "", &domain.ErrNotConfigured{Setting: "ANTHROPIC_API_KEY"}
	}

	ctx, span := tracer.Start(ctx, "AdvisorClient.Ask")
	defer span.End()
	span.SetAttributes(
		attribute.String("llm.model", c.model),
		attribute.Int("question.length", len(question)),
	)

	result, err := c.cb.Execute(func() (any, error) {
		return c.post(ctx, question)
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		var status *domain.ErrUpstreamStatus
		if errors.As(err, &status) {
			return "", status
		}
		if resilience.IsOpen(err) {
			return "", &domain.ErrExternalService{Service: serviceName, Err: &domain.ErrCircuitOpen{Service: serviceName}}
		}
		return "", &domain.ErrExternalService{Service: serviceName, Err: err}
	}

	return result.(string), nil
}

func (c *AdvisorClient) post(ctx context.Context, question string) (string, error) {
	body, err := json.Marshal(messagesRequest{
		Model:     c.model,
		MaxTokens: MaxTokens,
		Messages:  []message{{Role: "user", Content: Prompt(question)}},
	})
	if err != nil {
		return "", fmt.Errorf("marshal messages request: %w", err)
	}

	url := fmt.Sprintf("%s/v1/messages", c.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create http request: %w", err)
	}
	httpReq.Header.Set("x-api-key", c.apiKey)
	httpReq.Header.Set("anthropic-version", AnthropicVersion)
	httpReq.Header.Set("content-type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &domain.ErrUpstreamStatus{Service: serviceName, Status: resp.StatusCode}
	}

	var decoded messagesResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("decode messages response: %w", err)
	}
	if len(decoded.Content) == 0 {
		return "", errors.New("response has no content blocks")
	}

	return decoded.Content[0].Text, nil
}
