// Package completion sends a single prompt to the Gemini generative-language
// API and returns the raw text of the first candidate. There are no retries:
// every failure is reported to the caller, which falls back to synthetic
// content.
package completion

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"
)

// ProbePrompt is the minimal prompt used to test connectivity.
const ProbePrompt = "Hello"

// Client is the completion boundary.
type Client interface {
	Complete(ctx context.Context, prompt string, opts Options) (string, error)
	Available() bool
	Probe(ctx context.Context) error
}

type geminiClient struct {
	client *genai.Client
	model  string
	logger *slog.Logger
}

// New checks the credential once. Without an API key it logs a single warning
// and returns a client whose every call fails with ErrServiceUnavailable.
func New(ctx context.Context, cfg *Config, logger *slog.Logger) (Client, error) {
	logger = logger.With("system", "completion")

	if strings.TrimSpace(cfg.APIKey) == "" {
		logger.Warn("API key not configured, completions disabled; fallback content will be used")
		return unavailable{}, nil
	}

	cc := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	logger.Info("completion client initialized", "model", cfg.Model)

	return &geminiClient{
		client: client,
		model:  cfg.Model,
		logger: logger,
	}, nil
}

func (c *geminiClient) Available() bool {
	return true
}

// Complete issues exactly one generation request.
func (c *geminiClient) Complete(ctx context.Context, prompt string, opts Options) (string, error) {
	opts = opts.WithDefaults()
	temperature, topP, topK := opts.Temperature, opts.TopP, float32(opts.TopK)

	resp, err := c.client.Models.GenerateContent(
		ctx,
		c.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			Temperature:     &temperature,
			TopP:            &topP,
			TopK:            &topK,
			MaxOutputTokens: opts.MaxOutputTokens,
		},
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCompletionFailed, err)
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: empty response", ErrCompletionFailed)
	}

	c.logger.Debug("completion received", "model", c.model, "chars", len(text))
	return text, nil
}

func (c *geminiClient) Probe(ctx context.Context) error {
	_, err := c.Complete(ctx, ProbePrompt, DefaultOptions())
	return err
}

type unavailable struct{}

func (unavailable) Available() bool {
	return false
}

func (unavailable) Complete(context.Context, string, Options) (string, error) {
	return "", ErrServiceUnavailable
}

func (unavailable) Probe(context.Context) error {
	return ErrServiceUnavailable
}
