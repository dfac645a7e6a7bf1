// Package generation turns form attributes into landing page content. It
// owns the response-normalization and fallback pipeline: whatever the
// completion service returns, or fails to return, a generation always yields
// complete, valid content.
package generation

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/JaimeStill/pagegen/internal/completion"
	"github.com/JaimeStill/pagegen/internal/landing"
	"github.com/JaimeStill/pagegen/internal/prompts"
)

// Status is the lifecycle state of the most recent generation.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusInFlight  Status = "in_flight"
	StatusSucceeded Status = "succeeded"
	StatusFallback  Status = "fallback"
)

// Source identifies who produced the content.
type Source string

const (
	SourceAI       Source = "ai"
	SourceFallback Source = "fallback"
)

// Result is the outcome of one generation. Content is always complete;
// Err is set only when Status is StatusFallback.
type Result struct {
	AttemptID uuid.UUID                `json:"attemptId"`
	Content   landing.GeneratedContent `json:"content"`
	Status    Status                   `json:"status"`
	Source    Source                   `json:"source"`
	Notice    *Notice                  `json:"notice,omitempty"`
	Err       error                    `json:"-"`
}

// Generator runs prompt building, a single completion, and normalization.
type Generator struct {
	client  completion.Client
	options completion.Options
	logger  *slog.Logger
}

func New(client completion.Client, opts completion.Options, logger *slog.Logger) *Generator {
	return &Generator{
		client:  client,
		options: opts.WithDefaults(),
		logger:  logger.With("system", "generation"),
	}
}

// Generate never fails: completion and parse errors are converted into
// fallback content with a classified notice.
func (g *Generator) Generate(ctx context.Context, attrs landing.FormAttributes) Result {
	id := uuid.New()
	logger := g.logger.With("attempt_id", id)

	logger.InfoContext(ctx, "generation started", "product", attrs.ProductName)

	raw, err := g.client.Complete(ctx, prompts.Build(attrs), g.options)
	if err != nil {
		return g.fallback(ctx, logger, id, attrs, err)
	}

	content, repaired, err := normalize(raw, attrs)
	if err != nil {
		return g.fallback(ctx, logger, id, attrs, err)
	}

	if len(repaired) > 0 {
		logger.DebugContext(ctx, "completion fields repaired", "fields", repaired)
	}

	logger.InfoContext(ctx, "generation succeeded")

	notice := successNotice
	return Result{
		AttemptID: id,
		Content:   content,
		Status:    StatusSucceeded,
		Source:    SourceAI,
		Notice:    &notice,
	}
}

func (g *Generator) fallback(ctx context.Context, logger *slog.Logger, id uuid.UUID, attrs landing.FormAttributes, err error) Result {
	// The unavailable client already warned once at startup.
	level := slog.LevelWarn
	if errors.Is(err, completion.ErrServiceUnavailable) {
		level = slog.LevelDebug
	}
	logger.Log(ctx, level, "generation fell back to synthetic content", "error", err)

	notice := Classify(err)
	return Result{
		AttemptID: id,
		Content:   Fallback(attrs),
		Status:    StatusFallback,
		Source:    SourceFallback,
		Notice:    &notice,
		Err:       err,
	}
}
