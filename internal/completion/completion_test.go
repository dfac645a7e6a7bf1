package completion_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/pagegen/internal/completion"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func geminiServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, ":generateContent") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func candidate(text string) string {
	b, _ := json.Marshal(map[string]any{
		"candidates": []any{
			map[string]any{
				"content": map[string]any{
					"role":  "model",
					"parts": []any{map[string]any{"text": text}},
				},
			},
		},
	})
	return string(b)
}

func newClient(t *testing.T, baseURL string) completion.Client {
	t.Helper()
	cfg := &completion.Config{APIKey: "test-key", Model: completion.DefaultModel, BaseURL: baseURL + "/"}
	c, err := completion.New(context.Background(), cfg, discard())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return c
}

func TestDefaultOptions(t *testing.T) {
	got := completion.Options{}.WithDefaults()
	if got != completion.DefaultOptions() {
		t.Errorf("WithDefaults = %+v, want %+v", got, completion.DefaultOptions())
	}

	custom := completion.Options{Temperature: 0.2}.WithDefaults()
	if custom.Temperature != 0.2 || custom.TopK != 40 || custom.MaxOutputTokens != 2048 {
		t.Errorf("WithDefaults = %+v", custom)
	}
}

func TestUnavailableClient(t *testing.T) {
	c, err := completion.New(context.Background(), &completion.Config{Model: completion.DefaultModel}, discard())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if c.Available() {
		t.Error("Available() = true without API key")
	}

	_, err = c.Complete(context.Background(), "prompt", completion.Options{})
	if !errors.Is(err, completion.ErrServiceUnavailable) {
		t.Errorf("Complete error = %v, want ErrServiceUnavailable", err)
	}
	if !strings.Contains(err.Error(), "API key") {
		t.Errorf("error %q does not mention API key", err)
	}

	if err := c.Probe(context.Background()); !errors.Is(err, completion.ErrServiceUnavailable) {
		t.Errorf("Probe error = %v, want ErrServiceUnavailable", err)
	}
}

func TestComplete(t *testing.T) {
	srv := geminiServer(t, http.StatusOK, candidate(`{"hero":{"headline":"Go Faster"}}`))
	c := newClient(t, srv.URL)

	if !c.Available() {
		t.Fatal("Available() = false with API key")
	}

	got, err := c.Complete(context.Background(), "prompt", completion.DefaultOptions())
	if err != nil {
		t.Fatalf("Complete error: %v", err)
	}
	if got != `{"hero":{"headline":"Go Faster"}}` {
		t.Errorf("Complete = %q", got)
	}
}

func TestCompleteFailures(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		contains string
	}{
		{
			name:     "quota exceeded",
			status:   http.StatusTooManyRequests,
			body:     `{"error":{"code":429,"message":"You exceeded your current quota","status":"RESOURCE_EXHAUSTED"}}`,
			contains: "quota",
		},
		{
			name:     "empty candidates",
			status:   http.StatusOK,
			body:     `{"candidates":[]}`,
			contains: "empty response",
		},
		{
			name:     "blank text",
			status:   http.StatusOK,
			body:     candidate("   "),
			contains: "empty response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := geminiServer(t, tt.status, tt.body)
			c := newClient(t, srv.URL)

			_, err := c.Complete(context.Background(), "prompt", completion.Options{})
			if !errors.Is(err, completion.ErrCompletionFailed) {
				t.Fatalf("error = %v, want ErrCompletionFailed", err)
			}
			if !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("error %q does not contain %q", err, tt.contains)
			}
		})
	}
}

func TestProbe(t *testing.T) {
	srv := geminiServer(t, http.StatusOK, candidate("Hi there"))
	c := newClient(t, srv.URL)

	if err := c.Probe(context.Background()); err != nil {
		t.Errorf("Probe error: %v", err)
	}
}

func TestConfigFinalize(t *testing.T) {
	t.Setenv("TEST_GEMINI_API_KEY", "fallback-key")

	env := &completion.Env{
		APIKey: []string{"TEST_COMPLETION_API_KEY", "TEST_GEMINI_API_KEY"},
		Model:  []string{"TEST_COMPLETION_MODEL"},
	}

	cfg := completion.Config{}
	if err := cfg.Finalize(env); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	if cfg.APIKey != "fallback-key" {
		t.Errorf("api key: got %q, want fallback-key", cfg.APIKey)
	}
	if cfg.Model != completion.DefaultModel {
		t.Errorf("model: got %q, want %s", cfg.Model, completion.DefaultModel)
	}

	t.Run("primary variable wins", func(t *testing.T) {
		t.Setenv("TEST_COMPLETION_API_KEY", "primary-key")
		cfg := completion.Config{}
		if err := cfg.Finalize(env); err != nil {
			t.Fatalf("finalize failed: %v", err)
		}
		if cfg.APIKey != "primary-key" {
			t.Errorf("api key: got %q, want primary-key", cfg.APIKey)
		}
	})

	t.Run("invalid base url", func(t *testing.T) {
		cfg := completion.Config{BaseURL: "::not a url"}
		if err := cfg.Finalize(nil); err == nil {
			t.Error("expected error for invalid base_url")
		}
	})
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{completion.ErrServiceUnavailable, http.StatusServiceUnavailable},
		{completion.ErrCompletionFailed, http.StatusBadGateway},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := completion.MapHTTPStatus(tt.err); got != tt.want {
			t.Errorf("MapHTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
