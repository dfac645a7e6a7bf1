package formatting

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// ErrParseFailed is returned when content cannot be parsed as JSON,
// either directly or from a markdown code fence.
var ErrParseFailed = errors.New("failed to parse response")

var (
	jsonBlockRegex = regexp.MustCompile(`(?s)` + "```" + `(?:json)?\s*\n?(.*?)\n?` + "```")
	leadingFence   = regexp.MustCompile("^```[A-Za-z0-9_-]*")
	trailingFence  = regexp.MustCompile("```$")
)

// Unwrap strips a leading code fence marker (with an optional language tag)
// and a trailing fence marker from model output. Text without fences is
// returned trimmed.
func Unwrap(content string) string {
	content = strings.TrimSpace(content)
	content = leadingFence.ReplaceAllString(content, "")
	content = strings.TrimSpace(content)
	content = trailingFence.ReplaceAllString(content, "")
	return strings.TrimSpace(content)
}

// Parse attempts to unmarshal content as JSON into T.
// Content is unwrapped first. If direct parsing fails, it extracts JSON
// from a markdown code fence embedded in the original text and retries.
// Returns ErrParseFailed if both attempts fail.
func Parse[T any](content string) (T, error) {
	var result T
	raw := strings.TrimSpace(content)
	content = Unwrap(raw)

	if err := json.Unmarshal([]byte(content), &result); err == nil {
		return result, nil
	}

	matches := jsonBlockRegex.FindStringSubmatch(raw)
	if len(matches) >= 2 {
		cleaned := strings.TrimSpace(matches[1])
		var retry T
		if err := json.Unmarshal([]byte(cleaned), &retry); err == nil {
			return retry, nil
		}
	}

	var zero T
	return zero, fmt.Errorf("%w: %s", ErrParseFailed, truncate(content, 200))
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
