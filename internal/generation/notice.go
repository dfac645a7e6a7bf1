package generation

import (
	"errors"
	"strings"
)

// NoticeKind classifies the user-facing message attached to a generation.
type NoticeKind string

const (
	NoticeSuccess       NoticeKind = "success"
	NoticeConfiguration NoticeKind = "configuration"
	NoticeRateLimit     NoticeKind = "rate_limit"
	NoticeFailure       NoticeKind = "failure"
)

type Notice struct {
	Kind    NoticeKind `json:"kind"`
	Message string     `json:"message"`
}

var successNotice = Notice{
	Kind:    NoticeSuccess,
	Message: "Landing page generated successfully!",
}

var failureNotice = Notice{
	Kind:    NoticeFailure,
	Message: "Failed to generate content. Using fallback template.",
}

// Classify maps a generation error to guidance by matching its text.
// Malformed responses carry model output in their text and always map to the
// generic failure notice.
func Classify(err error) Notice {
	if errors.Is(err, ErrMalformedResponse) {
		return failureNotice
	}
	msg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(msg, "api key"):
		return Notice{
			Kind:    NoticeConfiguration,
			Message: "Gemini API key is not configured. Please check your .env file.",
		}
	case strings.Contains(msg, "quota"):
		return Notice{
			Kind:    NoticeRateLimit,
			Message: "API quota exceeded. Please try again later.",
		}
	default:
		return failureNotice
	}
}
