package config

import "github.com/JaimeStill/pagegen/internal/completion"

// The generic Gemini variable is honored after the prefixed one so an
// existing .env from other tooling works unchanged.
var completionEnv = &completion.Env{
	APIKey:  []string{"PAGEGEN_COMPLETION_API_KEY", "GEMINI_API_KEY"},
	Model:   []string{"PAGEGEN_COMPLETION_MODEL"},
	BaseURL: []string{"PAGEGEN_COMPLETION_BASE_URL"},
}
