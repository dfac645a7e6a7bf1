// Package prompts builds the copywriting prompt sent to the completion service.
// The prompt combines fixed instructions, the product attributes (with named
// defaults for anything absent), explicit field constraints, and a literal
// schema skeleton.
package prompts

import (
	"fmt"
	"strings"

	"github.com/JaimeStill/pagegen/internal/landing"
)

// NoFeatures is substituted when the form carries no key features.
const NoFeatures = "Not specified"

// Build composes the full instruction string for the given attributes.
// It has no failure modes.
func Build(attrs landing.FormAttributes) string {
	a := attrs.WithDefaults()

	features := strings.Join(a.KeyFeatures, ", ")
	if strings.TrimSpace(features) == "" {
		features = NoFeatures
	}

	var sb strings.Builder
	sb.WriteString(instructions)
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, productTemplate,
		a.ProductName,
		a.Industry,
		a.TargetAudience,
		a.Tone,
		a.UniqueValue,
		features,
		a.BrandColor,
	)
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, requirementsTemplate, a.Tone, a.TargetAudience, a.UniqueValue)
	sb.WriteString("\n\n")
	sb.WriteString(spec)
	sb.WriteString("\n\n")
	sb.WriteString(closing)

	return sb.String()
}
