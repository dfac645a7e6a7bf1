package prompts

import (
	"fmt"

	"github.com/JaimeStill/pagegen/internal/landing"
)

// The image slots carry real URLs so a model that echoes the skeleton still
// yields a plausible, stable image.
const specTemplate = `**Output Format (JSON only, no markdown):**
{
  "hero": {
    "headline": "Main headline (max 12 words, compelling and benefit-driven)",
    "subhead": "Supporting text (max 25 words, explains what product does and why it matters)",
    "imageUrl": "%s"
  },
  "about": {
    "title": "About section title (engaging, max 8 words)",
    "content": "2-3 sentences explaining the product story, mission, or approach"
  },
  "features": [
    {
      "id": "feature-1",
      "title": "Feature name (max 4 words)",
      "description": "Benefit-focused description (max 20 words)",
      "icon": "%s"
    },
    {
      "id": "feature-2",
      "title": "Feature name",
      "description": "Benefit-focused description",
      "icon": "%s"
    },
    {
      "id": "feature-3",
      "title": "Feature name",
      "description": "Benefit-focused description",
      "icon": "%s"
    },
    {
      "id": "feature-4",
      "title": "Feature name",
      "description": "Benefit-focused description",
      "icon": "%s"
    }
  ],
  "testimonials": [
    {
      "id": "testimonial-1",
      "name": "Realistic full name",
      "role": "Job title",
      "company": "Company name",
      "quote": "Authentic testimonial (max 30 words, specific benefits mentioned)",
      "avatar": "%s"
    },
    {
      "id": "testimonial-2",
      "name": "Realistic full name",
      "role": "Job title",
      "company": "Company name",
      "quote": "Authentic testimonial",
      "avatar": "%s"
    },
    {
      "id": "testimonial-3",
      "name": "Realistic full name",
      "role": "Job title",
      "company": "Company name",
      "quote": "Authentic testimonial",
      "avatar": "%s"
    }
  ]
}`

var spec = fmt.Sprintf(
	specTemplate,
	landing.HeroImageURL,
	landing.FeatureIcons[0],
	landing.FeatureIcons[1],
	landing.FeatureIcons[2],
	landing.FeatureIcons[3],
	landing.TestimonialAvatars[0],
	landing.TestimonialAvatars[1],
	landing.TestimonialAvatars[2],
)

// Spec returns the schema skeleton the completion is expected to mirror.
func Spec() string {
	return spec
}
